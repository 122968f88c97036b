//go:build unit

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	newConfig := func(stdout, stderr *bytes.Buffer) Config {
		return Config{
			Name:      "test-cmd",
			Version:   "v1.0.0",
			CommitSHA: "abc1234",
			RunCLI:    func([]string) error { return nil },
			Stdout:    stdout,
			Stderr:    stderr,
		}
	}

	t.Run("version flag prints the version", func(t *testing.T) {
		for _, arg := range []string{"version", "--version", "-v"} {
			var stdout, stderr bytes.Buffer
			cfg := newConfig(&stdout, &stderr)
			cfg.RunCLI = func([]string) error {
				t.Fatal("RunCLI must not be called")
				return nil
			}

			assert.Equal(t, 0, Run(cfg, []string{arg}))
			assert.Contains(t, stdout.String(), "test-cmd version v1.0.0")
		}
	})

	t.Run("mcp flag without MCP support fails", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cfg := newConfig(&stdout, &stderr)

		assert.Equal(t, 1, Run(cfg, []string{"--mcp"}))
		assert.Contains(t, stderr.String(), "MCP mode not supported for test-cmd")
	})

	t.Run("mcp flag runs the MCP server", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cfg := newConfig(&stdout, &stderr)
		called := false
		cfg.RunMCP = func() error { called = true; return nil }

		assert.Equal(t, 0, Run(cfg, []string{"--mcp"}))
		assert.True(t, called)
	})

	t.Run("MCP server errors exit with 1", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cfg := newConfig(&stdout, &stderr)
		cfg.RunMCP = func() error { return errors.New("broken pipe") }

		assert.Equal(t, 1, Run(cfg, []string{"--mcp"}))
		assert.Contains(t, stderr.String(), "broken pipe")
	})

	t.Run("CLI mode receives the arguments", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cfg := newConfig(&stdout, &stderr)
		var got []string
		cfg.RunCLI = func(args []string) error { got = args; return nil }

		assert.Equal(t, 0, Run(cfg, []string{"--cwd", "/tmp"}))
		assert.Equal(t, []string{"--cwd", "/tmp"}, got)
	})

	t.Run("version is only recognized as the first argument", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cfg := newConfig(&stdout, &stderr)
		called := false
		cfg.RunCLI = func([]string) error { called = true; return nil }

		assert.Equal(t, 0, Run(cfg, []string{"--cwd", "version"}))
		assert.True(t, called)
		assert.Empty(t, stdout.String())
	})

	t.Run("success handler runs after CLI success", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cfg := newConfig(&stdout, &stderr)
		called := false
		cfg.SuccessHandler = func() { called = true }

		assert.Equal(t, 0, Run(cfg, nil))
		assert.True(t, called)
	})

	t.Run("CLI errors go to the failure handler", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cfg := newConfig(&stdout, &stderr)
		cfg.RunCLI = func([]string) error { return errors.New("test error") }
		var received error
		cfg.FailureHandler = func(err error) { received = err }

		assert.Equal(t, 1, Run(cfg, nil))
		assert.EqualError(t, received, "test error")
		assert.Empty(t, stderr.String())
	})

	t.Run("CLI errors are printed by default", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cfg := newConfig(&stdout, &stderr)
		cfg.RunCLI = func([]string) error { return errors.New("test error") }

		assert.Equal(t, 1, Run(cfg, nil))
		assert.Contains(t, stderr.String(), "Error: test error")
	})
}
