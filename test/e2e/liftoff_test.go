//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/alexandremahdhaoui/liftoff/internal/testutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolDefinition = `name: liftoff-test-demo
configName: demorc
extensions:
  .js: ""
  .json: ""
`

// buildBinary builds cmd/liftoff into a temporary directory.
func buildBinary(t *testing.T) string {
	t.Helper()

	bin := filepath.Join(t.TempDir(), "liftoff")
	out, err := exec.Command("go", "build", "-o", bin, "../../cmd/liftoff").CombinedOutput()
	require.NoError(t, err, string(out))

	return bin
}

// decodeEnvironment decodes the JSON environment printed by the binary.
func decodeEnvironment(t *testing.T, stdout string) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &out), stdout)

	return out
}

func TestLiftoff(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	bin := buildBinary(t)

	root := testutil.EvalDir(t, t.TempDir())
	tool := testutil.WriteFile(t, filepath.Join(root, "liftoff.yaml"), toolDefinition)

	t.Run("should find the config and local module from the working directory", func(t *testing.T) {
		project := testutil.MkdirAll(t, filepath.Join(root, "project"))
		testutil.WriteFile(t, filepath.Join(project, "demorc.js"), "module.exports = {}\n")
		modulePath := testutil.InstallModule(t, project, "liftoff-test-demo", "")

		result := testutil.Command{
			Dir: project,
			Env: []string{"LIFTOFF_TOOL_FILE=" + tool},
		}.Run(t, bin)
		testutil.ExpectSuccess(t, result)

		env := decodeEnvironment(t, result.Stdout)
		assert.Equal(t, project, env["cwd"])
		assert.Equal(t, filepath.Join(project, "demorc.js"), env["configPath"])
		assert.Equal(t, modulePath, env["modulePath"])
	})

	t.Run("should run against its own working copy", func(t *testing.T) {
		self := testutil.MkdirAll(t, filepath.Join(root, "self"))
		testutil.WriteFile(t, filepath.Join(self, "demorc.json"), "{}")
		testutil.WritePackage(t, self, map[string]any{
			"name": "liftoff-test-demo",
			"main": "lib/cli.js",
		})

		result := testutil.Command{}.Run(t, bin,
			"--tool", tool,
			"--config-path", filepath.Join(self, "demorc.json"),
			"--require", "missing-module")
		testutil.ExpectSuccess(t, result)
		testutil.ExpectOutput(t, result, "failed to preload module")

		env := decodeEnvironment(t, result.Stdout)
		assert.Equal(t, self, env["cwd"])
		assert.Equal(t, filepath.Join(self, "lib", "cli.js"), env["modulePath"])
	})

	t.Run("should fail without a tool definition", func(t *testing.T) {
		result := testutil.Command{Dir: root}.Run(t, bin, "--tool", filepath.Join(root, "nope.yaml"))
		testutil.ExpectFailure(t, result, "reading liftoff config")
	})

	t.Run("should print its version", func(t *testing.T) {
		result := testutil.Command{}.Run(t, bin, "--version")
		testutil.ExpectSuccess(t, result)
		testutil.ExpectOutput(t, result, "liftoff version")
	})

	t.Run("should serve build-environment over MCP", func(t *testing.T) {
		project := testutil.MkdirAll(t, filepath.Join(root, "mcp"))
		testutil.WriteFile(t, filepath.Join(project, "demorc.json"), "{}")

		client := mcp.NewClient(&mcp.Implementation{Name: "liftoff-e2e", Version: "v0.0.0"}, nil)

		ctx := context.Background()
		session, err := client.Connect(ctx, &mcp.CommandTransport{Command: exec.Command(bin, "--mcp")}, nil)
		require.NoError(t, err)
		defer func() { _ = session.Close() }()

		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "build-environment",
			Arguments: map[string]any{"tool": tool, "cwd": project},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)
		require.NotEmpty(t, result.Content)

		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok)

		env := decodeEnvironment(t, text.Text)
		assert.Equal(t, project, env["cwd"])
		assert.Equal(t, filepath.Join(project, "demorc.json"), env["configPath"])
	})
}
