package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexandremahdhaoui/liftoff/internal/version"
)

// Config holds the configuration for CLI bootstrap.
type Config struct {
	// Name is the binary name, used in messages.
	Name string

	// Version information, usually set via ldflags.
	Version        string
	CommitSHA      string
	BuildTimestamp string

	// RunCLI runs the binary in normal CLI mode with the process arguments.
	RunCLI func(args []string) error

	// RunMCP runs the binary as an MCP server (optional).
	// If nil, the --mcp flag results in an error.
	RunMCP func() error

	// SuccessHandler is called when RunCLI succeeds (optional).
	SuccessHandler func()

	// FailureHandler is called when RunCLI returns an error (optional).
	// Defaults to printing the error to Stderr.
	FailureHandler func(error)

	// Stdout and Stderr default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Bootstrap runs the binary described by cfg with os.Args and exits the
// process with the resulting code.
//
// This function will call os.Exit and never return.
func Bootstrap(cfg Config) {
	os.Exit(Run(cfg, os.Args[1:]))
}

// Run runs the binary described by cfg with args and returns its exit code.
func Run(cfg Config, args []string) int {
	stdout, stderr := cfg.Stdout, cfg.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	name := cfg.Name
	if name == "" {
		name = "command"
	}

	if len(args) > 0 {
		switch args[0] {
		case "version", "--version", "-v":
			version.New(name, cfg.Version, cfg.CommitSHA, cfg.BuildTimestamp).Fprint(stdout)
			return 0
		case "--mcp":
			if cfg.RunMCP == nil {
				_, _ = fmt.Fprintf(stderr, "Error: MCP mode not supported for %s\n", name)
				return 1
			}

			if err := cfg.RunMCP(); err != nil {
				_, _ = fmt.Fprintf(stderr, "MCP server error: %v\n", err)
				return 1
			}

			return 0
		}
	}

	if err := cfg.RunCLI(args); err != nil {
		if cfg.FailureHandler != nil {
			cfg.FailureHandler(err)
		} else {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	if cfg.SuccessHandler != nil {
		cfg.SuccessHandler()
	}

	return 0
}
