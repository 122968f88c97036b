// Package cli provides the common process bootstrap of liftoff binaries.
//
// It handles:
//   - version flags (--version, -v, version)
//   - MCP server mode (--mcp)
//   - exit codes: 0 on success, 1 on failure
//
// Example usage:
//
//	func main() {
//	    cli.Bootstrap(cli.Config{
//	        Name:           "my-command",
//	        Version:        Version,
//	        CommitSHA:      CommitSHA,
//	        BuildTimestamp: BuildTimestamp,
//	        RunCLI:         runCLI,
//	        RunMCP:         runMCP,
//	    })
//	}
package cli
