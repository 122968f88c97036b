package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/alexandremahdhaoui/liftoff/internal/logging"
	"github.com/alexandremahdhaoui/liftoff/internal/mcpserver"
	"github.com/alexandremahdhaoui/liftoff/pkg/liftoff"
	"github.com/caarlos0/env/v11"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// BuildEnvironmentInput is the input of the build-environment tool.
type BuildEnvironmentInput struct {
	Tool       string   `json:"tool,omitempty" jsonschema:"path of the tool definition (default: LIFTOFF_TOOL_FILE)"`
	Cwd        string   `json:"cwd,omitempty" jsonschema:"working directory override"`
	ConfigPath string   `json:"configPath,omitempty" jsonschema:"configuration file override"`
	Require    []string `json:"require,omitempty" jsonschema:"modules to preload"`
}

// runMCPServer starts the MCP server.
func runMCPServer() error {
	envs := Envs{} //nolint:exhaustruct // unmarshal
	if err := env.Parse(&envs); err != nil {
		return err
	}

	// stdout carries the JSON-RPC stream.
	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(envs.LogLevel),
		Format: logging.ParseFormat(envs.LogFormat),
	})

	server := mcpserver.New(Name, Version, logger)

	mcpserver.RegisterTool(server, &mcp.Tool{
		Name:        "build-environment",
		Description: "Resolve the working directory, configuration file and local module of a tool",
	}, buildEnvironmentHandler(envs, logger))

	return server.Run(context.Background())
}

func buildEnvironmentHandler(
	envs Envs,
	logger *slog.Logger,
) func(context.Context, *mcp.CallToolRequest, BuildEnvironmentInput) (*mcp.CallToolResult, any, error) {
	return func(
		_ context.Context,
		_ *mcp.CallToolRequest,
		input BuildEnvironmentInput,
	) (*mcp.CallToolResult, any, error) {
		tool := input.Tool
		if tool == "" {
			tool = envs.ToolFile
		}

		logger.Info("building environment", "tool", tool, "cwd", input.Cwd)

		l, err := newLiftoff(tool, io.Discard, logger)
		if err != nil {
			return mcpserver.ErrorResult(fmt.Sprintf("Building environment failed: %v", err)), nil, nil
		}

		liftoff.LogEvents(l, logger)

		out := l.BuildEnvironment(liftoff.Options{
			Cwd:        input.Cwd,
			ConfigPath: input.ConfigPath,
			Require:    input.Require,
		})

		b, err := json.Marshal(out)
		if err != nil {
			return mcpserver.ErrorResult(fmt.Sprintf("Encoding environment failed: %v", err)), nil, nil
		}

		return mcpserver.TextResult(string(b)), out, nil
	}
}
