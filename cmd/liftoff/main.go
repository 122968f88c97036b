package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexandremahdhaoui/liftoff/internal/cli"
	"github.com/alexandremahdhaoui/liftoff/internal/logging"
	"github.com/alexandremahdhaoui/liftoff/pkg/flaterrors"
	"github.com/alexandremahdhaoui/liftoff/pkg/liftoff"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

const Name = "liftoff"

// Version information (set via ldflags during build)
var (
	Version        = "dev"
	CommitSHA      = "unknown"
	BuildTimestamp = "unknown"
)

// ----------------------------------------------------- MAIN ------------------------------------------------------- //

func main() {
	cli.Bootstrap(cli.Config{
		Name:           Name,
		Version:        Version,
		CommitSHA:      CommitSHA,
		BuildTimestamp: BuildTimestamp,
		RunCLI: func(args []string) error {
			return run(args, os.Stdout, os.Stderr)
		},
		RunMCP: runMCPServer,
	})
}

// ----------------------------------------------------- ENVS ------------------------------------------------------- //

// Envs are the environment variables read by liftoff. Flags take precedence.
type Envs struct {
	// ToolFile is the path of the tool definition.
	ToolFile string `env:"LIFTOFF_TOOL_FILE" envDefault:"liftoff.yaml"`
	// Cwd overrides the working directory.
	Cwd string `env:"LIFTOFF_CWD"`
	// ConfigPath overrides the configuration file search.
	ConfigPath string `env:"LIFTOFF_CONFIG_PATH"`
	// Require is a comma-separated list of modules to preload.
	Require []string `env:"LIFTOFF_REQUIRE" envSeparator:","`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"LIFTOFF_LOG_LEVEL" envDefault:"info"`
	// LogFormat is one of text or json.
	LogFormat string `env:"LIFTOFF_LOG_FORMAT" envDefault:"text"`
}

// ----------------------------------------------------- SETTINGS --------------------------------------------------- //

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// settings are the merged environment variables and flags of one run.
type settings struct {
	ToolFile  string
	Options   liftoff.Options
	Output    string
	LogLevel  string
	LogFormat string
}

var (
	errParsingSettings = errors.New("parsing settings")
	errInvalidOutput   = errors.New("output must be json or yaml")
)

func parseSettings(args []string, stderr io.Writer) (settings, error) {
	envs := Envs{} //nolint:exhaustruct // unmarshal
	if err := env.Parse(&envs); err != nil {
		return settings{}, flaterrors.Join(err, errParsingSettings)
	}

	out := settings{} //nolint:exhaustruct // filled by flags

	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&out.ToolFile, "tool", envs.ToolFile, "path of the tool definition (YAML or JSON)")
	fs.StringVar(&out.Options.Cwd, "cwd", envs.Cwd, "working directory; the only directory searched for a config")
	fs.StringVar(&out.Options.ConfigPath, "config-path", envs.ConfigPath, "path of the configuration file, bypassing the search")
	fs.StringSliceVar((*[]string)(&out.Options.Require), "require", envs.Require, "modules to preload (repeatable, comma-separated)")
	fs.StringVar(&out.Options.Completion, "completion", "", "print the completion script for this shell and exit")
	fs.StringVarP(&out.Output, "output", "o", outputJSON, "output format: json or yaml")
	fs.StringVar(&out.LogLevel, "log-level", envs.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&out.LogFormat, "log-format", envs.LogFormat, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return settings{}, flaterrors.Join(err, errParsingSettings)
	}

	if out.Output != outputJSON && out.Output != outputYAML {
		return settings{}, flaterrors.Join(fmt.Errorf("got %q", out.Output), errInvalidOutput, errParsingSettings)
	}

	return out, nil
}

// ----------------------------------------------------- RUN -------------------------------------------------------- //

var errRunning = errors.New("running liftoff")

// run loads the tool definition, launches it and prints the resolved
// environment to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	// I. Read settings
	s, err := parseSettings(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return flaterrors.Join(err, errRunning)
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(s.LogLevel),
		Format: logging.ParseFormat(s.LogFormat),
		Output: stderr,
	})

	// II. Read the tool definition
	l, err := newLiftoff(s.ToolFile, stdout, logger)
	if err != nil {
		return flaterrors.Join(err, errRunning)
	}

	liftoff.LogEvents(l, logger)

	// III. Launch
	return l.Launch(s.Options, func(_ *liftoff.Liftoff, env *liftoff.Environment) error {
		return writeEnvironment(stdout, s.Output, env)
	})
}

// ----------------------------------------------------- TOOL ------------------------------------------------------- //

var errUnknownShell = errors.New("no completion script for shell")

// completions holds the tool definition keys not part of liftoff.Config.
type completions struct {
	Completions map[string]string `json:"completions,omitempty"`
}

// newLiftoff reads the tool definition at path. Completion scripts are
// printed to stdout.
func newLiftoff(path string, stdout io.Writer, logger *slog.Logger) (*liftoff.Liftoff, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, flaterrors.Join(err, liftoff.ErrReadingConfig)
	}

	cfg, err := liftoff.ParseConfig(b)
	if err != nil {
		return nil, err
	}

	extra := completions{} //nolint:exhaustruct // unmarshal
	if err := sigsyaml.Unmarshal(b, &extra); err != nil {
		return nil, flaterrors.Join(err, liftoff.ErrReadingConfig)
	}

	if len(extra.Completions) > 0 {
		cfg.Completions = func(shell string) error {
			script, ok := extra.Completions[shell]
			if !ok {
				return flaterrors.Join(fmt.Errorf("%q", shell), errUnknownShell)
			}

			_, err := io.WriteString(stdout, script)
			return err
		}
	}

	cfg.Logger = logger

	return liftoff.New(cfg)
}

// ----------------------------------------------------- OUTPUT ----------------------------------------------------- //

func writeEnvironment(w io.Writer, format string, env *liftoff.Environment) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(env); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(env)
	}
}
