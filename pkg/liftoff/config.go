package liftoff

import (
	"errors"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/alexandremahdhaoui/liftoff/pkg/flaterrors"
	"github.com/alexandremahdhaoui/liftoff/pkg/resolve"
	"sigs.k8s.io/yaml"
)

// CompletionFunc prints shell-completion output for the given shell.
type CompletionFunc func(shell string) error

// ----------------------------------------------------- CONFIG ----------------------------------------------------- //

// Config is the instance configuration of a Liftoff.
// It is copied by New and never mutated afterward.
type Config struct {
	// Name of the tool. It provides the defaults of ModuleName, ProcessTitle
	// and ConfigName.
	Name string `json:"name"`

	// ModuleName is the name of the tool's package, as installed locally.
	ModuleName string `json:"moduleName,omitempty"`

	// ConfigName is the base name of the configuration file (e.g. "demofile").
	// Defaults to Name + "file".
	ConfigName string `json:"configName,omitempty"`

	// ConfigNameInfixes are optional texts allowed between ConfigName and the
	// extension (e.g. ".config" to accept "demo.config.js").
	ConfigNameInfixes []string `json:"configNameInfixes,omitempty"`

	// Extensions maps each accepted configuration file extension to the
	// module to preload before a configuration using it can be consumed.
	// An empty module name means no preloader is needed.
	// Defaults to {".js": ""}.
	Extensions map[string]string `json:"extensions,omitempty"`

	// ProcessTitle is set as the process name on Launch. Defaults to Name.
	ProcessTitle string `json:"processTitle,omitempty"`

	// SearchPaths are searched for a configuration file after the working
	// directory. Entries may start with "~" and may be glob patterns.
	SearchPaths []string `json:"searchPaths,omitempty"`

	// Completions, when set, handles Options.Completion on Launch.
	Completions CompletionFunc `json:"-"`

	// Resolver resolves module names. Defaults to the zero resolve.Resolver.
	Resolver *resolve.Resolver `json:"-"`

	// Loader loads resolved modules. Defaults to resolve.DescriptorLoader.
	Loader resolve.Loader `json:"-"`

	// Logger defaults to a logger discarding every record.
	Logger *slog.Logger `json:"-"`

	// Titler sets the process title. Defaults to the operating system's.
	Titler Titler `json:"-"`

	// Getwd returns the process working directory. Defaults to os.Getwd.
	Getwd func() (string, error) `json:"-"`
}

var (
	// ErrInvalidConfig is returned when a Config cannot be normalized.
	ErrInvalidConfig = errors.New("invalid liftoff config")
	// ErrReadingConfig is returned when a tool definition cannot be read.
	ErrReadingConfig = errors.New("reading liftoff config")
)

// normalize returns a deep copy of cfg with defaults applied.
func normalize(cfg Config) (Config, error) {
	out := cfg
	out.ConfigNameInfixes = slices.Clone(cfg.ConfigNameInfixes)
	out.SearchPaths = slices.Clone(cfg.SearchPaths)
	out.Extensions = maps.Clone(cfg.Extensions)

	if out.Name != "" {
		if out.ProcessTitle == "" {
			out.ProcessTitle = out.Name
		}
		if out.ConfigName == "" {
			out.ConfigName = out.Name + "file"
		}
		if out.ModuleName == "" {
			out.ModuleName = out.Name
		}
	}

	var errs []error
	if out.ProcessTitle == "" {
		errs = append(errs, errors.New("processTitle or name must be specified"))
	}
	if out.ConfigName == "" {
		errs = append(errs, errors.New("configName or name must be specified"))
	}
	if out.ModuleName == "" {
		errs = append(errs, errors.New("moduleName or name must be specified"))
	}
	if len(errs) > 0 {
		return Config{}, flaterrors.Join(append(errs, ErrInvalidConfig)...)
	}

	if out.Extensions == nil {
		out.Extensions = map[string]string{".js": ""}
	}

	if out.SearchPaths == nil {
		out.SearchPaths = []string{}
	}

	if out.Resolver == nil {
		out.Resolver = &resolve.Resolver{}
	}

	if out.Loader == nil {
		out.Loader = resolve.DescriptorLoader{Resolver: out.Resolver}
	}

	if out.Logger == nil {
		out.Logger = slog.New(slog.DiscardHandler)
	}

	if out.Titler == nil {
		out.Titler = TitlerFunc(setProcessTitle)
	}

	if out.Getwd == nil {
		out.Getwd = os.Getwd
	}

	return out, nil
}

// ----------------------------------------------------- TOOL DEFINITION -------------------------------------------- //

// ParseConfig parses a YAML or JSON tool definition.
// Only the serializable fields of Config are read; unknown keys are ignored.
func ParseConfig(b []byte) (Config, error) {
	out := Config{} //nolint:exhaustruct // unmarshal

	if err := yaml.Unmarshal(b, &out); err != nil {
		return Config{}, flaterrors.Join(err, ErrReadingConfig)
	}

	return out, nil
}

// ReadConfig reads the tool definition at path.
func ReadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, flaterrors.Join(err, ErrReadingConfig)
	}

	return ParseConfig(b)
}
