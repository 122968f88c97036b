package liftoff

import (
	"errors"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
)

// ErrMissingCallback is the panic value of Launch when called without a callback.
var ErrMissingCallback = errors.New("you must provide a callback function")

// LaunchFunc is the continuation invoked by Launch with the resolved environment.
type LaunchFunc func(l *Liftoff, env *Environment) error

// Liftoff resolves the environment of a command-line tool.
// It is safe for concurrent use.
type Liftoff struct {
	cfg     Config
	matcher *ConfigNameMatcher
	logger  *slog.Logger

	observers observers
}

// New returns a Liftoff for cfg. It fails when neither Name nor the fields it
// provides defaults for are set.
func New(cfg Config) (*Liftoff, error) {
	normalized, err := normalize(cfg)
	if err != nil {
		return nil, err
	}

	return &Liftoff{
		cfg: normalized,
		matcher: NewConfigNameMatcher(
			normalized.ConfigName,
			slices.Collect(maps.Keys(normalized.Extensions)),
			normalized.ConfigNameInfixes,
		),
		logger: normalized.Logger.With("tool", normalized.Name),
	}, nil
}

// Config returns a copy of the normalized instance configuration.
func (l *Liftoff) Config() Config {
	out := l.cfg
	out.ConfigNameInfixes = slices.Clone(l.cfg.ConfigNameInfixes)
	out.SearchPaths = slices.Clone(l.cfg.SearchPaths)
	out.Extensions = maps.Clone(l.cfg.Extensions)

	return out
}

// Launch sets the process title and then either prints shell completions,
// when opts.Completion is set and completions are configured, or calls fn
// with the environment built from opts.
//
// Launch returns the error of the completion handler or of fn.
// It panics with ErrMissingCallback if fn is nil.
func (l *Liftoff) Launch(opts Options, fn LaunchFunc) error {
	if fn == nil {
		panic(ErrMissingCallback)
	}

	if err := l.cfg.Titler.SetTitle(l.cfg.ProcessTitle); err != nil {
		l.logger.Debug("cannot set process title", "title", l.cfg.ProcessTitle, "error", err)
	}

	if opts.Completion != "" && l.cfg.Completions != nil {
		return l.cfg.Completions(opts.Completion)
	}

	return fn(l, l.BuildEnvironment(opts))
}

// BuildEnvironment resolves the environment of a run.
// It never fails: anything that cannot be found is left empty.
func (l *Liftoff) BuildEnvironment(opts Options) *Environment {
	// I. Working directory and search paths
	cwd := l.findCwd(opts)
	searchPaths := l.searchPaths(opts, cwd)

	// II. Configuration file
	configPath := l.findConfig(l.matcher, searchPaths, opts.ConfigPath)

	var configBase string
	if configPath != "" {
		configBase = filepath.Dir(configPath)
	}

	// III. Local module, next to the config or in the working directory
	moduleBase := configBase
	if moduleBase == "" {
		moduleBase = cwd
	}

	modulePath, modulePackage := l.findModule(moduleBase)

	// IV. No local module but a config: maybe we are developing against ourselves
	if modulePath == "" && configPath != "" {
		if path, pkg, ok := l.selfHost(configBase); ok {
			l.logger.Debug("running against own working copy", "dir", configBase)
			modulePath, modulePackage = path, pkg
			cwd = configBase
		}
	}

	// V. Preload modules
	require := l.preloads(configPath, opts.Require)
	l.preload(require, cwd)

	l.logger.Debug("environment built",
		"cwd", cwd,
		"configPath", configPath,
		"modulePath", modulePath,
		"require", require)

	return &Environment{
		Cwd:             cwd,
		Require:         require,
		ConfigNameRegex: l.matcher,
		ConfigPath:      configPath,
		ConfigBase:      configBase,
		ModulePath:      modulePath,
		ModulePackage:   modulePackage,
	}
}

// RequireLocal resolves module name from basedir and loads it.
// Observers registered with OnRequire or OnRequireFail are notified of the
// outcome; RequireLocal itself reports failure only through its second
// return value.
func (l *Liftoff) RequireLocal(name, basedir string) (any, bool) {
	path, err := l.cfg.Resolver.Resolve(name, basedir)
	if err != nil {
		l.observers.notifyFail(name, err)
		return nil, false
	}

	value, err := l.cfg.Loader.Load(name, path)
	if err != nil {
		l.observers.notifyFail(name, err)
		return nil, false
	}

	l.observers.notifyRequire(name, value)

	return value, true
}
