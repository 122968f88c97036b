package liftoff

import "github.com/alexandremahdhaoui/liftoff/pkg/resolve"

// Environment is the outcome of BuildEnvironment.
// Fields that could not be resolved are empty strings.
type Environment struct {
	// Cwd is the effective working directory.
	Cwd string `json:"cwd" yaml:"cwd"`

	// Require lists the preloaded modules, in load order.
	Require []string `json:"require" yaml:"require"`

	// ConfigNameRegex recognizes configuration file names.
	ConfigNameRegex *ConfigNameMatcher `json:"configNameRegex" yaml:"configNameRegex"`

	// ConfigPath is the absolute path of the configuration file.
	ConfigPath string `json:"configPath" yaml:"configPath"`

	// ConfigBase is the directory containing ConfigPath.
	ConfigBase string `json:"configBase" yaml:"configBase"`

	// ModulePath is the entry point of the tool's local module.
	ModulePath string `json:"modulePath" yaml:"modulePath"`

	// ModulePackage is the descriptor of the tool's local module.
	// It is never nil.
	ModulePackage resolve.Package `json:"modulePackage" yaml:"modulePackage"`
}
