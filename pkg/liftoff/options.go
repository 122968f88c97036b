package liftoff

import (
	"encoding/json"
	"errors"

	"github.com/alexandremahdhaoui/liftoff/pkg/flaterrors"
)

// Options are the per-invocation inputs of BuildEnvironment and Launch.
// The zero value uses every default.
type Options struct {
	// Cwd overrides the working directory. When set, it is the only
	// directory searched for a configuration file.
	Cwd string `json:"cwd,omitempty"`

	// ConfigPath is the path of the configuration file to use, bypassing the
	// search. An absolute path is reported as given; a relative one is joined
	// to the process working directory. When Cwd is empty, the working
	// directory becomes the directory containing ConfigPath.
	ConfigPath string `json:"configPath,omitempty"`

	// Require lists the modules to preload.
	Require Preloads `json:"require,omitempty"`

	// Completion is the shell to print completions for.
	Completion string `json:"completion,omitempty"`
}

// Preloads is a list of module names.
// It decodes from either a single string or a list of strings.
type Preloads []string

var errInvalidPreloads = errors.New("require must be a string or a list of strings")

// UnmarshalJSON implements json.Unmarshaler.
func (p *Preloads) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		if single == "" {
			*p = nil
			return nil
		}

		*p = Preloads{single}

		return nil
	}

	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return flaterrors.Join(err, errInvalidPreloads)
	}

	*p = list

	return nil
}
