package liftoff

import (
	"path/filepath"
	"slices"
)

// preloads returns the modules to preload for configPath: the preloader
// registered for its extension first, then the requested modules.
// Duplicates are dropped.
func (l *Liftoff) preloads(configPath string, requested []string) []string {
	out := make([]string, 0, len(requested)+1)

	if configPath != "" {
		if preloader := l.cfg.Extensions[filepath.Ext(configPath)]; preloader != "" {
			out = append(out, preloader)
		}
	}

	for _, name := range requested {
		if name != "" && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}

	return out
}

// preload loads every module from basedir. A failure does not prevent the
// remaining modules from loading.
func (l *Liftoff) preload(modules []string, basedir string) {
	for _, name := range modules {
		l.RequireLocal(name, basedir)
	}
}
