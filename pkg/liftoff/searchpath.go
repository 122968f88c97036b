package liftoff

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// findCwd returns the working directory of a run.
// Precedence: opts.Cwd, then the directory of opts.ConfigPath, then Getwd.
func (l *Liftoff) findCwd(opts Options) string {
	switch {
	case opts.Cwd != "":
		return l.abs(opts.Cwd)
	case opts.ConfigPath != "":
		return filepath.Dir(l.abs(opts.ConfigPath))
	}

	cwd, err := l.cfg.Getwd()
	if err != nil {
		l.logger.Warn("cannot get working directory", "error", err)
		return ""
	}

	return cwd
}

// searchPaths returns the directories searched for a configuration file, in
// order. An explicit cwd is searched alone.
func (l *Liftoff) searchPaths(opts Options, cwd string) []string {
	if opts.Cwd != "" {
		return []string{cwd}
	}

	out := []string{cwd}
	for _, root := range l.cfg.SearchPaths {
		out = append(out, l.expandSearchPath(root)...)
	}

	return out
}

// expandSearchPath expands a leading "~" and glob patterns.
// A root that exists as written is never treated as a pattern.
// Glob matches are returned sorted, directories only.
func (l *Liftoff) expandSearchPath(root string) []string {
	if root == "~" || strings.HasPrefix(root, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, root[1:])
		}
	}

	root = l.abs(root)

	if !strings.ContainsAny(root, "*?[{") {
		return []string{root}
	}

	if _, err := os.Stat(root); err == nil {
		return []string{root}
	}

	matches, err := doublestar.FilepathGlob(root)
	if err != nil {
		l.logger.Warn("invalid search path pattern", "pattern", root, "error", err)
		return nil
	}

	slices.Sort(matches)

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			out = append(out, m)
		}
	}

	return out
}

// abs makes path absolute against the process working directory.
// Absolute paths are returned as given.
func (l *Liftoff) abs(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	cwd, err := l.cfg.Getwd()
	if err != nil {
		return path
	}

	return filepath.Join(cwd, path)
}
