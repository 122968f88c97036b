package liftoff

import (
	"os"
	"path/filepath"
)

// findConfig returns the configuration file of a run, or "" if none is found.
//
// An explicit path is returned as long as it exists and is not a directory;
// the matcher and the search paths are not consulted. Otherwise the first
// entry of the first search path whose name matches wins. Entries are
// visited in lexical order; missing directories are skipped.
func (l *Liftoff) findConfig(m *ConfigNameMatcher, searchPaths []string, explicit string) string {
	if explicit != "" {
		path := l.abs(explicit)

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			l.logger.Warn("config path override not found", "configPath", path)
			return ""
		}

		return path
	}

	for _, dir := range searchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			l.logger.Debug("skipping search path", "dir", dir, "error", err)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !m.MatchString(entry.Name()) {
				continue
			}

			return filepath.Join(dir, entry.Name())
		}
	}

	return ""
}
