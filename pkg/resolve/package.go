package resolve

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// DefaultDescriptorName is the file name of a package descriptor.
const DefaultDescriptorName = "package.json"

// Package is a parsed package descriptor.
// Only the "name" and "main" keys carry meaning; every other key is kept as-is.
type Package map[string]any

// Name returns the declared "name" of the package, or "" if absent.
func (p Package) Name() string {
	return p.stringField("name")
}

// Main returns the declared "main" entry of the package, or "" if absent.
func (p Package) Main() string {
	return p.stringField("main")
}

func (p Package) stringField(key string) string {
	if p == nil {
		return ""
	}

	s, _ := p[key].(string)

	return s
}

// ReadPackage reads and parses the package descriptor at path.
// Comments and trailing commas are tolerated.
//
// ReadPackage never fails: a missing, unreadable or malformed descriptor
// yields an empty, non-nil Package.
func ReadPackage(path string) Package {
	if path == "" {
		return Package{}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Package{}
	}

	out := Package{}
	if err := json.Unmarshal(jsonc.ToJSON(b), &out); err != nil {
		return Package{}
	}

	// a descriptor holding `null` decodes into a nil map.
	if out == nil {
		return Package{}
	}

	return out
}

// FindUp looks for a file called name in start and then in each of its
// ancestors, and returns the first path found.
// If start is not a directory, the search begins in its parent directory.
func FindUp(name, start string) (string, bool) {
	if name == "" || start == "" {
		return "", false
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	if !isDir(dir) {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := filepath.Join(dir, name)
		if isFile(candidate) {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", false
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
