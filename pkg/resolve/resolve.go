package resolve

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexandremahdhaoui/liftoff/pkg/flaterrors"
)

// DefaultModulesDir is the directory, relative to each ancestor, in which
// packages are installed.
const DefaultModulesDir = "node_modules"

// DefaultExtensions are the file extensions tried when a candidate does not
// exist verbatim.
var DefaultExtensions = []string{".js", ".json"}

var (
	// ErrModuleNotFound is returned when no ancestor directory holds the module.
	ErrModuleNotFound = errors.New("module not found")
	// ErrEmptyModuleName is returned when resolving an empty module name.
	ErrEmptyModuleName = errors.New("module name cannot be empty")
)

// Resolver resolves module names to entry-point file paths.
// The zero value is ready to use.
type Resolver struct {
	// ModulesDir defaults to DefaultModulesDir.
	ModulesDir string
	// DescriptorName defaults to DefaultDescriptorName.
	DescriptorName string
	// Extensions defaults to DefaultExtensions.
	Extensions []string
}

// Resolve returns the absolute path of the entry point of module name,
// searching from basedir upward.
//
// Names starting with "./", "../" or "/" are resolved against basedir only,
// without walking the ancestors.
func (r *Resolver) Resolve(name, basedir string) (string, error) {
	if name == "" {
		return "", ErrEmptyModuleName
	}

	base, err := filepath.Abs(basedir)
	if err != nil {
		return "", flaterrors.Join(err, errNotFound(name, basedir))
	}

	if isPathLike(name) {
		target := filepath.FromSlash(name)
		if !filepath.IsAbs(target) {
			target = filepath.Join(base, target)
		}

		if p, ok := r.resolveFileOrDir(target); ok {
			return p, nil
		}

		return "", errNotFound(name, basedir)
	}

	dir := base
	for {
		// a modules directory never nests another one directly.
		if filepath.Base(dir) != r.modulesDir() {
			candidate := filepath.Join(dir, r.modulesDir(), filepath.FromSlash(name))
			if p, ok := r.resolveFileOrDir(candidate); ok {
				return p, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errNotFound(name, basedir)
}

// DescriptorPath returns the path of the package descriptor of the package
// rooted at dir.
func (r *Resolver) DescriptorPath(dir string) string {
	return filepath.Join(dir, r.descriptorName())
}

// PackageOf returns the descriptor of the package containing path, found by
// walking up from path. It returns an empty Package when none is found.
func (r *Resolver) PackageOf(path string) Package {
	p, ok := FindUp(r.descriptorName(), path)
	if !ok {
		return Package{}
	}

	return ReadPackage(p)
}

func (r *Resolver) resolveFileOrDir(target string) (string, bool) {
	if p, ok := r.resolveFile(target); ok {
		return p, true
	}

	return r.resolveDir(target)
}

func (r *Resolver) resolveFile(target string) (string, bool) {
	if isFile(target) {
		return target, true
	}

	for _, ext := range r.extensions() {
		if isFile(target + ext) {
			return target + ext, true
		}
	}

	return "", false
}

func (r *Resolver) resolveDir(target string) (string, bool) {
	if !isDir(target) {
		return "", false
	}

	pkg := ReadPackage(filepath.Join(target, r.descriptorName()))
	if main := pkg.Main(); main != "" {
		entry := filepath.Join(target, filepath.FromSlash(main))
		if p, ok := r.resolveFile(entry); ok {
			return p, true
		}

		if p, ok := r.resolveIndex(entry); ok {
			return p, true
		}
	}

	return r.resolveIndex(target)
}

func (r *Resolver) resolveIndex(dir string) (string, bool) {
	for _, ext := range r.extensions() {
		candidate := filepath.Join(dir, "index"+ext)
		if isFile(candidate) {
			return candidate, true
		}
	}

	return "", false
}

func (r *Resolver) modulesDir() string {
	if r.ModulesDir == "" {
		return DefaultModulesDir
	}

	return r.ModulesDir
}

func (r *Resolver) descriptorName() string {
	if r.DescriptorName == "" {
		return DefaultDescriptorName
	}

	return r.DescriptorName
}

func (r *Resolver) extensions() []string {
	if r.Extensions == nil {
		return DefaultExtensions
	}

	return r.Extensions
}

func isPathLike(name string) bool {
	return strings.HasPrefix(name, "./") ||
		strings.HasPrefix(name, "../") ||
		name == "." || name == ".." ||
		filepath.IsAbs(filepath.FromSlash(name))
}

func errNotFound(name, basedir string) error {
	return flaterrors.Join(
		fmt.Errorf("cannot find module %q from %q", name, basedir), //nolint:err113
		ErrModuleNotFound,
	)
}
