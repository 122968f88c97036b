package resolve

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexandremahdhaoui/liftoff/pkg/flaterrors"
)

// Loader loads the value exported by the module whose entry point was
// resolved to path.
type Loader interface {
	Load(name, path string) (any, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(name, path string) (any, error)

// Load calls f(name, path).
func (f LoaderFunc) Load(name, path string) (any, error) {
	return f(name, path)
}

// Module is the value returned by DescriptorLoader.
type Module struct {
	Name    string  `json:"name"`
	Path    string  `json:"path"`
	Package Package `json:"package"`
}

// ErrLoadingModule is returned when a resolved entry point cannot be loaded.
var ErrLoadingModule = errors.New("loading module")

// DescriptorLoader is the default Loader. It checks that the entry point is a
// regular file and returns a *Module carrying the descriptor of the package
// the entry point belongs to.
type DescriptorLoader struct {
	Resolver *Resolver
}

// Load implements Loader.
func (l DescriptorLoader) Load(name, path string) (any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, flaterrors.Join(err, ErrLoadingModule)
	}

	if !info.Mode().IsRegular() {
		return nil, flaterrors.Join(
			fmt.Errorf("entry point %q of %q is not a regular file", path, name), //nolint:err113
			ErrLoadingModule,
		)
	}

	r := l.Resolver
	if r == nil {
		r = &Resolver{}
	}

	return &Module{
		Name:    name,
		Path:    path,
		Package: r.PackageOf(path),
	}, nil
}
