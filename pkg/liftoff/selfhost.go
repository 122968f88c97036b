package liftoff

import (
	"path/filepath"

	"github.com/alexandremahdhaoui/liftoff/pkg/resolve"
)

const defaultMain = "index.js"

// findModule resolves the tool's local module from dir.
func (l *Liftoff) findModule(dir string) (string, resolve.Package) {
	path, err := l.cfg.Resolver.Resolve(l.cfg.ModuleName, dir)
	if err != nil {
		l.logger.Debug("local module not found", "module", l.cfg.ModuleName, "basedir", dir, "error", err)
		return "", resolve.Package{}
	}

	return path, l.cfg.Resolver.PackageOf(path)
}

// selfHost checks whether configBase is the root of the tool's own package,
// i.e. the tool is run against its own working copy.
// On success it returns the entry point declared by the package descriptor.
func (l *Liftoff) selfHost(configBase string) (string, resolve.Package, bool) {
	pkg := resolve.ReadPackage(l.cfg.Resolver.DescriptorPath(configBase))
	if pkg.Name() != l.cfg.ModuleName {
		return "", resolve.Package{}, false
	}

	main := pkg.Main()
	if main == "" {
		main = defaultMain
	}

	return filepath.Join(configBase, filepath.FromSlash(main)), pkg, true
}
