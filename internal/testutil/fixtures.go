package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// TestingT is the subset of testing.T methods that we use.
// This allows for easier testing of the testutil package itself.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
	Fatal(args ...interface{})
}

// WriteFile writes content to path, creating parent directories as needed.
// It returns path.
func WriteFile(t TestingT, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}

	return path
}

// MkdirAll creates dir and its parents and returns dir.
func MkdirAll(t TestingT, dir string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	return dir
}

// WritePackage writes a package.json holding fields into dir and returns its path.
func WritePackage(t TestingT, dir string, fields map[string]any) string {
	t.Helper()

	b, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal package descriptor: %v", err)
	}

	return WriteFile(t, filepath.Join(dir, "package.json"), string(b))
}

// InstallModule installs a package called name under dir/node_modules.
// The package declares main as its entry point, or relies on index.js when
// main is empty. It returns the absolute path of the entry point.
func InstallModule(t TestingT, dir, name, main string) string {
	t.Helper()

	pkgDir := filepath.Join(dir, "node_modules", filepath.FromSlash(name))

	fields := map[string]any{"name": name, "version": "1.0.0"}
	entry := "index.js"
	if main != "" {
		fields["main"] = main
		entry = main
	}

	WritePackage(t, pkgDir, fields)
	path := WriteFile(t, filepath.Join(pkgDir, filepath.FromSlash(entry)), "module.exports = {};\n")

	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("failed to resolve %s: %v", path, err)
	}

	return abs
}

// EvalDir returns dir with symlinks resolved, so that paths built from
// t.TempDir() compare equal to paths returned by os.Getwd on systems where
// the temporary directory is a symlink.
func EvalDir(t TestingT, dir string) string {
	t.Helper()

	out, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("failed to evaluate symlinks of %s: %v", dir, err)
	}

	return out
}
