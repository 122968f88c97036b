//go:build unit

package resolve

import (
	"path/filepath"
	"testing"

	"github.com/alexandremahdhaoui/liftoff/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the main entry of a module installed in an ancestor", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		want := testutil.InstallModule(t, root, "demo", "lib/cli.js")
		basedir := testutil.MkdirAll(t, filepath.Join(root, "a", "b"))

		got, err := (&Resolver{}).Resolve("demo", basedir)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("should prefer the closest install", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		testutil.InstallModule(t, root, "demo", "")
		nested := testutil.MkdirAll(t, filepath.Join(root, "nested"))
		want := testutil.InstallModule(t, nested, "demo", "")

		got, err := (&Resolver{}).Resolve("demo", nested)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("should fall back to index.js", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		want := testutil.InstallModule(t, root, "demo", "")

		got, err := (&Resolver{}).Resolve("demo", root)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, "index.js", filepath.Base(got))
	})

	t.Run("should resolve a main entry pointing to a directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		pkgDir := filepath.Join(root, "node_modules", "demo")
		testutil.WritePackage(t, pkgDir, map[string]any{"name": "demo", "main": "lib"})
		want := testutil.WriteFile(t, filepath.Join(pkgDir, "lib", "index.js"), "")

		got, err := (&Resolver{}).Resolve("demo", root)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("should resolve a single-file module with an extension", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		want := testutil.WriteFile(t, filepath.Join(root, "node_modules", "single.js"), "")

		got, err := (&Resolver{}).Resolve("single", root)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("should resolve scoped names", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		want := testutil.InstallModule(t, root, "@scope/demo", "main.js")

		got, err := (&Resolver{}).Resolve("@scope/demo", root)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("should resolve relative names against basedir only", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		want := testutil.WriteFile(t, filepath.Join(root, "lib", "register.js"), "")

		got, err := (&Resolver{}).Resolve("./lib/register", root)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		_, err = (&Resolver{}).Resolve("./lib/register", filepath.Join(root, "lib"))
		assert.ErrorIs(t, err, ErrModuleNotFound)
	})

	t.Run("should honor a custom modules directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		want := testutil.WriteFile(t, filepath.Join(root, "vendor", "demo", "index.js"), "")

		got, err := (&Resolver{ModulesDir: "vendor"}).Resolve("demo", root)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("should return ErrModuleNotFound when nothing matches", func(t *testing.T) {
		t.Parallel()

		_, err := (&Resolver{}).Resolve("liftoff-test-does-not-exist", t.TempDir())
		assert.ErrorIs(t, err, ErrModuleNotFound)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		t.Parallel()

		_, err := (&Resolver{}).Resolve("", t.TempDir())
		assert.ErrorIs(t, err, ErrEmptyModuleName)
	})
}

func TestResolver_PackageOf(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	entry := testutil.InstallModule(t, root, "demo", "lib/cli.js")

	pkg := (&Resolver{}).PackageOf(entry)
	assert.Equal(t, "demo", pkg.Name())
	assert.Equal(t, "lib/cli.js", pkg.Main())
}

func TestDescriptorLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("should return the module and its package", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		entry := testutil.InstallModule(t, root, "demo", "")

		v, err := DescriptorLoader{}.Load("demo", entry)
		require.NoError(t, err)

		mod, ok := v.(*Module)
		require.True(t, ok)
		assert.Equal(t, "demo", mod.Name)
		assert.Equal(t, entry, mod.Path)
		assert.Equal(t, "demo", mod.Package.Name())
	})

	t.Run("should fail on a directory", func(t *testing.T) {
		t.Parallel()

		_, err := DescriptorLoader{}.Load("demo", t.TempDir())
		assert.ErrorIs(t, err, ErrLoadingModule)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := DescriptorLoader{}.Load("demo", filepath.Join(t.TempDir(), "missing.js"))
		assert.ErrorIs(t, err, ErrLoadingModule)
	})
}
