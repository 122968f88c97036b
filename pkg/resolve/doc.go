// Package resolve implements the module resolution primitives used to locate
// a tool's locally-installed package.
//
// Resolution follows the ancestor-walk convention of package managers that
// install dependencies next to the project using them:
//
//	<basedir>/node_modules/<name>
//	<basedir>/../node_modules/<name>
//	...
//	/node_modules/<name>
//
// Each candidate is tried as a file (with and without the configured
// extensions) and then as a directory whose package descriptor (package.json)
// declares a "main" entry, falling back to an "index" file.
//
// The modules directory, the descriptor file name and the extensions are
// configurable on the Resolver. The zero value uses the defaults above.
package resolve
