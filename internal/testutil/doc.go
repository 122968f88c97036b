// Package testutil provides filesystem fixtures and command helpers shared by
// the unit and e2e tests.
//
// Fixtures are rooted in t.TempDir() and describe project trees: a
// configuration file next to the working directory, packages installed under
// node_modules, and package descriptors declaring "name" and "main".
package testutil
