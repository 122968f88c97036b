// Package liftoff bootstraps command-line tools that look for a project-local
// configuration file and prefer the project's own install of the tool over a
// global one.
//
// A Liftoff is built once from a Config describing the tool (its name, the
// base name of its configuration file, the extensions that configuration may
// use and the search paths to look in). Each call to BuildEnvironment then
// resolves, for a set of per-invocation Options:
//
//   - the working directory;
//   - the first configuration file found in the search paths;
//   - the tool's local module, resolved from the configuration directory, or
//     the configuration directory itself when the tool is being developed
//     against its own working copy;
//   - the modules that must be preloaded before the configuration can be
//     consumed.
//
// Every lookup failure degrades to an absent (empty) field of the returned
// Environment; callers decide how to react.
//
// Example usage:
//
//	l, err := liftoff.New(liftoff.Config{
//	    Name:       "demo",
//	    Extensions: map[string]string{".js": "", ".ts": "ts-node/register"},
//	})
//	if err != nil {
//	    return err
//	}
//
//	return l.Launch(liftoff.Options{}, func(l *liftoff.Liftoff, env *liftoff.Environment) error {
//	    if env.ConfigPath == "" {
//	        return errors.New("no demofile found")
//	    }
//	    // ...
//	    return nil
//	})
package liftoff
