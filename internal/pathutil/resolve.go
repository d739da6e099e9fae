// Package pathutil canonicalizes filesystem paths for identity comparison.
package pathutil

import "path/filepath"

// Resolve returns the canonical form of path: absolute, with every symlink
// component resolved. When full resolution is not possible (the path does
// not exist, or a component is unreadable) it falls back to the
// syntactically absolute form. Resolution never returns an error — callers
// depend on always getting a comparable string back.
//
// Two paths name the same filesystem object iff their resolved forms are
// byte-equal. This is the only identity test the reconciler uses.
func Resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}
