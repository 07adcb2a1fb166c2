// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

import "sync"

var stdResolver = sync.OnceValue(func() *Resolver {
	return NewResolver(Config{})
})

// DefaultResolver returns the Resolver used by WithActivity. It reads the
// default Registry on every call, so registrations made after its creation
// are observed.
func DefaultResolver() *Resolver {
	return stdResolver()
}

// WithActivity calls f with the current JNIEnv and activity and returns its
// result.
//
// It returns false, and does not call f, if:
//   - no source of the current activity is available, such as when no
//     ActivityGetter has been registered;
//   - the current JNIEnv cannot be obtained.
func WithActivity[R any](f func(env *Env, activity *Object) R) (R, bool) {
	return Resolve(DefaultResolver(), f)
}
