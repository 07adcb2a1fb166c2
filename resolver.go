// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

import (
	"runtime"

	"github.com/charmbracelet/log"

	ilog "github.com/project-robius/robius-android-env/internal/log"
)

// Config configures a Resolver. The zero Config resolves through the
// build's default backend over the default Registry.
type Config struct {
	// Registry backs the default backend. Defaults to Default().
	Registry *Registry
	// Backend supplies the raw pointers. Defaults to the backend
	// selected by build tags.
	Backend Backend
	// Runtime obtains a JNIEnv from a JavaVM. Defaults to the JNI.
	Runtime Runtime
	// Version is the JNI version requested from GetEnv. Defaults to
	// Version1_6.
	Version Version
	// KeepAttached leaves threads attached by a resolution attached to
	// the JavaVM afterwards.
	KeepAttached bool
	// Logger receives debug output about failed resolutions.
	Logger *log.Logger
}

// Resolver hands the current JNIEnv and activity to functions.
type Resolver struct {
	backend Backend
	rt      Runtime
	version Version
	keep    bool
	logger  *log.Logger
}

// NewResolver returns a Resolver for cfg.
func NewResolver(cfg Config) *Resolver {
	if cfg.Registry == nil {
		cfg.Registry = std
	}
	if cfg.Backend == nil {
		cfg.Backend = defaultBackend(cfg.Registry)
	}
	if cfg.Runtime == nil {
		cfg.Runtime = nativeRuntime
	}
	if cfg.Version == 0 {
		cfg.Version = Version1_6
	}
	if cfg.Logger == nil {
		cfg.Logger = ilog.New(ilog.Tag)
	}
	return &Resolver{
		backend: cfg.Backend,
		rt:      cfg.Runtime,
		version: cfg.Version,
		keep:    cfg.KeepAttached,
		logger:  cfg.Logger,
	}
}

// Run calls f once with the current JNIEnv and activity. If either cannot be
// obtained, f is not called and the error says why.
//
// The handles are valid only until f returns; afterwards they read as null.
func (r *Resolver) Run(f func(env *Env, activity *Object)) error {
	// A JNIEnv belongs to one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	raw, err := r.backend.Current()
	if err != nil {
		return err
	}
	activity := ObjectFromRaw(raw.Activity)
	env, release, err := r.env(raw)
	if err != nil {
		return err
	}
	defer release()
	defer activity.invalidate()
	defer env.invalidate()
	f(env, &activity)
	return nil
}

func (r *Resolver) env(raw Raw) (*Env, func(), error) {
	if env, err := EnvFromRaw(raw.Env); err == nil {
		return env, func() {}, nil
	}
	vm, err := JavaVMFromRaw(raw.VM)
	if err != nil {
		return nil, nil, ErrNoVM
	}
	return attachEnv(r.rt, vm, r.version, r.keep, r.logger)
}

// Resolve calls f with the current JNIEnv and activity and returns its
// result. It reports false, without calling f, if either cannot be obtained.
func Resolve[R any](r *Resolver, f func(env *Env, activity *Object) R) (R, bool) {
	var res R
	err := r.Run(func(env *Env, activity *Object) {
		res = f(env, activity)
	})
	if err != nil {
		r.logger.Debug("no activity", "err", err)
		var zero R
		return zero, false
	}
	return res, true
}
