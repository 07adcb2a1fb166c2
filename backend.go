// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

import (
	"github.com/project-robius/robius-android-env/androidctx"
)

// Raw is the set of raw pointers a Backend supplies for one resolution.
type Raw struct {
	// Env is the JNIEnv* of the calling thread, or 0 if the backend
	// cannot supply one.
	Env uintptr
	// VM is the JavaVM* to obtain a JNIEnv from when Env is 0. It may
	// be 0 if Env is set.
	VM uintptr
	// Activity is the current activity jobject. It is not checked and
	// may be null.
	Activity uintptr
}

// Backend supplies the raw pointers exposed by a particular UI toolkit.
// Implementations must return pointers that are valid on the calling thread
// for the duration of the resolution.
type Backend interface {
	Current() (Raw, error)
}

// RegistryBackend reads the ActivityGetter and JavaVM registered with a
// Registry. It serves toolkits that register their state explicitly.
type RegistryBackend struct {
	Registry *Registry
}

func (b RegistryBackend) Current() (Raw, error) {
	g, ok := b.Registry.ActivityGetter()
	if !ok {
		return Raw{}, ErrNoActivityGetter
	}
	env, activity := g()
	raw := Raw{Env: env, Activity: activity}
	if vm, ok := b.Registry.VM(); ok {
		raw.VM = vm.Raw()
	}
	return raw, nil
}

// ContextBackend reads the (JavaVM, context) pair published in an
// androidctx.Store. It does not use any Registry.
type ContextBackend struct {
	Store *androidctx.Store
}

func (b ContextBackend) Current() (Raw, error) {
	c, ok := b.Store.Load()
	if !ok {
		return Raw{}, ErrNoContext
	}
	return Raw{VM: c.VM, Activity: c.Context}, nil
}

// AccessorBackend calls a toolkit's global accessors for the JavaVM and the
// activity. The JNIEnv is always obtained from the JavaVM.
type AccessorBackend struct {
	JavaVM   func() uintptr
	Activity func() uintptr
}

func (b AccessorBackend) Current() (Raw, error) {
	if b.JavaVM == nil || b.Activity == nil {
		return Raw{}, ErrNoVM
	}
	vm := b.JavaVM()
	if vm == 0 {
		return Raw{}, ErrNoVM
	}
	return Raw{VM: vm, Activity: b.Activity()}, nil
}
