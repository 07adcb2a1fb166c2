// SPDX-License-Identifier: Unlicense OR MIT

// Package androidctx holds the JavaVM and Android context shared between a
// UI toolkit and the packages that call into Java on its behalf.
//
// The toolkit calls Initialize once the JavaVM and its context are known
// and Release when they go away. Readers only ever Load.
package androidctx

import (
	"errors"
	"sync/atomic"
)

// Context is the shared pair of raw pointers.
type Context struct {
	// VM is the JNI *JavaVM pointer.
	VM uintptr
	// Context is a global reference to an android.content.Context,
	// typically the current Activity.
	Context uintptr
}

// Store is a process-wide slot for a Context. The zero Store is
// uninitialized.
type Store struct {
	ctx atomic.Pointer[Context]
}

var (
	ErrInitialized    = errors.New("androidctx: context already initialized")
	ErrNotInitialized = errors.New("androidctx: context not initialized")
	ErrNullVM         = errors.New("androidctx: null JavaVM")
)

var std Store

// Default returns the process-wide Store.
func Default() *Store {
	return &std
}

// Initialize publishes the JavaVM and context. It fails if the Store is
// already initialized.
func (s *Store) Initialize(vm, ctx uintptr) error {
	if vm == 0 {
		return ErrNullVM
	}
	if !s.ctx.CompareAndSwap(nil, &Context{VM: vm, Context: ctx}) {
		return ErrInitialized
	}
	return nil
}

// Release clears the Store so that it may be initialized again. The caller
// remains responsible for deleting the global context reference.
func (s *Store) Release() error {
	if s.ctx.Swap(nil) == nil {
		return ErrNotInitialized
	}
	return nil
}

// Load returns the published Context.
func (s *Store) Load() (Context, bool) {
	c := s.ctx.Load()
	if c == nil {
		return Context{}, false
	}
	return *c, true
}

// Initialize initializes the default Store.
func Initialize(vm, ctx uintptr) error {
	return std.Initialize(vm, ctx)
}

// Release releases the default Store.
func Release() error {
	return std.Release()
}

// Current returns the Context of the default Store.
func Current() (Context, bool) {
	return std.Load()
}
