// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

import "sync/atomic"

// ActivityGetter returns raw pointers to the JNIEnv of the calling thread and
// to the current activity. An env of 0 means the getter cannot supply one, in
// which case the registered JavaVM is used instead.
type ActivityGetter func() (env, activity uintptr)

// Registry holds the write-once JavaVM and ActivityGetter. Each value can be
// set exactly once; the zero Registry is empty and ready to use.
type Registry struct {
	vm     atomic.Pointer[JavaVM]
	getter atomic.Pointer[ActivityGetter]
}

var std = new(Registry)

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return new(Registry)
}

// Default returns the process-wide Registry used by SetVM,
// SetActivityGetter and WithActivity.
func Default() *Registry {
	return std
}

// SetVM registers vm. It returns an *AlreadySetError holding vm if a JavaVM
// was registered before; the earlier JavaVM is kept.
func (r *Registry) SetVM(vm *JavaVM) error {
	if vm == nil {
		return ErrNullPointer
	}
	if !r.vm.CompareAndSwap(nil, vm) {
		return &AlreadySetError[*JavaVM]{What: "JavaVM", Rejected: vm}
	}
	return nil
}

// SetActivityGetter registers g. It returns an *AlreadySetError holding g if
// a getter was registered before; the earlier getter is kept.
//
// Registration trusts g completely: every pointer it returns must be live
// and of the right type for the duration of the call that requested it.
func (r *Registry) SetActivityGetter(g ActivityGetter) error {
	if g == nil {
		return ErrNullPointer
	}
	if !r.getter.CompareAndSwap(nil, &g) {
		return &AlreadySetError[ActivityGetter]{What: "activity getter", Rejected: g}
	}
	return nil
}

// VM returns the registered JavaVM.
func (r *Registry) VM() (*JavaVM, bool) {
	vm := r.vm.Load()
	return vm, vm != nil
}

// ActivityGetter returns the registered getter.
func (r *Registry) ActivityGetter() (ActivityGetter, bool) {
	g := r.getter.Load()
	if g == nil {
		return nil, false
	}
	return *g, true
}

// SetVM registers vm with the default Registry.
func SetVM(vm *JavaVM) error {
	return std.SetVM(vm)
}

// SetActivityGetter registers g with the default Registry. See
// Registry.SetActivityGetter for the trust placed in g.
func SetActivityGetter(g ActivityGetter) error {
	return std.SetActivityGetter(g)
}
