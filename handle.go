// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

// The functions in this file are the only places raw pointers from toolkits
// become handles. None of them can check that a pointer is live or of the
// right type; callers guarantee that for as long as the handle is used.

// JavaVM is a handle to the process' JavaVM.
type JavaVM struct {
	raw uintptr
}

// Env is a handle to a JNIEnv. It is only valid on the OS thread it was
// obtained on, and only for the duration of one resolution.
type Env struct {
	raw uintptr
}

// Object is a handle to a jobject. A null jobject is a valid Object.
type Object struct {
	raw uintptr
}

// JavaVMFromRaw wraps a JavaVM* pointer. It fails only for a null pointer.
//
// The pointer must refer to the live JavaVM of the process.
func JavaVMFromRaw(p uintptr) (*JavaVM, error) {
	if p == 0 {
		return nil, ErrNullPointer
	}
	return &JavaVM{raw: p}, nil
}

// EnvFromRaw wraps a JNIEnv* pointer. It fails only for a null pointer.
//
// The pointer must belong to the calling OS thread and stay valid while the
// Env is in use.
func EnvFromRaw(p uintptr) (*Env, error) {
	if p == 0 {
		return nil, ErrNullPointer
	}
	return &Env{raw: p}, nil
}

// ObjectFromRaw wraps a jobject reference without any checks.
func ObjectFromRaw(p uintptr) Object {
	return Object{raw: p}
}

// Raw returns the JavaVM* pointer.
func (vm *JavaVM) Raw() uintptr {
	return vm.raw
}

// Raw returns the JNIEnv* pointer, or 0 after the handle was invalidated.
func (e *Env) Raw() uintptr {
	return e.raw
}

// Raw returns the jobject reference.
func (o *Object) Raw() uintptr {
	return o.raw
}

// IsNull reports whether o is the null reference.
func (o *Object) IsNull() bool {
	return o.raw == 0
}

func (e *Env) invalidate() {
	e.raw = 0
}

func (o *Object) invalidate() {
	o.raw = 0
}
