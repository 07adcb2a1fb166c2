// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

/*
#cgo CFLAGS: -Werror

#include <jni.h>

static jint androidenv_jni_GetEnv(JavaVM *vm, JNIEnv **env, jint version) {
	return (*vm)->GetEnv(vm, (void **)env, version);
}

static jint androidenv_jni_AttachCurrentThread(JavaVM *vm, JNIEnv **p_env, void *thr_args) {
	return (*vm)->AttachCurrentThread(vm, p_env, thr_args);
}

static jint androidenv_jni_DetachCurrentThread(JavaVM *vm) {
	return (*vm)->DetachCurrentThread(vm);
}
*/
import "C"

import "unsafe"

// jniRuntime calls through the JavaVM invocation table.
type jniRuntime struct{}

var nativeRuntime Runtime = jniRuntime{}

func javaVM(vm *JavaVM) *C.JavaVM {
	return (*C.JavaVM)(unsafe.Pointer(vm.raw))
}

func (jniRuntime) GetEnv(vm *JavaVM, version Version) (uintptr, Status) {
	var env *C.JNIEnv
	res := C.androidenv_jni_GetEnv(javaVM(vm), &env, C.jint(version))
	return uintptr(unsafe.Pointer(env)), Status(res)
}

func (jniRuntime) AttachCurrentThread(vm *JavaVM) (uintptr, Status) {
	var env *C.JNIEnv
	res := C.androidenv_jni_AttachCurrentThread(javaVM(vm), &env, nil)
	return uintptr(unsafe.Pointer(env)), Status(res)
}

func (jniRuntime) DetachCurrentThread(vm *JavaVM) Status {
	return Status(C.androidenv_jni_DetachCurrentThread(javaVM(vm)))
}
