// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// fakeRuntime stands in for the JNI invocation interface.
type fakeRuntime struct {
	mu sync.Mutex

	env          uintptr
	getEnvStatus Status
	attachStatus Status
	detachStatus Status

	getEnvCalls []uintptr
	attached    int
	detached    int
}

func (rt *fakeRuntime) GetEnv(vm *JavaVM, version Version) (uintptr, Status) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.getEnvCalls = append(rt.getEnvCalls, vm.Raw())
	if rt.getEnvStatus != StatusOK {
		return 0, rt.getEnvStatus
	}
	return rt.env, StatusOK
}

func (rt *fakeRuntime) AttachCurrentThread(vm *JavaVM) (uintptr, Status) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.attachStatus != StatusOK {
		return 0, rt.attachStatus
	}
	rt.attached++
	return rt.env, StatusOK
}

func (rt *fakeRuntime) DetachCurrentThread(vm *JavaVM) Status {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.detached++
	return rt.detachStatus
}

func (rt *fakeRuntime) counts() (attached, detached int) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.attached, rt.detached
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestResolver(reg *Registry, rt Runtime) *Resolver {
	return NewResolver(Config{
		Backend: RegistryBackend{Registry: reg},
		Runtime: rt,
		Logger:  quietLogger(),
	})
}

func mustVM(raw uintptr) *JavaVM {
	vm, err := JavaVMFromRaw(raw)
	if err != nil {
		panic(err)
	}
	return vm
}
