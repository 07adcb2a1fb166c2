// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android

package androidenv

// Outside Android there is no JavaVM to attach to; every call fails and
// resolution through a JavaVM reports an absent result.
type noRuntime struct{}

var nativeRuntime Runtime = noRuntime{}

func (noRuntime) GetEnv(*JavaVM, Version) (uintptr, Status) {
	return 0, StatusErr
}

func (noRuntime) AttachCurrentThread(*JavaVM) (uintptr, Status) {
	return 0, StatusErr
}

func (noRuntime) DetachCurrentThread(*JavaVM) Status {
	return StatusErr
}
