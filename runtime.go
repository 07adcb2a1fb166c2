// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Runtime is the part of the JNI invocation interface needed to obtain a
// JNIEnv for the calling thread.
type Runtime interface {
	GetEnv(vm *JavaVM, version Version) (env uintptr, st Status)
	AttachCurrentThread(vm *JavaVM) (env uintptr, st Status)
	DetachCurrentThread(vm *JavaVM) Status
}

// Status is a JNI return code.
type Status int32

const (
	StatusOK        Status = 0  // JNI_OK
	StatusErr       Status = -1 // JNI_ERR
	StatusDetached  Status = -2 // JNI_EDETACHED
	StatusVersion   Status = -3 // JNI_EVERSION
	StatusNoMemory  Status = -4 // JNI_ENOMEM
	StatusExists    Status = -5 // JNI_EEXIST
	StatusInvalArgs Status = -6 // JNI_EINVAL
)

// Version is a JNI version as passed to GetEnv.
type Version int32

const (
	Version1_6 Version = 0x00010006
	Version1_8 Version = 0x00010008
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "JNI_OK"
	case StatusErr:
		return "JNI_ERR"
	case StatusDetached:
		return "JNI_EDETACHED"
	case StatusVersion:
		return "JNI_EVERSION"
	case StatusNoMemory:
		return "JNI_ENOMEM"
	case StatusExists:
		return "JNI_EEXIST"
	case StatusInvalArgs:
		return "JNI_EINVAL"
	default:
		return fmt.Sprintf("JNI status %d", int32(s))
	}
}

// attachEnv returns the JNIEnv of the calling thread, attaching the thread
// to vm if necessary. The returned release function detaches a thread that
// was attached here, unless keep is set. The caller must hold the OS thread
// locked until release has run.
func attachEnv(rt Runtime, vm *JavaVM, version Version, keep bool, logger *log.Logger) (*Env, func(), error) {
	noop := func() {}
	p, st := rt.GetEnv(vm, version)
	switch st {
	case StatusOK:
		env, err := EnvFromRaw(p)
		if err != nil {
			return nil, nil, fmt.Errorf("androidenv: GetEnv: %w", err)
		}
		return env, noop, nil
	case StatusDetached:
	default:
		return nil, nil, &StatusError{Op: "GetEnv", Status: st}
	}
	p, st = rt.AttachCurrentThread(vm)
	if st != StatusOK {
		return nil, nil, &StatusError{Op: "AttachCurrentThread", Status: st}
	}
	tid := threadID()
	logger.Debug("attached thread", "tid", tid)
	release := func() {
		if keep {
			return
		}
		if st := rt.DetachCurrentThread(vm); st != StatusOK {
			logger.Warn("DetachCurrentThread failed", "tid", tid, "status", st)
			return
		}
		logger.Debug("detached thread", "tid", tid)
	}
	env, err := EnvFromRaw(p)
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("androidenv: AttachCurrentThread: %w", err)
	}
	return env, release, nil
}
