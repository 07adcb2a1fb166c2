// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadySet is matched by the errors returned when a write-once
	// value is registered a second time.
	ErrAlreadySet = errors.New("androidenv: already set")
	// ErrNullPointer is returned when a required raw pointer is null.
	ErrNullPointer = errors.New("androidenv: null pointer")
	// ErrNoActivityGetter is returned when no ActivityGetter is registered.
	ErrNoActivityGetter = errors.New("androidenv: no activity getter registered")
	// ErrNoContext is returned when the shared Android context is not
	// initialized.
	ErrNoContext = errors.New("androidenv: android context not initialized")
	// ErrNoVM is returned when a JavaVM is needed but none is available.
	ErrNoVM = errors.New("androidenv: no JavaVM available")
)

// AlreadySetError carries the value rejected by a second registration.
type AlreadySetError[T any] struct {
	// What names the registered value.
	What string
	// Rejected is the value passed to the failed registration.
	Rejected T
}

func (e *AlreadySetError[T]) Error() string {
	return fmt.Sprintf("androidenv: %s already set", e.What)
}

func (e *AlreadySetError[T]) Is(target error) bool {
	return target == ErrAlreadySet
}

// StatusError reports a failed JNI invocation.
type StatusError struct {
	Op     string
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("androidenv: %s failed: %v", e.Op, e.Status)
}
