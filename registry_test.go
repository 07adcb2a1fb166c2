// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSetVMOnce(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.VM()
	require.False(t, ok)

	first := mustVM(0x1000)
	require.NoError(t, reg.SetVM(first))

	second := mustVM(0x2000)
	err := reg.SetVM(second)
	require.ErrorIs(t, err, ErrAlreadySet)
	var ase *AlreadySetError[*JavaVM]
	require.True(t, errors.As(err, &ase))
	require.Same(t, second, ase.Rejected)

	vm, ok := reg.VM()
	require.True(t, ok)
	require.Same(t, first, vm)
}

func TestSetActivityGetterOnce(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.ActivityGetter()
	require.False(t, ok)

	require.NoError(t, reg.SetActivityGetter(func() (uintptr, uintptr) { return 0, 1 }))
	err := reg.SetActivityGetter(func() (uintptr, uintptr) { return 0, 2 })
	require.ErrorIs(t, err, ErrAlreadySet)
	var ase *AlreadySetError[ActivityGetter]
	require.True(t, errors.As(err, &ase))
	_, activity := ase.Rejected()
	require.Equal(t, uintptr(2), activity)

	g, ok := reg.ActivityGetter()
	require.True(t, ok)
	_, activity = g()
	require.Equal(t, uintptr(1), activity)
}

func TestSetNil(t *testing.T) {
	reg := NewRegistry()
	require.ErrorIs(t, reg.SetVM(nil), ErrNullPointer)
	require.ErrorIs(t, reg.SetActivityGetter(nil), ErrNullPointer)
	_, ok := reg.VM()
	require.False(t, ok)
	_, ok = reg.ActivityGetter()
	require.False(t, ok)
}

func TestConcurrentSetVM(t *testing.T) {
	const n = 64
	reg := NewRegistry()
	var wins atomic.Int32
	var g errgroup.Group
	for i := 0; i < n; i++ {
		vm := mustVM(uintptr(0x1000 + i))
		g.Go(func() error {
			err := reg.SetVM(vm)
			switch {
			case err == nil:
				wins.Add(1)
			case !errors.Is(err, ErrAlreadySet):
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, int32(1), wins.Load())

	winner, ok := reg.VM()
	require.True(t, ok)
	require.NoError(t, reg.SetActivityGetter(func() (uintptr, uintptr) { return 0, 0x2000 }))

	rt := &fakeRuntime{env: 0x3000}
	r := newTestResolver(reg, rt)
	var rg errgroup.Group
	for i := 0; i < n; i++ {
		rg.Go(func() error {
			if _, ok := Resolve(r, func(*Env, *Object) bool { return true }); !ok {
				return errors.New("resolution failed")
			}
			return nil
		})
	}
	require.NoError(t, rg.Wait())

	rt.mu.Lock()
	defer rt.mu.Unlock()
	require.Len(t, rt.getEnvCalls, n)
	for _, vm := range rt.getEnvCalls {
		require.Equal(t, winner.Raw(), vm)
	}
}
