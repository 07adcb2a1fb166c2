// SPDX-License-Identifier: Unlicense OR MIT

package androidctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	s := new(Store)
	_, ok := s.Load()
	require.False(t, ok)

	require.NoError(t, s.Initialize(0x10, 0x20))
	require.ErrorIs(t, s.Initialize(0x30, 0x40), ErrInitialized)

	c, ok := s.Load()
	require.True(t, ok)
	require.Equal(t, Context{VM: 0x10, Context: 0x20}, c)

	require.NoError(t, s.Release())
	require.ErrorIs(t, s.Release(), ErrNotInitialized)
	_, ok = s.Load()
	require.False(t, ok)

	require.NoError(t, s.Initialize(0x30, 0))
	c, ok = s.Load()
	require.True(t, ok)
	require.Equal(t, Context{VM: 0x30}, c)
}

func TestStoreNullVM(t *testing.T) {
	s := new(Store)
	require.ErrorIs(t, s.Initialize(0, 0x20), ErrNullVM)
	_, ok := s.Load()
	require.False(t, ok)
}
