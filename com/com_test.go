//go:build windows
// +build windows

package com

import (
	"runtime"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_Com(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	t.Run("balanced", func(t *testing.T) {
		c, err := InitMTA()
		require.NoError(t, err)
		c.Uninit()
		c.Uninit() // second is a no-op

		// thread is clean again, a fresh init must succeed
		c, err = InitMTA()
		require.NoError(t, err)
		c.Uninit()
	})

	t.Run("already-initialized", func(t *testing.T) {
		c, err := InitMTA()
		require.NoError(t, err)
		defer c.Uninit()

		// same model reports S_FALSE, a changed model RPC_E_CHANGED_MODE;
		// both are surfaced as errors
		_, err = InitMTA()
		require.Error(t, err)
		_, err = InitSTA()
		require.Error(t, err)
	})
}

func Test_WinRT(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	r, err := RoInitMTA()
	if errors.Is(err, ErrUnsupported{}) {
		t.Skip("windows runtime not available")
	}
	require.NoError(t, err)
	r.Uninit()
	r.Uninit()
}
