//go:build windows
// +build windows

package com

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	modcombase = windows.NewLazySystemDLL("combase.dll")

	procRoInitialize   = modcombase.NewProc("RoInitialize")
	procRoUninitialize = modcombase.NewProc("RoUninitialize")
)

const (
	RO_INIT_SINGLETHREADED uintptr = 0
	RO_INIT_MULTITHREADED  uintptr = 1
)

type ErrUnsupported struct{}

func (ErrUnsupported) Error() string { return "windows runtime not available" }

// WinRT is one outstanding Windows Runtime initialization on the
// constructing thread. Independent of Com; a thread may hold both.
type WinRT struct {
	done atomic.Bool
}

// RoInitSTA initializes the Windows Runtime single-threaded for this
// thread. Fails with ErrUnsupported when combase.dll or its exports are
// missing.
func RoInitSTA() (*WinRT, error) { return roInitialize(RO_INIT_SINGLETHREADED) }

// RoInitMTA initializes the Windows Runtime multi-threaded for this
// thread.
func RoInitMTA() (*WinRT, error) { return roInitialize(RO_INIT_MULTITHREADED) }

func roInitialize(model uintptr) (*WinRT, error) {
	if procRoInitialize.Find() != nil || procRoUninitialize.Find() != nil {
		return nil, errors.WithStack(ErrUnsupported{})
	}
	hr, _, _ := procRoInitialize.Call(model)
	if hr != 0 {
		return nil, errors.WithStack(HRESULT(hr))
	}
	return &WinRT{}, nil
}

// Uninit balances the initialize call exactly once.
func (r *WinRT) Uninit() {
	if r.done.CompareAndSwap(false, true) {
		procRoUninitialize.Call()
	}
}
