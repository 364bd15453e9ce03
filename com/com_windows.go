//go:build windows
// +build windows

// Package com scopes the process-global COM and WinRT initialization
// behind ownership tokens. A token is bound to the OS thread it was
// created on: lock the thread and call Uninit there.
package com

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	modole32 = windows.NewLazySystemDLL("ole32.dll")

	procCoInitializeEx = modole32.NewProc("CoInitializeEx")
	procCoUninitialize = modole32.NewProc("CoUninitialize")
)

const (
	COINIT_MULTITHREADED     uintptr = 0x0
	COINIT_APARTMENTTHREADED uintptr = 0x2
)

// HRESULT is a failing COM status, numeric value preserved.
type HRESULT uintptr

func (h HRESULT) Error() string { return fmt.Sprintf("hresult 0x%08X", uintptr(h)) }

// Com is one outstanding COM initialization on the constructing thread.
type Com struct {
	done atomic.Bool
}

// InitSTA initializes COM single-threaded for this thread. Fails when the
// thread is already initialized, S_FALSE included.
func InitSTA() (*Com, error) { return initialize(COINIT_APARTMENTTHREADED) }

// InitMTA initializes COM multi-threaded for this thread.
func InitMTA() (*Com, error) { return initialize(COINIT_MULTITHREADED) }

func initialize(model uintptr) (*Com, error) {
	hr, _, _ := procCoInitializeEx.Call(0, model)
	if hr != 0 {
		return nil, errors.WithStack(HRESULT(hr))
	}
	return &Com{}, nil
}

// Uninit balances the initialize call exactly once. Later calls are
// no-ops.
func (c *Com) Uninit() {
	if c.done.CompareAndSwap(false, true) {
		procCoUninitialize.Call()
	}
}
