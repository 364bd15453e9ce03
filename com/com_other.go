//go:build !windows
// +build !windows

package com

import (
	"errors"
	"fmt"
)

var errNotImplemented = errors.New("not implemented")

type HRESULT uintptr

func (h HRESULT) Error() string { return fmt.Sprintf("hresult 0x%08X", uintptr(h)) }

type ErrUnsupported struct{}

func (ErrUnsupported) Error() string { return "windows runtime not available" }

type Com struct{}

func InitSTA() (*Com, error) { return nil, errNotImplemented }

func InitMTA() (*Com, error) { return nil, errNotImplemented }

func (c *Com) Uninit() {}

type WinRT struct{}

func RoInitSTA() (*WinRT, error) { return nil, errNotImplemented }

func RoInitMTA() (*WinRT, error) { return nil, errNotImplemented }

func (r *WinRT) Uninit() {}
