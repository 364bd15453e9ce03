//go:build windows
// +build windows

package winutils

import (
	"unsafe"

	"github.com/lysShub/winutils-go/wstr"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	moduser32  = windows.NewLazySystemDLL("user32.dll")
	modsecur32 = windows.NewLazySystemDLL("secur32.dll")

	procMessageBoxW        = moduser32.NewProc("MessageBoxW")
	procGetUserNameExW     = modsecur32.NewProc("GetUserNameExW")
	procGetComputerNameExW = modkernel32.NewProc("GetComputerNameExW")
)

// MBResult is the button MessageBoxW reports back.
type MBResult int32

const (
	MB_RESULT_ERROR MBResult = 0
	IDOK            MBResult = 1
	IDCANCEL        MBResult = 2
	IDABORT         MBResult = 3
	IDRETRY         MBResult = 4
	IDIGNORE        MBResult = 5
	IDYES           MBResult = 6
	IDNO            MBResult = 7
	IDTRYAGAIN      MBResult = 10
	IDCONTINUE      MBResult = 11
)

const (
	MB_OK          uint32 = 0x0000
	MB_OKCANCEL    uint32 = 0x0001
	MB_YESNOCANCEL uint32 = 0x0003
	MB_YESNO       uint32 = 0x0004
	MB_ICONERROR   uint32 = 0x0010
	MB_ICONWARNING uint32 = 0x0030
	MB_ICONINFO    uint32 = 0x0040
)

// MsgBox shows a message box without a parent window. An empty title
// passes a null caption so the OS picks its default.
func MsgBox(text, title string, flags uint32) (MBResult, error) {
	wtext := wstr.New(text)

	var caption *uint16
	if title != "" {
		wtitle := wstr.New(title)
		caption = wtitle.Ptr()
	}

	r1, _, e := procMessageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(wtext.Ptr())),
		uintptr(unsafe.Pointer(caption)),
		uintptr(flags),
	)
	if r1 == 0 {
		return MB_RESULT_ERROR, errors.WithStack(e)
	}
	return MBResult(r1), nil
}

// formats for UserName, secext.h EXTENDED_NAME_FORMAT
const (
	NAME_UNKNOWN            uint32 = 0
	NAME_FULLY_QUALIFIED_DN uint32 = 1
	NAME_SAM_COMPATIBLE     uint32 = 2
	NAME_DISPLAY            uint32 = 3
	NAME_UNIQUE_ID          uint32 = 6
	NAME_CANONICAL          uint32 = 7
	NAME_USER_PRINCIPAL     uint32 = 8
	NAME_CANONICAL_EX       uint32 = 9
	NAME_SERVICE_PRINCIPAL  uint32 = 10
	NAME_DNS_DOMAIN         uint32 = 12
	NAME_GIVEN_NAME         uint32 = 13
	NAME_SURNAME            uint32 = 14
)

// formats for ComputerName, sysinfoapi.h COMPUTER_NAME_FORMAT
const (
	COMPUTER_NAME_NET_BIOS                     uint32 = 0
	COMPUTER_NAME_DNS_HOSTNAME                 uint32 = 1
	COMPUTER_NAME_DNS_DOMAIN                   uint32 = 2
	COMPUTER_NAME_DNS_FULLY_QUALIFIED          uint32 = 3
	COMPUTER_NAME_PHYSICAL_NET_BIOS            uint32 = 4
	COMPUTER_NAME_PHYSICAL_DNS_HOSTNAME        uint32 = 5
	COMPUTER_NAME_PHYSICAL_DNS_DOMAIN          uint32 = 6
	COMPUTER_NAME_PHYSICAL_DNS_FULLY_QUALIFIED uint32 = 7
)

// UserName retrieves the current user's name in the requested format.
// Fails when the format is not available for this account.
func UserName(format uint32) (string, error) {
	var buf [260]uint16
	var size = uint32(len(buf))

	r1, _, e := procGetUserNameExW.Call(
		uintptr(format),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
	)
	if r1 == 0 {
		return "", errors.WithStack(e)
	}
	return windows.UTF16ToString(buf[:size]), nil
}

// ComputerName retrieves the local computer's name in the requested
// format.
func ComputerName(format uint32) (string, error) {
	var buf [260]uint16
	var size = uint32(len(buf))

	r1, _, e := procGetComputerNameExW.Call(
		uintptr(format),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
	)
	if r1 == 0 {
		return "", errors.WithStack(e)
	}
	return windows.UTF16ToString(buf[:size]), nil
}
