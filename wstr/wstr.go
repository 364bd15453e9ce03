// Package wstr owns null-terminated UTF-16 buffers for the Win32 "-W" API
// surface. String is the owned buffer, View a borrowed pointer.
package wstr

import (
	"unicode/utf16"
	"unsafe"
)

// String is an owned UTF-16 buffer. Except for Empty and truncated
// NewPadded buffers, the last unit is the 0x0000 terminator and it is the
// only terminator unit at the tail.
type String struct {
	units []uint16
}

// New transcodes text and appends the terminator. Interior NULs are kept
// as-is, invalid UTF-8 becomes U+FFFD.
func New(text string) String {
	return String{units: encode(text)}
}

// Empty returns a zero-length buffer without a terminator. Don't pass its
// pointer to the Windows API; use New("") or WithSize for that.
func Empty() String {
	return String{}
}

// WithSize returns a buffer of n zero units, n == 0 yields [0].
func WithSize(n int) String {
	if n <= 0 {
		n = 1
	}
	return String{units: make([]uint16, n)}
}

// NewPadded transcodes text then resizes to exactly n units, zero-padding
// the tail. If the transcoded length (terminator included) exceeds n the
// excess is dropped and the buffer may end without a terminator; that is
// the contract for populating fixed-length struct fields.
func NewPadded(text string, n int) String {
	u := encode(text)
	if len(u) > n {
		return String{units: u[:n:n]}
	}
	return String{units: append(u, make([]uint16, n-len(u))...)}
}

// FromPtr copies the run at p up to and including the first terminator.
// p must point at a valid null-terminated run.
func FromPtr(p *uint16) String {
	u := scan(p)
	out := make([]uint16, len(u))
	copy(out, u)
	return String{units: out}
}

// Ptr returns the buffer pointer for Win32 calls, nil when empty. The
// pointer is invalidated by any following push.
func (s *String) Ptr() *uint16 {
	if len(s.units) == 0 {
		return nil
	}
	return &s.units[0]
}

// MutPtr is Ptr for calls that write into the buffer.
func (s *String) MutPtr() *uint16 { return s.Ptr() }

func (s *String) Units() []uint16 { return s.units }
func (s *String) Len() int        { return len(s.units) }
func (s *String) IsEmpty() bool   { return len(s.units) == 0 }

// PushString appends the transcoded text, replacing the old terminator
// with a new trailing one. No-op on empty text.
func (s *String) PushString(text string) {
	if len(text) == 0 {
		return
	}
	if n := len(s.units); n > 0 {
		s.units = s.units[:n-1]
	}
	s.units = append(s.units, encode(text)...)
}

// PushWide appends another buffer's units, terminator included, after
// dropping s's own terminator. No-op when other is empty.
func (s *String) PushWide(other String) {
	if len(other.units) == 0 {
		return
	}
	if n := len(s.units); n > 0 {
		s.units = s.units[:n-1]
	}
	s.units = append(s.units, other.units...)
}

// View borrows the buffer pointer.
func (s *String) View() View { return View{p: s.Ptr()} }

// String decodes the buffer, dropping the trailing terminator when one is
// present. Unpaired surrogates decode to U+FFFD.
func (s String) String() string {
	u := s.units
	if n := len(u); n > 0 && u[n-1] == 0 {
		u = u[:n-1]
	}
	return string(utf16.Decode(u))
}

func encode(text string) []uint16 {
	return append(utf16.Encode([]rune(text)), 0)
}

// scan returns the run at p up to the first terminator inclusive, without
// copying. p must point at a valid null-terminated run.
func scan(p *uint16) []uint16 {
	if p == nil {
		return nil
	}
	n := 0
	for *(*uint16)(unsafe.Add(unsafe.Pointer(p), uintptr(n)*2)) != 0 {
		n++
	}
	return unsafe.Slice(p, n+1)
}
