package wstr

import "unicode/utf16"

// View is a non-owning pointer to an externally owned null-terminated
// UTF-16 run, typically one handed back by a Win32 call. The pointee must
// stay alive and unmodified for as long as the View is used.
type View struct {
	p *uint16
}

// NewView adopts an external pointer.
func NewView(p *uint16) View { return View{p: p} }

// Ptr returns the borrowed pointer.
func (v View) Ptr() *uint16 { return v.p }

// Units returns the pointed-to run up to and including the terminator,
// without copying.
func (v View) Units() []uint16 { return scan(v.p) }

// Clone copies the run into a fresh owned String.
func (v View) Clone() String {
	u := v.Units()
	out := make([]uint16, len(u))
	copy(out, u)
	return String{units: out}
}

// String decodes the run excluding the terminator.
func (v View) String() string {
	u := v.Units()
	if n := len(u); n > 0 {
		u = u[:n-1]
	}
	return string(utf16.Decode(u))
}
