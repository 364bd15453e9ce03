//go:build windows
// +build windows

package winutils

import (
	"fmt"
	"syscall"

	"github.com/ebitengine/purego"
)

// Func is an optional typed procedure address dispensed by Lookup. F is
// the signature the caller asserts for the export. Holding a Func does
// not keep its Library alive; the Library must outlive every call.
type Func[F any] struct {
	name string
	addr uintptr
}

// Lookup resolves an export of l. Lookup is total: a bad name or an
// unresolved export yields an empty slot, never a panic.
func Lookup[F any](l *Library, name string) Func[F] {
	addr, err := l.Proc(name)
	if err != nil {
		return Func[F]{name: name}
	}
	return Func[F]{name: name, addr: addr}
}

// MustLookup is Lookup but panics when the export cannot be resolved.
func MustLookup[F any](l *Library, name string) Func[F] {
	addr, err := l.Proc(name)
	if err != nil {
		panic(err)
	}
	return Func[F]{name: name, addr: addr}
}

func (f Func[F]) IsValid() bool { return f.addr != 0 }

func (f Func[F]) Addr() uintptr { return f.addr }

// Take converts the address into a callable of type F. F must be a func
// type whose arguments and results purego can marshal; a wrong signature
// corrupts the call frame. Panics on an empty slot.
func (f Func[F]) Take() F {
	if f.addr == 0 {
		panic("winutils: take of empty proc " + f.name)
	}
	var fn F
	purego.RegisterFunc(&fn, f.addr)
	return fn
}

// Call invokes the raw address with uintptr arguments, skipping the typed
// conversion. Panics on an empty slot.
func (f Func[F]) Call(a ...uintptr) (r1, r2 uintptr, lastErr error) {
	if f.addr == 0 {
		panic("winutils: call of empty proc " + f.name)
	}
	return syscall.SyscallN(f.addr, a...)
}

func (f Func[F]) String() string {
	return fmt.Sprintf("%s@0x%x", f.name, f.addr)
}
