//go:build !windows
// +build !windows

package winutils

import (
	"errors"
	"fmt"
)

var errNotImplemented = errors.New("not implemented")

type LibType uint8

const (
	Static LibType = iota
	Dynamic
)

func (t LibType) String() string {
	if t == Dynamic {
		return "dynamic"
	}
	return "static"
}

type Library struct {
	typ LibType
}

func Load(path string) (*Library, error) { return nil, errNotImplemented }

func LoadMem(data []byte) (*Library, error) { return nil, errNotImplemented }

func AttachResident(name string) (*Library, error) { return nil, errNotImplemented }

func Adopt(raw uintptr, dynamic bool) (*Library, error) { return nil, errNotImplemented }

func Empty() *Library { return &Library{} }

func (l *Library) Handle() uintptr { return 0 }

func (l *Library) Type() LibType { return l.typ }

func (l *Library) Loaded() bool { return false }

func (l *Library) Proc(name string) (uintptr, error) { return 0, errNotImplemented }

func (l *Library) Free() error { return errNotImplemented }

func (l *Library) Close() error { return nil }

type Func[F any] struct {
	name string
}

func Lookup[F any](l *Library, name string) Func[F] { return Func[F]{name: name} }

func MustLookup[F any](l *Library, name string) Func[F] { panic(errNotImplemented) }

func (f Func[F]) IsValid() bool { return false }

func (f Func[F]) Addr() uintptr { return 0 }

func (f Func[F]) Take() F { panic(errNotImplemented) }

func (f Func[F]) Call(a ...uintptr) (r1, r2 uintptr, lastErr error) { panic(errNotImplemented) }

func (f Func[F]) String() string { return fmt.Sprintf("%s@0x0", f.name) }
