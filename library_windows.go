//go:build windows
// +build windows

package winutils

import (
	"sync/atomic"
	"unsafe"

	"github.com/lysShub/winutils-go/wstr"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
	"golang.zx2c4.com/wireguard/windows/driver/memmod"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procLoadLibraryW     = modkernel32.NewProc("LoadLibraryW")
	procGetModuleHandleW = modkernel32.NewProc("GetModuleHandleW")
)

type LibType uint8

const (
	// Static marks an already-resident module, Close leaves it loaded.
	Static LibType = iota
	// Dynamic marks a module this wrapper loaded, Close unloads it.
	Dynamic
)

func (t LibType) String() string {
	if t == Dynamic {
		return "dynamic"
	}
	return "static"
}

// Library owns an OS module handle. A Dynamic library holds one loader
// reference and releases it on Close, a Static library holds none. The
// zero value is the empty Static placeholder.
type Library struct {
	handle windows.Handle
	typ    LibType
	mem    *memmod.Module // set when the module was mapped from memory
}

// Load resolves path through LoadLibraryW. The returned library is
// Dynamic. An empty path gets whatever the OS does for it, it is not
// normalized here.
func Load(path string) (*Library, error) {
	w := wstr.New(path)
	r1, _, e := procLoadLibraryW.Call(uintptr(unsafe.Pointer(w.Ptr())))
	if r1 == 0 {
		return nil, errors.WithStack(e)
	}
	return &Library{handle: windows.Handle(r1), typ: Dynamic}, nil
}

// LoadMem maps a DLL image from a byte slice without touching the disk
// loader. The returned library is Dynamic, Handle is the image base.
func LoadMem(data []byte) (*Library, error) {
	m, err := memmod.LoadLibrary(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Library{handle: windows.Handle(m.BaseAddr()), typ: Dynamic, mem: m}, nil
}

// AttachResident references an already-resident module by name without
// taking a loader reference. An empty name fails with ErrEmptyName; the
// Win32 "empty means current module" quirk is opt-in via Adopt.
func AttachResident(name string) (*Library, error) {
	if name == "" {
		return nil, errors.WithStack(ErrEmptyName{})
	}
	w := wstr.New(name)
	r1, _, e := procGetModuleHandleW.Call(uintptr(unsafe.Pointer(w.Ptr())))
	if r1 == 0 {
		return nil, errors.WithStack(e)
	}
	return &Library{handle: windows.Handle(r1), typ: Static}, nil
}

// Adopt wraps a caller-provided handle, classified by dynamic. A null
// handle fails with ErrNullHandle.
func Adopt(raw uintptr, dynamic bool) (*Library, error) {
	if raw == 0 {
		return nil, errors.WithStack(ErrNullHandle{})
	}
	typ := Static
	if dynamic {
		typ = Dynamic
	}
	return &Library{handle: windows.Handle(raw), typ: typ}, nil
}

// Empty returns a null-handle Static placeholder for deferred assignment.
func Empty() *Library { return &Library{} }

// Handle returns the raw module handle for APIs that demand it.
func (l *Library) Handle() uintptr { return uintptr(l.handle) }

func (l *Library) Type() LibType { return l.typ }

func (l *Library) Loaded() bool { return l.handle != 0 }

// Proc resolves an export to its raw address. Names with an interior NUL
// surface the conversion error.
func (l *Library) Proc(name string) (uintptr, error) {
	if l.handle == 0 {
		return 0, errors.WithStack(ErrNotLoaded{})
	}
	if l.mem != nil {
		addr, err := l.mem.ProcAddressByName(name)
		if err != nil {
			return 0, errors.WithStack(err)
		}
		return addr, nil
	}
	addr, err := windows.GetProcAddress(l.handle, name)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return addr, nil
}

// Free unloads the module while the wrapper still exists and reports the
// result. The handle goes stale, any later Proc or call through it is
// undefined. Only meaningful for Dynamic libraries, otherwise a no-op.
func (l *Library) Free() error {
	if l.typ != Dynamic || l.handle == 0 {
		return nil
	}
	if l.mem != nil {
		l.mem.Free()
		return nil
	}
	return errors.WithStack(windows.FreeLibrary(l.handle))
}

// Close releases the loader reference exactly when the classification is
// Dynamic. Idempotent; unload failures are swallowed, the handle counts
// as released either way.
func (l *Library) Close() error {
	old := windows.Handle(atomic.SwapUintptr((*uintptr)(unsafe.Pointer(&l.handle)), 0))
	if old == 0 || l.typ != Dynamic {
		return nil
	}
	if l.mem != nil {
		l.mem.Free()
		l.mem = nil
		return nil
	}
	_ = windows.FreeLibrary(old)
	return nil
}
