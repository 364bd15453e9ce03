package wstr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Run("round-trip", func(t *testing.T) {
		for _, s := range []string{"", "Hello world!", "æøå", "漢字テスト", "emoji 🙂"} {
			w := New(s)
			require.Equal(t, s, w.String())

			u := w.Units()
			require.Equal(t, uint16(0), u[len(u)-1])
		}
	})

	t.Run("terminator-count", func(t *testing.T) {
		w := New("abc")
		require.Equal(t, 4, w.Len())
		for i, u := range w.Units() {
			if u == 0 {
				require.Equal(t, 3, i)
			}
		}
	})

	t.Run("lossy-decode", func(t *testing.T) {
		// unpaired high surrogate decodes to U+FFFD
		w := String{units: []uint16{0xD800, 'a', 0}}
		require.Equal(t, "�a", w.String())
	})
}

func Test_WithSize(t *testing.T) {
	w := WithSize(0)
	require.Equal(t, []uint16{0}, w.Units())

	w = WithSize(4)
	require.Equal(t, []uint16{0, 0, 0, 0}, w.Units())

	e := Empty()
	require.True(t, e.IsEmpty())
	require.Nil(t, e.Ptr())
}

func Test_NewPadded(t *testing.T) {
	t.Run("fixed-field", func(t *testing.T) {
		w := NewPadded("Hello world!", 32)
		require.Equal(t, 32, w.Len())

		want := []uint16{
			0x0048, 0x0065, 0x006c, 0x006c, 0x006f, 0x0020,
			0x0077, 0x006f, 0x0072, 0x006c, 0x0064, 0x0021, 0x0000,
		}
		require.Equal(t, want, w.Units()[:13])
		for _, u := range w.Units()[13:] {
			require.Zero(t, u)
		}
	})

	t.Run("truncate", func(t *testing.T) {
		w := NewPadded("Hello world!", 5)
		require.Equal(t, 5, w.Len())
		require.Equal(t, []uint16{0x48, 0x65, 0x6c, 0x6c, 0x6f}, w.Units())
		require.Equal(t, "Hello", w.String())
	})

	t.Run("exact", func(t *testing.T) {
		w := NewPadded("ab", 3)
		require.Equal(t, []uint16{'a', 'b', 0}, w.Units())
	})
}

func Test_Push(t *testing.T) {
	t.Run("concat", func(t *testing.T) {
		a := New("Hello ")
		a.PushString("world")
		a.PushWide(New("!"))

		require.Equal(t, "Hello world!", a.String())
		require.Equal(t, 13, a.Len())
		for i, u := range a.Units() {
			if u == 0 {
				require.Equal(t, 12, i)
			}
		}
	})

	t.Run("noop", func(t *testing.T) {
		a := New("x")
		a.PushString("")
		a.PushWide(Empty())
		require.Equal(t, []uint16{'x', 0}, a.Units())
	})

	t.Run("push-into-empty", func(t *testing.T) {
		a := Empty()
		a.PushString("hi")
		require.Equal(t, "hi", a.String())
		require.Equal(t, 3, a.Len())
	})
}

func Test_View(t *testing.T) {
	t.Run("os-pointer", func(t *testing.T) {
		buf := []uint16{'U', 'S', 'E', 'R', 0}
		v := NewView(&buf[0])

		require.Equal(t, buf, v.Units())
		require.Equal(t, "USER", v.String())

		owned := v.Clone()
		require.Equal(t, 5, owned.Len())
		require.Equal(t, "USER", owned.String())
	})

	t.Run("from-buffer", func(t *testing.T) {
		w := New("Hello")
		v := w.View()
		require.Equal(t, w.Units(), v.Units())
		require.Equal(t, "Hello", v.String())
	})

	t.Run("from-ptr-copy", func(t *testing.T) {
		buf := []uint16{'a', 'b', 0}
		w := FromPtr(&buf[0])
		buf[0] = 'z'
		require.Equal(t, "ab", w.String())
	})

	t.Run("nil", func(t *testing.T) {
		v := NewView(nil)
		require.Nil(t, v.Units())
		require.Equal(t, "", v.String())
	})
}
