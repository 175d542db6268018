package kernel

import (
	"testing"
	"unsafe"
)

func TestMemset(t *testing.T) {
	specs := []struct {
		size  uintptr
		value byte
	}{
		{0, 0xff}, // size 0 must be a no-op
		{1, 0xaa},
		{7, 0x0f},
		{64, 0xf0},
	}

	for specIndex, spec := range specs {
		var buf [64]byte
		for i := range buf {
			buf[i] = 0x42
		}

		Memset(uintptr(unsafe.Pointer(&buf[0])), spec.value, spec.size)

		for i := uintptr(0); i < uintptr(len(buf)); i++ {
			exp := spec.value
			if i >= spec.size {
				exp = 0x42
			}

			if buf[i] != exp {
				t.Errorf("[spec %d] expected byte %d to be %x; got %x", specIndex, i, exp, buf[i])
			}
		}
	}
}
