package kernel

import (
	"reflect"
	"unsafe"
)

// Memset fills size bytes starting at addr with value. It is used by the
// early boot code to clear freshly reserved frames before the Go runtime is
// available. Instead of a plain loop the fill is completed with log2(size)
// copy calls; frame addresses are always page-aligned so the copies stay
// aligned as well.
func Memset(addr uintptr, value byte, size uintptr) {
	if size == 0 {
		return
	}

	// Overlay a byte slice on top of the target region.
	target := *(*[]byte)(unsafe.Pointer(&reflect.SliceHeader{
		Len:  int(size),
		Cap:  int(size),
		Data: addr,
	}))

	target[0] = value
	for index := uintptr(1); index < size; index *= 2 {
		copy(target[index:], target[:index])
	}
}
