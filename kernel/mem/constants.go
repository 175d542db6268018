// Package mem provides the kernel's physical memory layout constants and the
// validated value types that gate raw numbers before they may reach a control
// register.
package mem

// Size represents a memory block size in bytes.
type Size uint64

// Common memory block sizes.
const (
	Byte Size = 1
	Kb        = 1024 * Byte
	Mb        = 1024 * Kb
)

const (
	// PageShift is equal to log2(PageSize). This constant is used when we
	// need to convert a physical address to a page number (shift right by
	// PageShift) and vice-versa.
	PageShift = 12

	// PageSize defines the system's page size in bytes.
	PageSize = Size(1 << PageShift)

	// KernelBase is the physical address where the platform firmware
	// loads the kernel image. Valid kernel physical addresses start here.
	KernelBase = uintptr(0x80000000)

	// PhysLimit is the first physical address past the kernel's usable
	// RAM window. The window spans 128Mb starting at KernelBase.
	PhysLimit = KernelBase + uintptr(128*Mb)
)
