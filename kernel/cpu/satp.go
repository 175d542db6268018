package cpu

import "gopherv/kernel/mem"

// SatpMode selects the address translation scheme. The mode tag occupies
// satp bits 63:60 and never overlaps the page-table frame number bits.
type SatpMode uint64

const (
	SatpBare SatpMode = 0 << 60 // no translation
	SatpSv39 SatpMode = 8 << 60 // 39-bit virtual addressing, 3 level tables
	SatpSv48 SatpMode = 9 << 60 // 48-bit virtual addressing, 4 level tables
)

const (
	satpModeMask = uint64(0xf) << 60
	satpPPNMask  = uint64(1)<<44 - 1
)

// Satp is a fully composed value for the address translation register. Satp
// values are only produced by MakeSatp, so the mode tag and the root frame
// number are always well-formed.
type Satp uint64

// MakeSatp composes a satp value from a translation mode and a page-aligned,
// range-checked page table root.
func MakeSatp(root mem.ValidAddress, mode SatpMode) Satp {
	return Satp(uint64(mode) | (uint64(root.Get())>>mem.PageShift)&satpPPNMask)
}

// Mode returns the translation mode tag of this satp value.
func (s Satp) Mode() SatpMode {
	return SatpMode(uint64(s) & satpModeMask)
}

// Root returns the physical address of the page table root encoded in this
// satp value.
func (s Satp) Root() uintptr {
	return uintptr((uint64(s) & satpPPNMask) << mem.PageShift)
}

// ReadSatp returns the active address translation register value.
func ReadSatp() Satp {
	return Satp(csrReadFn(RegSatp))
}

// WriteSatp replaces the address translation register. The write does not
// invalidate cached translations: the caller must issue FlushTLB after the
// update and before relying on the new mapping.
func WriteSatp(s Satp) {
	csrWriteFn(RegSatp, uint64(s))
}
