package cpu

import (
	"gopherv/kernel"
	"gopherv/kernel/mem"
)

// PmpFlag describes one physical memory protection region: its access
// permissions, its address matching mode and the lock bit, packed exactly as
// one pmpcfg entry byte.
type PmpFlag uint8

const (
	PmpR PmpFlag = 1 << 0
	PmpW PmpFlag = 1 << 1
	PmpX PmpFlag = 1 << 2

	// Address matching mode (bits 4:3).
	PmpMatchOff   PmpFlag = 0 << 3
	PmpMatchTOR   PmpFlag = 1 << 3 // top of range: match [pmpaddr[i-1], pmpaddr[i])
	PmpMatchNA4   PmpFlag = 2 << 3 // naturally aligned 4-byte region
	PmpMatchNAPOT PmpFlag = 3 << 3 // naturally aligned power-of-two region

	// PmpLocked freezes the region configuration until the next reset and
	// enforces it on machine mode accesses as well.
	PmpLocked PmpFlag = 1 << 7
)

// PmpRegionCount is the number of protection regions backed by pmpcfg0.
const PmpRegionCount = 8

var (
	// ErrPmpRegionOutOfRange is returned when addressing a protection
	// region outside [0, PmpRegionCount).
	ErrPmpRegionOutOfRange = &kernel.Error{Module: "cpu", Message: "pmp region index out of range"}
)

// Pmpcfg is a fully composed pmpcfg0 value holding the configuration bytes
// for all PmpRegionCount regions. Pmpcfg values are only produced by
// MakePmpcfg.
type Pmpcfg uint64

// MakePmpcfg packs the per-region configuration bytes into a single pmpcfg0
// value; regions[0] configures protection region 0.
func MakePmpcfg(regions [PmpRegionCount]PmpFlag) Pmpcfg {
	var cfg uint64
	for index, flags := range regions {
		cfg |= uint64(flags) << (8 * index)
	}
	return Pmpcfg(cfg)
}

// ReadPmpcfg0 returns the raw pmpcfg0 word.
func ReadPmpcfg0() uint64 {
	return csrReadFn(RegPmpcfg0)
}

// WritePmpcfg0 replaces the configuration for all protection regions.
func WritePmpcfg0(cfg Pmpcfg) {
	csrWriteFn(RegPmpcfg0, uint64(cfg))
}

// WritePmpaddr programs the address register for the supplied protection
// region. The register stores the address shifted right by 2, as defined by
// the privileged specification.
func WritePmpaddr(region int, addr mem.ValidAddress) *kernel.Error {
	if region < 0 || region >= PmpRegionCount {
		return ErrPmpRegionOutOfRange
	}

	csrWriteFn(RegPmpaddr0+Reg(region), uint64(addr.Get())>>2)
	return nil
}

// ReadPmpaddr returns the raw address register value for the supplied
// protection region.
func ReadPmpaddr(region int) (uint64, *kernel.Error) {
	if region < 0 || region >= PmpRegionCount {
		return 0, ErrPmpRegionOutOfRange
	}

	return csrReadFn(RegPmpaddr0 + Reg(region)), nil
}
