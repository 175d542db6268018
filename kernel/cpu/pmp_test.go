package cpu

import (
	"testing"

	"gopherv/kernel/mem"
)

func TestMakePmpcfgPacking(t *testing.T) {
	var regions [PmpRegionCount]PmpFlag
	regions[0] = PmpR | PmpW | PmpMatchTOR
	regions[3] = PmpR | PmpX | PmpMatchNAPOT
	regions[7] = PmpR | PmpMatchNA4 | PmpLocked

	exp := uint64(0x0b) | uint64(0x1d)<<24 | uint64(0x91)<<56
	if got := MakePmpcfg(regions); uint64(got) != exp {
		t.Fatalf("expected packed pmpcfg %x; got %x", exp, uint64(got))
	}
}

func TestWritePmpaddr(t *testing.T) {
	defer func(origWrite func(Reg, uint64)) {
		csrWriteFn = origWrite
	}(csrWriteFn)

	var (
		gotReg Reg
		gotVal uint64
	)
	csrWriteFn = func(reg Reg, val uint64) {
		gotReg, gotVal = reg, val
	}

	addr, err := mem.NewValidAddress(mem.KernelBase + 0x4000)
	if err != nil {
		t.Fatal(err)
	}

	if err := WritePmpaddr(3, addr); err != nil {
		t.Fatal(err)
	}

	if exp := RegPmpaddr0 + 3; gotReg != exp {
		t.Errorf("expected write to register %x; got %x", exp, gotReg)
	}

	// The address register stores the target shifted right by 2.
	if exp := uint64(mem.KernelBase+0x4000) >> 2; gotVal != exp {
		t.Errorf("expected value %x; got %x", exp, gotVal)
	}

	for _, region := range []int{-1, PmpRegionCount} {
		if err := WritePmpaddr(region, addr); err != ErrPmpRegionOutOfRange {
			t.Errorf("expected region %d to be rejected; got %v", region, err)
		}

		if _, err := ReadPmpaddr(region); err != ErrPmpRegionOutOfRange {
			t.Errorf("expected region %d read to be rejected; got %v", region, err)
		}
	}
}
