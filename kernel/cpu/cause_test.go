package cpu

import "testing"

func TestCauseDecoding(t *testing.T) {
	specs := []struct {
		cause        Cause
		expInterrupt bool
		expCode      uint64
		expName      string
	}{
		{ExcInstrAddrMisaligned, false, 0, "instruction address misaligned"},
		{ExcIllegalInstr, false, 2, "illegal instruction"},
		{ExcEcallFromUser, false, 8, "environment call from user mode"},
		{ExcStorePageFault, false, 15, "store page fault"},
		{IntSupervisorSoftware, true, 1, "supervisor software interrupt"},
		{IntSupervisorTimer, true, 5, "supervisor timer interrupt"},
		{IntMachineExternal, true, 11, "machine external interrupt"},
		{Cause(10), false, 10, "unknown exception"},
		{causeInterruptBit | 13, true, 13, "unknown interrupt"},
	}

	for specIndex, spec := range specs {
		if got := spec.cause.IsInterrupt(); got != spec.expInterrupt {
			t.Errorf("[spec %d] expected IsInterrupt to return %t; got %t", specIndex, spec.expInterrupt, got)
		}

		if got := spec.cause.Code(); got != spec.expCode {
			t.Errorf("[spec %d] expected Code to return %d; got %d", specIndex, spec.expCode, got)
		}

		if got := spec.cause.Name(); got != spec.expName {
			t.Errorf("[spec %d] expected Name to return %q; got %q", specIndex, spec.expName, got)
		}
	}
}

func TestCauseReadersUseTheirRegister(t *testing.T) {
	defer func(origRead func(Reg) uint64) {
		csrReadFn = origRead
	}(csrReadFn)

	csrReadFn = func(reg Reg) uint64 {
		switch reg {
		case RegMcause:
			return uint64(ExcBreakpoint)
		case RegScause:
			return uint64(IntSupervisorExternal)
		}
		t.Fatalf("unexpected read of register %x", reg)
		return 0
	}

	if got := ReadMcause(); got != ExcBreakpoint {
		t.Errorf("expected mcause %x; got %x", ExcBreakpoint, got)
	}

	if got := ReadScause(); got != IntSupervisorExternal {
		t.Errorf("expected scause %x; got %x", IntSupervisorExternal, got)
	}
}
