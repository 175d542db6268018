package cpu

// Cause describes the contents of the mcause/scause registers: an exception
// code from the closed architected set, or an interrupt code distinguished
// by the top bit. Hardware populates the register on trap entry; the write
// path exists only for completeness.
type Cause uint64

// causeInterruptBit is set for interrupt causes and clear for exceptions.
const causeInterruptBit Cause = 1 << 63

// The architected exception causes (codes 0 through 15).
const (
	ExcInstrAddrMisaligned Cause = 0
	ExcInstrAccessFault    Cause = 1
	ExcIllegalInstr        Cause = 2
	ExcBreakpoint          Cause = 3
	ExcLoadAddrMisaligned  Cause = 4
	ExcLoadAccessFault     Cause = 5
	ExcStoreAddrMisaligned Cause = 6
	ExcStoreAccessFault    Cause = 7
	ExcEcallFromUser       Cause = 8
	ExcEcallFromSupervisor Cause = 9
	ExcEcallFromMachine    Cause = 11
	ExcInstrPageFault      Cause = 12
	ExcLoadPageFault       Cause = 13
	ExcStorePageFault      Cause = 15
)

// The interrupt causes.
const (
	IntSupervisorSoftware Cause = causeInterruptBit | 1
	IntMachineSoftware    Cause = causeInterruptBit | 3
	IntSupervisorTimer    Cause = causeInterruptBit | 5
	IntMachineTimer       Cause = causeInterruptBit | 7
	IntSupervisorExternal Cause = causeInterruptBit | 9
	IntMachineExternal    Cause = causeInterruptBit | 11
)

// ReadMcause returns the cause of the last machine-level trap.
func ReadMcause() Cause {
	return Cause(csrReadFn(RegMcause))
}

// WriteMcause replaces the mcause register.
func WriteMcause(c Cause) {
	csrWriteFn(RegMcause, uint64(c))
}

// ReadScause returns the cause of the last supervisor-level trap.
func ReadScause() Cause {
	return Cause(csrReadFn(RegScause))
}

// WriteScause replaces the scause register.
func WriteScause(c Cause) {
	csrWriteFn(RegScause, uint64(c))
}

// IsInterrupt returns true when c describes an interrupt rather than an
// exception.
func (c Cause) IsInterrupt() bool {
	return c&causeInterruptBit != 0
}

// Code returns the cause code with the interrupt bit stripped.
func (c Cause) Code() uint64 {
	return uint64(c &^ causeInterruptBit)
}

// Name returns a human-readable description of the cause for use in trap
// diagnostics.
func (c Cause) Name() string {
	if c.IsInterrupt() {
		switch c {
		case IntSupervisorSoftware:
			return "supervisor software interrupt"
		case IntMachineSoftware:
			return "machine software interrupt"
		case IntSupervisorTimer:
			return "supervisor timer interrupt"
		case IntMachineTimer:
			return "machine timer interrupt"
		case IntSupervisorExternal:
			return "supervisor external interrupt"
		case IntMachineExternal:
			return "machine external interrupt"
		}
		return "unknown interrupt"
	}

	switch c {
	case ExcInstrAddrMisaligned:
		return "instruction address misaligned"
	case ExcInstrAccessFault:
		return "instruction access fault"
	case ExcIllegalInstr:
		return "illegal instruction"
	case ExcBreakpoint:
		return "breakpoint"
	case ExcLoadAddrMisaligned:
		return "load address misaligned"
	case ExcLoadAccessFault:
		return "load access fault"
	case ExcStoreAddrMisaligned:
		return "store address misaligned"
	case ExcStoreAccessFault:
		return "store access fault"
	case ExcEcallFromUser:
		return "environment call from user mode"
	case ExcEcallFromSupervisor:
		return "environment call from supervisor mode"
	case ExcEcallFromMachine:
		return "environment call from machine mode"
	case ExcInstrPageFault:
		return "instruction page fault"
	case ExcLoadPageFault:
		return "load page fault"
	case ExcStorePageFault:
		return "store page fault"
	}
	return "unknown exception"
}
