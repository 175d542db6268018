// +build !riscv64

package cpu

// On non-riscv64 builds the privileged instructions are backed by the
// software register-file model so every package layered on top of the
// register primitive stays testable on a development host.

// softRegs is the register file behind the default csrRead/csrWrite/flushTLB
// on the model. Like the hardware it stands in for, it is a single hart's
// register state: one shared instance whose contents persist across calls.
// Tests that need isolated state swap csrReadFn/csrWriteFn/tlbFlushFn for
// their own RegFile instead of resetting this one.
var softRegs = NewRegFile(0)

func csrRead(reg Reg) uint64 {
	return softRegs.Read(reg)
}

func csrWrite(reg Reg, val uint64) {
	softRegs.Write(reg, val)
}

// Halt blocks forever; the model has no instruction stream to stop.
func Halt() {
	select {}
}

// flushTLB records the flush request against the model so the caller
// contract for satp updates stays observable.
func flushTLB() {
	softRegs.RecordTLBFlush()
}

// MRet is a no-op on the model: there is no program counter to redirect, so
// a privilege drop is observable only through the staged register traffic.
func MRet() {}
