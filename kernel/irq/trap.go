// Package irq provides the supervisor trap-register snapshot used by the
// trap dispatch code. Interpreting the cause and resuming execution belong
// to the dispatcher; this package only captures and reports the hardware
// state at trap entry.
package irq

import (
	"gopherv/kernel/cpu"
	"gopherv/kernel/kfmt"
)

var (
	// The register readers are mocked by tests.
	readScauseFn = cpu.ReadScause
	readSepcFn   = cpu.ReadSepc
	readStvalFn  = cpu.ReadStval
)

// TrapRecord is a snapshot of the registers hardware populates on supervisor
// trap entry.
type TrapRecord struct {
	Cause cpu.Cause
	EPC   uintptr
	Tval  uint64
}

// Record captures the current supervisor trap state. It must be called
// before interrupts are re-enabled; a nested trap overwrites these
// registers.
func Record() TrapRecord {
	return TrapRecord{
		Cause: readScauseFn(),
		EPC:   readSepcFn(),
		Tval:  readStvalFn(),
	}
}

// Print outputs a dump of the trap state to the active console.
func (r *TrapRecord) Print() {
	kfmt.Printf("trap: %s\n", r.Cause.Name())
	kfmt.Printf("sepc  = %16x\n", r.EPC)
	kfmt.Printf("stval = %16x\n", r.Tval)
}
