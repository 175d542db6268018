package kmain

import (
	"gopherv/kernel"
	"gopherv/kernel/boot"
	"gopherv/kernel/kfmt"
	"gopherv/kernel/mem"
)

var (
	errKmainReturned = &kernel.Error{Module: "kmain", Message: "privilege return fell through"}

	// runSequencerFn and panicFn are mocked by tests.
	runSequencerFn = func(seq *boot.Sequencer, entry mem.ValidAddress) *kernel.Error {
		return seq.Run(entry)
	}
	panicFn = kfmt.Panic
)

// Kmain is the only Go symbol visible to the rt0 initialization code. The
// rt0 assembly invokes it on every hart after carving out the hart's stack
// (stack base plus stackSize*(hartID+1), derived from the same mhartid read
// that cpu.HartID exposes). supervisorEntry is the physical address of the
// supervisor-mode entry symbol the hart jumps to when it leaves machine
// mode.
//
// Any validation failure before the privilege transition completes is fatal:
// the hart halts rather than proceed with a partially configured privilege
// state. Kmain is not expected to return.
//
//go:noinline
func Kmain(supervisorEntry uintptr) {
	entry, err := mem.NewValidAddress(supervisorEntry)
	if err == nil {
		var seq boot.Sequencer
		err = runSequencerFn(&seq, entry)
	}

	if err != nil {
		panicFn(err)
		return
	}

	// On hardware the mret inside the sequencer never returns; reaching
	// this point means the privilege return fell through.
	panicFn(errKmainReturned)
}
