// Package boot implements the machine-to-supervisor privilege transition
// that each hart performs exactly once after reset. The sequence is a linear
// state machine with no branching: identify the hart, stage the status and
// delegation registers, program the supervisor entry point and drop
// privilege with a single mret.
package boot

import (
	"gopherv/kernel"
	"gopherv/kernel/cpu"
	"gopherv/kernel/kfmt"
	"gopherv/kernel/mem"
)

// State tracks the sequencer's progress. States only ever advance;
// SupervisorMode is terminal.
type State uint8

const (
	Reset State = iota
	HartIdentified
	StatusConfigured
	DelegationConfigured
	EntryPointSet
	SupervisorMode
)

var (
	// ErrAlreadyRan is returned when Run is invoked on a sequencer that
	// has already left the Reset state. The transition runs exactly once
	// per hart; there is no retry.
	ErrAlreadyRan = &kernel.Error{Module: "boot", Message: "privilege transition already performed on this hart"}

	// The register accessors below are mocked by tests.
	hartIDFn        = cpu.HartID
	writeMscratchFn = cpu.WriteMscratch
	writeMstatusFn  = cpu.WriteMstatus
	writeMedelegFn  = cpu.WriteMedeleg
	writeMidelegFn  = cpu.WriteMideleg
	writeSieFn      = cpu.WriteSie
	writeMepcFn     = cpu.WriteMepc
	mretFn          = cpu.MRet
)

// Sequencer drives one hart from machine mode into supervisor mode. The
// zero value is ready to use.
type Sequencer struct {
	state  State
	hartID uint64
}

// State returns the sequencer's current state.
func (s *Sequencer) State() State {
	return s.state
}

// HartID returns the hardware thread ID captured during the transition. Its
// value is only meaningful once the sequencer has left the Reset state.
func (s *Sequencer) HartID() uint64 {
	return s.hartID
}

// Run performs the privilege transition, leaving the hart in supervisor mode
// at the supplied entry address. Every register write commits a complete,
// known-good value; by the time mret executes there is no partially
// configured state left behind. Run only fails if invoked a second time.
func (s *Sequencer) Run(entry mem.ValidAddress) *kernel.Error {
	if s.state != Reset {
		return ErrAlreadyRan
	}

	// Stash the hart ID in the machine scratch slot so the trap entry
	// code can recover per-hart identity without touching the stack.
	s.hartID = hartIDFn()
	writeMscratchFn(s.hartID)
	s.state = HartIdentified
	kfmt.Printf("[boot] hart %d: identified\n", s.hartID)

	// Stage the privilege and interrupt state that mret will restore:
	// previous privilege is supervisor, previous interrupt enable is set
	// so interrupts are live immediately after the drop.
	writeMstatusFn(cpu.StatusMPPSupervisor | cpu.StatusMPIE | cpu.StatusSPIE)
	s.state = StatusConfigured

	// Route every exception and the supervisor interrupt causes to the
	// supervisor handler; anything not delegated keeps trapping to
	// machine mode. Enable the supervisor interrupt sources themselves.
	writeMedelegFn(cpu.DelegAllExceptions)
	writeMidelegFn(cpu.DelegAllSupervisorInts)
	writeSieFn(cpu.SieSSIE | cpu.SieSTIE | cpu.SieSEIE)
	s.state = DelegationConfigured

	writeMepcFn(entry)
	s.state = EntryPointSet
	kfmt.Printf("[boot] hart %d: dropping to supervisor mode at %x\n", s.hartID, entry.Get())

	// mret atomically restores the staged status fields and jumps to the
	// entry address. On hardware it never returns.
	s.state = SupervisorMode
	mretFn()

	return nil
}
