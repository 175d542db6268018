package boot

import (
	"testing"

	"gopherv/kernel/cpu"
	"gopherv/kernel/mem"
)

func restoreAccessors() func() {
	var (
		origHartID        = hartIDFn
		origWriteMscratch = writeMscratchFn
		origWriteMstatus  = writeMstatusFn
		origWriteMedeleg  = writeMedelegFn
		origWriteMideleg  = writeMidelegFn
		origWriteSie      = writeSieFn
		origWriteMepc     = writeMepcFn
		origMret          = mretFn
	)

	return func() {
		hartIDFn = origHartID
		writeMscratchFn = origWriteMscratch
		writeMstatusFn = origWriteMstatus
		writeMedelegFn = origWriteMedeleg
		writeMidelegFn = origWriteMideleg
		writeSieFn = origWriteSie
		writeMepcFn = origWriteMepc
		mretFn = origMret
	}
}

func TestSequencerRun(t *testing.T) {
	defer restoreAccessors()()

	var (
		gotScratch  uint64
		gotStatus   cpu.StatusFlag
		gotMedeleg  cpu.MedelegFlag
		gotMideleg  cpu.MidelegFlag
		gotSie      cpu.SieFlag
		gotEntry    uintptr
		mretCalled  bool
		statesAtOps []State
		seq         Sequencer
	)

	hartIDFn = func() uint64 { return 2 }
	writeMscratchFn = func(val uint64) {
		gotScratch = val
		statesAtOps = append(statesAtOps, seq.State())
	}
	writeMstatusFn = func(flags cpu.StatusFlag) { gotStatus = flags }
	writeMedelegFn = func(flags cpu.MedelegFlag) { gotMedeleg = flags }
	writeMidelegFn = func(flags cpu.MidelegFlag) { gotMideleg = flags }
	writeSieFn = func(flags cpu.SieFlag) { gotSie = flags }
	writeMepcFn = func(addr mem.ValidAddress) { gotEntry = addr.Get() }
	mretFn = func() {
		mretCalled = true
		statesAtOps = append(statesAtOps, seq.State())
	}

	entry, err := mem.NewValidAddress(mem.KernelBase + 0x1000)
	if err != nil {
		t.Fatal(err)
	}

	if err := seq.Run(entry); err != nil {
		t.Fatalf("expected Run to succeed; got %v", err)
	}

	if seq.State() != SupervisorMode {
		t.Errorf("expected terminal state %d; got %d", SupervisorMode, seq.State())
	}

	if seq.HartID() != 2 {
		t.Errorf("expected captured hart ID 2; got %d", seq.HartID())
	}

	if gotScratch != 2 {
		t.Errorf("expected hart ID 2 in mscratch; got %d", gotScratch)
	}

	if exp := cpu.StatusMPPSupervisor | cpu.StatusMPIE | cpu.StatusSPIE; gotStatus != exp {
		t.Errorf("expected mstatus %x; got %x", exp, gotStatus)
	}

	if gotMedeleg != cpu.DelegAllExceptions {
		t.Errorf("expected all exceptions delegated; got %x", gotMedeleg)
	}

	if gotMideleg != cpu.DelegAllSupervisorInts {
		t.Errorf("expected supervisor interrupts delegated; got %x", gotMideleg)
	}

	if exp := cpu.SieSSIE | cpu.SieSTIE | cpu.SieSEIE; gotSie != exp {
		t.Errorf("expected sie %x; got %x", exp, gotSie)
	}

	if gotEntry != mem.KernelBase+0x1000 {
		t.Errorf("expected entry point %x; got %x", mem.KernelBase+0x1000, gotEntry)
	}

	if !mretCalled {
		t.Error("expected Run to execute the privilege-return instruction")
	}

	// The scratch write happens before the hart is marked identified and
	// mret must only execute once the sequencer is terminal.
	if len(statesAtOps) != 2 || statesAtOps[0] != Reset || statesAtOps[1] != SupervisorMode {
		t.Errorf("unexpected state progression snapshot: %v", statesAtOps)
	}
}

func TestSequencerRunIsSingleShot(t *testing.T) {
	defer restoreAccessors()()

	hartIDFn = func() uint64 { return 0 }
	writeMscratchFn = func(uint64) {}
	writeMstatusFn = func(cpu.StatusFlag) {}
	writeMedelegFn = func(cpu.MedelegFlag) {}
	writeMidelegFn = func(cpu.MidelegFlag) {}
	writeSieFn = func(cpu.SieFlag) {}
	writeMepcFn = func(mem.ValidAddress) {}

	mretCalls := 0
	mretFn = func() { mretCalls++ }

	entry, err := mem.NewValidAddress(mem.KernelBase)
	if err != nil {
		t.Fatal(err)
	}

	var seq Sequencer
	if err := seq.Run(entry); err != nil {
		t.Fatalf("expected first Run to succeed; got %v", err)
	}

	if err := seq.Run(entry); err != ErrAlreadyRan {
		t.Fatalf("expected second Run to be rejected with ErrAlreadyRan; got %v", err)
	}

	if mretCalls != 1 {
		t.Fatalf("expected exactly 1 privilege return; got %d", mretCalls)
	}
}
