package kfmt

import (
	"gopherv/kernel"
	"gopherv/kernel/cpu"
)

var (
	// cpuHaltFn is mocked by tests.
	cpuHaltFn = cpu.Halt

	errRuntimePanic = &kernel.Error{Module: "rt", Message: "unknown cause"}
)

// Panic reports the supplied error to the active output sink and halts the
// hart. Calls to Panic never return. A misconfigured privilege state must
// never be allowed to proceed, so every boot-time validation failure funnels
// through here.
func Panic(e interface{}) {
	var err *kernel.Error

	switch t := e.(type) {
	case *kernel.Error:
		err = t
	case string:
		errRuntimePanic.Message = t
		err = errRuntimePanic
	case error:
		errRuntimePanic.Message = t.Error()
		err = errRuntimePanic
	}

	Printf("\n-----------------------------------\n")
	if err != nil {
		Printf("[%s] unrecoverable error: %s\n", err.Module, err.Message)
	}
	Printf("*** kernel panic: hart halted ***")
	Printf("\n-----------------------------------\n")

	cpuHaltFn()
}
