// +build riscv64

package cpu

// The functions below are implemented by the rt0 assembly that is linked
// into the final kernel image.

// csrRead returns the value of the supplied CSR. It expands to a single
// csrr instruction which cannot be interrupted and preserves flag state.
func csrRead(reg Reg) uint64

// csrWrite replaces the value of the supplied CSR. It expands to a single
// csrw instruction which cannot be interrupted and preserves flag state.
func csrWrite(reg Reg, val uint64)

// Halt stops instruction execution on the current hart.
func Halt()

// flushTLB invalidates all TLB entries on the current hart (sfence.vma).
func flushTLB()

// MRet executes the machine-level privilege-return instruction, atomically
// restoring the privilege and interrupt state staged in mstatus and jumping
// to the address held in mepc. It does not return.
func MRet()
