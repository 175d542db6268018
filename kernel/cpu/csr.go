// Package cpu centralizes access to the RISC-V control and status registers.
// Every privileged register the kernel touches is read and written through
// the single primitive in this package; the per-register accessors layered on
// top only accept values from that register's own flag family, so a bit
// pattern meant for one register can never be committed to another.
package cpu

import "gopherv/kernel/mem"

// Reg names a single control and status register. Reg values are fixed
// compile-time constants; no code path constructs one dynamically.
type Reg uint16

// The architected CSR numbers used by this kernel.
const (
	RegSstatus    Reg = 0x100
	RegSie        Reg = 0x104
	RegStvec      Reg = 0x105
	RegScounteren Reg = 0x106
	RegSscratch   Reg = 0x140
	RegSepc       Reg = 0x141
	RegScause     Reg = 0x142
	RegStval      Reg = 0x143
	RegSip        Reg = 0x144
	RegStimecmp   Reg = 0x14d
	RegSatp       Reg = 0x180
	RegMstatus    Reg = 0x300
	RegMedeleg    Reg = 0x302
	RegMideleg    Reg = 0x303
	RegMie        Reg = 0x304
	RegMtvec      Reg = 0x305
	RegMcounteren Reg = 0x306
	RegMenvcfg    Reg = 0x30a
	RegMscratch   Reg = 0x340
	RegMepc       Reg = 0x341
	RegMcause     Reg = 0x342
	RegMtval      Reg = 0x343
	RegMip        Reg = 0x344
	RegPmpcfg0    Reg = 0x3a0
	RegPmpaddr0   Reg = 0x3b0
	RegMhartid    Reg = 0xf14
)

var (
	// csrReadFn and csrWriteFn wrap the privileged accessor instructions.
	// Tests swap them for a software register file.
	csrReadFn  = csrRead
	csrWriteFn = csrWrite

	// tlbFlushFn wraps the translation cache invalidation instruction.
	// Tests swap it alongside the csr fns so flush traffic lands in the
	// same software register file as the register traffic.
	tlbFlushFn = flushTLB
)

// HartID returns the ID of the hardware thread executing this code. The boot
// code uses it to carve out a per-hart stack and the scheduler uses it to
// index per-hart run state.
func HartID() uint64 {
	return csrReadFn(RegMhartid)
}

// ReadMscratch returns the machine-mode scratch word for this hart.
func ReadMscratch() uint64 {
	return csrReadFn(RegMscratch)
}

// WriteMscratch replaces the machine-mode scratch word for this hart. The
// scratch slot carries per-hart identity across trap entry and exit.
func WriteMscratch(val uint64) {
	csrWriteFn(RegMscratch, val)
}

// ReadSscratch returns the supervisor scratch word for this hart.
func ReadSscratch() uint64 {
	return csrReadFn(RegSscratch)
}

// WriteSscratch replaces the supervisor scratch word for this hart.
func WriteSscratch(val uint64) {
	csrWriteFn(RegSscratch, val)
}

// ReadMepc returns the machine exception program counter.
func ReadMepc() uintptr {
	return uintptr(csrReadFn(RegMepc))
}

// WriteMepc programs the machine exception program counter. The CPU jumps to
// this address on the next mret, so only a range-checked address is accepted.
func WriteMepc(addr mem.ValidAddress) {
	csrWriteFn(RegMepc, uint64(addr.Get()))
}

// ReadSepc returns the supervisor exception program counter.
func ReadSepc() uintptr {
	return uintptr(csrReadFn(RegSepc))
}

// WriteSepc programs the supervisor exception program counter.
func WriteSepc(addr mem.ValidAddress) {
	csrWriteFn(RegSepc, uint64(addr.Get()))
}

// WriteMtvec programs the machine trap vector base address.
func WriteMtvec(addr mem.ValidAddress) {
	csrWriteFn(RegMtvec, uint64(addr.Get()))
}

// WriteStvec programs the supervisor trap vector base address.
func WriteStvec(addr mem.ValidAddress) {
	csrWriteFn(RegStvec, uint64(addr.Get()))
}

// ReadMtval returns the machine trap value (the faulting address or
// instruction for the last trap). Hardware state is trusted once read; no
// validation is applied on the way out.
func ReadMtval() uint64 {
	return csrReadFn(RegMtval)
}

// ReadStval returns the supervisor trap value.
func ReadStval() uint64 {
	return csrReadFn(RegStval)
}

// WriteStimecmp programs the supervisor timer comparison register. The write
// only takes effect when EnvcfgSTCE has been set in menvcfg.
func WriteStimecmp(val mem.TimerCompareValue) {
	csrWriteFn(RegStimecmp, val.Get())
}

// FlushTLB invalidates all cached address translations on the current hart.
// Callers that update satp must invoke FlushTLB before relying on the new
// translation; the satp write itself never flushes.
func FlushTLB() {
	tlbFlushFn()
}
