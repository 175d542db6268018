package cpu

// regFileSize covers the full 12-bit CSR address space.
const regFileSize = 4096

// RegFile is a software model of a single hart's control and status register
// file. It backs the register primitive on non-riscv64 builds and lets tests
// exercise register traffic without real hardware. The model stores raw
// words; it does not implement per-register WARL behavior.
type RegFile struct {
	regs       [regFileSize]uint64
	tlbFlushes int
}

// NewRegFile returns a register file for a hart with the supplied ID.
func NewRegFile(hartID uint64) *RegFile {
	var rf RegFile
	rf.regs[RegMhartid] = hartID
	return &rf
}

// Read returns the current value of reg.
func (rf *RegFile) Read(reg Reg) uint64 {
	return rf.regs[reg]
}

// Write replaces the value of reg with val.
func (rf *RegFile) Write(reg Reg, val uint64) {
	rf.regs[reg] = val
}

// RecordTLBFlush notes a TLB flush request against the model.
func (rf *RegFile) RecordTLBFlush() {
	rf.tlbFlushes++
}

// TLBFlushes returns the number of TLB flush requests recorded so far.
func (rf *RegFile) TLBFlushes() int {
	return rf.tlbFlushes
}
