package cpu

// StatusFlag is a pre-shifted mstatus field value. StatusFlag is a closed
// family: only the constants below exist and only WriteMstatus accepts them,
// so an mstatus pattern cannot be committed to any other register.
type StatusFlag uint64

const (
	// Previous privilege mode restored by mret (MPP, bits 12:11).
	StatusMPPUser       StatusFlag = 0 << 11
	StatusMPPSupervisor StatusFlag = 1 << 11
	StatusMPPMachine    StatusFlag = 3 << 11

	// Supervisor previous privilege (SPP, bit 8).
	StatusSPP StatusFlag = 1 << 8

	// Interrupt enable and previous interrupt enable per privilege level.
	StatusMPIE StatusFlag = 1 << 7
	StatusSPIE StatusFlag = 1 << 5
	StatusMIE  StatusFlag = 1 << 3
	StatusSIE  StatusFlag = 1 << 1

	// Floating point context state (FS, bits 14:13).
	StatusFSOff     StatusFlag = 0 << 13
	StatusFSInitial StatusFlag = 1 << 13
	StatusFSClean   StatusFlag = 2 << 13
	StatusFSDirty   StatusFlag = 3 << 13

	// Memory access modifier bits.
	StatusMPRV StatusFlag = 1 << 17 // modify privilege: loads/stores use MPP translation
	StatusSUM  StatusFlag = 1 << 18 // permit supervisor access to user memory
	StatusMXR  StatusFlag = 1 << 19 // make executable pages readable

	// Virtualization trap bits.
	StatusTVM StatusFlag = 1 << 20 // trap satp accesses from supervisor mode
	StatusTW  StatusFlag = 1 << 21 // trap wfi after a bounded timeout
	StatusTSR StatusFlag = 1 << 22 // trap sret executed in supervisor mode
)

// ReadMstatus returns the raw mstatus word.
func ReadMstatus() uint64 {
	return csrReadFn(RegMstatus)
}

// WriteMstatus replaces the whole mstatus register with the supplied flags.
// There is no read-modify-write path: callers always know the complete
// intended state of the register at each step.
func WriteMstatus(flags StatusFlag) {
	csrWriteFn(RegMstatus, uint64(flags))
}

// SstatusFlag is a pre-shifted sstatus field value. sstatus exposes the
// supervisor-visible subset of the hart status, and its patterns form their
// own closed family accepted only by WriteSstatus.
type SstatusFlag uint64

const (
	SstatusSPP  SstatusFlag = 1 << 8 // previous privilege: supervisor when set, user when clear
	SstatusSPIE SstatusFlag = 1 << 5
	SstatusUPIE SstatusFlag = 1 << 4
	SstatusSIE  SstatusFlag = 1 << 1
	SstatusUIE  SstatusFlag = 1 << 0

	SstatusFSOff     SstatusFlag = 0 << 13
	SstatusFSInitial SstatusFlag = 1 << 13
	SstatusFSClean   SstatusFlag = 2 << 13
	SstatusFSDirty   SstatusFlag = 3 << 13

	SstatusSUM SstatusFlag = 1 << 18
	SstatusMXR SstatusFlag = 1 << 19
)

// ReadSstatus returns the raw sstatus word.
func ReadSstatus() uint64 {
	return csrReadFn(RegSstatus)
}

// WriteSstatus replaces the whole sstatus register with the supplied flags.
func WriteSstatus(flags SstatusFlag) {
	csrWriteFn(RegSstatus, uint64(flags))
}
