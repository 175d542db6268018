package cpu

// MedelegFlag is a pre-shifted medeleg bit; one bit exists per architected
// exception cause. Setting a bit routes that exception to the supervisor
// trap handler instead of the machine one.
type MedelegFlag uint64

const (
	DelegInstrAddrMisaligned MedelegFlag = 1 << 0
	DelegInstrAccessFault    MedelegFlag = 1 << 1
	DelegIllegalInstr        MedelegFlag = 1 << 2
	DelegBreakpoint          MedelegFlag = 1 << 3
	DelegLoadAddrMisaligned  MedelegFlag = 1 << 4
	DelegLoadAccessFault     MedelegFlag = 1 << 5
	DelegStoreAddrMisaligned MedelegFlag = 1 << 6
	DelegStoreAccessFault    MedelegFlag = 1 << 7
	DelegEcallFromUser       MedelegFlag = 1 << 8
	DelegEcallFromSupervisor MedelegFlag = 1 << 9
	DelegEcallFromMachine    MedelegFlag = 1 << 11
	DelegInstrPageFault      MedelegFlag = 1 << 12
	DelegLoadPageFault       MedelegFlag = 1 << 13
	DelegStorePageFault      MedelegFlag = 1 << 15

	// DelegAllExceptions routes every architected exception cause (codes
	// 0 through 15) to supervisor mode.
	DelegAllExceptions MedelegFlag = 0xffff
)

// ReadMedeleg returns the raw medeleg word.
func ReadMedeleg() uint64 {
	return csrReadFn(RegMedeleg)
}

// WriteMedeleg replaces the machine exception delegation register.
func WriteMedeleg(flags MedelegFlag) {
	csrWriteFn(RegMedeleg, uint64(flags))
}

// MidelegFlag is a pre-shifted mideleg bit; one bit exists per delegatable
// interrupt cause.
type MidelegFlag uint64

const (
	DelegSupervisorSoftInt  MidelegFlag = 1 << 1
	DelegSupervisorTimerInt MidelegFlag = 1 << 5
	DelegSupervisorExtInt   MidelegFlag = 1 << 9

	// DelegAllSupervisorInts routes the supervisor software, timer and
	// external interrupt causes to supervisor mode.
	DelegAllSupervisorInts = DelegSupervisorSoftInt | DelegSupervisorTimerInt | DelegSupervisorExtInt
)

// ReadMideleg returns the raw mideleg word.
func ReadMideleg() uint64 {
	return csrReadFn(RegMideleg)
}

// WriteMideleg replaces the machine interrupt delegation register.
func WriteMideleg(flags MidelegFlag) {
	csrWriteFn(RegMideleg, uint64(flags))
}
