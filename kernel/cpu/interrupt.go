package cpu

// MieFlag is a pre-shifted machine interrupt-enable bit. Software, timer and
// external interrupts gate independently at each privilege level.
type MieFlag uint64

const (
	MieSSIE MieFlag = 1 << 1  // supervisor software
	MieMSIE MieFlag = 1 << 3  // machine software
	MieSTIE MieFlag = 1 << 5  // supervisor timer
	MieMTIE MieFlag = 1 << 7  // machine timer
	MieSEIE MieFlag = 1 << 9  // supervisor external
	MieMEIE MieFlag = 1 << 11 // machine external
)

// ReadMie returns the raw mie word.
func ReadMie() uint64 {
	return csrReadFn(RegMie)
}

// WriteMie replaces the machine interrupt-enable register.
func WriteMie(flags MieFlag) {
	csrWriteFn(RegMie, uint64(flags))
}

// MipFlag is a pre-shifted machine interrupt-pending bit. Pending bits are
// normally set by hardware and the register is read-mostly; the write path
// exists so software can clear pending software interrupts.
type MipFlag uint64

const (
	MipSSIP MipFlag = 1 << 1
	MipMSIP MipFlag = 1 << 3
	MipSTIP MipFlag = 1 << 5
	MipMTIP MipFlag = 1 << 7
	MipSEIP MipFlag = 1 << 9
	MipMEIP MipFlag = 1 << 11
)

// ReadMip returns the raw mip word.
func ReadMip() uint64 {
	return csrReadFn(RegMip)
}

// WriteMip replaces the machine interrupt-pending register.
func WriteMip(flags MipFlag) {
	csrWriteFn(RegMip, uint64(flags))
}

// SieFlag is a pre-shifted supervisor interrupt-enable bit.
type SieFlag uint64

const (
	SieSSIE SieFlag = 1 << 1 // software
	SieSTIE SieFlag = 1 << 5 // timer
	SieSEIE SieFlag = 1 << 9 // external
)

// ReadSie returns the raw sie word.
func ReadSie() uint64 {
	return csrReadFn(RegSie)
}

// WriteSie replaces the supervisor interrupt-enable register.
func WriteSie(flags SieFlag) {
	csrWriteFn(RegSie, uint64(flags))
}

// SipFlag is a pre-shifted supervisor interrupt-pending bit.
type SipFlag uint64

const (
	SipSSIP SipFlag = 1 << 1
	SipSTIP SipFlag = 1 << 5
	SipSEIP SipFlag = 1 << 9
)

// ReadSip returns the raw sip word.
func ReadSip() uint64 {
	return csrReadFn(RegSip)
}

// WriteSip replaces the supervisor interrupt-pending register.
func WriteSip(flags SipFlag) {
	csrWriteFn(RegSip, uint64(flags))
}
