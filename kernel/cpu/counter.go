package cpu

// CounterenFlag is a pre-shifted counter-enable bit. The same field layout
// appears in mcounteren (grants supervisor access to the counters) and
// scounteren (grants user access), so both writers share the family.
type CounterenFlag uint64

const (
	CounterenCY CounterenFlag = 1 << 0 // cycle counter
	CounterenTM CounterenFlag = 1 << 1 // time counter
	CounterenIR CounterenFlag = 1 << 2 // instructions retired counter
)

// ReadMcounteren returns the raw mcounteren word.
func ReadMcounteren() uint64 {
	return csrReadFn(RegMcounteren)
}

// WriteMcounteren replaces the machine counter-enable register.
func WriteMcounteren(flags CounterenFlag) {
	csrWriteFn(RegMcounteren, uint64(flags))
}

// ReadScounteren returns the raw scounteren word.
func ReadScounteren() uint64 {
	return csrReadFn(RegScounteren)
}

// WriteScounteren replaces the supervisor counter-enable register.
func WriteScounteren(flags CounterenFlag) {
	csrWriteFn(RegScounteren, uint64(flags))
}

// EnvcfgFlag is a pre-shifted menvcfg field value.
type EnvcfgFlag uint64

const (
	EnvcfgFIOM EnvcfgFlag = 1 << 0  // fence of I/O implies fence of memory
	EnvcfgCBZE EnvcfgFlag = 1 << 7  // enable cbo.zero in lower privilege modes
	EnvcfgSTCE EnvcfgFlag = 1 << 63 // enable the stimecmp timer register
)

// ReadMenvcfg returns the raw menvcfg word.
func ReadMenvcfg() uint64 {
	return csrReadFn(RegMenvcfg)
}

// WriteMenvcfg replaces the machine environment configuration register.
func WriteMenvcfg(flags EnvcfgFlag) {
	csrWriteFn(RegMenvcfg, uint64(flags))
}
