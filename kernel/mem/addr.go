package mem

import "gopherv/kernel"

var (
	// ErrAddressOutOfRange is returned when attempting to validate an
	// address outside the kernel's physical window.
	ErrAddressOutOfRange = &kernel.Error{Module: "mem", Message: "address outside the kernel physical window"}
)

// ValidAddress wraps a physical address that has been range-checked against
// the kernel window [KernelBase, PhysLimit). Registers holding jump targets
// or comparison values the CPU will later act on only accept ValidAddress
// arguments; the check happens at construction time so a bad value can never
// be threaded through intervening logic before it reaches a register write.
type ValidAddress struct {
	addr uintptr
}

// NewValidAddress range-checks addr and wraps it into a ValidAddress. The
// returned error must not be discarded; callers that cannot supply an
// in-range address are expected to treat the failure as fatal.
func NewValidAddress(addr uintptr) (ValidAddress, *kernel.Error) {
	if addr < KernelBase || addr >= PhysLimit {
		return ValidAddress{}, ErrAddressOutOfRange
	}

	return ValidAddress{addr: addr}, nil
}

// Get returns the wrapped address.
func (a ValidAddress) Get() uintptr {
	return a.addr
}

// TimerCompareValue wraps a validated timer comparison value. Every value in
// the representable domain is currently accepted; the wrapper keeps the timer
// write path symmetric with the address one so a tighter bound can be
// introduced without touching call sites.
type TimerCompareValue struct {
	val uint64
}

// NewTimerCompareValue validates val and wraps it into a TimerCompareValue.
func NewTimerCompareValue(val uint64) (TimerCompareValue, *kernel.Error) {
	return TimerCompareValue{val: val}, nil
}

// Get returns the wrapped comparison value.
func (v TimerCompareValue) Get() uint64 {
	return v.val
}
