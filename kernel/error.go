package kernel

// Error describes an error raised by a kernel subsystem. Kernel errors are
// always defined as global variables pointing to an Error value; the Go
// allocator is not available this early so errors.New cannot be used.
type Error struct {
	// Module is the name of the subsystem where the error occurred.
	Module string

	// Message describes the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
