package kfmt

import "io"

// ringBufferSize defines the size of the early print buffer. It must always
// be a power of 2 and defaults to enough space for a full 80x12 screen of
// boot output.
const ringBufferSize = 1024

// ringBuffer buffers Printf output emitted before the character device
// drivers come online. When the buffer fills up, the oldest contents are
// overwritten.
type ringBuffer struct {
	data           [ringBufferSize]byte
	rIndex, wIndex int
}

// Write writes len(p) bytes from p to the ring buffer, dropping the oldest
// buffered bytes if the buffer is full.
func (rb *ringBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		rb.data[rb.wIndex] = b
		rb.wIndex = (rb.wIndex + 1) & (ringBufferSize - 1)
		if rb.rIndex == rb.wIndex {
			rb.rIndex = (rb.rIndex + 1) & (ringBufferSize - 1)
		}
	}

	return len(p), nil
}

// Read reads up to len(p) buffered bytes into p. Reading an empty buffer
// returns io.EOF. When the buffered contents wrap past the end of the
// backing array a single Read call only returns the leading chunk; the
// caller picks up the remainder with its next call.
func (rb *ringBuffer) Read(p []byte) (int, error) {
	switch {
	case rb.rIndex < rb.wIndex:
		n := rb.wIndex - rb.rIndex
		if pLen := len(p); pLen < n {
			n = pLen
		}

		copy(p, rb.data[rb.rIndex:rb.rIndex+n])
		rb.rIndex += n

		return n, nil
	case rb.rIndex > rb.wIndex:
		n := ringBufferSize - rb.rIndex
		if pLen := len(p); pLen < n {
			n = pLen
		}

		copy(p, rb.data[rb.rIndex:rb.rIndex+n])
		rb.rIndex = (rb.rIndex + n) & (ringBufferSize - 1)

		return n, nil
	default:
		return 0, io.EOF
	}
}
