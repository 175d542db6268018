// Package kfmt provides a minimal, allocation-free formatter that can be
// safely used from the moment the kernel is entered, before any console or
// TTY driver has been initialized. Output produced before a sink is
// registered accumulates in a ring buffer and is replayed once a sink
// becomes available.
package kfmt

import "io"

var (
	errMissingArg = []byte("%!(MISSING)")
	errNoVerb     = []byte("%!(NOVERB)")
	errWrongType  = []byte("%!(WRONGTYPE)")
	trueValue     = []byte("true")
	falseValue    = []byte("false")

	// numBuf is a shared scratch buffer for formatting numbers; it is
	// large enough for a 64-bit value in base 8.
	numBuf [32]byte

	// singleByte is a shared buffer for emitting single characters.
	singleByte = []byte(" ")

	// earlyPrintBuffer stores Printf output produced before an output
	// sink has been registered.
	earlyPrintBuffer ringBuffer

	// outputSink is the io.Writer where Printf sends its output. While
	// nil, output is redirected to earlyPrintBuffer.
	outputSink io.Writer
)

// SetOutputSink registers w as the target for Printf output and drains any
// data accumulated in the early print buffer into it.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyPrintBuffer)
	}
}

// Printf formats its arguments to the active output sink. It supports the
// following verb subset: %s (string or byte slice), %d (base 10), %o
// (base 8), %x (base 16, lower-case), %t (bool) and %% for a literal percent
// sign. An optional decimal width may precede the verb: strings and base-10
// values shorter than the width are left-padded with spaces, base-16 values
// with zeroes. No memory is allocated while formatting.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves exactly like Printf but writes the formatted output to w.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	if w == nil {
		w = &earlyPrintBuffer
	}

	var (
		fmtLen   = len(format)
		argIndex int
	)

	for index := 0; index < fmtLen; {
		ch := format[index]
		if ch != '%' {
			emitByte(w, ch)
			index++
			continue
		}

		// Parse the optional width that follows the percent sign.
		index++
		padLen := 0
		for ; index < fmtLen && format[index] >= '0' && format[index] <= '9'; index++ {
			padLen = padLen*10 + int(format[index]-'0')
		}

		if index >= fmtLen {
			w.Write(errNoVerb)
			return
		}

		verb := format[index]
		index++

		if verb == '%' {
			emitByte(w, '%')
			continue
		}

		if argIndex >= len(args) {
			w.Write(errMissingArg)
			continue
		}

		arg := args[argIndex]
		argIndex++

		switch verb {
		case 's':
			emitString(w, arg, padLen)
		case 'd':
			emitNum(w, arg, 10, padLen)
		case 'o':
			emitNum(w, arg, 8, padLen)
		case 'x':
			emitNum(w, arg, 16, padLen)
		case 't':
			emitBool(w, arg)
		default:
			w.Write(errNoVerb)
		}
	}
}

func emitByte(w io.Writer, b byte) {
	singleByte[0] = b
	w.Write(singleByte)
}

func emitPad(w io.Writer, pad byte, count int) {
	for ; count > 0; count-- {
		emitByte(w, pad)
	}
}

func emitString(w io.Writer, arg interface{}, padLen int) {
	switch val := arg.(type) {
	case string:
		emitPad(w, ' ', padLen-len(val))
		for i := 0; i < len(val); i++ {
			emitByte(w, val[i])
		}
	case []byte:
		emitPad(w, ' ', padLen-len(val))
		w.Write(val)
	default:
		w.Write(errWrongType)
	}
}

func emitBool(w io.Writer, arg interface{}) {
	switch val := arg.(type) {
	case bool:
		if val {
			w.Write(trueValue)
		} else {
			w.Write(falseValue)
		}
	default:
		w.Write(errWrongType)
	}
}

func emitNum(w io.Writer, arg interface{}, base uint64, padLen int) {
	var (
		uval     uint64
		sval     int64
		signed   bool
		negative bool
	)

	switch val := arg.(type) {
	case uint8:
		uval = uint64(val)
	case uint16:
		uval = uint64(val)
	case uint32:
		uval = uint64(val)
	case uint64:
		uval = val
	case uint:
		uval = uint64(val)
	case uintptr:
		uval = uint64(val)
	case int8:
		sval, signed = int64(val), true
	case int16:
		sval, signed = int64(val), true
	case int32:
		sval, signed = int64(val), true
	case int64:
		sval, signed = val, true
	case int:
		sval, signed = int64(val), true
	default:
		w.Write(errWrongType)
		return
	}

	// Signed values are widened to int64 before the sign is stripped:
	// negating at the narrow width leaves the minimum value in place and
	// the later uint64 conversion would sign-extend it. For the int64
	// minimum the uint64 conversion of the unchanged value is already the
	// magnitude.
	if signed {
		negative = sval < 0
		if negative {
			uval = uint64(-sval)
		} else {
			uval = uint64(sval)
		}
	}

	digits := 0
	for v := uval; ; v /= base {
		digits++
		if v < base {
			break
		}
	}

	pad := byte(' ')
	if base == 16 {
		pad = '0'
	}
	if negative {
		padLen--
	}
	emitPad(w, pad, padLen-digits)

	if negative {
		emitByte(w, '-')
	}

	for index := digits - 1; index >= 0; index, uval = index-1, uval/base {
		d := byte(uval % base)
		if d < 10 {
			numBuf[index] = '0' + d
		} else {
			numBuf[index] = 'a' + d - 10
		}
	}

	w.Write(numBuf[:digits])
}
