// Package kfmt provides a minimal, allocation-free Printf implementation for
// kernel log output. Output is directed to a configurable sink; before a sink
// is registered (e.g. before the console subsystem comes up) all output is
// captured by a ring buffer and replayed once a sink becomes available.
package kfmt

import "io"

// maxBufSize defines the buffer size for formatting numbers.
const maxBufSize = 32

var (
	errMissingArg   = []byte("(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errNoVerb       = []byte("%!(NOVERB)")
	errExtraArg     = []byte("%!(EXTRA)")
	trueValue       = []byte("true")
	falseValue      = []byte("false")

	numFmtBuf = []byte("012345678901234567890123456789012")

	// singleByte is a shared buffer for emitting single characters without
	// allocating.
	singleByte = []byte(" ")

	// earlyPrintBuffer captures Printf output generated before an output
	// sink has been registered.
	earlyPrintBuffer ringBuffer

	// outputSink is the io.Writer where Printf sends its output. While nil,
	// output is redirected to earlyPrintBuffer.
	outputSink io.Writer
)

// SetOutputSink sets the target for calls to Printf to w and replays any data
// accumulated in the early print buffer to it.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyPrintBuffer)
	}
}

// GetOutputSink returns the currently active output sink. If no sink has been
// registered yet, the early print buffer is returned instead.
func GetOutputSink() io.Writer {
	if outputSink != nil {
		return outputSink
	}
	return &earlyPrintBuffer
}

// Printf formats its arguments according to format and writes the result to
// the active output sink. It supports the following subset of the fmt verbs:
//
//	%s  string or byte slice
//	%c  a single byte or rune
//	%d  integer, base 10
//	%o  integer, base 8
//	%x  integer, base 16, lower-case
//	%t  "true" or "false"
//
// An optional decimal width may precede the verb. Strings and base-10
// integers shorter than the width are left-padded with spaces; base-8 and
// base-16 integers are left-padded with zeroes.
//
// Unlike fmt.Printf this implementation never allocates, which makes it safe
// to call from any kernel execution context.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves exactly like Printf but writes the formatted output to w.
// A nil writer targets the early print buffer.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		padLen   int
		argIndex int
	)

	for pos := 0; pos < len(format); pos++ {
		ch := format[pos]
		if ch != '%' {
			emitByte(w, ch)
			continue
		}

		// Scan the optional width followed by the verb.
		padLen = 0
		pos++
		verbFound := false
	scanVerb:
		for ; pos < len(format); pos++ {
			ch = format[pos]
			switch {
			case ch == '%':
				emitByte(w, '%')
				verbFound = true
				break scanVerb
			case ch >= '0' && ch <= '9':
				padLen = (padLen * 10) + int(ch-'0')
			case ch == 'd' || ch == 'o' || ch == 'x' || ch == 's' || ch == 't' || ch == 'c':
				verbFound = true
				if argIndex >= len(args) {
					doWrite(w, errMissingArg)
					break scanVerb
				}

				switch ch {
				case 'd':
					fmtInt(w, args[argIndex], 10, padLen)
				case 'o':
					fmtInt(w, args[argIndex], 8, padLen)
				case 'x':
					fmtInt(w, args[argIndex], 16, padLen)
				case 's':
					fmtString(w, args[argIndex], padLen)
				case 't':
					fmtBool(w, args[argIndex])
				case 'c':
					fmtChar(w, args[argIndex])
				}

				argIndex++
				break scanVerb
			default:
				doWrite(w, errNoVerb)
				verbFound = true
				break scanVerb
			}
		}

		if !verbFound {
			doWrite(w, errNoVerb)
		}
	}

	// Report unused args
	for ; argIndex < len(args); argIndex++ {
		doWrite(w, errExtraArg)
	}
}

// fmtBool prints a formatted version of boolean value v.
func fmtBool(w io.Writer, v interface{}) {
	bVal, ok := v.(bool)
	if !ok {
		doWrite(w, errWrongArgType)
		return
	}

	if bVal {
		doWrite(w, trueValue)
	} else {
		doWrite(w, falseValue)
	}
}

// fmtChar prints a single byte or rune value v. Runes outside the ASCII range
// are emitted as their UTF-8 byte sequence.
func fmtChar(w io.Writer, v interface{}) {
	switch cVal := v.(type) {
	case byte:
		emitByte(w, cVal)
	case rune:
		if cVal < 0x80 {
			emitByte(w, byte(cVal))
			return
		}
		// Manual UTF-8 encoding; utf8.EncodeRune needs a destination
		// slice which would have to be allocated per call site.
		switch {
		case cVal < 0x800:
			emitByte(w, 0xc0|byte(cVal>>6))
			emitByte(w, 0x80|byte(cVal&0x3f))
		case cVal < 0x10000:
			emitByte(w, 0xe0|byte(cVal>>12))
			emitByte(w, 0x80|byte((cVal>>6)&0x3f))
			emitByte(w, 0x80|byte(cVal&0x3f))
		default:
			emitByte(w, 0xf0|byte(cVal>>18))
			emitByte(w, 0x80|byte((cVal>>12)&0x3f))
			emitByte(w, 0x80|byte((cVal>>6)&0x3f))
			emitByte(w, 0x80|byte(cVal&0x3f))
		}
	default:
		doWrite(w, errWrongArgType)
	}
}

// fmtString prints a formatted version of string or []byte value v, applying
// the padding specified by padLen.
func fmtString(w io.Writer, v interface{}, padLen int) {
	switch sVal := v.(type) {
	case string:
		fmtRepeat(w, ' ', padLen-len(sVal))
		// Converting the string to a byte slice would allocate, so emit
		// it one byte at a time.
		for i := 0; i < len(sVal); i++ {
			emitByte(w, sVal[i])
		}
	case []byte:
		fmtRepeat(w, ' ', padLen-len(sVal))
		doWrite(w, sVal)
	default:
		doWrite(w, errWrongArgType)
	}
}

// fmtRepeat writes count bytes with value ch.
func fmtRepeat(w io.Writer, ch byte, count int) {
	for i := 0; i < count; i++ {
		emitByte(w, ch)
	}
}

// fmtInt prints out a formatted version of v in the requested base, applying
// the padding specified by padLen. All built-in signed and unsigned integer
// types are supported.
func fmtInt(w io.Writer, v interface{}, base, padLen int) {
	var (
		sval      int64
		uval      uint64
		divider   uint64
		remainder uint64
		padCh     byte
	)

	if padLen >= maxBufSize {
		padLen = maxBufSize - 1
	}

	switch base {
	case 8:
		divider = 8
		padCh = '0'
	case 10:
		divider = 10
		padCh = ' '
	case 16:
		divider = 16
		padCh = '0'
	}

	switch iVal := v.(type) {
	case uint8:
		uval = uint64(iVal)
	case uint16:
		uval = uint64(iVal)
	case uint32:
		uval = uint64(iVal)
	case uint64:
		uval = iVal
	case uint:
		uval = uint64(iVal)
	case uintptr:
		uval = uint64(iVal)
	case int8:
		sval = int64(iVal)
	case int16:
		sval = int64(iVal)
	case int32:
		sval = int64(iVal)
	case int64:
		sval = iVal
	case int:
		sval = int64(iVal)
	default:
		doWrite(w, errWrongArgType)
		return
	}

	if sval < 0 {
		uval = uint64(-sval)
	} else if sval > 0 {
		uval = uint64(sval)
	}

	// Emit digits least-significant first, then reverse in place.
	var left, right, end int
	for right < maxBufSize {
		remainder = uval % divider
		if remainder < 10 {
			numFmtBuf[right] = byte(remainder) + '0'
		} else {
			numFmtBuf[right] = byte(remainder-10) + 'a'
		}

		right++

		uval /= divider
		if uval == 0 {
			break
		}
	}

	for ; right-left < padLen; right++ {
		numFmtBuf[right] = padCh
	}

	// Place the negative sign in the rightmost blank pad position, or append
	// it when no blank padding is available.
	if sval < 0 {
		for end = right - 1; numFmtBuf[end] == ' '; end-- {
		}

		if end == right-1 {
			right++
		}

		numFmtBuf[end+1] = '-'
	}

	end = right
	for right = right - 1; left < right; left, right = left+1, right-1 {
		numFmtBuf[left], numFmtBuf[right] = numFmtBuf[right], numFmtBuf[left]
	}

	doWrite(w, numFmtBuf[0:end])
}

// emitByte writes a single byte through the shared single-byte buffer.
func emitByte(w io.Writer, ch byte) {
	singleByte[0] = ch
	doWrite(w, singleByte)
}

// doWrite routes p to w, falling back to the early print buffer when no
// writer is supplied.
func doWrite(w io.Writer, p []byte) {
	if w != nil {
		w.Write(p)
	} else {
		earlyPrintBuffer.Write(p)
	}
}
