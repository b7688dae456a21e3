package kfmt

import "io"

// PrefixWriter wraps an io.Writer and injects a prefix at the beginning of
// each output line.
type PrefixWriter struct {
	// Sink receives all writes.
	Sink io.Writer

	// Prefix is injected at the beginning of each line.
	Prefix []byte

	bytesAfterPrefix int
}

// Write writes len(p) bytes from p to the wrapped writer, injecting the
// configured prefix at the start of every line. The injected prefix bytes are
// not included in the returned byte count.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	var written, start int

	if w.bytesAfterPrefix == 0 && len(p) != 0 {
		w.Sink.Write(w.Prefix)
	}

	for cur := 0; cur < len(p); cur++ {
		if p[cur] != '\n' {
			continue
		}

		n, err := w.Sink.Write(p[start : cur+1])
		written += n
		if err != nil {
			return written, err
		}

		if cur+1 != len(p) {
			w.Sink.Write(w.Prefix)
		}
		w.bytesAfterPrefix = 0
		start = cur + 1
	}

	if start < len(p) {
		n, err := w.Sink.Write(p[start:])
		written += n
		w.bytesAfterPrefix = n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}
