package picofmt

import (
	"bufio"
	"io"
)

// Sink receives rendered characters one at a time. A nil Sink counts
// characters without storing them.
//
// Once WriteByte returns an error the remaining output of the call is
// counted but no longer delivered.
type Sink interface {
	io.ByteWriter
}

// SinkFunc adapts a per-character callback to a [Sink]. It never refuses a
// character.
type SinkFunc func(c byte)

// WriteByte calls f(c).
func (f SinkFunc) WriteByte(c byte) error {
	f(c)
	return nil
}

// Buffer is a bounded [Sink] over a caller-owned byte slice. It keeps the
// last slot for a NUL terminator and silently drops characters that do not
// fit.
type Buffer struct {
	buf []byte
	n   int
}

// NewBuffer returns a Buffer writing into buf.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

// WriteByte stores c if there is room before the terminator slot.
func (b *Buffer) WriteByte(c byte) error {
	if b.n+1 < len(b.buf) {
		b.buf[b.n] = c
		b.n++
	}
	return nil
}

// Terminate writes the NUL terminator after the stored characters. It is a
// no-op for a zero-length buffer.
func (b *Buffer) Terminate() {
	if len(b.buf) > 0 {
		b.buf[b.n] = 0
	}
}

// Len returns the number of stored characters, excluding the terminator.
func (b *Buffer) Len() int { return b.n }

// Bytes returns the stored characters, excluding the terminator.
func (b *Buffer) Bytes() []byte { return b.buf[:b.n] }

// appendSink grows a slice without bound.
type appendSink struct {
	dst []byte
}

func (a *appendSink) WriteByte(c byte) error {
	a.dst = append(a.dst, c)
	return nil
}

// writerSink returns a Sink for w and a flush function that must run after
// rendering. Writers that already accept single bytes are used directly.
func writerSink(w io.Writer) (Sink, func() error) {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw, func() error { return nil }
	}
	buf := bufio.NewWriter(w)
	return buf, buf.Flush
}
