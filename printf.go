package picofmt

import "io"

// Snprintf renders into buf, storing at most len(buf)-1 characters followed
// by a NUL terminator. It returns the untruncated length. A nil or empty buf
// only measures.
func (p *Printer) Snprintf(buf []byte, format string, a ...any) int {
	return p.Vsnprintf(buf, format, Pack(a...))
}

// Vsnprintf is [Printer.Snprintf] with a pre-packed argument cursor.
func (p *Printer) Vsnprintf(buf []byte, format string, args *Args) int {
	if len(buf) == 0 {
		return p.Render(nil, format, args)
	}
	b := NewBuffer(buf)
	n := p.Render(b, format, args)
	b.Terminate()
	return n
}

// Appendf renders onto dst without a size limit and returns the extended
// slice.
func (p *Printer) Appendf(dst []byte, format string, a ...any) []byte {
	return p.Vappendf(dst, format, Pack(a...))
}

// Vappendf is [Printer.Appendf] with a pre-packed argument cursor.
func (p *Printer) Vappendf(dst []byte, format string, args *Args) []byte {
	sink := appendSink{dst: dst}
	p.Render(&sink, format, args)
	return sink.dst
}

// Sprintf renders to a new string.
func (p *Printer) Sprintf(format string, a ...any) string {
	return string(p.Vappendf(nil, format, Pack(a...)))
}

// Fctprintf renders through fn, one character per call. It returns the
// number of characters produced.
func (p *Printer) Fctprintf(fn func(c byte), format string, a ...any) int {
	return p.Vfctprintf(fn, format, Pack(a...))
}

// Vfctprintf is [Printer.Fctprintf] with a pre-packed argument cursor.
func (p *Printer) Vfctprintf(fn func(c byte), format string, args *Args) int {
	if fn == nil {
		return p.Render(nil, format, args)
	}
	return p.Render(SinkFunc(fn), format, args)
}

// Fprintf renders to w and returns the number of characters produced and
// the first write error.
func (p *Printer) Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return p.Vfprintf(w, format, Pack(a...))
}

// Vfprintf is [Printer.Fprintf] with a pre-packed argument cursor.
func (p *Printer) Vfprintf(w io.Writer, format string, args *Args) (int, error) {
	sink, flush := writerSink(w)
	n, err := p.renderErr(sink, format, args)
	if ferr := flush(); err == nil {
		err = ferr
	}
	return n, err
}

// Snprintf renders into buf with the [Default] printer.
func Snprintf(buf []byte, format string, a ...any) int {
	return Default().Snprintf(buf, format, a...)
}

// Vsnprintf renders into buf with the [Default] printer.
func Vsnprintf(buf []byte, format string, args *Args) int {
	return Default().Vsnprintf(buf, format, args)
}

// Appendf renders onto dst with the [Default] printer.
func Appendf(dst []byte, format string, a ...any) []byte {
	return Default().Appendf(dst, format, a...)
}

// Vappendf renders onto dst with the [Default] printer.
func Vappendf(dst []byte, format string, args *Args) []byte {
	return Default().Vappendf(dst, format, args)
}

// Sprintf renders to a new string with the [Default] printer.
func Sprintf(format string, a ...any) string {
	return Default().Sprintf(format, a...)
}

// Fctprintf renders through fn with the [Default] printer.
func Fctprintf(fn func(c byte), format string, a ...any) int {
	return Default().Fctprintf(fn, format, a...)
}

// Vfctprintf renders through fn with the [Default] printer.
func Vfctprintf(fn func(c byte), format string, args *Args) int {
	return Default().Vfctprintf(fn, format, args)
}

// Fprintf renders to w with the [Default] printer.
func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return Default().Fprintf(w, format, a...)
}

// Vfprintf renders to w with the [Default] printer.
func Vfprintf(w io.Writer, format string, args *Args) (int, error) {
	return Default().Vfprintf(w, format, args)
}
