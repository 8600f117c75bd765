package picofmt

import (
	"math"
	"strings"
)

// Directive is the shape of one directive as written, before any argument
// is read.
type Directive struct {
	// Offset is the index of the '%' in the format string.
	Offset int

	// Text is the directive as written, e.g. "%-*.3lld".
	Text string

	Flags     Flags
	Width     int
	Precision int
	Size      Size

	// WidthStar and PrecisionStar report a '*' that pulls an int argument.
	WidthStar     bool
	PrecisionStar bool

	// Specifier is 0 when the format ends inside the directive.
	Specifier byte
}

const maxField = math.MaxInt32

// atoi parses decimal digits at s[i:], saturating at maxField.
func atoi(s string, i int) (int, int) {
	n := 0
	for i < len(s) && isDigit(s[i]) {
		d := int(s[i] - '0')
		if n > (maxField-d)/10 {
			n = maxField
		} else {
			n = n*10 + d
		}
		i++
	}
	return n, i
}

// cstring cuts s at its first NUL.
func cstring(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// parse decodes the directive starting at format[i] == '%' and returns it
// with the index just past it.
func (p *Printer) parse(format string, i int) (Directive, int) {
	d := Directive{Offset: i}
	i++

flags:
	for ; i < len(format); i++ {
		switch format[i] {
		case '0':
			d.Flags |= FlagZeroPad
		case '-':
			d.Flags |= FlagLeft
		case '+':
			d.Flags |= FlagPlus
		case ' ':
			d.Flags |= FlagSpace
		case '#':
			d.Flags |= FlagHash
		default:
			break flags
		}
	}

	if i < len(format) {
		if isDigit(format[i]) {
			d.Width, i = atoi(format, i)
		} else if format[i] == '*' {
			d.WidthStar = true
			i++
		}
	}

	if i < len(format) && format[i] == '.' {
		d.Flags |= FlagPrecision
		i++
		if i < len(format) {
			if isDigit(format[i]) {
				d.Precision, i = atoi(format, i)
			} else if format[i] == '*' {
				d.PrecisionStar = true
				i++
			}
		}
	}

	d.Size = SizeDefault
	if i < len(format) {
		switch format[i] {
		case 'l':
			d.Size = SizeLong
			i++
			if i < len(format) && format[i] == 'l' {
				d.Size = SizeLongLong
				i++
			}
		case 'h':
			d.Size = SizeShort
			i++
			if i < len(format) && format[i] == 'h' {
				d.Size = SizeChar
				i++
			}
		case 't':
			if p.config.PtrDiff {
				d.Size = p.pointerSize()
				i++
			}
		case 'j':
			// intmax_t is 64 bits in every supported model
			if p.config.Model.LongBits() == 64 {
				d.Size = SizeLong
			} else {
				d.Size = SizeLongLong
			}
			i++
		case 'z':
			d.Size = p.pointerSize()
			i++
		}
	}

	if i < len(format) {
		d.Specifier = format[i]
		i++
	}
	d.Text = format[d.Offset:i]
	return d, i
}

// pointerSize is the size class matching size_t and ptrdiff_t.
func (p *Printer) pointerSize() Size {
	if p.config.Model.PointerBits() == p.config.Model.LongBits() {
		return SizeLong
	}
	return SizeLongLong
}

// state resolves d's '*' fields from args.
func (d Directive) state(args *Args) State {
	st := State{
		Flags:     d.Flags,
		Width:     d.Width,
		Precision: d.Precision,
		Size:      d.Size,
		Specifier: d.Specifier,
	}
	if d.WidthStar {
		w := args.NextInt()
		if w < 0 {
			st.Flags |= FlagLeft
			w = -w
		}
		st.Width = w
	}
	if d.PrecisionStar {
		prec := args.NextInt()
		if prec < 0 {
			st.Flags &^= FlagPrecision
			prec = 0
		}
		st.Precision = prec
	}
	return st
}

func (p *Printer) render(ctx *Context, format string) {
	format = cstring(format)
	for i := 0; i < len(format); {
		if format[i] != '%' {
			ctx.Put(format[i])
			i++
			continue
		}
		d, next := p.parse(format, i)
		i = next
		if d.Specifier == 0 {
			return
		}
		p.dispatch(ctx, d.state(ctx.args))
	}
}

// sizeBits is the width in bits of an argument of size class s.
func (c *Context) sizeBits(s Size) int {
	switch s {
	case SizeChar:
		return 8
	case SizeShort:
		return 16
	case SizeLong:
		return c.cfg.Model.LongBits()
	case SizeLongLong:
		if c.cfg.LongLong {
			return 64
		}
		return c.cfg.Model.LongBits()
	default:
		return 32
	}
}

// truncUnsigned keeps the low bits of v.
func truncUnsigned(v uint64, bits int) uint64 {
	if bits >= 64 {
		return v
	}
	return v & (1<<bits - 1)
}

// truncSigned sign-extends the low bits of v.
func truncSigned(v uint64, bits int) int64 {
	shift := 64 - bits
	return int64(v<<shift) >> shift
}

func (p *Printer) dispatch(ctx *Context, st State) {
	switch st.Specifier {
	case 'd', 'i':
		v := truncSigned(ctx.args.NextBits(), ctx.sizeBits(st.Size))
		u := uint64(v)
		if v < 0 {
			u = -u
		}
		ctx.integer(st, u, v < 0)
	case 'u', 'x', 'X', 'o', 'b':
		ctx.integer(st, truncUnsigned(ctx.args.NextBits(), ctx.sizeBits(st.Size)), false)
	case 'f', 'F':
		v := ctx.args.NextFloat()
		if !p.config.Float {
			ctx.PutString("??")
			return
		}
		ctx.fixed(st, v)
	case 'e', 'E', 'g', 'G':
		v := ctx.args.NextFloat()
		if !p.config.Float || !p.config.Exponential {
			ctx.PutString("??")
			return
		}
		ctx.etoa(st, v, st.Specifier == 'g' || st.Specifier == 'G')
	case 'c':
		ctx.char(st, byte(ctx.args.NextBits()))
	case 's':
		ctx.str(st, ctx.args.NextString())
	case 'p':
		st.Width = p.config.Model.PointerBits() / 4
		bits := p.config.Model.PointerBits()
		if !p.config.LongLong {
			bits = min(bits, p.config.Model.LongBits())
		}
		st.Flags |= FlagZeroPad
		st.Specifier = 'X'
		ctx.ntoa(st, truncUnsigned(ctx.args.NextBits(), bits), false, 16)
	case '%':
		ctx.Put('%')
	default:
		if h := p.registry.Lookup(st.Specifier); h != nil {
			h(ctx, st)
			return
		}
		ctx.Put(st.Specifier)
	}
}

func (c *Context) char(st State, ch byte) {
	if !st.Has(FlagLeft) {
		c.pad(st.Width - 1)
	}
	c.Put(ch)
	if st.Has(FlagLeft) {
		c.pad(st.Width - 1)
	}
}

func (c *Context) str(st State, s string) {
	s = cstring(s)
	if st.Has(FlagPrecision) && len(s) > st.Precision {
		s = s[:st.Precision]
	}
	if !st.Has(FlagLeft) {
		c.pad(st.Width - len(s))
	}
	c.PutString(s)
	if st.Has(FlagLeft) {
		c.pad(st.Width - len(s))
	}
}
