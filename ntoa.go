package picofmt

// scratch is the fixed-capacity conversion buffer. Digits go in least
// significant first; push drops anything past limit.
type scratch struct {
	buf   [MaxBufferSize]byte
	n     int
	limit int
}

func newScratch(limit int) scratch {
	return scratch{limit: min(limit, MaxBufferSize)}
}

func (s *scratch) full() bool { return s.n >= s.limit }

func (s *scratch) push(c byte) {
	if s.n < s.limit {
		s.buf[s.n] = c
		s.n++
	}
}

func (s *scratch) bytes() []byte { return s.buf[:s.n] }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// integer normalizes st for an integer specifier and converts the
// magnitude v.
func (c *Context) integer(st State, v uint64, negative bool) {
	var base uint64
	switch st.Specifier {
	case 'x', 'X':
		base = 16
	case 'o':
		base = 8
	case 'b':
		base = 2
	default:
		base = 10
		st.Flags &^= FlagHash
	}
	if st.Specifier != 'i' && st.Specifier != 'd' {
		st.Flags &^= FlagPlus | FlagSpace
	}
	if st.Has(FlagPrecision) {
		st.Flags &^= FlagZeroPad
	}
	c.ntoa(st, v, negative, base)
}

// ntoa renders v in base without further normalization.
func (c *Context) ntoa(st State, v uint64, negative bool, base uint64) {
	buf := newScratch(c.cfg.NtoaBufferSize)

	if v == 0 {
		st.Flags &^= FlagHash
	}

	// precision 0 with value 0 prints no digits
	if !st.Has(FlagPrecision) || v != 0 {
		letter := byte('a')
		if isUpper(st.Specifier) {
			letter = 'A'
		}
		for {
			d := byte(v % base)
			if d < 10 {
				buf.push('0' + d)
			} else {
				buf.push(letter + d - 10)
			}
			v /= base
			if v == 0 || buf.full() {
				break
			}
		}
	}

	c.ntoaFormat(st, &buf, negative, base)
}

// ntoaFormat completes the reversed digits in buf with precision zeros,
// the alternate-form prefix, zero padding and the sign. Zero padding fills
// only the width left over by the sign and prefix.
func (c *Context) ntoaFormat(st State, buf *scratch, negative bool, base uint64) {
	for buf.n < st.Precision && !buf.full() {
		buf.push('0')
	}

	// octal's alternate form is a leading zero digit, unless one is already there
	if st.Has(FlagHash) && base == 8 && buf.n > 0 && buf.buf[buf.n-1] != '0' {
		buf.push('0')
	}

	reserved := 0
	if st.Has(FlagHash) && (base == 16 || base == 2) {
		reserved = 2
	}
	if negative || st.Flags&(FlagPlus|FlagSpace) != 0 {
		reserved++
	}
	if st.Has(FlagZeroPad) && !st.Has(FlagLeft) {
		for buf.n+reserved < st.Width && !buf.full() {
			buf.push('0')
		}
	}

	if st.Has(FlagHash) {
		switch base {
		case 16:
			buf.push(st.Specifier)
			buf.push('0')
		case 2:
			buf.push('b')
			buf.push('0')
		}
	}

	switch {
	case negative:
		buf.push('-')
	case st.Has(FlagPlus):
		buf.push('+')
	case st.Has(FlagSpace):
		buf.push(' ')
	}

	c.outRev(st, buf.bytes())
}
