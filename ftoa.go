package picofmt

import "math"

var pow10 = [...]float64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// maxFracDigits is the number of fractional digits computed by scaling;
// further requested digits are emitted as zeros.
const maxFracDigits = len(pow10) - 1

// special handles nan and the infinities. They honor width and '-' only.
func (c *Context) special(st State, v float64) bool {
	st.Flags &^= FlagZeroPad
	switch {
	case math.IsNaN(v):
		c.outRev(st, []byte("nan"))
	case math.IsInf(v, -1):
		c.outRev(st, []byte("fni-"))
	case math.IsInf(v, 1):
		if st.Has(FlagPlus) {
			c.outRev(st, []byte("fni+"))
		} else {
			c.outRev(st, []byte("fni"))
		}
	default:
		return false
	}
	return true
}

// fixed is the %f entry: magnitudes above MaxFloat are handed to the
// exponential converter, or dropped when it is disabled.
func (c *Context) fixed(st State, v float64) {
	if !math.IsInf(v, 0) && math.Abs(v) > c.cfg.MaxFloat {
		if c.cfg.Exponential {
			c.etoa(st, v, false)
		}
		return
	}
	c.ftoa(st, v)
}

// ftoa renders a finite v in fixed-point notation with round-half-to-even
// on the first discarded digit.
func (c *Context) ftoa(st State, v float64) {
	if c.special(st, v) {
		return
	}
	buf := newScratch(c.cfg.FtoaBufferSize)

	negative := false
	if v < 0 {
		negative = true
		v = -v
	}

	if !st.Has(FlagPrecision) {
		st.Precision = c.cfg.DefaultPrecision
	}
	// scaling past 10^9 overflows, so the excess digits are zeros
	for !buf.full() && st.Precision > maxFracDigits {
		buf.push('0')
		st.Precision--
	}
	st.Precision = min(st.Precision, maxFracDigits)

	whole := int64(v)
	tmp := (v - float64(whole)) * pow10[st.Precision]
	frac := uint64(tmp)
	diff := tmp - float64(frac)

	if diff > 0.5 {
		frac++
		// rollover, e.g. 0.99 at precision 1 is 1.0
		if float64(frac) >= pow10[st.Precision] {
			frac = 0
			whole++
		}
	} else if diff < 0.5 {
	} else if frac == 0 || frac&1 != 0 {
		// halfway: round up if odd or if the last digit is 0
		frac++
	}

	if st.Precision == 0 {
		diff = v - float64(whole)
		if !(diff < 0.5 || diff > 0.5) && whole&1 != 0 {
			// exactly halfway and odd: 1.5 -> 2, but 2.5 -> 2
			whole++
		}
	} else {
		count := st.Precision
		for !buf.full() {
			count--
			buf.push('0' + byte(frac%10))
			frac /= 10
			if frac == 0 {
				break
			}
		}
		for ; !buf.full() && count > 0; count-- {
			buf.push('0')
		}
		buf.push('.')
	}

	for !buf.full() {
		buf.push('0' + byte(whole%10))
		whole /= 10
		if whole == 0 {
			break
		}
	}

	if !st.Has(FlagLeft) && st.Has(FlagZeroPad) {
		if st.Width > 0 && (negative || st.Flags&(FlagPlus|FlagSpace) != 0) {
			st.Width--
		}
		for buf.n < st.Width && !buf.full() {
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
