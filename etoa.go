package picofmt

import "math"

// decimalExponent estimates floor(log10(v)) for a positive finite v and
// returns it with the matching power of ten. The estimate expands ln around
// 1.5 from the binary exponent and mantissa, builds 10^e from a power of two
// times a continued-fraction exp(z), and corrects downward once.
func decimalExponent(v float64) (int, float64) {
	bits := math.Float64bits(v)
	exp2 := int((bits>>52)&0x7ff) - 1023
	// mantissa in [1,2)
	m := math.Float64frombits(bits&(1<<52-1) | 1023<<52)
	e := int(0.1760912590558 + float64(exp2)*0.301029995663981 + (m-1.5)*0.289529654602168)

	exp2 = int(float64(e)*3.321928094887362 + 0.5)
	z := float64(e)*2.302585092994046 - float64(exp2)*0.6931471805599453
	z2 := z * z
	p := math.Float64frombits(uint64(exp2+1023) << 52)
	p *= 1 + 2*z/(2-z+(z2/(6+(z2/(10+z2/14)))))

	if v < p {
		e--
		p /= 10
	}
	return e, p
}

// etoa renders v as %e, or as %g when adapt is set. In %g mode the
// precision counts significant figures and values in [1e-4, 1e6) fall back
// to fixed notation.
func (c *Context) etoa(st State, v float64, adapt bool) {
	if c.special(st, v) {
		return
	}

	negative := v < 0
	if negative {
		v = -v
	}

	if !st.Has(FlagPrecision) {
		st.Precision = c.cfg.DefaultPrecision
	}

	zero := v == 0
	var expval int
	var scale float64
	if !zero {
		expval, scale = decimalExponent(v)
	}

	// room for "e+NN" or "e+NNN"
	minwidth := 4
	if expval >= 100 || expval <= -100 {
		minwidth = 5
	}

	if adapt {
		if zero || (v >= 1e-4 && v < 1e6) {
			if st.Precision > expval {
				st.Precision = st.Precision - expval - 1
			} else {
				st.Precision = 0
			}
			st.Flags |= FlagPrecision
			minwidth = 0
			expval = 0
		} else if st.Precision > 0 && st.Has(FlagPrecision) {
			// one significant figure goes to the whole part
			st.Precision--
		}
	}

	fwidth := 0
	if st.Width > minwidth {
		fwidth = st.Width - minwidth
	}
	if st.Has(FlagLeft) && minwidth > 0 {
		// the exponent pads on the right instead
		fwidth = 0
	}

	if expval != 0 {
		v /= scale
	}

	start := c.n
	if negative {
		v = -v
	}
	c.ftoa(State{
		Flags:     st.Flags,
		Width:     fwidth,
		Precision: st.Precision,
		Specifier: 'f',
	}, v)

	if minwidth == 0 {
		return
	}
	if isUpper(st.Specifier) {
		c.Put('E')
	} else {
		c.Put('e')
	}
	exp := uint64(expval)
	if expval < 0 {
		exp = uint64(-expval)
	}
	c.ntoa(State{
		Flags:     FlagZeroPad | FlagPlus,
		Width:     minwidth - 1,
		Specifier: 'u',
	}, exp, expval < 0, 10)
	if st.Has(FlagLeft) {
		c.pad(st.Width - (c.n - start))
	}
}
