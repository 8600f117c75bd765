package picofmt

// Context is the output cursor of one render call. Extension handlers use it
// to emit characters, read further arguments and reuse the built-in
// converters.
type Context struct {
	sink Sink
	err  error
	n    int
	args *Args
	cfg  *Config
}

// Put emits one character.
func (c *Context) Put(ch byte) {
	if c.sink != nil && c.err == nil {
		c.err = c.sink.WriteByte(ch)
	}
	c.n++
}

// PutString emits s.
func (c *Context) PutString(s string) {
	for i := 0; i < len(s); i++ {
		c.Put(s[i])
	}
}

// Len returns the number of characters emitted so far, including those the
// sink refused.
func (c *Context) Len() int { return c.n }

// Args returns the argument cursor shared with the dispatcher.
func (c *Context) Args() *Args { return c.args }

// Err returns the first error reported by the sink.
func (c *Context) Err() error { return c.err }

// Config returns the configuration of the printer driving this call.
func (c *Context) Config() Config { return *c.cfg }

// FormatInt renders v like %d under st's flags, width and precision.
func (c *Context) FormatInt(st State, v int64) {
	st.Specifier = 'd'
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	c.integer(st, u, v < 0)
}

// FormatUint renders v in base 2, 8, 10 or 16 under st. Hex letters follow
// the case of st.Specifier; any other base falls back to 10.
func (c *Context) FormatUint(st State, v uint64, base int) {
	switch base {
	case 2:
		st.Specifier = 'b'
	case 8:
		st.Specifier = 'o'
	case 16:
		if !isUpper(st.Specifier) {
			st.Specifier = 'x'
		} else {
			st.Specifier = 'X'
		}
	default:
		st.Specifier = 'u'
	}
	c.integer(st, v, false)
}

// FormatFloat renders v like %f under st, switching to exponential notation
// beyond the configured ceiling. It emits "??" when float support is off.
func (c *Context) FormatFloat(st State, v float64) {
	if !c.cfg.Float {
		c.PutString("??")
		return
	}
	st.Specifier = 'f'
	c.fixed(st, v)
}

// FormatString renders s like %s under st.
func (c *Context) FormatString(st State, s string) {
	c.str(st, s)
}

// pad emits n spaces.
func (c *Context) pad(n int) {
	for ; n > 0; n-- {
		c.Put(' ')
	}
}

// outRev emits buf in reverse, padding with spaces up to st.Width unless
// the field is zero-padded.
func (c *Context) outRev(st State, buf []byte) {
	start := c.n
	if !st.Has(FlagLeft) && !st.Has(FlagZeroPad) {
		c.pad(st.Width - len(buf))
	}
	for i := len(buf) - 1; i >= 0; i-- {
		c.Put(buf[i])
	}
	if st.Has(FlagLeft) {
		c.pad(st.Width - (c.n - start))
	}
}
