package picofmt

import "github.com/mattn/go-runewidth"

// WideString is a [Handler] that renders a string argument like %s but
// measures width and precision in terminal columns instead of bytes, so
// East Asian wide characters and emoji line up. A precision never splits a
// character: one that would straddle the limit is dropped.
//
//	r.Register('S', picofmt.WideString)
//	p.Sprintf("[%-6S]", "你好") // "[你好  ]"
func WideString(ctx *Context, st State) {
	s := cstring(ctx.Args().NextString())
	if st.Has(FlagPrecision) && runewidth.StringWidth(s) > st.Precision {
		s = runewidth.Truncate(s, st.Precision, "")
	}
	pad := st.Width - runewidth.StringWidth(s)
	if !st.Has(FlagLeft) {
		ctx.pad(pad)
	}
	ctx.PutString(s)
	if st.Has(FlagLeft) {
		ctx.pad(pad)
	}
}
