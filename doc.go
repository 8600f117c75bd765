// Package picofmt is a printf engine for places where every byte of scratch
// space is accounted for.
//
// It renders a C-style format string and a typed argument list into a
// [Sink], one character at a time, without building the result in an
// intermediate buffer. Conversions run in fixed-capacity scratch buffers;
// widths and precisions that exceed them are truncated silently. Integer
// output matches C printf byte for byte, except that the alternate form of
// a zero with precision 0 prints nothing, even in octal. Floats round half
// to even, and the exponent comes from a one-step estimate, so an exact
// power of ten may print with a mantissa of 10 (1e6 as %g is
// "10.000000e+05").
//
// # Directives
//
//	%[flags][width][.precision][length]specifier
//
//   - flags: '0' '-' '+' ' ' '#', in any order
//   - width: decimal digits, or '*' to read an int argument (negative means
//     left-justify)
//   - precision: '.' then digits (none means 0), or '.*' to read an int
//     argument (negative means unset)
//   - length: hh h l ll j z t
//   - specifier: d i u x X o b f F e E g G c s p %
//
// Unknown specifiers are emitted literally, e.g. "%k" renders "k".
//
// # Arguments
//
// The argument list is an explicit cursor of type-tagged values. The
// variadic entry points build one with [Pack]; the V-prefixed ones take a
// prepared [*Args]:
//
//	picofmt.Sprintf("%5.2f|%-4d|%s", 3.14159, 42, "ok")
//	picofmt.Vappendf(nil, "%u", picofmt.NewArgs(picofmt.Int(-1)))
//
// Integers carry a 64-bit pattern and are truncated to the directive's size
// class, so "%hhd" of 300 renders "44" and "%u" of -1 renders "4294967295".
//
// # Output
//
// Four families of entry points sit on top of [Printer.Render]:
//
//   - [Snprintf] writes into a fixed buffer, always NUL-terminates it when it
//     is non-empty, and returns the untruncated length
//   - [Appendf] and [Sprintf] grow without bound
//   - [Fctprintf] hands each character to a callback
//   - [Fprintf] writes to an [io.Writer]
//
// A nil sink, or an empty buffer, only measures.
//
// # Extensions
//
// A [Registry] binds extra specifier characters to a [Handler]. Built-in
// specifiers are always dispatched first, so binding 'd' does nothing. A
// handler receives the parsed [State] and a [Context] through which it can
// emit characters, read more arguments, or reuse the built-in converters:
//
//	r := picofmt.NewRegistry()
//	r.Register('S', picofmt.WideString)
//	p, _ := picofmt.New(picofmt.WithRegistry(r))
//
// The package-level functions use [DefaultRegistry]. Registries are not
// locked; register handlers before rendering from several goroutines.
//
// # Configuration
//
// [Config] holds what a C build would fix at compile time: buffer
// capacities, float and exponential support, default precision, the %f
// ceiling, long long and ptrdiff_t support, and the target [Model]. Load it
// from YAML with [ParseConfig] or adjust it with options to [New].
//
// # Errors
//
// Rendering never fails. Errors appear only at the edges:
//
//   - [ErrInvalidConfig]: a configuration value is out of range
//   - [ErrInvalidArgument]: [ParseArgs] could not convert an argument
package picofmt
