package picofmt

import (
	"fmt"
	"iter"
	"strconv"
)

// Scan yields every directive of format in order, including "%%" and
// directives with unknown specifiers. Parsing stops at the first NUL.
func (p *Printer) Scan(format string) iter.Seq[Directive] {
	return func(yield func(Directive) bool) {
		format = cstring(format)
		for i := 0; i < len(format); {
			if format[i] != '%' {
				i++
				continue
			}
			d, next := p.parse(format, i)
			i = next
			if !yield(d) {
				return
			}
		}
	}
}

// Scan yields the directives of format as parsed by the [Default] printer.
func Scan(format string) iter.Seq[Directive] {
	return Default().Scan(format)
}

// ArgKind reports which kind of argument a directive consumes for its
// specifier, or KindNone for "%%", unknown specifiers and extensions.
func ArgKind(specifier byte) Kind {
	switch specifier {
	case 'd', 'i':
		return KindInt
	case 'u', 'x', 'X', 'o', 'b':
		return KindUint
	case 'f', 'F', 'e', 'E', 'g', 'G':
		return KindFloat
	case 'c':
		return KindChar
	case 's':
		return KindString
	case 'p':
		return KindPointer
	default:
		return KindNone
	}
}

// ParseArgs converts textual arguments into the typed cursor that format
// expects, the way printf(1) does. Integers accept 0x, 0o, 0b and leading-0
// octal prefixes; a %c argument contributes its first byte. Specifiers
// bound in the printer's registry take one string. Missing arguments read
// as zero values; surplus ones are ignored.
func (p *Printer) ParseArgs(format string, raw []string) (*Args, error) {
	var list []Arg
	next := func() (string, bool) {
		if len(raw) == 0 {
			return "", false
		}
		s := raw[0]
		raw = raw[1:]
		return s, true
	}
	for d := range p.Scan(format) {
		if d.WidthStar {
			s, ok := next()
			if !ok {
				break
			}
			a, err := parseArg(KindInt, s)
			if err != nil {
				return nil, fmt.Errorf("%s width: %w", d.Text, err)
			}
			list = append(list, a)
		}
		if d.PrecisionStar {
			s, ok := next()
			if !ok {
				break
			}
			a, err := parseArg(KindInt, s)
			if err != nil {
				return nil, fmt.Errorf("%s precision: %w", d.Text, err)
			}
			list = append(list, a)
		}
		kind := ArgKind(d.Specifier)
		if kind == KindNone && d.Specifier != 0 && !IsBuiltin(d.Specifier) && p.registry.Lookup(d.Specifier) != nil {
			kind = KindString
		}
		if kind == KindNone {
			continue
		}
		s, ok := next()
		if !ok {
			break
		}
		a, err := parseArg(kind, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Text, err)
		}
		list = append(list, a)
	}
	return NewArgs(list...), nil
}

// ParseArgs converts textual arguments with the [Default] printer.
func ParseArgs(format string, raw []string) (*Args, error) {
	return Default().ParseArgs(format, raw)
}

func parseArg(kind Kind, s string) (Arg, error) {
	switch kind {
	case KindInt:
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return Arg{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, s)
		}
		return Int(v), nil
	case KindUint:
		if v, err := strconv.ParseUint(s, 0, 64); err == nil {
			return Uint(v), nil
		}
		// negative values wrap like a C cast
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return Arg{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, s)
		}
		return Int(v), nil
	case KindPointer:
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return Arg{}, fmt.Errorf("%w: %q is not a pointer", ErrInvalidArgument, s)
		}
		return Ptr(uintptr(v)), nil
	case KindFloat:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Arg{}, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, s)
		}
		return Float(v), nil
	case KindChar:
		if s == "" {
			return Char(0), nil
		}
		return Char(s[0]), nil
	default:
		return Str(s), nil
	}
}
