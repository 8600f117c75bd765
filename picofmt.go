package picofmt

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Flags holds the flag characters of a directive.
type Flags uint16

const (
	FlagZeroPad   Flags = 1 << iota // '0'
	FlagLeft                        // '-'
	FlagPlus                        // '+'
	FlagSpace                       // ' '
	FlagHash                        // '#'
	FlagPrecision                   // precision was given
)

// String returns the flag characters in canonical order, e.g. "-+#".
func (f Flags) String() string {
	var b strings.Builder
	for _, fc := range flagChars {
		if f&fc.flag != 0 {
			b.WriteByte(fc.char)
		}
	}
	return b.String()
}

var flagChars = []struct {
	char byte
	flag Flags
}{
	{'-', FlagLeft},
	{'+', FlagPlus},
	{' ', FlagSpace},
	{'#', FlagHash},
	{'0', FlagZeroPad},
}

// Size is the argument-size class selected by a length modifier.
type Size int

const (
	SizeChar     Size = iota // "hh"
	SizeShort                // "h"
	SizeDefault              // ""
	SizeLong                 // "l"
	SizeLongLong             // "ll"
)

// String returns the length modifier that selects s.
func (s Size) String() string {
	switch s {
	case SizeChar:
		return "hh"
	case SizeShort:
		return "h"
	case SizeLong:
		return "l"
	case SizeLongLong:
		return "ll"
	default:
		return ""
	}
}

// State is one decoded directive:
//
//	%[flags][width][.precision][length]specifier
//
// A fresh State is built for every directive and handed by value to the
// converters and to extension handlers.
type State struct {
	Flags     Flags
	Width     int
	Precision int
	Size      Size
	Specifier byte
}

// Has reports whether all of f are set.
func (s State) Has(f Flags) bool { return s.Flags&f == f }

// String reassembles the directive text, e.g. "%-08.3lld".
func (s State) String() string {
	var b strings.Builder
	b.WriteByte('%')
	b.WriteString(s.Flags.String())
	if s.Width > 0 {
		b.WriteString(strconv.Itoa(s.Width))
	}
	if s.Has(FlagPrecision) {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(s.Precision))
	}
	b.WriteString(s.Size.String())
	b.WriteByte(s.Specifier)
	return b.String()
}

const builtinSpecifiers = "diuxXobfFeEgGcsp%"

// Specifiers returns the built-in specifier characters. Extensions bound to
// any of them through a [Registry] are never consulted.
func Specifiers() []byte {
	return []byte(builtinSpecifiers)
}

// IsBuiltin reports whether c is a built-in specifier.
func IsBuiltin(c byte) bool {
	return strings.IndexByte(builtinSpecifiers, c) >= 0
}
