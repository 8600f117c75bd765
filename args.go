package picofmt

import (
	"fmt"
	"math"
	"unsafe"
)

// Kind tags the value carried by an [Arg].
type Kind uint8

const (
	KindNone Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindChar
	KindPointer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	case KindPointer:
		return "pointer"
	default:
		return "none"
	}
}

// Arg is one type-tagged argument. Integers, characters and pointers keep
// their 64-bit two's-complement pattern; reading one as a different kind
// reinterprets it the way C varargs would.
type Arg struct {
	kind Kind
	bits uint64
	f    float64
	s    string
}

// Int returns a signed integer argument.
func Int(v int64) Arg { return Arg{kind: KindInt, bits: uint64(v)} }

// Uint returns an unsigned integer argument.
func Uint(v uint64) Arg { return Arg{kind: KindUint, bits: v} }

// Float returns a floating-point argument.
func Float(v float64) Arg { return Arg{kind: KindFloat, f: v} }

// Str returns a string argument for %s.
func Str(s string) Arg { return Arg{kind: KindString, s: s} }

// Char returns a character argument for %c.
func Char(c byte) Arg { return Arg{kind: KindChar, bits: uint64(c)} }

// Ptr returns a pointer argument for %p.
func Ptr(p uintptr) Arg { return Arg{kind: KindPointer, bits: uint64(p)} }

// Of converts a Go value into an Arg. Supported types are the built-in
// integer and float types, string, []byte, bool, uintptr, unsafe.Pointer
// and [fmt.Stringer]. Anything else becomes a string via %v.
func Of(v any) Arg {
	switch x := v.(type) {
	case Arg:
		return x
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case uintptr:
		return Ptr(x)
	case unsafe.Pointer:
		return Ptr(uintptr(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case bool:
		if x {
			return Int(1)
		}
		return Int(0)
	case string:
		return Str(x)
	case []byte:
		return Str(string(x))
	case fmt.Stringer:
		return Str(x.String())
	case nil:
		return Arg{}
	default:
		return Str(fmt.Sprintf("%v", x))
	}
}

// Kind returns the tag of a.
func (a Arg) Kind() Kind { return a.kind }

// Bits returns the integer bit pattern of a. Floats are converted toward
// zero; strings read as 0.
func (a Arg) Bits() uint64 {
	switch a.kind {
	case KindFloat:
		if math.IsNaN(a.f) {
			return 0
		}
		return uint64(int64(a.f))
	case KindString, KindNone:
		return 0
	default:
		return a.bits
	}
}

// Float64 returns a as a float. Signed and unsigned integers convert by
// value.
func (a Arg) Float64() float64 {
	switch a.kind {
	case KindFloat:
		return a.f
	case KindInt:
		return float64(int64(a.bits))
	case KindUint, KindChar, KindPointer:
		return float64(a.bits)
	default:
		return 0
	}
}

// Text returns a's string payload, or "" for non-string kinds.
func (a Arg) Text() string {
	if a.kind == KindString {
		return a.s
	}
	return ""
}

// Args is the argument cursor: an ordered list consumed head first by the
// dispatcher and by extension handlers alike. Reading past the end yields
// zero values.
type Args struct {
	list []Arg
	pos  int
}

// NewArgs returns a cursor over list.
func NewArgs(list ...Arg) *Args {
	return &Args{list: list}
}

// Pack converts each value with [Of] and returns a cursor over them.
func Pack(values ...any) *Args {
	list := make([]Arg, len(values))
	for i, v := range values {
		list[i] = Of(v)
	}
	return &Args{list: list}
}

// Len returns the number of unconsumed arguments.
func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list) - a.pos
}

// Next consumes and returns the head argument.
func (a *Args) Next() Arg {
	if a == nil || a.pos >= len(a.list) {
		return Arg{}
	}
	arg := a.list[a.pos]
	a.pos++
	return arg
}

// NextInt consumes the head argument as a C int.
func (a *Args) NextInt() int {
	return int(int32(a.Next().Bits()))
}

// NextBits consumes the head argument as a raw 64-bit pattern.
func (a *Args) NextBits() uint64 { return a.Next().Bits() }

// NextFloat consumes the head argument as a double.
func (a *Args) NextFloat() float64 { return a.Next().Float64() }

// NextString consumes the head argument as a string.
func (a *Args) NextString() string { return a.Next().Text() }
