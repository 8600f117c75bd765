package picofmt

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

func TestScratchDropsPastLimit(t *testing.T) {
	t.Parallel()
	s := newScratch(3)
	for _, c := range []byte("abcdef") {
		s.push(c)
	}
	assert.True(t, s.full())
	assert.Equal(t, "abc", string(s.bytes()))
}

func TestScratchLimitIsCapped(t *testing.T) {
	t.Parallel()
	s := newScratch(1000)
	for range 200 {
		s.push('x')
	}
	assert.Equal(t, MaxBufferSize, s.n)
}

func TestDecimalExponent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    float64
		want int
	}{
		{3.0, 0},
		{250, 2},
		{0.05, -2},
		{12345.678, 4},
		{7e100, 100},
		{2e-300, -300},
	}
	for _, tc := range tests {
		e, scale := decimalExponent(tc.v)
		assert.Equal(t, tc.want, e, "exponent of %g", tc.v)
		assert.InEpsilon(t, math.Pow(10, float64(tc.want)), scale, 1e-6, "scale of %g", tc.v)
	}
}

func TestTruncSigned(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(-1), truncSigned(0xFF, 8))
	assert.Equal(t, int64(127), truncSigned(0x7F, 8))
	assert.Equal(t, int64(-32768), truncSigned(0x8000, 16))
	assert.Equal(t, int64(0), truncSigned(1<<32, 32))
	assert.Equal(t, int64(math.MinInt64), truncSigned(1<<63, 64))
}

func TestTruncUnsigned(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(0xFF), truncUnsigned(0x1FF, 8))
	assert.Equal(t, uint64(0xFFFFFFFF), truncUnsigned(math.MaxUint64, 32))
	assert.Equal(t, uint64(math.MaxUint64), truncUnsigned(math.MaxUint64, 64))
}

func TestAtoiSaturates(t *testing.T) {
	t.Parallel()
	n, i := atoi("99999999999x", 0)
	assert.Equal(t, math.MaxInt32, n)
	assert.Equal(t, 11, i)

	n, i = atoi("12.5", 0)
	assert.Equal(t, 12, n)
	assert.Equal(t, 2, i)
}

func TestCString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab", cstring("ab\x00cd"))
	assert.Equal(t, "abcd", cstring("abcd"))
	assert.Empty(t, cstring("\x00"))
}

func TestParseDirective(t *testing.T) {
	t.Parallel()
	p := Default()

	d, next := p.parse("x%-*.3lldX", 1)
	assert.Equal(t, Directive{
		Offset:    1,
		Text:      "%-*.3lld",
		Flags:     FlagLeft | FlagPrecision,
		Precision: 3,
		Size:      SizeLongLong,
		WidthStar: true,
		Specifier: 'd',
	}, d)
	assert.Equal(t, 9, next)

	d, next = p.parse("%08", 0)
	assert.Equal(t, byte(0), d.Specifier)
	assert.Equal(t, FlagZeroPad, d.Flags)
	assert.Equal(t, 8, d.Width)
	assert.Equal(t, "%08", d.Text)
	assert.Equal(t, 3, next)

	d, _ = p.parse("%.*hhu", 0)
	assert.True(t, d.PrecisionStar)
	assert.Equal(t, SizeChar, d.Size)
	assert.Equal(t, byte('u'), d.Specifier)
}

func TestParseLengthDependsOnModel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		model   Model
		z, j, t Size
	}{
		{LP64, SizeLong, SizeLong, SizeLong},
		{LLP64, SizeLongLong, SizeLongLong, SizeLongLong},
		{ILP32, SizeLong, SizeLongLong, SizeLong},
	}
	for _, tc := range tests {
		cfg := DefaultConfig()
		cfg.Model = tc.model
		p := &Printer{config: cfg}
		for _, c := range []struct {
			format string
			want   Size
		}{{"%zu", tc.z}, {"%ju", tc.j}, {"%tu", tc.t}} {
			d, _ := p.parse(c.format, 0)
			assert.Equal(t, c.want, d.Size, "%s under %s", c.format, tc.model)
		}
	}
}

func TestDirectiveStateResolvesStars(t *testing.T) {
	t.Parallel()
	d, _ := Default().parse("%*.*d", 0)

	st := d.state(Pack(-7, -1))
	assert.Equal(t, 7, st.Width)
	assert.True(t, st.Has(FlagLeft))
	assert.False(t, st.Has(FlagPrecision))

	st = d.state(Pack(4, 2))
	assert.Equal(t, 4, st.Width)
	assert.Equal(t, 2, st.Precision)
	assert.True(t, st.Has(FlagPrecision))
	assert.False(t, st.Has(FlagLeft))
}

func TestFlagsString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "-#0", (FlagZeroPad | FlagLeft | FlagHash).String())
	assert.Equal(t, "+ ", (FlagSpace | FlagPlus | FlagPrecision).String())
	assert.Empty(t, Flags(0).String())
}

func TestStateString(t *testing.T) {
	t.Parallel()
	st := State{
		Flags:     FlagZeroPad | FlagPrecision,
		Width:     8,
		Precision: 3,
		Size:      SizeLongLong,
		Specifier: 'd',
	}
	assert.Equal(t, "%08.3lld", st.String())
	assert.Equal(t, "%hhx", State{Size: SizeChar, Specifier: 'x'}.String())
}

func TestContextCountsWithoutSink(t *testing.T) {
	t.Parallel()
	ctx := Context{cfg: new(Config)}
	ctx.PutString("hello")
	ctx.pad(3)
	assert.Equal(t, 8, ctx.Len())
	assert.NoError(t, ctx.Err())
}

func TestContextStopsAfterSinkError(t *testing.T) {
	t.Parallel()
	var got []byte
	calls := 0
	sink := byteWriterFunc(func(c byte) error {
		calls++
		if len(got) == 2 {
			return errInternalWrite
		}
		got = append(got, c)
		return nil
	})
	ctx := Context{sink: sink}
	ctx.PutString("abcdef")
	assert.Equal(t, 6, ctx.Len())
	assert.Equal(t, "ab", string(got))
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, ctx.Err(), errInternalWrite)
}

func TestOutRevPadding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		st   State
		want string
	}{
		{State{Width: 5}, "  cba"},
		{State{Width: 5, Flags: FlagLeft}, "cba  "},
		{State{Width: 5, Flags: FlagZeroPad}, "cba"},
		{State{Width: 2}, "cba"},
	}
	for _, tc := range tests {
		var sink appendSink
		ctx := Context{sink: &sink}
		ctx.outRev(tc.st, []byte("abc"))
		assert.Equal(t, tc.want, string(sink.dst), "%+v", tc.st)
	}
}

func TestBufferKeepsTerminatorSlot(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 4)
	b := NewBuffer(buf)
	for _, c := range []byte("hello") {
		require.NoError(t, b.WriteByte(c))
	}
	b.Terminate()
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, "hel", string(b.Bytes()))
	assert.Equal(t, byte(0), buf[3])

	empty := NewBuffer(nil)
	require.NoError(t, empty.WriteByte('x'))
	empty.Terminate()
	assert.Zero(t, empty.Len())
}

func TestArgReinterpretation(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(math.MaxUint64), Int(-1).Bits())
	assert.Equal(t, uint64(3), Float(3.9).Bits())
	assert.Equal(t, uint64(0), Float(math.NaN()).Bits())
	assert.Equal(t, uint64(0), Str("12").Bits())
	assert.InDelta(t, -2.0, Int(-2).Float64(), 0)
	assert.InDelta(t, 65.0, Char('A').Float64(), 0)
	assert.Empty(t, Int(5).Text())

	args := Pack(int8(-3), true, []byte("b"), nil)
	assert.Equal(t, 4, args.Len())
	assert.Equal(t, -3, args.NextInt())
	assert.Equal(t, 1, args.NextInt())
	assert.Equal(t, "b", args.NextString())
	assert.Equal(t, KindNone, args.Next().Kind())
	assert.Equal(t, 0, args.Len())
	assert.Equal(t, KindNone, args.Next().Kind())

	var nilArgs *Args
	assert.Zero(t, nilArgs.Len())
	assert.Equal(t, uint64(0), nilArgs.NextBits())
}

type byteWriterFunc func(c byte) error

func (f byteWriterFunc) WriteByte(c byte) error { return f(c) }
