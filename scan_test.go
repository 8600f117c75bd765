package picofmt_test

import (
	"testing"

	"github.com/bjaus/picofmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	t.Parallel()
	var texts []string
	var offsets []int
	for d := range picofmt.Scan("a%5d %% %-*s%q%08") {
		texts = append(texts, d.Text)
		offsets = append(offsets, d.Offset)
	}
	assert.Equal(t, []string{"%5d", "%%", "%-*s", "%q", "%08"}, texts)
	assert.Equal(t, []int{1, 5, 8, 12, 14}, offsets)
}

func TestScanStopsEarly(t *testing.T) {
	t.Parallel()
	n := 0
	for range picofmt.Scan("%d%d%d\x00%d") {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	n = 0
	for range picofmt.Scan("%d%d%d\x00%d") {
		n++
	}
	assert.Equal(t, 3, n)
}

func TestArgKind(t *testing.T) {
	t.Parallel()
	tests := map[byte]picofmt.Kind{
		'd': picofmt.KindInt,
		'i': picofmt.KindInt,
		'u': picofmt.KindUint,
		'X': picofmt.KindUint,
		'b': picofmt.KindUint,
		'G': picofmt.KindFloat,
		'c': picofmt.KindChar,
		's': picofmt.KindString,
		'p': picofmt.KindPointer,
		'%': picofmt.KindNone,
		'k': picofmt.KindNone,
	}
	for c, want := range tests {
		assert.Equal(t, want, picofmt.ArgKind(c), string(c))
	}
}

func TestParseArgs(t *testing.T) {
	t.Parallel()
	p := newPrinter(t)
	format := "%d %u %x %.1f %c %s %p %o"
	args, err := p.ParseArgs(format, []string{"-5", "0x10", "-1", "2.25", "hello", "str", "0x1234", "010"})
	require.NoError(t, err)
	assert.Equal(t, 8, args.Len())

	var sink bytesSink
	p.Render(&sink, format, args)
	assert.Equal(t, "-5 16 ffffffff 2.2 h str 0000000000001234 10", string(sink))
}

func TestParseArgsStars(t *testing.T) {
	t.Parallel()
	p := newPrinter(t)
	format := "[%*.*f]"
	args, err := p.ParseArgs(format, []string{"-8", "2", "3.14159"})
	require.NoError(t, err)
	assert.Equal(t, "[3.14    ]", string(p.Vappendf(nil, format, args)))
}

func TestParseArgsMissingAndSurplus(t *testing.T) {
	t.Parallel()
	p := newPrinter(t)

	args, err := p.ParseArgs("%d %d", []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, 1, args.Len())
	assert.Equal(t, "1 0", string(p.Vappendf(nil, "%d %d", args)))

	args, err = p.ParseArgs("%d%%", []string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, 1, args.Len())
}

func TestParseArgsExtension(t *testing.T) {
	t.Parallel()
	r := picofmt.NewRegistry()
	r.Register('S', picofmt.WideString)
	p := newPrinter(t, picofmt.WithRegistry(r))

	args, err := p.ParseArgs("%S|%d|%k", []string{"12", "3", "ignored"})
	require.NoError(t, err)
	assert.Equal(t, 2, args.Len())
	assert.Equal(t, picofmt.KindString, args.Next().Kind())
	assert.Equal(t, picofmt.KindInt, args.Next().Kind())
}

func TestParseArgsIgnoresShadowedBuiltins(t *testing.T) {
	t.Parallel()
	r := picofmt.NewRegistry()
	r.Register('%', picofmt.WideString)
	p := newPrinter(t, picofmt.WithRegistry(r))

	args, err := p.ParseArgs("%d%%%d", []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, 2, args.Len())
	assert.Equal(t, "1%2", string(p.Vappendf(nil, "%d%%%d", args)))
}

func TestParseArgsErrors(t *testing.T) {
	t.Parallel()
	p := newPrinter(t)
	tests := []struct {
		format string
		raw    []string
		text   string
	}{
		{"%d", []string{"abc"}, "%d"},
		{"%x", []string{"1.5"}, "%x"},
		{"%f", []string{"pi"}, "%f"},
		{"%p", []string{"-1"}, "%p"},
		{"%*d", []string{"wide", "1"}, "%*d width"},
		{"%.*d", []string{"x", "1"}, "%.*d precision"},
	}
	for _, tc := range tests {
		_, err := p.ParseArgs(tc.format, tc.raw)
		require.ErrorIs(t, err, picofmt.ErrInvalidArgument, tc.format)
		assert.Contains(t, err.Error(), tc.text)
	}
}

type bytesSink []byte

func (b *bytesSink) WriteByte(c byte) error {
	*b = append(*b, c)
	return nil
}
