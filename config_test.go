package picofmt_test

import (
	"bytes"
	"testing"

	"github.com/bjaus/picofmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()
	cfg := picofmt.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, picofmt.LP64, cfg.Model)
	assert.Equal(t, 6, cfg.DefaultPrecision)
	assert.InDelta(t, 1e9, cfg.MaxFloat, 0)
}

func TestParseConfigPartial(t *testing.T) {
	t.Parallel()
	cfg, err := picofmt.ParseConfig([]byte("model: ilp32\nfloat: false\nntoa_buffer_size: 64\n"))
	require.NoError(t, err)

	want := picofmt.DefaultConfig()
	want.Model = picofmt.ILP32
	want.Float = false
	want.NtoaBufferSize = 64
	assert.Equal(t, want, cfg)
}

func TestParseConfigEmpty(t *testing.T) {
	t.Parallel()
	cfg, err := picofmt.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, picofmt.DefaultConfig(), cfg)
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown key":       "colour: red\n",
		"bad yaml":          "model: [\n",
		"unknown model":     "model: lp128\n",
		"buffer too large":  "ftoa_buffer_size: 129\n",
		"buffer zero":       "ntoa_buffer_size: 0\n",
		"precision too low": "default_precision: 0\n",
		"ceiling too high":  "max_float: 1e10\n",
		"wrong type":        "float: maybe\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := picofmt.ParseConfig([]byte(data))
			assert.ErrorIs(t, err, picofmt.ErrInvalidConfig)
		})
	}
}

func TestWriteConfig(t *testing.T) {
	t.Parallel()
	cfg := picofmt.DefaultConfig()
	cfg.Model = picofmt.LLP64
	cfg.PtrDiff = false

	var buf bytes.Buffer
	require.NoError(t, picofmt.WriteConfig(&buf, cfg))
	assert.Contains(t, buf.String(), "model: llp64\n")
	assert.Contains(t, buf.String(), "ptrdiff: false\n")

	back, err := picofmt.ParseConfig(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestParseModel(t *testing.T) {
	t.Parallel()
	for _, m := range picofmt.Models() {
		got, err := picofmt.ParseModel(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := picofmt.ParseModel("LP64")
	assert.ErrorIs(t, err, picofmt.ErrInvalidConfig)
}

func TestModelBits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		model         picofmt.Model
		long, pointer int
	}{
		{picofmt.LP64, 64, 64},
		{picofmt.LLP64, 32, 64},
		{picofmt.ILP32, 32, 32},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.long, tc.model.LongBits(), tc.model.String())
		assert.Equal(t, tc.pointer, tc.model.PointerBits(), tc.model.String())
	}
}
