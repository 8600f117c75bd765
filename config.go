package picofmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Model is the C data model the engine imitates. It decides how wide "long"
// and pointers are, which in turn resolves the l, z, t and j length
// modifiers and the width of %p.
type Model string

const (
	LP64  Model = "lp64"  // 64-bit long and pointers (Linux, macOS)
	LLP64 Model = "llp64" // 32-bit long, 64-bit pointers (Windows)
	ILP32 Model = "ilp32" // 32-bit long and pointers (microcontrollers)
)

var models = []Model{LP64, LLP64, ILP32}

// String returns the model name.
func (m Model) String() string { return string(m) }

// Models returns all supported data models.
func Models() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

// ParseModel parses a data model name.
func ParseModel(s string) (Model, error) {
	for _, m := range models {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: unknown model %q", ErrInvalidConfig, s)
}

// LongBits returns the width of a C long in bits.
func (m Model) LongBits() int {
	if m == LP64 {
		return 64
	}
	return 32
}

// PointerBits returns the width of a pointer, size_t and ptrdiff_t in bits.
func (m Model) PointerBits() int {
	if m == ILP32 {
		return 32
	}
	return 64
}

// MaxBufferSize is the largest accepted conversion buffer capacity.
const MaxBufferSize = 128

// Config holds the engine's tunables. The zero value is not usable; start
// from [DefaultConfig].
type Config struct {
	// NtoaBufferSize is the capacity of the integer conversion buffer,
	// including zero padding, prefix and sign.
	NtoaBufferSize int `yaml:"ntoa_buffer_size"`

	// FtoaBufferSize is the capacity of the fixed-point conversion buffer.
	FtoaBufferSize int `yaml:"ftoa_buffer_size"`

	// Float enables %f, %F. When off they emit "??".
	Float bool `yaml:"float"`

	// Exponential enables %e, %E, %g, %G. When off they emit "??".
	Exponential bool `yaml:"exponential"`

	// DefaultPrecision is used by float conversions without a precision.
	DefaultPrecision int `yaml:"default_precision"`

	// MaxFloat is the largest magnitude printed with %f; larger values
	// switch to exponential notation.
	MaxFloat float64 `yaml:"max_float"`

	// LongLong enables 64-bit "ll" conversions. When off, "ll" is treated
	// as "l".
	LongLong bool `yaml:"long_long"`

	// PtrDiff enables the "t" length modifier.
	PtrDiff bool `yaml:"ptrdiff"`

	// Model is the target data model.
	Model Model `yaml:"model"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		NtoaBufferSize:   32,
		FtoaBufferSize:   32,
		Float:            true,
		Exponential:      true,
		DefaultPrecision: 6,
		MaxFloat:         1e9,
		LongLong:         true,
		PtrDiff:          true,
		Model:            LP64,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.NtoaBufferSize < 1 || c.NtoaBufferSize > MaxBufferSize:
		return fmt.Errorf("%w: ntoa_buffer_size %d not in [1,%d]", ErrInvalidConfig, c.NtoaBufferSize, MaxBufferSize)
	case c.FtoaBufferSize < 1 || c.FtoaBufferSize > MaxBufferSize:
		return fmt.Errorf("%w: ftoa_buffer_size %d not in [1,%d]", ErrInvalidConfig, c.FtoaBufferSize, MaxBufferSize)
	case c.DefaultPrecision < 1 || c.DefaultPrecision > 16:
		return fmt.Errorf("%w: default_precision %d not in [1,16]", ErrInvalidConfig, c.DefaultPrecision)
	case !(c.MaxFloat >= 1 && c.MaxFloat <= 1e9):
		return fmt.Errorf("%w: max_float %g not in [1,1e9]", ErrInvalidConfig, c.MaxFloat)
	}
	if _, err := ParseModel(string(c.Model)); err != nil {
		return err
	}
	return nil
}

// ParseConfig decodes YAML on top of [DefaultConfig] and validates the
// result. Keys that are absent keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteConfig encodes cfg as YAML.
func WriteConfig(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
