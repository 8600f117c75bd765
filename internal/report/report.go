// Package report renders rows of cells in the output formats offered by the
// picofmt command: bordered and plain tables, Markdown, CSV, TSV, JSON,
// JSON Lines, YAML and Go templates.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	Plain    Format = "plain"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, Plain, Markdown, CSV, TSV, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// GoTemplate returns a Format that executes a text/template once per item,
// each on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// Formats returns all supported static format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name or a go-template=<tmpl> string.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Rower provides the cells of one row. Required by every format except
// JSON, JSON Lines and YAML, which encode the item itself.
type Rower interface {
	Row() []string
}

// Headed provides column headers. Required by Markdown.
type Headed interface {
	Header() []string
}

// Titled renders a title above a bordered table.
type Titled interface {
	Title() string
}

// Aligned sets per-column alignment. Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Write renders items to w in format f. Optional interfaces are read from
// the first item.
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case JSON:
		return writeJSON(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case YAML:
		return writeYAML(w, items)
	case Table:
		return writeTable(w, items, true)
	case Plain:
		return writeTable(w, items, false)
	case Markdown:
		return writeMarkdown(w, items)
	case CSV:
		return writeCSV(w, items)
	case TSV:
		return writeTSV(w, items)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, items)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders items and returns the bytes.
func Marshal[T any](f Format, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rows collects the cells of items, failing if they are not Rowers.
func rows[T any](f Format, items []T) ([][]string, error) {
	out := make([][]string, len(items))
	for i, item := range items {
		r, ok := any(item).(Rower)
		if !ok {
			return nil, fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, f, item)
		}
		out[i] = r.Row()
	}
	return out, nil
}

func header(first any) []string {
	if h, ok := first.(Headed); ok {
		return h.Header()
	}
	return nil
}

func alignments(first any, n int) []Alignment {
	var aligns []Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}
	if len(aligns) >= n {
		return aligns[:n]
	}
	extended := make([]Alignment, n)
	copy(extended, aligns)
	return extended
}
