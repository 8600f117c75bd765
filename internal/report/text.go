package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/template"
)

func writeCSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	body, err := rows(CSV, items)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if h := header(any(items[0])); h != nil {
		if err := cw.Write(h); err != nil {
			return err
		}
	}
	return cw.WriteAll(body)
}

func writeTSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	body, err := rows(TSV, items)
	if err != nil {
		return err
	}
	if h := header(any(items[0])); h != nil {
		body = append([][]string{h}, body...)
	}
	for _, row := range body {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdown[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	body, err := rows(Markdown, items)
	if err != nil {
		return err
	}
	first := any(items[0])
	head := header(first)
	if head == nil {
		return fmt.Errorf("%w: format %q requires Headed, not implemented by %T", ErrMissingInterface, Markdown, items[0])
	}

	numCols := len(head)
	body = escapeRows(body, numCols)
	widths := columnWidths(numCols, head, body)
	for i := range widths {
		// room for the alignment markers
		widths[i] = max(widths[i], 3)
	}
	aligns := alignments(first, numCols)

	if err := writeMarkdownRow(w, head, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range body {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cellAt(cells, i), width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// escapeRows drops cells past n columns and escapes pipes in the rest.
func escapeRows(body [][]string, n int) [][]string {
	out := make([][]string, len(body))
	for i, row := range body {
		row = row[:min(len(row), n)]
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = strings.ReplaceAll(cell, "|", `\|`)
		}
	}
	return out
}

func writeGoTemplate[T any](w io.Writer, text string, items []T) error {
	tmpl, err := template.New("").Parse(text)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, item := range items {
		if err := tmpl.Execute(w, item); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
