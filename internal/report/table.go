package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var rounded = borderChars{
	topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
	horizontal: "─", vertical: "│",
	topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
	cross: "┼",
}

// writeTable renders a rounded-border table, or space-separated columns
// under a dashed rule when bordered is false.
func writeTable[T any](w io.Writer, items []T, bordered bool) error {
	if len(items) == 0 {
		return nil
	}
	f := Plain
	if bordered {
		f = Table
	}
	body, err := rows(f, items)
	if err != nil {
		return err
	}
	first := any(items[0])
	head := header(first)

	numCols := len(head)
	for _, row := range body {
		numCols = max(numCols, len(row))
	}
	widths := columnWidths(numCols, head, body)
	aligns := alignments(first, numCols)

	if !bordered {
		if len(head) > 0 {
			if err := writePlainRow(w, head, widths, aligns); err != nil {
				return err
			}
			sep := make([]string, numCols)
			for i, width := range widths {
				sep[i] = strings.Repeat("-", width)
			}
			if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
				return err
			}
		}
		for _, row := range body {
			if err := writePlainRow(w, row, widths, aligns); err != nil {
				return err
			}
		}
		return nil
	}

	bc := rounded
	var title string
	if t, ok := first.(Titled); ok {
		title = t.Title()
	}
	if title != "" {
		// widen the last column until the title fits
		if extra := runewidth.StringWidth(title) - (innerWidth(widths) - 2); extra > 0 && numCols > 0 {
			widths[numCols-1] += extra
		}
		if err := drawLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		padded := alignCell(title, innerWidth(widths)-2, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		if err := drawLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else if err := drawLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}

	if len(head) > 0 {
		if err := drawRow(w, head, widths, aligns, bc.vertical); err != nil {
			return err
		}
		if err := drawLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, row := range body {
		if err := drawRow(w, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}
	return drawLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func columnWidths(numCols int, head []string, body [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range head {
		widths[i] = max(widths[i], runewidth.StringWidth(h))
	}
	for _, row := range body {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

// innerWidth is the width between the outer borders: each cell plus one
// space either side, and one separator between cells.
func innerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(alignCell(cellAt(cells, i), width, aligns[i]))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = alignCell(cellAt(cells, i), width, aligns[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
