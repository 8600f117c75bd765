package cli

import (
	"strconv"
	"strings"

	"github.com/bjaus/picofmt"
	"github.com/bjaus/picofmt/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// directiveRow is one line of `picofmt scan` output.
type directiveRow struct {
	Offset    int    `json:"offset" yaml:"offset"`
	Text      string `json:"text" yaml:"text"`
	Flags     string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Width     string `json:"width,omitempty" yaml:"width,omitempty"`
	Precision string `json:"precision,omitempty" yaml:"precision,omitempty"`
	Length    string `json:"length,omitempty" yaml:"length,omitempty"`
	Specifier string `json:"specifier,omitempty" yaml:"specifier,omitempty"`
	Argument  string `json:"argument" yaml:"argument"`

	format string
}

func (r directiveRow) Header() []string {
	return []string{"OFFSET", "DIRECTIVE", "FLAGS", "WIDTH", "PRECISION", "LENGTH", "SPECIFIER", "ARGUMENT"}
}

func (r directiveRow) Row() []string {
	return []string{strconv.Itoa(r.Offset), r.Text, r.Flags, r.Width, r.Precision, r.Length, r.Specifier, r.Argument}
}

func (r directiveRow) Alignments() []report.Alignment {
	return []report.Alignment{report.AlignRight, report.AlignLeft, report.AlignLeft, report.AlignRight, report.AlignRight}
}

func (r directiveRow) Title() string { return strconv.Quote(r.format) }

func newDirectiveRow(p *picofmt.Printer, format string, d picofmt.Directive) directiveRow {
	row := directiveRow{
		Offset: d.Offset,
		Text:   d.Text,
		Flags:  d.Flags.String(),
		Length: d.Size.String(),
		format: format,
	}
	switch {
	case d.WidthStar:
		row.Width = "*"
	case d.Width > 0:
		row.Width = strconv.Itoa(d.Width)
	}
	switch {
	case d.PrecisionStar:
		row.Precision = "*"
	case d.Flags&picofmt.FlagPrecision != 0:
		row.Precision = strconv.Itoa(d.Precision)
	}
	if d.Specifier == 0 {
		row.Argument = "incomplete"
		return row
	}
	row.Specifier = string(rune(d.Specifier))
	switch kind := picofmt.ArgKind(d.Specifier); {
	case kind != picofmt.KindNone:
		row.Argument = kind.String()
	case !picofmt.IsBuiltin(d.Specifier) && p.Registry().Lookup(d.Specifier) != nil:
		row.Argument = "extension"
	default:
		row.Argument = "literal"
	}
	return row
}

func newScanCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan FORMAT",
		Short: "List the directives of FORMAT and the arguments they consume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			f, err := report.ParseFormat(output)
			if err != nil {
				return err
			}
			p, _, err := setup(cmd, v)
			if err != nil {
				return err
			}
			format := args[0]
			if noEscapes, _ := cmd.Flags().GetBool("no-escapes"); !noEscapes {
				format = unescape(format)
			}
			var rows []directiveRow
			for d := range p.Scan(format) {
				rows = append(rows, newDirectiveRow(p, format, d))
			}
			return report.Write(cmd.OutOrStdout(), f, rows...)
		},
	}
	names := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		names = append(names, f.String())
	}
	cmd.Flags().StringP("output", "o", string(report.Table), "output format ("+strings.Join(names, ", ")+", go-template=TEMPLATE)")
	cmd.Flags().Bool("no-escapes", false, "do not interpret backslash escapes in FORMAT")
	return cmd
}
