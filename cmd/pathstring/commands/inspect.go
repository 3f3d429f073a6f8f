package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/macropower/pathstring/pkg/pathstring"
)

var (
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// NewInspectCmd returns the inspect command.
func NewInspectCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <path>",
		Short:   "Show how a path is parsed",
		Example: "  pathstring inspect 'C:\\src\\main.go'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			rows := inspectRows(args.Parse(pArgs[0]))

			w := cmd.OutOrStdout()
			if !isTerminal(w) {
				return writePlain(w, rows)
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				Headers("PROPERTY", "VALUE").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == table.HeaderRow:
						return headerStyle
					case col == 0:
						return keyStyle.Padding(0, 1)
					}

					return cellStyle
				})

			_, err := fmt.Fprintln(w, t.Render())
			if err != nil {
				return fmt.Errorf("write table: %w", err)
			}

			return nil
		},
	}
}

func inspectRows(p pathstring.Path) [][]string {
	root, hasRoot := p.Root()
	parent, hasParent := p.Parent()

	optional := func(p pathstring.Path, ok bool) string {
		if !ok {
			return "-"
		}

		return strconv.Quote(p.RawPath())
	}

	segments := make([]string, 0, p.NameCount())
	for _, s := range p.Segments() {
		segments = append(segments, strconv.Quote(s))
	}

	return [][]string{
		{"raw", strconv.Quote(p.RawPath())},
		{"portable", strconv.Quote(p.PortablePath())},
		{"uri", p.String()},
		{"scheme", string(p.Scheme())},
		{"flavor", p.Flavor().String()},
		{"absolute", strconv.FormatBool(p.IsAbsolute())},
		{"root", optional(root, hasRoot)},
		{"parent", optional(parent, hasParent)},
		{"file name", strconv.Quote(p.FileName().RawPath())},
		{"names", strconv.Itoa(p.NameCount())},
		{"segments", "[" + strings.Join(segments, ", ") + "]"},
		{"normalized", strconv.Quote(p.Normalize().RawPath())},
		{"hash", strconv.FormatUint(p.Hash(), 16)},
	}
}

func writePlain(w io.Writer, rows [][]string) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-11s %s\n", row[0]+":", row[1]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
