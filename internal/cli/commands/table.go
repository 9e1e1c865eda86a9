package commands

import (
	"github.com/leapstack-labs/roman/internal/convert"
	"github.com/spf13/cobra"
)

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	var start, end int

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print a conversion table for a range of integers",
		Long: `Print integers and their Roman numerals for a contiguous range.

Output adapts to environment:
  - Terminal: boxed table
  - Piped/Scripted: Markdown table

Use --output to override: auto, text, markdown, json`,
		Example: `  # First twenty numerals
  roman table

  # A custom range as JSON
  roman table --start 1990 --end 2010 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContextWithoutStore(cmd)

			rows, err := convert.New().Table(start, end)
			if err != nil {
				return err
			}

			cells := make([][]any, len(rows))
			for i, row := range rows {
				cells[i] = []any{row.Number, row.Numeral}
			}
			return cc.Renderer.Table([]string{"Number", "Numeral"}, cells, rows)
		},
	}

	cmd.Flags().IntVar(&start, "start", 1, "First integer of the range")
	cmd.Flags().IntVar(&end, "end", 20, "Last integer of the range")

	return cmd
}
