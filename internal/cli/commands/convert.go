package commands

import (
	"github.com/leapstack-labs/roman/internal/convert"
	"github.com/leapstack-labs/roman/internal/cli/output"
	"github.com/spf13/cobra"
)

// ConvertOptions holds options for the convert command.
type ConvertOptions struct {
	Strict   bool
	FoldCase bool
}

// AddConvertFlags registers the conversion flags on cmd.
func AddConvertFlags(cmd *cobra.Command, opts *ConvertOptions) {
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Reject numerals that are not in canonical form")
	cmd.Flags().BoolVar(&opts.FoldCase, "fold-case", false, "Accept lower-case numerals")
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert between integers and Roman numerals",
		Long: `Convert an integer in [1, 3999] to its Roman numeral, or a Roman numeral
to its integer value.

Input made of an optional sign and digits is treated as an integer; anything
else is decoded as a numeral. Decoding is lenient by default: every character
must be one of I, V, X, L, C, D, M but ordering is not checked. Use --strict to
accept only canonical numerals.`,
		Example: `  # Integer to numeral
  roman convert 1224

  # Numeral to integer
  roman convert MMMCMXCIX

  # Reject non-canonical numerals such as IIII
  roman convert --strict IIII`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunConvert(cmd, args[0], opts)
		},
	}

	AddConvertFlags(cmd, opts)
	return cmd
}

// RunConvert converts input and prints the result. Flags that were set on
// cmd override the configured defaults.
func RunConvert(cmd *cobra.Command, input string, opts *ConvertOptions) error {
	cc := NewCommandContextWithoutStore(cmd)

	strict := cc.Cfg.Convert.Strict
	if cmd.Flags().Changed("strict") {
		strict = opts.Strict
	}
	foldCase := cc.Cfg.Convert.FoldCase
	if cmd.Flags().Changed("fold-case") {
		foldCase = opts.FoldCase
	}

	c := convert.New(convert.WithStrict(strict), convert.WithFoldCase(foldCase))
	res, err := c.Convert(input)
	if err != nil {
		cc.Logger.Debug("conversion failed", "input", input, "error", err)
		return err
	}

	if cc.Renderer.EffectiveMode() == output.ModeJSON {
		return cc.Renderer.JSON(res)
	}
	cc.Renderer.Println(res.Output)
	return nil
}
