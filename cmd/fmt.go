package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cottand/kif/formula"
)

var FmtCmd = &cobra.Command{
	Use:          "fmt file.kif",
	Short:        "Pretty-print every formula of a KIF file",
	RunE:         runFmt,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	fmtColor     bool
	fmtHyperlink string
)

func init() {
	FmtCmd.Flags().BoolVar(&fmtColor, "color", false, "colour output even when stdout is not a terminal")
	FmtCmd.Flags().StringVar(&fmtHyperlink, "hyperlink", "", "print HTML, linking every term to this URL prefix")
}

func runFmt(cmd *cobra.Command, args []string) error {
	setupLogging()
	formulas, err := readFormulas(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printer := formula.NewPrinter(fmtColor || isTerminal(out))
	for _, f := range formulas {
		var text string
		if fmtHyperlink != "" {
			text = f.HTMLFormat(fmtHyperlink)
		} else {
			text = printer.Print(f)
		}
		if _, err := fmt.Fprintf(out, "%s\n\n", text); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}
	return nil
}
