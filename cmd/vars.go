package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var VarsCmd = &cobra.Command{
	Use:          "vars file.kif",
	Short:        "List the variables of every formula of a KIF file and quantify the free ones",
	RunE:         runVars,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var varsQuery bool

func init() {
	VarsCmd.Flags().BoolVar(&varsQuery, "query", false, "quantify free variables existentially instead of universally")
}

func runVars(cmd *cobra.Command, args []string) error {
	setupLogging()
	formulas, err := readFormulas(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, f := range formulas {
		quantified, unquantified := f.CollectVariables()
		fmt.Fprintf(out, "%s:%d\n", f.SourceFile(), f.Source().StartLine)
		fmt.Fprintf(out, "  quantified:   %s\n", strings.Join(quantified, " "))
		fmt.Fprintf(out, "  unquantified: %s\n", strings.Join(unquantified, " "))
		fmt.Fprintf(out, "  explicit:     %s\n", f.MakeQuantifiersExplicit(varsQuery).Canonical())
	}
	return nil
}
