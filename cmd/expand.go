package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ExpandCmd = &cobra.Command{
	Use:          "expand file.kif",
	Short:        "Expand the row variables of every formula of a KIF file",
	RunE:         runExpand,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func runExpand(cmd *cobra.Command, args []string) error {
	setupLogging()
	knowledge, err := loadKB(args[0])
	if err != nil {
		return err
	}
	formulas, err := readFormulas(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, f := range formulas {
		for _, expanded := range f.ExpandRowVars(knowledge) {
			fmt.Fprintln(out, expanded.Canonical())
		}
	}
	return nil
}
