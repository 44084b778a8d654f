package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cottand/kif/formula/ferr"
)

var CheckCmd = &cobra.Command{
	Use:          "check file.kif",
	Short:        "Check the arity and quantifier syntax of every formula of a KIF file",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func runCheck(cmd *cobra.Command, args []string) error {
	setupLogging()
	knowledge, err := loadKB(args[0])
	if err != nil {
		return err
	}
	formulas, err := readFormulas(args[0])
	if err != nil {
		return err
	}

	var all *ferr.Errors
	for _, f := range formulas {
		f.ValidArgs(knowledge)
		all = all.With(f.Diagnostics().Errors()...)
	}
	out := cmd.OutOrStdout()
	for _, d := range all.Errors() {
		fmt.Fprintln(out, ferr.FormatWithCode(d))
	}
	if all.HasError() {
		return fmt.Errorf("found %d problems in %d formulas", all.Len(), len(formulas))
	}
	logger.Info("checked formulas", "count", len(formulas), "warnings", all.Len())
	return nil
}
