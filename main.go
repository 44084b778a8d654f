package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cottand/kif/cmd"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "kif [subcommand]",
	Short:        "kif inspects, checks and rewrites SUO-KIF formulas",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	cmd.AddGlobalFlags(rootCmd)
	rootCmd.AddCommand(cmd.FmtCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.ExpandCmd)
	rootCmd.AddCommand(cmd.VarsCmd)
	rootCmd.AddCommand(cmd.RelationsCmd)
}
