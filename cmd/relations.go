package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var RelationsCmd = &cobra.Command{
	Use:          "relations file.kif",
	Short:        "List the relations used by every formula of a KIF file along with their argument types",
	RunE:         runRelations,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func runRelations(cmd *cobra.Command, args []string) error {
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
		types := f.GatherRelationsWithArgTypes(knowledge)
		for _, r := range f.GatherRelationConstants() {
			var known []string
			for pos, typ := range types[r] {
				if typ != "" {
					known = append(known, fmt.Sprintf("%d:%s", pos, typ))
				}
			}
			fmt.Fprintf(out, "%s\t%s\n", r, strings.Join(known, " "))
		}
	}
	return nil
}
