package cmd

import (
	"fmt"

	"inventory-reconciler/feature/inventory"
	"inventory-reconciler/feature/inventory/matcher"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var compareWith string

// spacesCmd groups the space equivalence table helpers.
var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "Inspect the space equivalence table",
}

// spacesCheckCmd tells, for each token, whether a session would take it for a space.
var spacesCheckCmd = &cobra.Command{
	Use:   "check FILE TOKEN...",
	Short: "Check which tokens are recognized as spaces",
	Long: `Loads the space equivalence FILE and reports, for each TOKEN, whether a
counting session would take it as a space change or as an item code.

With --against, also reports whether each token is equivalent to the given
expected space (the rule that decides if a found item gets annotated).

Examples:
  inventory-reconciler spaces check espacios.tsv A1-Lab "Laboratorio A1" 12345
  inventory-reconciler spaces check espacios.tsv --against A1-Lab "Lab A1 Anexo"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSpacesCheck,
}

func init() {
	spacesCheckCmd.Flags().StringVar(&compareWith, "against", "", "Expected space to test equivalence with")
	spacesCmd.AddCommand(spacesCheckCmd)
	RootCmd.AddCommand(spacesCmd)
}

func runSpacesCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	table, err := inventory.LoadSpaces(afero.NewOsFs(), args[0], cfg.Inventory.Layout.Separator, zap.NewNop())
	if err != nil {
		return err
	}
	m := matcher.New(nil, table)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d spaces loaded from %s\n", table.Len(), args[0])
	for _, token := range args[1:] {
		kind := "item"
		if m.IsSpace(token) {
			kind = "space"
		}
		if compareWith == "" {
			fmt.Fprintf(out, "%s\t%s\n", token, kind)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\tequivalent to %s: %t\n", token, kind, compareWith, m.Equivalent(token, compareWith))
	}
	return nil
}
