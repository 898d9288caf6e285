package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okale/chainplan/pkg/domain/entities"
	"github.com/okale/chainplan/pkg/infrastructure/config"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes [material]",
	Short: "List the loaded recipe catalog",
	Long: "Recipes lists every recipe in the catalog in declaration order. With a\n" +
		"material argument it lists only the recipes producing that material,\n" +
		"in the order the tie-break rule would consider them.",
	Args: cobra.MaximumNArgs(1),
	RunE: runRecipes,
}

func init() {
	rootCmd.AddCommand(recipesCmd)
}

func runRecipes(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := newLogger(cfg)

	catalog, policy, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}

	recipes := catalog.Recipes()
	if len(args) == 1 {
		material := entities.Material(strings.TrimSpace(args[0]))
		recipes = catalog.Lookup(material)
		if len(recipes) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No enabled recipe produces %s (raw material)\n", material)
			return nil
		}
	}

	out := cmd.OutOrStdout()
	for _, recipe := range recipes {
		status := ""
		if !recipe.Enabled || policy.IsDisabled(recipe.Name) {
			status = "  [disabled]"
		}
		fmt.Fprintf(out, "%s%s\n", recipe.Name, status)
		fmt.Fprintf(out, "  facility: %s (%gs)\n", recipe.Facility, recipe.Duration)
		fmt.Fprintf(out, "  inputs:   %s\n", formatStacks(recipe.Inputs))
		fmt.Fprintf(out, "  outputs:  %s\n", formatStacks(recipe.Outputs))
	}
	return nil
}

func formatStacks(stacks []entities.Stack) string {
	if len(stacks) == 0 {
		return "(none)"
	}
	parts := make([]string, len(stacks))
	for i, s := range stacks {
		parts[i] = fmt.Sprintf("%g %s", s.Amount, s.Material)
	}
	return strings.Join(parts, ", ")
}
