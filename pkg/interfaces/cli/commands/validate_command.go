package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okale/chainplan/pkg/domain/services"
	"github.com/okale/chainplan/pkg/infrastructure/config"
	"github.com/okale/chainplan/pkg/infrastructure/repositories/yamlrepo"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the recipe catalog for structural problems",
	Long: "Validate checks the recipe file for duplicate recipe names and\n" +
		"dependency cycles, and lists the raw materials the catalog bottoms\n" +
		"out on. Cycles and duplicates exit non-zero.",
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := newLogger(cfg)

	recipes, err := yamlrepo.NewLoader().LoadRecipes(cfg.RecipesFile)
	if err != nil {
		return err
	}
	log.Debug("loaded recipes", "file", cfg.RecipesFile, "count", len(recipes))

	result := services.NewRecipeValidator().Validate(recipes)
	out := cmd.OutOrStdout()

	if len(result.DuplicateNames) > 0 {
		fmt.Fprintln(out, "Duplicate recipe names:")
		for _, name := range result.DuplicateNames {
			fmt.Fprintf(out, "  - %s\n", name)
		}
	}

	if result.HasCycles {
		fmt.Fprintln(out, "Dependency cycles:")
		for _, cycle := range result.CyclePaths {
			parts := make([]string, len(cycle))
			for i, m := range cycle {
				parts[i] = string(m)
			}
			fmt.Fprintf(out, "  - %s\n", strings.Join(parts, " -> "))
		}
	}

	if len(result.RawMaterials) > 0 {
		fmt.Fprintln(out, "Raw materials:")
		for _, m := range result.RawMaterials {
			fmt.Fprintf(out, "  - %s\n", m)
		}
	}

	if result.HasCycles || len(result.DuplicateNames) > 0 {
		return fmt.Errorf("catalog validation failed: %d cycle(s), %d duplicate name(s)",
			len(result.CyclePaths), len(result.DuplicateNames))
	}

	fmt.Fprintf(out, "OK: %d recipes, no cycles, no duplicate names\n", len(recipes))
	return nil
}
