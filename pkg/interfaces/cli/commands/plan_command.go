package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okale/chainplan/pkg/domain/entities"
	"github.com/okale/chainplan/pkg/infrastructure/config"
	"github.com/okale/chainplan/pkg/interfaces/cli/output"
	"github.com/okale/chainplan/pkg/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan <material> [rate]",
	Short: "Resolve the production chain for a target material",
	Long: "Plan resolves the full production chain needed to sustain the target\n" +
		"material at the given rate (items per second, default 1). It prints the\n" +
		"required rate for every material in the chain and the number of\n" +
		"facilities running each recipe.",
	Args: cobra.RangeArgs(1, 2),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().Bool("depth", false, "include longest-chain analysis")
	planCmd.Flags().Bool("strict", false, "error when multiple recipes produce a material")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := newLogger(cfg)

	material := entities.Material(strings.TrimSpace(args[0]))
	if material == "" {
		return fmt.Errorf("material name must not be empty")
	}

	rate := 1.0
	if len(args) == 2 {
		parsed, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid rate %q: %w", args[1], err)
		}
		rate = parsed
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		cfg.StrictSelection = true
	}

	catalog, policy, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}

	resolver := plan.NewResolver(catalog, policy)

	log.Debug("resolving", "material", material, "rate", rate)
	report, err := resolver.Resolve(material, plan.Rate(rate))
	if err != nil {
		return err
	}

	opts := output.Options{Format: cfg.Format}
	if withDepth, _ := cmd.Flags().GetBool("depth"); withDepth {
		depth := resolver.ChainDepth(material)
		opts.Depth = &depth
	}

	return output.Render(os.Stdout, report, opts)
}
