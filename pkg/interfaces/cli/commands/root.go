// Package commands wires the chainplan CLI together: flag and config
// handling, catalog loading, and the plan/recipes/validate subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/okale/chainplan/pkg/domain/entities"
	"github.com/okale/chainplan/pkg/infrastructure/config"
	"github.com/okale/chainplan/pkg/infrastructure/repositories/yamlrepo"
	"github.com/okale/chainplan/pkg/plan"
)

var rootCmd = &cobra.Command{
	Use:   "chainplan",
	Short: "Production chain rate calculator",
	Long: "Chainplan resolves how fast every intermediate material must be produced,\n" +
		"and how many facilities that takes, to sustain a target output rate.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .chainplan.yaml)")
	rootCmd.PersistentFlags().String("recipes", "", "recipes YAML file")
	rootCmd.PersistentFlags().String("facilities", "", "facility multipliers YAML file")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format: text, json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("recipes_file", rootCmd.PersistentFlags().Lookup("recipes"))
	_ = viper.BindPFlag("facilities_file", rootCmd.PersistentFlags().Lookup("facilities"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".chainplan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("CHAINPLAN")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults and flags cover everything.
	_ = viper.ReadInConfig()
}

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadCatalog reads the configured recipe file and builds the catalog and
// policy a subcommand runs against.
func loadCatalog(cfg config.Config, log *slog.Logger) (*plan.Catalog, plan.Policy, error) {
	loader := yamlrepo.NewLoader()

	recipes, err := loader.LoadRecipes(cfg.RecipesFile)
	if err != nil {
		return nil, plan.Policy{}, err
	}
	log.Debug("loaded recipes", "file", cfg.RecipesFile, "count", len(recipes))

	catalog, err := plan.NewCatalog(recipes)
	if err != nil {
		return nil, plan.Policy{}, err
	}

	policy := plan.Policy{
		Disabled:  make(map[entities.RecipeName]bool, len(cfg.DisabledRecipes)),
		Selection: plan.SelectionFirstDeclared,
	}
	for _, name := range cfg.DisabledRecipes {
		policy.Disabled[entities.RecipeName(name)] = true
	}
	if cfg.StrictSelection {
		policy.Selection = plan.SelectionError
	}

	if cfg.FacilitiesFile != "" {
		tables, err := loader.LoadFacilities(cfg.FacilitiesFile)
		if err != nil {
			return nil, plan.Policy{}, err
		}
		speeds, err := cfg.ResolveSpeeds(tables)
		if err != nil {
			return nil, plan.Policy{}, err
		}
		policy.Speeds = speeds
		log.Debug("resolved facility speeds", "file", cfg.FacilitiesFile, "classes", len(speeds))
	}

	return catalog, policy, nil
}
