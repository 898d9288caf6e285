package main

import (
	"fmt"
	"os"

	"github.com/okale/chainplan/pkg/domain/entities"
	"github.com/okale/chainplan/pkg/plan"
)

func main() {
	catalog, err := buildGearFactoryCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog error: %v\n", err)
		os.Exit(1)
	}

	// Run the assemblers at Mk.1 speed; smelters at full speed.
	policy := plan.Policy{
		Speeds: map[string]float64{"Assembler": 0.75},
	}
	resolver := plan.NewResolver(catalog, policy)

	target := entities.Material("Iron Gear")
	rate := plan.Rate(6)

	fmt.Printf("Planning %s @ %s/s\n\n", target, rate.Decimal())

	report, err := resolver.Resolve(target, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolution failed: %v\n", err)
		os.Exit(1)
	}

	for _, material := range report.Materials() {
		rq := report.Requirements[material]
		if len(rq.Buildings) == 0 {
			fmt.Printf("%-14s %8s/s  (raw)\n", material, rq.Rate.Decimal())
			continue
		}
		fmt.Printf("%-14s %8s/s\n", material, rq.Rate.Decimal())
		for recipe, count := range rq.Buildings {
			fmt.Printf("  %-12s %8s buildings (need %d)\n", recipe, count.Decimal().Round(6), count.Ceil())
		}
	}

	depth := resolver.ChainDepth(target)
	fmt.Printf("\nLongest chain: %d levels\n", depth.Depth)

	for _, warning := range report.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
}

func buildGearFactoryCatalog() (*plan.Catalog, error) {
	smelt, err := entities.NewRecipe("smelt-iron-ingot", "Smelter", 1,
		[]entities.Stack{{Material: "Iron Ore", Amount: 1}},
		[]entities.Stack{{Material: "Iron Ingot", Amount: 1}},
		true,
	)
	if err != nil {
		return nil, err
	}

	gear, err := entities.NewRecipe("craft-iron-gear", "Assembler", 1,
		[]entities.Stack{{Material: "Iron Ingot", Amount: 1}},
		[]entities.Stack{{Material: "Iron Gear", Amount: 1}},
		true,
	)
	if err != nil {
		return nil, err
	}

	return plan.NewCatalog([]*entities.Recipe{smelt, gear})
}
