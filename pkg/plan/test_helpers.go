package plan

import (
	"fmt"

	"github.com/okale/chainplan/pkg/domain/entities"
)

// MustRecipe builds an enabled recipe and panics on an invalid definition.
// Intended for test fixtures and examples.
func MustRecipe(name entities.RecipeName, facility string, duration float64, inputs, outputs []entities.Stack) *entities.Recipe {
	recipe, err := entities.NewRecipe(name, facility, duration, inputs, outputs, true)
	if err != nil {
		panic(fmt.Sprintf("invalid test recipe: %v", err))
	}
	return recipe
}

// MustCatalog builds a catalog and panics on duplicate recipe names.
func MustCatalog(recipes ...*entities.Recipe) *Catalog {
	catalog, err := NewCatalog(recipes)
	if err != nil {
		panic(fmt.Sprintf("invalid test catalog: %v", err))
	}
	return catalog
}

// NewTestResolver creates a resolver with a zero-value policy over the
// given recipes.
func NewTestResolver(recipes ...*entities.Recipe) *Resolver {
	return NewResolver(MustCatalog(recipes...), Policy{})
}

// buildFactoryTestCatalog assembles a small smelting/assembly chain used by
// tests across the package:
//
//	Iron Ore (raw) → Iron Ingot → Iron Gear ─┐
//	                  Iron Ingot ────────────┴→ Circuit needs Copper Ingot too
//	Copper Ore (raw) → Copper Ingot
func buildFactoryTestCatalog() *Catalog {
	return MustCatalog(
		MustRecipe("smelt-iron-ingot", "Smelter", 1,
			[]entities.Stack{{Material: "Iron Ore", Amount: 1}},
			[]entities.Stack{{Material: "Iron Ingot", Amount: 1}},
		),
		MustRecipe("smelt-copper-ingot", "Smelter", 1,
			[]entities.Stack{{Material: "Copper Ore", Amount: 1}},
			[]entities.Stack{{Material: "Copper Ingot", Amount: 1}},
		),
		MustRecipe("craft-iron-gear", "Assembler", 1,
			[]entities.Stack{{Material: "Iron Ingot", Amount: 1}},
			[]entities.Stack{{Material: "Iron Gear", Amount: 2}},
		),
		MustRecipe("craft-circuit", "Assembler", 2,
			[]entities.Stack{
				{Material: "Iron Ingot", Amount: 2},
				{Material: "Copper Ingot", Amount: 1},
			},
			[]entities.Stack{{Material: "Circuit", Amount: 2}},
		),
	)
}
