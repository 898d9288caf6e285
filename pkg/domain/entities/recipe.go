package entities

import "fmt"

// Material identifies a produced or raw substance by name. Matching is
// verbatim: names are trimmed at load time and otherwise case-sensitive.
type Material string

// RecipeName uniquely identifies a recipe.
type RecipeName string

// Stack pairs a material with a quantity consumed or produced per cycle.
type Stack struct {
	Material Material
	Amount   float64
}

// Recipe is a production rule: one facility converts the input stacks into
// the output stacks once every Duration seconds.
type Recipe struct {
	Name     RecipeName
	Facility string
	Duration float64 // seconds per production cycle
	Inputs   []Stack
	Outputs  []Stack
	Enabled  bool
}

// NewRecipe creates a validated Recipe
func NewRecipe(name RecipeName, facility string, duration float64, inputs, outputs []Stack, enabled bool) (*Recipe, error) {
	if name == "" {
		return nil, fmt.Errorf("recipe name cannot be empty")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("recipe %s: duration must be positive, got %v", name, duration)
	}
	if len(outputs) == 0 {
		return nil, fmt.Errorf("recipe %s: must have at least one output", name)
	}
	for _, s := range outputs {
		if s.Material == "" {
			return nil, fmt.Errorf("recipe %s: output material cannot be empty", name)
		}
		if s.Amount <= 0 {
			return nil, fmt.Errorf("recipe %s: output amount for %s must be positive, got %v", name, s.Material, s.Amount)
		}
	}
	for _, s := range inputs {
		if s.Material == "" {
			return nil, fmt.Errorf("recipe %s: input material cannot be empty", name)
		}
		if s.Amount <= 0 {
			return nil, fmt.Errorf("recipe %s: input amount for %s must be positive, got %v", name, s.Material, s.Amount)
		}
	}

	return &Recipe{
		Name:     name,
		Facility: facility,
		Duration: duration,
		Inputs:   inputs,
		Outputs:  outputs,
		Enabled:  enabled,
	}, nil
}

// OutputAmount returns the per-cycle quantity of the given output material
// and whether the recipe produces it at all.
func (r *Recipe) OutputAmount(m Material) (float64, bool) {
	for _, s := range r.Outputs {
		if s.Material == m {
			return s.Amount, true
		}
	}
	return 0, false
}

// Produces reports whether m is among the recipe's outputs.
func (r *Recipe) Produces(m Material) bool {
	_, ok := r.OutputAmount(m)
	return ok
}

// PerBuildingRate returns the steady-state output rate of m (quantity per
// second) for a single building running this recipe at speed 1. Returns 0
// if the recipe does not produce m.
func (r *Recipe) PerBuildingRate(m Material) float64 {
	amount, ok := r.OutputAmount(m)
	if !ok {
		return 0
	}
	return amount / r.Duration
}
