package plan

import (
	"errors"
	"fmt"

	"github.com/okale/chainplan/pkg/domain/entities"
)

// ErrNegativeRate is returned when the target rate is negative.
var ErrNegativeRate = errors.New("negative target rate")

// ErrAmbiguousRecipe is returned under SelectionError when more than one
// enabled recipe produces the same material.
var ErrAmbiguousRecipe = errors.New("ambiguous recipe selection")

// Resolver walks the recipe graph, turning a target output rate into
// per-material required rates and per-recipe building counts. It never
// mutates the Catalog or Policy; each Resolve call carries its own
// traversal state, so one Resolver may serve concurrent calls.
type Resolver struct {
	catalog *Catalog
	policy  Policy
}

// NewResolver creates a resolver over the given catalog and policy.
func NewResolver(catalog *Catalog, policy Policy) *Resolver {
	return &Resolver{
		catalog: catalog,
		policy:  policy,
	}
}

// Resolve computes the full requirement report for producing material at
// the given rate (quantity per second).
//
// Every material touched by the expansion appears in the report with its
// total required rate, the target included. Materials with no enabled
// producing recipe are raw: they carry a rate but no building count, and
// expansion ends there. An input already being expanded on the current
// path marks a cycle: that branch stops with a warning and the rest of the
// computation completes. A zero rate yields an all-zero report.
func (r *Resolver) Resolve(material entities.Material, rate Rate) (*Report, error) {
	if rate < 0 {
		return nil, fmt.Errorf("%w: %v for %s", ErrNegativeRate, float64(rate), material)
	}

	report := newReport(material, rate)
	visiting := make(map[entities.Material]bool)
	if err := r.expand(material, rate, visiting, nil, report); err != nil {
		return nil, err
	}
	return report, nil
}

// expand resolves one material at one rate and recurses into the chosen
// recipe's inputs. visiting holds the materials on the current expansion
// path: entries are added on entry and removed on exit, so sibling
// branches may legitimately revisit a material.
func (r *Resolver) expand(material entities.Material, rate Rate, visiting map[entities.Material]bool, path []entities.Material, report *Report) error {
	report.addRate(material, rate)

	recipe, err := r.selectRecipe(material, report)
	if err != nil {
		return err
	}
	if recipe == nil {
		// Terminal: raw, unknown, or fully disabled. Sourced externally.
		return nil
	}

	outputAmount, _ := recipe.OutputAmount(material)
	buildings := Count(float64(rate) * recipe.Duration / outputAmount / r.policy.Speed(recipe.Facility))
	report.addBuildings(material, recipe.Name, buildings)

	visiting[material] = true
	path = append(path, material)

	for _, input := range recipe.Inputs {
		if visiting[input.Material] {
			report.addWarning(Warning{
				Kind:     WarnCycle,
				Material: input.Material,
				Path:     append(append([]entities.Material(nil), path...), input.Material),
			})
			continue
		}
		// Input flow per unit time scales off the output rate alone;
		// facility speed trades building count against per-building
		// throughput and cancels out of the material flow.
		inputRate := Rate(float64(rate) * input.Amount / outputAmount)
		if err := r.expand(input.Material, inputRate, visiting, path, report); err != nil {
			return err
		}
	}

	delete(visiting, material)
	return nil
}

// selectRecipe applies the disabled set and the tie-break policy. A nil
// recipe with nil error marks the terminal case.
func (r *Resolver) selectRecipe(material entities.Material, report *Report) (*entities.Recipe, error) {
	var enabled []*entities.Recipe
	for _, recipe := range r.catalog.Lookup(material) {
		if !r.policy.IsDisabled(recipe.Name) {
			enabled = append(enabled, recipe)
		}
	}

	switch len(enabled) {
	case 0:
		return nil, nil
	case 1:
		return enabled[0], nil
	default:
		if r.policy.Selection == SelectionError {
			return nil, fmt.Errorf("%w: %d enabled recipes produce %s", ErrAmbiguousRecipe, len(enabled), material)
		}
		report.addWarning(Warning{
			Kind:     WarnAmbiguous,
			Material: material,
			Chosen:   enabled[0].Name,
		})
		return enabled[0], nil
	}
}
