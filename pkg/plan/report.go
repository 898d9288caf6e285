package plan

import (
	"sort"

	"github.com/okale/chainplan/pkg/domain/entities"
)

func newReport(target entities.Material, rate Rate) *Report {
	return &Report{
		Target:       target,
		TargetRate:   rate,
		Requirements: make(map[entities.Material]*Requirement),
	}
}

// requirement returns the material's entry, creating it at zero on first use.
func (rp *Report) requirement(m entities.Material) *Requirement {
	rq, ok := rp.Requirements[m]
	if !ok {
		rq = &Requirement{Buildings: make(map[entities.RecipeName]Count)}
		rp.Requirements[m] = rq
	}
	return rq
}

// addRate accumulates demand for a material. Summation is commutative and
// associative, so the final report does not depend on traversal order.
func (rp *Report) addRate(m entities.Material, rate Rate) {
	rp.requirement(m).Rate += rate
}

// addBuildings accumulates the building count a recipe contributes toward
// producing a material.
func (rp *Report) addBuildings(m entities.Material, recipe entities.RecipeName, count Count) {
	rp.requirement(m).Buildings[recipe] += count
}

// addWarning collects a non-fatal condition. Ambiguity warnings are
// deduplicated per material: a material consumed from several places is
// still only ambiguous once.
func (rp *Report) addWarning(w Warning) {
	if w.Kind == WarnAmbiguous {
		for _, existing := range rp.Warnings {
			if existing.Kind == WarnAmbiguous && existing.Material == w.Material {
				return
			}
		}
	}
	rp.Warnings = append(rp.Warnings, w)
}

// Requirement returns the aggregated requirement for a material.
func (rp *Report) Requirement(m entities.Material) (*Requirement, bool) {
	rq, ok := rp.Requirements[m]
	return rq, ok
}

// Materials returns every material in the report, sorted by name.
func (rp *Report) Materials() []entities.Material {
	materials := make([]entities.Material, 0, len(rp.Requirements))
	for m := range rp.Requirements {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i] < materials[j] })
	return materials
}

// TotalBuildings sums building counts per recipe across all materials.
func (rp *Report) TotalBuildings() map[entities.RecipeName]Count {
	totals := make(map[entities.RecipeName]Count)
	for _, rq := range rp.Requirements {
		for name, count := range rq.Buildings {
			totals[name] += count
		}
	}
	return totals
}

// Merge folds another report's requirements and warnings into this one,
// summing rates per material and counts per recipe. Merging is commutative
// up to warning order.
func (rp *Report) Merge(other *Report) {
	for m, rq := range other.Requirements {
		rp.addRate(m, rq.Rate)
		for name, count := range rq.Buildings {
			rp.addBuildings(m, name, count)
		}
	}
	for _, w := range other.Warnings {
		rp.addWarning(w)
	}
}
