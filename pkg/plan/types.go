// Package plan implements the production-chain resolver: given a recipe
// catalog, a target material, and a target output rate, it computes the
// cascading per-material rates and per-recipe building counts needed to
// sustain that output, down to raw materials.
package plan

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/okale/chainplan/pkg/domain/entities"
)

// Rate is a material quantity per second.
type Rate float64

// Decimal converts the rate for display-exact arithmetic and formatting.
func (r Rate) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(r))
}

// Count is a building count. Counts are fractional in the raw report;
// Ceil rounds up to whole buildings.
type Count float64

// Decimal converts the count for display-exact arithmetic and formatting.
func (c Count) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(c))
}

// Ceil returns the count rounded up to a whole number of buildings.
func (c Count) Ceil() int64 {
	return int64(math.Ceil(float64(c)))
}

// WarningKind classifies non-fatal conditions collected during resolution.
type WarningKind int

const (
	// WarnCycle marks a dependency cycle: expansion of the branch stopped
	// at the repeated material.
	WarnCycle WarningKind = iota
	// WarnAmbiguous marks a material produced by more than one enabled
	// recipe; the tie-break policy chose one.
	WarnAmbiguous
)

func (k WarningKind) String() string {
	switch k {
	case WarnCycle:
		return "cycle"
	case WarnAmbiguous:
		return "ambiguous-recipe"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal condition attached to a Report. The computation
// it was collected from is still complete on a best-effort basis.
type Warning struct {
	Kind     WarningKind
	Material entities.Material
	Path     []entities.Material // expansion path ending at the repeat, for WarnCycle
	Chosen   entities.RecipeName // recipe selected by the tie-break, for WarnAmbiguous
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnCycle:
		parts := make([]string, len(w.Path))
		for i, m := range w.Path {
			parts[i] = string(m)
		}
		return fmt.Sprintf("cycle detected at %s (path: %s)", w.Material, strings.Join(parts, " -> "))
	case WarnAmbiguous:
		return fmt.Sprintf("multiple recipes produce %s; using first declared (%s)", w.Material, w.Chosen)
	default:
		return fmt.Sprintf("unknown warning for %s", w.Material)
	}
}

// Requirement is the aggregate demand for one material: its total required
// rate, and the building count per recipe invoked to produce it. Buildings
// is empty for raw materials.
type Requirement struct {
	Rate      Rate
	Buildings map[entities.RecipeName]Count
}

// BuildingsCeil returns per-recipe building counts rounded up to whole
// buildings. The raw counts in Buildings remain available for arithmetic.
func (rq *Requirement) BuildingsCeil() map[entities.RecipeName]int64 {
	out := make(map[entities.RecipeName]int64, len(rq.Buildings))
	for name, count := range rq.Buildings {
		out[name] = count.Ceil()
	}
	return out
}

// Report is the aggregate result of one resolution: total required rate per
// material, building counts per recipe, and any non-fatal warnings.
type Report struct {
	Target       entities.Material
	TargetRate   Rate
	Requirements map[entities.Material]*Requirement
	Warnings     []Warning
}
