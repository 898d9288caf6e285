package plan

import "github.com/okale/chainplan/pkg/domain/entities"

// Selection is the tie-break rule applied when more than one enabled recipe
// produces the same material.
type Selection int

const (
	// SelectionFirstDeclared picks the recipe declared first and attaches
	// an ambiguity warning to the report. This is the default.
	SelectionFirstDeclared Selection = iota
	// SelectionError treats the ambiguity as a configuration error; the
	// caller must disable recipes until one producer remains.
	SelectionError
)

func (s Selection) String() string {
	switch s {
	case SelectionFirstDeclared:
		return "FirstDeclared"
	case SelectionError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Policy holds the cross-cutting rules consulted during resolution. It is
// read-only while a resolution runs, so one Policy may serve concurrent
// resolutions against the same Catalog.
type Policy struct {
	// Disabled excludes recipes by name. A material whose every producer
	// is disabled is terminal, exactly as if it had no recipe at all.
	Disabled map[entities.RecipeName]bool
	// Selection is the multi-recipe tie-break rule.
	Selection Selection
	// Speeds maps a facility class to its speed multiplier (e.g. the
	// selected assembler tier). Classes without an entry run at 1.0.
	// Speed scales building counts only; material flow rates are
	// unaffected.
	Speeds map[string]float64
}

// IsDisabled reports whether the named recipe is excluded.
func (p Policy) IsDisabled(name entities.RecipeName) bool {
	return p.Disabled[name]
}

// Speed returns the multiplier for a facility class, defaulting to 1.0.
func (p Policy) Speed(facility string) float64 {
	speed, ok := p.Speeds[facility]
	if !ok || speed <= 0 {
		return 1.0
	}
	return speed
}
