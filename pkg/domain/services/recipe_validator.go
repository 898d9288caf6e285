package services

import (
	"fmt"
	"sort"

	"github.com/okale/chainplan/pkg/domain/entities"
)

// RecipeValidator provides pre-flight validation for a recipe set. The
// resolver itself stays tolerant of missing materials and cycles; this
// validator surfaces them ahead of time for the operator.
type RecipeValidator struct{}

// NewRecipeValidator creates a new recipe validator
func NewRecipeValidator() *RecipeValidator {
	return &RecipeValidator{}
}

// ValidationResult contains the results of recipe set validation
type ValidationResult struct {
	HasCycles      bool
	CyclePaths     [][]entities.Material
	DuplicateNames []entities.RecipeName
	RawMaterials   []entities.Material
	Errors         []string
}

// Validate checks a recipe set for duplicate names and dependency cycles,
// and lists the raw materials (inputs no enabled recipe produces).
// Disabled recipes count for duplicate detection but not for graph
// structure, matching how the catalog indexes them.
func (v *RecipeValidator) Validate(recipes []*entities.Recipe) *ValidationResult {
	result := &ValidationResult{
		CyclePaths:     make([][]entities.Material, 0),
		DuplicateNames: make([]entities.RecipeName, 0),
		RawMaterials:   make([]entities.Material, 0),
		Errors:         make([]string, 0),
	}

	result.DuplicateNames = v.detectDuplicateNames(recipes)

	adjacency, produced := v.buildMaterialGraph(recipes)
	result.CyclePaths = v.detectCycles(adjacency)
	result.HasCycles = len(result.CyclePaths) > 0
	result.RawMaterials = v.collectRawMaterials(adjacency, produced)

	for _, name := range result.DuplicateNames {
		result.Errors = append(result.Errors, fmt.Sprintf("duplicate recipe name: %s", name))
	}
	for _, cycle := range result.CyclePaths {
		result.Errors = append(result.Errors, fmt.Sprintf("recipe cycle detected: %v", cycle))
	}

	return result
}

// detectDuplicateNames finds recipe names declared more than once.
func (v *RecipeValidator) detectDuplicateNames(recipes []*entities.Recipe) []entities.RecipeName {
	seen := make(map[entities.RecipeName]bool)
	reported := make(map[entities.RecipeName]bool)
	duplicates := make([]entities.RecipeName, 0)

	for _, recipe := range recipes {
		if seen[recipe.Name] && !reported[recipe.Name] {
			duplicates = append(duplicates, recipe.Name)
			reported[recipe.Name] = true
		}
		seen[recipe.Name] = true
	}

	return duplicates
}

// buildMaterialGraph creates output → input material edges over enabled
// recipes, along with the set of produced materials.
func (v *RecipeValidator) buildMaterialGraph(recipes []*entities.Recipe) (map[entities.Material][]entities.Material, map[entities.Material]bool) {
	adjacency := make(map[entities.Material][]entities.Material)
	produced := make(map[entities.Material]bool)

	for _, recipe := range recipes {
		if !recipe.Enabled {
			continue
		}
		for _, out := range recipe.Outputs {
			produced[out.Material] = true
			for _, in := range recipe.Inputs {
				if !containsMaterial(adjacency[out.Material], in.Material) {
					adjacency[out.Material] = append(adjacency[out.Material], in.Material)
				}
			}
		}
	}

	return adjacency, produced
}

// detectCycles uses DFS with a recursion stack to find cycles in the
// material graph.
func (v *RecipeValidator) detectCycles(adjacency map[entities.Material][]entities.Material) [][]entities.Material {
	visited := make(map[entities.Material]bool)
	recursionStack := make(map[entities.Material]bool)
	cycles := make([][]entities.Material, 0)

	roots := make([]entities.Material, 0, len(adjacency))
	for material := range adjacency {
		roots = append(roots, material)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	for _, material := range roots {
		if !visited[material] {
			v.dfsDetectCycle(material, adjacency, visited, recursionStack, nil, &cycles)
		}
	}

	return cycles
}

// dfsDetectCycle performs depth-first search to detect cycles
func (v *RecipeValidator) dfsDetectCycle(
	current entities.Material,
	adjacency map[entities.Material][]entities.Material,
	visited map[entities.Material]bool,
	recursionStack map[entities.Material]bool,
	path []entities.Material,
	cycles *[][]entities.Material,
) {
	visited[current] = true
	recursionStack[current] = true
	path = append(path, current)

	for _, next := range adjacency[current] {
		if !visited[next] {
			v.dfsDetectCycle(next, adjacency, visited, recursionStack, path, cycles)
		} else if recursionStack[next] {
			cycleStart := -1
			for i, material := range path {
				if material == next {
					cycleStart = i
					break
				}
			}
			if cycleStart != -1 {
				cycle := make([]entities.Material, 0, len(path)-cycleStart+1)
				cycle = append(cycle, path[cycleStart:]...)
				cycle = append(cycle, next) // close the cycle
				*cycles = append(*cycles, cycle)
			}
		}
	}

	recursionStack[current] = false
}

// collectRawMaterials lists inputs that no enabled recipe produces, sorted
// by name. These are sourced externally; their presence is informational,
// not an error.
func (v *RecipeValidator) collectRawMaterials(adjacency map[entities.Material][]entities.Material, produced map[entities.Material]bool) []entities.Material {
	seen := make(map[entities.Material]bool)
	raw := make([]entities.Material, 0)

	for _, inputs := range adjacency {
		for _, in := range inputs {
			if !produced[in] && !seen[in] {
				raw = append(raw, in)
				seen[in] = true
			}
		}
	}

	sort.Slice(raw, func(i, j int) bool { return raw[i] < raw[j] })
	return raw
}

func containsMaterial(haystack []entities.Material, needle entities.Material) bool {
	for _, m := range haystack {
		if m == needle {
			return true
		}
	}
	return false
}
