package plan

import "github.com/okale/chainplan/pkg/domain/entities"

// ChainDepth describes the longest dependency chain from a target material
// down to a raw material. Depth counts materials on the path, so a raw
// target has depth 1.
type ChainDepth struct {
	Depth int
	Path  []entities.Material
}

// ChainDepth computes the longest chain for the material under the
// resolver's policy (disabled recipes and tie-break both apply, so the
// chain measured is the one Resolve would actually expand). Cycles are cut
// at the repeated material, the same discipline Resolve uses.
func (r *Resolver) ChainDepth(material entities.Material) ChainDepth {
	visiting := make(map[entities.Material]bool)
	return r.deepestChain(material, visiting)
}

func (r *Resolver) deepestChain(material entities.Material, visiting map[entities.Material]bool) ChainDepth {
	result := ChainDepth{Depth: 1, Path: []entities.Material{material}}

	recipe, err := r.selectRecipe(material, discardReport())
	if err != nil || recipe == nil {
		// Ambiguity under SelectionError still has a well-defined depth
		// along the first-declared chain; report the terminal depth here
		// and let Resolve surface the configuration error.
		return result
	}

	visiting[material] = true
	var best ChainDepth
	for _, input := range recipe.Inputs {
		if visiting[input.Material] {
			continue
		}
		if sub := r.deepestChain(input.Material, visiting); sub.Depth > best.Depth {
			best = sub
		}
	}
	delete(visiting, material)

	if best.Depth > 0 {
		result.Depth += best.Depth
		result.Path = append(result.Path, best.Path...)
	}
	return result
}

// discardReport is a sink for warnings emitted during analysis passes that
// do not produce a user-facing report.
func discardReport() *Report {
	return newReport("", 0)
}
