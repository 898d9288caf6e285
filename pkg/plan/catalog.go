package plan

import (
	"errors"
	"fmt"

	"github.com/okale/chainplan/pkg/domain/entities"
)

// ErrDuplicateRecipe is returned when two recipes share a name.
var ErrDuplicateRecipe = errors.New("duplicate recipe")

// Catalog is an immutable index from material to the recipes that produce
// it. It is built once from loaded recipe definitions and shared read-only
// by every resolution.
type Catalog struct {
	recipes  []*entities.Recipe
	byName   map[entities.RecipeName]int
	byOutput map[entities.Material][]int
}

// NewCatalog builds a catalog from recipe definitions. Recipes disabled in
// their definition (Enabled == false) are indexed nowhere and never
// produce anything; runtime disabling is the Policy's job. Returns
// ErrDuplicateRecipe if two definitions share a name, disabled ones
// included.
func NewCatalog(recipes []*entities.Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes:  make([]*entities.Recipe, 0, len(recipes)),
		byName:   make(map[entities.RecipeName]int, len(recipes)),
		byOutput: make(map[entities.Material][]int),
	}

	for _, recipe := range recipes {
		if _, exists := c.byName[recipe.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRecipe, recipe.Name)
		}
		index := len(c.recipes)
		c.recipes = append(c.recipes, recipe)
		c.byName[recipe.Name] = index

		if !recipe.Enabled {
			continue
		}
		for _, out := range recipe.Outputs {
			c.byOutput[out.Material] = append(c.byOutput[out.Material], index)
		}
	}

	return c, nil
}

// Lookup returns the enabled recipes producing m, in declaration order.
// The result is empty for raw or unknown materials; both are terminal.
func (c *Catalog) Lookup(m entities.Material) []*entities.Recipe {
	indexes := c.byOutput[m]
	if len(indexes) == 0 {
		return nil
	}
	recipes := make([]*entities.Recipe, len(indexes))
	for i, index := range indexes {
		recipes[i] = c.recipes[index]
	}
	return recipes
}

// Recipe returns the recipe with the given name.
func (c *Catalog) Recipe(name entities.RecipeName) (*entities.Recipe, bool) {
	index, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return c.recipes[index], true
}

// Recipes returns all recipes in declaration order, disabled ones included.
func (c *Catalog) Recipes() []*entities.Recipe {
	return c.recipes
}

// Len returns the number of recipes in the catalog.
func (c *Catalog) Len() int {
	return len(c.recipes)
}
