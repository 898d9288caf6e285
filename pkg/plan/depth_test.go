package plan

import (
	"reflect"
	"testing"

	"github.com/okale/chainplan/pkg/domain/entities"
)

func TestChainDepth_LinearChain(t *testing.T) {
	resolver := NewResolver(buildFactoryTestCatalog(), Policy{})

	depth := resolver.ChainDepth("Iron Gear")
	if depth.Depth != 3 {
		t.Errorf("expected depth 3, got %d", depth.Depth)
	}
	want := []entities.Material{"Iron Gear", "Iron Ingot", "Iron Ore"}
	if !reflect.DeepEqual(depth.Path, want) {
		t.Errorf("expected path %v, got %v", want, depth.Path)
	}
}

func TestChainDepth_RawMaterial(t *testing.T) {
	resolver := NewResolver(buildFactoryTestCatalog(), Policy{})

	depth := resolver.ChainDepth("Iron Ore")
	if depth.Depth != 1 {
		t.Errorf("expected depth 1 for raw material, got %d", depth.Depth)
	}
	if len(depth.Path) != 1 || depth.Path[0] != "Iron Ore" {
		t.Errorf("expected single-element path, got %v", depth.Path)
	}
}

func TestChainDepth_TakesDeepestBranch(t *testing.T) {
	// Widget needs a raw Rod (depth 2 branch) and an Iron Gear (depth 4
	// branch through ingot and ore).
	resolver := NewTestResolver(
		MustRecipe("smelt-iron-ingot", "Smelter", 1,
			[]entities.Stack{{Material: "Iron Ore", Amount: 1}},
			[]entities.Stack{{Material: "Iron Ingot", Amount: 1}},
		),
		MustRecipe("craft-iron-gear", "Assembler", 1,
			[]entities.Stack{{Material: "Iron Ingot", Amount: 2}},
			[]entities.Stack{{Material: "Iron Gear", Amount: 1}},
		),
		MustRecipe("craft-widget", "Assembler", 1,
			[]entities.Stack{
				{Material: "Rod", Amount: 1},
				{Material: "Iron Gear", Amount: 1},
			},
			[]entities.Stack{{Material: "Widget", Amount: 1}},
		),
	)

	depth := resolver.ChainDepth("Widget")
	if depth.Depth != 4 {
		t.Errorf("expected depth 4, got %d", depth.Depth)
	}
	want := []entities.Material{"Widget", "Iron Gear", "Iron Ingot", "Iron Ore"}
	if !reflect.DeepEqual(depth.Path, want) {
		t.Errorf("expected path %v, got %v", want, depth.Path)
	}
}

func TestChainDepth_CycleSafe(t *testing.T) {
	resolver := NewTestResolver(
		MustRecipe("make-a", "Assembler", 1,
			[]entities.Stack{{Material: "B", Amount: 1}},
			[]entities.Stack{{Material: "A", Amount: 1}},
		),
		MustRecipe("make-b", "Assembler", 1,
			[]entities.Stack{{Material: "A", Amount: 1}},
			[]entities.Stack{{Material: "B", Amount: 1}},
		),
	)

	depth := resolver.ChainDepth("A")
	if depth.Depth != 2 {
		t.Errorf("expected depth 2 with the cycle cut, got %d", depth.Depth)
	}
}

func TestChainDepth_HonorsDisabledSet(t *testing.T) {
	catalog := buildFactoryTestCatalog()
	resolver := NewResolver(catalog, Policy{
		Disabled: map[entities.RecipeName]bool{"smelt-iron-ingot": true},
	})

	// With smelting disabled the ingot is raw, shortening the chain.
	depth := resolver.ChainDepth("Iron Gear")
	if depth.Depth != 2 {
		t.Errorf("expected depth 2 with smelting disabled, got %d", depth.Depth)
	}
}
