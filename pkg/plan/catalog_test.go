package plan

import (
	"errors"
	"testing"

	"github.com/okale/chainplan/pkg/domain/entities"
)

func TestNewCatalog_DuplicateNames(t *testing.T) {
	recipes := []*entities.Recipe{
		MustRecipe("smelt-iron", "Smelter", 1,
			[]entities.Stack{{Material: "Iron Ore", Amount: 1}},
			[]entities.Stack{{Material: "Iron Ingot", Amount: 1}},
		),
		MustRecipe("smelt-iron", "Smelter", 2,
			[]entities.Stack{{Material: "Iron Ore", Amount: 2}},
			[]entities.Stack{{Material: "Iron Ingot", Amount: 2}},
		),
	}

	_, err := NewCatalog(recipes)
	if !errors.Is(err, ErrDuplicateRecipe) {
		t.Fatalf("expected ErrDuplicateRecipe, got %v", err)
	}
}

func TestCatalog_LookupDeclarationOrder(t *testing.T) {
	catalog := MustCatalog(
		MustRecipe("make-other", "Smelter", 1,
			nil,
			[]entities.Stack{{Material: "Other", Amount: 1}},
		),
		MustRecipe("ingot-a", "Smelter", 1,
			[]entities.Stack{{Material: "Ore", Amount: 1}},
			[]entities.Stack{{Material: "Ingot", Amount: 1}},
		),
		MustRecipe("ingot-b", "Smelter", 1,
			[]entities.Stack{{Material: "Ore", Amount: 2}},
			[]entities.Stack{{Material: "Ingot", Amount: 2}},
		),
	)

	producers := catalog.Lookup("Ingot")
	if len(producers) != 2 {
		t.Fatalf("expected 2 producers, got %d", len(producers))
	}
	if producers[0].Name != "ingot-a" || producers[1].Name != "ingot-b" {
		t.Errorf("expected declaration order [ingot-a ingot-b], got [%s %s]",
			producers[0].Name, producers[1].Name)
	}
}

func TestCatalog_DisabledAtLoadExcluded(t *testing.T) {
	disabled, err := entities.NewRecipe("legacy-smelt", "Smelter", 1,
		[]entities.Stack{{Material: "Ore", Amount: 1}},
		[]entities.Stack{{Material: "Ingot", Amount: 1}},
		false,
	)
	if err != nil {
		t.Fatalf("NewRecipe failed: %v", err)
	}

	catalog, err := NewCatalog([]*entities.Recipe{disabled})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	if producers := catalog.Lookup("Ingot"); len(producers) != 0 {
		t.Errorf("expected disabled recipe to be excluded from lookup, got %v", producers)
	}
	// Still present by name and in the full listing for inspection.
	if _, ok := catalog.Recipe("legacy-smelt"); !ok {
		t.Error("expected disabled recipe to remain addressable by name")
	}
	if catalog.Len() != 1 {
		t.Errorf("expected catalog length 1, got %d", catalog.Len())
	}
}

func TestCatalog_RawMaterialLookupEmpty(t *testing.T) {
	catalog := buildFactoryTestCatalog()

	if producers := catalog.Lookup("Iron Ore"); len(producers) != 0 {
		t.Errorf("expected no producers for raw material, got %v", producers)
	}
	if producers := catalog.Lookup("Never Heard Of It"); len(producers) != 0 {
		t.Errorf("expected no producers for unknown material, got %v", producers)
	}
}

func TestCatalog_DuplicateDetectionIncludesDisabled(t *testing.T) {
	enabled := MustRecipe("smelt-iron", "Smelter", 1,
		[]entities.Stack{{Material: "Iron Ore", Amount: 1}},
		[]entities.Stack{{Material: "Iron Ingot", Amount: 1}},
	)
	disabled, err := entities.NewRecipe("smelt-iron", "Smelter", 2,
		[]entities.Stack{{Material: "Iron Ore", Amount: 2}},
		[]entities.Stack{{Material: "Iron Ingot", Amount: 2}},
		false,
	)
	if err != nil {
		t.Fatalf("NewRecipe failed: %v", err)
	}

	if _, err := NewCatalog([]*entities.Recipe{enabled, disabled}); !errors.Is(err, ErrDuplicateRecipe) {
		t.Fatalf("expected ErrDuplicateRecipe even for a disabled duplicate, got %v", err)
	}
}
