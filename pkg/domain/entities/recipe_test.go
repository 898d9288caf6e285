package entities

import (
	"strings"
	"testing"
)

func TestNewRecipe_Valid(t *testing.T) {
	recipe, err := NewRecipe("craft-gear", "Assembler", 2,
		[]Stack{{Material: "Ingot", Amount: 2}},
		[]Stack{{Material: "Gear", Amount: 1}},
		true,
	)
	if err != nil {
		t.Fatalf("NewRecipe failed: %v", err)
	}
	if recipe.Name != "craft-gear" || recipe.Duration != 2 || !recipe.Enabled {
		t.Errorf("unexpected recipe %+v", recipe)
	}
}

func TestNewRecipe_Validation(t *testing.T) {
	tests := []struct {
		name     string
		recipe   RecipeName
		duration float64
		inputs   []Stack
		outputs  []Stack
		wantErr  string
	}{
		{
			name:     "empty_name",
			recipe:   "",
			duration: 1,
			outputs:  []Stack{{Material: "Gear", Amount: 1}},
			wantErr:  "name cannot be empty",
		},
		{
			name:     "zero_duration",
			recipe:   "craft-gear",
			duration: 0,
			outputs:  []Stack{{Material: "Gear", Amount: 1}},
			wantErr:  "duration must be positive",
		},
		{
			name:     "no_outputs",
			recipe:   "craft-gear",
			duration: 1,
			wantErr:  "at least one output",
		},
		{
			name:     "negative_output_amount",
			recipe:   "craft-gear",
			duration: 1,
			outputs:  []Stack{{Material: "Gear", Amount: -1}},
			wantErr:  "must be positive",
		},
		{
			name:     "zero_input_amount",
			recipe:   "craft-gear",
			duration: 1,
			inputs:   []Stack{{Material: "Ingot", Amount: 0}},
			outputs:  []Stack{{Material: "Gear", Amount: 1}},
			wantErr:  "must be positive",
		},
		{
			name:     "empty_input_material",
			recipe:   "craft-gear",
			duration: 1,
			inputs:   []Stack{{Material: "", Amount: 1}},
			outputs:  []Stack{{Material: "Gear", Amount: 1}},
			wantErr:  "input material cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecipe(tt.recipe, "Assembler", tt.duration, tt.inputs, tt.outputs, true)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestRecipe_OutputAmount(t *testing.T) {
	recipe, err := NewRecipe("refine-oil", "Chemical Plant", 4,
		[]Stack{{Material: "Crude Oil", Amount: 2}},
		[]Stack{
			{Material: "Refined Oil", Amount: 2},
			{Material: "Hydrogen", Amount: 1},
		},
		true,
	)
	if err != nil {
		t.Fatalf("NewRecipe failed: %v", err)
	}

	if amount, ok := recipe.OutputAmount("Hydrogen"); !ok || amount != 1 {
		t.Errorf("expected Hydrogen amount 1, got %v (ok=%v)", amount, ok)
	}
	if _, ok := recipe.OutputAmount("Crude Oil"); ok {
		t.Error("inputs must not be reported as outputs")
	}
	if !recipe.Produces("Refined Oil") {
		t.Error("expected recipe to produce Refined Oil")
	}
}

func TestRecipe_PerBuildingRate(t *testing.T) {
	recipe, err := NewRecipe("smelt-ingot", "Smelter", 2,
		[]Stack{{Material: "Ore", Amount: 1}},
		[]Stack{{Material: "Ingot", Amount: 3}},
		true,
	)
	if err != nil {
		t.Fatalf("NewRecipe failed: %v", err)
	}

	if rate := recipe.PerBuildingRate("Ingot"); rate != 1.5 {
		t.Errorf("expected per-building rate 1.5, got %v", rate)
	}
	if rate := recipe.PerBuildingRate("Ore"); rate != 0 {
		t.Errorf("expected 0 for non-output material, got %v", rate)
	}
}
