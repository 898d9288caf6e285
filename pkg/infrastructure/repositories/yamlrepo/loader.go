// Package yamlrepo loads recipe and facility definitions from YAML files.
package yamlrepo

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okale/chainplan/pkg/domain/entities"
)

// Loader handles loading planner data from YAML files
type Loader struct{}

// NewLoader creates a new YAML loader
func NewLoader() *Loader {
	return &Loader{}
}

// recipeDoc is the on-disk shape of one recipe entry.
type recipeDoc struct {
	Name     string     `yaml:"name"`
	Facility string     `yaml:"building"`
	Duration float64    `yaml:"duration"`
	Enabled  *bool      `yaml:"enabled"`
	Input    []stackDoc `yaml:"input"`
	Output   []stackDoc `yaml:"output"`
}

type stackDoc struct {
	Name   string  `yaml:"name"`
	Amount float64 `yaml:"amount"`
}

// tierDoc is one facility tier with its speed multiplier.
type tierDoc struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// LoadRecipes loads recipe definitions from a YAML file. An entry without
// a name is identified by its first output material; an entry without an
// enabled field defaults to enabled. Material names are trimmed.
func (l *Loader) LoadRecipes(filename string) ([]*entities.Recipe, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipes file %s: %w", filename, err)
	}

	var docs []recipeDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse recipes YAML: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("recipes file %s defines no recipes", filename)
	}

	recipes := make([]*entities.Recipe, 0, len(docs))
	for i, doc := range docs {
		recipe, err := parseRecipe(doc)
		if err != nil {
			return nil, fmt.Errorf("recipes entry %d: %w", i+1, err)
		}
		recipes = append(recipes, recipe)
	}

	return recipes, nil
}

// LoadFacilities loads facility speed-multiplier tables from a YAML file:
// a mapping from facility class to a list of tiers with values.
func (l *Loader) LoadFacilities(filename string) (map[string]map[string]float64, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open facilities file %s: %w", filename, err)
	}

	var docs map[string][]tierDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse facilities YAML: %w", err)
	}

	tables := make(map[string]map[string]float64, len(docs))
	for class, tiers := range docs {
		class = strings.TrimSpace(class)
		table := make(map[string]float64, len(tiers))
		for i, tier := range tiers {
			name := strings.TrimSpace(tier.Name)
			if name == "" {
				return nil, fmt.Errorf("facilities class %s, tier %d: name cannot be empty", class, i+1)
			}
			if tier.Value <= 0 {
				return nil, fmt.Errorf("facilities class %s, tier %s: value must be positive, got %v", class, name, tier.Value)
			}
			table[name] = tier.Value
		}
		tables[class] = table
	}

	return tables, nil
}

func parseRecipe(doc recipeDoc) (*entities.Recipe, error) {
	inputs, err := parseStacks(doc.Input)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	outputs, err := parseStacks(doc.Output)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	name := strings.TrimSpace(doc.Name)
	if name == "" && len(outputs) > 0 {
		// Unnamed entries inherit their first output's material name.
		// Duplicates that result are rejected at catalog construction,
		// which forces explicit names where they matter.
		name = string(outputs[0].Material)
	}

	enabled := true
	if doc.Enabled != nil {
		enabled = *doc.Enabled
	}

	return entities.NewRecipe(
		entities.RecipeName(name),
		strings.TrimSpace(doc.Facility),
		doc.Duration,
		inputs,
		outputs,
		enabled,
	)
}

func parseStacks(docs []stackDoc) ([]entities.Stack, error) {
	stacks := make([]entities.Stack, 0, len(docs))
	for i, doc := range docs {
		name := strings.TrimSpace(doc.Name)
		if name == "" {
			return nil, fmt.Errorf("entry %d: material name cannot be empty", i+1)
		}
		stacks = append(stacks, entities.Stack{
			Material: entities.Material(name),
			Amount:   doc.Amount,
		})
	}
	return stacks, nil
}
