package classify

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/reasoner/internal/apperr"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var embeddedRules []byte

type Rule struct {
	Words   []string `yaml:"words"`
	Phrases []string `yaml:"phrases"`
	Numeric bool     `yaml:"numeric"`
}

// Rules is the keyword table driving classification. Priority decides the
// order of matched categories; a category missing from Priority is never
// reported.
type Rules struct {
	Default    Category          `yaml:"default"`
	Priority   []Category        `yaml:"priority"`
	Categories map[Category]Rule `yaml:"categories"`
}

// DefaultRules returns the built-in keyword rules.
func DefaultRules() (*Rules, error) {
	return ParseRules(embeddedRules)
}

func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return ParseRules(data)
}

func ParseRules(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse rules YAML: %w", err)
	}
	if r.Default == "" {
		r.Default = General
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Rules) Validate() error {
	if !known[r.Default] {
		return apperr.NewValidationf("unknown default category %q", r.Default)
	}
	if len(r.Categories) == 0 {
		return apperr.NewValidation("rules define no categories")
	}
	for c, rule := range r.Categories {
		if !known[c] {
			return apperr.NewValidationf("unknown category %q", c)
		}
		if len(rule.Words) == 0 && len(rule.Phrases) == 0 && !rule.Numeric {
			return apperr.NewValidationf("category %q has no keywords", c)
		}
	}
	return validatePriority(r.Priority)
}

func validatePriority(priority []Category) error {
	if len(priority) == 0 {
		return apperr.NewValidation("priority list is empty")
	}
	for _, c := range priority {
		if !known[c] {
			return apperr.NewValidationf("unknown category %q in priority", c)
		}
	}
	if dups := lo.FindDuplicates(priority); len(dups) > 0 {
		return apperr.NewValidationf("duplicate categories in priority: %v", dups)
	}
	return nil
}
