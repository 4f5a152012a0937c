package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/reasoner/internal/apperr"
	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite    *TestSuite
	Registry *TemplateRegistry
	Path     string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("suite %s: %w", path, err)
	}
	loaded.Path = path
	return loaded, nil
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, apperr.NewValidationWrap("parse suite YAML", err)
	}
	if len(s.Cases) == 0 {
		return nil, apperr.NewValidation("suite has no cases")
	}

	registry := NewTemplateRegistry()
	for i, t := range s.Templates {
		if t == nil {
			return nil, apperr.NewValidationf("template at index %d is empty", i)
		}
		if err := registry.Register(t); err != nil {
			return nil, apperr.NewValidationWrap("register template", err)
		}
	}

	ids := lo.Map(s.Cases, func(c Case, _ int) string { return c.ID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return nil, apperr.NewValidationf("duplicate case ids: %v", dups)
	}

	for i, c := range s.Cases {
		if err := validateCase(i, c, registry); err != nil {
			return nil, err
		}
	}

	return &LoadedSuite{Suite: &s, Registry: registry}, nil
}

func validateCase(i int, c Case, registry *TemplateRegistry) error {
	if c.ID == "" {
		return apperr.NewValidationf("case at index %d has no id", i)
	}
	if c.Question == "" && c.Template == "" {
		return apperr.NewValidationf("case %q has neither question nor template", c.ID)
	}
	if c.Question != "" && c.Template != "" {
		return apperr.NewValidationf("case %q has both question and template", c.ID)
	}
	if c.Template != "" {
		if _, ok := registry.Get(c.Template); !ok {
			return apperr.NewValidationf("case %q references unknown template %q", c.ID, c.Template)
		}
	}
	if c.Expect.IsEmpty() {
		return apperr.NewValidationf("case %q has no expectations", c.ID)
	}
	if c.Expect.Category != "" {
		if _, err := classify.Parse(string(c.Expect.Category)); err != nil {
			return apperr.NewValidationWrap(fmt.Sprintf("case %q", c.ID), err)
		}
	}
	return nil
}
