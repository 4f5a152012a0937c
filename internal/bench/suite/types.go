package suite

import (
	"fmt"

	"github.com/DjordjeVuckovic/reasoner/internal/classify"
)

type TestSuite struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Version     string              `yaml:"version"`
	Templates   []*QuestionTemplate `yaml:"templates,omitempty"`
	Cases       []Case              `yaml:"cases"`
}

// Case is one question with the answer it must produce. The question is
// either given inline or rendered from a template.
type Case struct {
	ID          string         `yaml:"id"`
	Description string         `yaml:"description"`
	Question    string         `yaml:"question,omitempty"`
	Template    string         `yaml:"template,omitempty"`
	Params      TemplateParams `yaml:"params,omitempty"`
	Expect      Expect         `yaml:"expect"`
}

// Expect lists the checks applied to an answer. Unset fields are not
// checked.
type Expect struct {
	Line          string            `yaml:"line,omitempty"`
	Contains      []string          `yaml:"contains,omitempty"`
	Category      classify.Category `yaml:"category,omitempty"`
	Value         string            `yaml:"value,omitempty"`
	Undefined     *bool             `yaml:"undefined,omitempty"`
	NotEnoughData *bool             `yaml:"not_enough_data,omitempty"`
}

func (e Expect) IsEmpty() bool {
	return e.Line == "" && len(e.Contains) == 0 && e.Category == "" &&
		e.Value == "" && e.Undefined == nil && e.NotEnoughData == nil
}

// ResolveQuestion returns the inline question or renders the case template.
func (c *Case) ResolveQuestion(registry *TemplateRegistry) (string, error) {
	if c.Question != "" {
		return c.Question, nil
	}
	if c.Template == "" {
		return "", fmt.Errorf("case %q has neither question nor template", c.ID)
	}
	return registry.RenderQuestion(c.Template, c.Params)
}
