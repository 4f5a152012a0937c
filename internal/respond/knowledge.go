package respond

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/reasoner/internal/apperr"
	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var embeddedKnowledge []byte

type Fact struct {
	Topic    string            `yaml:"topic"`
	Category classify.Category `yaml:"category"`
	Label    string            `yaml:"label"`
	Words    []string          `yaml:"words"`
	Phrases  []string          `yaml:"phrases"`
	Text     string            `yaml:"text"`
}

// KnowledgeBase is an ordered list of canned facts.
type KnowledgeBase struct {
	Facts []Fact `yaml:"facts"`
}

func DefaultKnowledge() (*KnowledgeBase, error) {
	return ParseKnowledge(embeddedKnowledge)
}

func LoadKnowledge(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	return ParseKnowledge(data)
}

func ParseKnowledge(data []byte) (*KnowledgeBase, error) {
	var kb KnowledgeBase
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parse knowledge YAML: %w", err)
	}
	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return &kb, nil
}

func (kb *KnowledgeBase) Validate() error {
	seen := make(map[string]bool, len(kb.Facts))
	for i, f := range kb.Facts {
		if f.Topic == "" {
			return apperr.NewValidationf("fact at index %d has no topic", i)
		}
		if seen[f.Topic] {
			return apperr.NewValidationf("duplicate fact topic %q", f.Topic)
		}
		seen[f.Topic] = true

		if _, err := classify.Parse(string(f.Category)); err != nil {
			return apperr.NewValidationWrap(fmt.Sprintf("fact %q", f.Topic), err)
		}
		if f.Label == "" || f.Text == "" {
			return apperr.NewValidationf("fact %q needs a label and a text", f.Topic)
		}
		if len(f.Words) == 0 && len(f.Phrases) == 0 {
			return apperr.NewValidationf("fact %q has no trigger words", f.Topic)
		}
	}
	return nil
}

// Lookup returns the first fact of the category triggered by the question.
func (kb *KnowledgeBase) Lookup(cat classify.Category, words []string, raw string) (Fact, bool) {
	lower := strings.ToLower(raw)
	return lo.Find(kb.Facts, func(f Fact) bool {
		if f.Category != cat {
			return false
		}
		if lo.Some(words, f.Words) {
			return true
		}
		return lo.SomeBy(f.Phrases, func(p string) bool {
			return strings.Contains(lower, p)
		})
	})
}

func (kb *KnowledgeBase) Topics() []string {
	return lo.Map(kb.Facts, func(f Fact, _ int) string { return f.Topic })
}
