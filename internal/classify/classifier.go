package classify

import (
	"strings"

	"github.com/DjordjeVuckovic/reasoner/internal/arith"
	"github.com/DjordjeVuckovic/reasoner/internal/token"
	"github.com/samber/lo"
)

// Classifier assigns keyword categories to a tokenized question.
type Classifier struct {
	rules    *Rules
	priority []Category
}

// New builds a classifier. A non-empty priority replaces the rules' own
// priority list.
func New(rules *Rules, priority []Category) (*Classifier, error) {
	if len(priority) == 0 {
		priority = rules.Priority
	}
	if err := validatePriority(priority); err != nil {
		return nil, err
	}
	return &Classifier{rules: rules, priority: priority}, nil
}

// NewDefault builds a classifier from the built-in rules.
func NewDefault() (*Classifier, error) {
	rules, err := DefaultRules()
	if err != nil {
		return nil, err
	}
	return New(rules, nil)
}

func (c *Classifier) Priority() []Category {
	return c.priority
}

// Classify returns every matched category in priority order, or the
// default category when nothing matches.
func (c *Classifier) Classify(tokens []token.Token, raw string) []Category {
	words := token.Words(tokens)
	lower := strings.ToLower(raw)
	numeric := lo.ContainsBy(tokens, func(tok token.Token) bool {
		return tok.Type == token.NUMBER || arith.IsNumberWord(tok.Value)
	})

	matched := lo.Filter(c.priority, func(cat Category, _ int) bool {
		rule, ok := c.rules.Categories[cat]
		if !ok {
			return false
		}
		if rule.Numeric && numeric {
			return true
		}
		if lo.Some(words, rule.Words) {
			return true
		}
		return lo.SomeBy(rule.Phrases, func(p string) bool {
			return strings.Contains(lower, p)
		})
	})

	if len(matched) == 0 {
		return []Category{c.rules.Default}
	}
	return matched
}
