package reasoner

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/DjordjeVuckovic/reasoner/internal/config"
	"github.com/DjordjeVuckovic/reasoner/internal/respond"
	"github.com/DjordjeVuckovic/reasoner/internal/token"
)

// FromConfig builds a reasoner from loaded configuration.
func FromConfig(cfg *config.Config, logger *slog.Logger) (*Reasoner, error) {
	rules, err := loadRules(cfg.Classifier.RulesFile)
	if err != nil {
		return nil, err
	}

	priority, err := cfg.PriorityCategories()
	if err != nil {
		return nil, fmt.Errorf("classifier priority: %w", err)
	}

	classifier, err := classify.New(rules, priority)
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier: %w", err)
	}

	kb, err := loadKnowledge(cfg.Responder.KnowledgeFile)
	if err != nil {
		return nil, err
	}

	var chooser respond.Chooser = respond.FirstChooser{}
	if cfg.Responder.Themed {
		chooser = respond.NewRandomChooser(cfg.Responder.Seed)
	}

	if logger != nil {
		logger.Debug("Built reasoner",
			"priority", classifier.Priority(),
			"topics", kb.Topics(),
			"themed", cfg.Responder.Themed,
		)
	}

	return New(token.NewQuestionTokenizer(), classifier, respond.New(kb, chooser), logger), nil
}

func loadRules(path string) (*classify.Rules, error) {
	if path == "" {
		return classify.DefaultRules()
	}
	rules, err := classify.LoadRules(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules %s: %w", path, err)
	}
	return rules, nil
}

func loadKnowledge(path string) (*respond.KnowledgeBase, error) {
	if path == "" {
		return respond.DefaultKnowledge()
	}
	kb, err := respond.LoadKnowledge(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge %s: %w", path, err)
	}
	return kb, nil
}
