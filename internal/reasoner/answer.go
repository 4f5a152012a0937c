package reasoner

import (
	"github.com/DjordjeVuckovic/reasoner/internal/arith"
	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/google/uuid"
)

// Answer is the single line produced for one question.
type Answer struct {
	ID            uuid.UUID           `json:"id"`
	Question      string              `json:"question"`
	Categories    []classify.Category `json:"categories"`
	Category      classify.Category   `json:"category"`
	Label         string              `json:"label,omitempty"`
	Text          string              `json:"text"`
	Result        *arith.Result       `json:"result,omitempty"`
	NotEnoughData bool                `json:"not_enough_data,omitempty"`
}

// Line renders the answer as "<Label>: <Text>", or the bare text for
// unlabeled fallbacks.
func (a Answer) Line() string {
	if a.Label == "" {
		return a.Text
	}
	return a.Label + ": " + a.Text
}

// Computed reports whether the answer carries an arithmetic result.
func (a Answer) Computed() bool {
	return a.Result != nil
}
