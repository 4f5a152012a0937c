package runner

import (
	"time"

	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/DjordjeVuckovic/reasoner/internal/reasoner"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type CaseResult struct {
	CaseID      string
	Description string
	Question    string
	// Category is the expected category when the case names one, otherwise
	// the answered category.
	Category classify.Category
	Answer   reasoner.Answer
	Failures []string
	// DistinctAnswers counts the different answer lines seen across the
	// measured runs.
	DistinctAnswers int
	Latency         LatencyStats
	Error           error
}

func (cr CaseResult) Passed() bool {
	return cr.Error == nil && len(cr.Failures) == 0
}

// Stable reports whether every measured run produced the same line. Cases
// that never ran count as stable.
func (cr CaseResult) Stable() bool {
	return cr.DistinctAnswers <= 1
}

type SuiteResult struct {
	RunID     uuid.UUID
	SuiteName string
	Version   string
	StartedAt time.Time
	Duration  time.Duration
	Config    Config
	Cases     []CaseResult
}

func (sr *SuiteResult) Failed() int {
	return lo.CountBy(sr.Cases, func(c CaseResult) bool { return !c.Passed() })
}
