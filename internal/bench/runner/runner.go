package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/reasoner/internal/bench/suite"
	"github.com/DjordjeVuckovic/reasoner/internal/logging"
	"github.com/DjordjeVuckovic/reasoner/internal/reasoner"
	"github.com/google/uuid"
)

// Answerer answers a question without side effects.
type Answerer interface {
	Answer(question string) reasoner.Answer
}

type Runner struct {
	config   Config
	answerer Answerer
	logger   *slog.Logger
}

func New(cfg Config, answerer Answerer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{config: cfg.normalized(), answerer: answerer, logger: logger}
}

// Run evaluates every case of the suite in order.
func (r *Runner) Run(ctx context.Context, loaded *suite.LoadedSuite) (*SuiteResult, error) {
	sr := &SuiteResult{
		RunID:     uuid.New(),
		SuiteName: loaded.Suite.Name,
		Version:   loaded.Suite.Version,
		StartedAt: time.Now(),
		Config:    r.config,
	}

	r.logger.Info("Running suite", "suite", sr.SuiteName, "cases", len(loaded.Suite.Cases), "run_id", sr.RunID)

	for i := range loaded.Suite.Cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("suite %q interrupted: %w", sr.SuiteName, err)
		}

		cr := r.runCase(&loaded.Suite.Cases[i], loaded.Registry)
		sr.Cases = append(sr.Cases, cr)

		if !cr.Passed() {
			r.logger.Warn("case failed", "case", cr.CaseID, "failures", cr.Failures, "error", cr.Error)
		}
	}

	sr.Duration = time.Since(sr.StartedAt)
	return sr, nil
}

func (r *Runner) runCase(c *suite.Case, registry *suite.TemplateRegistry) CaseResult {
	cr := CaseResult{
		CaseID:      c.ID,
		Description: c.Description,
		Category:    c.Expect.Category,
	}

	question, err := c.ResolveQuestion(registry)
	if err != nil {
		cr.Error = fmt.Errorf("resolve question: %w", err)
		return cr
	}
	cr.Question = question

	for i := 0; i < r.config.WarmupRuns; i++ {
		_ = r.answerer.Answer(question)
	}

	latencies := make([]time.Duration, 0, r.config.Runs)
	lines := make(map[string]struct{}, 1)
	var first reasoner.Answer
	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		ans := r.answerer.Answer(question)
		latencies = append(latencies, time.Since(start))

		if i == 0 {
			first = ans
		}
		lines[ans.Line()] = struct{}{}
	}

	cr.Answer = first
	cr.DistinctAnswers = len(lines)
	cr.Latency = NewLatencyStats(latencies)
	if cr.Category == "" {
		cr.Category = first.Category
	}

	cr.Failures = Check(c.Expect, first)
	if !cr.Stable() {
		cr.Failures = append(cr.Failures, fmt.Sprintf("answer differs between runs (%d distinct lines)", cr.DistinctAnswers))
	}

	r.logger.Debug("case done", "case", c.ID, "line", first.Line(), "passed", cr.Passed())
	return cr
}
