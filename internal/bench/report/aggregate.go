package report

import (
	"slices"
	"time"

	"github.com/DjordjeVuckovic/reasoner/internal/bench/runner"
	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/DjordjeVuckovic/reasoner/pkg/utils"
	"github.com/samber/lo"
)

func Generate(sr *runner.SuiteResult) *Report {
	r := &Report{
		Meta: Meta{
			RunID:       sr.RunID,
			Suite:       sr.SuiteName,
			Version:     sr.Version,
			Timestamp:   sr.StartedAt,
			Duration:    sr.Duration,
			Config:      sr.Config,
			Environment: NewEnvironmentInfo(),
		},
	}

	for _, cr := range sr.Cases {
		entry := Entry{
			CaseID:   cr.CaseID,
			Question: cr.Question,
			Category: cr.Category,
			Line:     cr.Answer.Line(),
			Passed:   cr.Passed(),
			Answers:  cr.DistinctAnswers,
			Failures: cr.Failures,
			Latency:  cr.Latency,
		}
		if cr.Error != nil {
			entry.Error = cr.Error.Error()
			entry.Line = ""
		}
		r.Cases = append(r.Cases, entry)
	}

	r.Summary = summarize(sr)
	r.Categories = byCategory(sr)

	return r
}

func summarize(sr *runner.SuiteResult) Summary {
	s := Summary{Total: len(sr.Cases)}
	for _, cr := range sr.Cases {
		switch {
		case cr.Error != nil:
			s.Errors++
		case cr.Passed():
			s.Passed++
		default:
			s.Failed++
		}
		if !cr.Stable() {
			s.Unstable++
		}
	}
	s.PassRate = utils.Ratio(s.Passed, s.Total)
	s.Latency = runner.MergeLatencyStats(
		lo.Map(sr.Cases, func(cr runner.CaseResult, _ int) runner.LatencyStats { return cr.Latency })...,
	)
	return s
}

// byCategory groups cases by category, ordered by category name.
func byCategory(sr *runner.SuiteResult) []CategoryEntry {
	groups := lo.GroupBy(sr.Cases, func(cr runner.CaseResult) classify.Category { return cr.Category })

	cats := lo.Keys(groups)
	slices.Sort(cats)

	entries := make([]CategoryEntry, 0, len(cats))
	for _, cat := range cats {
		cases := groups[cat]
		entry := CategoryEntry{
			Category: cat,
			Total:    len(cases),
			Passed:   lo.CountBy(cases, runner.CaseResult.Passed),
		}
		entry.PassRate = utils.Ratio(entry.Passed, entry.Total)

		var total time.Duration
		for _, cr := range cases {
			total += cr.Latency.Mean
		}
		entry.MeanLatency = total / time.Duration(len(cases))

		entries = append(entries, entry)
	}
	return entries
}
