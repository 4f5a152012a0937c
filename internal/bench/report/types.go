package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/reasoner/internal/bench/runner"
	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/google/uuid"
)

type Report struct {
	Meta       Meta            `json:"meta"`
	Summary    Summary         `json:"summary"`
	Categories []CategoryEntry `json:"categories"`
	Cases      []Entry         `json:"cases"`
}

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Suite       string          `json:"suite"`
	Version     string          `json:"version,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Duration    time.Duration   `json:"duration"`
	Config      runner.Config   `json:"config"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Summary struct {
	Total    int                 `json:"total"`
	Passed   int                 `json:"passed"`
	Failed   int                 `json:"failed"`
	Errors   int                 `json:"errors"`
	Unstable int                 `json:"unstable"`
	PassRate float64             `json:"pass_rate"`
	Latency  runner.LatencyStats `json:"latency"`
}

type CategoryEntry struct {
	Category    classify.Category `json:"category"`
	Total       int               `json:"total"`
	Passed      int               `json:"passed"`
	PassRate    float64           `json:"pass_rate"`
	MeanLatency time.Duration     `json:"mean_latency"`
}

type Entry struct {
	CaseID   string            `json:"case_id"`
	Question string            `json:"question"`
	Category classify.Category `json:"category"`
	Line     string            `json:"line"`
	Passed   bool              `json:"passed"`
	// Answers is the number of distinct lines over the measured runs.
	Answers  int                 `json:"answers"`
	Failures []string            `json:"failures,omitempty"`
	Error    string              `json:"error,omitempty"`
	Latency  runner.LatencyStats `json:"latency"`
}
