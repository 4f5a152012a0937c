package runner

const (
	DefaultWarmupRuns = 0
	DefaultRuns       = 3
)

type Config struct {
	WarmupRuns int `json:"warmup_runs"`
	Runs       int `json:"runs"`
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
	}
}

// normalized clamps negative counts and guarantees at least one measured run.
func (c Config) normalized() Config {
	c.WarmupRuns = max(c.WarmupRuns, 0)
	c.Runs = max(c.Runs, 1)
	return c
}
