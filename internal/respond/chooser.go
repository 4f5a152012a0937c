package respond

import "math/rand/v2"

// Chooser picks one of n canned alternatives.
type Chooser interface {
	Choose(n int) int
}

// FirstChooser always picks the first alternative.
type FirstChooser struct{}

func (FirstChooser) Choose(int) int { return 0 }

// RandomChooser picks uniformly with a seeded generator, so a fixed seed
// replays the same sequence.
type RandomChooser struct {
	rng *rand.Rand
}

func NewRandomChooser(seed uint64) *RandomChooser {
	return &RandomChooser{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (c *RandomChooser) Choose(n int) int {
	if n <= 1 {
		return 0
	}
	return c.rng.IntN(n)
}
