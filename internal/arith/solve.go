package arith

import (
	"github.com/DjordjeVuckovic/reasoner/internal/token"
)

// Solver tokenizes free text and evaluates the arithmetic found in it.
type Solver struct {
	tokenizer token.Tokenizer
}

func NewSolver(tokenizer token.Tokenizer) *Solver {
	return &Solver{tokenizer: tokenizer}
}

func (s *Solver) Solve(text string) (Result, error) {
	return Extract(s.tokenizer.Tokenize(text), text).Evaluate()
}

// Solve is a convenience wrapper using the default question tokenizer.
func Solve(text string) (Result, error) {
	return NewSolver(token.NewQuestionTokenizer()).Solve(text)
}
