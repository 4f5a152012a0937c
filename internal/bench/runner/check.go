package runner

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/reasoner/internal/bench/suite"
	"github.com/DjordjeVuckovic/reasoner/internal/reasoner"
)

// Check returns one message per expectation the answer does not meet.
func Check(exp suite.Expect, ans reasoner.Answer) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	line := ans.Line()
	if exp.Line != "" && line != exp.Line {
		fail("line: want %q, got %q", exp.Line, line)
	}
	for _, sub := range exp.Contains {
		if !strings.Contains(line, sub) {
			fail("line %q does not contain %q", line, sub)
		}
	}
	if exp.Category != "" && ans.Category != exp.Category {
		fail("category: want %s, got %s", exp.Category, ans.Category)
	}
	if exp.Value != "" {
		switch {
		case ans.Result == nil:
			fail("value: want %s, got no result", exp.Value)
		case ans.Result.ValueString() != exp.Value:
			fail("value: want %s, got %s", exp.Value, ans.Result.ValueString())
		}
	}
	if exp.Undefined != nil {
		got := ans.Result != nil && ans.Result.Undefined
		if got != *exp.Undefined {
			fail("undefined: want %t, got %t", *exp.Undefined, got)
		}
	}
	if exp.NotEnoughData != nil && ans.NotEnoughData != *exp.NotEnoughData {
		fail("not_enough_data: want %t, got %t", *exp.NotEnoughData, ans.NotEnoughData)
	}

	return failures
}
