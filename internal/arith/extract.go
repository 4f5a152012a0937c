package arith

import (
	"regexp"

	"github.com/DjordjeVuckovic/reasoner/internal/token"
	"github.com/DjordjeVuckovic/reasoner/internal/types/operator"
)

// numberWords is closed: tens and ones are never compounded, so
// "twenty-one" yields 20 and 1 as separate values.
var numberWords = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"thirty": 30, "forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90, "hundred": 100,
}

var digitRun = regexp.MustCompile(`\p{Nd}+`)

// Extraction holds the numbers and operators found in a question, each in
// left-to-right discovery order.
type Extraction struct {
	Numbers   []Number
	Operators []operator.Operator
}

// Extract runs both extraction passes over the same tokens.
func Extract(tokens []token.Token, raw string) Extraction {
	return Extraction{
		Numbers:   ExtractNumbers(tokens, raw),
		Operators: ExtractOperators(tokens),
	}
}

// Evaluate evaluates the extracted numbers and operators.
func (e Extraction) Evaluate() (Result, error) {
	return Evaluate(e.Numbers, e.Operators)
}

// ExtractNumbers collects digit literals and number words in token order,
// then appends digit runs from the raw text whose value was not seen yet.
// The second pass recovers numbers glued to letters, such as "abc27".
func ExtractNumbers(tokens []token.Token, raw string) []Number {
	var numbers []Number

	for _, tok := range tokens {
		switch tok.Type {
		case token.NUMBER:
			if n, ok := ParseDigits(tok.Value); ok {
				numbers = append(numbers, n)
			}
		case token.WORD:
			if v, ok := numberWords[tok.Value]; ok {
				numbers = append(numbers, Int(v))
			}
		}
	}

	for _, match := range digitRun.FindAllString(raw, -1) {
		n, ok := ParseDigits(match)
		if !ok || containsValue(numbers, n) {
			continue
		}
		numbers = append(numbers, n)
	}

	return numbers
}

// ExtractOperators maps each token to at most one operator.
func ExtractOperators(tokens []token.Token) []operator.Operator {
	var ops []operator.Operator
	for _, tok := range tokens {
		if tok.Type == token.NUMBER {
			continue
		}
		if op, ok := operator.Lookup(tok.Value); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// IsNumberWord reports whether word belongs to the number-word vocabulary.
func IsNumberWord(word string) bool {
	_, ok := numberWords[word]
	return ok
}

func containsValue(numbers []Number, n Number) bool {
	for _, existing := range numbers {
		if existing.Equal(n) {
			return true
		}
	}
	return false
}
