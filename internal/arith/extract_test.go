package arith

import (
	"testing"

	"github.com/DjordjeVuckovic/reasoner/internal/token"
	"github.com/DjordjeVuckovic/reasoner/internal/types/operator"
	"github.com/stretchr/testify/assert"
)

func numberStrings(numbers []Number) []string {
	out := make([]string, len(numbers))
	for i, n := range numbers {
		out[i] = n.String()
	}
	return out
}

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"digits", "What is 15 plus 27?", []string{"15", "27"}},
		{"words", "seven times eight", []string{"7", "8"}},
		{"mixed order kept", "hundred minus 3 and zero", []string{"100", "3", "0"}},
		{"duplicates from tokens kept", "5 plus 5", []string{"5", "5"}},
		{"glued digits recovered", "abc27 plus 3", []string{"3", "27"}},
		{"glued duplicate skipped", "x3 plus 3", []string{"3"}},
		{"compound word split", "twenty-one", []string{"20", "1"}},
		{"arabic-indic digits", "٣ plus ٤", []string{"3", "4"}},
		{"glued fullwidth digits recovered", "x１２ plus 3", []string{"3", "12"}},
		{"no numbers", "why is the sky blue", []string{}},
	}

	tokenizer := token.NewQuestionTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNumbers(tokenizer.Tokenize(tt.input), tt.input)
			assert.Equal(t, tt.want, numberStrings(got))
		})
	}
}

func TestExtractOperators(t *testing.T) {
	tests := []struct {
		input string
		want  []operator.Operator
	}{
		{"What is 15 plus 27?", []operator.Operator{operator.Add}},
		{"split 10 over 2", []operator.Operator{operator.Divide, operator.Divide}},
		{"4 * 3 - 1", []operator.Operator{operator.Multiply, operator.Subtract}},
		{"Divide 100 by 4", []operator.Operator{operator.Divide}},
		{"nothing here", nil},
	}

	tokenizer := token.NewQuestionTokenizer()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractOperators(tokenizer.Tokenize(tt.input)))
		})
	}
}

func TestIsNumberWord(t *testing.T) {
	assert.True(t, IsNumberWord("hundred"))
	assert.True(t, IsNumberWord("zero"))
	assert.False(t, IsNumberWord("thousand"))
	assert.False(t, IsNumberWord("twenty-one"))
}

func TestParseDigits(t *testing.T) {
	n, ok := ParseDigits("0042")
	assert.True(t, ok)
	assert.Equal(t, "42", n.String())

	_, ok = ParseDigits("4a")
	assert.False(t, ok)

	_, ok = ParseDigits("")
	assert.False(t, ok)

	for in, want := range map[string]string{
		"٤٢":  "42",
		"۱۰":  "10",
		"४२":  "42",
		"１２３": "123",
		"𝟗𝟗":  "99",
	} {
		n, ok := ParseDigits(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, n.String(), in)
	}

	_, ok = ParseDigits("٣x")
	assert.False(t, ok)
}
