package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantWords []string
		wantTypes []TokenType
	}{
		{
			name:      "plain question",
			input:     "What is 15 plus 27?",
			wantWords: []string{"what", "is", "15", "plus", "27"},
			wantTypes: []TokenType{WORD, WORD, NUMBER, WORD, NUMBER},
		},
		{
			name:      "non-ascii digits",
			input:     "٣ plus ４2",
			wantWords: []string{"٣", "plus", "４2"},
			wantTypes: []TokenType{NUMBER, WORD, NUMBER},
		},
		{
			name:      "empty input",
			input:     "",
			wantWords: []string{},
			wantTypes: []TokenType{},
		},
		{
			name:      "punctuation only",
			input:     "?!.,",
			wantWords: []string{},
			wantTypes: []TokenType{},
		},
		{
			name:      "symbols are kept",
			input:     "8 * 7 + 2 / 1",
			wantWords: []string{"8", "*", "7", "+", "2", "/", "1"},
			wantTypes: []TokenType{NUMBER, SYMBOL, NUMBER, SYMBOL, NUMBER, SYMBOL, NUMBER},
		},
		{
			name:      "standalone minus",
			input:     "10 - 4",
			wantWords: []string{"10", "-", "4"},
			wantTypes: []TokenType{NUMBER, SYMBOL, NUMBER},
		},
		{
			name:      "minus between digits",
			input:     "10-4",
			wantWords: []string{"10", "-", "4"},
			wantTypes: []TokenType{NUMBER, SYMBOL, NUMBER},
		},
		{
			name:      "hyphenated word splits",
			input:     "Twenty-one plus one",
			wantWords: []string{"twenty", "one", "plus", "one"},
			wantTypes: []TokenType{WORD, WORD, WORD, WORD},
		},
		{
			name:      "attached punctuation",
			input:     "is it 27?",
			wantWords: []string{"is", "it", "27"},
			wantTypes: []TokenType{WORD, WORD, NUMBER},
		},
		{
			name:      "mixed letters and digits",
			input:     "abc27 x",
			wantWords: []string{"abc27", "x"},
			wantTypes: []TokenType{WORD, WORD},
		},
	}

	tokenizer := NewQuestionTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenizer.Tokenize(tt.input)

			types := make([]TokenType, len(tokens))
			for i, tok := range tokens {
				types[i] = tok.Type
			}

			assert.Equal(t, tt.wantWords, Words(tokens))
			assert.Equal(t, tt.wantTypes, types)
		})
	}
}

func TestQuestionTokenizer_Reusable(t *testing.T) {
	tokenizer := NewQuestionTokenizer()

	first := tokenizer.Tokenize("two plus three")
	second := tokenizer.Tokenize("two plus three")

	assert.Equal(t, first, second)
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "WORD", WORD.String())
	assert.Equal(t, "NUMBER", NUMBER.String())
	assert.Equal(t, "SYMBOL", SYMBOL.String())
	assert.Equal(t, "UNKNOWN", TokenType(42).String())
}
