package token

import (
	"strings"
	"unicode"
)

// QuestionTokenizer lowercases a question and splits it into words, digit
// runs and arithmetic symbols. Any other rune acts as a separator.
type QuestionTokenizer struct {
	input []rune
	pos   int
}

func NewQuestionTokenizer() *QuestionTokenizer {
	return &QuestionTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `What is 15 plus 27?` -> what, is, 15, plus, 27
func (t *QuestionTokenizer) Tokenize(input string) []Token {
	t.input = []rune(strings.ToLower(input))
	t.pos = 0

	var tokens []Token

	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case isWordChar(ch):
			tokens = append(tokens, t.readWord())
		case isOperatorSymbol(ch):
			tokens = append(tokens, Token{Type: SYMBOL, Value: string(ch)})
			t.pos++
		case ch == '-' && !t.joinsLetters():
			tokens = append(tokens, Token{Type: SYMBOL, Value: "-"})
			t.pos++
		default:
			t.pos++
		}
	}

	return tokens
}

func (t *QuestionTokenizer) readWord() Token {
	start := t.pos
	digits := true
	for t.pos < len(t.input) && isWordChar(t.input[t.pos]) {
		if !unicode.IsDigit(t.input[t.pos]) {
			digits = false
		}
		t.pos++
	}

	word := string(t.input[start:t.pos])
	if digits {
		return Token{Type: NUMBER, Value: word}
	}
	return Token{Type: WORD, Value: word}
}

// joinsLetters reports whether the hyphen at the current position sits
// between two letters, as in "twenty-one".
func (t *QuestionTokenizer) joinsLetters() bool {
	if t.pos == 0 || t.pos+1 >= len(t.input) {
		return false
	}
	return unicode.IsLetter(t.input[t.pos-1]) && unicode.IsLetter(t.input[t.pos+1])
}

func isWordChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isOperatorSymbol(ch rune) bool {
	switch ch {
	case '+', '*', '/', '×', '÷':
		return true
	default:
		return false
	}
}
