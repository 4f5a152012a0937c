package token

type TokenType int

const (
	WORD TokenType = iota
	NUMBER
	SYMBOL
)

func (t TokenType) String() string {
	switch t {
	case WORD:
		return "WORD"
	case NUMBER:
		return "NUMBER"
	case SYMBOL:
		return "SYMBOL"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lowercase lexical unit of a question with its type.
type Token struct {
	Type  TokenType
	Value string
}

// Words returns the token values in order.
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Value
	}
	return words
}
