package operator

import (
	"fmt"
	"strings"
)

// Operator is one of the four binary arithmetic operators a question can
// ask for.
//
// Usage:
//
//	op, ok := operator.Lookup("times") // operator.Multiply, true
//	op.Symbol()                        // "*"
type Operator string

const (
	Add      Operator = "add"
	Subtract Operator = "subtract"
	Multiply Operator = "multiply"
	Divide   Operator = "divide"
)

// vocabulary maps every recognized word or symbol to its operator.
// A token matches at most one operator.
var vocabulary = map[string]Operator{
	"plus": Add, "add": Add, "sum": Add, "and": Add, "+": Add,
	"minus": Subtract, "subtract": Subtract, "difference": Subtract, "less": Subtract, "-": Subtract,
	"times": Multiply, "multiply": Multiply, "product": Multiply, "x": Multiply, "*": Multiply, "×": Multiply,
	"divide": Divide, "divided": Divide, "over": Divide, "split": Divide, "/": Divide, "÷": Divide,
}

// Lookup resolves a single token to an operator, ignoring case.
func Lookup(word string) (Operator, bool) {
	op, ok := vocabulary[strings.ToLower(word)]
	return op, ok
}

func Parse(s string) (Operator, error) {
	op := Operator(strings.ToLower(s))
	switch op {
	case Add, Subtract, Multiply, Divide:
		return op, nil
	default:
		return "", fmt.Errorf("invalid operator: %s (must be add, subtract, multiply or divide)", s)
	}
}

// String returns the string representation of the operator
func (o Operator) String() string {
	return string(o)
}

// Symbol returns the arithmetic symbol of the operator.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// Word returns the phrase used when the operator is read aloud in an answer.
func (o Operator) Word() string {
	switch o {
	case Add:
		return "plus"
	case Subtract:
		return "minus"
	case Multiply:
		return "times"
	case Divide:
		return "divided by"
	default:
		return string(o)
	}
}

// Validate ensures the operator has a valid value
func (o Operator) Validate() error {
	_, err := Parse(string(o))
	return err
}

// MarshalText implements encoding.TextMarshaler for JSON and YAML output
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
