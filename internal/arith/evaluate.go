package arith

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/reasoner/internal/types/operator"
)

// UndefinedDivision is the result text of a division by zero.
const UndefinedDivision = "undefined (division by zero)"

// ErrNotEnoughData is returned when fewer than two numbers or no operator
// were extracted.
var ErrNotEnoughData = errors.New("not enough data to compute")

// Expression is the positional recombination numbers[0] op[0] numbers[1].
type Expression struct {
	Left     Number            `json:"left"`
	Operator operator.Operator `json:"operator"`
	Right    Number            `json:"right"`
}

func (e Expression) String() string {
	return fmt.Sprintf("%s %s %s", e.Left, e.Operator.Word(), e.Right)
}

type Result struct {
	Expression Expression `json:"expression"`
	Value      Number     `json:"value"`
	Undefined  bool       `json:"undefined"`
}

// ValueString renders the value, or the division sentinel.
func (r Result) ValueString() string {
	if r.Undefined {
		return UndefinedDivision
	}
	return r.Value.String()
}

func (r Result) String() string {
	return fmt.Sprintf("%s = %s", r.Expression, r.ValueString())
}

// Evaluate applies operators[0] to numbers[0] and numbers[1]. Where the
// operator appeared relative to the numbers does not matter.
func Evaluate(numbers []Number, operators []operator.Operator) (Result, error) {
	if len(numbers) < 2 || len(operators) < 1 {
		return Result{}, fmt.Errorf("%w: found %d numbers and %d operators", ErrNotEnoughData, len(numbers), len(operators))
	}

	expr := Expression{Left: numbers[0], Operator: operators[0], Right: numbers[1]}
	res := Result{Expression: expr}

	switch expr.Operator {
	case operator.Add:
		res.Value = add(expr.Left, expr.Right)
	case operator.Subtract:
		res.Value = sub(expr.Left, expr.Right)
	case operator.Multiply:
		res.Value = mul(expr.Left, expr.Right)
	case operator.Divide:
		if expr.Right.IsZero() {
			res.Undefined = true
			return res, nil
		}
		res.Value = div(expr.Left, expr.Right)
	default:
		return Result{}, fmt.Errorf("evaluate: %w", expr.Operator.Validate())
	}

	return res, nil
}
