package arith

import (
	"math"
	"math/big"
	"strconv"
	"unicode"
)

// Number is either an exact integer of any size or a float64 produced by
// division. The zero value is the integer 0.
type Number struct {
	exact *big.Int
	float float64
	isFlt bool
}

func Int(i int64) Number {
	return Number{exact: big.NewInt(i)}
}

func Float(f float64) Number {
	return Number{float: f, isFlt: true}
}

// ParseDigits parses a run of decimal digits from any script, such as
// "42", "٤٢" or "４２", as an exact integer.
func ParseDigits(s string) (Number, bool) {
	if s == "" {
		return Number{}, false
	}
	ascii := make([]byte, 0, len(s))
	for _, ch := range s {
		d, ok := digitValue(ch)
		if !ok {
			return Number{}, false
		}
		ascii = append(ascii, '0'+d)
	}
	v, ok := new(big.Int).SetString(string(ascii), 10)
	if !ok {
		return Number{}, false
	}
	return Number{exact: v}, true
}

// digitValue maps a decimal digit rune to its value. Every Nd range starts
// at a zero digit and runs in blocks of ten.
func digitValue(ch rune) (byte, bool) {
	if ch >= '0' && ch <= '9' {
		return byte(ch - '0'), true
	}
	for _, r := range unicode.Nd.R16 {
		if lo, hi := rune(r.Lo), rune(r.Hi); ch >= lo && ch <= hi {
			return byte((ch - lo) % 10), true
		}
	}
	for _, r := range unicode.Nd.R32 {
		if lo, hi := rune(r.Lo), rune(r.Hi); ch >= lo && ch <= hi {
			return byte((ch - lo) % 10), true
		}
	}
	return 0, false
}

func (n Number) IsInt() bool {
	return !n.isFlt
}

func (n Number) bigInt() *big.Int {
	if n.exact == nil {
		return new(big.Int)
	}
	return n.exact
}

// Int64 returns the value when it is an integer that fits in int64.
func (n Number) Int64() (int64, bool) {
	if n.isFlt || !n.bigInt().IsInt64() {
		return 0, false
	}
	return n.bigInt().Int64(), true
}

func (n Number) Float64() float64 {
	if n.isFlt {
		return n.float
	}
	f, _ := new(big.Float).SetInt(n.bigInt()).Float64()
	return f
}

func (n Number) IsZero() bool {
	if n.isFlt {
		return n.float == 0
	}
	return n.bigInt().Sign() == 0
}

// Equal compares by value; an integer and a float are equal when the float
// holds exactly that integer.
func (n Number) Equal(o Number) bool {
	if n.IsInt() && o.IsInt() {
		return n.bigInt().Cmp(o.bigInt()) == 0
	}
	return n.Float64() == o.Float64()
}

func (n Number) String() string {
	if !n.isFlt {
		return n.bigInt().String()
	}
	if math.Abs(n.float) < 1e21 {
		return strconv.FormatFloat(n.float, 'f', -1, 64)
	}
	return strconv.FormatFloat(n.float, 'g', -1, 64)
}

func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func add(a, b Number) Number {
	if a.IsInt() && b.IsInt() {
		return Number{exact: new(big.Int).Add(a.bigInt(), b.bigInt())}
	}
	return Float(a.Float64() + b.Float64())
}

func sub(a, b Number) Number {
	if a.IsInt() && b.IsInt() {
		return Number{exact: new(big.Int).Sub(a.bigInt(), b.bigInt())}
	}
	return Float(a.Float64() - b.Float64())
}

func mul(a, b Number) Number {
	if a.IsInt() && b.IsInt() {
		return Number{exact: new(big.Int).Mul(a.bigInt(), b.bigInt())}
	}
	return Float(a.Float64() * b.Float64())
}

// div assumes b is non-zero.
func div(a, b Number) Number {
	if a.IsInt() && b.IsInt() {
		f, _ := new(big.Rat).SetFrac(a.bigInt(), b.bigInt()).Float64()
		return Float(f)
	}
	return Float(a.Float64() / b.Float64())
}
