package classify

import "fmt"

// Category is a topical bucket a question can fall into.
type Category string

const (
	Mathematical Category = "mathematical"
	Scientific   Category = "scientific"
	Practical    Category = "practical"
	Logical      Category = "logical"
	Causal       Category = "causal"
	Temporal     Category = "temporal"
	Analytical   Category = "analytical"
	General      Category = "general"
)

var known = map[Category]bool{
	Mathematical: true,
	Scientific:   true,
	Practical:    true,
	Logical:      true,
	Causal:       true,
	Temporal:     true,
	Analytical:   true,
	General:      true,
}

func Parse(s string) (Category, error) {
	c := Category(s)
	if !known[c] {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}

// ParseAll parses a list of category names, keeping their order.
func ParseAll(names []string) ([]Category, error) {
	out := make([]Category, 0, len(names))
	for _, name := range names {
		c, err := Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (c Category) String() string {
	return string(c)
}
