package respond

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/reasoner/internal/arith"
	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/DjordjeVuckovic/reasoner/internal/token"
	"github.com/samber/lo"
)

const (
	FallbackMessage      = "Insufficient information to answer that question."
	NotEnoughDataMessage = "Insufficient information to compute an answer."

	MathLabel = "Mathematical answer"
)

// shouldOptions are the alternatives for "should" questions without a fact.
var shouldOptions = []string{
	"The evidence suggests proceeding would be beneficial.",
	"Potential risks outweigh benefits in this case.",
	"Consider the broader implications first.",
	"This aligns with generally accepted principles.",
}

var temporalMarkers = []string{"before", "after", "when", "until", "since", "while", "time"}

// Response is one answer line split into its label and text.
type Response struct {
	Category classify.Category `json:"category"`
	Label    string            `json:"label,omitempty"`
	Text     string            `json:"text"`
}

func (r Response) Line() string {
	if r.Label == "" {
		return r.Text
	}
	return r.Label + ": " + r.Text
}

// Responder turns a category and a question into templated text. It never
// computes anything; arithmetic results are only formatted here.
type Responder struct {
	kb      *KnowledgeBase
	chooser Chooser
}

func New(kb *KnowledgeBase, chooser Chooser) *Responder {
	if chooser == nil {
		chooser = FirstChooser{}
	}
	return &Responder{kb: kb, chooser: chooser}
}

func (r *Responder) Math(res arith.Result) Response {
	return Response{Category: classify.Mathematical, Label: MathLabel, Text: res.String()}
}

func (r *Responder) NotEnoughData() Response {
	return Response{Category: classify.Mathematical, Text: NotEnoughDataMessage}
}

func (r *Responder) Fallback() Response {
	return Response{Category: classify.General, Text: FallbackMessage}
}

// Respond answers a non-arithmetic category.
func (r *Responder) Respond(cat classify.Category, tokens []token.Token, raw string) Response {
	words := token.Words(tokens)

	if fact, ok := r.kb.Lookup(cat, words, raw); ok {
		return Response{Category: cat, Label: fact.Label, Text: fact.Text}
	}

	switch cat {
	case classify.Scientific:
		return Response{Category: cat, Label: "Scientific analysis", Text: "No specific scientific knowledge applies."}
	case classify.Practical:
		return r.practical(words)
	case classify.Logical:
		return Response{Category: cat, Label: "Logical reasoning", Text: logical(words)}
	case classify.Causal:
		return Response{Category: cat, Label: "Causal reasoning", Text: causal(words)}
	case classify.Temporal:
		return Response{Category: cat, Label: "Temporal reasoning", Text: temporal(words)}
	case classify.Analytical:
		return Response{Category: cat, Label: "Analytical reasoning", Text: analytical(words)}
	default:
		return r.Fallback()
	}
}

func (r *Responder) practical(words []string) Response {
	resp := Response{Category: classify.Practical, Label: "Practical reasoning"}
	switch {
	case lo.Contains(words, "should"):
		i := r.chooser.Choose(len(shouldOptions))
		resp.Text = shouldOptions[i%len(shouldOptions)]
	case lo.Contains(words, "can"):
		resp.Text = "This appears feasible within current constraints."
	default:
		resp.Text = "Real-world applicability considered."
	}
	return resp
}

func logical(words []string) string {
	has := func(ws ...string) bool { return lo.Every(words, ws) }
	switch {
	case has("if", "then"):
		return "Conditional statement detected, evaluating premises and conclusion."
	case has("all", "are"), has("every"):
		return "Universal quantification detected, checking for counterexamples."
	case has("some", "are"):
		return "Existential quantification detected, seeking instances."
	case has("not", "but"):
		return "Contradiction pattern detected, resolving the logical conflict."
	case has("therefore"):
		return "Inference detected, evaluating premises and conclusions."
	default:
		return "Applying propositional logic to evaluate truth conditions."
	}
}

func causal(words []string) string {
	if lo.Contains(words, "why") {
		rest := lo.Without(words, "why")
		phenomenon := strings.Join(rest[:min(4, len(rest))], " ")
		if phenomenon == "" {
			return "Seeking an explanation, examining potential causes and effects."
		}
		return fmt.Sprintf("Seeking explanation for %q, examining potential causes and effects.", phenomenon)
	}
	if lo.Some(words, []string{"cause", "causes", "effect"}) {
		return "Analyzing cause-effect relationships and potential correlations."
	}
	return "Evaluating explanatory relationships."
}

func temporal(words []string) string {
	marker, ok := lo.Find(words, func(w string) bool { return lo.Contains(temporalMarkers, w) })
	if !ok {
		return "No explicit temporal markers found."
	}
	return fmt.Sprintf("Time relationship %q indicates sequential reasoning.", marker)
}

func analytical(words []string) string {
	var kind string
	switch {
	case lo.Some(words, []string{"what", "which"}):
		kind = "Definition or identification"
	case lo.Contains(words, "how"):
		kind = "Process explanation"
	case lo.Contains(words, "where"):
		kind = "Spatial analysis"
	case lo.Contains(words, "who"):
		kind = "Identity"
	default:
		kind = "Open"
	}
	return kind + " question, applying structured analysis."
}
