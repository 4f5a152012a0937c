package reasoner

import (
	"errors"
	"log/slog"
	"strings"
	"unicode"

	"github.com/DjordjeVuckovic/reasoner/internal/arith"
	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/DjordjeVuckovic/reasoner/internal/logging"
	"github.com/DjordjeVuckovic/reasoner/internal/respond"
	"github.com/DjordjeVuckovic/reasoner/internal/token"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DemoQuestions are answered by the demo command.
var DemoQuestions = []string{
	"What is 15 plus 27?",
	"If it rains, should I bring an umbrella?",
	"Why does the sun rise in the east?",
	"Can humans breathe underwater without equipment?",
	"What happens if you mix vinegar and baking soda?",
}

// Reasoner runs a question through tokenize, classify, compute and respond.
type Reasoner struct {
	tokenizer  token.Tokenizer
	classifier *classify.Classifier
	responder  *respond.Responder
	transcript *Transcript
	logger     *slog.Logger
}

func New(tokenizer token.Tokenizer, classifier *classify.Classifier, responder *respond.Responder, logger *slog.Logger) *Reasoner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Reasoner{
		tokenizer:  tokenizer,
		classifier: classifier,
		responder:  responder,
		transcript: NewTranscript(),
		logger:     logger,
	}
}

// NewDefault builds a reasoner from the built-in rules and knowledge base
// with a deterministic responder.
func NewDefault(logger *slog.Logger) (*Reasoner, error) {
	classifier, err := classify.NewDefault()
	if err != nil {
		return nil, err
	}
	kb, err := respond.DefaultKnowledge()
	if err != nil {
		return nil, err
	}
	return New(token.NewQuestionTokenizer(), classifier, respond.New(kb, nil), logger), nil
}

// Answer computes the answer for a question without recording it.
// Identical questions always produce identical answers.
func (r *Reasoner) Answer(question string) Answer {
	tokens := r.tokenizer.Tokenize(question)
	r.logger.Debug("Tokenized question", "tokens", token.Words(tokens))

	categories := r.classifier.Classify(tokens, question)
	r.logger.Debug("Classified question", "categories", categories)

	ans := Answer{Question: question, Categories: categories}
	top := categories[0]

	var resp respond.Response
	if top == classify.Mathematical {
		ext := arith.Extract(tokens, question)
		res, err := ext.Evaluate()
		next, wordsOnly := fallthroughCategory(categories, ext, question)
		switch {
		case err != nil && wordsOnly:
			r.logger.Debug("Number words without arithmetic", "category", next)
			resp = r.responder.Respond(next, tokens, question)
		case errors.Is(err, arith.ErrNotEnoughData):
			r.logger.Debug("Arithmetic not computable", "error", err)
			resp = r.responder.NotEnoughData()
			ans.NotEnoughData = true
		case err != nil:
			r.logger.Warn("Arithmetic evaluation failed", "error", err)
			resp = r.responder.NotEnoughData()
			ans.NotEnoughData = true
		default:
			r.logger.Debug("Evaluated expression", "expression", res.Expression.String(), "value", res.ValueString())
			resp = r.responder.Math(res)
			ans.Result = &res
		}
	} else {
		resp = r.responder.Respond(top, tokens, question)
	}

	ans.Category = resp.Category
	ans.Label = resp.Label
	ans.Text = resp.Text
	return ans
}

// fallthroughCategory picks the category that answers a question whose only
// numeric signal is number words: no digits and no operator. Analytical and
// general matches do not qualify, so "What is seven?" stays not computable.
func fallthroughCategory(categories []classify.Category, ext arith.Extraction, question string) (classify.Category, bool) {
	if len(ext.Operators) > 0 || strings.IndexFunc(question, unicode.IsDigit) >= 0 {
		return "", false
	}
	return lo.Find(categories[1:], func(c classify.Category) bool {
		return c != classify.Analytical && c != classify.General
	})
}

// Ask answers a question and appends it to the transcript.
func (r *Reasoner) Ask(question string) Answer {
	ans := r.Answer(question)
	ans.ID = uuid.New()
	r.transcript.Append(ans)

	r.logger.Info("Answered question", "id", ans.ID, "category", ans.Category)
	return ans
}

// Demo asks every demo question in order.
func (r *Reasoner) Demo() []Answer {
	answers := make([]Answer, 0, len(DemoQuestions))
	for _, q := range DemoQuestions {
		answers = append(answers, r.Ask(q))
	}
	return answers
}

func (r *Reasoner) Transcript() *Transcript {
	return r.transcript
}
