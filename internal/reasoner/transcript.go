package reasoner

import (
	"time"

	"github.com/DjordjeVuckovic/reasoner/internal/classify"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Entry struct {
	ID       uuid.UUID `json:"id"`
	AskedAt  time.Time `json:"asked_at"`
	Question string    `json:"question"`
	Answer   Answer    `json:"answer"`
}

// Transcript is the append-only record of a session's answers.
type Transcript struct {
	entries []Entry
	now     func() time.Time
}

func NewTranscript() *Transcript {
	return &Transcript{now: time.Now}
}

func (t *Transcript) Append(ans Answer) Entry {
	id := ans.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	e := Entry{ID: id, AskedAt: t.now(), Question: ans.Question, Answer: ans}
	t.entries = append(t.entries, e)
	return e
}

// Entries returns a copy of the recorded entries, oldest first.
func (t *Transcript) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

func (t *Transcript) Len() int {
	return len(t.entries)
}

type Stats struct {
	Total         int                       `json:"total"`
	Computed      int                       `json:"computed"`
	NotEnoughData int                       `json:"not_enough_data"`
	ByCategory    map[classify.Category]int `json:"by_category"`
}

func (t *Transcript) Stats() Stats {
	return Stats{
		Total:         len(t.entries),
		Computed:      lo.CountBy(t.entries, func(e Entry) bool { return e.Answer.Computed() }),
		NotEnoughData: lo.CountBy(t.entries, func(e Entry) bool { return e.Answer.NotEnoughData }),
		ByCategory: lo.CountValuesBy(t.entries, func(e Entry) classify.Category {
			return e.Answer.Category
		}),
	}
}
