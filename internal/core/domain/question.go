package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecencyWindow is how far back a question still counts as recently published.
const RecencyWindow = 24 * time.Hour

type Question struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	PubDate   time.Time `json:"pub_date"`
	Choices   []Choice  `json:"choices"`
	CreatedAt time.Time `json:"created_at"`
}

type Choice struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Text       string    `json:"text"`
	Votes      int64     `json:"votes"`
}

// WasPublishedRecently reports whether the question was published within the
// last day, counting both now and the instant exactly one day ago.
func (q *Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.After(now) && !q.PubDate.Before(now.Add(-RecencyWindow))
}

// IsPublished reports whether the question is visible at now.
func (q *Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

func (q *Question) TotalVotes() int64 {
	var total int64
	for _, c := range q.Choices {
		total += c.Votes
	}
	return total
}
