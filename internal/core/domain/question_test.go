package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWasPublishedRecently(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pubDate time.Time
		want    bool
	}{
		{"future question", now.AddDate(0, 0, 30), false},
		{"one second in the future", now.Add(time.Second), false},
		{"old question", now.Add(-24*time.Hour - time.Second), false},
		{"exactly one day old", now.Add(-24 * time.Hour), true},
		{"recent question", now.Add(-23*time.Hour - 59*time.Minute - 59*time.Second), true},
		{"published now", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{PubDate: tt.pubDate}
			assert.Equal(t, tt.want, q.WasPublishedRecently(now))
		})
	}
}

func TestWasPublishedRecentlyAcrossTimezones(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	q := Question{PubDate: now.Add(-time.Hour).In(tokyo)}
	assert.True(t, q.WasPublishedRecently(now))

	q = Question{PubDate: now.Add(time.Hour).In(tokyo)}
	assert.False(t, q.WasPublishedRecently(now))
}

func TestIsPublished(t *testing.T) {
	now := time.Now()

	assert.True(t, (&Question{PubDate: now}).IsPublished(now))
	assert.True(t, (&Question{PubDate: now.AddDate(-1, 0, 0)}).IsPublished(now))
	assert.False(t, (&Question{PubDate: now.Add(time.Nanosecond)}).IsPublished(now))
}

func TestTotalVotes(t *testing.T) {
	q := Question{Choices: []Choice{{Votes: 3}, {Votes: 0}, {Votes: 4}}}
	assert.Equal(t, int64(7), q.TotalVotes())
	assert.Zero(t, (&Question{}).TotalVotes())
}
