package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/testutil/pgtest"
)

func newQuestion(text string, pubDate time.Time, choices ...string) *domain.Question {
	q := &domain.Question{ID: uuid.New(), Text: text, PubDate: pubDate, CreatedAt: time.Now()}
	for _, c := range choices {
		q.Choices = append(q.Choices, domain.Choice{ID: uuid.New(), QuestionID: q.ID, Text: c})
	}
	return q
}

func TestQuestionRepository(t *testing.T) {
	db := pgtest.NewDB(t)
	repo := postgres.NewQuestionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("save and get", func(t *testing.T) {
		q := newQuestion("What's new?", now.Add(-time.Hour), "Not much", "The sky")
		q.Choices[1].Votes = 2
		require.NoError(t, repo.Save(ctx, q))

		got, err := repo.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, q.Text, got.Text)
		assert.True(t, q.PubDate.Equal(got.PubDate))
		require.Len(t, got.Choices, 2)
		assert.Equal(t, "Not much", got.Choices[0].Text)
		assert.Equal(t, "The sky", got.Choices[1].Text)
		assert.Equal(t, int64(2), got.Choices[1].Votes)
		assert.Equal(t, int64(2), got.TotalVotes())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
	})

	t.Run("negative votes are rejected", func(t *testing.T) {
		q := newQuestion("bad", now, "a")
		q.Choices[0].Votes = -1
		assert.Error(t, repo.Save(ctx, q))

		_, err := repo.GetByID(ctx, q.ID)
		assert.ErrorIs(t, err, domain.ErrQuestionNotFound, "failed save must roll back")
	})
}

func TestListPublished(t *testing.T) {
	db := pgtest.NewDB(t)
	repo := postgres.NewQuestionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	for _, q := range []*domain.Question{
		newQuestion("past question 1", now.AddDate(0, 0, -30), "Choice 1"),
		newQuestion("past question 2", now.AddDate(0, 0, -20), "Choice 1"),
		newQuestion("published now", now, "Choice 1", "Choice 2"),
		newQuestion("future question", now.AddDate(0, 0, 1), "Choice 1"),
		newQuestion("no choices", now.AddDate(0, 0, -1)),
	} {
		require.NoError(t, repo.Save(ctx, q))
	}

	got, err := repo.ListPublished(ctx, now, 0)
	require.NoError(t, err)

	var names []string
	for _, q := range got {
		names = append(names, q.Text)
	}
	assert.Equal(t, []string{"published now", "past question 2", "past question 1"}, names)
	assert.Len(t, got[0].Choices, 2)

	limited, err := repo.ListPublished(ctx, now, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	empty, err := repo.ListPublished(ctx, now.AddDate(-1, 0, 0), 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestDeleteCascadesChoices(t *testing.T) {
	db := pgtest.NewDB(t)
	repo := postgres.NewQuestionRepository(db)
	ctx := context.Background()

	q := newQuestion("to delete", time.Now().Add(-time.Hour), "a", "b")
	require.NoError(t, repo.Save(ctx, q))

	require.NoError(t, repo.Delete(ctx, q.ID))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM choices WHERE question_id = $1", q.ID).Scan(&count))
	assert.Zero(t, count)

	assert.ErrorIs(t, repo.Delete(ctx, q.ID), domain.ErrQuestionNotFound)
}
