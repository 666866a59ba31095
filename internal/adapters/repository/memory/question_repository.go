package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

// QuestionRepository keeps questions in process memory. Stored questions are
// copied on the way in and out.
type QuestionRepository struct {
	mu        sync.RWMutex
	questions map[uuid.UUID]*domain.Question
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{questions: make(map[uuid.UUID]*domain.Question)}
}

var _ ports.QuestionRepository = (*QuestionRepository)(nil)

func (r *QuestionRepository) Save(ctx context.Context, question *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.questions[question.ID]; exists {
		return fmt.Errorf("question with ID %s already exists", question.ID)
	}

	r.questions[question.ID] = clone(question)
	return nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	question, exists := r.questions[id]
	if !exists {
		return nil, domain.ErrQuestionNotFound
	}
	return clone(question), nil
}

func (r *QuestionRepository) ListPublished(ctx context.Context, now time.Time, limit int) ([]*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	questions := []*domain.Question{}
	for _, q := range r.questions {
		if !q.IsPublished(now) || len(q.Choices) == 0 {
			continue
		}
		questions = append(questions, clone(q))
	}

	slices.SortFunc(questions, func(a, b *domain.Question) int {
		if c := b.PubDate.Compare(a.PubDate); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})

	if limit > 0 && len(questions) > limit {
		questions = questions[:limit]
	}
	return questions, nil
}

// Delete removes the question together with its choices.
func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.questions[id]; !exists {
		return domain.ErrQuestionNotFound
	}
	delete(r.questions, id)
	return nil
}

func clone(q *domain.Question) *domain.Question {
	c := *q
	c.Choices = slices.Clone(q.Choices)
	return &c
}
