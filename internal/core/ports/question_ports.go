package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
)

type QuestionRepository interface {
	Save(ctx context.Context, question *domain.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	// ListPublished returns questions published at or before now that have at
	// least one choice, newest first. A limit <= 0 returns all of them.
	ListPublished(ctx context.Context, now time.Time, limit int) ([]*domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateQuestionInput struct {
	Text    string
	PubDate time.Time
	Choices []string
}

type QuestionService interface {
	Create(ctx context.Context, input CreateQuestionInput) (*domain.Question, error)
	LatestQuestions(ctx context.Context) ([]*domain.Question, error)
	GetPublishedQuestion(ctx context.Context, id string) (*domain.Question, error)
}
