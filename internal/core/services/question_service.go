package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a clock backed by time.Now.
func SystemClock() ports.Clock {
	return systemClock{}
}

type questionService struct {
	repo       ports.QuestionRepository
	clock      ports.Clock
	indexLimit int
}

func NewQuestionService(repo ports.QuestionRepository, clock ports.Clock, indexLimit int) ports.QuestionService {
	return &questionService{
		repo:       repo,
		clock:      clock,
		indexLimit: indexLimit,
	}
}

func (s *questionService) Create(ctx context.Context, input ports.CreateQuestionInput) (*domain.Question, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domain.ErrEmptyQuestionText
	}

	now := s.clock.Now()
	pubDate := input.PubDate
	if pubDate.IsZero() {
		pubDate = now
	}

	question := &domain.Question{
		ID:        uuid.New(),
		Text:      text,
		PubDate:   pubDate,
		CreatedAt: now,
	}

	for _, choiceText := range input.Choices {
		choiceText = strings.TrimSpace(choiceText)
		if choiceText == "" {
			continue
		}
		question.Choices = append(question.Choices, domain.Choice{
			ID:         uuid.New(),
			QuestionID: question.ID,
			Text:       choiceText,
		})
	}

	if err := s.repo.Save(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

func (s *questionService) LatestQuestions(ctx context.Context) ([]*domain.Question, error) {
	questions, err := s.repo.ListPublished(ctx, s.clock.Now(), s.indexLimit)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []*domain.Question{}
	}
	return questions, nil
}

// GetPublishedQuestion hides questions that do not exist, cannot be parsed or
// are scheduled for the future behind the same not found error.
func (s *questionService) GetPublishedQuestion(ctx context.Context, id string) (*domain.Question, error) {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	question, err := s.repo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if !question.IsPublished(s.clock.Now()) {
		return nil, domain.ErrQuestionNotFound
	}

	return question, nil
}
