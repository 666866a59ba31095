package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	service ports.QuestionService
	clock   ports.Clock
	log     *zap.Logger
}

func NewQuestionHandler(service ports.QuestionService, clock ports.Clock, log *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		service: service,
		clock:   clock,
		log:     log,
	}
}

type questionSummary struct {
	ID                   uuid.UUID `json:"id"`
	Text                 string    `json:"text"`
	PubDate              time.Time `json:"pub_date"`
	WasPublishedRecently bool      `json:"was_published_recently"`
}

type indexPage struct {
	Questions []indexEntry
}

type indexEntry struct {
	ID     uuid.UUID
	Text   string
	Recent bool
}

type resultsResponse struct {
	*domain.Question
	TotalVotes int64 `json:"total_votes"`
}

func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.LatestQuestions(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	now := h.clock.Now()
	page := indexPage{Questions: make([]indexEntry, 0, len(questions))}
	for _, q := range questions {
		page.Questions = append(page.Questions, indexEntry{
			ID:     q.ID,
			Text:   q.Text,
			Recent: q.WasPublishedRecently(now),
		})
	}

	if err := renderPage(w, "index.html", page); err != nil {
		h.internalError(w, r, err)
	}
}

func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	question, ok := h.publishedQuestion(w, r, false)
	if !ok {
		return
	}

	if err := renderPage(w, "detail.html", question); err != nil {
		h.internalError(w, r, err)
	}
}

func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	question, ok := h.publishedQuestion(w, r, false)
	if !ok {
		return
	}

	if err := renderPage(w, "results.html", question); err != nil {
		h.internalError(w, r, err)
	}
}

func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.LatestQuestions(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	now := h.clock.Now()
	resp := make([]questionSummary, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, questionSummary{
			ID:                   q.ID,
			Text:                 q.Text,
			PubDate:              q.PubDate,
			WasPublishedRecently: q.WasPublishedRecently(now),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	question, ok := h.publishedQuestion(w, r, true)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, question)
}

func (h *QuestionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	question, ok := h.publishedQuestion(w, r, true)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, resultsResponse{Question: question, TotalVotes: question.TotalVotes()})
}

// publishedQuestion resolves the {id} URL parameter and writes the error
// response itself when the question cannot be shown.
func (h *QuestionHandler) publishedQuestion(w http.ResponseWriter, r *http.Request, asJSON bool) (*domain.Question, bool) {
	id := chi.URLParam(r, "id")

	question, err := h.service.GetPublishedQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			if asJSON {
				writeJSONError(w, http.StatusNotFound, err.Error())
			} else {
				http.NotFound(w, r)
			}
			return nil, false
		}

		h.log.Error("failed to get question", zap.String("id", id), zap.Error(err))
		if asJSON {
			writeJSONError(w, http.StatusInternalServerError, "internal server error")
		} else {
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return nil, false
	}

	return question, true
}

func (h *QuestionHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
