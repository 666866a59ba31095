package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(questionHandler *QuestionHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Get("/", questionHandler.Index)
	r.Get("/{id}", questionHandler.Detail)
	r.Get("/{id}/", questionHandler.Detail)
	r.Get("/{id}/results", questionHandler.Results)
	r.Get("/{id}/results/", questionHandler.Results)

	r.Route("/api", func(r chi.Router) {
		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.ListQuestions)
			r.Get("/{id}", questionHandler.GetQuestion)
			r.Get("/{id}/results", questionHandler.GetResults)
		})
	})

	return r
}
