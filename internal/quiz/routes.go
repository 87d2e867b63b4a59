package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/skillbridge-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/categories", h.ListCategories)
	r.Get("/{category}", h.GetQuestions)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/submit", h.SubmitQuiz)
		r.Get("/my-results", h.ListMyResults)
	})
	return r
}
