package interview

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/categories", h.ListCategories)
	r.Post("/", h.CreateInterview)
	r.Get("/{id}", h.GetInterview)
	r.Post("/{id}/start", h.StartInterview)
	r.Post("/{id}/answers", h.SubmitAnswer)
	r.Post("/{id}/restart", h.RestartInterview)
	r.Put("/{id}/category", h.ChangeCategory)
	return r
}
