package recommendation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/skillbridge-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := h.service.Recommend(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmptyGoal) {
			http.Error(w, "goal is required", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to generate recommendation", http.StatusInternalServerError)
		log.WithError(err).Errorf("Failed to generate recommendation: %v", err)
		return
	}

	config.JSON(w, http.StatusOK, rec)
}
