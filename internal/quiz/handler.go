package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/skillbridge-lambda/internal/auth"
	"github.com/saulo-duarte/skillbridge-lambda/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string][]string{"categories": h.service.Categories(r.Context())})
}

func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		http.Error(w, "category required", http.StatusBadRequest)
		return
	}

	questions, err := h.service.Questions(r.Context(), category)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			http.Error(w, "quiz category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, QuestionsResponse{Category: category, Questions: questions})
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para submeter quiz")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para submeter quiz")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Submit(r.Context(), uuid.MustParse(claims.UserID), req)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			http.Error(w, "quiz category not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao corrigir e salvar quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) ListMyResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para listar resultados")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	results, err := h.service.ListResultsByUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar resultados de quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, results)
}
