package interview

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/skillbridge-lambda/internal/config"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, CategoriesResponse{
		Categories: h.manager.Catalog().Categories(),
	})
}

func (h *Handler) CreateInterview(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req CreateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, session, err := h.manager.Create(req.Category)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			http.Error(w, "unknown category", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Erro ao criar sessão de entrevista")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.WithField("session_id", id.String()).Info("Sessão de entrevista criada")
	config.JSON(w, http.StatusCreated, InterviewResponse{
		ID:          id.String(),
		SessionView: session.Snapshot(),
	})
}

func (h *Handler) GetInterview(w http.ResponseWriter, r *http.Request) {
	id, session, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	config.JSON(w, http.StatusOK, InterviewResponse{
		ID:          id.String(),
		SessionView: session.Snapshot(),
	})
}

func (h *Handler) StartInterview(w http.ResponseWriter, r *http.Request) {
	id, session, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	if err := session.Start(); err != nil {
		if errors.Is(err, ErrAlreadyStarted) {
			http.Error(w, "interview already started", http.StatusConflict)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, InterviewResponse{
		ID:          id.String(),
		SessionView: session.Snapshot(),
	})
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, session, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := session.SubmitAnswer(req.Answer); err != nil {
		switch {
		case errors.Is(err, ErrNotAcceptingAnswers):
			http.Error(w, "interview is not accepting answers", http.StatusConflict)
		case errors.Is(err, ErrInterviewerBusy):
			http.Error(w, "interviewer is still responding", http.StatusConflict)
		default:
			log.WithError(err).Error("Erro ao processar resposta da entrevista")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, InterviewResponse{
		ID:          id.String(),
		SessionView: session.Snapshot(),
	})
}

func (h *Handler) RestartInterview(w http.ResponseWriter, r *http.Request) {
	id, session, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	session.Restart()
	config.JSON(w, http.StatusOK, InterviewResponse{
		ID:          id.String(),
		SessionView: session.Snapshot(),
	})
}

func (h *Handler) ChangeCategory(w http.ResponseWriter, r *http.Request) {
	id, session, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	var req ChangeCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := session.ChangeCategory(req.Category); err != nil {
		switch {
		case errors.Is(err, ErrCategoryLocked):
			http.Error(w, "category can only change before the interview starts", http.StatusConflict)
		case errors.Is(err, ErrUnknownCategory):
			http.Error(w, "unknown category", http.StatusBadRequest)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, InterviewResponse{
		ID:          id.String(),
		SessionView: session.Snapshot(),
	})
}

func (h *Handler) lookupSession(w http.ResponseWriter, r *http.Request) (uuid.UUID, *Session, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, "invalid interview id", http.StatusBadRequest)
		return uuid.Nil, nil, false
	}

	session, ok := h.manager.Get(id)
	if !ok {
		http.Error(w, "interview not found", http.StatusNotFound)
		return uuid.Nil, nil, false
	}
	return id, session, true
}
