package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/saulo-duarte/skillbridge-lambda/internal/auth"
	"github.com/saulo-duarte/skillbridge-lambda/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para registro")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, token, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, "email already registered", http.StatusConflict)
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, "name, email and password are required", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Erro ao registrar usuário")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.setAuthCookies(w, u)
	config.JSON(w, http.StatusCreated, AuthResponse{Token: token, User: toResponse(u)})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para login")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Erro ao autenticar usuário")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.setAuthCookies(w, u)
	config.JSON(w, http.StatusOK, AuthResponse{Token: token, User: toResponse(u)})
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "authorization code required", http.StatusBadRequest)
		return
	}

	u, token, err := h.service.GoogleLogin(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid authorization code", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Erro no login com Google")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.setAuthCookies(w, u)
	config.JSON(w, http.StatusOK, AuthResponse{Token: token, User: toResponse(u)})
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		http.Error(w, "refresh token required", http.StatusUnauthorized)
		return
	}

	token, err := h.service.RefreshToken(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserNotFound) {
			http.Error(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Erro ao renovar token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.cookie("jwt", token, accessTokenTTL))
	config.JSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao buscar usuário")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, toResponse(u))
}

func (h *Handler) setAuthCookies(w http.ResponseWriter, u *User) {
	accessToken, err := auth.GenerateJWT(u.ID.String(), "user", accessTokenTTL)
	if err == nil {
		http.SetCookie(w, h.cookie("jwt", accessToken, accessTokenTTL))
	}

	refreshToken, err := auth.GenerateJWT(u.ID.String(), "user", refreshTokenTTL)
	if err == nil {
		http.SetCookie(w, h.cookie("refresh_token", refreshToken, refreshTokenTTL))
	}
}

func (h *Handler) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
