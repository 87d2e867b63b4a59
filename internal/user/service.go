package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/skillbridge-lambda/internal/auth"
	"github.com/saulo-duarte/skillbridge-lambda/internal/config"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, error)
	GoogleLogin(ctx context.Context, code string) (*User, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository, oauthConfig *oauth2.Config) UserService {
	return &userService{
		repo:        repo,
		oauthConfig: oauthConfig,
	}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	log := config.WithContext(ctx)
	log.Info("Registrando novo usuário...")

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return nil, "", ErrInvalidCredentials
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		log.WithError(err).Error("Erro ao consultar usuário por email")
		return nil, "", err
	}
	if existing != nil {
		log.Warn("Tentativa de registro com email já utilizado")
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Erro ao gerar hash da senha")
		return nil, "", err
	}

	u := &User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Provider:     ProviderLocal,
	}

	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Erro ao criar usuário")
		return nil, "", err
	}

	token, err := auth.GenerateJWT(u.ID.String(), "user", accessTokenTTL)
	if err != nil {
		return nil, "", err
	}

	log.WithField("user_id", u.ID.String()).Info("Usuário registrado com sucesso")
	return u, token, nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	log := config.WithContext(ctx)
	log.Info("Autenticando usuário...")

	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		log.WithError(err).Error("Erro ao consultar usuário por email")
		return nil, "", err
	}
	if u == nil || u.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("Senha incorreta no login")
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID.String(), "user", accessTokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *userService) GoogleLogin(ctx context.Context, code string) (*User, string, error) {
	log := config.WithContext(ctx)
	log.Info("Autenticando usuário via Google...")

	oauthToken, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Erro ao trocar código OAuth por token")
		return nil, "", ErrInvalidCredentials
	}

	info, err := s.fetchGoogleUserInfo(ctx, oauthToken)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar dados do usuário no Google")
		return nil, "", err
	}

	u, err := s.repo.GetByEmail(strings.ToLower(info.Email))
	if err != nil {
		return nil, "", err
	}

	encryptedAccess, err := config.Encrypt(oauthToken.AccessToken)
	if err != nil {
		log.WithError(err).Error("Erro ao criptografar access token do Google")
		return nil, "", err
	}
	encryptedRefresh := ""
	if oauthToken.RefreshToken != "" {
		encryptedRefresh, err = config.Encrypt(oauthToken.RefreshToken)
		if err != nil {
			return nil, "", err
		}
	}

	if u == nil {
		u = &User{
			ID:                         uuid.New(),
			Name:                       info.Name,
			Email:                      strings.ToLower(info.Email),
			Provider:                   ProviderGoogle,
			EncryptedGoogleAccessToken: encryptedAccess,
		}
		if encryptedRefresh != "" {
			u.EncryptedGoogleRefreshToken = encryptedRefresh
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Erro ao criar usuário do Google")
			return nil, "", err
		}
	} else {
		u.EncryptedGoogleAccessToken = encryptedAccess
		if encryptedRefresh != "" {
			u.EncryptedGoogleRefreshToken = encryptedRefresh
		}
		if err := s.repo.Update(u); err != nil {
			log.WithError(err).Error("Erro ao atualizar tokens do usuário")
			return nil, "", err
		}
	}

	token, err := auth.GenerateJWT(u.ID.String(), "user", accessTokenTTL)
	if err != nil {
		return nil, "", err
	}

	log.WithField("user_id", u.ID.String()).Info("Login com Google concluído")
	return u, token, nil
}

func (s *userService) fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("google userinfo request failed")
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, errors.New("google userinfo without email")
	}
	return &info, nil
}

func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	log := config.WithContext(ctx)

	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		log.WithError(err).Warn("Refresh token inválido")
		return "", ErrInvalidCredentials
	}

	u, err := s.repo.GetByID(claims.UserID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	return auth.GenerateJWT(u.ID.String(), claims.Role, accessTokenTTL)
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
