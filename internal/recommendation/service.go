package recommendation

import (
	"context"
	"errors"
	"strings"
)

var ErrEmptyGoal = errors.New("goal is required")

type Service interface {
	Recommend(ctx context.Context, req RecommendRequest) (*Recommendation, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) Recommend(ctx context.Context, req RecommendRequest) (*Recommendation, error) {
	if strings.TrimSpace(req.Goal) == "" {
		return nil, ErrEmptyGoal
	}

	system := systemPrompt
	user := BuildUserPrompt(req)

	return s.provider.SendPrompt(ctx, system, user)
}
