package recommendation

import (
	"context"
	"log"
)

type RecommendationContainer struct {
	Handler *Handler
}

func NewRecommendationContainer() *RecommendationContainer {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("erro ao inicializar provider Gemini: %v", err)
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &RecommendationContainer{
		Handler: handler,
	}
}
