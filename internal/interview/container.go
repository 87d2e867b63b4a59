package interview

import (
	"log"
	"os"
	"time"
)

const defaultThinkingDelay = 2 * time.Second

type InterviewContainer struct {
	Handler *Handler
	Manager *Manager
}

func NewInterviewContainer() *InterviewContainer {
	var catalog *Catalog
	var err error

	if path := os.Getenv("INTERVIEW_SCENARIOS_PATH"); path != "" {
		catalog, err = LoadCatalogFile(path)
	} else {
		catalog, err = DefaultCatalog()
	}
	if err != nil {
		log.Fatalf("failed to load interview scenarios: %v", err)
	}

	delay := defaultThinkingDelay
	if raw := os.Getenv("INTERVIEW_THINKING_DELAY"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			delay = parsed
		}
	}

	manager := NewManager(catalog, NewEvaluator(), SessionConfig{ThinkingDelay: delay})
	handler := NewHandler(manager)

	return &InterviewContainer{
		Handler: handler,
		Manager: manager,
	}
}
