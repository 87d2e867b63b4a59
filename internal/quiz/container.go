package quiz

import (
	"log"
	"os"

	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(db *gorm.DB) *QuizContainer {
	var bank *Bank
	var err error

	if path := os.Getenv("QUIZ_QUESTIONS_PATH"); path != "" {
		bank, err = LoadBankFile(path)
	} else {
		bank, err = DefaultBank()
	}
	if err != nil {
		log.Fatalf("failed to load quiz question bank: %v", err)
	}

	repo := NewRepository(db)
	service := NewService(bank, repo)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
