package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/skillbridge-lambda/internal/auth"
	"github.com/saulo-duarte/skillbridge-lambda/internal/config"
	"github.com/saulo-duarte/skillbridge-lambda/internal/goal"
	"github.com/saulo-duarte/skillbridge-lambda/internal/interview"
	"github.com/saulo-duarte/skillbridge-lambda/internal/quiz"
	"github.com/saulo-duarte/skillbridge-lambda/internal/recommendation"
	"github.com/saulo-duarte/skillbridge-lambda/internal/user"
)

type Container struct {
	UserContainer           *user.UserContainer
	InterviewContainer      *interview.InterviewContainer
	QuizContainer           *quiz.QuizContainer
	RecommendationContainer *recommendation.RecommendationContainer
	GoalContainer           *goal.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&quiz.QuizResult{},
		&goal.CareerGoal{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	return &Container{
		UserContainer:           user.NewUserContainer(config.DB),
		InterviewContainer:      interview.NewInterviewContainer(),
		QuizContainer:           quiz.NewQuizContainer(config.DB),
		RecommendationContainer: recommendation.NewRecommendationContainer(),
		GoalContainer:           goal.NewContainer(config.DB),
	}
}
