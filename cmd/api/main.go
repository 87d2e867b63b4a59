package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/skillbridge-lambda/internal/container"
	"github.com/saulo-duarte/skillbridge-lambda/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("arquivo .env não encontrado, usando variáveis de ambiente")
	}

	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:           c.UserContainer.Handler,
		InterviewHandler:      c.InterviewContainer.Handler,
		QuizHandler:           c.QuizContainer.Handler,
		RecommendationHandler: c.RecommendationContainer.Handler,
		GoalHandler:           c.GoalContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(r).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("servidor escutando na porta %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("servidor encerrado com erro")
	}
}
