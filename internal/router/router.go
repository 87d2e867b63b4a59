package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/skillbridge-lambda/internal/auth"
	"github.com/saulo-duarte/skillbridge-lambda/internal/goal"
	"github.com/saulo-duarte/skillbridge-lambda/internal/interview"
	"github.com/saulo-duarte/skillbridge-lambda/internal/middlewares"
	"github.com/saulo-duarte/skillbridge-lambda/internal/quiz"
	"github.com/saulo-duarte/skillbridge-lambda/internal/recommendation"
	"github.com/saulo-duarte/skillbridge-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler           *user.Handler
	InterviewHandler      *interview.Handler
	QuizHandler           *quiz.Handler
	RecommendationHandler *recommendation.Handler
	GoalHandler           *goal.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Mount("/interviews", interview.Routes(cfg.InterviewHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/ai", recommendation.Routes(cfg.RecommendationHandler))
		r.Mount("/career-goals", goal.Routes(cfg.GoalHandler))
	})
	return r
}
