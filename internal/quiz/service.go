package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/saulo-duarte/skillbridge-lambda/internal/config"
)

var ErrUnknownCategory = errors.New("unknown quiz category")

var positiveFeedback = []string{
	"Great job! You nailed this one!",
	"Perfect answer! You clearly understand this concept.",
	"Excellent! Your knowledge shines here.",
	"Spot on! You've mastered this topic.",
	"Correct! You're doing amazing!",
}

var correctiveFeedback = []string{
	`Almost there! The correct answer is "%s". Keep practicing!`,
	`Not quite right. Remember: "%s". You'll get it next time!`,
	`Good attempt! The right answer was "%s". Review this concept.`,
	`Don't worry! The correct answer is "%s". Practice makes perfect!`,
	`Close! The answer we were looking for is "%s". Keep learning!`,
}

type QuizService interface {
	Categories(ctx context.Context) []string
	Questions(ctx context.Context, category string) ([]Question, error)
	Submit(ctx context.Context, userID uuid.UUID, req SubmitQuizRequest) (*SubmitQuizResponse, error)
	ListResultsByUser(ctx context.Context, userID string) ([]*QuizResult, error)
}

type quizService struct {
	bank *Bank
	repo QuizRepository
	pick func(n int) int
}

func NewService(bank *Bank, repo QuizRepository) QuizService {
	return &quizService{bank: bank, repo: repo, pick: rand.Intn}
}

// NewServiceWithPick fixa a escolha das frases de feedback nos testes.
func NewServiceWithPick(bank *Bank, repo QuizRepository, pick func(n int) int) QuizService {
	return &quizService{bank: bank, repo: repo, pick: pick}
}

func (s *quizService) Categories(ctx context.Context) []string {
	return s.bank.Categories()
}

func (s *quizService) Questions(ctx context.Context, category string) ([]Question, error) {
	questions, ok := s.bank.Questions(category)
	if !ok {
		return nil, ErrUnknownCategory
	}
	return questions, nil
}

func (s *quizService) Submit(ctx context.Context, userID uuid.UUID, req SubmitQuizRequest) (*SubmitQuizResponse, error) {
	log := config.WithContext(ctx)
	log.WithField("category", req.Category).Info("Corrigindo quiz...")

	questions, ok := s.bank.Questions(req.Category)
	if !ok {
		log.Warnf("Categoria de quiz desconhecida: %s", req.Category)
		return nil, ErrUnknownCategory
	}

	correct := 0
	results := make([]QuestionResult, len(questions))
	for i, q := range questions {
		userAnswer := "Not answered"
		if i < len(req.Answers) && req.Answers[i] != "" {
			userAnswer = req.Answers[i]
		}

		isCorrect := userAnswer == q.Answer
		if isCorrect {
			correct++
		}

		results[i] = QuestionResult{
			Question:      q.Question,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.Answer,
			IsCorrect:     isCorrect,
			Feedback:      s.feedbackFor(isCorrect, q.Answer),
		}
	}

	breakdown, err := json.Marshal(results)
	if err != nil {
		log.WithError(err).Error("Erro ao serializar detalhamento do quiz")
		return nil, err
	}

	result := &QuizResult{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  req.Category,
		Score:     correct,
		Total:     len(questions),
		Breakdown: breakdown,
	}

	if err := s.repo.CreateResult(result); err != nil {
		log.WithError(err).Error("Erro ao persistir resultado do quiz")
		return nil, err
	}

	log.WithField("result_id", result.ID.String()).Info("Resultado do quiz salvo com sucesso")
	return &SubmitQuizResponse{
		ID:        result.ID.String(),
		Category:  result.Category,
		Score:     result.Score,
		Total:     result.Total,
		Results:   results,
		CreatedAt: result.CreatedAt,
	}, nil
}

func (s *quizService) feedbackFor(isCorrect bool, correctAnswer string) string {
	if isCorrect {
		return positiveFeedback[s.pick(len(positiveFeedback))]
	}
	return fmt.Sprintf(correctiveFeedback[s.pick(len(correctiveFeedback))], correctAnswer)
}

func (s *quizService) ListResultsByUser(ctx context.Context, userID string) ([]*QuizResult, error) {
	log := config.WithContext(ctx)
	log.WithField("user_id", userID).Info("Listando resultados de quiz do usuário...")

	results, err := s.repo.ListResultsByUser(userID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar resultados do usuário")
		return nil, err
	}
	return results, nil
}
