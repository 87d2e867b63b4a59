package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/skillbridge-lambda/internal/config"
	"github.com/sirupsen/logrus/hooks/test"
)

type memoryRepository struct {
	results []*QuizResult
	failure error
}

func (m *memoryRepository) CreateResult(result *QuizResult) error {
	if m.failure != nil {
		return m.failure
	}
	m.results = append(m.results, result)
	return nil
}

func (m *memoryRepository) ListResultsByUser(userID string) ([]*QuizResult, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*QuizResult
	for _, r := range m.results {
		if r.UserID.String() == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestService(t *testing.T, repo QuizRepository) QuizService {
	t.Helper()
	bank, err := DefaultBank()
	if err != nil {
		t.Fatalf("DefaultBank falhou: %v", err)
	}
	return NewServiceWithPick(bank, repo, func(n int) int { return 0 })
}

func TestDefaultBank(t *testing.T) {
	bank, err := DefaultBank()
	if err != nil {
		t.Fatalf("DefaultBank falhou: %v", err)
	}

	if got := len(bank.Categories()); got != 5 {
		t.Errorf("Esperadas 5 categorias, recebido: %d", got)
	}

	questions, ok := bank.Questions("MERN")
	if !ok {
		t.Fatal("Categoria MERN deveria existir no banco padrão.")
	}
	if len(questions) != 6 {
		t.Errorf("MERN deveria ter 6 perguntas, recebido: %d", len(questions))
	}
}

func TestLoadBankValidation(t *testing.T) {
	t.Run("AnswerNotAmongOptions", func(t *testing.T) {
		data := `
Go:
  - question: "Qual comando compila um módulo?"
    options: ["go build", "go run"]
    answer: "go compile"
`
		if _, err := LoadBank([]byte(data)); err == nil {
			t.Error("LoadBank deveria rejeitar resposta fora das alternativas.")
		}
	})

	t.Run("TooFewOptions", func(t *testing.T) {
		data := `
Go:
  - question: "Qual comando compila um módulo?"
    options: ["go build"]
    answer: "go build"
`
		if _, err := LoadBank([]byte(data)); err == nil {
			t.Error("LoadBank deveria rejeitar pergunta com menos de 2 alternativas.")
		}
	})
}

func TestSubmitQuiz(t *testing.T) {
	repo := &memoryRepository{}
	service := newTestService(t, repo)
	userID := uuid.New()

	t.Run("AllCorrect", func(t *testing.T) {
		resp, err := service.Submit(context.Background(), userID, SubmitQuizRequest{
			Category: "Dart",
			Answers: []string{
				"Google", "Flutter", "Compiled", "Object-oriented", ".dart", "void name(){}",
			},
		})
		if err != nil {
			t.Fatalf("Submit falhou: %v", err)
		}

		if resp.Score != 6 || resp.Total != 6 {
			t.Errorf("Score incorreto. Esperado: 6/6, Recebido: %d/%d", resp.Score, resp.Total)
		}
		for i, r := range resp.Results {
			if !r.IsCorrect {
				t.Errorf("Pergunta %d deveria estar correta: %+v", i, r)
			}
			if r.Feedback != positiveFeedback[0] {
				t.Errorf("Com pick fixo em 0, o feedback deveria ser o primeiro do pool: %q", r.Feedback)
			}
		}
	})

	t.Run("PartialAndMissing", func(t *testing.T) {
		resp, err := service.Submit(context.Background(), userID, SubmitQuizRequest{
			Category: "MERN",
			Answers:  []string{"MongoDB, Express, React, Node", "Node"},
		})
		if err != nil {
			t.Fatalf("Submit falhou: %v", err)
		}

		if resp.Score != 1 {
			t.Errorf("Esperado 1 acerto, recebido: %d", resp.Score)
		}
		if resp.Results[1].IsCorrect {
			t.Error("Resposta errada não deveria contar como acerto.")
		}
		if !strings.Contains(resp.Results[1].Feedback, `"React"`) {
			t.Errorf("Feedback corretivo deveria citar a resposta correta: %q", resp.Results[1].Feedback)
		}
		if resp.Results[2].UserAnswer != "Not answered" {
			t.Errorf("Pergunta sem resposta deveria registrar 'Not answered': %q", resp.Results[2].UserAnswer)
		}
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		_, err := service.Submit(context.Background(), userID, SubmitQuizRequest{Category: "COBOL"})
		if !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("Categoria desconhecida deveria falhar com ErrUnknownCategory, recebido: %v", err)
		}
	})

	t.Run("PersistsResult", func(t *testing.T) {
		results, err := service.ListResultsByUser(context.Background(), userID.String())
		if err != nil {
			t.Fatalf("ListResultsByUser falhou: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("Esperados 2 resultados persistidos, recebido: %d", len(results))
		}
		if len(results[0].Breakdown) == 0 {
			t.Error("O detalhamento por pergunta deveria ser persistido.")
		}
	})
}

func TestSubmitQuizLogsStructuredFields(t *testing.T) {
	hook := test.NewLocal(config.Logger())
	defer hook.Reset()

	svc := newTestService(t, &memoryRepository{})
	userID := uuid.New()

	if _, err := svc.Submit(context.Background(), userID, SubmitQuizRequest{Category: "Dart"}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	var found bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Corrigindo quiz..." {
			found = true
			if got := entry.Data["category"]; got != "Dart" {
				t.Errorf("campo category deveria ser %q, obteve %v", "Dart", got)
			}
		}
		if strings.Contains(entry.Message, "category") || strings.Contains(entry.Message, "result_id") {
			t.Errorf("mensagem não deveria conter chaves de campo embutidas: %q", entry.Message)
		}
	}
	if !found {
		t.Fatal("entrada de log da correção do quiz não foi emitida")
	}
}
