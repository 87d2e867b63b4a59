package interview_test

import (
	"math"
	"strings"
	"testing"

	"github.com/saulo-duarte/skillbridge-lambda/internal/interview"
)

func evalWith(score int, missed ...string) interview.Evaluation {
	return interview.Evaluation{
		Score:          score,
		IsCorrect:      score >= 6,
		MissedKeywords: missed,
	}
}

func TestSummarizeArithmetic(t *testing.T) {
	evals := []interview.Evaluation{evalWith(8), evalWith(10), evalWith(4)}

	summary := interview.Summarize(evals, 3, "category advice")

	if math.Abs(summary.AverageScore-7.333333) > 0.0001 {
		t.Errorf("Média incorreta. Esperado: ~7.33, Recebido: %f", summary.AverageScore)
	}
	if summary.CorrectCount != 2 {
		t.Errorf("Contagem de acertos incorreta. Esperado: 2, Recebido: %d", summary.CorrectCount)
	}
	if !strings.Contains(summary.Overall, "👍 Good job!") {
		t.Errorf("Média 7.3 deveria cair no tier 'good job': %q", summary.Overall)
	}
	if !strings.Contains(summary.Overall, "2/3 questions correct") {
		t.Errorf("Mensagem deveria interpolar acertos/total: %q", summary.Overall)
	}
	if !strings.Contains(summary.Overall, "Your average score was 7.3/10.") {
		t.Errorf("Média deveria ser formatada com uma casa decimal: %q", summary.Overall)
	}
}

func TestSummarizeTierUsesAverageNotCorrectCount(t *testing.T) {
	// 2 de 3 corretas, mas média 5.33: o tier é escolhido pela média,
	// então o resultado é "needs practice" mesmo com maioria de acertos.
	evals := []interview.Evaluation{evalWith(10), evalWith(0), evalWith(6)}

	summary := interview.Summarize(evals, 3, "category advice")

	if summary.CorrectCount != 2 {
		t.Fatalf("Esperado 2 acertos, recebido: %d", summary.CorrectCount)
	}
	if math.Abs(summary.AverageScore-5.333333) > 0.0001 {
		t.Fatalf("Média incorreta: %f", summary.AverageScore)
	}
	if !strings.Contains(summary.Overall, "📚 You got 2/3 questions correct.") {
		t.Errorf("Sessão com média abaixo de 6 deveria cair no tier mais baixo: %q", summary.Overall)
	}
	if !strings.Contains(summary.Overall, "Every expert was once a beginner.") {
		t.Errorf("Linha de fechamento do tier mais baixo incorreta: %q", summary.Overall)
	}
}

func TestSummarizeOutstandingTier(t *testing.T) {
	evals := []interview.Evaluation{evalWith(10), evalWith(8), evalWith(8)}

	summary := interview.Summarize(evals, 3, "category advice")

	if !strings.Contains(summary.Overall, "🎉 Outstanding performance!") {
		t.Errorf("Média >= 8 deveria cair no tier 'outstanding': %q", summary.Overall)
	}
	if !strings.Contains(summary.Overall, "You're crushing it! Keep up the amazing work!") {
		t.Errorf("Linha de fechamento do tier 'outstanding' incorreta: %q", summary.Overall)
	}
	if strings.Contains(summary.Overall, "Key areas to improve") {
		t.Errorf("Sem keywords perdidas não deveria haver áreas a melhorar: %q", summary.Overall)
	}
}

func TestSummarizeUniqueMissedKeywords(t *testing.T) {
	evals := []interview.Evaluation{
		evalWith(0, "jwt", "oauth"),
		evalWith(0, "oauth", "indexing", "jwt"),
		evalWith(0, "sharding"),
	}

	summary := interview.Summarize(evals, 3, "category advice")

	// Deduplicado na ordem da primeira ocorrência.
	if !strings.Contains(summary.Overall, "Key areas to improve: jwt, oauth, indexing, sharding.") {
		t.Errorf("Keywords perdidas deveriam ser deduplicadas preservando ordem: %q", summary.Overall)
	}
}

func TestSummarizeEmptyEvaluations(t *testing.T) {
	summary := interview.Summarize(nil, 0, "category advice")

	if summary.AverageScore != 0 {
		t.Errorf("Média de avaliações vazias deveria ser 0, recebido: %f", summary.AverageScore)
	}
	if summary.CorrectCount != 0 {
		t.Errorf("Sem avaliações não há acertos, recebido: %d", summary.CorrectCount)
	}
}

func TestSummarizeCarriesCategoryAdvice(t *testing.T) {
	advice := "MERN stack developers should focus on full-stack integration."
	summary := interview.Summarize([]interview.Evaluation{evalWith(10)}, 1, advice)

	if summary.CategoryAdvice != advice {
		t.Errorf("CategoryAdvice deveria ser repassado sem alteração: %q", summary.CategoryAdvice)
	}
}
