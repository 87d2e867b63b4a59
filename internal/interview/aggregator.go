package interview

import (
	"fmt"
	"strings"
)

type Summary struct {
	AverageScore   float64 `json:"average_score"`
	CorrectCount   int     `json:"correct_count"`
	TotalQuestions int     `json:"total_questions"`
	Overall        string  `json:"overall"`
	CategoryAdvice string  `json:"category_advice"`
}

// Summarize consolida as avaliações individuais no feedback final da
// sessão. O tier é escolhido pela média das notas, não pela contagem de
// acertos; uma sessão com maioria de acertos ainda pode cair no tier
// mais baixo.
func Summarize(evaluations []Evaluation, totalQuestions int, categoryFeedback string) Summary {
	average := 0.0
	correct := 0
	if len(evaluations) > 0 {
		sum := 0
		for _, ev := range evaluations {
			sum += ev.Score
			if ev.IsCorrect {
				correct++
			}
		}
		average = float64(sum) / float64(len(evaluations))
	}

	var sb strings.Builder
	switch {
	case average >= 8:
		sb.WriteString(fmt.Sprintf("🎉 Outstanding performance! You got %d/%d questions correct. ", correct, totalQuestions))
		sb.WriteString("You're ready to ace real interviews!")
	case average >= 6:
		sb.WriteString(fmt.Sprintf("👍 Good job! You got %d/%d questions correct. ", correct, totalQuestions))
		sb.WriteString("With a bit more practice, you'll be interview-ready!")
	default:
		sb.WriteString(fmt.Sprintf("📚 You got %d/%d questions correct. ", correct, totalQuestions))
		sb.WriteString("Don't get discouraged - focus on the areas below and try again!")
	}
	sb.WriteString(fmt.Sprintf(" Your average score was %.1f/10.", average))

	missed := uniqueMissedKeywords(evaluations)
	if len(missed) > 0 {
		sb.WriteString(fmt.Sprintf("\n\n🔧 Key areas to improve: %s.", strings.Join(missed, ", ")))
	}

	sb.WriteString("\n\n💪 ")
	switch {
	case average >= 8:
		sb.WriteString("You're crushing it! Keep up the amazing work!")
	case average >= 6:
		sb.WriteString("You're making great progress! Keep practicing!")
	default:
		sb.WriteString("Every expert was once a beginner. Keep going and you'll get there!")
	}

	return Summary{
		AverageScore:   average,
		CorrectCount:   correct,
		TotalQuestions: totalQuestions,
		Overall:        sb.String(),
		CategoryAdvice: categoryFeedback,
	}
}

// uniqueMissedKeywords deduplica na ordem da primeira ocorrência.
func uniqueMissedKeywords(evaluations []Evaluation) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, ev := range evaluations {
		for _, kw := range ev.MissedKeywords {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}
