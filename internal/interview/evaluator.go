package interview

import (
	"fmt"
	"math/rand"
	"strings"
)

type Evaluation struct {
	Score          int      `json:"score"`
	IsCorrect      bool     `json:"is_correct"`
	MissedKeywords []string `json:"missed_keywords"`
	Feedback       string   `json:"feedback"`
}

const passingScore = 6

var motivationalPhrases = []string{
	"Keep up the great work!",
	"You're doing fantastic!",
	"This is interview-ready material!",
	"You clearly know your stuff!",
	"Impressive knowledge demonstrated!",
}

var constructivePhrases = []string{
	"Don't worry - practice makes perfect!",
	"Review the key concepts and try again!",
	"You'll get this with a bit more study!",
	"This is a learning opportunity - you got this!",
	"Every expert was once a beginner - keep going!",
}

// Evaluator pontua respostas livres contra as keywords de uma pergunta.
// A função pick é injetável para que os testes fixem a frase escolhida;
// ela nunca influencia score, acerto ou keywords perdidas.
type Evaluator struct {
	pick func(n int) int
}

func NewEvaluator() *Evaluator {
	return &Evaluator{pick: rand.Intn}
}

func NewEvaluatorWithPick(pick func(n int) int) *Evaluator {
	return &Evaluator{pick: pick}
}

func (e *Evaluator) Evaluate(answer string, q Question) Evaluation {
	normalized := strings.ToLower(answer)

	matched := 0
	var missed []string
	for _, keyword := range q.Keywords {
		if strings.Contains(normalized, strings.ToLower(keyword)) {
			matched++
		} else {
			missed = append(missed, keyword)
		}
	}

	score := 0
	if len(q.Keywords) > 0 {
		score = matched * 10 / len(q.Keywords)
		if score > 10 {
			score = 10
		}
	}

	isCorrect := score >= passingScore

	return Evaluation{
		Score:          score,
		IsCorrect:      isCorrect,
		MissedKeywords: missed,
		Feedback:       e.buildFeedback(score, isCorrect, missed, q),
	}
}

func (e *Evaluator) buildFeedback(score int, isCorrect bool, missed []string, q Question) string {
	var sb strings.Builder

	if isCorrect {
		if score >= 8 {
			sb.WriteString("✅ Excellent answer! You covered all key points perfectly.")
		} else {
			sb.WriteString("👍 Good answer! You hit most of the key points.")
		}
		sb.WriteString(" ")
		sb.WriteString(motivationalPhrases[e.pick(len(motivationalPhrases))])
		return sb.String()
	}

	sb.WriteString("❌ Incorrect answer. ")
	if score >= 4 {
		sb.WriteString("You're on the right track but missed some important concepts.")
	} else {
		sb.WriteString("This needs significant improvement to meet expectations.")
	}
	sb.WriteString(fmt.Sprintf(" Here's what was expected: %s", q.ModelAnswer))
	sb.WriteString(" ")
	sb.WriteString(constructivePhrases[e.pick(len(constructivePhrases))])

	if len(missed) > 0 {
		sb.WriteString(fmt.Sprintf("\n\n🔍 Focus on these terms: %s.", strings.Join(missed, ", ")))
	}
	return sb.String()
}
