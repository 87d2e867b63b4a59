package interview

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

type Phase string

const (
	PhaseIntro     Phase = "intro"
	PhaseQuestions Phase = "questions"
	PhaseFeedback  Phase = "feedback"
)

type Sender string

const (
	SenderInterviewer Sender = "interviewer"
	SenderCandidate   Sender = "candidate"
	SenderSystem      Sender = "system"
)

type Message struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

var (
	ErrUnknownCategory     = errors.New("unknown interview category")
	ErrAlreadyStarted      = errors.New("interview already started")
	ErrNotAcceptingAnswers = errors.New("interview is not accepting answers")
	ErrInterviewerBusy     = errors.New("interviewer response still pending")
	ErrCategoryLocked      = errors.New("category can only change before the interview starts")
)

// SessionConfig controla o relógio e o agendamento do atraso de
// "pensamento" do entrevistador. Os testes injetam Schedule e Now
// determinísticos; em produção os defaults usam time.AfterFunc.
type SessionConfig struct {
	ThinkingDelay time.Duration
	Schedule      func(d time.Duration, fn func())
	Now           func() time.Time
}

func (c *SessionConfig) applyDefaults() {
	if c.Schedule == nil {
		c.Schedule = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

// Session é a máquina de estados de uma entrevista simulada:
// intro -> questions -> feedback, com transcript append-only.
// Todo o estado é protegido por um único mutex; há exatamente um
// produtor de transições (o usuário) por sessão.
type Session struct {
	mu sync.Mutex

	catalog   *Catalog
	evaluator *Evaluator
	cfg       SessionConfig

	category string
	scenario Scenario

	phase         Phase
	questionIndex int
	transcript    []Message
	evaluations   []Evaluation
	summary       *Summary

	// thinking bloqueia novas submissões enquanto um timer está
	// pendente; generation invalida timers agendados antes de um
	// restart ou troca de categoria.
	thinking   bool
	generation uint64

	lastActivity time.Time
}

func NewSession(catalog *Catalog, evaluator *Evaluator, category string, cfg SessionConfig) (*Session, error) {
	scenario, ok := catalog.Scenario(category)
	if !ok {
		return nil, ErrUnknownCategory
	}
	cfg.applyDefaults()

	s := &Session{
		catalog:   catalog,
		evaluator: evaluator,
		cfg:       cfg,
		category:  category,
		scenario:  scenario,
		phase:     PhaseIntro,
	}
	s.lastActivity = cfg.Now()
	s.append(SenderInterviewer, fmt.Sprintf(
		"Hello! Welcome to your %s mock interview. I'll be asking you %d questions. Ready to begin?",
		category, len(scenario.Questions)))
	return s, nil
}

// append assume que o mutex já está adquirido (ou que a sessão ainda
// não foi publicada).
func (s *Session) append(sender Sender, text string) {
	s.transcript = append(s.transcript, Message{
		Sender:    sender,
		Text:      text,
		Timestamp: s.cfg.Now(),
	})
}

func (s *Session) touch() {
	s.lastActivity = s.cfg.Now()
}

func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseIntro {
		return ErrAlreadyStarted
	}

	s.phase = PhaseQuestions
	s.questionIndex = 0
	s.append(SenderInterviewer, "Great! Let's start with our first question:")
	s.append(SenderInterviewer, s.scenario.Questions[0].Text)
	s.touch()
	return nil
}

// SubmitAnswer avalia a resposta e avança a máquina de estados.
// Resposta vazia ou só com espaços é um no-op silencioso: nenhum
// estado muda e nenhum erro é retornado.
func (s *Session) SubmitAnswer(answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseQuestions {
		return ErrNotAcceptingAnswers
	}
	if s.thinking {
		return ErrInterviewerBusy
	}
	if strings.TrimSpace(answer) == "" {
		return nil
	}

	question := s.scenario.Questions[s.questionIndex]
	evaluation := s.evaluator.Evaluate(answer, question)
	s.evaluations = append(s.evaluations, evaluation)

	s.append(SenderCandidate, answer)
	if evaluation.IsCorrect {
		s.append(SenderSystem, "💡 "+evaluation.Feedback)
	} else {
		s.append(SenderSystem, "⚠️ "+evaluation.Feedback)
	}

	s.questionIndex++
	s.touch()

	if s.questionIndex < len(s.scenario.Questions) {
		s.scheduleLocked(s.deliverNextQuestion)
		return nil
	}

	summary := Summarize(s.evaluations, len(s.scenario.Questions), s.scenario.Feedback)
	s.summary = &summary
	s.phase = PhaseFeedback
	s.scheduleLocked(s.deliverFinalFeedback)
	return nil
}

// scheduleLocked agenda fn para depois do atraso de pensamento,
// guardada pela geração atual: um restart ou troca de categoria
// incrementa a geração e o timer antigo expira sem efeito.
func (s *Session) scheduleLocked(fn func()) {
	s.thinking = true
	gen := s.generation
	s.cfg.Schedule(s.cfg.ThinkingDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.generation {
			return
		}
		s.thinking = false
		fn()
	})
}

func (s *Session) deliverNextQuestion() {
	s.append(SenderInterviewer, s.scenario.Questions[s.questionIndex].Text)
}

func (s *Session) deliverFinalFeedback() {
	s.append(SenderInterviewer, "Interview complete! Here's your overall feedback...")
	s.append(SenderSystem, s.summary.Overall)
	s.append(SenderSystem, s.summary.CategoryAdvice)
}

// Restart volta para a fase intro, descartando transcript, avaliações
// e qualquer timer pendente.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.thinking = false
	s.phase = PhaseIntro
	s.questionIndex = 0
	s.transcript = nil
	s.evaluations = nil
	s.summary = nil
	s.append(SenderInterviewer, fmt.Sprintf(
		"Let's start another %s mock interview. I'll be asking you %d questions. Ready to begin?",
		s.category, len(s.scenario.Questions)))
	s.touch()
}

// ChangeCategory só é permitido na fase intro; fora dela a seleção é
// rejeitada e o estado anterior é mantido. Categoria desconhecida
// também é rejeitada sem alterar nada.
func (s *Session) ChangeCategory(category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseIntro {
		return ErrCategoryLocked
	}
	scenario, ok := s.catalog.Scenario(category)
	if !ok {
		return ErrUnknownCategory
	}

	s.generation++
	s.thinking = false
	s.category = category
	s.scenario = scenario
	s.questionIndex = 0
	s.transcript = nil
	s.evaluations = nil
	s.summary = nil
	s.append(SenderInterviewer, fmt.Sprintf(
		"Hello! Welcome to your %s mock interview. I'll be asking you %d questions. Ready to begin?",
		category, len(scenario.Questions)))
	s.touch()
	return nil
}

func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

type SessionView struct {
	Category       string       `json:"category"`
	Phase          Phase        `json:"phase"`
	QuestionIndex  int          `json:"question_index"`
	TotalQuestions int          `json:"total_questions"`
	Progress       float64      `json:"progress"`
	Thinking       bool         `json:"thinking"`
	Transcript     []Message    `json:"transcript"`
	Evaluations    []Evaluation `json:"evaluations"`
	Summary        *Summary     `json:"summary,omitempty"`
}

// Snapshot devolve uma projeção imutável do estado para renderização;
// nenhuma lógica de negócio vive na camada de visualização.
func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := make([]Message, len(s.transcript))
	copy(transcript, s.transcript)
	evaluations := make([]Evaluation, len(s.evaluations))
	copy(evaluations, s.evaluations)

	return SessionView{
		Category:       s.category,
		Phase:          s.phase,
		QuestionIndex:  s.questionIndex,
		TotalQuestions: len(s.scenario.Questions),
		Progress:       s.progressLocked(),
		Thinking:       s.thinking,
		Transcript:     transcript,
		Evaluations:    evaluations,
		Summary:        s.summary,
	}
}

func (s *Session) progressLocked() float64 {
	switch s.phase {
	case PhaseIntro:
		return 0
	case PhaseFeedback:
		return 100
	default:
		total := len(s.scenario.Questions)
		current := s.questionIndex + 1
		if current > total {
			current = total
		}
		return float64(current) / float64(total) * 100
	}
}
