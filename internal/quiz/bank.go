package quiz

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultQuestions []byte

type Question struct {
	Question string   `yaml:"question" json:"question"`
	Options  []string `yaml:"options" json:"options"`
	Answer   string   `yaml:"answer" json:"-"`
}

// Bank é o banco estático de perguntas de múltipla escolha, imutável
// após o carregamento.
type Bank struct {
	questions  map[string][]Question
	categories []string
}

func LoadBank(data []byte) (*Bank, error) {
	var questions map[string][]Question
	if err := yaml.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("erro ao parsear YAML do banco de perguntas: %w", err)
	}

	if err := validateBank(questions); err != nil {
		return nil, fmt.Errorf("erro de validação do banco de perguntas: %w", err)
	}

	categories := make([]string, 0, len(questions))
	for name := range questions {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	return &Bank{questions: questions, categories: categories}, nil
}

func LoadBankFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo %s: %w", path, err)
	}
	return LoadBank(data)
}

func DefaultBank() (*Bank, error) {
	return LoadBank(defaultQuestions)
}

func validateBank(questions map[string][]Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("o banco não possui nenhuma categoria")
	}

	for name, qs := range questions {
		if len(qs) == 0 {
			return fmt.Errorf("categoria %q não possui perguntas", name)
		}
		for i, q := range qs {
			if strings.TrimSpace(q.Question) == "" {
				return fmt.Errorf("pergunta %d da categoria %q sem enunciado", i, name)
			}
			if len(q.Options) < 2 {
				return fmt.Errorf("pergunta %d da categoria %q precisa de ao menos 2 alternativas", i, name)
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.Answer {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("pergunta %d da categoria %q: resposta correta não está entre as alternativas", i, name)
			}
		}
	}
	return nil
}

func (b *Bank) Questions(category string) ([]Question, bool) {
	qs, ok := b.questions[category]
	return qs, ok
}

func (b *Bank) Categories() []string {
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}
