package interview

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

type Question struct {
	Text        string   `yaml:"text" json:"text"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	ModelAnswer string   `yaml:"model_answer" json:"model_answer"`
}

type Scenario struct {
	Questions []Question `yaml:"questions" json:"questions"`
	Feedback  string     `yaml:"feedback" json:"feedback"`
}

// Catalog é o conjunto imutável de cenários de entrevista, carregado
// uma única vez na inicialização.
type Catalog struct {
	scenarios  map[string]Scenario
	categories []string
}

func LoadCatalog(data []byte) (*Catalog, error) {
	var scenarios map[string]Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("erro ao parsear YAML de cenários: %w", err)
	}

	if err := validateScenarios(scenarios); err != nil {
		return nil, fmt.Errorf("erro de validação do catálogo: %w", err)
	}

	categories := make([]string, 0, len(scenarios))
	for name := range scenarios {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	return &Catalog{scenarios: scenarios, categories: categories}, nil
}

func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo %s: %w", path, err)
	}
	return LoadCatalog(data)
}

func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultScenarios)
}

func validateScenarios(scenarios map[string]Scenario) error {
	if len(scenarios) == 0 {
		return fmt.Errorf("o catálogo não possui nenhuma categoria")
	}

	for name, scenario := range scenarios {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("categoria com nome vazio")
		}
		if len(scenario.Questions) == 0 {
			return fmt.Errorf("categoria %q não possui perguntas", name)
		}
		if strings.TrimSpace(scenario.Feedback) == "" {
			return fmt.Errorf("categoria %q deve ter feedback", name)
		}

		for i, q := range scenario.Questions {
			if strings.TrimSpace(q.Text) == "" {
				return fmt.Errorf("pergunta %d da categoria %q sem texto", i, name)
			}
			if len(q.Keywords) == 0 {
				return fmt.Errorf("pergunta %d da categoria %q não possui keywords", i, name)
			}
			for _, kw := range q.Keywords {
				if strings.TrimSpace(kw) == "" {
					return fmt.Errorf("pergunta %d da categoria %q possui keyword vazia", i, name)
				}
			}
			if strings.TrimSpace(q.ModelAnswer) == "" {
				return fmt.Errorf("pergunta %d da categoria %q sem resposta modelo", i, name)
			}
		}
	}
	return nil
}

func (c *Catalog) Scenario(category string) (Scenario, bool) {
	s, ok := c.scenarios[category]
	return s, ok
}

// Categories retorna os nomes das categorias em ordem alfabética.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}
