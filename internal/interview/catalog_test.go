package interview_test

import (
	"testing"

	"github.com/saulo-duarte/skillbridge-lambda/internal/interview"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := interview.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog falhou: %v", err)
	}

	categories := catalog.Categories()
	if len(categories) != 4 {
		t.Fatalf("Esperadas 4 categorias, recebido: %d", len(categories))
	}

	scenario, ok := catalog.Scenario("MERN")
	if !ok {
		t.Fatal("Categoria MERN deveria existir no catálogo padrão.")
	}
	if len(scenario.Questions) != 3 {
		t.Errorf("MERN deveria ter 3 perguntas, recebido: %d", len(scenario.Questions))
	}
	if len(scenario.Questions[0].Keywords) != 5 {
		t.Errorf("Primeira pergunta de MERN deveria ter 5 keywords, recebido: %d",
			len(scenario.Questions[0].Keywords))
	}

	if _, ok := catalog.Scenario("COBOL"); ok {
		t.Error("Categoria inexistente não deveria ser encontrada.")
	}
}

func TestLoadCatalogValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{
			name: "EmptyCatalog",
			yaml: ``,
		},
		{
			name: "CategoryWithoutQuestions",
			yaml: `
Vazia:
  questions: []
  feedback: "algum feedback"
`,
		},
		{
			name: "QuestionWithoutKeywords",
			yaml: `
Go:
  questions:
    - text: "O que é uma goroutine?"
      keywords: []
      model_answer: "Deveria mencionar concorrência leve."
  feedback: "algum feedback"
`,
		},
		{
			name: "BlankKeyword",
			yaml: `
Go:
  questions:
    - text: "O que é uma goroutine?"
      keywords: ["concurrency", "  "]
      model_answer: "Deveria mencionar concorrência leve."
  feedback: "algum feedback"
`,
		},
		{
			name: "MissingModelAnswer",
			yaml: `
Go:
  questions:
    - text: "O que é uma goroutine?"
      keywords: ["concurrency"]
  feedback: "algum feedback"
`,
		},
		{
			name: "MissingFeedback",
			yaml: `
Go:
  questions:
    - text: "O que é uma goroutine?"
      keywords: ["concurrency"]
      model_answer: "Deveria mencionar concorrência leve."
`,
		},
		{
			name: "InvalidYAML",
			yaml: `{{{`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := interview.LoadCatalog([]byte(tc.yaml)); err == nil {
				t.Errorf("LoadCatalog deveria rejeitar o catálogo malformado %q, mas aceitou.", tc.name)
			}
		})
	}
}

func TestLoadCatalogValid(t *testing.T) {
	data := `
Go:
  questions:
    - text: "O que é uma goroutine?"
      keywords: ["concurrency", "scheduler"]
      model_answer: "Deveria mencionar concorrência leve e o scheduler do runtime."
  feedback: "Bons candidatos entendem o modelo de concorrência de Go."
`
	catalog, err := interview.LoadCatalog([]byte(data))
	if err != nil {
		t.Fatalf("LoadCatalog falhou com catálogo válido: %v", err)
	}

	if got := catalog.Categories(); len(got) != 1 || got[0] != "Go" {
		t.Errorf("Categorias incorretas: %v", got)
	}
}
