package usecases

import (
	"fmt"
	"testing"

	"github.com/retailops/auditoria-api/internal/application/domain/model"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultado por pergunta: 1 = aprovada, 0 = reprovada, -1 = sem resposta
type scoringCategory struct {
	name    string
	weight  int
	results []int
}

func scoringTree(categories ...scoringCategory) *model.AuditTree {
	tree := model.NewAuditTree()
	for i, cat := range categories {
		catID := fmt.Sprintf("cat-%d", i)
		subID := fmt.Sprintf("sub-%d", i)
		tree.AddCategory(&model.CategoryNode{ID: catID, Name: cat.name, Weight: cat.weight})
		tree.AddSubcategory(&model.SubcategoryNode{ID: subID, CategoryID: catID, Name: cat.name})
		for j, result := range cat.results {
			node := &model.QuestionNode{
				AuditQuestionID: fmt.Sprintf("aq-%d-%d", i, j),
				Text:            fmt.Sprintf("pergunta %d.%d", i, j),
				DisplayOrder:    j,
			}
			if result >= 0 {
				node.Answer = &entities.Answer{
					AuditQuestionID: node.AuditQuestionID,
					Passed:          result == 1,
				}
			}
			tree.AddQuestion(subID, node)
		}
	}
	return tree
}

func TestSummarizeExcludesUnansweredCategories(t *testing.T) {
	// Categoria B sem nenhuma resposta fica fora da ponderação inteira,
	// não conta como zero
	tree := scoringTree(
		scoringCategory{name: "Limpeza", weight: 60, results: []int{1, 1}},
		scoringCategory{name: "Estoque", weight: 40, results: []int{-1, -1, -1}},
	)

	summary := Summarize(tree)
	assert.Equal(t, 100, summary.Score)
	assert.Equal(t, 5, summary.TotalQuestions)
	assert.Equal(t, 2, summary.Answered)
	assert.Equal(t, 2, summary.Passed)
	assert.Equal(t, 0, summary.Failed)
}

func TestSummarizeToleratesWeightSumOver100(t *testing.T) {
	// Pesos somando 120 não quebram: a divisão é pelo peso em jogo
	tree := scoringTree(
		scoringCategory{name: "Limpeza", weight: 50, results: []int{1, 1}},
		scoringCategory{name: "Estoque", weight: 70, results: []int{0, 0}},
	)

	summary := Summarize(tree)
	assert.Equal(t, 42, summary.Score) // round(100*50/120)
}

func TestSummarizeWeightedBlend(t *testing.T) {
	// 6 perguntas com 5 aprovadas (83%) peso 60, 4 com 3 (75%) peso 40
	tree := scoringTree(
		scoringCategory{name: "Atendimento", weight: 60, results: []int{1, 1, 1, 1, 1, 0}},
		scoringCategory{name: "Caixa", weight: 40, results: []int{1, 1, 1, 0}},
	)

	summary := Summarize(tree)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, 83, summary.Categories[0].Rate)
	assert.Equal(t, 75, summary.Categories[1].Rate)
	assert.Equal(t, 80, summary.Score) // round((83*60+75*40)/100)
	assert.Equal(t, 10, summary.TotalQuestions)
	assert.Equal(t, 10, summary.Answered)
	assert.Equal(t, 8, summary.Passed)
	assert.Equal(t, 2, summary.Failed)
}

func TestSummarizeSingleAnsweredCategoryTakesFullWeight(t *testing.T) {
	// Com uma categoria inteira sem resposta, a nota é exatamente a taxa
	// da outra: o peso é realocado por completo
	tree := scoringTree(
		scoringCategory{name: "Atendimento", weight: 60, results: []int{1, 1, 1, 0}},
		scoringCategory{name: "Caixa", weight: 40, results: []int{-1, -1}},
	)

	summary := Summarize(tree)
	assert.Equal(t, 75, summary.Categories[0].Rate)
	assert.Equal(t, 75, summary.Score)
}

func TestSummarizeUnansweredQuestionsOutsideRateDenominator(t *testing.T) {
	// Perguntas em aberto não ajudam nem prejudicam a taxa da categoria
	tree := scoringTree(
		scoringCategory{name: "Limpeza", weight: 100, results: []int{1, 0, -1, -1}},
	)

	summary := Summarize(tree)
	require.Len(t, summary.Categories, 1)
	assert.Equal(t, 4, summary.Categories[0].Questions)
	assert.Equal(t, 2, summary.Categories[0].Answered)
	assert.Equal(t, 50, summary.Categories[0].Rate)
	assert.Equal(t, 50, summary.Score)
}

func TestSummarizeEmptyTree(t *testing.T) {
	summary := Summarize(model.NewAuditTree())
	assert.Equal(t, 0, summary.Score)
	assert.Equal(t, 0, summary.TotalQuestions)
	assert.Empty(t, summary.Categories)
}

func TestSummarizeCategoryBreakdown(t *testing.T) {
	tree := scoringTree(
		scoringCategory{name: "Limpeza", weight: 60, results: []int{1, 0}},
		scoringCategory{name: "Estoque", weight: 40, results: []int{-1}},
	)

	summary := Summarize(tree)
	require.Len(t, summary.Categories, 2)

	limpeza := summary.Categories[0]
	assert.Equal(t, "Limpeza", limpeza.Name)
	assert.Equal(t, 60, limpeza.Weight)
	assert.Equal(t, 50, limpeza.Rate)
	assert.InDelta(t, 30.0, limpeza.Contribution, 0.001)

	estoque := summary.Categories[1]
	assert.Equal(t, 0, estoque.Rate)
	assert.InDelta(t, 0.0, estoque.Contribution, 0.001)
}
