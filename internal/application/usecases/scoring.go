package usecases

import (
	"math"

	"github.com/retailops/auditoria-api/internal/application/domain/model"
)

// Summarize calcula o resumo de conformidade de uma árvore de auditoria.
// Computação pura, sem I/O.
//
// A taxa de cada categoria considera apenas perguntas respondidas: perguntas
// em aberto não ajudam nem prejudicam até serem respondidas. A nota global é
// a média das taxas ponderada pelos pesos vigentes, mas categorias sem
// nenhuma resposta ficam fora de ambos os somatórios — são excluídas, não
// contadas como zero. Assim a nota reflete apenas o material já avaliado,
// renormalizado pelo peso efetivamente em jogo, e pode oscilar conforme
// novas categorias entram na conta. Pesos que não somam 100 são tolerados:
// a divisão é sempre pelo total de peso das categorias consideradas.
func Summarize(tree *model.AuditTree) model.AuditSummary {
	summary := model.AuditSummary{
		Categories: []model.CategoryScore{},
	}

	weightedSum := 0.0
	weightTotal := 0

	for _, cat := range tree.Categories {
		score := model.CategoryScore{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Weight:     cat.Weight,
		}

		for _, sub := range cat.Subcategories {
			for _, q := range sub.Questions {
				score.Questions++
				if q.Answer != nil {
					score.Answered++
					if q.Answer.Passed {
						score.Passed++
					}
				}
			}
		}

		if score.Answered > 0 {
			score.Rate = int(math.Round(float64(score.Passed) / float64(score.Answered) * 100))
		}
		score.Contribution = float64(score.Rate) * float64(cat.Weight) / 100

		if score.Answered > 0 {
			weightedSum += score.Contribution
			weightTotal += cat.Weight
		}

		summary.TotalQuestions += score.Questions
		summary.Answered += score.Answered
		summary.Passed += score.Passed
		summary.Categories = append(summary.Categories, score)
	}

	summary.Failed = summary.Answered - summary.Passed

	if weightTotal > 0 {
		summary.Score = int(math.Round(weightedSum / float64(weightTotal) * 100))
	}

	return summary
}
