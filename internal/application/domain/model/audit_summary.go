package model

// CategoryScore é a linha de uma categoria no resumo de pontuação
type CategoryScore struct {
	CategoryID   string  `json:"category_id"`
	Name         string  `json:"name"`
	Weight       int     `json:"weight"`
	Questions    int     `json:"questions"`
	Answered     int     `json:"answered"`
	Passed       int     `json:"passed"`
	Rate         int     `json:"rate"`
	Contribution float64 `json:"contribution"`
}

// AuditSummary é o resultado da pontuação ponderada de uma auditoria.
// Score é a média das taxas por categoria ponderada pelos pesos vigentes,
// considerando apenas categorias com pelo menos uma resposta.
type AuditSummary struct {
	TotalQuestions int             `json:"total_questions"`
	Answered       int             `json:"answered"`
	Passed         int             `json:"passed"`
	Failed         int             `json:"failed"`
	Score          int             `json:"score"`
	Categories     []CategoryScore `json:"categories"`
}
