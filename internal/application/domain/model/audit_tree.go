package model

import (
	"github.com/retailops/auditoria-api/internal/domain/entities"
)

// QuestionNode é uma pergunta na árvore em memória de uma auditoria.
// AuditQuestionID fica vazio enquanto a pergunta ainda não foi copiada
// para o snapshot (catálogo recém-carregado, auditoria não criada).
type QuestionNode struct {
	AuditQuestionID  string           `json:"audit_question_id"`
	SourceQuestionID string           `json:"source_question_id"`
	Text             string           `json:"text"`
	DisplayOrder     int              `json:"display_order"`
	Answer           *entities.Answer `json:"answer,omitempty"`
}

// SubcategoryNode agrupa perguntas sob uma subcategoria
type SubcategoryNode struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	Name         string          `json:"name"`
	DisplayOrder int             `json:"display_order"`
	Questions    []*QuestionNode `json:"questions"`
}

// CategoryNode agrupa subcategorias sob uma categoria, com o peso vigente
type CategoryNode struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Weight        int                `json:"weight"`
	DisplayOrder  int                `json:"display_order"`
	Subcategories []*SubcategoryNode `json:"subcategories"`
}

// AuditTree é a hierarquia Categoria → Subcategoria → Pergunta de uma
// auditoria. Além das fatias ordenadas para exibição, mantém índices por id
// para que cada mutação (resposta, pergunta avulsa, ocultação) toque O(1)
// registros em vez de reconstruir a árvore inteira.
type AuditTree struct {
	Categories []*CategoryNode `json:"categories"`

	categoryByID    map[string]*CategoryNode
	subcategoryByID map[string]*SubcategoryNode
	questionByID    map[string]*QuestionNode
}

// NewAuditTree cria uma árvore vazia com os índices inicializados
func NewAuditTree() *AuditTree {
	return &AuditTree{
		categoryByID:    make(map[string]*CategoryNode),
		subcategoryByID: make(map[string]*SubcategoryNode),
		questionByID:    make(map[string]*QuestionNode),
	}
}

// AddCategory anexa uma categoria à árvore e ao índice
func (t *AuditTree) AddCategory(c *CategoryNode) {
	if c.Subcategories == nil {
		c.Subcategories = []*SubcategoryNode{}
	}
	t.Categories = append(t.Categories, c)
	t.categoryByID[c.ID] = c
}

// AddSubcategory anexa uma subcategoria à sua categoria pai.
// Retorna false se a categoria não existe na árvore.
func (t *AuditTree) AddSubcategory(s *SubcategoryNode) bool {
	parent, ok := t.categoryByID[s.CategoryID]
	if !ok {
		return false
	}
	if s.Questions == nil {
		s.Questions = []*QuestionNode{}
	}
	parent.Subcategories = append(parent.Subcategories, s)
	t.subcategoryByID[s.ID] = s
	return true
}

// AddQuestion anexa uma pergunta à sua subcategoria pai.
// Retorna false se a subcategoria não existe na árvore.
func (t *AuditTree) AddQuestion(subcategoryID string, q *QuestionNode) bool {
	parent, ok := t.subcategoryByID[subcategoryID]
	if !ok {
		return false
	}
	parent.Questions = append(parent.Questions, q)
	if q.AuditQuestionID != "" {
		t.questionByID[q.AuditQuestionID] = q
	}
	return true
}

// Category retorna a categoria pelo id, ou nil
func (t *AuditTree) Category(id string) *CategoryNode {
	return t.categoryByID[id]
}

// Subcategory retorna a subcategoria pelo id, ou nil
func (t *AuditTree) Subcategory(id string) *SubcategoryNode {
	return t.subcategoryByID[id]
}

// Question retorna a pergunta pelo id do snapshot, ou nil
func (t *AuditTree) Question(auditQuestionID string) *QuestionNode {
	return t.questionByID[auditQuestionID]
}

// IndexQuestion registra no índice uma pergunta que acabou de receber o id
// do snapshot (após o insert em lote da criação da auditoria)
func (t *AuditTree) IndexQuestion(q *QuestionNode) {
	if q.AuditQuestionID != "" {
		t.questionByID[q.AuditQuestionID] = q
	}
}

// RemoveQuestion remove a pergunta do índice e da subcategoria que a contém.
// Retorna false se a pergunta não existe.
func (t *AuditTree) RemoveQuestion(auditQuestionID string) bool {
	q, ok := t.questionByID[auditQuestionID]
	if !ok {
		return false
	}
	delete(t.questionByID, auditQuestionID)
	for _, sub := range t.subcategoryByID {
		for i, candidate := range sub.Questions {
			if candidate == q {
				sub.Questions = append(sub.Questions[:i], sub.Questions[i+1:]...)
				return true
			}
		}
	}
	return true
}

// AttachAnswer associa uma resposta à pergunta do snapshot.
// Respostas com revision menor que a já associada são ignoradas.
func (t *AuditTree) AttachAnswer(auditQuestionID string, answer *entities.Answer) bool {
	q, ok := t.questionByID[auditQuestionID]
	if !ok {
		return false
	}
	if q.Answer != nil && answer != nil && answer.Revision < q.Answer.Revision {
		return false
	}
	q.Answer = answer
	return true
}

// TotalQuestions retorna o total de perguntas da árvore, incluindo as que
// ainda não receberam id de snapshot
func (t *AuditTree) TotalQuestions() int {
	total := 0
	for _, cat := range t.Categories {
		for _, sub := range cat.Subcategories {
			total += len(sub.Questions)
		}
	}
	return total
}
