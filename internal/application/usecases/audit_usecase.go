package usecases

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/auditoria-api/internal/application/domain/model"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
)

// AuditUseCase implementa o ciclo de vida da auditoria: criação com
// snapshot, recarga, gravação de respostas, perguntas avulsas, ocultação,
// pontuação e finalização. Toda operação recebe a sessão explícita.
type AuditUseCase struct {
	auditRepo   *repositories.AuditRepository
	answerRepo  *repositories.AnswerRepository
	catalogRepo *repositories.CatalogRepository
	catalog     *CatalogUseCase
}

// NewAuditUseCase cria uma nova instância de AuditUseCase
func NewAuditUseCase(
	auditRepo *repositories.AuditRepository,
	answerRepo *repositories.AnswerRepository,
	catalogRepo *repositories.CatalogRepository,
	catalog *CatalogUseCase,
) *AuditUseCase {
	return &AuditUseCase{
		auditRepo:   auditRepo,
		answerRepo:  answerRepo,
		catalogRepo: catalogRepo,
		catalog:     catalog,
	}
}

// CreateAudit insere a auditoria em andamento e materializa o snapshot:
// uma linha de audit_questions por pergunta ativa do catálogo, copiando
// texto, categoria, subcategoria e ordem. Auditoria e snapshot são gravados
// na mesma transação; os ids gerados são reanexados na árvore para que
// respostas possam ser gravadas de imediato.
func (u *AuditUseCase) CreateAudit(storeID, auditorID string, date time.Time, recipients, notes string) (*model.AuditSession, error) {
	if auditorID == "" {
		return nil, fmt.Errorf("%w: criação de auditoria exige usuário autenticado", entities.ErrAuthentication)
	}
	if storeID == "" {
		return nil, fmt.Errorf("%w: loja não informada", entities.ErrValidation)
	}
	if date.IsZero() {
		date = time.Now()
	}

	tree, err := u.catalog.LoadCatalog()
	if err != nil {
		return nil, err
	}

	audit := &entities.Audit{
		ID:         uuid.NewString(),
		StoreID:    storeID,
		AuditorID:  auditorID,
		Date:       date,
		Recipients: recipients,
		Notes:      notes,
		State:      entities.AuditInProgress,
		TotalScore: 0,
	}

	// Achatar a árvore em linhas de snapshot, guardando os nós na mesma
	// ordem para reanexar os ids depois do insert em lote
	var rows []entities.AuditQuestion
	var nodes []*model.QuestionNode
	for _, cat := range tree.Categories {
		for _, sub := range cat.Subcategories {
			for _, q := range sub.Questions {
				rows = append(rows, entities.AuditQuestion{
					ID:               uuid.NewString(),
					AuditID:          audit.ID,
					SourceQuestionID: q.SourceQuestionID,
					Text:             q.Text,
					CategoryID:       cat.ID,
					SubcategoryID:    sub.ID,
					DisplayOrder:     q.DisplayOrder,
				})
				nodes = append(nodes, q)
			}
		}
	}

	if err := u.auditRepo.CreateWithSnapshot(audit, rows); err != nil {
		return nil, err
	}

	for i := range rows {
		nodes[i].AuditQuestionID = rows[i].ID
		tree.IndexQuestion(nodes[i])
	}

	return model.NewAuditSession(audit, tree), nil
}

// LoadAudit recarrega uma auditoria existente: a linha da auditoria, o
// snapshot ordenado, as respostas e as cascas atuais de categoria e
// subcategoria. As perguntas são agrupadas pelos ids desnormalizados no
// snapshot, então uma categoria renomeada depois aparece com o nome novo,
// mas o texto das perguntas permanece o do momento da captura.
func (u *AuditUseCase) LoadAudit(auditID string) (*model.AuditSession, error) {
	audit, err := u.auditRepo.GetAudit(auditID)
	if err != nil {
		return nil, err
	}

	questions, err := u.auditRepo.GetAuditQuestions(auditID)
	if err != nil {
		return nil, err
	}

	answers, err := u.auditRepo.GetAnswers(auditID)
	if err != nil {
		return nil, err
	}

	categories, subcategories, err := u.catalog.CurrentShells()
	if err != nil {
		return nil, err
	}

	// Lookup de respostas por pergunta de snapshot para anexação O(1)
	answerByQuestion := make(map[string]*entities.Answer, len(answers))
	for i := range answers {
		answerByQuestion[answers[i].AuditQuestionID] = &answers[i]
	}

	tree := assembleAuditTree(questions, answerByQuestion, categories, subcategories)
	return model.NewAuditSession(audit, tree), nil
}

// assembleAuditTree monta a árvore de uma auditoria existente usando mapas
// por id e índices por pai. Só entram na árvore as cascas de categoria e
// subcategoria referenciadas pelo snapshot; cascas que sumiram do catálogo
// são sintetizadas vazias para não perder perguntas.
func assembleAuditTree(
	questions []entities.AuditQuestion,
	answerByQuestion map[string]*entities.Answer,
	categories []entities.Category,
	subcategories []entities.Subcategory,
) *model.AuditTree {
	usedCategories := make(map[string]bool)
	usedSubcategories := make(map[string]bool)
	for _, q := range questions {
		usedCategories[q.CategoryID] = true
		usedSubcategories[q.SubcategoryID] = true
	}

	tree := model.NewAuditTree()

	for _, cat := range categories {
		if usedCategories[cat.ID] {
			tree.AddCategory(&model.CategoryNode{
				ID:           cat.ID,
				Name:         cat.Name,
				Weight:       cat.Weight,
				DisplayOrder: cat.DisplayOrder,
			})
		}
	}
	for _, sub := range subcategories {
		if usedSubcategories[sub.ID] {
			tree.AddSubcategory(&model.SubcategoryNode{
				ID:           sub.ID,
				CategoryID:   sub.CategoryID,
				Name:         sub.Name,
				DisplayOrder: sub.DisplayOrder,
			})
		}
	}

	for _, q := range questions {
		if tree.Category(q.CategoryID) == nil {
			tree.AddCategory(&model.CategoryNode{ID: q.CategoryID})
		}
		if tree.Subcategory(q.SubcategoryID) == nil {
			tree.AddSubcategory(&model.SubcategoryNode{
				ID:         q.SubcategoryID,
				CategoryID: q.CategoryID,
			})
		}
		tree.AddQuestion(q.SubcategoryID, &model.QuestionNode{
			AuditQuestionID:  q.ID,
			SourceQuestionID: q.SourceQuestionID,
			Text:             q.Text,
			DisplayOrder:     q.DisplayOrder,
			Answer:           answerByQuestion[q.ID],
		})
	}

	return tree
}

// RecordAnswer grava (upsert) a resposta de uma pergunta do snapshot.
// Gravação ansiosa, por campo: cada alteração persiste de imediato, sem
// lote. Revision zero recebe o próximo valor do relógio lógico da sessão.
func (u *AuditUseCase) RecordAnswer(session *model.AuditSession, auditQuestionID string, passed bool, comment, correctiveAction string, revision int64) (*entities.Answer, error) {
	if session == nil || session.Audit == nil {
		return nil, fmt.Errorf("%w: nenhuma auditoria carregada", entities.ErrValidation)
	}
	node := session.Tree.Question(auditQuestionID)
	if node == nil {
		return nil, fmt.Errorf("%w: pergunta %s não pertence à auditoria", entities.ErrValidation, auditQuestionID)
	}
	if revision <= 0 {
		revision = session.NextRevision()
	}

	answer := &entities.Answer{
		AuditQuestionID:  auditQuestionID,
		Passed:           passed,
		Comment:          comment,
		CorrectiveAction: correctiveAction,
		Revision:         revision,
	}
	if err := u.answerRepo.Upsert(answer); err != nil {
		return nil, err
	}

	// Reler a linha vencedora: se a revision era velha, o banco manteve a
	// resposta mais nova e é ela que volta para o cliente
	persisted, err := u.answerRepo.GetByAuditQuestion(auditQuestionID)
	if err != nil {
		return nil, err
	}
	if persisted == nil {
		persisted = answer
	}

	session.Tree.AttachAnswer(auditQuestionID, persisted)
	return persisted, nil
}

// ClearAnswer desfaz a resposta de uma pergunta, que volta a contar como não
// respondida na pontuação
func (u *AuditUseCase) ClearAnswer(session *model.AuditSession, auditQuestionID string) error {
	if session == nil || session.Audit == nil {
		return fmt.Errorf("%w: nenhuma auditoria carregada", entities.ErrValidation)
	}
	if session.Tree.Question(auditQuestionID) == nil {
		return fmt.Errorf("%w: pergunta %s não pertence à auditoria", entities.ErrValidation, auditQuestionID)
	}
	if err := u.answerRepo.DeleteByAuditQuestion(auditQuestionID); err != nil {
		return err
	}
	session.Tree.AttachAnswer(auditQuestionID, nil)
	return nil
}

// AddAdHocQuestion acrescenta uma pergunta avulsa: uma linha nova no
// catálogo mestre (display_order = máximo da subcategoria + 1), para que
// auditorias futuras a herdem, e a linha de snapshot correspondente na
// auditoria aberta — as duas na mesma transação.
func (u *AuditUseCase) AddAdHocQuestion(session *model.AuditSession, subcategoryID, text string) (*model.QuestionNode, error) {
	if session == nil || session.Audit == nil {
		return nil, fmt.Errorf("%w: nenhuma auditoria carregada", entities.ErrValidation)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: texto da pergunta vazio", entities.ErrValidation)
	}
	subNode := session.Tree.Subcategory(subcategoryID)
	if subNode == nil {
		return nil, fmt.Errorf("%w: subcategoria %s não pertence à auditoria", entities.ErrValidation, subcategoryID)
	}

	maxOrder, err := u.catalogRepo.MaxQuestionOrder(subcategoryID)
	if err != nil {
		return nil, err
	}

	question := &entities.Question{
		SubcategoryID: subcategoryID,
		Text:          text,
		DisplayOrder:  maxOrder + 1,
		Active:        true,
	}
	snapshot := &entities.AuditQuestion{
		AuditID:       session.Audit.ID,
		Text:          text,
		CategoryID:    subNode.CategoryID,
		SubcategoryID: subcategoryID,
		DisplayOrder:  maxOrder + 1,
	}

	if err := u.auditRepo.AddAdHocQuestion(question, snapshot); err != nil {
		return nil, err
	}
	u.catalog.InvalidateCache()

	node := &model.QuestionNode{
		AuditQuestionID:  snapshot.ID,
		SourceQuestionID: question.ID,
		Text:             text,
		DisplayOrder:     snapshot.DisplayOrder,
	}
	session.Tree.AddQuestion(subcategoryID, node)
	return node, nil
}

// HideQuestion remove a pergunta apenas desta auditoria: exclui a linha de
// snapshot e a resposta anexada em cascata. O catálogo mestre não muda e
// auditorias futuras continuam herdando a pergunta.
func (u *AuditUseCase) HideQuestion(session *model.AuditSession, auditQuestionID string) error {
	if session == nil || session.Audit == nil {
		return fmt.Errorf("%w: nenhuma auditoria carregada", entities.ErrValidation)
	}
	if session.Tree.Question(auditQuestionID) == nil {
		return fmt.Errorf("%w: pergunta %s não pertence à auditoria", entities.ErrValidation, auditQuestionID)
	}
	if err := u.auditRepo.RemoveQuestion(auditQuestionID); err != nil {
		return err
	}
	session.Tree.RemoveQuestion(auditQuestionID)
	return nil
}

// Summarize calcula o resumo de conformidade da sessão carregada
func (u *AuditUseCase) Summarize(session *model.AuditSession) (model.AuditSummary, error) {
	if session == nil || session.Audit == nil {
		return model.AuditSummary{}, fmt.Errorf("%w: nenhuma auditoria carregada", entities.ErrValidation)
	}
	return Summarize(session.Tree), nil
}

// Finalize calcula a nota ponderada e congela: persiste state = completed e
// total_score daquele instante. Os pesos vigentes das categorias entram no
// cálculo; a nota persistida não muda se os pesos mudarem depois.
func (u *AuditUseCase) Finalize(session *model.AuditSession, finalNotes *string) (model.AuditSummary, error) {
	summary, err := u.Summarize(session)
	if err != nil {
		return model.AuditSummary{}, err
	}
	if err := u.auditRepo.Finalize(session.Audit.ID, summary.Score, finalNotes); err != nil {
		return model.AuditSummary{}, err
	}

	session.Audit.State = entities.AuditCompleted
	session.Audit.TotalScore = summary.Score
	if finalNotes != nil {
		session.Audit.Notes = *finalNotes
	}
	session.Audit.UpdatedAt = time.Now()
	return summary, nil
}

// UpdateReviewedAudit re-persiste a nota e o updated_at de uma auditoria já
// concluída após edições no modo de revisão, sem alterar o estado. A linha
// de base da revisão é recapturada, então as mudanças salvas deixam de
// contar como pendentes.
func (u *AuditUseCase) UpdateReviewedAudit(session *model.AuditSession) (model.AuditSummary, error) {
	summary, err := u.Summarize(session)
	if err != nil {
		return model.AuditSummary{}, err
	}
	if err := u.auditRepo.UpdateScore(session.Audit.ID, summary.Score); err != nil {
		return model.AuditSummary{}, err
	}

	session.Audit.TotalScore = summary.Score
	session.Audit.UpdatedAt = time.Now()
	if session.Reviewing {
		session.BeginReview()
	}
	return summary, nil
}

// GetAudits retorna auditorias com filtros e paginação
func (u *AuditUseCase) GetAudits(params map[string]interface{}) ([]entities.Audit, int64, error) {
	return u.auditRepo.GetAudits(params)
}
