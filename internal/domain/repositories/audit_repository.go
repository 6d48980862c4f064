package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"gorm.io/gorm"
)

// AuditRepository implementa o acesso a dados de auditorias e seus snapshots
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository cria uma nova instância de AuditRepository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{
		db: db,
	}
}

// CreateWithSnapshot insere a auditoria e todas as linhas de snapshot em uma
// única transação: ou a auditoria nasce com o snapshot completo, ou nada é
// persistido. Fecha a janela de "auditoria órfã" do fluxo em dois passos.
func (r *AuditRepository) CreateWithSnapshot(audit *entities.Audit, questions []entities.AuditQuestion) error {
	if audit.ID == "" {
		audit.ID = uuid.NewString()
	}
	now := time.Now()
	audit.CreatedAt = now
	audit.UpdatedAt = now

	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
		questions[i].AuditID = audit.ID
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(audit).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.CreateInBatches(questions, 200).Error
	})
	if err != nil {
		return fmt.Errorf("%w: falha ao criar auditoria com snapshot: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// GetAudit retorna uma auditoria pelo id
func (r *AuditRepository) GetAudit(id string) (*entities.Audit, error) {
	var audit entities.Audit
	err := r.db.Where("id = ?", id).First(&audit).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: auditoria %s", entities.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar auditoria: %v", entities.ErrDataAccess, err)
	}
	return &audit, nil
}

// GetAuditQuestions retorna as linhas de snapshot de uma auditoria ordenadas
func (r *AuditRepository) GetAuditQuestions(auditID string) ([]entities.AuditQuestion, error) {
	var questions []entities.AuditQuestion
	err := r.db.Where("audit_id = ?", auditID).Order("display_order asc").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar perguntas da auditoria: %v", entities.ErrDataAccess, err)
	}
	return questions, nil
}

// GetAnswers retorna as respostas de todas as perguntas de uma auditoria
func (r *AuditRepository) GetAnswers(auditID string) ([]entities.Answer, error) {
	var answers []entities.Answer
	err := r.db.
		Where("audit_question_id IN (?)",
			r.db.Model(&entities.AuditQuestion{}).Select("id").Where("audit_id = ?", auditID)).
		Find(&answers).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar respostas: %v", entities.ErrDataAccess, err)
	}
	return answers, nil
}

// AddAdHocQuestion insere a pergunta avulsa no catálogo mestre e a linha de
// snapshot correspondente na auditoria aberta, em uma única transação. As
// auditorias futuras herdam a pergunta; a atual passa a exibi-la de imediato.
func (r *AuditRepository) AddAdHocQuestion(question *entities.Question, snapshot *entities.AuditQuestion) error {
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	now := time.Now()
	question.CreatedAt = now
	question.UpdatedAt = now
	snapshot.SourceQuestionID = question.ID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		return tx.Create(snapshot).Error
	})
	if err != nil {
		return fmt.Errorf("%w: falha ao adicionar pergunta avulsa: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// RemoveQuestion exclui a linha de snapshot e qualquer resposta anexada,
// em transação. O catálogo mestre não é tocado.
func (r *AuditRepository) RemoveQuestion(auditQuestionID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("audit_question_id = ?", auditQuestionID).
			Delete(&entities.Answer{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", auditQuestionID).Delete(&entities.AuditQuestion{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		return fmt.Errorf("%w: pergunta de auditoria %s", entities.ErrNotFound, auditQuestionID)
	}
	if err != nil {
		return fmt.Errorf("%w: falha ao ocultar pergunta: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// Finalize marca a auditoria como concluída e congela a nota calculada
func (r *AuditRepository) Finalize(auditID string, totalScore int, notes *string) error {
	patch := map[string]interface{}{
		"state":       entities.AuditCompleted,
		"total_score": totalScore,
		"updated_at":  time.Now(),
	}
	if notes != nil {
		patch["notes"] = *notes
	}
	result := r.db.Model(&entities.Audit{}).Where("id = ?", auditID).Updates(patch)
	if result.Error != nil {
		return fmt.Errorf("%w: falha ao finalizar auditoria: %v", entities.ErrDataAccess, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: auditoria %s", entities.ErrNotFound, auditID)
	}
	return nil
}

// UpdateScore re-persiste a nota e o updated_at sem alterar o estado.
// Usado pelo "atualizar auditoria" do modo de revisão.
func (r *AuditRepository) UpdateScore(auditID string, totalScore int) error {
	result := r.db.Model(&entities.Audit{}).Where("id = ?", auditID).Updates(map[string]interface{}{
		"total_score": totalScore,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("%w: falha ao atualizar nota: %v", entities.ErrDataAccess, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: auditoria %s", entities.ErrNotFound, auditID)
	}
	return nil
}

// GetAudits retorna auditorias com filtros e paginação
func (r *AuditRepository) GetAudits(params map[string]interface{}) ([]entities.Audit, int64, error) {
	var audits []entities.Audit
	var total int64

	query := r.db.Model(&entities.Audit{})

	if storeID, ok := params["store_id"].(string); ok && storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	if auditorID, ok := params["auditor_id"].(string); ok && auditorID != "" {
		query = query.Where("auditor_id = ?", auditorID)
	}

	if state, ok := params["state"].(string); ok && state != "" {
		query = query.Where("state = ?", state)
	}

	if from, ok := params["from"].(time.Time); ok && !from.IsZero() {
		query = query.Where("date >= ?", from)
	}

	if to, ok := params["to"].(time.Time); ok && !to.IsZero() {
		query = query.Where("date <= ?", to)
	}

	page, _ := params["page"].(int)
	limit, _ := params["limit"].(int)

	if page <= 0 {
		page = 1
	}

	if limit <= 0 {
		limit = 10
	}

	// Contar total de registros antes da paginação
	query.Count(&total)

	sortBy, _ := params["sort_by"].(string)
	sortDirection, _ := params["sort_direction"].(string)

	if sortBy == "" {
		sortBy = "created_at"
	}

	if sortDirection == "" {
		sortDirection = "desc"
	}

	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortDirection))

	offset := (page - 1) * limit
	query = query.Offset(offset).Limit(limit)

	if err := query.Find(&audits).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: falha ao buscar auditorias: %v", entities.ErrDataAccess, err)
	}

	return audits, total, nil
}
