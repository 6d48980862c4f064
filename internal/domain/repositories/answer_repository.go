package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnswerRepository implementa o acesso a dados das respostas de auditoria
type AnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository cria uma nova instância de AnswerRepository
func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{
		db: db,
	}
}

// Upsert grava a resposta com chave de conflito audit_question_id: no máximo
// uma linha por pergunta de snapshot, a gravação repetida sobrescreve no
// lugar. A cláusula WHERE do DO UPDATE descarta gravações com revision menor
// que a persistida, então uma resposta atrasada na rede nunca regride um
// estado mais novo (last-write-wins por relógio lógico, não por ordem de
// chegada).
func (r *AnswerRepository) Upsert(answer *entities.Answer) error {
	if answer.ID == "" {
		answer.ID = uuid.NewString()
	}
	now := time.Now()
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = now
	}
	answer.UpdatedAt = now

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "audit_question_id"}},
		Where: clause.Where{
			Exprs: []clause.Expression{
				gorm.Expr("answers.revision <= excluded.revision"),
			},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"passed", "comment", "corrective_action", "revision", "updated_at",
		}),
	}).Create(answer).Error
	if err != nil {
		return fmt.Errorf("%w: falha ao gravar resposta: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// GetByAuditQuestion retorna a resposta de uma pergunta de snapshot, ou nil
func (r *AnswerRepository) GetByAuditQuestion(auditQuestionID string) (*entities.Answer, error) {
	var answer entities.Answer
	err := r.db.Where("audit_question_id = ?", auditQuestionID).First(&answer).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar resposta: %v", entities.ErrDataAccess, err)
	}
	return &answer, nil
}

// DeleteByAuditQuestion exclui a resposta anexada a uma pergunta de snapshot
func (r *AnswerRepository) DeleteByAuditQuestion(auditQuestionID string) error {
	err := r.db.Where("audit_question_id = ?", auditQuestionID).Delete(&entities.Answer{}).Error
	if err != nil {
		return fmt.Errorf("%w: falha ao excluir resposta: %v", entities.ErrDataAccess, err)
	}
	return nil
}
