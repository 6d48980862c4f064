package model

import (
	"github.com/retailops/auditoria-api/internal/domain/entities"
)

// AuditSession é o contexto explícito de uma auditoria aberta: a linha da
// auditoria, sua árvore de perguntas e o estado do modo de revisão. Toda
// operação de gravação e pontuação recebe a sessão como argumento — não há
// estado ambiente de "auditoria atual".
type AuditSession struct {
	Audit *entities.Audit
	Tree  *AuditTree

	// Reviewing indica o modo de revisão/edição de uma auditoria concluída
	Reviewing bool

	baseline map[string]entities.Answer
	revision int64
}

// NewAuditSession cria a sessão e semeia o relógio lógico de revisões com a
// maior revision já persistida, para que novas gravações nunca fiquem atrás
// de respostas existentes.
func NewAuditSession(audit *entities.Audit, tree *AuditTree) *AuditSession {
	s := &AuditSession{Audit: audit, Tree: tree}
	for _, cat := range tree.Categories {
		for _, sub := range cat.Subcategories {
			for _, q := range sub.Questions {
				if q.Answer != nil && q.Answer.Revision > s.revision {
					s.revision = q.Answer.Revision
				}
			}
		}
	}
	return s
}

// NextRevision avança e retorna o relógio lógico da sessão
func (s *AuditSession) NextRevision() int64 {
	s.revision++
	return s.revision
}

// BeginReview entra no modo de revisão e captura a linha de base das
// respostas atuais, usada para detecção de mudanças.
func (s *AuditSession) BeginReview() {
	s.Reviewing = true
	s.baseline = make(map[string]entities.Answer)
	for _, cat := range s.Tree.Categories {
		for _, sub := range cat.Subcategories {
			for _, q := range sub.Questions {
				if q.Answer != nil {
					s.baseline[q.AuditQuestionID] = *q.Answer
				}
			}
		}
	}
}

// CancelReview sai do modo de revisão e descarta a linha de base.
// Gravações já persistidas durante a revisão não são desfeitas.
func (s *AuditSession) CancelReview() {
	s.Reviewing = false
	s.baseline = nil
}

// ChangedQuestions retorna os ids de snapshot cujas respostas divergem da
// linha de base capturada em BeginReview. Fora do modo de revisão retorna nil.
func (s *AuditSession) ChangedQuestions() []string {
	if !s.Reviewing || s.baseline == nil {
		return nil
	}
	var changed []string
	for _, cat := range s.Tree.Categories {
		for _, sub := range cat.Subcategories {
			for _, q := range sub.Questions {
				if q.AuditQuestionID == "" {
					continue
				}
				base, had := s.baseline[q.AuditQuestionID]
				switch {
				case q.Answer == nil && had:
					changed = append(changed, q.AuditQuestionID)
				case q.Answer != nil && !had:
					changed = append(changed, q.AuditQuestionID)
				case q.Answer != nil && had && answerDiffers(base, *q.Answer):
					changed = append(changed, q.AuditQuestionID)
				}
			}
		}
	}
	return changed
}

// HasChanges indica se alguma resposta diverge da linha de base
func (s *AuditSession) HasChanges() bool {
	return len(s.ChangedQuestions()) > 0
}

func answerDiffers(a, b entities.Answer) bool {
	return a.Passed != b.Passed ||
		a.Comment != b.Comment ||
		a.CorrectiveAction != b.CorrectiveAction
}
