package entities

import (
	"time"
)

// AuditState representa o estado do ciclo de vida de uma auditoria
type AuditState string

const (
	AuditInProgress AuditState = "in_progress"
	AuditCompleted  AuditState = "completed"
	AuditReviewed   AuditState = "reviewed"
)

// Audit representa uma auditoria de loja.
// TotalScore guarda a nota ponderada calculada no momento da finalização.
type Audit struct {
	ID         string     `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	StoreID    string     `json:"store_id" gorm:"column:store_id;type:uuid"`
	AuditorID  string     `json:"auditor_id" gorm:"column:auditor_id;type:uuid"`
	Date       time.Time  `json:"date" gorm:"column:date"`
	Recipients string     `json:"recipients" gorm:"column:recipients"`
	Notes      string     `json:"notes" gorm:"column:notes"`
	State      AuditState `json:"state" gorm:"column:state"`
	TotalScore int        `json:"total_score" gorm:"column:total_score"`
	CreatedAt  time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Questions []AuditQuestion `json:"questions,omitempty" gorm:"foreignKey:AuditID"`
}

// AuditQuestion é a cópia imutável (snapshot) de uma pergunta do catálogo,
// capturada na criação da auditoria. O texto é uma cópia por valor: edições
// posteriores na pergunta mestre não se propagam. CategoryID e SubcategoryID
// são desnormalizados para preservar a posição na hierarquia daquele momento.
type AuditQuestion struct {
	ID               string `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	AuditID          string `json:"audit_id" gorm:"column:audit_id;type:uuid;index"`
	SourceQuestionID string `json:"source_question_id" gorm:"column:source_question_id;type:uuid"`
	Text             string `json:"text" gorm:"column:text"`
	CategoryID       string `json:"category_id" gorm:"column:category_id;type:uuid"`
	SubcategoryID    string `json:"subcategory_id" gorm:"column:subcategory_id;type:uuid"`
	DisplayOrder     int    `json:"display_order" gorm:"column:display_order"`

	// Relações
	Answer *Answer `json:"answer,omitempty" gorm:"foreignKey:AuditQuestionID"`
}

// Answer é a resposta de uma pergunta de auditoria. No máximo uma resposta
// por AuditQuestion: gravações repetidas sobrescrevem via upsert.
// Revision é um timestamp lógico do cliente; um upsert com revision menor
// que o já persistido é descartado, para que respostas atrasadas na rede
// nunca regridam um estado mais novo.
type Answer struct {
	ID               string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	AuditQuestionID  string    `json:"audit_question_id" gorm:"column:audit_question_id;type:uuid;uniqueIndex"`
	Passed           bool      `json:"passed" gorm:"column:passed"`
	Comment          string    `json:"comment" gorm:"column:comment"`
	CorrectiveAction string    `json:"corrective_action" gorm:"column:corrective_action"`
	Revision         int64     `json:"revision" gorm:"column:revision"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at"`
}
