package model

import (
	"testing"

	"github.com/retailops/auditoria-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTree(t *testing.T) *AuditTree {
	t.Helper()

	tree := NewAuditTree()
	tree.AddCategory(&CategoryNode{ID: "cat-1", Name: "Limpeza", Weight: 60})
	require.True(t, tree.AddSubcategory(&SubcategoryNode{ID: "sub-1", CategoryID: "cat-1", Name: "Salão"}))
	require.True(t, tree.AddQuestion("sub-1", &QuestionNode{AuditQuestionID: "aq-1", Text: "Piso limpo?"}))
	require.True(t, tree.AddQuestion("sub-1", &QuestionNode{AuditQuestionID: "aq-2", Text: "Vitrines sem poeira?"}))
	return tree
}

func TestNewAuditSessionSeedsRevisionClock(t *testing.T) {
	tree := sessionTree(t)
	tree.AttachAnswer("aq-1", &entities.Answer{AuditQuestionID: "aq-1", Passed: true, Revision: 7})
	tree.AttachAnswer("aq-2", &entities.Answer{AuditQuestionID: "aq-2", Passed: false, Revision: 3})

	session := NewAuditSession(&entities.Audit{ID: "audit-1"}, tree)
	assert.Equal(t, int64(8), session.NextRevision())
	assert.Equal(t, int64(9), session.NextRevision())
}

func TestAttachAnswerIgnoresStaleRevision(t *testing.T) {
	tree := sessionTree(t)

	assert.True(t, tree.AttachAnswer("aq-1", &entities.Answer{Passed: true, Revision: 5}))
	assert.False(t, tree.AttachAnswer("aq-1", &entities.Answer{Passed: false, Revision: 2}))

	node := tree.Question("aq-1")
	require.NotNil(t, node.Answer)
	assert.True(t, node.Answer.Passed)
	assert.Equal(t, int64(5), node.Answer.Revision)

	// Revision igual reaplica: o último gravador com o mesmo relógio vence
	assert.True(t, tree.AttachAnswer("aq-1", &entities.Answer{Passed: false, Revision: 5}))
	assert.False(t, node.Answer.Passed)
}

func TestReviewBaselineDetectsChanges(t *testing.T) {
	tree := sessionTree(t)
	tree.AttachAnswer("aq-1", &entities.Answer{AuditQuestionID: "aq-1", Passed: false, Comment: "sujo", Revision: 1})

	session := NewAuditSession(&entities.Audit{ID: "audit-1"}, tree)

	// Fora do modo de revisão nada conta como mudança
	assert.Nil(t, session.ChangedQuestions())
	assert.False(t, session.HasChanges())

	session.BeginReview()
	assert.False(t, session.HasChanges())

	tree.AttachAnswer("aq-1", &entities.Answer{AuditQuestionID: "aq-1", Passed: true, Comment: "resolvido", Revision: 2})
	tree.AttachAnswer("aq-2", &entities.Answer{AuditQuestionID: "aq-2", Passed: true, Revision: 3})

	changed := session.ChangedQuestions()
	assert.ElementsMatch(t, []string{"aq-1", "aq-2"}, changed)
	assert.True(t, session.HasChanges())
}

func TestCancelReviewDiscardsBaseline(t *testing.T) {
	tree := sessionTree(t)
	session := NewAuditSession(&entities.Audit{ID: "audit-1"}, tree)

	session.BeginReview()
	tree.AttachAnswer("aq-1", &entities.Answer{AuditQuestionID: "aq-1", Passed: true, Revision: 1})
	require.True(t, session.HasChanges())

	session.CancelReview()
	assert.False(t, session.Reviewing)
	assert.False(t, session.HasChanges())
}

func TestRemoveQuestionDropsFromTreeAndIndex(t *testing.T) {
	tree := sessionTree(t)

	assert.True(t, tree.RemoveQuestion("aq-1"))
	assert.Nil(t, tree.Question("aq-1"))
	assert.Equal(t, 1, tree.TotalQuestions())
	assert.False(t, tree.RemoveQuestion("aq-1"))
}
