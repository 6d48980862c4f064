package usecases

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/retailops/auditoria-api/internal/application/domain/model"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
	"github.com/retailops/auditoria-api/internal/infrastructure/cache"
	"github.com/retailops/auditoria-api/internal/infrastructure/database/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Banco em memória vive na conexão: o pool precisa ficar em uma só
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.Migrate(db))
	return db
}

type auditFixture struct {
	db          *gorm.DB
	catalogRepo *repositories.CatalogRepository
	auditRepo   *repositories.AuditRepository
	catalogUC   *CatalogUseCase
	auditUC     *AuditUseCase

	categoryA  *entities.Category
	categoryB  *entities.Category
	subA       *entities.Subcategory
	subB       *entities.Subcategory
	questionA1 *entities.Question
	questionA2 *entities.Question
	questionB1 *entities.Question
}

// newAuditFixture monta um catálogo mínimo: Limpeza (peso 60) com duas
// perguntas e Estoque (peso 40) com uma
func newAuditFixture(t *testing.T) *auditFixture {
	t.Helper()

	db := setupTestDB(t)
	catalogRepo := repositories.NewCatalogRepository(db)
	auditRepo := repositories.NewAuditRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)
	catalogUC := NewCatalogUseCase(catalogRepo, cache.New())
	auditUC := NewAuditUseCase(auditRepo, answerRepo, catalogRepo, catalogUC)

	categoryA, err := catalogUC.CreateCategory("Limpeza", 60, 1)
	require.NoError(t, err)
	categoryB, err := catalogUC.CreateCategory("Estoque", 40, 2)
	require.NoError(t, err)

	subA, err := catalogUC.CreateSubcategory(categoryA.ID, "Salão", 1)
	require.NoError(t, err)
	subB, err := catalogUC.CreateSubcategory(categoryB.ID, "Depósito", 1)
	require.NoError(t, err)

	questionA1, err := catalogUC.CreateQuestion(subA.ID, "Piso limpo?")
	require.NoError(t, err)
	questionA2, err := catalogUC.CreateQuestion(subA.ID, "Vitrines sem poeira?")
	require.NoError(t, err)
	questionB1, err := catalogUC.CreateQuestion(subB.ID, "Prateleiras organizadas?")
	require.NoError(t, err)

	return &auditFixture{
		db:          db,
		catalogRepo: catalogRepo,
		auditRepo:   auditRepo,
		catalogUC:   catalogUC,
		auditUC:     auditUC,
		categoryA:   categoryA,
		categoryB:   categoryB,
		subA:        subA,
		subB:        subB,
		questionA1:  questionA1,
		questionA2:  questionA2,
		questionB1:  questionB1,
	}
}

func (f *auditFixture) createAudit(t *testing.T) *model.AuditSession {
	t.Helper()
	session, err := f.auditUC.CreateAudit("loja-7", "auditor-1", time.Now(), "gerente", "")
	require.NoError(t, err)
	return session
}

// questionNode localiza o nó de snapshot originado de uma pergunta mestre
func questionNode(t *testing.T, tree *model.AuditTree, sourceQuestionID string) *model.QuestionNode {
	t.Helper()
	for _, cat := range tree.Categories {
		for _, sub := range cat.Subcategories {
			for _, q := range sub.Questions {
				if q.SourceQuestionID == sourceQuestionID {
					return q
				}
			}
		}
	}
	t.Fatalf("pergunta %s não encontrada na árvore", sourceQuestionID)
	return nil
}

func TestCreateAuditRequiresAuthenticatedAuditor(t *testing.T) {
	f := newAuditFixture(t)

	_, err := f.auditUC.CreateAudit("loja-7", "", time.Now(), "", "")
	assert.ErrorIs(t, err, entities.ErrAuthentication)
}

func TestCreateAuditMaterializesSnapshot(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)

	assert.Equal(t, entities.AuditInProgress, session.Audit.State)
	assert.Equal(t, 0, session.Audit.TotalScore)
	assert.Equal(t, 3, session.Tree.TotalQuestions())

	// Todos os nós devem sair com o id de snapshot reanexado
	for _, cat := range session.Tree.Categories {
		for _, sub := range cat.Subcategories {
			for _, q := range sub.Questions {
				assert.NotEmpty(t, q.AuditQuestionID)
			}
		}
	}

	rows, err := f.auditRepo.GetAuditQuestions(session.Audit.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestSnapshotTextImmuneToCatalogEdits(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)

	// Editar a pergunta mestre depois do snapshot
	require.NoError(t, f.catalogUC.UpdateQuestion(f.questionA1.ID, map[string]interface{}{
		"text": "Piso limpo e seco?",
	}))

	reloaded, err := f.auditUC.LoadAudit(session.Audit.ID)
	require.NoError(t, err)

	node := questionNode(t, reloaded.Tree, f.questionA1.ID)
	assert.Equal(t, "Piso limpo?", node.Text)
}

func TestLoadAuditGroupsUnderCurrentCategoryName(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)

	require.NoError(t, f.catalogUC.UpdateCategory(f.categoryA.ID, map[string]interface{}{
		"name": "Higiene",
	}))

	reloaded, err := f.auditUC.LoadAudit(session.Audit.ID)
	require.NoError(t, err)

	cat := reloaded.Tree.Category(f.categoryA.ID)
	require.NotNil(t, cat)
	assert.Equal(t, "Higiene", cat.Name)
	// O texto da pergunta continua o do snapshot
	assert.Equal(t, "Piso limpo?", questionNode(t, reloaded.Tree, f.questionA1.ID).Text)
}

func TestRecordAnswerUpsertsInPlace(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)
	node := questionNode(t, session.Tree, f.questionA1.ID)

	_, err := f.auditUC.RecordAnswer(session, node.AuditQuestionID, false, "sujo", "limpar", 0)
	require.NoError(t, err)
	_, err = f.auditUC.RecordAnswer(session, node.AuditQuestionID, true, "resolvido", "", 0)
	require.NoError(t, err)

	var count int64
	require.NoError(t, f.db.Model(&entities.Answer{}).
		Where("audit_question_id = ?", node.AuditQuestionID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var answer entities.Answer
	require.NoError(t, f.db.Where("audit_question_id = ?", node.AuditQuestionID).First(&answer).Error)
	assert.True(t, answer.Passed)
	assert.Equal(t, "resolvido", answer.Comment)
}

func TestRecordAnswerStaleRevisionDoesNotRegress(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)
	node := questionNode(t, session.Tree, f.questionA1.ID)

	_, err := f.auditUC.RecordAnswer(session, node.AuditQuestionID, true, "ok", "", 5)
	require.NoError(t, err)

	// Resposta atrasada na rede, com revision antiga: o retorno é a linha
	// vencedora, não a gravação descartada
	stale, err := f.auditUC.RecordAnswer(session, node.AuditQuestionID, false, "antiga", "", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stale.Revision)

	var answer entities.Answer
	require.NoError(t, f.db.Where("audit_question_id = ?", node.AuditQuestionID).First(&answer).Error)
	assert.True(t, answer.Passed)
	assert.Equal(t, "ok", answer.Comment)
	assert.Equal(t, int64(5), answer.Revision)

	// O estado em memória também não regride
	assert.True(t, node.Answer.Passed)
}

func TestClearAnswerReturnsQuestionToUnanswered(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)
	node := questionNode(t, session.Tree, f.questionA1.ID)

	_, err := f.auditUC.RecordAnswer(session, node.AuditQuestionID, true, "", "", 0)
	require.NoError(t, err)

	require.NoError(t, f.auditUC.ClearAnswer(session, node.AuditQuestionID))
	assert.Nil(t, node.Answer)

	var count int64
	require.NoError(t, f.db.Model(&entities.Answer{}).
		Where("audit_question_id = ?", node.AuditQuestionID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	summary, err := f.auditUC.Summarize(session)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Answered)
}

func TestRecordAnswerRejectsUnknownQuestion(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)

	_, err := f.auditUC.RecordAnswer(session, "inexistente", true, "", "", 0)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestHideQuestionCascadesAnswerAndSparesCatalog(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)
	node := questionNode(t, session.Tree, f.questionB1.ID)

	_, err := f.auditUC.RecordAnswer(session, node.AuditQuestionID, false, "bagunça", "organizar", 0)
	require.NoError(t, err)

	require.NoError(t, f.auditUC.HideQuestion(session, node.AuditQuestionID))

	var questionCount, answerCount int64
	f.db.Model(&entities.AuditQuestion{}).Where("id = ?", node.AuditQuestionID).Count(&questionCount)
	f.db.Model(&entities.Answer{}).Where("audit_question_id = ?", node.AuditQuestionID).Count(&answerCount)
	assert.Equal(t, int64(0), questionCount)
	assert.Equal(t, int64(0), answerCount)
	assert.Nil(t, session.Tree.Question(node.AuditQuestionID))

	// O catálogo mestre não muda e a próxima auditoria herda a pergunta
	master, err := f.catalogRepo.GetQuestion(f.questionB1.ID)
	require.NoError(t, err)
	assert.True(t, master.Active)

	next := f.createAudit(t)
	assert.Equal(t, 3, next.Tree.TotalQuestions())
}

func TestAdHocQuestionWritesCatalogAndSnapshot(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)

	node, err := f.auditUC.AddAdHocQuestion(session, f.subA.ID, "Lixeiras esvaziadas?")
	require.NoError(t, err)
	assert.NotEmpty(t, node.AuditQuestionID)
	assert.Equal(t, 4, session.Tree.TotalQuestions())

	// Uma linha nova no catálogo mestre, no fim da subcategoria
	master, err := f.catalogRepo.GetQuestion(node.SourceQuestionID)
	require.NoError(t, err)
	assert.Equal(t, "Lixeiras esvaziadas?", master.Text)
	assert.Equal(t, f.questionA2.DisplayOrder+1, master.DisplayOrder)

	// Uma linha nova de snapshot na auditoria aberta
	rows, err := f.auditRepo.GetAuditQuestions(session.Audit.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	// Auditorias futuras herdam a pergunta avulsa
	next := f.createAudit(t)
	assert.Equal(t, 4, next.Tree.TotalQuestions())
}

func TestAdHocQuestionRejectsEmptyText(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)

	_, err := f.auditUC.AddAdHocQuestion(session, f.subA.ID, "   ")
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestFinalizeFreezesScoreAgainstWeightEdits(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)

	// Limpeza 2/2 aprovadas (taxa 100), Estoque 0/1 (taxa 0):
	// nota = (100*60 + 0*40) / 100 = 60
	for _, source := range []struct {
		id     string
		passed bool
	}{
		{f.questionA1.ID, true},
		{f.questionA2.ID, true},
		{f.questionB1.ID, false},
	} {
		node := questionNode(t, session.Tree, source.id)
		_, err := f.auditUC.RecordAnswer(session, node.AuditQuestionID, source.passed, "", "", 0)
		require.NoError(t, err)
	}

	summary, err := f.auditUC.Finalize(session, nil)
	require.NoError(t, err)
	assert.Equal(t, 60, summary.Score)
	assert.Equal(t, entities.AuditCompleted, session.Audit.State)

	// Editar o peso depois não altera a nota persistida
	require.NoError(t, f.catalogUC.UpdateCategory(f.categoryB.ID, map[string]interface{}{
		"weight": 90,
	}))

	stored, err := f.auditRepo.GetAudit(session.Audit.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, stored.TotalScore)
	assert.Equal(t, entities.AuditCompleted, stored.State)
}

func TestUpdateReviewedAuditKeepsState(t *testing.T) {
	f := newAuditFixture(t)
	session := f.createAudit(t)

	node := questionNode(t, session.Tree, f.questionA1.ID)
	_, err := f.auditUC.RecordAnswer(session, node.AuditQuestionID, false, "", "", 0)
	require.NoError(t, err)

	_, err = f.auditUC.Finalize(session, nil)
	require.NoError(t, err)

	// Revisão: a resposta vira aprovada e a nota é re-persistida
	reloaded, err := f.auditUC.LoadAudit(session.Audit.ID)
	require.NoError(t, err)
	reloaded.BeginReview()

	_, err = f.auditUC.RecordAnswer(reloaded, node.AuditQuestionID, true, "corrigido", "", 0)
	require.NoError(t, err)
	assert.True(t, reloaded.HasChanges())

	summary, err := f.auditUC.UpdateReviewedAudit(reloaded)
	require.NoError(t, err)
	assert.Equal(t, 100, summary.Score)
	assert.False(t, reloaded.HasChanges())

	stored, err := f.auditRepo.GetAudit(session.Audit.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.TotalScore)
	assert.Equal(t, entities.AuditCompleted, stored.State)
}
