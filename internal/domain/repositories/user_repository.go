package repositories

import (
	"fmt"

	"github.com/retailops/auditoria-api/internal/domain/entities"
	"gorm.io/gorm"
)

// UserRepository implementa o acesso a dados de funcionários e auditores
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// FindByID retorna um usuário pelo id
func (r *UserRepository) FindByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: usuário %s", entities.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar usuário: %v", entities.ErrDataAccess, err)
	}
	return &user, nil
}

// FindActive retorna todos os usuários ativos
func (r *UserRepository) FindActive() ([]entities.User, error) {
	var users []entities.User
	err := r.db.Where("active = ?", true).Order("full_name asc").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar usuários: %v", entities.ErrDataAccess, err)
	}
	return users, nil
}

// FindByRole retorna usuários ativos por papel. O papel "auditor" inclui
// administradores, que também conduzem auditorias.
func (r *UserRepository) FindByRole(role string) ([]entities.User, error) {
	var users []entities.User
	query := r.db.Where("active = ?", true)

	switch role {
	case "auditor":
		query = query.Where("role IN ?", []string{"auditor", "admin"})
	default:
		query = query.Where("role = ?", role)
	}

	err := query.Order("full_name asc").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar usuários: %v", entities.ErrDataAccess, err)
	}
	return users, nil
}
