package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	resgateModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/resgate/model"
	"github.com/jleandrodev/nextpage-sub000/internals/features/points/resgate/service"
	userModel "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/model"
)

// ResgateRepository — implementação GORM do service.Store do transator.
type ResgateRepository struct {
	db *gorm.DB
}

func NewResgateRepository(db *gorm.DB) *ResgateRepository {
	return &ResgateRepository{db: db}
}

// UserForUpdate: SELECT ... FOR UPDATE — serializa resgates concorrentes do
// mesmo usuário dentro da transação.
func (r *ResgateRepository) UserForUpdate(userID uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *ResgateRepository) DebitPoints(userID uuid.UUID, pontos int) error {
	res := r.db.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_saldo_pontos >= ?", userID, pontos).
		UpdateColumn("user_saldo_pontos", gorm.Expr("user_saldo_pontos - ?", pontos))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		// o serviço já checou o saldo sob lock; chegar aqui é anomalia
		return fmt.Errorf("débito de pontos não aplicado para o usuário %s", userID)
	}
	return nil
}

func (r *ResgateRepository) FindResgate(userID, ebookID uuid.UUID) (*resgateModel.ResgateModel, error) {
	var m resgateModel.ResgateModel
	if err := r.db.
		Where("resgate_user_id = ? AND resgate_ebook_id = ?", userID, ebookID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *ResgateRepository) CreateResgate(m *resgateModel.ResgateModel) error {
	return r.db.Create(m).Error
}

func (r *ResgateRepository) Transaction(fn func(tx service.Store) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewResgateRepository(tx))
	})
}
