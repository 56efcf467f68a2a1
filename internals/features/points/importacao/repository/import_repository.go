package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	histModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/history/model"
	impModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/model"
	"github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/service"
	userModel "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/model"
)

// ImportRepository — implementação GORM do service.Store.
type ImportRepository struct {
	db *gorm.DB
}

func NewImportRepository(db *gorm.DB) *ImportRepository {
	return &ImportRepository{db: db}
}

func (r *ImportRepository) FindUserByCPF(cpf string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := r.db.Where("user_cpf = ?", cpf).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *ImportRepository) CreateUser(u *userModel.UserModel) error {
	return r.db.Create(u).Error
}

func (r *ImportRepository) UpdateUser(u *userModel.UserModel) error {
	return r.db.Save(u).Error
}

// AddPoints incrementa o saldo direto no banco (sem read-modify-write).
func (r *ImportRepository) AddPoints(userID uuid.UUID, pontos int) error {
	res := r.db.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		UpdateColumn("user_saldo_pontos", gorm.Expr("user_saldo_pontos + ?", pontos))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("usuário %s não encontrado para crédito de pontos", userID)
	}
	return nil
}

func (r *ImportRepository) AppendHistory(h *histModel.PointsHistoryModel) error {
	return r.db.Create(h).Error
}

func (r *ImportRepository) CreateImport(b *impModel.PointsImportModel) error {
	return r.db.Create(b).Error
}

func (r *ImportRepository) SaveImport(b *impModel.PointsImportModel) error {
	return r.db.Save(b).Error
}

func (r *ImportRepository) Transaction(fn func(tx service.Store) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewImportRepository(tx))
	})
}
