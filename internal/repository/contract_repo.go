package repository

import (
	"github.com/contractcheck/backend/internal/model"
	"gorm.io/gorm"
)

// ContractRepository persists generated standard contracts.
type ContractRepository interface {
	Create(contract *model.GeneratedContract) error
	GetByRecordID(recordID string) ([]model.GeneratedContract, error)
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(contract *model.GeneratedContract) error {
	return r.db.Create(contract).Error
}

func (r *contractRepository) GetByRecordID(recordID string) ([]model.GeneratedContract, error) {
	var contracts []model.GeneratedContract
	err := r.db.Where("record_id = ?", recordID).Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}
