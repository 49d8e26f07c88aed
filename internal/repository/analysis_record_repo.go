package repository

import (
	"github.com/contractcheck/backend/internal/model"
	"gorm.io/gorm"
)

// AnalysisRecordRepository persists completed analysis runs.
type AnalysisRecordRepository interface {
	Create(record *model.AnalysisRecord) error
	GetByRecordID(recordID string) (*model.AnalysisRecord, error)
	List(limit int) ([]model.AnalysisRecord, error)
	Delete(recordID string) error
}

type analysisRecordRepository struct {
	db *gorm.DB
}

func NewAnalysisRecordRepository(db *gorm.DB) AnalysisRecordRepository {
	return &analysisRecordRepository{db: db}
}

func (r *analysisRecordRepository) Create(record *model.AnalysisRecord) error {
	return r.db.Create(record).Error
}

func (r *analysisRecordRepository) GetByRecordID(recordID string) (*model.AnalysisRecord, error) {
	var record model.AnalysisRecord
	err := r.db.Where("record_id = ?", recordID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *analysisRecordRepository) List(limit int) ([]model.AnalysisRecord, error) {
	var records []model.AnalysisRecord
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&records).Error
	return records, err
}

func (r *analysisRecordRepository) Delete(recordID string) error {
	return r.db.Where("record_id = ?", recordID).Delete(&model.AnalysisRecord{}).Error
}
