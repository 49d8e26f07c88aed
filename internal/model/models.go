package model

import (
	"time"
)

// AnalysisRecord stores one completed contract analysis run.
type AnalysisRecord struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	RecordID       string     `json:"record_id" gorm:"size:64;uniqueIndex"` // UUID
	BusinessSize   string     `json:"business_size" gorm:"size:50"`
	WorkerTypes    string     `json:"worker_types" gorm:"size:255"` // comma separated
	RiskLevel      string     `json:"risk_level" gorm:"size:10"`    // 상, 중, 하
	OverallStatus  string     `json:"overall_status" gorm:"size:20"`
	Status         string     `json:"status" gorm:"size:50;default:completed"` // completed, partial, failed
	TotalItems     int        `json:"total_items" gorm:"default:0"`
	ViolationCount int        `json:"violation_count" gorm:"default:0"`
	WarningCount   int        `json:"warning_count" gorm:"default:0"`
	Report         string     `json:"report" gorm:"type:text"` // full MergedReport JSON
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}

// GeneratedContract stores a standard contract rendered from an analysis.
type GeneratedContract struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RecordID  string    `json:"record_id" gorm:"size:64;index"` // AnalysisRecord.RecordID
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
