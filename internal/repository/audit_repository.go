package repository

import (
	"gorm.io/gorm"

	"github.com/campushire/jobboard/internal/models"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateRecord inserts a deletion snapshot. Records are write-once; there
// are no update or delete paths.
func (r *AuditRepository) CreateRecord(record *models.AuditRecord) error {
	return r.db.Create(record).Error
}

func (r *AuditRepository) GetAllRecords() ([]models.AuditRecord, error) {
	var records []models.AuditRecord
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}
