package repository

import (
	"fmt"

	"gorm.io/gorm"

	"mailsmith/internal/model"
)

// LeadRepository only inserts. Nothing reads leads back yet; the table exists
// for external capture tooling.
type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(lead *model.Lead) error {
	if err := r.db.Create(lead).Error; err != nil {
		return fmt.Errorf("create lead failed: %w", err)
	}
	return nil
}
