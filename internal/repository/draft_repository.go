package repository

import (
	"fmt"

	"gorm.io/gorm"

	"mailsmith/internal/model"
)

type DraftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Create inserts the draft and fills in its assigned id and created_at.
// Subject validation is the API layer's job; the store accepts what it is given.
func (r *DraftRepository) Create(draft *model.Draft) error {
	if err := r.db.Create(draft).Error; err != nil {
		return fmt.Errorf("create draft failed: %w", err)
	}
	return nil
}

// ListNewestFirst returns every stored draft ordered by id descending.
func (r *DraftRepository) ListNewestFirst() ([]model.Draft, error) {
	var drafts []model.Draft
	if err := r.db.Order("id DESC").Find(&drafts).Error; err != nil {
		return nil, fmt.Errorf("list drafts failed: %w", err)
	}
	return drafts, nil
}
