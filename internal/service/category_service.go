package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Category represents a category in the service layer. CategoryType is
// advisory; aggregation classifies by transaction amount sign.
type Category struct {
	ID           uuid.UUID
	Name         string
	CategoryType string
	CreatedAt    time.Time
}

// CategoryService handles category reads. Writes go through the operator.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns all of the user's categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{
			ID:           row.ID,
			Name:         row.Name,
			CategoryType: row.CategoryType,
			CreatedAt:    row.CreatedAt,
		}
	}
	return categories, nil
}
