// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Tag model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
)

// CreateTag inserts a tag named name. Names are unique; a clash yields
// ErrDuplicate.
func CreateTag(ctx context.Context, db *gorm.DB, name string) (*domain.Tag, error) {
	t := &domain.Tag{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := create(ctx, db, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTag fetches a tag by ID, or ErrNotFound.
func GetTag(ctx context.Context, db *gorm.DB, id string) (*domain.Tag, error) {
	return getByID[domain.Tag](ctx, db, id)
}

// CountTags returns the total number of tags.
func CountTags(ctx context.Context, db *gorm.DB) (int64, error) {
	return countAll[domain.Tag](ctx, db)
}

// ListTagsPage returns a page of tags, newest first.
func ListTagsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Tag, error) {
	return listPage[domain.Tag](ctx, db, offset, limit)
}

// RenameTag changes the name of tag id.
func RenameTag(ctx context.Context, db *gorm.DB, id, name string) error {
	return updateByID[domain.Tag](ctx, db, id, map[string]any{"name": name})
}

// DeleteTag removes tag id.
func DeleteTag(ctx context.Context, db *gorm.DB, id string) error {
	return deleteByID[domain.Tag](ctx, db, id)
}
