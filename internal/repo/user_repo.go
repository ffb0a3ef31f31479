// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
)

// CreateUser assigns an ID and UTC timestamp to u and inserts it.
// Duplicate usernames or emails yield ErrDuplicate.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	if u.Status == "" {
		u.Status = domain.UserActive
	}
	return create(ctx, db, u)
}

// GetUser fetches a user by ID, or ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	return getByID[domain.User](ctx, db, id)
}

// CountUsers returns the total number of (non-deleted) users.
func CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	return countAll[domain.User](ctx, db)
}

// ListUsersPage returns a page of users, newest first.
func ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error) {
	return listPage[domain.User](ctx, db, offset, limit)
}

// UpdateUser applies the given column values to user id.
func UpdateUser(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	return updateByID[domain.User](ctx, db, id, fields)
}

// DeleteUser removes user id.
func DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	return deleteByID[domain.User](ctx, db, id)
}
