// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file holds the generic query helpers shared by the
// per-entity repositories.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions. They follow the "thin repository"
// approach: no business logic, only persistence and query composition.
//
// Error semantics:
//   - Missing rows yield gorm.ErrRecordNotFound (exported as ErrNotFound).
//   - Unique violations yield ErrDuplicate.
//   - Other DB errors are propagated unchanged.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates that a row with the same unique attributes exists.
var ErrDuplicate = errors.New("duplicate")

// newestFirst orders rows by creation time, with id as a stable tie-break.
const newestFirst = "created_at desc, id desc"

func getByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var out T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func countAll[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(new(T)).Count(&total).Error
	return total, err
}

// listPage returns rows newest first. The caller computes offset and limit
// (e.g., (page-1)*pageSize).
func listPage[T any](ctx context.Context, db *gorm.DB, offset, limit int) ([]T, error) {
	out := []T{}
	err := db.WithContext(ctx).
		Order(newestFirst).
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// deleteByID removes the row with id, or soft-deletes it when T carries
// gorm.DeletedAt. It returns
// ErrNotFound when nothing matched.
func deleteByID[T any](ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// updateByID applies fields to the row with id. It returns ErrNotFound when
// nothing matched and ErrDuplicate on unique violations.
func updateByID[T any](ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	res := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func create[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return translate(db.WithContext(ctx).Create(row).Error)
}

// translate maps driver-specific unique violations to ErrDuplicate.
// glebarez/sqlite sometimes returns plain-text errors that TranslateError
// does not recognize.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	low := strings.ToLower(err.Error())
	if strings.Contains(low, "unique constraint") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "duplicate key") ||
		strings.Contains(low, "duplicate entry") {
		return ErrDuplicate
	}
	return err
}
