// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Payment
// model. Payments are append-only: there is no update or delete.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
)

// CreatePayment records an authorization outcome.
func CreatePayment(ctx context.Context, db *gorm.DB, authorized bool, message string) (*domain.Payment, error) {
	p := &domain.Payment{
		ID:         uuid.NewString(),
		Authorized: authorized,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}
	// Select every column so an explicit false is written instead of
	// being replaced by the column default.
	if err := translate(db.WithContext(ctx).Select("*").Create(p).Error); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPayment fetches a payment by ID, or ErrNotFound.
func GetPayment(ctx context.Context, db *gorm.DB, id string) (*domain.Payment, error) {
	return getByID[domain.Payment](ctx, db, id)
}

// CountPayments returns the total number of payments.
func CountPayments(ctx context.Context, db *gorm.DB) (int64, error) {
	return countAll[domain.Payment](ctx, db)
}

// ListPaymentsPage returns a page of payments, newest first.
func ListPaymentsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Payment, error) {
	return listPage[domain.Payment](ctx, db, offset, limit)
}
