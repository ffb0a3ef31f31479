// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Shipment
// model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
)

// CreateShipment inserts a shipment for carrier with the estimated delivery
// date stored in UTC.
func CreateShipment(ctx context.Context, db *gorm.DB, carrier string, estDelivery time.Time) (*domain.Shipment, error) {
	s := &domain.Shipment{
		ID:              uuid.NewString(),
		Carrier:         carrier,
		EstDeliveryDate: estDelivery.UTC(),
		CreatedAt:       time.Now().UTC(),
	}
	if err := create(ctx, db, s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetShipment fetches a shipment by ID, or ErrNotFound.
func GetShipment(ctx context.Context, db *gorm.DB, id string) (*domain.Shipment, error) {
	return getByID[domain.Shipment](ctx, db, id)
}

// CountShipments returns the total number of shipments.
func CountShipments(ctx context.Context, db *gorm.DB) (int64, error) {
	return countAll[domain.Shipment](ctx, db)
}

// ListShipmentsPage returns a page of shipments, newest first.
func ListShipmentsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Shipment, error) {
	return listPage[domain.Shipment](ctx, db, offset, limit)
}

// DeleteShipment soft-deletes shipment id.
func DeleteShipment(ctx context.Context, db *gorm.DB, id string) error {
	return deleteByID[domain.Shipment](ctx, db, id)
}
