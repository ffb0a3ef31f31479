// Package services – ShipmentService
//
// This file implements the ShipmentService, which tracks parcels handed to a
// carrier together with their estimated delivery date.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/repo"
)

// ShipmentService coordinates shipment persistence.
type ShipmentService struct {
	DB *gorm.DB
}

// Create stores a shipment for carrier. Carrier must be non-blank and
// estDelivery non-zero.
func (s *ShipmentService) Create(ctx context.Context, carrier string, estDelivery time.Time) (*domain.Shipment, error) {
	carrier = normalizeName(carrier)
	if carrier == "" || estDelivery.IsZero() {
		return nil, ErrInvalidShipment
	}
	return repo.CreateShipment(ctx, s.DB, carrier, estDelivery)
}

// Get returns shipment id.
func (s *ShipmentService) Get(ctx context.Context, id string) (*domain.Shipment, error) {
	sh, err := repo.GetShipment(ctx, s.DB, strings.TrimSpace(id))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrShipmentNotFound
	}
	return sh, err
}

// ListPage returns a page of shipments, newest first, and the total count.
func (s *ShipmentService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Shipment, int64, error) {
	return listPage(page, pageSize,
		func() (int64, error) { return repo.CountShipments(ctx, s.DB) },
		func(offset, limit int) ([]domain.Shipment, error) {
			return repo.ListShipmentsPage(ctx, s.DB, offset, limit)
		},
	)
}

// Delete removes shipment id.
func (s *ShipmentService) Delete(ctx context.Context, id string) error {
	err := repo.DeleteShipment(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrShipmentNotFound
	}
	return err
}
