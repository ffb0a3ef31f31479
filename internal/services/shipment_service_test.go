package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestShipmentService_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := &ShipmentService{DB: db}
	ctx := context.Background()
	eta := time.Now().Add(72 * time.Hour)

	if _, err := svc.Create(ctx, "  ", eta); !errors.Is(err, ErrInvalidShipment) {
		t.Fatalf("want ErrInvalidShipment for blank carrier, got %v", err)
	}
	if _, err := svc.Create(ctx, "UPS", time.Time{}); !errors.Is(err, ErrInvalidShipment) {
		t.Fatalf("want ErrInvalidShipment for zero ETA, got %v", err)
	}

	s, err := svc.Create(ctx, " Royal   Mail ", eta)
	if err != nil || s.Carrier != "Royal Mail" {
		t.Fatalf("Create: %+v err=%v", s, err)
	}
	got, err := svc.Get(ctx, s.ID)
	if err != nil || got.ID != s.ID {
		t.Fatalf("Get: %+v err=%v", got, err)
	}
	if _, total, _ := svc.ListPage(ctx, 1, 5); total != 1 {
		t.Fatalf("ListPage total=%d", total)
	}
	if err := svc.Delete(ctx, s.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, s.ID); !errors.Is(err, ErrShipmentNotFound) {
		t.Fatalf("want ErrShipmentNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, s.ID); !errors.Is(err, ErrShipmentNotFound) {
		t.Fatalf("want ErrShipmentNotFound on second delete, got %v", err)
	}
}
