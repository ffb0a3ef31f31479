// Package services – PaymentService
//
// This file implements the PaymentService, which records payment
// authorization outcomes. Creation supports safe retries: when the caller
// supplies an idempotency key, the first request stores the payment together
// with an idempotency record in one transaction, and later requests with the
// same (user, scope, key) return the stored payment instead of creating a new
// one.
//
// Observability: public methods are OpenTelemetry-instrumented.
package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/repo"
)

// PaymentService coordinates payment persistence and idempotent creation.
type PaymentService struct {
	DB *gorm.DB

	// IdempotencyTTL bounds how long a key replays the original payment.
	IdempotencyTTL time.Duration

	// MaxMessageRunes clips the processor message (0 disables clipping).
	MaxMessageRunes int

	now func() time.Time
}

// IdempotencyKey scopes a retry-safe create to one caller and endpoint.
// A zero value (empty Key) disables replay.
type IdempotencyKey struct {
	UserID string
	Scope  string
	Key    string
}

// Create records a payment. With a non-empty key it returns the payment from
// an earlier request with the same key (replayed=true) instead of inserting
// a new row.
func (s *PaymentService) Create(ctx context.Context, idem IdempotencyKey, authorized bool, message string) (p *domain.Payment, replayed bool, err error) {
	ctx, span := otel.Tracer("services/PaymentService").Start(ctx, "Create",
		trace.WithAttributes(
			attribute.Bool("payment.authorized", authorized),
			attribute.Bool("idempotent", idem.Key != ""),
		),
	)
	defer span.End()

	message = clipRunes(strings.TrimSpace(message), s.MaxMessageRunes)

	if idem.Key == "" {
		p, err = repo.CreatePayment(ctx, s.DB, authorized, message)
		return p, false, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prev, ok, err := s.lookup(ctx, tx, idem)
		if err != nil {
			return err
		}
		if ok {
			p, replayed = prev, true
			return nil
		}

		created, err := repo.CreatePayment(ctx, tx, authorized, message)
		if err != nil {
			return err
		}
		if _, err := repo.CreateIdempotency(ctx, tx, idem.UserID, idem.Scope, idem.Key, created.ID, http.StatusCreated, s.ttl()); err != nil {
			return err
		}
		p = created
		return nil
	})

	// A concurrent request with the same key committed first.
	if errors.Is(err, repo.ErrDuplicate) {
		prev, ok, lerr := s.lookup(ctx, s.DB, idem)
		if lerr != nil {
			return nil, false, lerr
		}
		if ok {
			span.SetAttributes(attribute.Bool("idempotent.replay", true))
			return prev, true, nil
		}
	}
	if err != nil {
		return nil, false, err
	}
	span.SetAttributes(attribute.Bool("idempotent.replay", replayed))
	return p, replayed, nil
}

// Get returns payment id.
func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	ctx, span := otel.Tracer("services/PaymentService").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("payment.id", id)),
	)
	defer span.End()

	p, err := repo.GetPayment(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPaymentNotFound
	}
	return p, err
}

// ListPage returns a page of payments, newest first, and the total count.
func (s *PaymentService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Payment, int64, error) {
	ctx, span := otel.Tracer("services/PaymentService").Start(ctx, "ListPage",
		trace.WithAttributes(
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	return listPage(page, pageSize,
		func() (int64, error) { return repo.CountPayments(ctx, s.DB) },
		func(offset, limit int) ([]domain.Payment, error) {
			return repo.ListPaymentsPage(ctx, s.DB, offset, limit)
		},
	)
}

// lookup returns the payment stored under idem, if any.
func (s *PaymentService) lookup(ctx context.Context, db *gorm.DB, idem IdempotencyKey) (*domain.Payment, bool, error) {
	rec, err := repo.GetIdempotency(ctx, db, idem.UserID, idem.Scope, idem.Key, s.clock())
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	p, err := repo.GetPayment(ctx, db, rec.ResourceID)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (s *PaymentService) ttl() time.Duration {
	if s.IdempotencyTTL > 0 {
		return s.IdempotencyTTL
	}
	return 24 * time.Hour
}

func (s *PaymentService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}

// clipRunes truncates s to at most max runes (max <= 0 disables).
func clipRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
