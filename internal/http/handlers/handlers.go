// Package handlers exposes the REST endpoints of the e-commerce API.
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses. Failures are attached
// to the request and answered by the error dispatcher (see
// middleware.Dispatcher), so every error leaves the API in the same shape.
package handlers

import (
	"context"
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tbourn/go-ecommerce-api/internal/apierr"
	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/http/middleware"
	"github.com/tbourn/go-ecommerce-api/internal/services"
	"github.com/tbourn/go-ecommerce-api/internal/utils"
)

//
// Service contracts (context-aware)
//

// UserService defines account operations consumed by HTTP handlers.
type UserService interface {
	Create(ctx context.Context, in services.UserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	ListPage(ctx context.Context, page, pageSize int) ([]domain.User, int64, error)
	Update(ctx context.Context, id string, in services.UserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// TagService defines tag operations consumed by HTTP handlers.
type TagService interface {
	Create(ctx context.Context, name string) (*domain.Tag, error)
	Get(ctx context.Context, id string) (*domain.Tag, error)
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Tag, int64, error)
	Rename(ctx context.Context, id, name string) (*domain.Tag, error)
	Delete(ctx context.Context, id string) error
}

// PaymentService defines payment operations consumed by HTTP handlers.
//
// Create must honour idem: a repeated key returns the original payment with
// replayed=true.
type PaymentService interface {
	Create(ctx context.Context, idem services.IdempotencyKey, authorized bool, message string) (*domain.Payment, bool, error)
	Get(ctx context.Context, id string) (*domain.Payment, error)
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Payment, int64, error)
}

// ShipmentService defines shipment operations consumed by HTTP handlers.
type ShipmentService interface {
	Create(ctx context.Context, carrier string, estDelivery time.Time) (*domain.Shipment, error)
	Get(ctx context.Context, id string) (*domain.Shipment, error)
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Shipment, int64, error)
	Delete(ctx context.Context, id string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for users, tags, payments and shipments.
type Handlers struct {
	users     UserService
	tags      TagService
	payments  PaymentService
	shipments ShipmentService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(users UserService, tags TagService, payments PaymentService, shipments ShipmentService) *Handlers {
	return &Handlers{users: users, tags: tags, payments: payments, shipments: shipments}
}

//
// DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"        xml:"page"`
	PageSize   int   `json:"page_size"   xml:"page_size"`
	Total      int64 `json:"total"       xml:"total"`
	TotalPages int   `json:"total_pages" xml:"total_pages"`
	HasNext    bool  `json:"has_next"    xml:"has_next"`
}

func newPagination(page, pageSize int, total int64) Pagination {
	totalPages := utils.TotalPages(total, pageSize)
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	XMLName xml.Name `json:"-" xml:"health" swaggerignore:"true"`
	Status  string   `json:"status" xml:"status" example:"ok"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = max(utils.AtoiDefault(c.Query("page"), defaultPage), 1)
	pageSize = utils.Clamp(utils.AtoiDefault(c.Query("page_size"), defaultPageSize), 1, maxPageSize)
	return
}

// pathID returns the :id path parameter if it is a UUID. Otherwise the
// request fails with ValidationFailed and ok is false.
func pathID(c *gin.Context) (id string, ok bool) {
	id = c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		middleware.Fail(c, apierr.Newf(apierr.ValidationFailed, "id %q is not a UUID", id))
		return "", false
	}
	return id, true
}

// bind decodes the request body into dst according to Content-Type and runs
// the binding validations. Decoding and validation errors are attached to
// the request as-is so the dispatcher can classify them.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		middleware.Fail(c, err)
		return false
	}
	return true
}

// Health godoc
// @ID          health
// @Summary     Liveness probe
// @Tags        System
// @Produce     json,xml
// @Success     200  {object}  handlers.HealthResponse
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	respond(c, http.StatusOK, HealthResponse{Status: "ok"})
}
