// Payment HTTP handlers.
//
// This file exposes REST endpoints for payment authorizations:
//   - POST /payments        (create, honours Idempotency-Key)
//   - GET  /payments        (list, paginated)
//   - GET  /payments/{id}   (read)
package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/http/middleware"
	"github.com/tbourn/go-ecommerce-api/internal/services"
)

// HeaderIdempotentReplay marks a response served from an earlier request
// with the same Idempotency-Key.
const HeaderIdempotentReplay = "Idempotent-Replay"

// CreatePaymentRequest is the payload for recording a payment outcome.
type CreatePaymentRequest struct {
	XMLName xml.Name `json:"-" xml:"payment" swaggerignore:"true"`
	// Authorized must be present; false records a declined payment.
	Authorized *bool `json:"authorized" xml:"authorized" binding:"required" example:"true"`
	// Message is the processor's explanation, clipped to 512 characters.
	Message string `json:"message" xml:"message" example:"Approved"`
}

// ListPaymentsResponse wraps a page of payments and pagination information.
type ListPaymentsResponse struct {
	XMLName    xml.Name         `json:"-" xml:"payments" swaggerignore:"true"`
	Payments   []domain.Payment `json:"payments" xml:"payment"`
	Pagination Pagination       `json:"pagination" xml:"pagination"`
}

// CreatePayment godoc
// @ID          createPayment
// @Summary     Record a payment
// @Description Stores a payment outcome. With an Idempotency-Key, retries of the same
// @Description request return the original payment with 200 and Idempotent-Replay: true.
// @Tags        Payments
// @Accept      json,xml
// @Produce     json,xml
// @Param       X-User-ID        header  string  false  "Caller (scopes idempotency keys)"  example(user123)
// @Param       Idempotency-Key  header  string  false  "Retry-safe key"                    example(5f1c1c6e-pay-01)
// @Param       body             body    handlers.CreatePaymentRequest  true  "Payment"
// @Success     201  {object}  domain.Payment
// @Success     200  {object}  domain.Payment  "Replayed"
// @Header      200  {string}  Idempotent-Replay  "true when replayed"
// @Failure     400  {object}  apierr.Payload  "Invalid payload or Idempotency-Key"
// @Failure     409  {object}  apierr.Payload  "Key reused after expiry"
// @Failure     429  {object}  apierr.Payload  "Rate limited"
// @Router      /payments [post]
func (h *Handlers) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if !bind(c, &req) {
		return
	}

	var idem services.IdempotencyKey
	if key, ok := middleware.GetIdempotencyKey(c); ok {
		idem = services.IdempotencyKey{
			UserID: middleware.UserID(c),
			Scope:  middleware.IdempotencyScope(c),
			Key:    key,
		}
	}

	p, replayed, err := h.payments.Create(c.Request.Context(), idem, *req.Authorized, req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	if replayed {
		c.Header(HeaderIdempotentReplay, "true")
		respond(c, http.StatusOK, p)
		return
	}
	respond(c, http.StatusCreated, p)
}

// ListPayments godoc
// @ID          listPayments
// @Summary     List payments (paginated, newest first)
// @Tags        Payments
// @Produce     json,xml
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.ListPaymentsResponse
// @Failure     500  {object}  apierr.Payload
// @Router      /payments [get]
func (h *Handlers) ListPayments(c *gin.Context) {
	page, pageSize := clampPagination(c)
	items, total, err := h.payments.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, ListPaymentsResponse{Payments: items, Pagination: newPagination(page, pageSize, total)})
}

// GetPayment godoc
// @ID          getPayment
// @Summary     Get a payment
// @Tags        Payments
// @Produce     json,xml
// @Param       id   path      string  true  "Payment ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Payment
// @Failure     400  {object}  apierr.Payload  "Malformed id"
// @Failure     404  {object}  apierr.Payload  "Payment not found"
// @Router      /payments/{id} [get]
func (h *Handlers) GetPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.payments.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}
