// Shipment HTTP handlers.
//
// This file exposes REST endpoints for shipments:
//   - POST   /shipments        (create)
//   - GET    /shipments        (list, paginated)
//   - GET    /shipments/{id}   (read)
//   - DELETE /shipments/{id}   (delete)
package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ecommerce-api/internal/apierr"
	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/http/middleware"
)

// CreateShipmentRequest is the payload for registering a shipment.
type CreateShipmentRequest struct {
	XMLName xml.Name `json:"-" xml:"shipment" swaggerignore:"true"`
	Carrier string   `json:"carrier" xml:"carrier" binding:"required,max=128" example:"DHL Express"`
	// EstDeliveryDate accepts RFC 3339 timestamps or plain dates (YYYY-MM-DD).
	EstDeliveryDate string `json:"estDeliveryDate" xml:"estDeliveryDate" binding:"required" example:"2025-03-14"`
}

// deliveryLayouts are tried in order when parsing EstDeliveryDate.
var deliveryLayouts = []string{time.RFC3339Nano, time.DateOnly}

func parseDeliveryDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range deliveryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ListShipmentsResponse wraps a page of shipments and pagination information.
type ListShipmentsResponse struct {
	XMLName    xml.Name          `json:"-" xml:"shipments" swaggerignore:"true"`
	Shipments  []domain.Shipment `json:"shipments" xml:"shipment"`
	Pagination Pagination        `json:"pagination" xml:"pagination"`
}

// CreateShipment godoc
// @ID          createShipment
// @Summary     Register a shipment
// @Tags        Shipments
// @Accept      json,xml
// @Produce     json,xml
// @Param       body  body      handlers.CreateShipmentRequest  true  "Shipment"
// @Success     201   {object}  domain.Shipment
// @Failure     400   {object}  apierr.Payload  "Missing carrier or bad date"
// @Failure     415   {object}  apierr.Payload  "Unsupported Content-Type"
// @Router      /shipments [post]
func (h *Handlers) CreateShipment(c *gin.Context) {
	var req CreateShipmentRequest
	if !bind(c, &req) {
		return
	}
	eta, ok := parseDeliveryDate(req.EstDeliveryDate)
	if !ok {
		middleware.Fail(c, apierr.Newf(apierr.ValidationFailed, "estDeliveryDate %q is not a date", req.EstDeliveryDate))
		return
	}
	sh, err := h.shipments.Create(c.Request.Context(), req.Carrier, eta)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, sh)
}

// ListShipments godoc
// @ID          listShipments
// @Summary     List shipments (paginated, newest first)
// @Tags        Shipments
// @Produce     json,xml
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.ListShipmentsResponse
// @Failure     500  {object}  apierr.Payload
// @Router      /shipments [get]
func (h *Handlers) ListShipments(c *gin.Context) {
	page, pageSize := clampPagination(c)
	items, total, err := h.shipments.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, ListShipmentsResponse{Shipments: items, Pagination: newPagination(page, pageSize, total)})
}

// GetShipment godoc
// @ID          getShipment
// @Summary     Get a shipment
// @Tags        Shipments
// @Produce     json,xml
// @Param       id   path      string  true  "Shipment ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Shipment
// @Failure     400  {object}  apierr.Payload  "Malformed id"
// @Failure     404  {object}  apierr.Payload  "Shipment not found"
// @Router      /shipments/{id} [get]
func (h *Handlers) GetShipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sh, err := h.shipments.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, sh)
}

// DeleteShipment godoc
// @ID          deleteShipment
// @Summary     Delete a shipment
// @Tags        Shipments
// @Param       id   path      string  true  "Shipment ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  apierr.Payload  "Shipment not found"
// @Router      /shipments/{id} [delete]
func (h *Handlers) DeleteShipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.shipments.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
