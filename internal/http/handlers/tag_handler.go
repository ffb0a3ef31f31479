// Tag HTTP handlers.
//
// This file exposes REST endpoints for catalog tags:
//   - POST   /tags        (create)
//   - GET    /tags        (list, paginated)
//   - GET    /tags/{id}   (read)
//   - PUT    /tags/{id}   (rename)
//   - DELETE /tags/{id}   (delete)
package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
)

// TagRequest is the payload for creating or renaming a tag.
type TagRequest struct {
	XMLName xml.Name `json:"-" xml:"tag" swaggerignore:"true"`
	// Name is trimmed and Unicode-normalized before it is stored.
	Name string `json:"name" xml:"name" binding:"required" example:"books"`
}

// ListTagsResponse wraps a page of tags and pagination information.
type ListTagsResponse struct {
	XMLName    xml.Name     `json:"-" xml:"tags" swaggerignore:"true"`
	Tags       []domain.Tag `json:"tags" xml:"tag"`
	Pagination Pagination   `json:"pagination" xml:"pagination"`
}

// CreateTag godoc
// @ID          createTag
// @Summary     Create a tag
// @Tags        Tags
// @Accept      json,xml
// @Produce     json,xml
// @Param       body  body      handlers.TagRequest  true  "Tag"
// @Success     201   {object}  domain.Tag
// @Failure     400   {object}  apierr.Payload  "Invalid JSON or empty name"
// @Failure     406   {object}  apierr.Payload  "Unreadable payload or unsupported Accept"
// @Failure     409   {object}  apierr.Payload  "Tag already exists"
// @Failure     415   {object}  apierr.Payload  "Unsupported Content-Type"
// @Router      /tags [post]
func (h *Handlers) CreateTag(c *gin.Context) {
	var req TagRequest
	if !bind(c, &req) {
		return
	}
	t, err := h.tags.Create(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, t)
}

// ListTags godoc
// @ID          listTags
// @Summary     List tags (paginated, newest first)
// @Tags        Tags
// @Produce     json,xml
// @Param       If-None-Match  header  string  false  "Return 304 if the ETag matches"
// @Param       page           query   int     false  "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.ListTagsResponse
// @Header      200  {string}  ETag  "Hash of the response body"
// @Success     304  {string}  string  "Not Modified"
// @Failure     500  {object}  apierr.Payload
// @Router      /tags [get]
func (h *Handlers) ListTags(c *gin.Context) {
	page, pageSize := clampPagination(c)
	items, total, err := h.tags.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, ListTagsResponse{Tags: items, Pagination: newPagination(page, pageSize, total)})
}

// GetTag godoc
// @ID          getTag
// @Summary     Get a tag
// @Tags        Tags
// @Produce     json,xml
// @Param       id   path      string  true  "Tag ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Tag
// @Failure     400  {object}  apierr.Payload  "Malformed id"
// @Failure     404  {object}  apierr.Payload  "Tag not found"
// @Router      /tags/{id} [get]
func (h *Handlers) GetTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.tags.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, t)
}

// RenameTag godoc
// @ID          renameTag
// @Summary     Rename a tag
// @Tags        Tags
// @Accept      json,xml
// @Produce     json,xml
// @Param       id    path      string               true  "Tag ID (UUID)"  format(uuid)
// @Param       body  body      handlers.TagRequest  true  "New name"
// @Success     200   {object}  domain.Tag
// @Failure     400   {object}  apierr.Payload
// @Failure     404   {object}  apierr.Payload  "Tag not found"
// @Failure     409   {object}  apierr.Payload  "Name already used"
// @Router      /tags/{id} [put]
func (h *Handlers) RenameTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req TagRequest
	if !bind(c, &req) {
		return
	}
	t, err := h.tags.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, t)
}

// DeleteTag godoc
// @ID          deleteTag
// @Summary     Delete a tag
// @Tags        Tags
// @Param       id   path      string  true  "Tag ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  apierr.Payload  "Tag not found"
// @Router      /tags/{id} [delete]
func (h *Handlers) DeleteTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.tags.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
