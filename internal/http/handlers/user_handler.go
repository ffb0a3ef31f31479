// User HTTP handlers.
//
// This file exposes REST endpoints for customer accounts:
//   - POST   /users        (create)
//   - GET    /users        (list, paginated)
//   - GET    /users/{id}   (read)
//   - PUT    /users/{id}   (partial update)
//   - DELETE /users/{id}   (delete)
package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/services"
)

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	XMLName   xml.Name `json:"-" xml:"user" swaggerignore:"true"`
	Username  string   `json:"username"  xml:"username"  binding:"required,max=64"  example:"jdoe"`
	FirstName string   `json:"firstName" xml:"firstName" binding:"max=128"          example:"Jane"`
	LastName  string   `json:"lastName"  xml:"lastName"  binding:"max=128"          example:"Doe"`
	Email     string   `json:"email"     xml:"email"     binding:"required,email"   example:"jane.doe@example.com"`
	Phone     string   `json:"phone"     xml:"phone"     binding:"max=32"           example:"+44 20 7946 0958"`
	// Status defaults to ACTIVE.
	Status string `json:"status" xml:"status" binding:"omitempty,oneof=ACTIVE INACTIVE active inactive" example:"ACTIVE"`
}

func (r CreateUserRequest) input() services.UserInput {
	in := services.UserInput{
		Username:  &r.Username,
		FirstName: &r.FirstName,
		LastName:  &r.LastName,
		Email:     &r.Email,
		Phone:     &r.Phone,
	}
	if r.Status != "" {
		in.Status = &r.Status
	}
	return in
}

// UpdateUserRequest is the payload for updating a user. Omitted fields keep
// their stored value.
type UpdateUserRequest struct {
	XMLName   xml.Name `json:"-" xml:"user" swaggerignore:"true"`
	Username  *string  `json:"username"  xml:"username"  binding:"omitempty,min=1,max=64"`
	FirstName *string  `json:"firstName" xml:"firstName" binding:"omitempty,max=128"`
	LastName  *string  `json:"lastName"  xml:"lastName"  binding:"omitempty,max=128"`
	Email     *string  `json:"email"     xml:"email"     binding:"omitempty,email"`
	Phone     *string  `json:"phone"     xml:"phone"     binding:"omitempty,max=32"`
	Status    *string  `json:"status"    xml:"status"    binding:"omitempty,oneof=ACTIVE INACTIVE active inactive"`
}

func (r UpdateUserRequest) input() services.UserInput {
	return services.UserInput{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Status:    r.Status,
	}
}

// ListUsersResponse wraps a page of users and pagination information.
type ListUsersResponse struct {
	XMLName    xml.Name      `json:"-" xml:"users" swaggerignore:"true"`
	Users      []domain.User `json:"users" xml:"user"`
	Pagination Pagination    `json:"pagination" xml:"pagination"`
}

// CreateUser godoc
// @ID          createUser
// @Summary     Register a user
// @Description Creates a customer account. Username and email are stored case-folded and must be unique.
// @Tags        Users
// @Accept      json,xml
// @Produce     json,xml
// @Param       body  body      handlers.CreateUserRequest  true  "User"
// @Success     201   {object}  domain.User
// @Failure     400   {object}  apierr.Payload  "Invalid payload or validation failure"
// @Failure     409   {object}  apierr.Payload  "Username or email taken"
// @Failure     415   {object}  apierr.Payload  "Unsupported Content-Type"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.users.Create(c.Request.Context(), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, u)
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List users (paginated)
// @Tags        Users
// @Produce     json,xml
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.ListUsersResponse
// @Header      200  {string}  ETag  "Hash of the response body"
// @Success     304  {string}  string  "Not Modified"
// @Failure     500  {object}  apierr.Payload
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	page, pageSize := clampPagination(c)
	items, total, err := h.users.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, ListUsersResponse{Users: items, Pagination: newPagination(page, pageSize, total)})
}

// GetUser godoc
// @ID          getUser
// @Summary     Get a user
// @Tags        Users
// @Produce     json,xml
// @Param       id   path      string  true  "User ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.User
// @Failure     400  {object}  apierr.Payload  "Malformed id"
// @Failure     404  {object}  apierr.Payload  "User not found"
// @Router      /users/{id} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, u)
}

// UpdateUser godoc
// @ID          updateUser
// @Summary     Update a user
// @Description Applies the provided fields; omitted fields are left unchanged.
// @Tags        Users
// @Accept      json,xml
// @Produce     json,xml
// @Param       id    path      string                      true  "User ID (UUID)"  format(uuid)
// @Param       body  body      handlers.UpdateUserRequest  true  "Fields to change"
// @Success     200   {object}  domain.User
// @Failure     400   {object}  apierr.Payload
// @Failure     404   {object}  apierr.Payload  "User not found"
// @Failure     409   {object}  apierr.Payload  "Username or email taken"
// @Router      /users/{id} [put]
func (h *Handlers) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.users.Update(c.Request.Context(), id, req.input())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, u)
}

// DeleteUser godoc
// @ID          deleteUser
// @Summary     Delete a user
// @Tags        Users
// @Param       id   path    string  true  "User ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  apierr.Payload  "User not found"
// @Router      /users/{id} [delete]
func (h *Handlers) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
