// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response helpers used across all endpoints. Handlers
// never write error bodies: they attach a classified failure with fail() and
// the error dispatcher renders it. Success bodies go through respond(), which
// picks JSON or XML from the Accept header.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "errorCode": "SAYURI-0007",
//	  "message": "Requested resource was not found.",
//	  "status": 404,
//	  "url": "http://localhost:8080/api/v1/tags/141add05-4415-4938-b5a1-17e0d3171aff",
//	  "reqMethod": "GET"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ecommerce-api/internal/apierr"
	"github.com/tbourn/go-ecommerce-api/internal/http/middleware"
)

// fail aborts the request with the API error matching a service error.
func fail(c *gin.Context, err error) {
	middleware.FailCode(c, codeFor(err), err)
}

// respond writes body with status in the representation the client asked
// for. If body cannot be encoded the request fails with MessageNotWritable.
func respond(c *gin.Context, status int, body any) {
	if err := middleware.Render(c, status, body); err != nil {
		middleware.FailCode(c, apierr.MessageNotWritable, err)
	}
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
