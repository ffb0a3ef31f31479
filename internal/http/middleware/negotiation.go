// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements ContentNegotiation, which rejects requests the API
// cannot read or answer before they reach a handler:
//
//   - a request body whose Content-Type is neither JSON nor XML
//     → HTTP_MEDIATYPE_NOT_SUPPORTED (415)
//   - an Accept header that matches neither JSON nor XML
//     → HTTP_MEDIA_TYPE_NOT_ACCEPTABLE (406)
//
// A missing Accept header accepts anything.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/tbourn/go-ecommerce-api/internal/apierr"
)

// ContentNegotiation validates Content-Type on requests with a body and
// Accept on every request.
func ContentNegotiation() gin.HandlerFunc {
	return func(c *gin.Context) {
		if carriesBody(c.Request) {
			// Media types are case-insensitive.
			switch ct := strings.ToLower(c.ContentType()); ct {
			case binding.MIMEJSON, binding.MIMEXML, binding.MIMEXML2:
			default:
				FailCode(c, apierr.MediaTypeNotSupported, fmt.Errorf("unsupported Content-Type %q", ct))
				return
			}
		}
		if accept := strings.TrimSpace(c.GetHeader("Accept")); accept != "" && Negotiate(c) == "" {
			FailCode(c, apierr.MediaTypeNotAcceptable, fmt.Errorf("unsupported Accept %q", accept))
			return
		}
		c.Next()
	}
}

// carriesBody reports whether r is a write request with a (possibly
// chunked) body.
func carriesBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return false
	}
	if r.ContentLength > 0 {
		return true
	}
	return r.ContentLength < 0 && r.Body != nil && r.Body != http.NoBody
}
