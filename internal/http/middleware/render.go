// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file holds the content negotiation helpers shared by handlers and the
// error dispatcher. Bodies are encoded up front so an encoding failure can be
// reported before anything reaches the client.
package middleware

import (
	"encoding/json"
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	mimeJSONUTF8 = binding.MIMEJSON + "; charset=utf-8"
	mimeXMLUTF8  = binding.MIMEXML + "; charset=utf-8"
)

// offered lists the representations the API can produce, preferred first.
var offered = []string{binding.MIMEJSON, binding.MIMEXML}

// Negotiate returns the response media type selected by the Accept header,
// or "" when the client accepts none of them. A missing Accept header
// selects JSON.
func Negotiate(c *gin.Context) string {
	return c.NegotiateFormat(offered...)
}

// Encode marshals body as mediaType (JSON unless mediaType is XML) and
// returns the bytes with the matching Content-Type.
func Encode(mediaType string, body any) ([]byte, string, error) {
	if mediaType == binding.MIMEXML {
		b, err := xml.Marshal(body)
		if err != nil {
			return nil, "", err
		}
		return append([]byte(xml.Header), b...), mimeXMLUTF8, nil
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, "", err
	}
	return b, mimeJSONUTF8, nil
}

// Render writes body with status in the negotiated representation. It
// returns the encoding error without writing anything, so the caller can
// report it through the dispatcher.
func Render(c *gin.Context, status int, body any) error {
	if status == http.StatusNoContent || body == nil {
		c.Status(status)
		return nil
	}
	mt := Negotiate(c)
	if mt == "" {
		mt = binding.MIMEJSON
	}
	b, ct, err := Encode(mt, body)
	if err != nil {
		return err
	}
	c.Data(status, ct, b)
	return nil
}
