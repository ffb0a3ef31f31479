package apierr

import (
	"encoding/xml"
	"net/http"
	"strings"
)

// NotAvailable fills URL and method when no request context is present.
const NotAvailable = "Not available"

// Payload is the error body written for every failed request.
// It serializes identically to JSON and XML (root element "error").
type Payload struct {
	XMLName xml.Name `json:"-" xml:"error" swaggerignore:"true"`
	// Application error code, distinct from the HTTP status
	ErrorCode string `json:"errorCode" xml:"errorCode" example:"SAYURI-0005"`
	// Short, human-readable summary of the problem
	Message string `json:"message" xml:"message" example:"Make sure the request payload is a valid JSON object."`
	// HTTP status code
	Status int `json:"status" xml:"status" example:"400"`
	// URL of the request that produced the error
	URL string `json:"url" xml:"url" example:"http://localhost:8080/api/v1/tags"`
	// Method of the request that produced the error
	ReqMethod string `json:"reqMethod" xml:"reqMethod" example:"POST"`
}

// NewPayload builds a payload from the taxonomy entry of c, with URL and
// method set to NotAvailable.
func NewPayload(c Code) Payload {
	e := c.Entry()
	return Payload{
		ErrorCode: e.AppCode,
		Message:   e.Message,
		Status:    e.Status,
		URL:       NotAvailable,
		ReqMethod: NotAvailable,
	}
}

// ForRequest builds a payload for c and fills URL and method from r.
// A nil request leaves both at NotAvailable.
func ForRequest(c Code, r *http.Request) Payload {
	p := NewPayload(c)
	if r == nil {
		return p
	}
	if u := RequestURL(r); u != "" {
		p.URL = u
	}
	if r.Method != "" {
		p.ReqMethod = r.Method
	}
	return p
}

// RequestURL reconstructs scheme://host/path for r, without the query string.
// The scheme honours X-Forwarded-Proto when the server sits behind a proxy.
func RequestURL(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); p != "" {
		scheme = strings.ToLower(p)
	}
	host := r.Host
	if host == "" {
		host = r.URL.Host
	}
	if host == "" {
		return r.URL.Path
	}
	return scheme + "://" + host + r.URL.EscapedPath()
}
