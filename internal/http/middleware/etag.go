// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements ShallowETag. Successful GET responses are buffered, an
// ETag is derived from the MD5 of the body, and a request whose
// If-None-Match already names that tag receives 304 Not Modified without a
// body. The handler still runs in full, so this saves bandwidth, not work.
package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// etagWriter buffers the response body until the ETag is known.
type etagWriter struct {
	gin.ResponseWriter
	buf    bytes.Buffer
	forced bool
}

func (w *etagWriter) Write(b []byte) (int, error) { return w.buf.Write(b) }

func (w *etagWriter) WriteString(s string) (int, error) { return w.buf.WriteString(s) }

func (w *etagWriter) WriteHeaderNow() { w.forced = true }

func (w *etagWriter) Written() bool { return w.forced || w.buf.Len() > 0 }

func (w *etagWriter) Size() int {
	if !w.Written() {
		return -1
	}
	return w.buf.Len()
}

// ShallowETag adds ETag/If-None-Match handling to GET requests.
func ShallowETag() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		orig := c.Writer
		w := &etagWriter{ResponseWriter: orig}
		c.Writer = w
		defer func() { c.Writer = orig }()

		c.Next()

		c.Writer = orig
		if !w.Written() {
			return
		}
		status := orig.Status()
		if status >= 200 && status < 300 && w.buf.Len() > 0 {
			tag := bodyETag(w.buf.Bytes())
			orig.Header().Set("ETag", tag)
			if etagMatches(c.GetHeader("If-None-Match"), tag) {
				h := orig.Header()
				h.Del("Content-Type")
				h.Del("Content-Length")
				orig.WriteHeader(http.StatusNotModified)
				orig.WriteHeaderNow()
				return
			}
		}
		orig.WriteHeaderNow()
		if w.buf.Len() > 0 {
			_, _ = orig.Write(w.buf.Bytes())
		}
	}
}

// bodyETag returns the strong ETag for body: a quoted "0" followed by the hex
// MD5 digest.
func bodyETag(body []byte) string {
	sum := md5.Sum(body)
	return `"0` + hex.EncodeToString(sum[:]) + `"`
}

// etagMatches implements the weak comparison used for If-None-Match.
func etagMatches(header, tag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	want := strings.TrimPrefix(tag, "W/")
	for _, part := range strings.Split(header, ",") {
		if strings.TrimPrefix(strings.TrimSpace(part), "W/") == want {
			return true
		}
	}
	return false
}
