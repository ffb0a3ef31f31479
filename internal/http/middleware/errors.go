// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the error dispatcher: the single place where failures
// raised anywhere in the handler chain become HTTP responses. Handlers and
// middleware never write error bodies themselves. They attach an error with
// Fail (or c.Error) and stop; the Dispatcher then
//
//   - classifies the error into an apierr.Code
//   - builds the apierr.Payload with the request URL and method
//   - logs the failure (stack traces only outside production)
//   - records it on the active span and in api_errors_total
//   - writes the payload as JSON or XML according to Accept
//
// Register Dispatcher.Handler before Recovery so recovered panics are answered
// the same way as any other failure.
package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-ecommerce-api/internal/apierr"
)

// Dispatcher turns request failures into error payloads. It holds no
// per-request state and is safe for concurrent use.
type Dispatcher struct {
	// Production suppresses stack traces in failure logs.
	Production bool
	// Counter receives one increment per written payload, labelled by
	// application code and status. Nil disables counting.
	Counter *prometheus.CounterVec
}

// NewDispatcher returns a Dispatcher that counts into api_errors_total.
func NewDispatcher(production bool) *Dispatcher {
	return &Dispatcher{Production: production, Counter: apiErrors}
}

// fallbackBody is written when dispatching itself fails.
var fallbackBody, _ = json.Marshal(apierr.NewPayload(apierr.GenericError))

// Fail attaches err to the request and aborts the remaining handlers. A nil
// err is treated as an unexplained GenericError.
func Fail(c *gin.Context, err error) {
	if err == nil {
		err = apierr.New(apierr.GenericError, nil)
	}
	_ = c.Error(err)
	c.Abort()
}

// FailCode is Fail with a new *apierr.Error for code wrapping cause.
func FailCode(c *gin.Context, code apierr.Code, cause error) {
	Fail(c, apierr.New(code, cause))
}

// Handler answers the last error attached to the context, unless a response
// has already been written.
func (d *Dispatcher) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		d.Dispatch(c, c.Errors.Last().Err)
	}
}

// Dispatch writes the error payload for err. It never panics: a failure
// while dispatching is logged and answered with the GenericError payload.
func (d *Dispatcher) Dispatch(c *gin.Context, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			LoggerFrom(c).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("error dispatch failed")
			if !c.Writer.Written() {
				c.Data(http.StatusInternalServerError, mimeJSONUTF8, fallbackBody)
			}
		}
	}()

	code := apierr.Classify(err)
	payload := apierr.ForRequest(code, c.Request)

	d.log(c, code, payload, err)
	traceFailure(c, code, payload, err)
	if d.Counter != nil {
		d.Counter.WithLabelValues(payload.ErrorCode, strconv.Itoa(payload.Status)).Inc()
	}

	mt := Negotiate(c)
	if mt == "" {
		// The client accepts neither representation; JSON is the default.
		mt = binding.MIMEJSON
	}
	body, ct, encErr := Encode(mt, payload)
	if encErr != nil {
		LoggerFrom(c).Error().Err(encErr).Msg("error payload not encodable")
		body, ct = fallbackBody, mimeJSONUTF8
		payload.Status = http.StatusInternalServerError
	}
	c.Abort()
	c.Data(payload.Status, ct, body)
}

func (d *Dispatcher) log(c *gin.Context, code apierr.Code, p apierr.Payload, err error) {
	lg := LoggerFrom(c)
	ev := lg.Warn()
	if p.Status >= http.StatusInternalServerError {
		ev = lg.Error()
	}
	ev = ev.
		Str("kind", code.String()).
		Str("error_code", p.ErrorCode).
		Int("status", p.Status).
		Str("req_method", p.ReqMethod).
		Str("url", p.URL)
	if err != nil {
		ev = ev.Str("error", err.Error())
	}
	if !d.Production {
		if st := stackOf(err); st != "" {
			ev = ev.Str("stack", st)
		}
	}
	ev.Msg("request failed")
}

func traceFailure(c *gin.Context, code apierr.Code, p apierr.Payload, err error) {
	if c.Request == nil {
		return
	}
	span := trace.SpanFromContext(c.Request.Context())
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("error.kind", code.String()),
		attribute.String("error.code", p.ErrorCode),
	)
	if err != nil {
		span.RecordError(err)
	}
	if p.Status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, p.Message)
	}
}

// stackOf returns the stack recorded on err, if any.
func stackOf(err error) string {
	if err == nil {
		return ""
	}
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return ae.Stack()
	}
	if st := fmt.Sprintf("%+v", err); st != err.Error() {
		return st
	}
	return ""
}
