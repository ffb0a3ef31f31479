// Package apierr defines the application error taxonomy returned by every
// API endpoint.
//
// Each Code is a closed enumeration variant that maps to exactly one Entry:
// a stable application code (e.g. "SAYURI-0004"), a human-readable message,
// and the HTTP status sent to the client. The table in this file is the only
// place where those strings live; handlers and middleware refer to variants,
// never to raw codes or messages.
//
// Example response body:
//
//	{
//	  "errorCode": "SAYURI-0002",
//	  "message":   "Requested media type is not supported. ...",
//	  "status":    415,
//	  "url":       "http://localhost:8080/api/v1/tags",
//	  "reqMethod": "POST"
//	}
package apierr

import "net/http"

// Code identifies a failure category.
type Code int

const (
	GenericError Code = iota
	MediaTypeNotSupported
	MessageNotWritable
	MediaTypeNotAcceptable
	JSONParseError
	MessageNotReadable

	ResourceNotFound
	ValidationFailed
	RouteNotFound
	MethodNotAllowed
	TooManyRequests
	PayloadTooLarge
	ResourceConflict
	InvalidIdempotencyKey

	codeCount // keep last
)

// Entry is the immutable (application code, message, HTTP status) triple
// associated with a Code.
type Entry struct {
	AppCode string
	Message string
	Status  int
}

var names = [codeCount]string{
	GenericError:           "GENERIC_ERROR",
	MediaTypeNotSupported:  "HTTP_MEDIATYPE_NOT_SUPPORTED",
	MessageNotWritable:     "HTTP_MESSAGE_NOT_WRITABLE",
	MediaTypeNotAcceptable: "HTTP_MEDIA_TYPE_NOT_ACCEPTABLE",
	JSONParseError:         "JSON_PARSE_ERROR",
	MessageNotReadable:     "HTTP_MESSAGE_NOT_READABLE",
	ResourceNotFound:       "RESOURCE_NOT_FOUND",
	ValidationFailed:       "VALIDATION_FAILED",
	RouteNotFound:          "ROUTE_NOT_FOUND",
	MethodNotAllowed:       "METHOD_NOT_ALLOWED",
	TooManyRequests:        "TOO_MANY_REQUESTS",
	PayloadTooLarge:        "PAYLOAD_TOO_LARGE",
	ResourceConflict:       "RESOURCE_CONFLICT",
	InvalidIdempotencyKey:  "INVALID_IDEMPOTENCY_KEY",
}

// taxonomy is indexed by Code. Internal errors use 0001..0999.
var taxonomy = [codeCount]Entry{
	GenericError: {
		AppCode: "SAYURI-0001",
		Message: "The system is unable to complete the request. Contact system support.",
		Status:  http.StatusInternalServerError,
	},
	MediaTypeNotSupported: {
		AppCode: "SAYURI-0002",
		Message: "Requested media type is not supported. Please use 'application/json' or 'application/xml' as 'Content-Type' header value",
		Status:  http.StatusUnsupportedMediaType,
	},
	MessageNotWritable: {
		AppCode: "SAYURI-0003",
		Message: "Missing 'Accept' header. Please add the 'Accept' header.",
		Status:  http.StatusInternalServerError,
	},
	MediaTypeNotAcceptable: {
		AppCode: "SAYURI-0004",
		Message: "Requested 'Accept' header value is not supported. Please use 'application/json' or 'application/xml' as 'Accept' value",
		Status:  http.StatusNotAcceptable,
	},
	JSONParseError: {
		AppCode: "SAYURI-0005",
		Message: "Make sure the request payload is a valid JSON object.",
		Status:  http.StatusBadRequest,
	},
	// 406 rather than 400 matches what existing clients already receive.
	MessageNotReadable: {
		AppCode: "SAYURI-0006",
		Message: "Make sure the request payload is a valid JSON or XML object according to 'Content-Type'.",
		Status:  http.StatusNotAcceptable,
	},
	ResourceNotFound: {
		AppCode: "SAYURI-0007",
		Message: "Requested resource was not found.",
		Status:  http.StatusNotFound,
	},
	ValidationFailed: {
		AppCode: "SAYURI-0008",
		Message: "Request failed validation. Check required fields, identifiers and value formats.",
		Status:  http.StatusBadRequest,
	},
	RouteNotFound: {
		AppCode: "SAYURI-0009",
		Message: "No route matches the requested path.",
		Status:  http.StatusNotFound,
	},
	MethodNotAllowed: {
		AppCode: "SAYURI-0010",
		Message: "Requested HTTP method is not allowed for this path.",
		Status:  http.StatusMethodNotAllowed,
	},
	TooManyRequests: {
		AppCode: "SAYURI-0011",
		Message: "Rate limit exceeded. Retry after a short delay.",
		Status:  http.StatusTooManyRequests,
	},
	PayloadTooLarge: {
		AppCode: "SAYURI-0012",
		Message: "Request payload exceeds the maximum allowed size.",
		Status:  http.StatusRequestEntityTooLarge,
	},
	ResourceConflict: {
		AppCode: "SAYURI-0013",
		Message: "A resource with the same unique attributes already exists.",
		Status:  http.StatusConflict,
	},
	InvalidIdempotencyKey: {
		AppCode: "SAYURI-0014",
		Message: "Invalid 'Idempotency-Key' header value.",
		Status:  http.StatusBadRequest,
	},
}

// Codes returns every defined Code in declaration order.
func Codes() []Code {
	out := make([]Code, 0, codeCount)
	for c := GenericError; c < codeCount; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is a defined variant.
func (c Code) Valid() bool { return c >= 0 && c < codeCount }

// Entry returns the taxonomy entry for c. Undefined codes resolve to the
// GenericError entry, so callers always get a usable triple.
func (c Code) Entry() Entry {
	if !c.Valid() {
		return taxonomy[GenericError]
	}
	return taxonomy[c]
}

// String returns the variant name, e.g. "JSON_PARSE_ERROR".
func (c Code) String() string {
	if !c.Valid() {
		return names[GenericError]
	}
	return names[c]
}

// Lookup returns the entry for c and whether c was a defined variant.
func Lookup(c Code) (Entry, bool) {
	return c.Entry(), c.Valid()
}
