package apierr

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"
)

// Error is a classified failure raised while processing a request.
// Handlers and middleware attach it to the gin context with c.Error; the
// dispatcher turns it into a Payload.
type Error struct {
	Code Code
	Err  error

	stack []byte
}

// New returns an *Error for code wrapping cause. The stack at the call site is
// recorded so that non-production builds can log where the failure started.
func New(code Code, cause error) *Error {
	if cause == nil {
		cause = pkgerrors.New(code.Entry().Message)
	} else {
		cause = pkgerrors.WithStack(cause)
	}
	return &Error{Code: code, Err: cause}
}

// Newf is New with a formatted cause.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Err: pkgerrors.Errorf(format, args...)}
}

// FromPanic converts a recovered panic value into a GenericError carrying the
// goroutine stack captured by the recovering middleware.
func FromPanic(rec any, stack []byte) *Error {
	var cause error
	switch v := rec.(type) {
	case error:
		cause = fmt.Errorf("panic: %w", v)
	default:
		cause = fmt.Errorf("panic: %v", v)
	}
	return &Error{Code: GenericError, Err: cause, stack: stack}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Stack returns the recorded stack trace, or "" when none is available.
func (e *Error) Stack() string {
	if len(e.stack) > 0 {
		return string(e.stack)
	}
	if e.Err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.Err)
}

// Classify maps err to a taxonomy variant by its concrete kind.
//
// Order matters: an explicit *Error wins over anything it wraps, and a body
// size overflow is checked before the generic decoding failures it can look
// like. Anything unrecognized is GenericError.
func Classify(err error) Code {
	if err == nil {
		return GenericError
	}

	var ae *Error
	if errors.As(err, &ae) {
		if ae.Code.Valid() {
			return ae.Code
		}
		return GenericError
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return PayloadTooLarge
	}

	// encoding/json reports a truncated document as io.ErrUnexpectedEOF.
	var jsonSyntax *json.SyntaxError
	if errors.As(err, &jsonSyntax) || errors.Is(err, io.ErrUnexpectedEOF) {
		return JSONParseError
	}

	var (
		jsonType  *json.UnmarshalTypeError
		xmlSyntax *xml.SyntaxError
	)
	switch {
	case errors.As(err, &jsonType),
		errors.As(err, &xmlSyntax),
		errors.Is(err, io.EOF):
		return MessageNotReadable
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		return ValidationFailed
	}

	return GenericError
}
