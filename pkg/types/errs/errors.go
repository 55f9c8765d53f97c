package errs

import (
	"errors"
	"fmt"
	"time"
)

// Code is a machine-readable error class, decoupled from display text.
type Code string

const (
	CodeValidation  Code = "validation_error"
	CodeRateLimited Code = "rate_limited"
	CodeNotFound    Code = "not_found"
	CodeDecode      Code = "decode_error"
	CodeRender      Code = "render_error"
	CodeUpstream    Code = "upstream_failure"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrEmptyText      = errors.New("no text provided")
	ErrDecode         = errors.New("invalid image data")
	ErrRender         = errors.New("render surface cannot be created")
)

// ValidationError is a user-correctable input problem.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TextTooLongError reports the configured limit alongside the failure.
type TextTooLongError struct {
	MaxLength int
}

func (e *TextTooLongError) Error() string {
	return fmt.Sprintf("text too long. Maximum length is %d characters", e.MaxLength)
}

// RateLimitedError carries the window reset so handlers can expose
// Retry-After semantics.
type RateLimitedError struct {
	RetryAfter time.Duration
	ResetAt    time.Time
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limit exceeded. Try again in %d minutes",
		int(e.RetryAfter.Minutes())+1)
}

// UpstreamError wraps a storage or transform engine failure.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// CodeOf maps an error to its taxonomy class.
func CodeOf(err error) Code {
	var (
		ve *ValidationError
		tl *TextTooLongError
		rl *RateLimitedError
	)

	switch {
	case errors.As(err, &ve), errors.As(err, &tl),
		errors.Is(err, ErrEmptyText), errors.Is(err, ErrUnknownFormat):
		return CodeValidation
	case errors.As(err, &rl):
		return CodeRateLimited
	case errors.Is(err, ErrRecordNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDecode):
		return CodeDecode
	case errors.Is(err, ErrRender):
		return CodeRender
	default:
		return CodeUpstream
	}
}
