// Package pipelineerr implements the error taxonomy the driver uses to decide
// whether a bad record is skipped or the process aborts: ParseError and
// UnknownProduct are recoverable, IOError and InvariantViolation are not.
// Adapted from fd1az-arbitrage-bot/internal/apperror's Code/Option/Wrap shape
// with the HTTP-response concerns removed — this pipeline has no HTTP surface.
package pipelineerr

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Code classifies a PipelineError for the driver's skip-or-abort decision.
type Code string

const (
	// CodeParse marks a malformed input record. The driver logs and skips it.
	CodeParse Code = "PARSE_ERROR"
	// CodeUnknownProduct marks a productId absent from the reference table.
	// The driver logs and skips the record.
	CodeUnknownProduct Code = "UNKNOWN_PRODUCT"
	// CodeIO marks a failed journal write. The driver aborts.
	CodeIO Code = "IO_ERROR"
	// CodeInvariant marks a violated domain invariant (negative quantity,
	// an illegal state transition). The driver aborts.
	CodeInvariant Code = "INVARIANT_VIOLATION"
)

// Recoverable reports whether records of this error class should be skipped
// rather than aborting the pipeline.
func (c Code) Recoverable() bool {
	return c == CodeParse || c == CodeUnknownProduct
}

// PipelineError is the concrete error type every package in this module
// returns. It carries the classifying Code, a human-readable message, the
// wrapped cause (if any), and the call stack captured at construction.
type PipelineError struct {
	Code    Code
	Message string
	cause   error
	stack   []uintptr
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *PipelineError) Unwrap() error { return e.cause }

// Is compares by Code so callers can write errors.Is(err, pipelineerr.New(pipelineerr.CodeParse, "")).
func (e *PipelineError) Is(target error) bool {
	var t *PipelineError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Option customizes a PipelineError at construction.
type Option func(*PipelineError)

// WithCause wraps an underlying error.
func WithCause(cause error) Option {
	return func(e *PipelineError) { e.cause = cause }
}

// New builds a PipelineError, capturing the current stack for Stack.
func New(code Code, message string, opts ...Option) *PipelineError {
	err := &PipelineError{Code: code, Message: message, stack: captureStack()}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// Parsef builds a CodeParse error with a formatted message.
func Parsef(format string, args ...interface{}) *PipelineError {
	return New(CodeParse, fmt.Sprintf(format, args...))
}

// UnknownProductf builds a CodeUnknownProduct error with a formatted message.
func UnknownProductf(format string, args ...interface{}) *PipelineError {
	return New(CodeUnknownProduct, fmt.Sprintf(format, args...))
}

// Invariantf builds a CodeInvariant error with a formatted message.
func Invariantf(format string, args ...interface{}) *PipelineError {
	return New(CodeInvariant, fmt.Sprintf(format, args...))
}

// Wrap wraps cause in a PipelineError with the given code, preserving the
// cause. A nil cause yields nil, and a cause that already is (or wraps) a
// PipelineError is returned as that PipelineError, keeping its own code.
func Wrap(code Code, context string, cause error) *PipelineError {
	if cause == nil {
		return nil
	}
	var existing *PipelineError
	if errors.As(cause, &existing) {
		return existing
	}
	return New(code, context, WithCause(cause))
}

// Stack renders the captured call stack, skipping runtime frames, for
// structured logging.
func (e *PipelineError) Stack() string {
	var sb strings.Builder
	frames := runtime.CallersFrames(e.stack)
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			fmt.Fprintf(&sb, "\n\t%s:%d %s", frame.File, frame.Line, frame.Function)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[:n]
}
