// Package errors provides structured error handling for the Surface framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a theme or option configuration error.
	KindConfig
	// KindConstruct indicates invalid widget construction options.
	KindConstruct
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindConstruct:
		return "construct"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SurfaceError represents a structured error in the Surface framework.
type SurfaceError struct {
	// Op is the operation that failed (e.g., "widgets.NewSlider").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// New is a convenience constructor for a SurfaceError wrapping a message.
func New(op string, kind ErrorKind, format string, args ...any) *SurfaceError {
	return &SurfaceError{
		Op:        op,
		Kind:      kind,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "events.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Surface framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SurfaceError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
