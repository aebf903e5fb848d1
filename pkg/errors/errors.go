// Package errors provides structured error reporting for card components.
//
// Card code never lets recoverable failures (theme lookups, font resolution)
// escape a mutator. Those are reported through the process-wide [ErrorHandler]
// instead. Failures the caller must see, such as a malformed attribute set,
// are returned as [*CardError] values.
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
	// KindTheme indicates a theme color or attribute lookup failure.
	KindTheme
	// KindFont indicates a font family could not be resolved.
	KindFont
	// KindAttribute indicates a declarative attribute could not be read.
	KindAttribute
	// KindResource indicates a drawable resource could not be loaded.
	KindResource
	// KindRender indicates a drawing error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindTheme:
		return "theme"
	case KindFont:
		return "font"
	case KindAttribute:
		return "attribute"
	case KindResource:
		return "resource"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CardError represents a structured error raised by a card component.
type CardError struct {
	// Op is the operation that failed (e.g., "card.SetTitleFont").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Key is the attribute or theme key involved, if any.
	Key string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CardError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CardError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "card.Draw").
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

// AttributeError describes a declarative attribute whose value has the wrong
// type or an unparseable format.
type AttributeError struct {
	// Key is the attribute name.
	Key string
	// Want is the expected type name.
	Want string
	// Got is the value that was found.
	Got any
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("attribute %q: want %s, got %T (%v)", e.Key, e.Want, e.Got, e.Got)
}

// ErrorHandler receives errors reported by card components.
type ErrorHandler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *CardError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
