package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeInvalidArgument indicates a blank name, a nil frame or negative points
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested game was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to register a game twice
	CodeAlreadyExists Code = "already_exists"

	// CodeInvalidPinCount indicates a roll outside [0, 10]
	CodeInvalidPinCount Code = "invalid_pin_count"

	// CodeInvalidFrameTotal indicates more pins knocked down than were standing in frames 1 to 9
	CodeInvalidFrameTotal Code = "invalid_frame_total"

	// CodeBonusNotEarned indicates a final frame bonus roll without a strike or spare
	CodeBonusNotEarned Code = "bonus_not_earned"

	// CodeInvalidFrameSlot indicates the wrong frame kind for a slot
	CodeInvalidFrameSlot Code = "invalid_frame_slot"

	// CodeGameOver indicates a mutation after the tenth frame
	CodeGameOver Code = "game_over"

	// CodeUnderflow indicates a dequeue from an empty roll buffer
	CodeUnderflow Code = "underflow"

	// CodeAlreadyScored indicates a second score assignment on a frame
	CodeAlreadyScored Code = "already_scored"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Keep the code of an error that is already ours
	var bowlErr *Error
	if errors.As(err, &bowlErr) {
		return &Error{
			Code:    bowlErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(bowlErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// InvalidPinCount creates an error for a roll outside the pin range
func InvalidPinCount(pins int) *Error {
	return Newf(CodeInvalidPinCount, "invalid number of pins: %d", pins).WithMeta("pins", pins)
}

// InvalidFrameTotalf creates a formatted invalid frame total error
func InvalidFrameTotalf(format string, args ...any) *Error {
	return Newf(CodeInvalidFrameTotal, format, args...)
}

// BonusNotEarnedf creates a formatted bonus not earned error
func BonusNotEarnedf(format string, args ...any) *Error {
	return Newf(CodeBonusNotEarned, format, args...)
}

// InvalidFrameSlotf creates a formatted invalid frame slot error
func InvalidFrameSlotf(format string, args ...any) *Error {
	return Newf(CodeInvalidFrameSlot, format, args...)
}

// GameOverf creates a formatted game over error
func GameOverf(format string, args ...any) *Error {
	return Newf(CodeGameOver, format, args...)
}

// Underflow creates an underflow error
func Underflow(message string) *Error {
	return New(CodeUnderflow, message)
}

// AlreadyScored creates an already scored error
func AlreadyScored(message string) *Error {
	return New(CodeAlreadyScored, message)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var bowlErr *Error
	if errors.As(err, &bowlErr) {
		return bowlErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidPinCount checks if the error is an invalid pin count error
func IsInvalidPinCount(err error) bool {
	return Is(err, CodeInvalidPinCount)
}

// IsInvalidFrameTotal checks if the error is an invalid frame total error
func IsInvalidFrameTotal(err error) bool {
	return Is(err, CodeInvalidFrameTotal)
}

// IsBonusNotEarned checks if the error is a bonus not earned error
func IsBonusNotEarned(err error) bool {
	return Is(err, CodeBonusNotEarned)
}

// IsInvalidFrameSlot checks if the error is an invalid frame slot error
func IsInvalidFrameSlot(err error) bool {
	return Is(err, CodeInvalidFrameSlot)
}

// IsGameOver checks if the error is a game over error
func IsGameOver(err error) bool {
	return Is(err, CodeGameOver)
}

// IsUnderflow checks if the error is an underflow error
func IsUnderflow(err error) bool {
	return Is(err, CodeUnderflow)
}

// IsAlreadyScored checks if the error is an already scored error
func IsAlreadyScored(err error) bool {
	return Is(err, CodeAlreadyScored)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var bowlErr *Error
	if errors.As(err, &bowlErr) {
		return bowlErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var bowlErr *Error
	if errors.As(err, &bowlErr) {
		return bowlErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
