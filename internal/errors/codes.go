package errors

import (
	"fmt"
)

// ErrorCode represents a specific error type for conversion operations.
type ErrorCode string

const (
	// ErrCodeUnsupportedZone indicates the zone id is not in the supported set.
	ErrCodeUnsupportedZone ErrorCode = "UNSUPPORTED_ZONE"
	// ErrCodeUnresolvableInstant indicates an empty or malformed wall-clock input.
	ErrCodeUnresolvableInstant ErrorCode = "UNRESOLVABLE_INSTANT"
	// ErrCodeBridgeParseFailure indicates the assistant reply held no usable JSON.
	ErrCodeBridgeParseFailure ErrorCode = "BRIDGE_PARSE_FAILURE"
	// ErrCodeBridgeUnavailable indicates the assistant capability is not configured.
	ErrCodeBridgeUnavailable ErrorCode = "BRIDGE_UNAVAILABLE"
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeRateLimitExceeded indicates rate limit has been exceeded.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
)

// ConversionError represents a structured error for conversion operations.
//
// Core functions never panic across the API boundary: they return a
// ConversionError that handlers degrade into per-field placeholders.
type ConversionError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// GetCode returns the error code.
func (e *ConversionError) GetCode() ErrorCode {
	return e.Code
}

// Convenience constructors for common error types.

// UnsupportedZone creates an unsupported zone error.
func UnsupportedZone(zoneID string) *ConversionError {
	return &ConversionError{
		Code:    ErrCodeUnsupportedZone,
		Message: fmt.Sprintf("unsupported zone: %s", zoneID),
	}
}

// UnresolvableInstant creates an unresolvable instant error.
func UnresolvableInstant(msg string) *ConversionError {
	return &ConversionError{Code: ErrCodeUnresolvableInstant, Message: msg}
}

// BridgeParseFailure creates a bridge parse failure error.
func BridgeParseFailure(msg string) *ConversionError {
	return &ConversionError{Code: ErrCodeBridgeParseFailure, Message: msg}
}

// BridgeUnavailable creates a bridge unavailable error.
func BridgeUnavailable(msg string) *ConversionError {
	return &ConversionError{Code: ErrCodeBridgeUnavailable, Message: msg}
}

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *ConversionError {
	return &ConversionError{Code: ErrCodeInvalidArgument, Message: msg}
}

// RateLimitExceeded creates a rate limit exceeded error.
func RateLimitExceeded(msg string) *ConversionError {
	return &ConversionError{Code: ErrCodeRateLimitExceeded, Message: msg}
}

// Wrap wraps an existing error with additional context.
func Wrap(cause error, code ErrorCode, msg string) *ConversionError {
	return &ConversionError{Code: code, Message: msg, Cause: cause}
}

// IsCode checks if an error is of a specific code.
func IsCode(err error, code ErrorCode) bool {
	if convErr, ok := err.(*ConversionError); ok {
		return convErr.GetCode() == code
	}
	return false
}

// GetCodeFromError extracts the error code from any error.
// Returns the provided default code if the error is not a ConversionError.
func GetCodeFromError(err error, defaultCode ErrorCode) ErrorCode {
	if convErr, ok := err.(*ConversionError); ok {
		return convErr.GetCode()
	}
	return defaultCode
}
