// Package errors provides application-level error types and utilities.
// It defines the error taxonomy for the support request flow: validation,
// ledger corruption, ledger write, and notification delivery failures.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation_error"
	ErrorTypeLedgerCorrupt  ErrorType = "ledger_corrupt"
	ErrorTypeLedgerWrite    ErrorType = "ledger_write_error"
	ErrorTypeDeliveryFailed ErrorType = "delivery_failed"
	ErrorTypeInternal       ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: first(details),
	}
}

// NewLedgerCorruptError creates an error for a ledger file that exists but
// cannot be read as the expected table.
func NewLedgerCorruptError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeLedgerCorrupt,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: first(details),
	}
}

// NewLedgerWriteError creates an error for a failed ledger persistence cycle.
func NewLedgerWriteError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeLedgerWrite,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: first(details),
	}
}

// NewDeliveryFailedError creates a per-recipient notification failure.
func NewDeliveryFailedError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeDeliveryFailed,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: first(details),
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: first(details),
	}
}

func first(details []string) string {
	if len(details) > 0 {
		return details[0]
	}
	return ""
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsLedgerCorruptError checks if the error is a ledger corruption error
func IsLedgerCorruptError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeLedgerCorrupt
}

// IsLedgerWriteError checks if the error is a ledger write error
func IsLedgerWriteError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeLedgerWrite
}

// IsDeliveryFailedError checks if the error is a delivery failure
func IsDeliveryFailedError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeDeliveryFailed
}
