package errors

import (
	"net/http"

	"crewdir/internal/errors"
)

// StoreError represents a failed relational operation on the primary mutation
// path, implementing the AppError interface.
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a store-related error
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying cause.
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "Database operation failed"
}

// Details returns structured error details
func (e *StoreError) Details() any {
	return e.details
}

// StorageError represents a failed object-storage operation on a critical
// path (e.g. the initial upload), implementing the AppError interface.
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates an object-storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "object storage operation failed").Error()
}

// Unwrap exposes the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Document storage operation failed"
}

// Details returns structured error details
func (e *StorageError) Details() any {
	return e.details
}
