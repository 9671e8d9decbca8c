// Package common holds sentinel errors and constants shared by the server,
// the API client and the CLI. Match the errors with errors.Is.
package common

import "errors"

var (
	// ErrorNotFound is returned when a referenced record does not exist.
	ErrorNotFound = errors.New("not found")

	// ErrorInvalidInput is returned when a request body cannot be decoded.
	ErrorInvalidInput = errors.New("invalid input")

	// ErrorInternal hides unexpected failures from callers.
	ErrorInternal = errors.New("internal error")
)
