// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/google/uuid"

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// uuidString renders an optional UUID as an optional string.
func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
