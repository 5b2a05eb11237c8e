// Package dto defines data transfer objects for API requests and responses.
package dto

// DateFormat is the wire format for dates.
const DateFormat = "2006-01-02"

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
