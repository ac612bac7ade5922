package models

import "time"

// Term represents a glossary term record in the database
// swagger:model Term
type Term struct {
	ID          int64      `json:"id" db:"id"`                   // Primary key, never reused
	Keyword     string     `json:"keyword" db:"keyword"`         // Unique, case-sensitive keyword
	Description string     `json:"description" db:"description"` // Term description
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp, null until first update
}

// TermCreateRequest represents the JSON body for creating a term
// swagger:model TermCreateRequest
type TermCreateRequest struct {
	// Keyword
	// required: true
	// example: Texel
	Keyword string `json:"keyword" validate:"required,max=100,nonul"`

	// Description
	// required: true
	// example: A texture pixel
	Description string `json:"description" validate:"required,nonul"`
}

// TermUpdateRequest represents the JSON body for a partial term update.
// A nil field is left unchanged.
// swagger:model TermUpdateRequest
type TermUpdateRequest struct {
	// New keyword
	// example: Texel
	Keyword *string `json:"keyword,omitempty"`

	// New description
	// example: Updated
	Description *string `json:"description,omitempty"`
}

// ErrorResponse represents an error returned by the API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Term with keyword 'Texel' not found
	Error string `json:"error"`

	// Offending field for validation errors
	// example: keyword
	Field string `json:"field,omitempty"`
}

// RootResponse describes the service
// swagger:model RootResponse
type RootResponse struct {
	Message string `json:"message"` // Service name
	Docs    string `json:"docs"`    // Path of the API documentation
	Version string `json:"version"` // Service version
}
