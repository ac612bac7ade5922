package handlers

//go:generate mockgen -source=create_term.go -destination=mock_create_term.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-glossary/internal/models"
)

// TermCreator defines the interface that the service must implement.
type TermCreator interface {
	Create(ctx context.Context, req models.TermCreateRequest) (*models.Term, error)
}

// NewCreateTermHandler returns an HTTP handler creating a glossary term.
// @Summary Create term
// @Description Creates a new term. The keyword must be unique, 1-100 characters; the description must not be empty.
// @Tags terms
// @Accept json
// @Produce json
// @Param request body models.TermCreateRequest true "Term to create"
// @Success 201 {object} models.Term "Created term"
// @Failure 400 {object} models.ErrorResponse "Invalid request or keyword already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /terms [post]
func NewCreateTermHandler(svc TermCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TermCreateRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		term, err := svc.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, req.Keyword)
			return
		}

		writeJSON(w, http.StatusCreated, term)
	}
}
