package handlers

//go:generate mockgen -source=update_term.go -destination=mock_update_term.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-glossary/internal/models"
	"github.com/sbilibin2017/gw-glossary/internal/services"
)

// TermUpdater defines the interface that the service must implement.
type TermUpdater interface {
	Update(ctx context.Context, keyword string, req models.TermUpdateRequest) (*models.Term, error)
}

// NewUpdateTermHandler returns an HTTP handler partially updating a term.
// @Summary Update term
// @Description Applies the supplied fields to the term and stamps updated_at. Absent fields are left unchanged.
// @Tags terms
// @Accept json
// @Produce json
// @Param keyword path string true "Current term keyword"
// @Param request body models.TermUpdateRequest true "Fields to change"
// @Success 200 {object} models.Term "Updated term"
// @Failure 400 {object} models.ErrorResponse "Invalid request or new keyword already exists"
// @Failure 404 {object} models.ErrorResponse "Term not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /terms/{keyword} [put]
func NewUpdateTermHandler(svc TermUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := keywordParam(r)

		var req models.TermUpdateRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		term, err := svc.Update(r.Context(), keyword, req)
		if err != nil {
			// A conflict is about the new keyword, anything else about the current one.
			if errors.Is(err, services.ErrTermAlreadyExists) && req.Keyword != nil {
				writeServiceError(w, r, err, *req.Keyword)
				return
			}
			writeServiceError(w, r, err, keyword)
			return
		}

		writeJSON(w, http.StatusOK, term)
	}
}
