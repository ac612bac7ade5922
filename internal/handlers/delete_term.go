package handlers

//go:generate mockgen -source=delete_term.go -destination=mock_delete_term.go -package=handlers

import (
	"context"
	"net/http"
)

// TermDeleter defines the interface that the service must implement.
type TermDeleter interface {
	Delete(ctx context.Context, keyword string) error
}

// NewDeleteTermHandler returns an HTTP handler removing a term.
// @Summary Delete term
// @Description Permanently removes the term with the given keyword
// @Tags terms
// @Param keyword path string true "Term keyword"
// @Success 204 "Term deleted"
// @Failure 404 {object} models.ErrorResponse "Term not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /terms/{keyword} [delete]
func NewDeleteTermHandler(svc TermDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := keywordParam(r)

		if err := svc.Delete(r.Context(), keyword); err != nil {
			writeServiceError(w, r, err, keyword)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
