package handlers

//go:generate mockgen -source=get_term.go -destination=mock_get_term.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-glossary/internal/models"
)

// TermGetter defines the interface that the service must implement.
type TermGetter interface {
	Get(ctx context.Context, keyword string) (*models.Term, error)
}

// NewGetTermHandler returns an HTTP handler fetching a term by keyword.
// @Summary Get term
// @Description Returns the term with exactly the given keyword (case-sensitive)
// @Tags terms
// @Produce json
// @Param keyword path string true "Term keyword"
// @Success 200 {object} models.Term "Term"
// @Failure 404 {object} models.ErrorResponse "Term not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /terms/{keyword} [get]
func NewGetTermHandler(svc TermGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := keywordParam(r)

		term, err := svc.Get(r.Context(), keyword)
		if err != nil {
			writeServiceError(w, r, err, keyword)
			return
		}

		writeJSON(w, http.StatusOK, term)
	}
}
