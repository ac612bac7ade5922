package handlers

//go:generate mockgen -source=list_terms.go -destination=mock_list_terms.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-glossary/internal/logger"
	"github.com/sbilibin2017/gw-glossary/internal/middlewares"
	"github.com/sbilibin2017/gw-glossary/internal/models"
)

// TermLister defines the interface that the service must implement.
type TermLister interface {
	List(ctx context.Context) ([]models.Term, error)
}

// NewListTermsHandler returns an HTTP handler listing all glossary terms.
// @Summary List terms
// @Description Returns every term in the glossary
// @Tags terms
// @Produce json
// @Success 200 {array} models.Term "All terms"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /terms [get]
func NewListTermsHandler(svc TermLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		terms, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list terms",
				"request_id", middlewares.RequestIDFromContext(r.Context()),
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if terms == nil {
			terms = []models.Term{}
		}
		writeJSON(w, http.StatusOK, terms)
	}
}
