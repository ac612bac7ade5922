package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-glossary/internal/logger"
	"github.com/sbilibin2017/gw-glossary/internal/middlewares"
	"github.com/sbilibin2017/gw-glossary/internal/models"
	"github.com/sbilibin2017/gw-glossary/internal/services"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

// writeServiceError maps a TermService error to a status code and error body.
// keyword names the term the error refers to.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, keyword string) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: vErr.Message, Field: vErr.Field})
	case errors.Is(err, services.ErrTermNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("Term with keyword '%s' not found", keyword))
	case errors.Is(err, services.ErrTermAlreadyExists):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Term with keyword '%s' already exists", keyword))
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// keywordParam returns the percent-decoded {keyword} path parameter.
// chi matches on the raw path when the URL carries escaped characters such as %2F.
func keywordParam(r *http.Request) string {
	keyword := chi.URLParam(r, "keyword")
	if r.URL.RawPath == "" {
		return keyword
	}
	if decoded, err := url.PathUnescape(keyword); err == nil {
		return decoded
	}
	return keyword
}
