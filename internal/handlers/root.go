package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-glossary/internal/models"
)

// NewRootHandler returns an HTTP handler describing the service.
// @Summary Service info
// @Description Returns the service name, documentation path and version
// @Tags root
// @Produce json
// @Success 200 {object} models.RootResponse "Service info"
// @Router / [get]
func NewRootHandler(name, docsPath, version string) http.HandlerFunc {
	info := models.RootResponse{Message: name, Docs: docsPath, Version: version}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, info)
	}
}
