package handler

import (
	"net/http"

	"designpro/internal/arch"
)

// Static reference data: direct projections of the seed tables, no logic.

func (h *Handler) handleSchemas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tables": arch.Schemas()})
}

func (h *Handler) handleApproach(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"steps": arch.ApproachSteps()})
}
