package handler

import "net/http"

func (h *Handler) handleDiagram(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(h.renderSVG())
}

func (h *Handler) handleDiagramExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.exports == nil {
		http.Error(w, "diagram export is not configured", http.StatusServiceUnavailable)
		return
	}
	key, err := h.exports.PutDiagram(r.Context(), "architecture", h.renderSVG())
	if err != nil {
		http.Error(w, "export failed: "+err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"key": key})
}

func (h *Handler) handleDiagramExports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.exports == nil {
		http.Error(w, "diagram export is not configured", http.StatusServiceUnavailable)
		return
	}
	keys, err := h.exports.ListDiagrams(r.Context())
	if err != nil {
		http.Error(w, "list failed: "+err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"keys": keys})
}
