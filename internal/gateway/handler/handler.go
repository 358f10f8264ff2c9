// Package handler exposes the UI-facing surface over HTTP: the chat
// session, the rendered architecture diagram, and the static reference
// data. The presentation layer itself lives elsewhere; this package only
// serves JSON, SVG, and the chat websocket.
package handler

import (
	"encoding/json"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"

	"designpro/internal/arch"
	"designpro/internal/arch/layout"
	"designpro/internal/chat"
	"designpro/internal/diagram"
	"designpro/internal/export"
)

type Handler struct {
	session *chat.Session

	nodes  []arch.ServiceNode
	conns  []arch.Connection
	layout layout.Layout

	renders *lru.Cache[string, []byte]
	exports *export.Store // nil when export is not configured
}

func New(session *chat.Session, nodes []arch.ServiceNode, conns []arch.Connection, l layout.Layout, exports *export.Store) (*Handler, error) {
	renders, err := lru.New[string, []byte](16)
	if err != nil {
		return nil, err
	}
	return &Handler{
		session: session,
		nodes:   nodes,
		conns:   conns,
		layout:  l,
		renders: renders,
		exports: exports,
	}, nil
}

func NewMux(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/chat", h.handleChat)
	mux.HandleFunc("/api/conversation", h.handleConversation)
	mux.HandleFunc("/api/diagram", h.handleDiagram)
	mux.HandleFunc("/api/diagram/export", h.handleDiagramExport)
	mux.HandleFunc("/api/diagram/exports", h.handleDiagramExports)
	mux.HandleFunc("/api/schemas", h.handleSchemas)
	mux.HandleFunc("/api/approach", h.handleApproach)
	mux.HandleFunc("/ws/chat", h.handleChatWS)

	return cors(mux)
}

// renderSVG renders the diagram, memoizing by input fingerprint. Rendering
// is pure, so a hit is byte-identical to a fresh render.
func (h *Handler) renderSVG() []byte {
	fp := diagram.Fingerprint(h.nodes, h.conns, h.layout)
	if svg, ok := h.renders.Get(fp); ok {
		return svg
	}
	svg := diagram.Render(h.nodes, h.conns, h.layout)
	h.renders.Add(fp, svg)
	return svg
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
