package diagram

import "designpro/internal/arch"

// ColorPair is the fill/stroke styling for one node kind.
type ColorPair struct {
	Fill   string
	Stroke string
}

var kindColors = map[arch.NodeKind]ColorPair{
	arch.KindService:  {Fill: "rgba(59,130,246,0.2)", Stroke: "#3b82f6"},
	arch.KindDatabase: {Fill: "rgba(16,185,129,0.2)", Stroke: "#10b981"},
	arch.KindGateway:  {Fill: "rgba(249,115,22,0.2)", Stroke: "#f97316"},
	arch.KindExternal: {Fill: "rgba(100,116,139,0.2)", Stroke: "#94a3b8"},
}

var defaultColors = ColorPair{Fill: "rgba(107,114,128,0.2)", Stroke: "#6b7280"}

// Colors returns the styling for a node kind. Unrecognized kinds fall back
// to a neutral gray pair; the function is total and never fails.
func Colors(kind arch.NodeKind) ColorPair {
	if c, ok := kindColors[kind]; ok {
		return c
	}
	return defaultColors
}
