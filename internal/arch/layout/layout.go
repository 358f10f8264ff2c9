// Package layout maps node identities to fixed drawing positions. Positions
// are hand-authored constants, not derived from the connection graph: the
// reference architecture is small and fixed, so a static table keeps the
// diagram stable between runs.
package layout

// Position is a node's top-left corner in diagram coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout maps node IDs to positions. It is passed by value into the
// renderer; a node absent from the layout is simply not drawn.
type Layout map[string]Position

// Position returns the registered position for id, reporting absence
// rather than inventing coordinates.
func (l Layout) Position(id string) (Position, bool) {
	p, ok := l[id]
	return p, ok
}

// Default returns the layout for the booking reference architecture,
// grouped into visual columns: client tier, routing tier, service tier,
// data tier. Callers get a fresh copy each time.
func Default() Layout {
	return Layout{
		"client":      {X: 50, Y: 250},
		"lb":          {X: 300, Y: 250},
		"gateway":     {X: 550, Y: 250},
		"user_svc":    {X: 800, Y: 50},
		"movie_svc":   {X: 800, Y: 150},
		"booking_svc": {X: 800, Y: 250},
		"payment_svc": {X: 800, Y: 350},
		"notif_svc":   {X: 800, Y: 450},
		"main_db":     {X: 1050, Y: 200},
		"cache":       {X: 1050, Y: 300},
		"search_db":   {X: 1050, Y: 100},
	}
}
