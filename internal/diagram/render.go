// Package diagram renders the architecture graph to SVG. Rendering is a
// pure function of (nodes, connections, layout): the same inputs always
// produce byte-identical output, and elements whose geometry cannot be
// resolved are skipped rather than reported.
package diagram

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	"designpro/internal/arch"
	"designpro/internal/arch/layout"
)

const (
	NodeWidth  = 180
	NodeHeight = 80

	canvasWidth  = 1300
	canvasHeight = 600

	cornerRadius = 8
	curveOffset  = 50
	labelLift    = 10
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Render produces the SVG drawing for the given graph and layout.
// Connections are drawn first so node boxes sit on top of the curves,
// matching the visual stacking of the diagram.
func Render(nodes []arch.ServiceNode, conns []arch.Connection, l layout.Layout) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", canvasWidth, canvasHeight)
	b.WriteString(`  <defs>` + "\n")
	b.WriteString(`    <marker id="arrowhead" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto">` + "\n")
	b.WriteString(`      <polygon points="0 0, 10 3.5, 0 7" fill="#64748b"/>` + "\n")
	b.WriteString(`    </marker>` + "\n")
	b.WriteString(`  </defs>` + "\n")

	for _, c := range conns {
		writeConnection(&b, c, l)
	}
	for _, n := range nodes {
		writeNode(&b, n, l)
	}

	b.WriteString(`</svg>` + "\n")
	return b.Bytes()
}

// writeConnection draws a directed cubic curve from the right-edge midpoint
// of the source box to the left-edge midpoint of the target box. Control
// points sit curveOffset units inside each endpoint, giving a smooth
// S-curve for any vertical offset. Connections with an unresolved endpoint
// are omitted entirely.
func writeConnection(b *bytes.Buffer, c arch.Connection, l layout.Layout) {
	from, ok := l.Position(c.From)
	if !ok {
		return
	}
	to, ok := l.Position(c.To)
	if !ok {
		return
	}

	startX := from.X + NodeWidth
	startY := from.Y + NodeHeight/2
	endX := to.X
	endY := to.Y + NodeHeight/2

	fmt.Fprintf(b,
		`  <path d="M %s %s C %s %s, %s %s, %s %s" fill="none" stroke="#475569" stroke-width="2" marker-end="url(#arrowhead)"/>`+"\n",
		num(startX), num(startY),
		num(startX+curveOffset), num(startY),
		num(endX-curveOffset), num(endY),
		num(endX), num(endY),
	)
	fmt.Fprintf(b,
		`  <text x="%s" y="%s" fill="#94a3b8" font-size="10" font-weight="500" text-anchor="middle">%s</text>`+"\n",
		num((startX+endX)/2),
		num((startY+endY)/2-labelLift),
		textEscaper.Replace(c.Label),
	)
}

func writeNode(b *bytes.Buffer, n arch.ServiceNode, l layout.Layout) {
	pos, ok := l.Position(n.ID)
	if !ok {
		return
	}
	colors := Colors(n.Kind)

	fmt.Fprintf(b, `  <g transform="translate(%s, %s)">`+"\n", num(pos.X), num(pos.Y))
	fmt.Fprintf(b,
		`    <rect width="%d" height="%d" rx="%d" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		NodeWidth, NodeHeight, cornerRadius, colors.Fill, colors.Stroke,
	)
	fmt.Fprintf(b,
		`    <text x="%d" y="35" fill="#ffffff" font-size="14" font-weight="bold" text-anchor="middle">%s</text>`+"\n",
		NodeWidth/2, textEscaper.Replace(n.Name),
	)
	fmt.Fprintf(b,
		`    <text x="%d" y="55" fill="#94a3b8" font-size="10" text-anchor="middle">%s</text>`+"\n",
		NodeWidth/2, textEscaper.Replace(strings.ToUpper(string(n.Kind))),
	)
	b.WriteString(`  </g>` + "\n")
}

// Fingerprint hashes the render inputs; identical inputs always hash the
// same. Used to key caches of rendered output.
func Fingerprint(nodes []arch.ServiceNode, conns []arch.Connection, l layout.Layout) string {
	h := fnv.New64a()
	for _, n := range nodes {
		fmt.Fprintf(h, "n|%s|%s|%s\n", n.ID, n.Name, n.Kind)
	}
	for _, c := range conns {
		fmt.Fprintf(h, "c|%s|%s|%s\n", c.From, c.To, c.Label)
	}
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := l[id]
		fmt.Fprintf(h, "p|%s|%s|%s\n", id, num(p.X), num(p.Y))
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
