package diagram

import (
	"bytes"
	"strings"
	"testing"

	"designpro/internal/arch"
	"designpro/internal/arch/layout"
)

func testGraph() ([]arch.ServiceNode, []arch.Connection, layout.Layout) {
	nodes := []arch.ServiceNode{
		{ID: "a", Name: "Service A", Kind: arch.KindService},
		{ID: "b", Name: "Store B", Kind: arch.KindDatabase},
		{ID: "ghost", Name: "Unplaced", Kind: arch.KindService},
	}
	conns := []arch.Connection{
		{From: "a", To: "b", Label: "write"},
		{From: "a", To: "ghost", Label: "dropped"},
		{From: "missing", To: "b", Label: "dropped too"},
	}
	l := layout.Layout{
		"a": {X: 50, Y: 100},
		"b": {X: 400, Y: 220},
	}
	return nodes, conns, l
}

func TestRenderEmitsOneCurveAndLabelPerResolvedConnection(t *testing.T) {
	nodes, conns, l := testGraph()
	svg := string(Render(nodes, conns, l))

	if got := strings.Count(svg, "<path "); got != 1 {
		t.Fatalf("expected 1 curve, got %d", got)
	}
	if !strings.Contains(svg, ">write</text>") {
		t.Fatal("expected label for resolved connection")
	}
	if strings.Contains(svg, "dropped") {
		t.Fatal("connection with missing endpoint must emit nothing")
	}
}

func TestRenderSkipsNodesWithoutPosition(t *testing.T) {
	nodes, conns, l := testGraph()
	svg := string(Render(nodes, conns, l))

	if got := strings.Count(svg, "<rect "); got != 2 {
		t.Fatalf("expected 2 node boxes, got %d", got)
	}
	if strings.Contains(svg, "Unplaced") {
		t.Fatal("node without layout position must not be drawn")
	}
}

func TestRenderCurveGeometry(t *testing.T) {
	nodes := []arch.ServiceNode{
		{ID: "a", Name: "A", Kind: arch.KindService},
		{ID: "b", Name: "B", Kind: arch.KindService},
	}
	conns := []arch.Connection{{From: "a", To: "b", Label: "x"}}
	l := layout.Layout{
		"a": {X: 0, Y: 0},
		"b": {X: 300, Y: 100},
	}
	svg := string(Render(nodes, conns, l))

	// Right edge midpoint of a: (180, 40); left edge midpoint of b: (300, 140).
	// Control points offset 50 units inward from each endpoint.
	want := `d="M 180 40 C 230 40, 250 140, 300 140"`
	if !strings.Contains(svg, want) {
		t.Fatalf("curve path missing %q in:\n%s", want, svg)
	}
	// Label midpoint (240, 90) lifted 10 units.
	if !strings.Contains(svg, `<text x="240" y="80"`) {
		t.Fatalf("label not at lifted midpoint:\n%s", svg)
	}
	if !strings.Contains(svg, `marker-end="url(#arrowhead)"`) {
		t.Fatal("curve missing arrowhead marker")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	nodes := arch.SystemNodes()
	conns := arch.SystemConnections()
	l := layout.Default()

	first := Render(nodes, conns, l)
	second := Render(nodes, conns, l)
	if !bytes.Equal(first, second) {
		t.Fatal("render output differs between identical runs")
	}
}

func TestRenderFullSeedGraph(t *testing.T) {
	svg := string(Render(arch.SystemNodes(), arch.SystemConnections(), layout.Default()))

	// All 11 nodes have positions; all 10 connections resolve both endpoints.
	if got := strings.Count(svg, "<rect "); got != 11 {
		t.Fatalf("expected 11 boxes, got %d", got)
	}
	if got := strings.Count(svg, "<path "); got != 10 {
		t.Fatalf("expected 10 curves, got %d", got)
	}
}

func TestRenderEscapesLabels(t *testing.T) {
	nodes := []arch.ServiceNode{
		{ID: "a", Name: `A <&> "Svc"`, Kind: arch.KindService},
		{ID: "b", Name: "B", Kind: arch.KindService},
	}
	conns := []arch.Connection{{From: "a", To: "b", Label: "pub & sub"}}
	l := layout.Layout{"a": {X: 0, Y: 0}, "b": {X: 300, Y: 0}}
	svg := string(Render(nodes, conns, l))

	if strings.Contains(svg, "<&>") {
		t.Fatal("node name not escaped")
	}
	if !strings.Contains(svg, "pub &amp; sub") {
		t.Fatal("connection label not escaped")
	}
}

func TestColorsCoverEveryKind(t *testing.T) {
	kinds := []arch.NodeKind{arch.KindService, arch.KindDatabase, arch.KindGateway, arch.KindExternal}
	seen := map[ColorPair]bool{}
	for _, k := range kinds {
		c := Colors(k)
		if c == defaultColors {
			t.Fatalf("kind %q mapped to the fallback pair", k)
		}
		if seen[c] {
			t.Fatalf("kind %q shares a color pair with another kind", k)
		}
		seen[c] = true
	}
}

func TestColorsFallBackForUnknownKind(t *testing.T) {
	if Colors(arch.NodeKind("quantum")) != defaultColors {
		t.Fatal("unknown kind must map to the default gray pair")
	}
}

func TestFingerprintTracksInputs(t *testing.T) {
	nodes, conns, l := testGraph()
	a := Fingerprint(nodes, conns, l)
	if a != Fingerprint(nodes, conns, l) {
		t.Fatal("fingerprint not stable for identical inputs")
	}

	l["a"] = layout.Position{X: 51, Y: 100}
	if a == Fingerprint(nodes, conns, l) {
		t.Fatal("fingerprint ignored a layout change")
	}
}
