// Package arch defines the reference architecture model: service nodes,
// directed labeled connections between them, and the relational schema
// tables shown alongside the diagram. All values are immutable seed data
// fixed at process start.
package arch

// NodeKind classifies a node for rendering purposes.
type NodeKind string

const (
	KindService  NodeKind = "service"
	KindDatabase NodeKind = "database"
	KindGateway  NodeKind = "gateway"
	KindExternal NodeKind = "external"
)

// ServiceNode is one component box in the architecture diagram.
// Identity is ID; nodes are never mutated after definition.
type ServiceNode struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         NodeKind `json:"kind"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
}

// Connection is a directed, labeled edge between two nodes. From and To
// reference ServiceNode IDs; a connection whose endpoint is unknown is
// skipped by the renderer, never an error.
type Connection struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// Column describes one column of a schema table.
type Column struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Constraints string `json:"constraints,omitempty"`
}

// SchemaTable is a named, ordered set of columns.
type SchemaTable struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// ApproachStep is one step of the design methodology walkthrough.
type ApproachStep struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
