package overlay

import "fmt"

// Edge selects where an overlay is anchored. It is a string type so it
// reads cleanly in YAML config and CLI flags.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeCenter Edge = "center"
)

// Edges lists every supported edge in a stable order.
var Edges = []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight, EdgeCenter}

// ParseEdge converts a string into an Edge.
func ParseEdge(s string) (Edge, error) {
	e := Edge(s)
	if !e.Valid() {
		return "", fmt.Errorf("unknown edge %q (want top, bottom, left, right or center)", s)
	}
	return e, nil
}

// Valid reports whether e is one of the known edges.
func (e Edge) Valid() bool {
	switch e {
	case EdgeTop, EdgeBottom, EdgeLeft, EdgeRight, EdgeCenter:
		return true
	default:
		return false
	}
}

// Horizontal reports whether the edge slides along the x axis.
func (e Edge) Horizontal() bool {
	return e == EdgeLeft || e == EdgeRight
}

// outward is the sign of the off-screen direction: -1 for top/left,
// +1 for bottom/right and 0 for center.
func (e Edge) outward() int {
	switch e {
	case EdgeTop, EdgeLeft:
		return -1
	case EdgeBottom, EdgeRight:
		return 1
	default:
		return 0
	}
}

func (e Edge) String() string {
	return string(e)
}

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(b []byte) error {
	parsed, err := ParseEdge(string(b))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
