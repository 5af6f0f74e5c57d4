package graph

import (
	"strconv"
	"strings"
)

// NodeID derives the deterministic node id for an entity, e.g. "show-12" or
// "writer-7". The scheme is reversible via ParseNodeID.
func NodeID(nodeType string, id int) string {
	return nodeType + "-" + strconv.Itoa(id)
}

// ParseNodeID recovers the node type and numeric id from a node id string.
// Only the exact two-part pattern produced by NodeID parses: a known node
// type (exact spelling, exact casing), one dash, and a non-negative integer
// with no sign, fraction or extra segments. Anything else returns ok=false
// rather than a partial result.
func ParseNodeID(s string) (nodeType string, id int, ok bool) {
	sep := strings.IndexByte(s, '-')
	if sep < 0 {
		return "", 0, false
	}

	nodeType = s[:sep]
	if nodeType != NodeTypeShow && nodeType != NodeTypeWriter {
		return "", 0, false
	}

	suffix := s[sep+1:]
	if suffix == "" {
		return "", 0, false
	}
	for i := 0; i < len(suffix); i++ {
		if suffix[i] < '0' || suffix[i] > '9' {
			return "", 0, false
		}
	}

	id, err := strconv.Atoi(suffix)
	if err != nil {
		return "", 0, false
	}
	return nodeType, id, true
}
