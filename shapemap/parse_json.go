package shapemap

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// jsonAssociation mirrors the JSON shape-map input shape (§6):
// [ { "node": ..., "shape": ..., "status": ... } ]. Status is accepted
// for symmetry with ResultShapeMap's own JSON output but is not required
// on input — an input shape map only ever starts pairs as Pending.
type jsonAssociation struct {
	Node  string `json:"node"`
	Shape string `json:"shape"`
}

// ParseJSON parses the JSON shape-map input form, tolerating comments and
// trailing commas via jsonc preprocessing before strict decoding.
func ParseJSON(data []byte) ([]ParsedAssociation, error) {
	clean := jsonc.ToJSON(data)

	var raw []jsonAssociation
	if err := json.Unmarshal(clean, &raw); err != nil {
		return nil, fmt.Errorf("shapemap: parsing JSON shape map: %w", err)
	}

	out := make([]ParsedAssociation, 0, len(raw))
	for i, r := range raw {
		if r.Node == "" || r.Shape == "" {
			return nil, fmt.Errorf("shapemap: entry %d missing node or shape", i)
		}
		if r.Shape == "START" {
			out = append(out, ParsedAssociation{Node: r.Node, Start: true})
			continue
		}
		out = append(out, ParsedAssociation{Node: r.Node, ShapeName: r.Shape})
	}
	return out, nil
}
