package report

import (
	"encoding/json"
	"io"

	"github.com/rudof-project/rudof-sub005/schema"
	"github.com/rudof-project/rudof-sub005/shapemap"
)

// entryWire is the JSON wire format for one shapemap.Entry.
type entryWire struct {
	Node    string   `json:"node"`
	Shape   string   `json:"shape"`
	Status  string   `json:"status"`
	Reasons []string `json:"reasons,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// detailsWire is the JSON wire format for a full validation result.
type detailsWire struct {
	Entries []entryWire `json:"entries"`
	OK      bool        `json:"ok"`
}

// writeDetails renders every entry as JSON, with reasons and error
// trees, mirroring the diag package's wire-struct-plus-Marshal idiom.
func writeDetails(w io.Writer, m *shapemap.ShapeMap, s *schema.Schema) error {
	wire := toDetailsWire(m, s)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(wire)
}

func toDetailsWire(m *shapemap.ShapeMap, s *schema.Schema) detailsWire {
	entries := m.Entries()
	out := make([]entryWire, len(entries))
	ok := m.OK()
	for i, e := range entries {
		if e.Status != shapemap.Conformant {
			ok = false
		}
		label := s.Label(e.Pair.Shape)
		ew := entryWire{
			Node:   e.Pair.Node.String(),
			Shape:  label.String(),
			Status: e.Status.String(),
		}
		if len(e.Reasons) > 0 {
			ew.Reasons = append([]string(nil), e.Reasons...)
		}
		for _, err := range e.Errors {
			ew.Errors = append(ew.Errors, err.Error())
		}
		out[i] = ew
	}
	return detailsWire{Entries: out, OK: ok}
}
