package report

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rudof-project/rudof-sub005/schema"
	"github.com/rudof-project/rudof-sub005/shapemap"
)

// writeCSV renders one row per pair: node, shape, status, reasons.
func writeCSV(w io.Writer, m *shapemap.ShapeMap, s *schema.Schema) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"node", "shape", "status", "reasons"}); err != nil {
		return err
	}
	for _, e := range m.Entries() {
		label := s.Label(e.Pair.Shape)
		row := []string{
			e.Pair.Node.String(),
			label.String(),
			e.Status.String(),
			strings.Join(e.Reasons, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
