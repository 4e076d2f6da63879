package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rudof-project/rudof-sub005/schema"
	"github.com/rudof-project/rudof-sub005/shapemap"
)

var (
	conformantColor    = color.New(color.FgGreen)
	nonConformantColor = color.New(color.FgRed)
	inconsistentColor  = color.New(color.FgYellow, color.Bold)
	pendingColor       = color.New(color.FgHiBlack)
)

// writeCompact renders one colored line per pair: "node@shape -> status".
func writeCompact(w io.Writer, m *shapemap.ShapeMap, s *schema.Schema) error {
	for _, e := range m.Entries() {
		label := s.Label(e.Pair.Shape)
		c := statusColor(e.Status)
		if _, err := fmt.Fprintf(w, "%s@%s -> %s\n", e.Pair.Node, label, c.Sprint(e.Status)); err != nil {
			return err
		}
	}
	return nil
}

func statusColor(st shapemap.ValidationStatus) *color.Color {
	switch st {
	case shapemap.Conformant:
		return conformantColor
	case shapemap.NonConformant:
		return nonConformantColor
	case shapemap.Inconsistent:
		return inconsistentColor
	default:
		return pendingColor
	}
}
