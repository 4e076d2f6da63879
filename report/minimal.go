package report

import (
	"fmt"
	"io"

	"github.com/rudof-project/rudof-sub005/shapemap"
)

// writeMinimal renders only the overall verdict and per-status counts.
func writeMinimal(w io.Writer, m *shapemap.ShapeMap) error {
	var conformant, nonConformant, inconsistent, pending int
	for _, e := range m.Entries() {
		switch e.Status {
		case shapemap.Conformant:
			conformant++
		case shapemap.NonConformant:
			nonConformant++
		case shapemap.Inconsistent:
			inconsistent++
		default:
			pending++
		}
	}

	verdict := "PASS"
	if !m.OK() || nonConformant > 0 || pending > 0 {
		verdict = "FAIL"
	}

	_, err := fmt.Fprintf(w, "%s (conformant=%d nonconformant=%d inconsistent=%d pending=%d)\n",
		verdict, conformant, nonConformant, inconsistent, pending)
	return err
}
