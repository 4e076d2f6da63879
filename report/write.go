package report

import (
	"fmt"
	"io"

	"github.com/rudof-project/rudof-sub005/schema"
	"github.com/rudof-project/rudof-sub005/shapemap"
)

// Write serializes m (qualified by labels from s) to w in format.
func Write(w io.Writer, format Format, m *shapemap.ShapeMap, s *schema.Schema) error {
	switch {
	case format == Compact:
		return writeCompact(w, m, s)
	case format == Details:
		return writeDetails(w, m, s)
	case format == CSV:
		return writeCSV(w, m, s)
	case format == Minimal:
		return writeMinimal(w, m)
	case format.isRDFFamily():
		triples := toRDFTriples(m, s)
		return writeRDFFamily(w, format, triples)
	default:
		return fmt.Errorf("report: unsupported format %s", format)
	}
}
