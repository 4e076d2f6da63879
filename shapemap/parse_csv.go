package shapemap

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseCSV parses the CSV shape-map input form (§6): one header row
// ("node,shape") followed by one association per row.
func ParseCSV(r io.Reader) ([]ParsedAssociation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("shapemap: parsing CSV shape map: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	nodeCol, shapeCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "node":
			nodeCol = i
		case "shape":
			shapeCol = i
		}
	}
	if nodeCol < 0 || shapeCol < 0 {
		return nil, fmt.Errorf("shapemap: CSV header must contain \"node\" and \"shape\" columns")
	}

	out := make([]ParsedAssociation, 0, len(records)-1)
	for i, row := range records[1:] {
		if nodeCol >= len(row) || shapeCol >= len(row) {
			return nil, fmt.Errorf("shapemap: row %d missing node or shape column", i+1)
		}
		node := strings.TrimSpace(row[nodeCol])
		shape := strings.TrimSpace(row[shapeCol])
		if node == "" || shape == "" {
			return nil, fmt.Errorf("shapemap: row %d has empty node or shape", i+1)
		}
		if shape == "START" {
			out = append(out, ParsedAssociation{Node: node, Start: true})
			continue
		}
		out = append(out, ParsedAssociation{Node: node, ShapeName: shape})
	}
	return out, nil
}
