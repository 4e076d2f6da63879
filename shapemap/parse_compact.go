package shapemap

import (
	"bufio"
	"fmt"
	"strings"
)

// ParseCompact parses the compact textual shape-map form (§6): one or
// more associations per line, separated by commas, each of the form
// "node@shape" or "node@START". Blank lines and lines starting with "#"
// are ignored. SPARQL-block node selectors ("{ ... }") are read as an
// opaque token and left for the caller's SPARQL-capable backend to
// resolve; this parser does not interpret SPARQL syntax itself.
func ParseCompact(input string) ([]ParsedAssociation, error) {
	var out []ParsedAssociation
	sc := bufio.NewScanner(strings.NewReader(input))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, chunk := range splitTopLevelCommas(line) {
			chunk = strings.TrimSpace(chunk)
			if chunk == "" {
				continue
			}
			assoc, err := parseCompactPair(chunk)
			if err != nil {
				return nil, fmt.Errorf("shapemap: line %d: %w", lineNo, err)
			}
			out = append(out, assoc)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("shapemap: scanning compact shape map: %w", err)
	}
	return out, nil
}

// splitTopLevelCommas splits on commas that are not nested inside a
// "{ ... }" SPARQL block, so a block's own commas don't fragment it.
func splitTopLevelCommas(line string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range line {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, line[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, line[start:])
	return out
}

func parseCompactPair(chunk string) (ParsedAssociation, error) {
	at := strings.LastIndex(chunk, "@")
	if at < 0 {
		return ParsedAssociation{}, fmt.Errorf("missing '@' in association %q", chunk)
	}
	node := strings.TrimSpace(chunk[:at])
	shape := strings.TrimSpace(chunk[at+1:])
	if node == "" || shape == "" {
		return ParsedAssociation{}, fmt.Errorf("empty node or shape in association %q", chunk)
	}
	if strings.EqualFold(shape, "START") {
		return ParsedAssociation{Node: node, Start: true}, nil
	}
	return ParsedAssociation{Node: node, ShapeName: shape}, nil
}
