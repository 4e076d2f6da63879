package report

import (
	"fmt"
	"io"

	"github.com/rudof-project/rudof-sub005/rdf"
	"github.com/rudof-project/rudof-sub005/schema"
	"github.com/rudof-project/rudof-sub005/shapemap"
)

// SHACL-core vocabulary terms (§6) the RDF-family formats emit.
var (
	shValidationReport         = rdf.NewIRI("http://www.w3.org/ns/shacl#ValidationReport")
	shConforms                 = rdf.NewIRI("http://www.w3.org/ns/shacl#conforms")
	shResult                   = rdf.NewIRI("http://www.w3.org/ns/shacl#result")
	shValidationResult         = rdf.NewIRI("http://www.w3.org/ns/shacl#ValidationResult")
	shFocusNode                = rdf.NewIRI("http://www.w3.org/ns/shacl#focusNode")
	shResultPath               = rdf.NewIRI("http://www.w3.org/ns/shacl#resultPath")
	shResultSeverity           = rdf.NewIRI("http://www.w3.org/ns/shacl#resultSeverity")
	shSourceShape              = rdf.NewIRI("http://www.w3.org/ns/shacl#sourceShape")
	shSourceConstraintComp     = rdf.NewIRI("http://www.w3.org/ns/shacl#sourceConstraintComponent")
	shValue                    = rdf.NewIRI("http://www.w3.org/ns/shacl#value")
	shResultMessage            = rdf.NewIRI("http://www.w3.org/ns/shacl#resultMessage")
	shViolation                = rdf.NewIRI("http://www.w3.org/ns/shacl#Violation")
	rdfTypeTerm                = rdf.NewIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	genericConstraintComponent = rdf.NewIRI("http://www.w3.org/ns/shacl#ConstraintComponent")
)

// toRDFTriples is the single triple-producing step every RDF-family
// format shares (§10.4): one sh:ValidationResult blank node per
// NonConformant (or Inconsistent) pair, linked from a report-level
// sh:ValidationReport node, using the SHACL-core vocabulary of §6.
func toRDFTriples(m *shapemap.ShapeMap, s *schema.Schema) []rdf.Triple {
	report := rdf.NewBlankNode("validationReport")
	var triples []rdf.Triple
	triples = append(triples,
		rdf.Triple{Subject: report, Predicate: rdfTypeTerm, Object: shValidationReport},
		rdf.Triple{Subject: report, Predicate: shConforms, Object: boolLiteral(m.OK())},
	)

	for i, e := range m.Entries() {
		if e.Status != shapemap.NonConformant && e.Status != shapemap.Inconsistent {
			continue
		}
		result := rdf.NewBlankNode(fmt.Sprintf("result%d", i))
		label := s.Label(e.Pair.Shape)

		triples = append(triples,
			rdf.Triple{Subject: report, Predicate: shResult, Object: result},
			rdf.Triple{Subject: result, Predicate: rdfTypeTerm, Object: shValidationResult},
			rdf.Triple{Subject: result, Predicate: shFocusNode, Object: e.Pair.Node},
			rdf.Triple{Subject: result, Predicate: shResultSeverity, Object: shViolation},
			rdf.Triple{Subject: result, Predicate: shSourceConstraintComp, Object: genericConstraintComponent},
		)
		if label.Term().IsIRI() {
			triples = append(triples, rdf.Triple{Subject: result, Predicate: shSourceShape, Object: label.Term()})
		}
		for _, reason := range e.Reasons {
			triples = append(triples, rdf.Triple{Subject: result, Predicate: shResultMessage, Object: rdf.NewLiteral(reason, rdf.XSDString)})
		}
		for _, err := range e.Errors {
			triples = append(triples, rdf.Triple{Subject: result, Predicate: shResultMessage, Object: rdf.NewLiteral(err.Error(), rdf.XSDString)})
		}
	}
	return triples
}

func boolLiteral(b bool) rdf.Term {
	if b {
		return rdf.NewLiteral("true", "http://www.w3.org/2001/XMLSchema#boolean")
	}
	return rdf.NewLiteral("false", "http://www.w3.org/2001/XMLSchema#boolean")
}

// writeRDFFamily serializes triples in the line-oriented formats
// (Turtle/N-Triples/N-Quads/TriG/N3) as one statement per line using
// Triple.String's Turtle-like rendering, and emits a minimal RDF/XML
// document for RDFXML. Turtle/TriG/N3 omit prefix-qualified shorthand
// (no PREFIX declarations are tracked by the map being serialized) but
// remain syntactically valid, full-IRI Turtle.
func writeRDFFamily(w io.Writer, format Format, triples []rdf.Triple) error {
	switch format {
	case Turtle, NTriples, TriG, N3, NQuads:
		for _, t := range triples {
			if _, err := fmt.Fprintln(w, t.String()); err != nil {
				return err
			}
		}
		return nil
	case RDFXML:
		return writeRDFXML(w, triples)
	default:
		return fmt.Errorf("report: %s is not an RDF-family format", format)
	}
}

func writeRDFXML(w io.Writer, triples []rdf.Triple) error {
	if _, err := io.WriteString(w, "<rdf:RDF xmlns:rdf=\"http://www.w3.org/1999/02/22-rdf-syntax-ns#\">\n"); err != nil {
		return err
	}
	bySubject := make(map[rdf.Term][]rdf.Triple)
	var order []rdf.Term
	seen := make(map[rdf.Term]bool)
	for _, t := range triples {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			order = append(order, t.Subject)
		}
		bySubject[t.Subject] = append(bySubject[t.Subject], t)
	}
	for _, subj := range order {
		if _, err := fmt.Fprintf(w, "  <rdf:Description rdf:nodeID=%q>\n", subj.Value()); err != nil {
			return err
		}
		for _, t := range bySubject[subj] {
			if t.Object.IsLiteral() {
				if _, err := fmt.Fprintf(w, "    <%s>%s</%s>\n", t.Predicate.Value(), escapeXML(t.Object.Value()), t.Predicate.Value()); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(w, "    <%s rdf:nodeID=%q/>\n", t.Predicate.Value(), t.Object.Value()); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "  </rdf:Description>\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</rdf:RDF>\n")
	return err
}

func escapeXML(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
