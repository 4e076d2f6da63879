package validate

import (
	"context"
	"sort"
	"testing"

	"github.com/rudof-project/rudof-sub005/rdf"
	"github.com/rudof-project/rudof-sub005/rdfg"
)

func sortedValues(ts []rdf.Term) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	sort.Strings(out)
	return out
}

func TestSelectNodes_TargetNode(t *testing.T) {
	alice := rdf.NewIRI("urn:alice")
	got, err := SelectNodes(context.Background(), rdfg.New(), Target{Kind: TargetNode, Term: alice})
	if err != nil {
		t.Fatalf("SelectNodes: %v", err)
	}
	if len(got) != 1 || got[0] != alice {
		t.Errorf("got %v; want [%v]", got, alice)
	}
}

func TestSelectNodes_TargetNode_RejectsBlankNode(t *testing.T) {
	bn := rdf.NewBlankNode("b1")
	got, err := SelectNodes(context.Background(), rdfg.New(), Target{Kind: TargetNode, Term: bn})
	if err != nil {
		t.Fatalf("SelectNodes: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v; want empty (blank nodes rejected)", got)
	}
}

func TestSelectNodes_TargetClass_DirectAndSubclass(t *testing.T) {
	g := rdfg.New()
	person := rdf.NewIRI("urn:Person")
	employee := rdf.NewIRI("urn:Employee")
	alice := rdf.NewIRI("urn:alice")
	bob := rdf.NewIRI("urn:bob")

	g.Add(rdf.Triple{Subject: employee, Predicate: rdf.NewIRI(rdfsSubClassOf), Object: person})
	g.Add(rdf.Triple{Subject: alice, Predicate: rdf.NewIRI(rdfType), Object: person})
	g.Add(rdf.Triple{Subject: bob, Predicate: rdf.NewIRI(rdfType), Object: employee})

	got, err := SelectNodes(context.Background(), g, Target{Kind: TargetClass, Term: person})
	if err != nil {
		t.Fatalf("SelectNodes: %v", err)
	}
	want := []string{"<urn:alice>", "<urn:bob>"}
	gotSorted := sortedValues(got)
	if len(gotSorted) != len(want) || gotSorted[0] != want[0] || gotSorted[1] != want[1] {
		t.Errorf("got %v; want %v", gotSorted, want)
	}
}

func TestSelectNodes_TargetSubjectsOf(t *testing.T) {
	g := rdfg.New()
	knows := rdf.NewIRI("urn:knows")
	alice := rdf.NewIRI("urn:alice")
	bob := rdf.NewIRI("urn:bob")
	g.Add(rdf.Triple{Subject: alice, Predicate: knows, Object: bob})

	got, err := SelectNodes(context.Background(), g, Target{Kind: TargetSubjectsOf, Term: knows})
	if err != nil {
		t.Fatalf("SelectNodes: %v", err)
	}
	if len(got) != 1 || got[0] != alice {
		t.Errorf("got %v; want [%v]", got, alice)
	}
}

func TestSelectNodes_TargetObjectsOf(t *testing.T) {
	g := rdfg.New()
	knows := rdf.NewIRI("urn:knows")
	alice := rdf.NewIRI("urn:alice")
	bob := rdf.NewIRI("urn:bob")
	g.Add(rdf.Triple{Subject: alice, Predicate: knows, Object: bob})

	got, err := SelectNodes(context.Background(), g, Target{Kind: TargetObjectsOf, Term: knows})
	if err != nil {
		t.Fatalf("SelectNodes: %v", err)
	}
	if len(got) != 1 || got[0] != bob {
		t.Errorf("got %v; want [%v]", got, bob)
	}
}

func TestSelectNodes_UnknownKind(t *testing.T) {
	_, err := SelectNodes(context.Background(), rdfg.New(), Target{Kind: TargetKind(99)})
	if err == nil {
		t.Error("expected error for unknown target kind")
	}
}
