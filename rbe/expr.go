// Package rbe implements the regular bag expression IR and its
// derivative-based matcher (C3/C4): the engine that decides whether a
// multiset ("bag") of (predicate, object) arcs satisfies a triple
// expression, independent of the order those arcs were read off the RDF
// graph.
package rbe

import (
	"fmt"

	"github.com/rudof-project/rudof-sub005/card"
	"github.com/rudof-project/rudof-sub005/rdf"
)

// Expr is a regular bag expression node. The concrete variants are Empty,
// Fail, Symbol, And, Or, Star, Plus, and Repeat; Expr is a sealed interface
// (the unexported marker method prevents external implementations) the
// way the teacher seals its expression AST.
type Expr interface {
	// Nullable reports whether the expression matches the empty bag.
	Nullable() bool

	rbeNode()
}

// Empty matches only the empty bag.
type Empty struct{}

func (Empty) Nullable() bool { return true }
func (Empty) rbeNode()       {}
func (Empty) String() string { return "Empty" }

// FailReason names why a Fail node was produced; it is carried for
// diagnostics, not branched on by the matcher (a Fail is always a dead end).
type FailReason string

const (
	ReasonUnexpectedEmpty  FailReason = "UnexpectedEmpty"
	ReasonUnexpectedSymbol FailReason = "UnexpectedSymbol"
	ReasonMaxCardZero      FailReason = "MaxCardinalityZero"
	ReasonCardZeroZeroDrv  FailReason = "CardinalityZeroZeroDeriv"
	ReasonCondFailed       FailReason = "CondFailed"
	ReasonRangeBoundsBad   FailReason = "RangeLowerBoundBiggerMax"
)

// Fail is the "no match" expression; every derivative of Fail is Fail.
type Fail struct {
	Reason FailReason
	Detail string
}

func (Fail) Nullable() bool { return false }
func (Fail) rbeNode()       {}
func (f Fail) String() string {
	if f.Detail != "" {
		return fmt.Sprintf("Fail(%s: %s)", f.Reason, f.Detail)
	}
	return fmt.Sprintf("Fail(%s)", f.Reason)
}

// Symbol matches between Min and Max occurrences of arcs on Predicate that
// also satisfy Cond (e.g. a datatype or node-kind check on the object).
type Symbol struct {
	Predicate rdf.Term
	Min       int
	Max       card.Max
	Cond      Cond
}

func (s Symbol) Nullable() bool { return s.Min == 0 }
func (Symbol) rbeNode()         {}
func (s Symbol) String() string {
	return fmt.Sprintf("Symbol(%s, %d, %s)", s.Predicate, s.Min, s.Max)
}

// And matches a bag that can be split into two sub-bags, one matching Left
// and the other Right, in any interleaving — this is multiset conjunction,
// not sequential concatenation (EachOf, §3).
type And struct {
	Left, Right Expr
}

func (a And) Nullable() bool { return a.Left.Nullable() && a.Right.Nullable() }
func (And) rbeNode()         {}
func (a And) String() string { return fmt.Sprintf("And(%s, %s)", a.Left, a.Right) }

// Or matches a bag that matches Left or Right (OneOf, §3).
type Or struct {
	Left, Right Expr
}

func (o Or) Nullable() bool { return o.Left.Nullable() || o.Right.Nullable() }
func (Or) rbeNode()         {}
func (o Or) String() string { return fmt.Sprintf("Or(%s, %s)", o.Left, o.Right) }

// Star matches zero or more interleaved repetitions of Sub.
type Star struct{ Sub Expr }

func (Star) Nullable() bool  { return true }
func (Star) rbeNode()        {}
func (s Star) String() string { return fmt.Sprintf("Star(%s)", s.Sub) }

// Plus matches one or more interleaved repetitions of Sub.
type Plus struct{ Sub Expr }

func (p Plus) Nullable() bool  { return p.Sub.Nullable() }
func (Plus) rbeNode()          {}
func (p Plus) String() string  { return fmt.Sprintf("Plus(%s)", p.Sub) }

// Repeat matches between Min and Max interleaved repetitions of Sub
// (the general cardinality form a compiled TripleConstraint lowers to).
type Repeat struct {
	Sub Expr
	Min int
	Max card.Max
}

func (r Repeat) Nullable() bool { return r.Min == 0 || r.Sub.Nullable() }
func (Repeat) rbeNode()         {}
func (r Repeat) String() string {
	return fmt.Sprintf("Repeat(%s, %d, %s)", r.Sub, r.Min, r.Max)
}
