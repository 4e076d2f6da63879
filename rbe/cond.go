package rbe

import (
	"fmt"
	"strings"

	"github.com/rudof-project/rudof-sub005/rdf"
)

// Cond is a named match condition on an object term (and, for context,
// the predicate it arrived on). Conditions are compared by name, not by
// function identity or structural equality (§3: "two conditions are equal
// iff their names are equal") — grounded on the original's MatchCond/Cond
// trait-object taxonomy (§10.1), here expressed as a named value rather
// than a boxed closure.
type Cond struct {
	name string
	fn   func(predicate, object rdf.Term) error
}

// NewCond builds a named condition from a check function. fn returning a
// non-nil error means the object failed the condition; the error message
// becomes the E_COND_FAILED issue detail.
func NewCond(name string, fn func(predicate, object rdf.Term) error) Cond {
	return Cond{name: name, fn: fn}
}

// Name returns the condition's name.
func (c Cond) Name() string { return c.name }

// IsZero reports whether c is the zero Cond (no condition, always passes).
func (c Cond) IsZero() bool { return c.name == "" && c.fn == nil }

// Check evaluates the condition. A zero Cond always succeeds.
func (c Cond) Check(predicate, object rdf.Term) error {
	if c.fn == nil {
		return nil
	}
	return c.fn(predicate, object)
}

// Equal reports whether two conditions have the same name.
func (c Cond) Equal(other Cond) bool { return c.name == other.name }

// AndCond combines conditions conjunctively; all must succeed. The
// combined name joins the operand names so two AndConds with the same
// operands in the same order compare equal.
func AndCond(conds ...Cond) Cond {
	names := make([]string, len(conds))
	for i, c := range conds {
		names[i] = c.name
	}
	name := "(" + strings.Join(names, " && ") + ")"
	return Cond{
		name: name,
		fn: func(p, o rdf.Term) error {
			for _, c := range conds {
				if err := c.Check(p, o); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// NotCond negates a condition: it succeeds exactly when inner fails.
func NotCond(inner Cond) Cond {
	return Cond{
		name: "!" + inner.name,
		fn: func(p, o rdf.Term) error {
			if err := inner.Check(p, o); err == nil {
				return fmt.Errorf("rbe: negated condition %q unexpectedly matched %s", inner.name, o)
			}
			return nil
		},
	}
}
