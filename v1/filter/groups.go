package filter

import (
	"fmt"
	"reflect"
	"slices"
)

// MustCondition matches when all of its conditions match.
type MustCondition struct {
	node
	conditions []Condition
}

func (*MustCondition) Kind() Kind { return KindMust }

func (c *MustCondition) Accept(v Visitor) { v.VisitMust(c) }

// Conditions returns a copy of the child conditions.
func (c *MustCondition) Conditions() []Condition { return slices.Clone(c.conditions) }

// MustNotCondition matches when none of its conditions match, i.e. it is the
// conjunction of the negated children, not the negation of their conjunction.
type MustNotCondition struct {
	node
	conditions []Condition
}

func (*MustNotCondition) Kind() Kind { return KindMustNot }

func (c *MustNotCondition) Accept(v Visitor) { v.VisitMustNot(c) }

// Conditions returns a copy of the child conditions.
func (c *MustNotCondition) Conditions() []Condition { return slices.Clone(c.conditions) }

// ShouldCondition matches when at least one of its conditions matches.
type ShouldCondition struct {
	node
	conditions []Condition
}

func (*ShouldCondition) Kind() Kind { return KindShould }

func (c *ShouldCondition) Accept(v Visitor) { v.VisitShould(c) }

// Conditions returns a copy of the child conditions.
func (c *ShouldCondition) Conditions() []Condition { return slices.Clone(c.conditions) }

// MinShouldCondition matches when at least MinCount of its conditions match.
type MinShouldCondition struct {
	node
	minCount   int
	conditions []Condition
}

func (*MinShouldCondition) Kind() Kind { return KindMinShould }

func (c *MinShouldCondition) Accept(v Visitor) { v.VisitMinShould(c) }

// MinCount returns the number of conditions that have to match.
func (c *MinShouldCondition) MinCount() int { return c.minCount }

// Conditions returns a copy of the child conditions.
func (c *MinShouldCondition) Conditions() []Condition { return slices.Clone(c.conditions) }

// NestedCondition matches when all of its conditions match against the same
// element of the array of objects stored under its field.
type NestedCondition struct {
	node
	conditions []Condition
}

func (*NestedCondition) Kind() Kind { return KindNested }

func (c *NestedCondition) Accept(v Visitor) { v.VisitNested(c) }

// Conditions returns a copy of the child conditions.
func (c *NestedCondition) Conditions() []Condition { return slices.Clone(c.conditions) }

// GroupCondition is an operator-less list of conditions. It has no wire
// representation: its children are written straight into the parent object.
type GroupCondition struct {
	node
	conditions []Condition
}

func (*GroupCondition) Kind() Kind { return KindGroup }

func (c *GroupCondition) Accept(v Visitor) { v.VisitGroup(c) }

// Conditions returns a copy of the child conditions.
func (c *GroupCondition) Conditions() []Condition { return slices.Clone(c.conditions) }

// ── Constructors ─────────────────────────────────────────────────────────────

// Must creates a Must condition. Groups among the arguments are unwrapped one
// level and Must conditions are spliced into the result. Nil arguments are
// skipped; a Must left without children is rejected by New and Append.
func Must(condition Condition, more ...Condition) *MustCondition {
	return &MustCondition{conditions: collect(condition, more, mustChildren)}
}

// NewMust is Must for a slice of conditions. It fails with ErrNullArgument
// when conditions holds no non-nil condition.
func NewMust(conditions []Condition) (*MustCondition, error) {
	if len(conditions) == 0 {
		return nil, fmt.Errorf("%w: must condition requires at least one condition", ErrNullArgument)
	}
	c := Must(conditions[0], conditions[1:]...)
	if len(c.conditions) == 0 {
		return nil, fmt.Errorf("%w: must condition requires at least one non-nil condition", ErrNullArgument)
	}
	return c, nil
}

// MustNot creates a MustNot condition. Groups among the arguments are
// unwrapped one level and MustNot conditions are spliced into the result.
func MustNot(condition Condition, more ...Condition) *MustNotCondition {
	return &MustNotCondition{conditions: collect(condition, more, mustNotChildren)}
}

// NewMustNot is MustNot for a slice of conditions. It fails with
// ErrNullArgument when conditions holds no non-nil condition.
func NewMustNot(conditions []Condition) (*MustNotCondition, error) {
	if len(conditions) == 0 {
		return nil, fmt.Errorf("%w: must_not condition requires at least one condition", ErrNullArgument)
	}
	c := MustNot(conditions[0], conditions[1:]...)
	if len(c.conditions) == 0 {
		return nil, fmt.Errorf("%w: must_not condition requires at least one non-nil condition", ErrNullArgument)
	}
	return c, nil
}

// Should creates a Should condition. Groups among the arguments are unwrapped
// one level and Should conditions are spliced into the result.
func Should(condition Condition, more ...Condition) *ShouldCondition {
	return &ShouldCondition{conditions: collect(condition, more, shouldChildren)}
}

// NewShould is Should for a slice of conditions. It fails with
// ErrNullArgument when conditions holds no non-nil condition.
func NewShould(conditions []Condition) (*ShouldCondition, error) {
	if len(conditions) == 0 {
		return nil, fmt.Errorf("%w: should condition requires at least one condition", ErrNullArgument)
	}
	c := Should(conditions[0], conditions[1:]...)
	if len(c.conditions) == 0 {
		return nil, fmt.Errorf("%w: should condition requires at least one non-nil condition", ErrNullArgument)
	}
	return c, nil
}

// MinShould creates a MinShould condition requiring minCount matches.
//
// Groups among the arguments are unwrapped one level. MinShould children with
// the same minCount are spliced; a MinShould with a different minCount stays
// a nested child, merging it would change what matches.
func MinShould(minCount int, conditions ...Condition) (*MinShouldCondition, error) {
	if minCount < 0 {
		return nil, fmt.Errorf("%w: min_count must not be negative, got %d", ErrInvalidConfiguration, minCount)
	}
	same := func(c Condition) ([]Condition, bool) {
		if ms, ok := c.(*MinShouldCondition); ok && ms.minCount == minCount {
			return ms.conditions, true
		}
		return nil, false
	}
	out := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		out = flatten(out, c, same)
	}
	return &MinShouldCondition{minCount: minCount, conditions: out}, nil
}

// Nested creates a Nested condition over the array of objects stored under
// field. The children are kept as given; they are written directly into the
// nested filter object, so they are usually group conditions.
func Nested(field string, conditions ...Condition) (*NestedCondition, error) {
	if field == NoField {
		return nil, fmt.Errorf("%w: nested condition requires a field name", ErrNullArgument)
	}
	out := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		if !isNil(c) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: nested condition %q requires at least one condition", ErrNullArgument, field)
	}
	return &NestedCondition{node: node{field: field}, conditions: out}, nil
}

// Group creates a plain group. Group arguments are spliced, so groups never
// nest.
func Group(condition Condition, more ...Condition) *GroupCondition {
	return &GroupCondition{conditions: collect(condition, more, groupChildren)}
}

// ── Flattening ───────────────────────────────────────────────────────────────

// childrenOf reports the children of c when c has the kind being flattened.
type childrenOf func(c Condition) ([]Condition, bool)

func mustChildren(c Condition) ([]Condition, bool) {
	if m, ok := c.(*MustCondition); ok {
		return m.conditions, true
	}
	return nil, false
}

func mustNotChildren(c Condition) ([]Condition, bool) {
	if m, ok := c.(*MustNotCondition); ok {
		return m.conditions, true
	}
	return nil, false
}

func shouldChildren(c Condition) ([]Condition, bool) {
	if s, ok := c.(*ShouldCondition); ok {
		return s.conditions, true
	}
	return nil, false
}

// groupChildren never splices below the first level: a group's children are
// never groups themselves.
func groupChildren(c Condition) ([]Condition, bool) {
	return nil, false
}

func collect(first Condition, more []Condition, same childrenOf) []Condition {
	out := make([]Condition, 0, len(more)+1)
	out = flatten(out, first, same)
	for _, c := range more {
		out = flatten(out, c, same)
	}
	return out
}

// flatten appends c to dst. A group is unwrapped one level; c itself, or each
// child of an unwrapped group, is spliced when same recognises it.
func flatten(dst []Condition, c Condition, same childrenOf) []Condition {
	if isNil(c) {
		return dst
	}
	if g, ok := c.(*GroupCondition); ok {
		for _, child := range g.conditions {
			if children, ok := same(child); ok {
				dst = append(dst, children...)
			} else {
				dst = append(dst, child)
			}
		}
		return dst
	}
	if children, ok := same(c); ok {
		return append(dst, children...)
	}
	return append(dst, c)
}

// isNil reports whether c is nil or a nil pointer of a condition type.
func isNil(c Condition) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// emptyGroup returns the first group in the tree of c that has no children.
// MinShould may be empty and is only descended into.
func emptyGroup(c Condition) Condition {
	var children []Condition
	switch g := c.(type) {
	case *MustCondition:
		children = g.conditions
	case *MustNotCondition:
		children = g.conditions
	case *ShouldCondition:
		children = g.conditions
	case *GroupCondition:
		children = g.conditions
	case *NestedCondition:
		children = g.conditions
	case *MinShouldCondition:
		for _, child := range g.conditions {
			if e := emptyGroup(child); e != nil {
				return e
			}
		}
		return nil
	default:
		return nil
	}
	if len(children) == 0 {
		return c
	}
	for _, child := range children {
		if e := emptyGroup(child); e != nil {
			return e
		}
	}
	return nil
}
