package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Filter holds the top-level conditions of a request filter.
//
// The zero value and a nil *Filter are empty filters.
type Filter struct {
	conditions []Condition
}

// Empty returns a filter without conditions.
func Empty() *Filter {
	return &Filter{}
}

// New creates a filter from one or more top-level conditions.
// Only Must, MustNot, Should and Group conditions are accepted; anything else
// fails with ErrInvalidFilter.
func New(condition Condition, more ...Condition) (*Filter, error) {
	f := &Filter{conditions: make([]Condition, 0, len(more)+1)}
	if err := f.add(condition); err != nil {
		return nil, err
	}
	for _, c := range more {
		if err := f.add(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// NewFromConditions creates a filter from a slice of top-level conditions.
// It fails with ErrNullArgument when conditions is empty.
func NewFromConditions(conditions []Condition) (*Filter, error) {
	if len(conditions) == 0 {
		return nil, fmt.Errorf("%w: filter requires at least one condition", ErrNullArgument)
	}
	return New(conditions[0], conditions[1:]...)
}

// Append validates c and appends it to f. A nil f behaves like New(c).
// On error f is left unchanged.
func Append(f *Filter, c Condition) (*Filter, error) {
	if f == nil {
		return New(c)
	}
	if err := f.add(c); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Filter) add(c Condition) error {
	if err := validateTopLevel(c); err != nil {
		return err
	}
	f.conditions = append(f.conditions, c)
	return nil
}

// validateTopLevel accepts the kinds that can be written as properties of
// the filter object itself. Nil pointers and groups without children are
// rejected anywhere in the tree.
func validateTopLevel(c Condition) error {
	if isNil(c) {
		return fmt.Errorf("%w: top-level condition is nil", ErrNullArgument)
	}
	switch c.(type) {
	case *MustCondition, *MustNotCondition, *ShouldCondition, *GroupCondition:
	default:
		return fmt.Errorf("%w: only Must, MustNot, Should and Group conditions are allowed at the top level, got %T (%s)",
			ErrInvalidFilter, c, c.Kind())
	}
	if e := emptyGroup(c); e != nil {
		return fmt.Errorf("%w: %s condition has no conditions", ErrNullArgument, e.Kind())
	}
	return nil
}

// Conditions returns a copy of the top-level conditions.
func (f *Filter) Conditions() []Condition {
	if f == nil {
		return nil
	}
	return slices.Clone(f.conditions)
}

// IsEmpty reports whether f has no conditions.
func (f *Filter) IsEmpty() bool {
	return f == nil || len(f.conditions) == 0
}

// WriteFilterJSON writes f as one JSON value: null for an empty filter,
// otherwise an object holding every top-level condition as sibling
// properties. Same-kind top-level conditions produce duplicate properties.
//
// The writer is not flushed.
func (f *Filter) WriteFilterJSON(w *Writer) error {
	if f.IsEmpty() {
		w.Null()
		return w.Err()
	}
	w.StartObject()
	for _, c := range f.conditions {
		if err := WriteCondition(w, c); err != nil {
			return err
		}
	}
	w.EndObject()
	return w.Err()
}

// MarshalJSON implements json.Marshaler on top of WriteFilterJSON.
func (f *Filter) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := f.WriteFilterJSON(w); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToString renders f for display. An empty filter renders as "" rather than
// null. With indent set the output is indented by two spaces and uses "\n"
// line endings.
func (f *Filter) ToString(indent bool) (string, error) {
	if f.IsEmpty() {
		return "", nil
	}
	b, err := f.MarshalJSON()
	if err != nil {
		return "", err
	}
	if !indent {
		return string(b), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return "", fmt.Errorf("filter: indent: %w", err)
	}
	return string(NormalizeLineEndings(out.Bytes())), nil
}

// String renders f compactly, reporting a rendering failure inline.
func (f *Filter) String() string {
	s, err := f.ToString(false)
	if err != nil {
		return fmt.Sprintf("<invalid filter: %v>", err)
	}
	return s
}

// NormalizeLineEndings rewrites "\r\n" and lone "\r" line endings to "\n".
func NormalizeLineEndings(b []byte) []byte {
	if bytes.IndexByte(b, '\r') < 0 {
		return b
	}
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
}
