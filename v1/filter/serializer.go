package filter

import "fmt"

// WriteCondition writes the properties of c into the object currently open on
// w. A substitute attached to c is written in its place.
//
// Wire shapes:
//
//	Must       "must":[{child},...]
//	MustNot    "must_not":[{child},...]
//	Should     "should":[{child},...]
//	MinShould  "min_should":{"min_count":n,"conditions":[{child},...]}
//	Nested     "nested":{"key":field,"filter":{child props...}}
//	Group      child props... written into the parent object
//	Leaf       "key":field (unless NoField) followed by the leaf body
func WriteCondition(w *Writer, c Condition) error {
	if c == nil {
		return w.Err()
	}
	if sub := c.Substitute(); sub != nil {
		return WriteCondition(w, sub)
	}
	switch t := c.(type) {
	case *MustCondition:
		return writeArray(w, "must", t.conditions)
	case *MustNotCondition:
		return writeArray(w, "must_not", t.conditions)
	case *ShouldCondition:
		return writeArray(w, "should", t.conditions)
	case *MinShouldCondition:
		w.Name("min_should")
		w.StartObject()
		w.Name("min_count")
		w.Int(int64(t.minCount))
		if err := writeArray(w, "conditions", t.conditions); err != nil {
			return err
		}
		w.EndObject()
		return w.Err()
	case *NestedCondition:
		w.Name("nested")
		w.StartObject()
		if t.field != NoField {
			w.Name("key")
			w.String(t.field)
		}
		w.Name("filter")
		w.StartObject()
		if err := writeInline(w, t.conditions); err != nil {
			return err
		}
		w.EndObject()
		w.EndObject()
		return w.Err()
	case *GroupCondition:
		return writeInline(w, t.conditions)
	case Leaf:
		if field := t.FieldName(); field != NoField {
			w.Name("key")
			w.String(field)
		}
		return t.writeBody(w)
	default:
		w.Fail(fmt.Errorf("filter: unsupported condition type %T", c))
		return w.Err()
	}
}

// writeArray writes name as an array holding one object per condition.
func writeArray(w *Writer, name string, conditions []Condition) error {
	w.Name(name)
	w.StartArray()
	for _, c := range conditions {
		w.StartObject()
		if err := WriteCondition(w, c); err != nil {
			return err
		}
		w.EndObject()
	}
	w.EndArray()
	return w.Err()
}

// writeInline writes every condition into the object already open.
func writeInline(w *Writer, conditions []Condition) error {
	for _, c := range conditions {
		if err := WriteCondition(w, c); err != nil {
			return err
		}
	}
	return w.Err()
}
