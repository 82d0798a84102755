package filter

import (
	"slices"
	"time"
)

// ── Match Conditions ─────────────────────────────────────────────────────────

// MatchCondition matches a payload value exactly (WHERE field = value).
// The value is a string, an int64 or a bool.
type MatchCondition struct {
	leaf
	value any
}

// MatchKeyword matches a keyword payload value.
func MatchKeyword(field, value string) *MatchCondition {
	return &MatchCondition{leaf: leaf{node{field: field}}, value: value}
}

// MatchInt matches an integer payload value.
func MatchInt(field string, value int64) *MatchCondition {
	return &MatchCondition{leaf: leaf{node{field: field}}, value: value}
}

// MatchBool matches a boolean payload value.
func MatchBool(field string, value bool) *MatchCondition {
	return &MatchCondition{leaf: leaf{node{field: field}}, value: value}
}

// Value returns the matched value.
func (c *MatchCondition) Value() any { return c.value }

func (c *MatchCondition) Accept(v Visitor) { v.VisitMatch(c) }

func (c *MatchCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	switch c.value.(type) {
	case string:
		return PayloadKeyword, true
	case int64:
		return PayloadInteger, true
	case bool:
		return PayloadBool, true
	}
	return "", false
}

func (c *MatchCondition) writeBody(w *Writer) error {
	w.Name("match")
	w.StartObject()
	w.Name("value")
	writeScalar(w, c.value)
	w.EndObject()
	return w.Err()
}

// MatchAnyCondition matches if the payload value is one of the given values
// (IN operator). Applicable to keyword and integer payloads.
type MatchAnyCondition struct {
	leaf
	values []any
}

// MatchAnyKeywords matches if the keyword payload value is one of values.
func MatchAnyKeywords(field string, values ...string) *MatchAnyCondition {
	return &MatchAnyCondition{leaf: leaf{node{field: field}}, values: boxed(values)}
}

// MatchAnyInts matches if the integer payload value is one of values.
func MatchAnyInts(field string, values ...int64) *MatchAnyCondition {
	return &MatchAnyCondition{leaf: leaf{node{field: field}}, values: boxed(values)}
}

// Values returns a copy of the accepted values.
func (c *MatchAnyCondition) Values() []any { return slices.Clone(c.values) }

func (c *MatchAnyCondition) Accept(v Visitor) { v.VisitMatchAny(c) }

func (c *MatchAnyCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return setSchemaType(c.values)
}

func (c *MatchAnyCondition) writeBody(w *Writer) error {
	writeMatchSet(w, "any", c.values)
	return w.Err()
}

// MatchExceptCondition matches if the payload value is none of the given
// values (NOT IN operator).
type MatchExceptCondition struct {
	leaf
	values []any
}

// MatchExceptKeywords matches if the keyword payload value is none of values.
func MatchExceptKeywords(field string, values ...string) *MatchExceptCondition {
	return &MatchExceptCondition{leaf: leaf{node{field: field}}, values: boxed(values)}
}

// MatchExceptInts matches if the integer payload value is none of values.
func MatchExceptInts(field string, values ...int64) *MatchExceptCondition {
	return &MatchExceptCondition{leaf: leaf{node{field: field}}, values: boxed(values)}
}

// Values returns a copy of the excluded values.
func (c *MatchExceptCondition) Values() []any { return slices.Clone(c.values) }

func (c *MatchExceptCondition) Accept(v Visitor) { v.VisitMatchExcept(c) }

func (c *MatchExceptCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return setSchemaType(c.values)
}

func (c *MatchExceptCondition) writeBody(w *Writer) error {
	writeMatchSet(w, "except", c.values)
	return w.Err()
}

// MatchTextCondition matches a full-text query against a text payload.
type MatchTextCondition struct {
	leaf
	text string
}

// MatchText creates a full-text match. Without a text index the server falls
// back to a substring match.
func MatchText(field, text string) *MatchTextCondition {
	return &MatchTextCondition{leaf: leaf{node{field: field}}, text: text}
}

// Text returns the query text.
func (c *MatchTextCondition) Text() string { return c.text }

func (c *MatchTextCondition) Accept(v Visitor) { v.VisitMatchText(c) }

func (c *MatchTextCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return PayloadText, true
}

func (c *MatchTextCondition) writeBody(w *Writer) error {
	w.Name("match")
	w.StartObject()
	w.Name("text")
	w.String(c.text)
	w.EndObject()
	return w.Err()
}

// ── Range Conditions ─────────────────────────────────────────────────────────

// RangeBounds defines bounds for numeric filtering. Nil bounds are omitted.
type RangeBounds struct {
	Lt  *float64 // LessThan (exclusive)
	Gt  *float64 // GreaterThan (exclusive)
	Gte *float64 // GreaterThanOrEqualTo (inclusive)
	Lte *float64 // LessThanOrEqualTo (inclusive)
}

// RangeCondition filters by numeric range.
type RangeCondition struct {
	leaf
	bounds RangeBounds
}

// Range creates a numeric range condition.
func Range(field string, bounds RangeBounds) *RangeCondition {
	return &RangeCondition{leaf: leaf{node{field: field}}, bounds: bounds}
}

// Bounds returns the range bounds.
func (c *RangeCondition) Bounds() RangeBounds { return c.bounds }

func (c *RangeCondition) Accept(v Visitor) { v.VisitRange(c) }

func (c *RangeCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return PayloadFloat, true
}

func (c *RangeCondition) writeBody(w *Writer) error {
	w.Name("range")
	w.StartObject()
	writeFloatBound(w, "lt", c.bounds.Lt)
	writeFloatBound(w, "gt", c.bounds.Gt)
	writeFloatBound(w, "gte", c.bounds.Gte)
	writeFloatBound(w, "lte", c.bounds.Lte)
	w.EndObject()
	return w.Err()
}

// DatetimeBounds defines bounds for datetime filtering. Nil bounds are
// omitted.
type DatetimeBounds struct {
	Lt  *time.Time // Before (exclusive)
	Gt  *time.Time // After (exclusive)
	Gte *time.Time // AtOrAfter (inclusive)
	Lte *time.Time // AtOrBefore (inclusive)
}

// DatetimeRangeCondition filters by datetime range. Bounds are sent as
// RFC 3339 strings.
type DatetimeRangeCondition struct {
	leaf
	bounds DatetimeBounds
}

// DatetimeRange creates a datetime range condition.
func DatetimeRange(field string, bounds DatetimeBounds) *DatetimeRangeCondition {
	return &DatetimeRangeCondition{leaf: leaf{node{field: field}}, bounds: bounds}
}

// Bounds returns the range bounds.
func (c *DatetimeRangeCondition) Bounds() DatetimeBounds { return c.bounds }

func (c *DatetimeRangeCondition) Accept(v Visitor) { v.VisitDatetimeRange(c) }

func (c *DatetimeRangeCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return PayloadDatetime, true
}

func (c *DatetimeRangeCondition) writeBody(w *Writer) error {
	w.Name("range")
	w.StartObject()
	writeTimeBound(w, "lt", c.bounds.Lt)
	writeTimeBound(w, "gt", c.bounds.Gt)
	writeTimeBound(w, "gte", c.bounds.Gte)
	writeTimeBound(w, "lte", c.bounds.Lte)
	w.EndObject()
	return w.Err()
}

// CountBounds defines bounds on the number of values stored in a field.
type CountBounds struct {
	Lt  *uint64
	Gt  *uint64
	Gte *uint64
	Lte *uint64
}

// ValuesCountCondition filters by the number of values of an array field.
type ValuesCountCondition struct {
	leaf
	bounds CountBounds
}

// ValuesCount creates a values count condition.
func ValuesCount(field string, bounds CountBounds) *ValuesCountCondition {
	return &ValuesCountCondition{leaf: leaf{node{field: field}}, bounds: bounds}
}

// Bounds returns the count bounds.
func (c *ValuesCountCondition) Bounds() CountBounds { return c.bounds }

func (c *ValuesCountCondition) Accept(v Visitor) { v.VisitValuesCount(c) }

func (c *ValuesCountCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return "", false
}

func (c *ValuesCountCondition) writeBody(w *Writer) error {
	w.Name("values_count")
	w.StartObject()
	writeCountBound(w, "lt", c.bounds.Lt)
	writeCountBound(w, "gt", c.bounds.Gt)
	writeCountBound(w, "gte", c.bounds.Gte)
	writeCountBound(w, "lte", c.bounds.Lte)
	w.EndObject()
	return w.Err()
}

// ── Geo Conditions ───────────────────────────────────────────────────────────

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lon float64
	Lat float64
}

// GeoRadiusCondition matches geo points within Radius meters of Center.
type GeoRadiusCondition struct {
	leaf
	center GeoPoint
	radius float64
}

// GeoRadius creates a geo radius condition. The radius is in meters.
func GeoRadius(field string, center GeoPoint, radius float64) *GeoRadiusCondition {
	return &GeoRadiusCondition{leaf: leaf{node{field: field}}, center: center, radius: radius}
}

// Center returns the circle center.
func (c *GeoRadiusCondition) Center() GeoPoint { return c.center }

// Radius returns the circle radius in meters.
func (c *GeoRadiusCondition) Radius() float64 { return c.radius }

func (c *GeoRadiusCondition) Accept(v Visitor) { v.VisitGeoRadius(c) }

func (c *GeoRadiusCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return PayloadGeo, true
}

func (c *GeoRadiusCondition) writeBody(w *Writer) error {
	w.Name("geo_radius")
	w.StartObject()
	w.Name("center")
	writeGeoPoint(w, c.center)
	w.Name("radius")
	w.Float(c.radius)
	w.EndObject()
	return w.Err()
}

// GeoBoundingBoxCondition matches geo points inside a rectangle.
type GeoBoundingBoxCondition struct {
	leaf
	topLeft     GeoPoint
	bottomRight GeoPoint
}

// GeoBoundingBox creates a bounding box condition.
func GeoBoundingBox(field string, topLeft, bottomRight GeoPoint) *GeoBoundingBoxCondition {
	return &GeoBoundingBoxCondition{leaf: leaf{node{field: field}}, topLeft: topLeft, bottomRight: bottomRight}
}

// Corners returns the top left and bottom right corners.
func (c *GeoBoundingBoxCondition) Corners() (topLeft, bottomRight GeoPoint) {
	return c.topLeft, c.bottomRight
}

func (c *GeoBoundingBoxCondition) Accept(v Visitor) { v.VisitGeoBoundingBox(c) }

func (c *GeoBoundingBoxCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return PayloadGeo, true
}

func (c *GeoBoundingBoxCondition) writeBody(w *Writer) error {
	w.Name("geo_bounding_box")
	w.StartObject()
	w.Name("bottom_right")
	writeGeoPoint(w, c.bottomRight)
	w.Name("top_left")
	writeGeoPoint(w, c.topLeft)
	w.EndObject()
	return w.Err()
}

// ── Null/Empty Conditions ────────────────────────────────────────────────────

// IsEmptyCondition matches if a field is missing, null or an empty array.
// The field goes inside the condition body, so no shared key is written.
type IsEmptyCondition struct {
	leaf
	key string
}

// IsEmpty creates an IS EMPTY condition.
func IsEmpty(field string) *IsEmptyCondition {
	return &IsEmptyCondition{key: field}
}

// Key returns the tested field.
func (c *IsEmptyCondition) Key() string { return c.key }

func (c *IsEmptyCondition) Accept(v Visitor) { v.VisitIsEmpty(c) }

func (c *IsEmptyCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return "", false
}

func (c *IsEmptyCondition) writeBody(w *Writer) error {
	writeKeyObject(w, "is_empty", c.key)
	return w.Err()
}

// IsNullCondition matches if a field is explicitly null.
type IsNullCondition struct {
	leaf
	key string
}

// IsNull creates an IS NULL condition.
func IsNull(field string) *IsNullCondition {
	return &IsNullCondition{key: field}
}

// Key returns the tested field.
func (c *IsNullCondition) Key() string { return c.key }

func (c *IsNullCondition) Accept(v Visitor) { v.VisitIsNull(c) }

func (c *IsNullCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return "", false
}

func (c *IsNullCondition) writeBody(w *Writer) error {
	writeKeyObject(w, "is_null", c.key)
	return w.Err()
}

// ── Custom Conditions ────────────────────────────────────────────────────────

// LeafBody writes the body of a custom leaf into the open condition object.
type LeafBody interface {
	WriteBody(w *Writer) error
}

// LeafBodyFunc adapts a function to LeafBody.
type LeafBodyFunc func(w *Writer) error

func (f LeafBodyFunc) WriteBody(w *Writer) error { return f(w) }

// CustomCondition is a leaf whose body is written by caller code.
type CustomCondition struct {
	leaf
	hint PayloadSchemaType
	body LeafBody
}

// Custom creates a leaf for predicates this package does not model. A "key"
// property for field is written before the body unless field is NoField.
// An empty hint means no indexed field type.
func Custom(field string, hint PayloadSchemaType, body LeafBody) *CustomCondition {
	return &CustomCondition{leaf: leaf{node{field: field}}, hint: hint, body: body}
}

func (c *CustomCondition) Accept(v Visitor) { v.VisitCustom(c) }

func (c *CustomCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return c.hint, c.hint != ""
}

func (c *CustomCondition) writeBody(w *Writer) error {
	if c.body == nil {
		return w.Err()
	}
	if err := c.body.WriteBody(w); err != nil {
		w.Fail(err)
	}
	return w.Err()
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func boxed[T string | int64](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func setSchemaType(values []any) (PayloadSchemaType, bool) {
	if len(values) == 0 {
		return "", false
	}
	switch values[0].(type) {
	case string:
		return PayloadKeyword, true
	case int64:
		return PayloadInteger, true
	}
	return "", false
}

func writeScalar(w *Writer, v any) {
	switch x := v.(type) {
	case string:
		w.String(x)
	case int64:
		w.Int(x)
	case bool:
		w.Bool(x)
	default:
		w.Value(x)
	}
}

func writeMatchSet(w *Writer, name string, values []any) {
	w.Name("match")
	w.StartObject()
	w.Name(name)
	w.StartArray()
	for _, v := range values {
		writeScalar(w, v)
	}
	w.EndArray()
	w.EndObject()
}

func writeFloatBound(w *Writer, name string, v *float64) {
	if v == nil {
		return
	}
	w.Name(name)
	w.Float(*v)
}

func writeTimeBound(w *Writer, name string, v *time.Time) {
	if v == nil {
		return
	}
	w.Name(name)
	w.String(v.Format(time.RFC3339Nano))
}

func writeCountBound(w *Writer, name string, v *uint64) {
	if v == nil {
		return
	}
	w.Name(name)
	w.Uint(*v)
}

func writeGeoPoint(w *Writer, p GeoPoint) {
	w.StartObject()
	w.Name("lon")
	w.Float(p.Lon)
	w.Name("lat")
	w.Float(p.Lat)
	w.EndObject()
}

func writeKeyObject(w *Writer, name, key string) {
	w.Name(name)
	w.StartObject()
	w.Name("key")
	w.String(key)
	w.EndObject()
}
