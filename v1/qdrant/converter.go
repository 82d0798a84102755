package qdrant

import (
	"errors"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/aliexpressru/qdrant-client-sub003/v1/filter"
)

// ErrUnsupportedCondition is returned for conditions that have no gRPC
// representation in the position they appear in.
var ErrUnsupportedCondition = errors.New("qdrant: unsupported condition")

// ── Filter Conversion ────────────────────────────────────────────────────────

// ConvertFilter converts f into the gRPC filter of the Qdrant API.
// An empty filter converts to nil.
//
// Top-level conditions are merged into one filter. A later top-level
// condition of the same kind replaces an earlier one, the same way the
// duplicate properties of the JSON form are resolved by the server.
//
// Example:
//
//	f, _ := filter.New(filter.And(
//	    filter.MatchKeyword("color", "red"),
//	    filter.MatchInt("size", 10),
//	))
//	pf, err := ConvertFilter(f)
//	// pf.Must holds two field conditions
func ConvertFilter(f *filter.Filter) (*qdrant.Filter, error) {
	if f.IsEmpty() {
		return nil, nil
	}
	out := &qdrant.Filter{}
	for _, c := range f.Conditions() {
		if err := mergeInto(out, c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ConvertCondition converts a single condition into a gRPC condition.
// Group kinds become filter conditions, leaves become field, is_empty,
// is_null or has_id conditions. A substitute attached by the optimizer is
// converted in place of the original.
func ConvertCondition(c filter.Condition) (*qdrant.Condition, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil condition", filter.ErrNullArgument)
	}
	if sub := c.Substitute(); sub != nil {
		return ConvertCondition(sub)
	}

	switch cond := c.(type) {
	case *filter.MustCondition, *filter.MustNotCondition, *filter.ShouldCondition, *filter.MinShouldCondition:
		return filterCondition(cond)
	case *filter.GroupCondition:
		children := cond.Conditions()
		if len(children) == 1 {
			return ConvertCondition(children[0])
		}
		return filterCondition(cond)
	case *filter.NestedCondition:
		inner := &qdrant.Filter{}
		for _, child := range cond.Conditions() {
			if err := mergeInto(inner, child); err != nil {
				return nil, fmt.Errorf("nested %q: %w", cond.FieldName(), err)
			}
		}
		return &qdrant.Condition{
			ConditionOneOf: &qdrant.Condition_Nested{
				Nested: &qdrant.NestedCondition{Key: cond.FieldName(), Filter: inner},
			},
		}, nil
	case filter.Leaf:
		return convertLeaf(cond)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedCondition, c)
	}
}

// mergeInto writes c as properties of dst, the way the serializer writes a
// condition into an open filter object.
func mergeInto(dst *qdrant.Filter, c filter.Condition) error {
	if c == nil {
		return nil
	}
	if sub := c.Substitute(); sub != nil {
		return mergeInto(dst, sub)
	}

	switch cond := c.(type) {
	case *filter.MustCondition:
		conds, err := convertConditions(cond.Conditions())
		if err != nil {
			return err
		}
		dst.Must = conds
	case *filter.MustNotCondition:
		conds, err := convertConditions(cond.Conditions())
		if err != nil {
			return err
		}
		dst.MustNot = conds
	case *filter.ShouldCondition:
		conds, err := convertConditions(cond.Conditions())
		if err != nil {
			return err
		}
		dst.Should = conds
	case *filter.MinShouldCondition:
		conds, err := convertConditions(cond.Conditions())
		if err != nil {
			return err
		}
		dst.MinShould = &qdrant.MinShould{Conditions: conds, MinCount: uint64(cond.MinCount())}
	case *filter.GroupCondition:
		for _, child := range cond.Conditions() {
			if err := mergeInto(dst, child); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %s condition %T cannot be a property of a filter", ErrUnsupportedCondition, c.Kind(), c)
	}
	return nil
}

func filterCondition(c filter.Condition) (*qdrant.Condition, error) {
	inner := &qdrant.Filter{}
	if err := mergeInto(inner, c); err != nil {
		return nil, err
	}
	return &qdrant.Condition{ConditionOneOf: &qdrant.Condition_Filter{Filter: inner}}, nil
}

func convertConditions(conds []filter.Condition) ([]*qdrant.Condition, error) {
	out := make([]*qdrant.Condition, 0, len(conds))
	for _, c := range conds {
		converted, err := ConvertCondition(c)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// ── Leaf Conversion ──────────────────────────────────────────────────────────

func convertLeaf(l filter.Leaf) (*qdrant.Condition, error) {
	key := l.FieldName()
	switch c := l.(type) {
	case *filter.MatchCondition:
		switch v := c.Value().(type) {
		case string:
			return qdrant.NewMatch(key, v), nil
		case int64:
			return qdrant.NewMatchInt(key, v), nil
		case bool:
			return qdrant.NewMatchBool(key, v), nil
		}
		return nil, fmt.Errorf("%w: match value %T on %q", ErrUnsupportedCondition, c.Value(), key)
	case *filter.MatchAnyCondition:
		strs, ints, err := splitValues(c.Values())
		if err != nil {
			return nil, fmt.Errorf("match any on %q: %w", key, err)
		}
		if ints != nil {
			return qdrant.NewMatchInts(key, ints...), nil
		}
		return qdrant.NewMatchKeywords(key, strs...), nil
	case *filter.MatchExceptCondition:
		strs, ints, err := splitValues(c.Values())
		if err != nil {
			return nil, fmt.Errorf("match except on %q: %w", key, err)
		}
		if ints != nil {
			return qdrant.NewMatchExceptInts(key, ints...), nil
		}
		return qdrant.NewMatchExceptKeywords(key, strs...), nil
	case *filter.MatchTextCondition:
		return fieldCondition(&qdrant.FieldCondition{
			Key:   key,
			Match: &qdrant.Match{MatchValue: &qdrant.Match_Text{Text: c.Text()}},
		}), nil
	case *filter.RangeCondition:
		b := c.Bounds()
		return qdrant.NewRange(key, &qdrant.Range{Lt: b.Lt, Gt: b.Gt, Gte: b.Gte, Lte: b.Lte}), nil
	case *filter.DatetimeRangeCondition:
		b := c.Bounds()
		return qdrant.NewDatetimeRange(key, &qdrant.DatetimeRange{
			Lt:  toTimestamp(b.Lt),
			Gt:  toTimestamp(b.Gt),
			Gte: toTimestamp(b.Gte),
			Lte: toTimestamp(b.Lte),
		}), nil
	case *filter.ValuesCountCondition:
		b := c.Bounds()
		return fieldCondition(&qdrant.FieldCondition{
			Key:         key,
			ValuesCount: &qdrant.ValuesCount{Lt: b.Lt, Gt: b.Gt, Gte: b.Gte, Lte: b.Lte},
		}), nil
	case *filter.GeoRadiusCondition:
		return fieldCondition(&qdrant.FieldCondition{
			Key: key,
			GeoRadius: &qdrant.GeoRadius{
				Center: toGeoPoint(c.Center()),
				Radius: float32(c.Radius()),
			},
		}), nil
	case *filter.GeoBoundingBoxCondition:
		topLeft, bottomRight := c.Corners()
		return fieldCondition(&qdrant.FieldCondition{
			Key: key,
			GeoBoundingBox: &qdrant.GeoBoundingBox{
				TopLeft:     toGeoPoint(topLeft),
				BottomRight: toGeoPoint(bottomRight),
			},
		}), nil
	case *filter.IsEmptyCondition:
		return qdrant.NewIsEmpty(c.Key()), nil
	case *filter.IsNullCondition:
		return qdrant.NewIsNull(c.Key()), nil
	case *filter.HasIDCondition:
		ids := c.IDs()
		pointIDs := make([]*qdrant.PointId, len(ids))
		for i, id := range ids {
			pointIDs[i] = ConvertPointID(id)
		}
		return &qdrant.Condition{
			ConditionOneOf: &qdrant.Condition_HasId{HasId: &qdrant.HasIdCondition{HasId: pointIDs}},
		}, nil
	default:
		return nil, fmt.Errorf("%w: leaf %T on %q", ErrUnsupportedCondition, l, key)
	}
}

// ConvertPointID converts a point id to its gRPC form.
func ConvertPointID(id filter.PointID) *qdrant.PointId {
	if id.IsUUID() {
		return qdrant.NewID(id.UUID().String())
	}
	return qdrant.NewIDNum(id.Num())
}

func fieldCondition(fc *qdrant.FieldCondition) *qdrant.Condition {
	return &qdrant.Condition{ConditionOneOf: &qdrant.Condition_Field{Field: fc}}
}

// splitValues returns the values as keywords or as integers. An empty list
// converts to an empty keyword list.
func splitValues(values []any) ([]string, []int64, error) {
	if len(values) == 0 {
		return []string{}, nil, nil
	}
	switch values[0].(type) {
	case string:
		strs := make([]string, len(values))
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				return nil, nil, fmt.Errorf("%w: mixed value types %T and string", filter.ErrInvalidConfiguration, v)
			}
			strs[i] = s
		}
		return strs, nil, nil
	case int64:
		ints := make([]int64, len(values))
		for i, v := range values {
			n, ok := v.(int64)
			if !ok {
				return nil, nil, fmt.Errorf("%w: mixed value types %T and int64", filter.ErrInvalidConfiguration, v)
			}
			ints[i] = n
		}
		return nil, ints, nil
	default:
		return nil, nil, fmt.Errorf("%w: value type %T", ErrUnsupportedCondition, values[0])
	}
}

func toGeoPoint(p filter.GeoPoint) *qdrant.GeoPoint {
	return &qdrant.GeoPoint{Lon: p.Lon, Lat: p.Lat}
}

func toTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
