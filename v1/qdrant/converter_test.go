package qdrant

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	qdrant "github.com/qdrant/go-client/qdrant"
	"google.golang.org/protobuf/proto"

	"github.com/aliexpressru/qdrant-client-sub003/v1/filter"
)

func mustFilter(t *testing.T, c filter.Condition, more ...filter.Condition) *filter.Filter {
	t.Helper()
	f, err := filter.New(c, more...)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	return f
}

func TestConvertFilter_Empty(t *testing.T) {
	for name, f := range map[string]*filter.Filter{"nil": nil, "empty": filter.Empty()} {
		t.Run(name, func(t *testing.T) {
			result, err := ConvertFilter(f)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != nil {
				t.Errorf("expected nil, got %v", result)
			}
		})
	}
}

func TestConvertFilter_MustWithKeywordMatches(t *testing.T) {
	// color = "red" AND size = "10"
	f := mustFilter(t, filter.And(filter.MatchKeyword("color", "red"), filter.MatchKeyword("size", "10")))

	result, err := ConvertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("color", "red"),
			qdrant.NewMatch("size", "10"),
		},
	}
	if !proto.Equal(expected, result) {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestConvertFilter_GroupSplicesIntoTopLevel(t *testing.T) {
	f := mustFilter(t, filter.Combine(
		filter.Must(filter.MatchBool("active", true)),
		filter.Or(filter.MatchInt("year", 2023), filter.MatchInt("year", 2024)),
	), filter.MustNot(filter.IsNull("deleted_at")))

	result, err := ConvertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.GetMust()) != 1 {
		t.Errorf("expected 1 Must condition, got %d", len(result.GetMust()))
	}
	if len(result.GetShould()) != 2 {
		t.Errorf("expected 2 Should conditions, got %d", len(result.GetShould()))
	}
	if len(result.GetMustNot()) != 1 {
		t.Errorf("expected 1 MustNot condition, got %d", len(result.GetMustNot()))
	}
	if got := result.GetMustNot()[0].GetIsNull().GetKey(); got != "deleted_at" {
		t.Errorf("expected is_null key deleted_at, got %q", got)
	}
	if got := result.GetShould()[1].GetField().GetMatch().GetInteger(); got != 2024 {
		t.Errorf("expected integer match 2024, got %d", got)
	}
}

func TestConvertFilter_LaterSameKindReplacesEarlier(t *testing.T) {
	f := mustFilter(t,
		filter.Must(filter.MatchKeyword("a", "1")),
		filter.Must(filter.MatchKeyword("b", "2")),
	)

	result, err := ConvertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.GetMust()) != 1 {
		t.Fatalf("expected 1 Must condition, got %d", len(result.GetMust()))
	}
	if got := result.GetMust()[0].GetField().GetKey(); got != "b" {
		t.Errorf("expected the later must group to win, got key %q", got)
	}
}

func TestConvertFilter_NestedGroupsBecomeFilterConditions(t *testing.T) {
	// a AND (b OR c)
	f := mustFilter(t, filter.And(
		filter.MatchKeyword("a", "1"),
		filter.Or(filter.MatchKeyword("b", "2"), filter.MatchKeyword("c", "3")),
	))

	result, err := ConvertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.GetMust()) != 2 {
		t.Fatalf("expected 2 Must conditions, got %d", len(result.GetMust()))
	}
	inner := result.GetMust()[1].GetFilter()
	if inner == nil {
		t.Fatal("expected a filter condition")
	}
	if len(inner.GetShould()) != 2 {
		t.Errorf("expected 2 Should conditions, got %d", len(inner.GetShould()))
	}
}

func TestConvertFilter_NotOfMust(t *testing.T) {
	f := mustFilter(t, filter.Not(filter.Must(filter.MatchKeyword("a", "1"), filter.MatchKeyword("b", "2"))))

	result, err := ConvertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.GetMustNot()) != 2 {
		t.Errorf("expected 2 MustNot conditions, got %d", len(result.GetMustNot()))
	}
	if len(result.GetMust()) != 0 {
		t.Errorf("expected 0 Must conditions, got %d", len(result.GetMust()))
	}
}

func TestConvertFilter_MinShould(t *testing.T) {
	ms, err := filter.MinShould(2,
		filter.MatchKeyword("a", "1"),
		filter.MatchKeyword("b", "2"),
		filter.MatchKeyword("c", "3"),
	)
	if err != nil {
		t.Fatalf("MinShould: %v", err)
	}
	f := mustFilter(t, filter.Must(ms))

	result, err := ConvertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	minShould := result.GetMust()[0].GetFilter().GetMinShould()
	if minShould == nil {
		t.Fatal("expected min_should")
	}
	if minShould.GetMinCount() != 2 {
		t.Errorf("expected min count 2, got %d", minShould.GetMinCount())
	}
	if len(minShould.GetConditions()) != 3 {
		t.Errorf("expected 3 conditions, got %d", len(minShould.GetConditions()))
	}
}

func TestConvertFilter_Nested(t *testing.T) {
	nested, err := filter.Nested("diet", filter.Must(
		filter.MatchKeyword("food", "meat"),
		filter.MatchBool("likes", true),
	))
	if err != nil {
		t.Fatalf("Nested: %v", err)
	}
	f := mustFilter(t, filter.Must(nested))

	result, err := ConvertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := result.GetMust()[0].GetNested()
	if n == nil {
		t.Fatal("expected nested condition")
	}
	if n.GetKey() != "diet" {
		t.Errorf("expected key diet, got %q", n.GetKey())
	}
	if len(n.GetFilter().GetMust()) != 2 {
		t.Errorf("expected 2 nested Must conditions, got %d", len(n.GetFilter().GetMust()))
	}
}

func TestConvertFilter_Substitutes(t *testing.T) {
	o, err := filter.NewOptimizer(nil, nil, nil)
	if err != nil {
		t.Fatalf("NewOptimizer: %v", err)
	}
	f := mustFilter(t, filter.Must(filter.MatchAnyKeywords("color", "red")))
	o.Optimize(f)

	result, err := ConvertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !proto.Equal(qdrant.NewMatch("color", "red"), result.GetMust()[0]) {
		t.Errorf("expected the substitute match, got %v", result.GetMust()[0])
	}
}

func TestConvertCondition_Leaves(t *testing.T) {
	from := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	lt, gte := 99.5, 10.0
	two := uint64(2)
	id := uuid.MustParse("936da01f-9abd-4d9d-80c7-02af85c822a8")

	tests := []struct {
		name     string
		cond     filter.Condition
		expected *qdrant.Condition
	}{
		{
			name:     "match int",
			cond:     filter.MatchInt("count", 3),
			expected: qdrant.NewMatchInt("count", 3),
		},
		{
			name:     "match bool",
			cond:     filter.MatchBool("active", false),
			expected: qdrant.NewMatchBool("active", false),
		},
		{
			name:     "match any keywords",
			cond:     filter.MatchAnyKeywords("color", "red", "blue"),
			expected: qdrant.NewMatchKeywords("color", "red", "blue"),
		},
		{
			name:     "match any ints",
			cond:     filter.MatchAnyInts("size", 1, 2),
			expected: qdrant.NewMatchInts("size", 1, 2),
		},
		{
			name:     "match except keywords",
			cond:     filter.MatchExceptKeywords("color", "green"),
			expected: qdrant.NewMatchExceptKeywords("color", "green"),
		},
		{
			name:     "match except ints",
			cond:     filter.MatchExceptInts("size", 7),
			expected: qdrant.NewMatchExceptInts("size", 7),
		},
		{
			name: "match text",
			cond: filter.MatchText("description", "cheap"),
			expected: fieldCondition(&qdrant.FieldCondition{
				Key:   "description",
				Match: &qdrant.Match{MatchValue: &qdrant.Match_Text{Text: "cheap"}},
			}),
		},
		{
			name:     "range",
			cond:     filter.Range("price", filter.RangeBounds{Lt: &lt, Gte: &gte}),
			expected: qdrant.NewRange("price", &qdrant.Range{Lt: &lt, Gte: &gte}),
		},
		{
			name: "datetime range",
			cond: filter.DatetimeRange("created_at", filter.DatetimeBounds{Gt: &from}),
			expected: qdrant.NewDatetimeRange("created_at", &qdrant.DatetimeRange{
				Gt: toTimestamp(&from),
			}),
		},
		{
			name: "values count",
			cond: filter.ValuesCount("tags", filter.CountBounds{Gt: &two}),
			expected: fieldCondition(&qdrant.FieldCondition{
				Key:         "tags",
				ValuesCount: &qdrant.ValuesCount{Gt: &two},
			}),
		},
		{
			name: "geo radius",
			cond: filter.GeoRadius("location", filter.GeoPoint{Lon: 13.4, Lat: 52.5}, 1000),
			expected: fieldCondition(&qdrant.FieldCondition{
				Key: "location",
				GeoRadius: &qdrant.GeoRadius{
					Center: &qdrant.GeoPoint{Lon: 13.4, Lat: 52.5},
					Radius: 1000,
				},
			}),
		},
		{
			name: "geo bounding box",
			cond: filter.GeoBoundingBox("location",
				filter.GeoPoint{Lon: 13.3, Lat: 52.6}, filter.GeoPoint{Lon: 13.5, Lat: 52.4}),
			expected: fieldCondition(&qdrant.FieldCondition{
				Key: "location",
				GeoBoundingBox: &qdrant.GeoBoundingBox{
					TopLeft:     &qdrant.GeoPoint{Lon: 13.3, Lat: 52.6},
					BottomRight: &qdrant.GeoPoint{Lon: 13.5, Lat: 52.4},
				},
			}),
		},
		{
			name:     "is empty",
			cond:     filter.IsEmpty("tags"),
			expected: qdrant.NewIsEmpty("tags"),
		},
		{
			name:     "is null",
			cond:     filter.IsNull("deleted_at"),
			expected: qdrant.NewIsNull("deleted_at"),
		},
		{
			name: "has id",
			cond: filter.HasID(filter.NumID(1), filter.UUIDID(id)),
			expected: &qdrant.Condition{
				ConditionOneOf: &qdrant.Condition_HasId{HasId: &qdrant.HasIdCondition{
					HasId: []*qdrant.PointId{qdrant.NewIDNum(1), qdrant.NewID(id.String())},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ConvertCondition(tt.cond)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !proto.Equal(tt.expected, result) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestConvertCondition_SingleChildGroup(t *testing.T) {
	result, err := ConvertCondition(filter.Group(filter.MatchKeyword("a", "1")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !proto.Equal(qdrant.NewMatch("a", "1"), result) {
		t.Errorf("expected the single child, got %v", result)
	}
}

func TestConvertFilter_Errors(t *testing.T) {
	custom := filter.Custom("area", filter.PayloadGeo, filter.LeafBodyFunc(func(*filter.Writer) error { return nil }))
	leafInGroup := filter.Combine(filter.MatchKeyword("a", "1"), filter.Must(filter.MatchKeyword("b", "2")))

	tests := []struct {
		name string
		f    *filter.Filter
	}{
		{name: "custom leaf", f: mustFilter(t, filter.Must(custom))},
		{name: "leaf spliced into filter", f: mustFilter(t, leafInGroup)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ConvertFilter(tt.f)
			if !errors.Is(err, ErrUnsupportedCondition) {
				t.Errorf("expected ErrUnsupportedCondition, got %v", err)
			}
			if result != nil {
				t.Errorf("expected nil, got %v", result)
			}
		})
	}
}

func TestConvertCondition_Nil(t *testing.T) {
	_, err := ConvertCondition(nil)
	if !errors.Is(err, filter.ErrNullArgument) {
		t.Errorf("expected ErrNullArgument, got %v", err)
	}
}

func TestConvertPointID(t *testing.T) {
	if got := ConvertPointID(filter.NumID(42)).GetNum(); got != 42 {
		t.Errorf("expected num 42, got %d", got)
	}
	id := uuid.New()
	if got := ConvertPointID(filter.UUIDID(id)).GetUuid(); got != id.String() {
		t.Errorf("expected uuid %s, got %s", id, got)
	}
}
