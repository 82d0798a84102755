package filter

// Visitor has one method per concrete condition type. Condition.Accept calls
// the method matching the receiver, Walk drives the traversal.
type Visitor interface {
	VisitMust(*MustCondition)
	VisitMustNot(*MustNotCondition)
	VisitShould(*ShouldCondition)
	VisitMinShould(*MinShouldCondition)
	VisitNested(*NestedCondition)
	VisitGroup(*GroupCondition)

	VisitMatch(*MatchCondition)
	VisitMatchAny(*MatchAnyCondition)
	VisitMatchExcept(*MatchExceptCondition)
	VisitMatchText(*MatchTextCondition)
	VisitRange(*RangeCondition)
	VisitDatetimeRange(*DatetimeRangeCondition)
	VisitValuesCount(*ValuesCountCondition)
	VisitGeoRadius(*GeoRadiusCondition)
	VisitGeoBoundingBox(*GeoBoundingBoxCondition)
	VisitIsEmpty(*IsEmptyCondition)
	VisitIsNull(*IsNullCondition)
	VisitHasID(*HasIDCondition)
	VisitCustom(*CustomCondition)
}

// Walk visits c and then, depth first, every child of a group condition.
// Substitutes are not visited.
func Walk(v Visitor, c Condition) {
	if c == nil {
		return
	}
	c.Accept(v)
	for _, child := range children(c) {
		Walk(v, child)
	}
}

func children(c Condition) []Condition {
	switch t := c.(type) {
	case *MustCondition:
		return t.conditions
	case *MustNotCondition:
		return t.conditions
	case *ShouldCondition:
		return t.conditions
	case *MinShouldCondition:
		return t.conditions
	case *NestedCondition:
		return t.conditions
	case *GroupCondition:
		return t.conditions
	}
	return nil
}

// NopVisitor implements Visitor with no-op methods. Embed it to handle only
// the condition types of interest.
type NopVisitor struct{}

func (NopVisitor) VisitMust(*MustCondition)                     {}
func (NopVisitor) VisitMustNot(*MustNotCondition)               {}
func (NopVisitor) VisitShould(*ShouldCondition)                 {}
func (NopVisitor) VisitMinShould(*MinShouldCondition)           {}
func (NopVisitor) VisitNested(*NestedCondition)                 {}
func (NopVisitor) VisitGroup(*GroupCondition)                   {}
func (NopVisitor) VisitMatch(*MatchCondition)                   {}
func (NopVisitor) VisitMatchAny(*MatchAnyCondition)             {}
func (NopVisitor) VisitMatchExcept(*MatchExceptCondition)       {}
func (NopVisitor) VisitMatchText(*MatchTextCondition)           {}
func (NopVisitor) VisitRange(*RangeCondition)                   {}
func (NopVisitor) VisitDatetimeRange(*DatetimeRangeCondition)   {}
func (NopVisitor) VisitValuesCount(*ValuesCountCondition)       {}
func (NopVisitor) VisitGeoRadius(*GeoRadiusCondition)           {}
func (NopVisitor) VisitGeoBoundingBox(*GeoBoundingBoxCondition) {}
func (NopVisitor) VisitIsEmpty(*IsEmptyCondition)               {}
func (NopVisitor) VisitIsNull(*IsNullCondition)                 {}
func (NopVisitor) VisitHasID(*HasIDCondition)                   {}
func (NopVisitor) VisitCustom(*CustomCondition)                 {}
