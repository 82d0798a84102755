package filter

import "slices"

// Combine collects left and right into one plain group without choosing an
// operator. Group operands are spliced, so repeated calls yield one flat
// group.
func Combine(left, right Condition) *GroupCondition {
	return Group(left, right)
}

// And returns a Must condition over left and right, flattening nested Must
// conditions: And(And(a, b), c) and And(a, And(b, c)) both yield Must[a, b, c].
func And(left, right Condition) *MustCondition {
	return Must(left, right)
}

// Or returns a Should condition over left and right, flattening nested Should
// conditions the same way And does for Must.
func Or(left, right Condition) *ShouldCondition {
	return Should(left, right)
}

// Not negates a condition.
//
// A MustNot becomes a Must over the same children and a Must becomes a
// MustNot over the same children; anything else is wrapped in a MustNot.
// For groups with more than one child the result is not the boolean
// negation: Not(Must[a, b]) is MustNot[a, b], which means (NOT a) AND (NOT b).
// Not(nil) is an empty MustNot, which New and Append reject.
func Not(condition Condition) Condition {
	if isNil(condition) {
		return MustNot(nil)
	}
	switch c := condition.(type) {
	case *MustNotCondition:
		return &MustCondition{conditions: slices.Clone(c.conditions)}
	case *MustCondition:
		return &MustNotCondition{conditions: slices.Clone(c.conditions)}
	default:
		return MustNot(condition)
	}
}
