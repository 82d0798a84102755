// Package filter provides the payload filter algebra used by search, scroll,
// count and update requests sent to Qdrant.
//
// A filter is a tree of conditions. Leaves test a single payload property
// (match, range, geo, is_empty, has_id, ...), groups combine their children
// with a logical operator:
//
//   - [MustCondition]: all children must match (AND)
//   - [MustNotCondition]: none of the children may match
//   - [ShouldCondition]: at least one child must match (OR)
//   - [MinShouldCondition]: at least MinCount children must match
//   - [NestedCondition]: all children must match inside a nested array of objects
//   - [GroupCondition]: a plain list with no operator of its own, unpacked
//     into its parent when written
//
// # Building Conditions
//
// The combinators flatten same-kind groups, so chained calls produce a single
// flat group:
//
//	cond := filter.And(
//	    filter.And(filter.MatchKeyword("color", "red"), filter.MatchInt("size", 10)),
//	    filter.MatchBool("in_stock", true),
//	)
//	// Must[color, size, in_stock]
//
// [Combine] collects conditions without choosing an operator; the result can
// be used directly at the top level of a filter or passed to [Must], [Should]
// and friends, which unwrap it.
//
// [Not] swaps Must and MustNot. For a group with a single child this is an
// exact negation. For groups with several children it is not a De Morgan
// negation: Not(Must[A, B]) becomes MustNot[A, B], i.e. (NOT A) AND (NOT B).
// This matches what existing callers and the server-side wire contract expect.
//
// # Filters
//
// A [Filter] owns the top-level conditions. Only Must, MustNot, Should and
// Group conditions are accepted there:
//
//	f, err := filter.New(filter.Must(filter.MatchKeyword("city", "London")))
//	if err != nil {
//	    return err
//	}
//	s, _ := f.ToString(false)
//	// {"must":[{"key":"city","match":{"value":"London"}}]}
//
// Top-level conditions are written as sibling properties of one JSON object.
// Two top-level conditions of the same kind therefore produce the same
// property twice and the server keeps the last one.
//
// An empty filter renders as the empty string from [Filter.ToString] and as
// the JSON literal null from [Filter.WriteFilterJSON] and [Filter.MarshalJSON].
//
// # Optimization
//
// An [Optimizer] walks a tree and attaches substitutes to leaves it knows a
// cheaper form for, e.g. a match-any with a single value becomes a plain value
// match. Substitutes are written instead of the node they overlay; the node
// itself and its accessors are left untouched.
//
// # Thread Safety
//
// Conditions are immutable apart from the substitute slot set by the
// optimizer. Optimizing and serializing the same tree from several goroutines
// at once is not supported.
package filter
