// Package qdrant converts filter trees built with package filter into the
// protobuf filters of the Qdrant gRPC API (github.com/qdrant/go-client).
//
// The JSON form written by filter.Filter and the *qdrant.Filter built here
// describe the same predicate, so one filter can be sent over either
// transport.
//
// # Basic Usage
//
//	import (
//	    "github.com/aliexpressru/qdrant-client-sub003/v1/filter"
//	    "github.com/aliexpressru/qdrant-client-sub003/v1/qdrant"
//	)
//
//	f, err := filter.New(filter.And(
//	    filter.MatchKeyword("city", "London"),
//	    filter.Range("price", filter.RangeBounds{Lt: &maxPrice}),
//	))
//	if err != nil {
//	    return err
//	}
//
//	pf, err := qdrant.ConvertFilter(f)
//	if err != nil {
//	    return err
//	}
//
// pf is set as the Filter of a go-client request such as QueryPoints,
// ScrollPoints or CountPoints.
//
// # Mapping
//
//   - Must, MustNot and Should become the matching clause lists; MinShould
//     becomes the min_should clause.
//   - A group condition inside a clause list becomes a filter condition.
//   - Group conditions are spliced into the enclosing filter, and a group
//     holding a single condition converts to that condition.
//   - Nested conditions become nested conditions with an inner filter.
//   - Match, range, datetime range, values count and geo leaves become field
//     conditions; is_empty, is_null and has_id keep their own variants.
//   - Substitutes attached by filter.Optimizer are converted in place of the
//     original leaf.
//
// Custom leaves have no protobuf form and fail with ErrUnsupportedCondition,
// as does a leaf placed where only clauses are allowed (for example a leaf
// spliced into the top level through a group).
//
// When a filter holds several top-level conditions of the same kind, the
// later one replaces the earlier one, matching how the server resolves the
// duplicate properties of the JSON form.
package qdrant
