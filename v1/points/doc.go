// Package points holds request bodies of the Qdrant points API that carry a
// filter, and the encoder that renders them.
//
// Example:
//
//	f, _ := filter.New(filter.Must(filter.MatchKeyword("city", "London")))
//
//	body, err := points.Encode(points.CountRequest{Filter: f, Exact: true}, false)
//	// {"filter":{"must":[{"key":"city","match":{"value":"London"}}]},"exact":true}
package points
