package points

import (
	"github.com/aliexpressru/qdrant-client-sub003/v1/filter"
)

// SearchRequest is the body of POST /collections/{name}/points/search.
type SearchRequest struct {
	// Vector is the query embedding
	Vector []float32 `json:"vector"`

	// Filter restricts the candidate points. A nil filter is omitted, an
	// empty one is sent as null.
	Filter *filter.Filter `json:"filter,omitempty"`

	// Limit is the maximum number of results to return
	Limit uint64 `json:"limit"`

	// Offset skips the first results
	Offset uint64 `json:"offset,omitempty"`

	// WithPayload requests the stored payload of each hit
	WithPayload bool `json:"with_payload"`

	// WithVector requests the stored vector of each hit
	WithVector bool `json:"with_vector"`

	// ScoreThreshold drops hits scoring worse than the threshold
	ScoreThreshold *float32 `json:"score_threshold,omitempty"`
}

// ScrollRequest is the body of POST /collections/{name}/points/scroll.
type ScrollRequest struct {
	Filter *filter.Filter `json:"filter,omitempty"`

	// Limit is the page size
	Limit uint64 `json:"limit,omitempty"`

	// Offset is the id of the first point of the page
	Offset *filter.PointID `json:"offset,omitempty"`

	WithPayload bool `json:"with_payload"`
	WithVector  bool `json:"with_vector"`
}

// CountRequest is the body of POST /collections/{name}/points/count.
type CountRequest struct {
	Filter *filter.Filter `json:"filter,omitempty"`

	// Exact requests an exact count instead of an estimate
	Exact bool `json:"exact"`
}

// DeleteByFilterRequest is the body of POST /collections/{name}/points/delete
// selecting the points by filter.
type DeleteByFilterRequest struct {
	Filter *filter.Filter `json:"filter"`
}

// SetPayloadRequest is the body of POST /collections/{name}/points/payload.
// Points are selected by ids, by filter, or both.
type SetPayloadRequest struct {
	Payload map[string]any   `json:"payload"`
	Points  []filter.PointID `json:"points,omitempty"`
	Filter  *filter.Filter   `json:"filter,omitempty"`

	// Key sets the payload under a nested key instead of the root
	Key string `json:"key,omitempty"`
}
