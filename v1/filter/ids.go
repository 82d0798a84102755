package filter

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// PointID identifies a point either by an unsigned integer or by a UUID.
type PointID struct {
	num  uint64
	uuid uuid.UUID
	// isUUID distinguishes the zero UUID from the numeric id 0.
	isUUID bool
}

// NumID returns a numeric point id.
func NumID(n uint64) PointID { return PointID{num: n} }

// UUIDID returns a UUID point id.
func UUIDID(u uuid.UUID) PointID { return PointID{uuid: u, isUUID: true} }

// ParsePointID parses a decimal number or a UUID in any form uuid.Parse
// accepts. UUIDs are normalized to the canonical lower-case form.
func ParsePointID(s string) (PointID, error) {
	if s == "" {
		return PointID{}, fmt.Errorf("%w: empty point id", ErrNullArgument)
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return NumID(n), nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return PointID{}, fmt.Errorf("%w: point id %q is neither an unsigned integer nor a UUID: %v", ErrInvalidConfiguration, s, err)
	}
	return UUIDID(u), nil
}

// IsUUID reports whether the id is a UUID.
func (id PointID) IsUUID() bool { return id.isUUID }

// Num returns the numeric id. It is 0 for UUID ids.
func (id PointID) Num() uint64 { return id.num }

// UUID returns the UUID id. It is uuid.Nil for numeric ids.
func (id PointID) UUID() uuid.UUID { return id.uuid }

func (id PointID) String() string {
	if id.isUUID {
		return id.uuid.String()
	}
	return strconv.FormatUint(id.num, 10)
}

// MarshalJSON writes numeric ids as numbers and UUIDs as strings.
func (id PointID) MarshalJSON() ([]byte, error) {
	if id.isUUID {
		return json.Marshal(id.uuid.String())
	}
	return []byte(strconv.FormatUint(id.num, 10)), nil
}

func (id PointID) write(w *Writer) {
	if id.isUUID {
		w.String(id.uuid.String())
		return
	}
	w.Uint(id.num)
}

// HasIDCondition matches points with one of the given ids.
type HasIDCondition struct {
	leaf
	ids []PointID
}

// HasID creates a has_id condition.
func HasID(ids ...PointID) *HasIDCondition {
	return &HasIDCondition{ids: slices.Clone(ids)}
}

// IDs returns a copy of the matched ids.
func (c *HasIDCondition) IDs() []PointID { return slices.Clone(c.ids) }

func (c *HasIDCondition) Accept(v Visitor) { v.VisitHasID(c) }

func (c *HasIDCondition) IndexedFieldType() (PayloadSchemaType, bool) {
	return "", false
}

func (c *HasIDCondition) writeBody(w *Writer) error {
	w.Name("has_id")
	w.StartArray()
	for _, id := range c.ids {
		id.write(w)
	}
	w.EndArray()
	return w.Err()
}
