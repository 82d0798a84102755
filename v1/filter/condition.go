package filter

// NoField is the field name of conditions that do not target a payload field
// directly. No "key" property is written for them.
const NoField = ""

// Kind identifies the variant of a Condition.
type Kind int

const (
	KindLeaf Kind = iota
	KindMust
	KindMustNot
	KindShould
	KindMinShould
	KindNested
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindMust:
		return "Must"
	case KindMustNot:
		return "MustNot"
	case KindShould:
		return "Should"
	case KindMinShould:
		return "MinShould"
	case KindNested:
		return "Nested"
	case KindGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// PayloadSchemaType is the payload index type a leaf benefits from.
// It is only a hint for schema tooling and never affects serialization.
type PayloadSchemaType string

const (
	PayloadKeyword  PayloadSchemaType = "keyword"
	PayloadInteger  PayloadSchemaType = "integer"
	PayloadFloat    PayloadSchemaType = "float"
	PayloadBool     PayloadSchemaType = "bool"
	PayloadGeo      PayloadSchemaType = "geo"
	PayloadText     PayloadSchemaType = "text"
	PayloadDatetime PayloadSchemaType = "datetime"
	PayloadUUID     PayloadSchemaType = "uuid"
)

// Condition is a node of a filter tree.
//
// The set of implementations is closed: the group conditions and the leaves
// of this package. Custom predicates are plugged in through [Custom].
type Condition interface {
	// Kind reports the variant of the condition.
	Kind() Kind

	// FieldName is the payload field the condition targets, or NoField.
	FieldName() string

	// Substitute returns the condition written in place of this one, if the
	// optimizer attached one.
	Substitute() Condition

	// Accept calls the Visitor method matching the concrete type.
	Accept(v Visitor)

	base() *node
}

// Leaf is a condition without children that writes its own body.
type Leaf interface {
	Condition

	// IndexedFieldType returns the payload index type that serves this
	// condition, if any.
	IndexedFieldType() (PayloadSchemaType, bool)

	writeBody(w *Writer) error
}

// node holds the state shared by every condition.
type node struct {
	field      string
	substitute Condition
}

func (n *node) base() *node { return n }

func (n *node) FieldName() string { return n.field }

func (n *node) Substitute() Condition { return n.substitute }

// setSubstitute attaches c once. It reports whether c was attached.
func (n *node) setSubstitute(c Condition) bool {
	if c == nil || n.substitute != nil {
		return false
	}
	n.substitute = c
	return true
}

// leaf is embedded by every leaf condition.
type leaf struct {
	node
}

func (*leaf) Kind() Kind { return KindLeaf }
