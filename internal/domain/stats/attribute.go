package stats

// Attribute is one of the four top-level stat categories. The value is the
// canonical key, which is also the persisted stat name.
type Attribute string

const (
	AttributeNone      Attribute = ""
	AttributeIntellect Attribute = "INTELLECT"
	AttributePsyche    Attribute = "PSYCHE"
	AttributePhysique  Attribute = "PHYSIQUE"
	AttributeMotorics  Attribute = "MOTORICS"
)

var attributes = []Attribute{
	AttributeIntellect,
	AttributePsyche,
	AttributePhysique,
	AttributeMotorics,
}

var attributePrettyNames = map[Attribute]string{
	AttributeIntellect: "Intellect",
	AttributePsyche:    "Psyche",
	AttributePhysique:  "Physique",
	AttributeMotorics:  "Motorics",
}

// Attributes returns every attribute in declaration order
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes)
	return out
}

// Valid reports whether a is one of the four attributes
func (a Attribute) Valid() bool {
	_, ok := attributePrettyNames[a]
	return ok
}

// PrettyName returns the display name, or the raw key for an unknown attribute
func (a Attribute) PrettyName() string {
	if name, ok := attributePrettyNames[a]; ok {
		return name
	}
	return string(a)
}

// String implements fmt.Stringer
func (a Attribute) String() string {
	return a.PrettyName()
}
