package stats

import (
	dnderr "github.com/mrredcon/ballroom/internal/errors"
)

// RefKind tags which half of a Ref is set
type RefKind int

const (
	RefNone RefKind = iota
	RefAttribute
	RefSkill
)

// Ref points at either an Attribute or a Skill. The zero value points at
// neither and is rejected anywhere a stat is required.
type Ref struct {
	kind      RefKind
	attribute Attribute
	skill     Skill
}

// AttributeRef wraps an attribute
func AttributeRef(a Attribute) Ref {
	return Ref{kind: RefAttribute, attribute: a}
}

// SkillRef wraps a skill
func SkillRef(s Skill) Ref {
	return Ref{kind: RefSkill, skill: s}
}

// Kind returns the tag
func (r Ref) Kind() RefKind {
	return r.kind
}

// Attribute returns the attribute and true when r is an attribute ref
func (r Ref) Attribute() (Attribute, bool) {
	return r.attribute, r.kind == RefAttribute
}

// Skill returns the skill and true when r is a skill ref
func (r Ref) Skill() (Skill, bool) {
	return r.skill, r.kind == RefSkill
}

// Valid reports whether r points at a known attribute or skill
func (r Ref) Valid() bool {
	switch r.kind {
	case RefAttribute:
		return r.attribute.Valid()
	case RefSkill:
		return r.skill.Valid()
	default:
		return false
	}
}

// Key returns the persisted stat name, or "" for an empty ref
func (r Ref) Key() string {
	switch r.kind {
	case RefAttribute:
		return string(r.attribute)
	case RefSkill:
		return string(r.skill)
	default:
		return ""
	}
}

// String implements fmt.Stringer
func (r Ref) String() string {
	name, err := PrettyName(r)
	if err != nil {
		return "<none>"
	}
	return name
}

// PrettyName returns the display name of the referenced stat
func PrettyName(r Ref) (string, error) {
	if !r.Valid() {
		return "", dnderr.InvalidStatf("stat reference %q is neither an attribute nor a skill", r.Key())
	}
	if a, ok := r.Attribute(); ok {
		return a.PrettyName(), nil
	}
	return r.skill.PrettyName(), nil
}

// ParseRef converts a persisted stat name back into a Ref
func ParseRef(key string) (Ref, error) {
	if a := Attribute(key); a.Valid() {
		return AttributeRef(a), nil
	}
	if s := Skill(key); s.Valid() {
		return SkillRef(s), nil
	}
	return Ref{}, dnderr.InvalidStatf("stored stat name %q is not a valid attribute or skill", key)
}

// MarshalText encodes r as its persisted stat name
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.Key()), nil
}

// UnmarshalText is the inverse of MarshalText
func (r *Ref) UnmarshalText(text []byte) error {
	ref, err := ParseRef(string(text))
	if err != nil {
		return err
	}
	*r = ref
	return nil
}
