package stats

import "strings"

type skillAlias struct {
	alias string
	skill Skill
}

// skillAliases are short forms accepted when resolving a skill by name.
// Declaration order is the precedence order when two entries claim the
// same string.
var skillAliases = []skillAlias{
	{"encyc", SkillEncyclopedia},
	{"ency", SkillEncyclopedia},

	{"concept", SkillConceptualization},

	{"visual", SkillVisualCalculus},
	{"calculus", SkillVisualCalculus},
	{"calc", SkillVisualCalculus},

	{"inland", SkillInlandEmpire},
	{"empire", SkillInlandEmpire},

	{"empath", SkillEmpathy},

	{"auth", SkillAuthority},

	{"esprit", SkillEspritDeCorps},
	{"corps", SkillEspritDeCorps},

	{"suggest", SkillSuggestion},

	{"endure", SkillEndurance},

	{"pain", SkillPainThreshold},
	{"threshold", SkillPainThreshold},

	{"physical", SkillPhysicalInstrument},
	{"instrument", SkillPhysicalInstrument},

	{"electro", SkillElectrochemistry},
	{"chemistry", SkillElectrochemistry},
	{"chem", SkillElectrochemistry},

	{"shiver", SkillShivers},

	{"half", SkillHalfLight},
	{"light", SkillHalfLight},

	{"coord", SkillHandEyeCoordination},
	{"coordination", SkillHandEyeCoordination},
	{"hand", SkillHandEyeCoordination},
	{"handeye", SkillHandEyeCoordination},

	{"percept", SkillPerception},
	{"perceive", SkillPerception},
	{"per", SkillPerception},

	{"react", SkillReactionSpeed},
	{"reaction", SkillReactionSpeed},
	{"speed", SkillReactionSpeed},

	{"savoir", SkillSavoirFaire},
	{"faire", SkillSavoirFaire},

	{"interface", SkillInterfacing},
	{"inter", SkillInterfacing},

	{"compose", SkillComposure},
}

var (
	attributeIndex = make(map[string]Attribute)
	skillIndex     = make(map[string]Skill)
)

func init() {
	for _, a := range attributes {
		attributeIndex[normalize(string(a))] = a
		attributeIndex[normalize(a.PrettyName())] = a
	}

	// First claim wins: aliases, then canonical keys, then display names.
	claim := func(text string, s Skill) {
		key := normalize(text)
		if _, taken := skillIndex[key]; !taken {
			skillIndex[key] = s
		}
	}
	for _, a := range skillAliases {
		claim(a.alias, a.skill)
	}
	for _, info := range skillTable {
		claim(string(info.skill), info.skill)
	}
	for _, info := range skillTable {
		claim(info.pretty, info.skill)
	}
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ResolveAttribute finds an attribute by its canonical name, ignoring case
func ResolveAttribute(text string) (Attribute, bool) {
	a, ok := attributeIndex[normalize(text)]
	return a, ok
}

// ResolveSkill finds a skill by alias, canonical key or display name,
// ignoring case. Aliases take precedence over canonical names.
func ResolveSkill(text string) (Skill, bool) {
	s, ok := skillIndex[normalize(text)]
	return s, ok
}

// ResolveStat tries attributes first, then skills
func ResolveStat(text string) (Ref, bool) {
	if a, ok := ResolveAttribute(text); ok {
		return AttributeRef(a), true
	}
	if s, ok := ResolveSkill(text); ok {
		return SkillRef(s), true
	}
	return Ref{}, false
}

// AttributeNames returns attribute display names in declaration order
func AttributeNames() []string {
	names := make([]string, 0, len(attributes))
	for _, a := range attributes {
		names = append(names, a.PrettyName())
	}
	return names
}

// SkillNames returns skill display names in declaration order
func SkillNames() []string {
	names := make([]string, 0, len(skillTable))
	for _, info := range skillTable {
		names = append(names, info.pretty)
	}
	return names
}
