package stats

// Skill is one of the 24 sub-stats. Each skill is governed by exactly one
// Attribute.
type Skill string

const (
	SkillNone Skill = ""

	SkillLogic             Skill = "LOGIC"
	SkillEncyclopedia      Skill = "ENCYCLOPEDIA"
	SkillRhetoric          Skill = "RHETORIC"
	SkillDrama             Skill = "DRAMA"
	SkillConceptualization Skill = "CONCEPTUALIZATION"
	SkillVisualCalculus    Skill = "VISUALCALCULUS"

	SkillVolition      Skill = "VOLITION"
	SkillInlandEmpire  Skill = "INLANDEMPIRE"
	SkillEmpathy       Skill = "EMPATHY"
	SkillAuthority     Skill = "AUTHORITY"
	SkillEspritDeCorps Skill = "ESPRITDECORPS"
	SkillSuggestion    Skill = "SUGGESTION"

	SkillEndurance          Skill = "ENDURANCE"
	SkillPainThreshold      Skill = "PAINTHRESHOLD"
	SkillPhysicalInstrument Skill = "PHYSICALINSTRUMENT"
	SkillElectrochemistry   Skill = "ELECTROCHEMISTRY"
	SkillShivers            Skill = "SHIVERS"
	SkillHalfLight          Skill = "HALFLIGHT"

	SkillHandEyeCoordination Skill = "HANDEYECOORDINATION"
	SkillPerception          Skill = "PERCEPTION"
	SkillReactionSpeed       Skill = "REACTIONSPEED"
	SkillSavoirFaire         Skill = "SAVOIRFAIRE"
	SkillInterfacing         Skill = "INTERFACING"
	SkillComposure           Skill = "COMPOSURE"
)

type skillInfo struct {
	skill     Skill
	attribute Attribute
	pretty    string
}

// skillTable is the single source for skill order, governing attribute and
// display name. Everything else in the catalog is derived from it.
var skillTable = []skillInfo{
	{SkillLogic, AttributeIntellect, "Logic"},
	{SkillEncyclopedia, AttributeIntellect, "Encyclopedia"},
	{SkillRhetoric, AttributeIntellect, "Rhetoric"},
	{SkillDrama, AttributeIntellect, "Drama"},
	{SkillConceptualization, AttributeIntellect, "Conceptualization"},
	{SkillVisualCalculus, AttributeIntellect, "Visual Calculus"},

	{SkillVolition, AttributePsyche, "Volition"},
	{SkillInlandEmpire, AttributePsyche, "Inland Empire"},
	{SkillEmpathy, AttributePsyche, "Empathy"},
	{SkillAuthority, AttributePsyche, "Authority"},
	{SkillEspritDeCorps, AttributePsyche, "Esprit de Corps"},
	{SkillSuggestion, AttributePsyche, "Suggestion"},

	{SkillEndurance, AttributePhysique, "Endurance"},
	{SkillPainThreshold, AttributePhysique, "Pain Threshold"},
	{SkillPhysicalInstrument, AttributePhysique, "Physical Instrument"},
	{SkillElectrochemistry, AttributePhysique, "Electrochemistry"},
	{SkillShivers, AttributePhysique, "Shivers"},
	{SkillHalfLight, AttributePhysique, "Half Light"},

	{SkillHandEyeCoordination, AttributeMotorics, "Hand/Eye Coordination"},
	{SkillPerception, AttributeMotorics, "Perception"},
	{SkillReactionSpeed, AttributeMotorics, "Reaction Speed"},
	{SkillSavoirFaire, AttributeMotorics, "Savoir Faire"},
	{SkillInterfacing, AttributeMotorics, "Interfacing"},
	{SkillComposure, AttributeMotorics, "Composure"},
}

var skills []Skill

var (
	skillAttribute   = make(map[Skill]Attribute, len(skillTable))
	skillPrettyNames = make(map[Skill]string, len(skillTable))
	attributeSkills  = make(map[Attribute][]Skill, len(attributes))
)

func init() {
	for _, info := range skillTable {
		skills = append(skills, info.skill)
		skillAttribute[info.skill] = info.attribute
		skillPrettyNames[info.skill] = info.pretty
		attributeSkills[info.attribute] = append(attributeSkills[info.attribute], info.skill)
	}
}

// Skills returns every skill in declaration order
func Skills() []Skill {
	out := make([]Skill, len(skills))
	copy(out, skills)
	return out
}

// AttributeOf returns the attribute governing skill. It returns
// AttributeNone only for values that are not skills.
func AttributeOf(skill Skill) Attribute {
	return skillAttribute[skill]
}

// SkillsOf returns the skills governed by attribute in declaration order
func SkillsOf(attribute Attribute) []Skill {
	governed := attributeSkills[attribute]
	out := make([]Skill, len(governed))
	copy(out, governed)
	return out
}

// Valid reports whether s is one of the 24 skills
func (s Skill) Valid() bool {
	_, ok := skillAttribute[s]
	return ok
}

// Attribute returns the governing attribute
func (s Skill) Attribute() Attribute {
	return AttributeOf(s)
}

// PrettyName returns the display name, or the raw key for an unknown skill
func (s Skill) PrettyName() string {
	if name, ok := skillPrettyNames[s]; ok {
		return name
	}
	return string(s)
}

// String implements fmt.Stringer
func (s Skill) String() string {
	return s.PrettyName()
}
