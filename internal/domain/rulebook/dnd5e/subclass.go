package rulebook

// SubClassDef is the static definition of a specialization path for a
// class: extra features by level, proficiencies, and optionally its own
// spellcasting stats.
type SubClassDef struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// FeaturesByLevel maps class level (1-20) to the features gained at
	// that level. Each definition owns its map; definitions never share
	// a default structure.
	FeaturesByLevel map[int][]*FeatureDef `json:"features_by_level,omitempty"`

	WeaponProficiencies []string `json:"weapon_proficiencies,omitempty"`
	ProficienciesText   []string `json:"proficiencies_text,omitempty"`

	// SpellcastingAbility is empty for non-casting subclasses.
	SpellcastingAbility string `json:"spellcasting_ability,omitempty"`

	// SpellSlotsByLevel maps class level to slot counts indexed by spell
	// level (index 0 is cantrips).
	SpellSlotsByLevel map[int][]int `json:"spell_slots_by_level,omitempty"`

	SpellsKnown    []*Spell `json:"spells_known,omitempty"`
	SpellsPrepared []*Spell `json:"spells_prepared,omitempty"`
}

// SubClass is a subclass bound to one owning character.
type SubClass struct {
	Def   *SubClassDef
	Owner Owner
}

// Instantiate binds the subclass definition to an owning character.
func (d *SubClassDef) Instantiate(owner Owner) *SubClass {
	return &SubClass{Def: d, Owner: owner}
}

// Name returns the subclass name.
func (sc *SubClass) Name() string {
	return sc.Def.Name
}

// String returns the subclass name.
func (sc *SubClass) String() string {
	return sc.Def.Name
}
