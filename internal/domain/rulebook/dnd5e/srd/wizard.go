package srd

import (
	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
)

// fullCasterSlots is the standard full-caster slot table. Index 0 of
// each row is cantrips known; indexes 1-9 are spell slots per level.
var fullCasterSlots = map[int][]int{
	1:  {3, 2, 0, 0, 0, 0, 0, 0, 0, 0},
	2:  {3, 3, 0, 0, 0, 0, 0, 0, 0, 0},
	3:  {3, 4, 2, 0, 0, 0, 0, 0, 0, 0},
	4:  {4, 4, 3, 0, 0, 0, 0, 0, 0, 0},
	5:  {4, 4, 3, 2, 0, 0, 0, 0, 0, 0},
	6:  {4, 4, 3, 3, 0, 0, 0, 0, 0, 0},
	7:  {4, 4, 3, 3, 1, 0, 0, 0, 0, 0},
	8:  {4, 4, 3, 3, 2, 0, 0, 0, 0, 0},
	9:  {4, 4, 3, 3, 3, 1, 0, 0, 0, 0},
	10: {5, 4, 3, 3, 3, 2, 0, 0, 0, 0},
	11: {5, 4, 3, 3, 3, 2, 1, 0, 0, 0},
	12: {5, 4, 3, 3, 3, 2, 1, 0, 0, 0},
	13: {5, 4, 3, 3, 3, 2, 1, 1, 0, 0},
	14: {5, 4, 3, 3, 3, 2, 1, 1, 0, 0},
	15: {5, 4, 3, 3, 3, 2, 1, 1, 1, 0},
	16: {5, 4, 3, 3, 3, 2, 1, 1, 1, 0},
	17: {5, 4, 3, 3, 3, 2, 1, 1, 1, 1},
	18: {5, 4, 3, 3, 3, 3, 1, 1, 1, 1},
	19: {5, 4, 3, 3, 3, 3, 2, 1, 1, 1},
	20: {5, 4, 3, 3, 3, 3, 2, 2, 1, 1},
}

var (
	ArcaneRecovery = &rulebook.FeatureDef{
		Name:        "Arcane Recovery",
		Source:      "Wizard",
		Description: "Recover expended spell slots during a short rest. Once per day.",
	}

	EvocationSavant = &rulebook.FeatureDef{
		Name:        "Evocation Savant",
		Source:      "Wizard",
		Description: "Copying evocation spells into your spellbook costs half the gold and time.",
	}

	SculptSpells = &rulebook.FeatureDef{
		Name:        "Sculpt Spells",
		Source:      "Wizard",
		Description: "Chosen creatures automatically succeed on saves against your evocation spells.",
	}

	SchoolOfEvocation = &rulebook.SubClassDef{
		Name:        "School of Evocation",
		Description: "Focus your study on magic that creates powerful elemental effects.",
		FeaturesByLevel: map[int][]*rulebook.FeatureDef{
			2: {EvocationSavant, SculptSpells},
		},
	}

	Wizard = &rulebook.ClassDef{
		Name:                "Wizard",
		HitDiceFaces:        6,
		SubclassSelectLevel: 2,
		FeaturesByLevel: map[int][]*rulebook.FeatureDef{
			1: {ArcaneRecovery},
		},
		WeaponProficiencies:      []string{"daggers", "darts", "slings", "quarterstaffs", "light crossbows"},
		ProficienciesText:        []string{"Daggers", "darts", "slings", "quarterstaffs", "light crossbows"},
		SavingThrowProficiencies: []string{"Intelligence", "Wisdom"},
		PrimaryAbilities:         []string{"Intelligence"},
		ClassSkillChoices:        []string{"Arcana", "History", "Insight", "Investigation", "Medicine", "Religion"},
		NumSkillChoices:          2,
		SpellcastingAbility:      "Intelligence",
		SpellSlotsByLevel:        fullCasterSlots,
		SpellsKnown:              []*rulebook.Spell{FireBolt, MageArmor, MagicMissile, Identify},
		SubclassesAvailable:      []*rulebook.SubClassDef{SchoolOfEvocation},
	}
)
