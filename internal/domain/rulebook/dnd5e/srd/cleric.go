package srd

import (
	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
)

var (
	ChannelDivinity = &rulebook.FeatureDef{
		Name:        "Channel Divinity",
		Source:      "Cleric",
		Description: "Channel divine energy to fuel magical effects. Once per rest.",
	}

	DestroyUndead = &rulebook.FeatureDef{
		Name:        "Destroy Undead",
		Source:      "Cleric",
		Description: "Undead of low enough CR that fail against your Turn Undead are destroyed.",
	}

	DiscipleOfLife = &rulebook.FeatureDef{
		Name:        "Disciple of Life",
		Source:      "Cleric",
		Description: "Healing spells restore additional hit points equal to 2 + the spell's level.",
	}

	PreserveLife = &rulebook.FeatureDef{
		Name:        "Channel Divinity: Preserve Life",
		Source:      "Cleric",
		Description: "Restore hit points equal to five times your cleric level, split among creatures.",
	}

	WardingFlare = &rulebook.FeatureDef{
		Name:        "Warding Flare",
		Source:      "Cleric",
		Description: "Impose disadvantage on an attacker you can see within 30 feet.",
	}

	RadianceOfTheDawn = &rulebook.FeatureDef{
		Name:        "Channel Divinity: Radiance of the Dawn",
		Source:      "Cleric",
		Description: "Dispel magical darkness and deal radiant damage to hostile creatures.",
	}

	// LifeDomain grants heavy armor and bonus healing.
	LifeDomain = &rulebook.SubClassDef{
		Name:        "Life Domain",
		Description: "Channel positive energy. Gain heavy armor proficiency and improved healing.",
		FeaturesByLevel: map[int][]*rulebook.FeatureDef{
			1: {DiscipleOfLife},
			2: {PreserveLife},
		},
		ProficienciesText: []string{"Heavy armor"},
		SpellsPrepared:    []*rulebook.Spell{Bless, CureWounds},
	}

	// LightDomain grants offensive radiant magic.
	LightDomain = &rulebook.SubClassDef{
		Name:        "Light Domain",
		Description: "Promote rebirth, truth, and beauty through searing light.",
		FeaturesByLevel: map[int][]*rulebook.FeatureDef{
			1: {WardingFlare},
			2: {RadianceOfTheDawn},
		},
		SpellsKnown:    []*rulebook.Spell{FireBolt},
		SpellsPrepared: []*rulebook.Spell{Fireball},
	}

	Cleric = &rulebook.ClassDef{
		Name:                "Cleric",
		HitDiceFaces:        8,
		SubclassSelectLevel: 1,
		FeaturesByLevel: map[int][]*rulebook.FeatureDef{
			2: {ChannelDivinity},
			5: {DestroyUndead},
		},
		WeaponProficiencies:         []string{"simple weapons"},
		ProficienciesText:           []string{"Light armor", "medium armor", "shields", "simple weapons"},
		MulticlassProficienciesText: []string{"Light armor", "medium armor", "shields"},
		SavingThrowProficiencies:    []string{"Wisdom", "Charisma"},
		PrimaryAbilities:            []string{"Wisdom"},
		ClassSkillChoices:           []string{"History", "Insight", "Medicine", "Persuasion", "Religion"},
		NumSkillChoices:             2,
		SpellcastingAbility:         "Wisdom",
		SpellSlotsByLevel:           fullCasterSlots,
		SpellsKnown:                 []*rulebook.Spell{Guidance},
		SpellsPrepared:              []*rulebook.Spell{ShieldOfFaith},
		SubclassesAvailable:         []*rulebook.SubClassDef{LifeDomain, LightDomain},
	}
)
