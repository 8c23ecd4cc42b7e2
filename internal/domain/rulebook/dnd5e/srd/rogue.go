package srd

import (
	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
)

var (
	SneakAttack = &rulebook.FeatureDef{
		Name:        "Sneak Attack",
		Source:      "Rogue",
		Description: "Once per turn, deal extra damage to a creature you hit with advantage.",
	}

	ThievesCant = &rulebook.FeatureDef{
		Name:        "Thieves' Cant",
		Source:      "Rogue",
		Description: "A secret mix of dialect, jargon, and code understood by criminals.",
	}

	CunningAction = &rulebook.FeatureDef{
		Name:        "Cunning Action",
		Source:      "Rogue",
		Description: "Take a bonus action to Dash, Disengage, or Hide.",
	}

	FastHands = &rulebook.FeatureDef{
		Name:        "Fast Hands",
		Source:      "Rogue",
		Description: "Use Cunning Action for Sleight of Hand, thieves' tools, or Use an Object.",
	}

	SecondStoryWork = &rulebook.FeatureDef{
		Name:        "Second-Story Work",
		Source:      "Rogue",
		Description: "Climb faster and jump farther with a running start.",
	}

	Thief = &rulebook.SubClassDef{
		Name:        "Thief",
		Description: "Hone your skills in the larcenous arts.",
		FeaturesByLevel: map[int][]*rulebook.FeatureDef{
			3: {FastHands, SecondStoryWork},
		},
	}

	Rogue = &rulebook.ClassDef{
		Name:                "Rogue",
		HitDiceFaces:        8,
		SubclassSelectLevel: 3,
		FeaturesByLevel: map[int][]*rulebook.FeatureDef{
			1: {SneakAttack, ThievesCant},
			2: {CunningAction},
		},
		WeaponProficiencies:      []string{"simple weapons", "hand crossbows", "longswords", "rapiers", "shortswords"},
		ProficienciesText:        []string{"Light armor", "simple weapons", "hand crossbows", "longswords", "rapiers", "shortswords", "thieves' tools"},
		SavingThrowProficiencies: []string{"Dexterity", "Intelligence"},
		PrimaryAbilities:         []string{"Dexterity"},
		ClassSkillChoices: []string{
			"Acrobatics", "Athletics", "Deception", "Insight", "Intimidation",
			"Investigation", "Perception", "Performance", "Persuasion",
			"Sleight of Hand", "Stealth",
		},
		NumSkillChoices:     4,
		SubclassesAvailable: []*rulebook.SubClassDef{Thief},
	}
)
