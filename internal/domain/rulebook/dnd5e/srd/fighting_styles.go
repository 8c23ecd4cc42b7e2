package srd

import (
	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
)

var (
	Archery = &rulebook.FeatureDef{
		Name:        "Archery",
		Source:      "Fighter",
		Description: "You gain a +2 bonus to attack rolls you make with ranged weapons.",
	}

	Defense = &rulebook.FeatureDef{
		Name:        "Defense",
		Source:      "Fighter",
		Description: "While you are wearing armor, you gain a +1 bonus to AC.",
	}

	Dueling = &rulebook.FeatureDef{
		Name:        "Dueling",
		Source:      "Fighter",
		Description: "+2 damage when wielding a melee weapon in one hand with no other weapons.",
	}

	GreatWeaponFighting = &rulebook.FeatureDef{
		Name:        "Great Weapon Fighting",
		Source:      "Fighter",
		Description: "Reroll 1-2 on damage dice with two-handed or versatile weapons.",
	}

	Protection = &rulebook.FeatureDef{
		Name:        "Protection",
		Source:      "Fighter",
		Description: "Use reaction with shield to impose disadvantage on an attack near you.",
	}

	TwoWeaponFighting = &rulebook.FeatureDef{
		Name:        "Two-Weapon Fighting",
		Source:      "Fighter",
		Description: "Add ability modifier to off-hand weapon damage.",
	}

	// FightingStyle is the selector resolved against the character's
	// feature choices at fighter level 1.
	FightingStyle = &rulebook.FeatureDef{
		Name:        "Fighting Style",
		Source:      "Fighter",
		Description: "You adopt a particular style of fighting as your specialty.",
		Kind:        rulebook.FeatureKindSelector,
		Options: map[string]*rulebook.FeatureDef{
			"archery":               Archery,
			"defense":               Defense,
			"dueling":               Dueling,
			"great weapon fighting": GreatWeaponFighting,
			"protection":            Protection,
			"two-weapon fighting":   TwoWeaponFighting,
		},
	}
)
