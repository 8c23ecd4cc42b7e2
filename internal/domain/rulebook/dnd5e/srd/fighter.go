package srd

import (
	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
)

var (
	SecondWind = &rulebook.FeatureDef{
		Name:        "Second Wind",
		Source:      "Fighter",
		Description: "As a bonus action, regain 1d10 + fighter level hit points. Once per rest.",
	}

	ActionSurge = &rulebook.FeatureDef{
		Name:        "Action Surge",
		Source:      "Fighter",
		Description: "Take one additional action on your turn. Once per rest.",
	}

	ExtraAttackFighter = &rulebook.FeatureDef{
		Name:        "Extra Attack",
		Source:      "Fighter",
		Description: "Attack twice whenever you take the Attack action on your turn.",
	}

	ImprovedCritical = &rulebook.FeatureDef{
		Name:        "Improved Critical",
		Source:      "Fighter",
		Description: "Your weapon attacks score a critical hit on a roll of 19 or 20.",
	}

	RemarkableAthlete = &rulebook.FeatureDef{
		Name:        "Remarkable Athlete",
		Source:      "Fighter",
		Description: "Add half your proficiency bonus to Str, Dex and Con checks without proficiency.",
	}

	CombatSuperiority = &rulebook.FeatureDef{
		Name:        "Combat Superiority",
		Source:      "Fighter",
		Description: "You learn maneuvers fueled by superiority dice.",
	}

	StudentOfWar = &rulebook.FeatureDef{
		Name:        "Student of War",
		Source:      "Fighter",
		Description: "You gain proficiency with one type of artisan's tools of your choice.",
	}

	// Champion is the simple critical-hit-focused martial archetype.
	Champion = &rulebook.SubClassDef{
		Name:        "Champion",
		Description: "Raw physical power honed to deadly perfection.",
		FeaturesByLevel: map[int][]*rulebook.FeatureDef{
			3: {ImprovedCritical},
			7: {RemarkableAthlete},
		},
	}

	// BattleMaster grants maneuver-based martial techniques.
	BattleMaster = &rulebook.SubClassDef{
		Name:        "Battle Master",
		Description: "Martial techniques passed down through generations.",
		FeaturesByLevel: map[int][]*rulebook.FeatureDef{
			3: {CombatSuperiority, StudentOfWar},
		},
		ProficienciesText: []string{"One type of artisan's tools"},
	}

	Fighter = &rulebook.ClassDef{
		Name:                "Fighter",
		HitDiceFaces:        10,
		SubclassSelectLevel: 3,
		FeaturesByLevel: map[int][]*rulebook.FeatureDef{
			1: {FightingStyle, SecondWind},
			2: {ActionSurge},
			5: {ExtraAttackFighter},
		},
		WeaponProficiencies:           []string{"simple weapons", "martial weapons"},
		ProficienciesText:             []string{"All armor", "shields", "simple weapons", "martial weapons"},
		MulticlassWeaponProficiencies: []string{"simple weapons", "martial weapons"},
		MulticlassProficienciesText:   []string{"Light armor", "medium armor", "shields", "simple weapons", "martial weapons"},
		SavingThrowProficiencies:      []string{"Strength", "Constitution"},
		PrimaryAbilities:              []string{"Strength", "Dexterity"},
		ClassSkillChoices: []string{
			"Acrobatics", "Animal Handling", "Athletics", "History",
			"Insight", "Intimidation", "Perception", "Survival",
		},
		NumSkillChoices:     2,
		SubclassesAvailable: []*rulebook.SubClassDef{Champion, BattleMaster},
	}
)
