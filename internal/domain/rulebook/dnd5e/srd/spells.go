// Package srd holds a representative sample of SRD rule data: the static
// spell, feature and class catalogs the composition engine consumes.
package srd

import (
	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
)

var (
	// FireBolt is a wizard attack cantrip.
	FireBolt = &rulebook.Spell{
		Level:        0,
		Name:         "Fire Bolt",
		CastingTime:  "1 action",
		CastingRange: "120 feet",
		Components:   []string{"V", "S"},
		Duration:     "Instantaneous",
		MagicSchool:  "Evocation",
		Classes:      []string{"Sorcerer", "Wizard"},
	}

	// Guidance is a concentration cantrip.
	Guidance = &rulebook.Spell{
		Level:        0,
		Name:         "Guidance",
		CastingTime:  "1 action",
		CastingRange: "Touch",
		Components:   []string{"V", "S"},
		Duration:     "Concentration, up to 1 minute",
		MagicSchool:  "Divination",
		Classes:      []string{"Cleric", "Druid"},
	}

	MageArmor = &rulebook.Spell{
		Level:        1,
		Name:         "Mage Armor",
		CastingTime:  "1 action",
		CastingRange: "Touch",
		Components:   []string{"V", "S", "M"},
		Materials:    "a piece of cured leather",
		Duration:     "8 hours",
		MagicSchool:  "Abjuration",
		Classes:      []string{"Sorcerer", "Wizard"},
	}

	MagicMissile = &rulebook.Spell{
		Level:        1,
		Name:         "Magic Missile",
		CastingTime:  "1 action",
		CastingRange: "120 feet",
		Components:   []string{"V", "S"},
		Duration:     "Instantaneous",
		MagicSchool:  "Evocation",
		Classes:      []string{"Sorcerer", "Wizard"},
	}

	Bless = &rulebook.Spell{
		Level:        1,
		Name:         "Bless",
		CastingTime:  "1 action",
		CastingRange: "30 feet",
		Components:   []string{"V", "S", "M"},
		Materials:    "a sprinkling of holy water",
		Duration:     "Concentration, up to 1 minute",
		MagicSchool:  "Enchantment",
		Classes:      []string{"Cleric", "Paladin"},
	}

	CureWounds = &rulebook.Spell{
		Level:        1,
		Name:         "Cure Wounds",
		CastingTime:  "1 action",
		CastingRange: "Touch",
		Components:   []string{"V", "S"},
		Duration:     "Instantaneous",
		MagicSchool:  "Evocation",
		Classes:      []string{"Bard", "Cleric", "Druid", "Paladin", "Ranger"},
	}

	// Identify is a ritual with a costly material component.
	Identify = &rulebook.Spell{
		Level:        1,
		Name:         "Identify",
		CastingTime:  "1 minute",
		CastingRange: "Touch",
		Components:   []string{"V", "S", "M"},
		Materials:    "a pearl worth at least 100 gp and an owl feather",
		Duration:     "Instantaneous",
		Ritual:       true,
		MagicSchool:  "Divination",
		Classes:      []string{"Bard", "Wizard"},
	}

	ShieldOfFaith = &rulebook.Spell{
		Level:        1,
		Name:         "Shield of Faith",
		CastingTime:  "1 bonus action",
		CastingRange: "60 feet",
		Components:   []string{"V", "S", "M"},
		Materials:    "a small parchment with a bit of holy text written on it",
		Duration:     "Concentration, up to 10 minutes",
		MagicSchool:  "Abjuration",
		Classes:      []string{"Cleric", "Paladin"},
	}

	HoldPerson = &rulebook.Spell{
		Level:        2,
		Name:         "Hold Person",
		CastingTime:  "1 action",
		CastingRange: "60 feet",
		Components:   []string{"V", "S", "M"},
		Materials:    "a small, straight piece of iron",
		Duration:     "Concentration, up to 1 minute",
		MagicSchool:  "Enchantment",
		Classes:      []string{"Bard", "Cleric", "Druid", "Sorcerer", "Warlock", "Wizard"},
	}

	Fireball = &rulebook.Spell{
		Level:        3,
		Name:         "Fireball",
		CastingTime:  "1 action",
		CastingRange: "150 feet",
		Components:   []string{"V", "S", "M"},
		Materials:    "a tiny ball of bat guano and sulfur",
		Duration:     "Instantaneous",
		MagicSchool:  "Evocation",
		Classes:      []string{"Sorcerer", "Wizard"},
	}

	Revivify = &rulebook.Spell{
		Level:        3,
		Name:         "Revivify",
		CastingTime:  "1 action",
		CastingRange: "Touch",
		Components:   []string{"V", "S", "M"},
		Materials:    "diamonds worth 300 gp, which the spell consumes",
		Duration:     "Instantaneous",
		MagicSchool:  "Necromancy",
		Classes:      []string{"Cleric", "Paladin"},
	}

	Counterspell = &rulebook.Spell{
		Level:        3,
		Name:         "Counterspell",
		CastingTime:  "1 reaction",
		CastingRange: "60 feet",
		Components:   []string{"S"},
		Duration:     "Instantaneous",
		MagicSchool:  "Abjuration",
		Classes:      []string{"Sorcerer", "Warlock", "Wizard"},
	}
)

// allSpells lists the catalog in registration order.
func allSpells() []*rulebook.Spell {
	return []*rulebook.Spell{
		FireBolt,
		Guidance,
		MageArmor,
		MagicMissile,
		Bless,
		CureWounds,
		Identify,
		ShieldOfFaith,
		HoldPerson,
		Fireball,
		Revivify,
		Counterspell,
	}
}
