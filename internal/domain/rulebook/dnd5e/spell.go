package rulebook

import (
	"fmt"
	"strings"
)

// MaxSpellLevel is the highest spell level in 5e.
const MaxSpellLevel = 9

// UnknownSpellName marks spells created without a name, signaling
// incomplete rule data downstream.
const UnknownSpellName = "Unknown Spell"

// Spell represents a castable D&D 5e spell. The same value serves as the
// catalog definition and, once cloned, as a character-owned instance.
type Spell struct {
	Level        int      `json:"level"` // 0 for cantrips
	Name         string   `json:"name"`
	CastingTime  string   `json:"casting_time"`
	CastingRange string   `json:"casting_range"`
	Components   []string `json:"components"` // subset of "V", "S", "M"
	Materials    string   `json:"materials"`
	Duration     string   `json:"duration"`
	Ritual       bool     `json:"ritual"`
	MagicSchool  string   `json:"magic_school"`
	Classes      []string `json:"classes"` // classes that may learn it

	// concentration override; Concentration() also derives from Duration
	concentration bool
}

// SpellConfig configures an ad-hoc spell for rules not yet catalogued.
// Level is a pointer because 0 is a valid level (cantrip).
type SpellConfig struct {
	Name         string
	Level        *int
	CastingTime  string
	CastingRange string
	Components   []string
	Materials    string
	Duration     string
	Ritual       bool
	MagicSchool  string
	Classes      []string
}

// NewSpell builds an independent spell instance from the given config.
// A missing name or level marks the spell as incomplete: the name falls
// back to UnknownSpellName and the level to MaxSpellLevel.
func NewSpell(cfg SpellConfig) *Spell {
	s := &Spell{
		Name:         cfg.Name,
		Level:        MaxSpellLevel,
		CastingTime:  cfg.CastingTime,
		CastingRange: cfg.CastingRange,
		Components:   append([]string(nil), cfg.Components...),
		Materials:    cfg.Materials,
		Duration:     cfg.Duration,
		Ritual:       cfg.Ritual,
		MagicSchool:  cfg.MagicSchool,
		Classes:      append([]string(nil), cfg.Classes...),
	}
	if s.Name == "" {
		s.Name = UnknownSpellName
	}
	if cfg.Level != nil {
		s.Level = *cfg.Level
	}
	if s.CastingTime == "" {
		s.CastingTime = "1 action"
	}
	if s.CastingRange == "" {
		s.CastingRange = "60 ft"
	}
	if s.Duration == "" {
		s.Duration = "instantaneous"
	}
	return s
}

// Clone returns a fresh copy so that per-character state (like the
// concentration override) never aliases the catalog definition.
func (s *Spell) Clone() *Spell {
	if s == nil {
		return nil
	}
	dup := *s
	dup.Components = append([]string(nil), s.Components...)
	dup.Classes = append([]string(nil), s.Classes...)
	return &dup
}

// CloneSpells copies a spell list, cloning each entry.
func CloneSpells(spells []*Spell) []*Spell {
	if spells == nil {
		return nil
	}
	out := make([]*Spell, len(spells))
	for i, s := range spells {
		out[i] = s.Clone()
	}
	return out
}

// Equal reports whether two spells are the same spell. Only name and
// level participate; other attributes are presentation detail.
func (s *Spell) Equal(other *Spell) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Name == other.Name && s.Level == other.Level
}

// Concentration reports whether the spell requires concentration, either
// derived from the duration text or set explicitly.
func (s *Spell) Concentration() bool {
	return strings.Contains(strings.ToLower(s.Duration), "concentration") || s.concentration
}

// SetConcentration overrides the duration-derived concentration flag.
func (s *Spell) SetConcentration(v bool) {
	s.concentration = v
}

// SpecialMaterial reports whether the material component has a gold-value
// cost, detected by the conventional "worth" phrasing.
func (s *Spell) SpecialMaterial() bool {
	return strings.Contains(strings.ToLower(s.Materials), "worth")
}

// ComponentString renders the component letters, with the material text
// in parentheses when an "M" component is present.
func (s *Spell) ComponentString() string {
	out := strings.Join(s.Components, ", ")
	for _, c := range s.Components {
		if c == "M" {
			out += fmt.Sprintf(" (%s)", s.Materials)
			break
		}
	}
	return out
}

// String renders the spell name with ritual (R), concentration (C) and
// costly-material ($) indicators, e.g. "Identify (V/S/M/R/$)".
func (s *Spell) String() string {
	requirements := append([]string(nil), s.Components...)
	if s.Ritual {
		requirements = append(requirements, "R")
	}
	if s.Concentration() {
		requirements = append(requirements, "C")
	}
	if s.SpecialMaterial() {
		requirements = append(requirements, "$")
	}
	if len(requirements) == 0 {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, strings.Join(requirements, "/"))
}
