package srd

import (
	"strings"
	"sync"

	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
)

var (
	registerOnce sync.Once
	registerErr  error

	classesByName = map[string]*rulebook.ClassDef{}
)

// allFeatures lists the catalog in registration order.
func allFeatures() []*rulebook.FeatureDef {
	return []*rulebook.FeatureDef{
		// fighting styles
		Archery, Defense, Dueling, GreatWeaponFighting, Protection,
		TwoWeaponFighting, FightingStyle,
		// fighter
		SecondWind, ActionSurge, ExtraAttackFighter,
		ImprovedCritical, RemarkableAthlete, CombatSuperiority, StudentOfWar,
		// cleric
		ChannelDivinity, DestroyUndead, DiscipleOfLife, PreserveLife,
		WardingFlare, RadianceOfTheDawn,
		// wizard
		ArcaneRecovery, EvocationSavant, SculptSpells,
		// rogue
		SneakAttack, ThievesCant, CunningAction, FastHands, SecondStoryWork,
	}
}

// allClasses lists the class catalog.
func allClasses() []*rulebook.ClassDef {
	return []*rulebook.ClassDef{Fighter, Cleric, Wizard, Rogue}
}

// Register wires the SRD sample catalogs into the process-wide spell and
// feature registries. Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		for _, spell := range allSpells() {
			if err := rulebook.Spells.Register(spell); err != nil {
				registerErr = err
				return
			}
		}
		for _, def := range allFeatures() {
			if err := rulebook.Features.Register(def); err != nil {
				registerErr = err
				return
			}
		}
		for _, class := range allClasses() {
			classesByName[classKey(class.Name)] = class
		}
	})
	return registerErr
}

// Class looks up a class definition by name, case-insensitively.
func Class(name string) (*rulebook.ClassDef, bool) {
	class, ok := classesByName[classKey(name)]
	return class, ok
}

// ClassNames returns the available class names.
func ClassNames() []string {
	names := make([]string, 0, len(allClasses()))
	for _, class := range allClasses() {
		names = append(names, class.Name)
	}
	return names
}

func classKey(name string) string {
	return strings.ToLower(name)
}
