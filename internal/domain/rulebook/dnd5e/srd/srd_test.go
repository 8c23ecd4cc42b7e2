package srd_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
	"github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e/srd"
)

func TestRegister(t *testing.T) {
	require.NoError(t, srd.Register())
	require.NoError(t, srd.Register(), "registration is idempotent")

	spell, ok := rulebook.Spells.Get("fireball")
	require.True(t, ok)
	assert.Equal(t, 3, spell.Level)

	def, ok := rulebook.Features.Get("fighting style")
	require.True(t, ok)
	assert.Equal(t, rulebook.FeatureKindSelector, def.Kind)

	count := 0
	for range rulebook.AllSpells() {
		count++
	}
	assert.Equal(t, rulebook.Spells.Len(), count)
}

func TestClassLookup(t *testing.T) {
	require.NoError(t, srd.Register())

	for _, name := range srd.ClassNames() {
		class, ok := srd.Class(strings.ToUpper(name))
		require.True(t, ok, "lookup is case-insensitive: %s", name)
		assert.Equal(t, name, class.Name)
	}

	_, ok := srd.Class("artificer")
	assert.False(t, ok)
}

func TestSelectorOptionKeysAreLowercase(t *testing.T) {
	for key := range srd.FightingStyle.Options {
		assert.Equal(t, strings.ToLower(key), key)
	}
}

func TestFullCasterTablesCoverAllLevels(t *testing.T) {
	for _, class := range []*rulebook.ClassDef{srd.Cleric, srd.Wizard} {
		require.NotNil(t, class.SpellSlotsByLevel, class.Name)
		for lvl := 1; lvl <= rulebook.MaxClassLevel; lvl++ {
			row, ok := class.SpellSlotsByLevel[lvl]
			require.True(t, ok, "%s level %d", class.Name, lvl)
			assert.Len(t, row, rulebook.MaxSpellLevel+1, "%s level %d", class.Name, lvl)
		}
	}
}

func TestClassShapes(t *testing.T) {
	tests := []struct {
		class               *rulebook.ClassDef
		hitDice             int
		subclassSelectLevel int
		spellcaster         bool
		subclasses          int
	}{
		{srd.Fighter, 10, 3, false, 2},
		{srd.Cleric, 8, 1, true, 2},
		{srd.Wizard, 6, 2, true, 1},
		{srd.Rogue, 8, 3, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.class.Name, func(t *testing.T) {
			assert.Equal(t, tt.hitDice, tt.class.HitDiceFaces)
			assert.Equal(t, tt.subclassSelectLevel, tt.class.SubclassSelectLevel)
			assert.Equal(t, tt.spellcaster, tt.class.SpellcastingAbility != "")
			assert.Len(t, tt.class.SubclassesAvailable, tt.subclasses)
		})
	}
}

func TestSpellCatalogIndicators(t *testing.T) {
	assert.True(t, srd.Identify.Ritual)
	assert.True(t, srd.Identify.SpecialMaterial())
	assert.True(t, srd.HoldPerson.Concentration())
	assert.False(t, srd.MagicMissile.Concentration())
	assert.True(t, srd.Revivify.SpecialMaterial())
}
