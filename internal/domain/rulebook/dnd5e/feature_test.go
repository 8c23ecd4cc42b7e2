package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeature_Equal(t *testing.T) {
	tests := []struct {
		name  string
		a     *Feature
		b     *Feature
		equal bool
	}{
		{
			name:  "same name and source",
			a:     &Feature{Name: "Second Wind", Source: "Fighter"},
			b:     &Feature{Name: "Second Wind", Source: "Fighter"},
			equal: true,
		},
		{
			name:  "same name different source",
			a:     &Feature{Name: "Darkvision", Source: "Elf"},
			b:     &Feature{Name: "Darkvision", Source: "Dwarf"},
			equal: false,
		},
		{
			name:  "different name same source",
			a:     &Feature{Name: "Second Wind", Source: "Fighter"},
			b:     &Feature{Name: "Action Surge", Source: "Fighter"},
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
		})
	}
}

func TestNewFeatureDef_Defaults(t *testing.T) {
	def := NewFeatureDef(FeatureConfig{})

	assert.Equal(t, "Generic Feature", def.Name)
	assert.Equal(t, "Unknown", def.Source)
	assert.Equal(t, FeatureKindStandard, def.Kind)
}

func TestNewFeatureDef_NormalizesOptionKeys(t *testing.T) {
	opt := &FeatureDef{Name: "Archery", Source: "Fighter"}
	def := NewFeatureDef(FeatureConfig{
		Name:    "Fighting Style",
		Source:  "Fighter",
		Kind:    FeatureKindSelector,
		Options: map[string]*FeatureDef{"Archery": opt},
	})

	_, ok := def.Options["archery"]
	assert.True(t, ok)
}

func TestFeatureDef_Instantiate(t *testing.T) {
	def := &FeatureDef{
		Name:        "Disciple of Life",
		Source:      "Cleric",
		SpellsKnown: []*Spell{{Name: "Guidance", Level: 0}},
	}

	feat := def.Instantiate(nil)
	require.Len(t, feat.SpellsKnown, 1)
	assert.Equal(t, "Disciple of Life", feat.Name)
	assert.Equal(t, "Cleric", feat.Source)

	// instance spells are fresh copies, never the definition's
	feat.SpellsKnown[0].SetConcentration(true)
	assert.False(t, def.SpellsKnown[0].Concentration())
}

func TestResolveSelector_FirstMatchWins(t *testing.T) {
	archery := &FeatureDef{Name: "Archery", Source: "Fighter"}
	defense := &FeatureDef{Name: "Defense", Source: "Fighter"}
	sel := &FeatureDef{
		Name:   "Fighting Style",
		Source: "Fighter",
		Kind:   FeatureKindSelector,
		Options: map[string]*FeatureDef{
			"archery": archery,
			"defense": defense,
		},
	}

	feat := ResolveSelector(sel, nil, []string{"defense", "archery"})
	require.NotNil(t, feat)
	assert.Equal(t, "Defense", feat.Name)
	assert.False(t, feat.NeedsImplementation)
}

func TestResolveSelector_CaseInsensitive(t *testing.T) {
	sel := &FeatureDef{
		Name:   "Fighting Style",
		Source: "Fighter",
		Kind:   FeatureKindSelector,
		Options: map[string]*FeatureDef{
			"great weapon fighting": {Name: "Great Weapon Fighting", Source: "Fighter"},
		},
	}

	feat := ResolveSelector(sel, nil, []string{"Great Weapon Fighting"})
	assert.Equal(t, "Great Weapon Fighting", feat.Name)
	assert.False(t, feat.NeedsImplementation)
}

func TestResolveSelector_StampsSourceFromSelector(t *testing.T) {
	sel := &FeatureDef{
		Name:   "Fighting Style",
		Source: "Paladin",
		Kind:   FeatureKindSelector,
		Options: map[string]*FeatureDef{
			"defense": {Name: "Defense", Source: "Fighter"},
		},
	}

	feat := ResolveSelector(sel, nil, []string{"defense"})
	assert.Equal(t, "Paladin", feat.Source)
}

func TestResolveSelector_NoMatchYieldsPlaceholder(t *testing.T) {
	sel := &FeatureDef{
		Name:        "Fighting Style",
		Source:      "Fighter",
		Description: "You adopt a particular style of fighting as your specialty.",
		Kind:        FeatureKindSelector,
		Options: map[string]*FeatureDef{
			"archery": {Name: "Archery", Source: "Fighter"},
		},
	}

	feat := ResolveSelector(sel, nil, []string{"flurry of blows"})
	require.NotNil(t, feat)
	assert.True(t, feat.NeedsImplementation)
	assert.Equal(t, "Fighting Style", feat.Name)
	assert.Equal(t, "Fighter", feat.Source)
	assert.Equal(t, sel.Description, feat.Description)
}

func TestResolveSelector_Deterministic(t *testing.T) {
	sel := &FeatureDef{
		Name:   "Fighting Style",
		Source: "Fighter",
		Kind:   FeatureKindSelector,
		Options: map[string]*FeatureDef{
			"archery":    {Name: "Archery", Source: "Fighter"},
			"defense":    {Name: "Defense", Source: "Fighter"},
			"protection": {Name: "Protection", Source: "Fighter"},
		},
	}
	choices := []string{"unknown style", "protection", "archery"}

	first := ResolveSelector(sel, nil, choices)
	for i := 0; i < 10; i++ {
		again := ResolveSelector(sel, nil, choices)
		assert.True(t, first.Equal(again))
		assert.Equal(t, "Protection", again.Name)
	}
}
