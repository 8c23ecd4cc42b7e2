package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpell_Equal(t *testing.T) {
	tests := []struct {
		name  string
		a     *Spell
		b     *Spell
		equal bool
	}{
		{
			name:  "same name and level",
			a:     &Spell{Name: "Bless", Level: 1},
			b:     &Spell{Name: "Bless", Level: 1},
			equal: true,
		},
		{
			name:  "other attributes do not participate",
			a:     &Spell{Name: "Bless", Level: 1, Ritual: true, Duration: "1 hour"},
			b:     &Spell{Name: "Bless", Level: 1},
			equal: true,
		},
		{
			name:  "different level",
			a:     &Spell{Name: "Bless", Level: 1},
			b:     &Spell{Name: "Bless", Level: 2},
			equal: false,
		},
		{
			name:  "different name",
			a:     &Spell{Name: "Bless", Level: 1},
			b:     &Spell{Name: "Bane", Level: 1},
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestSpell_Concentration(t *testing.T) {
	spell := &Spell{Name: "Hold Person", Duration: "Concentration, up to 1 minute"}
	assert.True(t, spell.Concentration(), "derived from duration text")

	spell = &Spell{Name: "Mage Armor", Duration: "8 hours"}
	assert.False(t, spell.Concentration())

	spell.SetConcentration(true)
	assert.True(t, spell.Concentration(), "explicit override wins")
}

func TestSpell_ComponentString(t *testing.T) {
	spell := &Spell{
		Components: []string{"V", "S", "M"},
		Materials:  "a sprinkling of holy water",
	}
	assert.Equal(t, "V, S, M (a sprinkling of holy water)", spell.ComponentString())

	spell = &Spell{Components: []string{"V", "S"}}
	assert.Equal(t, "V, S", spell.ComponentString())
}

func TestSpell_SpecialMaterial(t *testing.T) {
	spell := &Spell{Materials: "a pearl worth at least 100 gp"}
	assert.True(t, spell.SpecialMaterial())

	spell = &Spell{Materials: "a piece of cured leather"}
	assert.False(t, spell.SpecialMaterial())
}

func TestSpell_String(t *testing.T) {
	spell := &Spell{
		Name:       "Identify",
		Components: []string{"V", "S", "M"},
		Materials:  "a pearl worth at least 100 gp",
		Ritual:     true,
	}
	assert.Equal(t, "Identify (V/S/M/R/$)", spell.String())

	spell = &Spell{Name: "Divine Intervention"}
	assert.Equal(t, "Divine Intervention", spell.String())
}

func TestNewSpell_Defaults(t *testing.T) {
	spell := NewSpell(SpellConfig{})

	assert.Equal(t, UnknownSpellName, spell.Name)
	assert.Equal(t, MaxSpellLevel, spell.Level)
	assert.Equal(t, "1 action", spell.CastingTime)
	assert.Equal(t, "60 ft", spell.CastingRange)
	assert.Equal(t, "instantaneous", spell.Duration)
}

func TestNewSpell_ZeroLevelIsACantrip(t *testing.T) {
	level := 0
	spell := NewSpell(SpellConfig{Name: "Light", Level: &level})
	assert.Equal(t, 0, spell.Level)
}

func TestNewSpell_InstancesAreIndependent(t *testing.T) {
	first := NewSpell(SpellConfig{Name: "Moonbeam"})
	second := NewSpell(SpellConfig{Name: "Sunbeam"})

	first.SetConcentration(true)
	assert.False(t, second.Concentration())
	assert.Equal(t, "Sunbeam", second.Name)
}

func TestSpell_Clone(t *testing.T) {
	original := &Spell{
		Name:       "Bless",
		Level:      1,
		Components: []string{"V", "S", "M"},
		Duration:   "1 minute",
	}

	clone := original.Clone()
	require.NotSame(t, original, clone)
	assert.True(t, original.Equal(clone))

	clone.SetConcentration(true)
	clone.Components[0] = "S"
	assert.False(t, original.Concentration())
	assert.Equal(t, "V", original.Components[0])
}
