package sheet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetforge/dnd5e/internal/domain/character"
	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
	"github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e/srd"
	"github.com/sheetforge/dnd5e/internal/sheet"
	"github.com/sheetforge/dnd5e/internal/uuid"
)

func TestRender_Fighter(t *testing.T) {
	char := character.NewCharacterWithGenerator("Tordek", &uuid.FixedGenerator{ID: "c1"})
	_, err := rulebook.NewCharClass(srd.Fighter, rulebook.CharClassConfig{
		Level:          3,
		Owner:          char,
		Subclass:       "champion",
		FeatureChoices: []string{"archery"},
	})
	require.NoError(t, err)

	out := sheet.NewRenderer(72).Render(char)

	assert.Contains(t, out, "Tordek (Level 3 Fighter (Champion))")
	assert.Contains(t, out, "Hit dice: 3d10")
	assert.Contains(t, out, "- Archery (Fighter)")
	assert.Contains(t, out, "- Improved Critical (Fighter)")
	assert.NotContains(t, out, "Spellcasting", "fighters do not cast")
}

func TestRender_MarksUnresolvedChoices(t *testing.T) {
	char := character.NewCharacterWithGenerator("Tordek", &uuid.FixedGenerator{ID: "c1"})
	_, err := rulebook.NewCharClass(srd.Fighter, rulebook.CharClassConfig{
		Level: 1,
		Owner: char,
	})
	require.NoError(t, err)

	out := sheet.NewRenderer(72).Render(char)
	assert.Contains(t, out, "- Fighting Style (Fighter) [unresolved]")
}

func TestRender_Spellcaster(t *testing.T) {
	char := character.NewCharacterWithGenerator("Mira", &uuid.FixedGenerator{ID: "c2"})
	_, err := rulebook.NewCharClass(srd.Cleric, rulebook.CharClassConfig{
		Level:    3,
		Owner:    char,
		Subclass: "life",
	})
	require.NoError(t, err)

	out := sheet.NewRenderer(72).Render(char)

	assert.Contains(t, out, "Spellcasting (Wisdom)")
	assert.Contains(t, out, "Slots: 4/2/-/-/-/-/-/-/-")
	assert.Contains(t, out, "Spells prepared:")
	assert.Contains(t, out, "Bless (V/S/M/C)")
}

func TestRender_TruncatesLongLines(t *testing.T) {
	char := character.NewCharacterWithGenerator(strings.Repeat("x", 100), &uuid.FixedGenerator{ID: "c3"})
	out := sheet.NewRenderer(40).Render(char)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 40)
	}
}
