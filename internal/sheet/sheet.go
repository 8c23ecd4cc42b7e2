// Package sheet renders a composed character as plain text for terminal
// display.
package sheet

import (
	"fmt"
	"strings"

	"github.com/sheetforge/dnd5e/internal/domain/character"
	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
)

// Renderer writes plain-text character sheets.
type Renderer struct {
	width int
}

// NewRenderer creates a renderer with the given column width.
func NewRenderer(width int) *Renderer {
	return &Renderer{width: width}
}

// Render produces the full sheet for a character.
func (r *Renderer) Render(c *character.Character) string {
	var b strings.Builder

	r.rule(&b)
	r.line(&b, c.String())
	r.rule(&b)

	for _, class := range c.ClassList() {
		r.renderClass(&b, class)
	}

	if feats := c.Features; len(feats) > 0 {
		r.line(&b, "Other Features")
		for _, feat := range feats {
			r.feature(&b, feat)
		}
		r.rule(&b)
	}

	return b.String()
}

func (r *Renderer) renderClass(b *strings.Builder, class *rulebook.CharClass) {
	r.line(b, class.String())
	r.line(b, fmt.Sprintf("Hit dice: %dd%d", class.Level, class.HitDiceFaces))

	if len(class.ProficienciesText) > 0 {
		r.line(b, "Proficiencies: "+strings.Join(class.ProficienciesText, ", "))
	}
	if len(class.SavingThrowProficiencies) > 0 {
		r.line(b, "Saving throws: "+strings.Join(class.SavingThrowProficiencies, ", "))
	}

	r.line(b, "Features")
	for _, feat := range class.Features() {
		r.feature(b, feat)
	}

	if class.IsSpellcaster() {
		r.line(b, "Spellcasting ("+class.SpellcastingAbility+")")
		r.line(b, "Slots: "+r.slotString(class))
		if len(class.SpellsKnown) > 0 {
			r.line(b, "Spells known: "+spellList(class.SpellsKnown))
		}
		if len(class.SpellsPrepared) > 0 {
			r.line(b, "Spells prepared: "+spellList(class.SpellsPrepared))
		}
	}

	r.rule(b)
}

func (r *Renderer) feature(b *strings.Builder, feat *rulebook.Feature) {
	suffix := ""
	if feat.NeedsImplementation {
		suffix = " [unresolved]"
	}
	r.line(b, fmt.Sprintf("  - %s (%s)%s", feat.Name, feat.Source, suffix))
}

// slotString renders the slot counts for spell levels 1-9 at the class's
// current level, e.g. "4/3/2/-/-/-/-/-/-".
func (r *Renderer) slotString(class *rulebook.CharClass) string {
	parts := make([]string, 0, rulebook.MaxSpellLevel)
	for lvl := 1; lvl <= rulebook.MaxSpellLevel; lvl++ {
		n := class.SpellSlots(lvl)
		if n == 0 {
			parts = append(parts, "-")
			continue
		}
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	return strings.Join(parts, "/")
}

func spellList(spells []*rulebook.Spell) string {
	parts := make([]string, len(spells))
	for i, s := range spells {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ")
}

func (r *Renderer) line(b *strings.Builder, s string) {
	if len(s) > r.width {
		s = s[:r.width-3] + "..."
	}
	b.WriteString(s)
	b.WriteString("\n")
}

func (r *Renderer) rule(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", r.width))
	b.WriteString("\n")
}
