package character

import (
	"fmt"
	"strings"

	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
	"github.com/sheetforge/dnd5e/internal/uuid"
)

// Character is the aggregate the composition engine attaches classes to.
// It holds class compositions in an explicit registration map and
// answers feature-possession queries for selector de-duplication.
type Character struct {
	ID   string
	Name string

	// Classes maps class name to the composed class. Classes register
	// themselves here during composition; classOrder preserves
	// registration order for display and leveling.
	Classes    map[string]*rulebook.CharClass
	classOrder []string

	// Features granted outside class composition (race, background).
	Features []*rulebook.Feature
}

// NewCharacter creates a character with a generated ID.
func NewCharacter(name string) *Character {
	return NewCharacterWithGenerator(name, uuid.NewGoogleUUIDGenerator())
}

// NewCharacterWithGenerator creates a character using the given ID
// generator (for tests).
func NewCharacterWithGenerator(name string, gen uuid.Generator) *Character {
	return &Character{
		ID:      gen.New(),
		Name:    name,
		Classes: make(map[string]*rulebook.CharClass),
	}
}

// RegisterClass records a composed class under its class name. A class
// re-registered under the same name replaces the previous composition.
func (c *Character) RegisterClass(name string, class *rulebook.CharClass) {
	if _, exists := c.Classes[name]; !exists {
		c.classOrder = append(c.classOrder, name)
	}
	c.Classes[name] = class
}

// Class returns the composed class registered under the given name.
func (c *Character) Class(name string) (*rulebook.CharClass, bool) {
	class, ok := c.Classes[name]
	return class, ok
}

// ClassList returns the composed classes in registration order.
func (c *Character) ClassList() []*rulebook.CharClass {
	out := make([]*rulebook.CharClass, 0, len(c.classOrder))
	for _, name := range c.classOrder {
		out = append(out, c.Classes[name])
	}
	return out
}

// AddFeature grants a feature outside class composition (race or
// background). Duplicate grants are skipped.
func (c *Character) AddFeature(feat *rulebook.Feature) {
	for _, existing := range c.Features {
		if existing.Equal(feat) {
			return
		}
	}
	c.Features = append(c.Features, feat)
}

// HasFeature reports whether the character already holds a feature
// matching the definition, across directly-granted features and every
// registered class.
func (c *Character) HasFeature(def *rulebook.FeatureDef) bool {
	for _, feat := range c.Features {
		if feat.Matches(def) {
			return true
		}
	}
	for _, class := range c.Classes {
		for _, feat := range class.Features() {
			if feat.Matches(def) {
				return true
			}
		}
	}
	return false
}

// AllFeatures returns directly-granted features followed by every class
// feature, classes in registration order.
func (c *Character) AllFeatures() []*rulebook.Feature {
	features := append([]*rulebook.Feature(nil), c.Features...)
	for _, class := range c.ClassList() {
		features = append(features, class.Features()...)
	}
	return features
}

// Level returns total character level, summed across classes.
func (c *Character) Level() int {
	total := 0
	for _, class := range c.Classes {
		total += class.Level
	}
	return total
}

// IsSpellcaster reports whether any registered class casts spells.
func (c *Character) IsSpellcaster() bool {
	for _, class := range c.Classes {
		if class.IsSpellcaster() {
			return true
		}
	}
	return false
}

// String renders the character for display, e.g.
// "Tordek (Level 3 Fighter (Champion))".
func (c *Character) String() string {
	if len(c.classOrder) == 0 {
		return c.Name
	}
	parts := make([]string, 0, len(c.classOrder))
	for _, class := range c.ClassList() {
		parts = append(parts, class.String())
	}
	return fmt.Sprintf("%s (%s)", c.Name, strings.Join(parts, " / "))
}
