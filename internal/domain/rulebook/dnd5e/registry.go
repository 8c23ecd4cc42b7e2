package rulebook

import (
	"iter"
	"strings"
	"sync"

	"github.com/sheetforge/dnd5e/internal/errors"
)

// SpellRegistry manages the static catalog of spell definitions.
// It is populated at load time and read-only afterwards.
type SpellRegistry struct {
	mu     sync.RWMutex
	byName map[string]*Spell
	order  []string
}

// NewSpellRegistry creates an empty spell registry.
func NewSpellRegistry() *SpellRegistry {
	return &SpellRegistry{byName: make(map[string]*Spell)}
}

// Register adds a spell to the registry, keyed by lowercase name.
func (r *SpellRegistry) Register(spell *Spell) error {
	if spell == nil {
		return errors.New(errors.CodeInvalidArgument, "spell cannot be nil")
	}
	if spell.Name == "" {
		return errors.New(errors.CodeInvalidArgument, "spell name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(spell.Name)
	if _, exists := r.byName[key]; exists {
		return errors.Newf(errors.CodeAlreadyExists, "spell %s already registered", spell.Name)
	}
	r.byName[key] = spell
	r.order = append(r.order, key)
	return nil
}

// Get retrieves a spell by name, case-insensitively.
func (r *SpellRegistry) Get(name string) (*Spell, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spell, exists := r.byName[strings.ToLower(name)]
	return spell, exists
}

// All enumerates every registered spell in registration order. The
// sequence is finite and restartable.
func (r *SpellRegistry) All() iter.Seq[*Spell] {
	return func(yield func(*Spell) bool) {
		r.mu.RLock()
		keys := append([]string(nil), r.order...)
		r.mu.RUnlock()
		for _, key := range keys {
			r.mu.RLock()
			spell := r.byName[key]
			r.mu.RUnlock()
			if !yield(spell) {
				return
			}
		}
	}
}

// Len returns the number of registered spells.
func (r *SpellRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// FeatureRegistry manages the static catalog of feature definitions.
type FeatureRegistry struct {
	mu     sync.RWMutex
	byName map[string]*FeatureDef
	order  []string
}

// NewFeatureRegistry creates an empty feature registry.
func NewFeatureRegistry() *FeatureRegistry {
	return &FeatureRegistry{byName: make(map[string]*FeatureDef)}
}

// Register adds a feature definition, keyed by lowercase name.
func (r *FeatureRegistry) Register(def *FeatureDef) error {
	if def == nil {
		return errors.New(errors.CodeInvalidArgument, "feature cannot be nil")
	}
	if def.Name == "" {
		return errors.New(errors.CodeInvalidArgument, "feature name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(def.Name)
	if _, exists := r.byName[key]; exists {
		return errors.Newf(errors.CodeAlreadyExists, "feature %s already registered", def.Name)
	}
	r.byName[key] = def
	r.order = append(r.order, key)
	return nil
}

// Get retrieves a feature definition by name, case-insensitively.
func (r *FeatureRegistry) Get(name string) (*FeatureDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.byName[strings.ToLower(name)]
	return def, exists
}

// All enumerates every registered feature definition in registration
// order. The sequence is finite and restartable.
func (r *FeatureRegistry) All() iter.Seq[*FeatureDef] {
	return func(yield func(*FeatureDef) bool) {
		r.mu.RLock()
		keys := append([]string(nil), r.order...)
		r.mu.RUnlock()
		for _, key := range keys {
			r.mu.RLock()
			def := r.byName[key]
			r.mu.RUnlock()
			if !yield(def) {
				return
			}
		}
	}
}

// Len returns the number of registered feature definitions.
func (r *FeatureRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Spells is the process-wide spell catalog.
var Spells = NewSpellRegistry()

// Features is the process-wide feature catalog.
var Features = NewFeatureRegistry()

// AllSpells enumerates the process-wide spell catalog.
func AllSpells() iter.Seq[*Spell] { return Spells.All() }

// AllFeatures enumerates the process-wide feature catalog.
func AllFeatures() iter.Seq[*FeatureDef] { return Features.All() }
