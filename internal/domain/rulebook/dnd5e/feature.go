package rulebook

import "strings"

// FeatureKind distinguishes plain features from selector features that
// resolve a player choice into one of several concrete options.
type FeatureKind string

const (
	FeatureKindStandard FeatureKind = "standard"
	FeatureKindSelector FeatureKind = "selector"
)

// FeatureDef is the static definition of a feature, declared once per
// ruleset. Instances are created per character via Instantiate or
// ResolveSelector.
type FeatureDef struct {
	Name        string      `json:"name"`
	Source      string      `json:"source"` // originating class/race/background
	Description string      `json:"description"`
	Kind        FeatureKind `json:"kind"`

	// Options maps lowercase option names to concrete feature
	// definitions. Only meaningful for selector features.
	Options map[string]*FeatureDef `json:"options,omitempty"`

	// NeedsImplementation marks incomplete rule data.
	NeedsImplementation bool `json:"needs_implementation,omitempty"`

	// Spells granted by holding this feature.
	SpellsKnown    []*Spell `json:"spells_known,omitempty"`
	SpellsPrepared []*Spell `json:"spells_prepared,omitempty"`
}

// FeatureConfig configures an ad-hoc feature definition for rules not
// yet catalogued.
type FeatureConfig struct {
	Name                string
	Source              string
	Description         string
	Kind                FeatureKind
	Options             map[string]*FeatureDef
	NeedsImplementation bool
	SpellsKnown         []*Spell
	SpellsPrepared      []*Spell
}

// NewFeatureDef builds a feature definition from the given config.
// Unset name and source fall back to generic placeholders, and option
// keys are normalized to lowercase.
func NewFeatureDef(cfg FeatureConfig) *FeatureDef {
	def := &FeatureDef{
		Name:                cfg.Name,
		Source:              cfg.Source,
		Description:         cfg.Description,
		Kind:                cfg.Kind,
		NeedsImplementation: cfg.NeedsImplementation,
		SpellsKnown:         CloneSpells(cfg.SpellsKnown),
		SpellsPrepared:      CloneSpells(cfg.SpellsPrepared),
	}
	if def.Name == "" {
		def.Name = "Generic Feature"
	}
	if def.Source == "" {
		def.Source = "Unknown"
	}
	if def.Kind == "" {
		def.Kind = FeatureKindStandard
	}
	if len(cfg.Options) > 0 {
		def.Options = make(map[string]*FeatureDef, len(cfg.Options))
		for name, opt := range cfg.Options {
			def.Options[strings.ToLower(name)] = opt
		}
	}
	return def
}

// Feature is a character-owned instance of a FeatureDef.
type Feature struct {
	Name                string
	Source              string
	Description         string
	NeedsImplementation bool

	// Owner is a back-reference to the character holding the feature,
	// not an ownership relation.
	Owner Owner

	SpellsKnown    []*Spell
	SpellsPrepared []*Spell
}

// Instantiate creates a character-owned instance of the definition with
// fresh copies of any granted spells.
func (d *FeatureDef) Instantiate(owner Owner) *Feature {
	return &Feature{
		Name:                d.Name,
		Source:              d.Source,
		Description:         d.Description,
		NeedsImplementation: d.NeedsImplementation,
		Owner:               owner,
		SpellsKnown:         CloneSpells(d.SpellsKnown),
		SpellsPrepared:      CloneSpells(d.SpellsPrepared),
	}
}

// Equal reports whether two features are the same grant. Identity is
// (name, source).
func (f *Feature) Equal(other *Feature) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Name == other.Name && f.Source == other.Source
}

// Matches reports whether this feature instance corresponds to the given
// definition, by the same (name, source) identity.
func (f *Feature) Matches(def *FeatureDef) bool {
	if f == nil || def == nil {
		return false
	}
	return f.Name == def.Name && f.Source == def.Source
}

// String returns the feature name.
func (f *Feature) String() string {
	return f.Name
}

// ResolveSelector resolves a selector feature against an ordered list of
// free-text choices. The first choice whose lowercase form names an
// option wins; options the owner already holds are skipped so repeated
// selection stays idempotent. The resolved feature's source is stamped
// from the selector. If no choice matches, a placeholder carrying the
// selector's name and source is returned with NeedsImplementation set.
func ResolveSelector(sel *FeatureDef, owner Owner, featureChoices []string) *Feature {
	for _, choice := range featureChoices {
		opt, ok := sel.Options[strings.ToLower(choice)]
		if !ok {
			continue
		}
		if owner != nil && owner.HasFeature(opt) {
			continue
		}
		feat := opt.Instantiate(owner)
		feat.Source = sel.Source
		return feat
	}
	return &Feature{
		Name:                sel.Name,
		Source:              sel.Source,
		Description:         sel.Description,
		NeedsImplementation: true,
		Owner:               owner,
	}
}

// instantiateFeature is the single dispatch point for turning a
// definition into an owned instance, resolving selectors as needed.
func instantiateFeature(def *FeatureDef, owner Owner, featureChoices []string) *Feature {
	if def.Kind == FeatureKindSelector {
		return ResolveSelector(def, owner, featureChoices)
	}
	return def.Instantiate(owner)
}
