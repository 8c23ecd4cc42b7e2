package rulebook

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sheetforge/dnd5e/internal/errors"
)

// MaxClassLevel is the highest class level in 5e.
const MaxClassLevel = 20

// ClassDef is the static definition of a character class: its per-level
// features, proficiencies, spellcasting tables and available subclasses.
type ClassDef struct {
	Name                string `json:"name"`
	HitDiceFaces        int    `json:"hit_dice_faces"`
	SubclassSelectLevel int    `json:"subclass_select_level"`

	// FeaturesByLevel maps class level (1-20) to the features gained at
	// that level.
	FeaturesByLevel map[int][]*FeatureDef `json:"features_by_level,omitempty"`

	WeaponProficiencies           []string `json:"weapon_proficiencies,omitempty"`
	ProficienciesText             []string `json:"proficiencies_text,omitempty"`
	MulticlassWeaponProficiencies []string `json:"multiclass_weapon_proficiencies,omitempty"`
	MulticlassProficienciesText   []string `json:"multiclass_proficiencies_text,omitempty"`
	SavingThrowProficiencies      []string `json:"saving_throw_proficiencies,omitempty"`

	PrimaryAbilities  []string `json:"primary_abilities,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	ClassSkillChoices []string `json:"class_skill_choices,omitempty"`
	NumSkillChoices   int      `json:"num_skill_choices"`

	SpellcastingAbility string        `json:"spellcasting_ability,omitempty"`
	SpellSlotsByLevel   map[int][]int `json:"spell_slots_by_level,omitempty"`
	SpellsKnown         []*Spell      `json:"spells_known,omitempty"`
	SpellsPrepared      []*Spell      `json:"spells_prepared,omitempty"`

	SubclassesAvailable []*SubClassDef `json:"subclasses_available,omitempty"`
}

// Overrides carries per-character attribute overrides applied during
// class construction. Zero-valued fields leave the class definition's
// value in place.
type Overrides struct {
	HitDiceFaces        int
	SpellcastingAbility string
	SpellSlotsByLevel   map[int][]int
	WeaponProficiencies []string
	ProficienciesText   []string
}

// CharClassConfig configures class composition for one character.
type CharClassConfig struct {
	// Level is the class level, 1-20.
	Level int

	// Owner is the character the class attaches to. May be nil for
	// standalone composition.
	Owner Owner

	// Subclass selects a subclass by case-insensitive substring match
	// against the available subclass names. Empty or "none" selects no
	// subclass.
	Subclass string

	// FeatureChoices resolves selector features, in order.
	FeatureChoices []string

	Overrides *Overrides

	// Logger receives non-fatal composition diagnostics. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// CharClass is a character's class assignment at a given level, with its
// merged features, spells and proficiencies. Every collection is built
// fresh per instance; nothing aliases the class definition.
type CharClass struct {
	Name                string
	Level               int
	Owner               Owner
	HitDiceFaces        int
	SubclassSelectLevel int

	FeaturesByLevel map[int][]*Feature
	Subclass        *SubClass

	WeaponProficiencies           []string
	ProficienciesText             []string
	MulticlassWeaponProficiencies []string
	MulticlassProficienciesText   []string
	SavingThrowProficiencies      []string

	PrimaryAbilities  []string
	Languages         []string
	ClassSkillChoices []string
	NumSkillChoices   int

	SpellcastingAbility string
	SpellSlotsByLevel   map[int][]int
	SpellsKnown         []*Spell
	SpellsPrepared      []*Spell

	def    *ClassDef
	logger *slog.Logger
}

// NewCharClass composes a class for one character: it instantiates the
// per-level features (resolving selectors against the feature choices),
// applies overrides, copies the class spell lists, resolves the named
// subclass and merges it in.
func NewCharClass(def *ClassDef, cfg CharClassConfig) (*CharClass, error) {
	if def == nil {
		return nil, errors.New(errors.CodeInvalidArgument, "class definition cannot be nil")
	}
	if cfg.Level < 1 || cfg.Level > MaxClassLevel {
		return nil, errors.Newf(errors.CodeInvalidArgument, "class level %d out of range 1-%d", cfg.Level, MaxClassLevel)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cc := &CharClass{
		Name:                          def.Name,
		Level:                         cfg.Level,
		Owner:                         cfg.Owner,
		HitDiceFaces:                  def.HitDiceFaces,
		SubclassSelectLevel:           def.SubclassSelectLevel,
		FeaturesByLevel:               make(map[int][]*Feature, MaxClassLevel),
		WeaponProficiencies:           append([]string(nil), def.WeaponProficiencies...),
		ProficienciesText:             append([]string(nil), def.ProficienciesText...),
		MulticlassWeaponProficiencies: append([]string(nil), def.MulticlassWeaponProficiencies...),
		MulticlassProficienciesText:   append([]string(nil), def.MulticlassProficienciesText...),
		SavingThrowProficiencies:      append([]string(nil), def.SavingThrowProficiencies...),
		PrimaryAbilities:              append([]string(nil), def.PrimaryAbilities...),
		Languages:                     append([]string(nil), def.Languages...),
		ClassSkillChoices:             append([]string(nil), def.ClassSkillChoices...),
		NumSkillChoices:               def.NumSkillChoices,
		SpellcastingAbility:           def.SpellcastingAbility,
		SpellSlotsByLevel:             cloneSlotTable(def.SpellSlotsByLevel),
		def:                           def,
		logger:                        logger,
	}

	if cc.Owner != nil {
		cc.Owner.RegisterClass(cc.Name, cc)
	}

	for lvl := 1; lvl <= MaxClassLevel; lvl++ {
		features := make([]*Feature, 0, len(def.FeaturesByLevel[lvl]))
		for _, fd := range def.FeaturesByLevel[lvl] {
			feat := instantiateFeature(fd, cc.Owner, cfg.FeatureChoices)
			if feat.NeedsImplementation && !fd.NeedsImplementation {
				logger.Debug("feature choice unresolved",
					"class", cc.Name, "feature", fd.Name, "choices", cfg.FeatureChoices)
			}
			features = append(features, feat)
		}
		cc.FeaturesByLevel[lvl] = features
	}

	cc.applyOverrides(cfg.Overrides)

	cc.SpellsKnown = CloneSpells(def.SpellsKnown)
	cc.SpellsPrepared = CloneSpells(def.SpellsPrepared)

	cc.Subclass = cc.selectSubclass(cfg.Subclass)
	if cc.Subclass != nil {
		cc.applySubclass(cfg.FeatureChoices)
	}

	return cc, nil
}

func (cc *CharClass) applyOverrides(o *Overrides) {
	if o == nil {
		return
	}
	if o.HitDiceFaces != 0 {
		cc.HitDiceFaces = o.HitDiceFaces
	}
	if o.SpellcastingAbility != "" {
		cc.SpellcastingAbility = o.SpellcastingAbility
	}
	if o.SpellSlotsByLevel != nil {
		cc.SpellSlotsByLevel = o.SpellSlotsByLevel
	}
	if o.WeaponProficiencies != nil {
		cc.WeaponProficiencies = append([]string(nil), o.WeaponProficiencies...)
	}
	if o.ProficienciesText != nil {
		cc.ProficienciesText = append([]string(nil), o.ProficienciesText...)
	}
}

// selectSubclass resolves a subclass name against the class definition's
// available subclasses. Matching is a case-insensitive substring test so
// "champion" finds "Champion" and "life" finds "Life Domain". An
// unresolvable name is non-fatal: it logs a warning and the character
// proceeds without a subclass.
func (cc *CharClass) selectSubclass(name string) *SubClass {
	if name == "" || strings.EqualFold(name, "none") {
		return nil
	}
	needle := strings.ToLower(name)
	for _, sc := range cc.def.SubclassesAvailable {
		if strings.Contains(strings.ToLower(sc.Name), needle) {
			return sc.Instantiate(cc.Owner)
		}
	}
	cc.logger.Warn("could not find subclass", "class", cc.Name, "subclass", name)
	return nil
}

// applySubclass merges the resolved subclass into the class: subclass
// features are appended after the base features at each level, subclass
// proficiencies after the base proficiencies, and spellcasting stats are
// taken from the subclass only where the base class defines none.
func (cc *CharClass) applySubclass(featureChoices []string) {
	sub := cc.Subclass.Def

	for lvl := 1; lvl <= MaxClassLevel; lvl++ {
		for _, fd := range sub.FeaturesByLevel[lvl] {
			cc.FeaturesByLevel[lvl] = append(cc.FeaturesByLevel[lvl], instantiateFeature(fd, cc.Owner, featureChoices))
		}
	}

	cc.WeaponProficiencies = append(cc.WeaponProficiencies, sub.WeaponProficiencies...)
	cc.ProficienciesText = append(cc.ProficienciesText, sub.ProficienciesText...)

	// All subclass proficiencies transfer regardless of whether this is
	// the character's primary class.
	cc.MulticlassWeaponProficiencies = append(cc.MulticlassWeaponProficiencies, sub.WeaponProficiencies...)
	cc.MulticlassProficienciesText = append(cc.MulticlassProficienciesText, sub.ProficienciesText...)

	if cc.SpellcastingAbility == "" {
		cc.SpellcastingAbility = sub.SpellcastingAbility
	}
	if cc.SpellSlotsByLevel == nil {
		cc.SpellSlotsByLevel = cloneSlotTable(sub.SpellSlotsByLevel)
	}

	cc.SpellsKnown = append(cc.SpellsKnown, CloneSpells(sub.SpellsKnown)...)
	cc.SpellsPrepared = append(cc.SpellsPrepared, CloneSpells(sub.SpellsPrepared)...)
}

// cloneSlotTable copies a slot table so instances never alias the class
// definition's table.
func cloneSlotTable(table map[int][]int) map[int][]int {
	if table == nil {
		return nil
	}
	out := make(map[int][]int, len(table))
	for lvl, slots := range table {
		out[lvl] = append([]int(nil), slots...)
	}
	return out
}

// Features returns every feature gained at or below the class level, in
// level order.
func (cc *CharClass) Features() []*Feature {
	var features []*Feature
	for lvl := 1; lvl <= cc.Level; lvl++ {
		features = append(features, cc.FeaturesByLevel[lvl]...)
	}
	return features
}

// IsSpellcaster reports whether the class casts spells, either on its
// own or through its subclass.
func (cc *CharClass) IsSpellcaster() bool {
	return cc.SpellcastingAbility != ""
}

// SpellSlots returns the number of slots available for the given spell
// level at the current class level. Classes without a slot table have
// zero slots at every level. Indexing outside the table is a caller
// error.
func (cc *CharClass) SpellSlots(spellLevel int) int {
	if cc.SpellSlotsByLevel == nil {
		return 0
	}
	return cc.SpellSlotsByLevel[cc.Level][spellLevel]
}

// String renders the class for display, e.g. "Level 3 Fighter (Champion)".
func (cc *CharClass) String() string {
	s := fmt.Sprintf("Level %d %s", cc.Level, cc.Name)
	if cc.Subclass != nil {
		s += fmt.Sprintf(" (%s)", cc.Subclass.Name())
	}
	return s
}
