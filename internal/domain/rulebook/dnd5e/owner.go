package rulebook

//go:generate mockgen -destination=mock/mock_owner.go -package=mockrulebook -source=owner.go

// Owner is the character-side collaborator a class composition binds to.
// It answers feature-possession queries during selector de-duplication
// and records the composed class under its class name.
type Owner interface {
	// HasFeature reports whether the owner already holds a feature
	// matching the definition, by (name, source) identity.
	HasFeature(def *FeatureDef) bool

	// RegisterClass records a composed class under its class name.
	RegisterClass(name string, class *CharClass)
}
