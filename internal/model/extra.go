package model

// ExtraKey identifies an optional fact in the extra-properties bag.
type ExtraKey string

const (
	KeyActualTypealias       ExtraKey = "actual_typealias"
	KeyPrimaryConstructor    ExtraKey = "primary_constructor"
	KeyEnumConstructorValues ExtraKey = "enum_constructor_values"
	KeyDeprecated            ExtraKey = "deprecated"
	KeyDescription           ExtraKey = "description"
)

// ExtraProperty is an optional, typed fact attached to a documentable beyond its
// core shape. Each concrete property maps to exactly one ExtraKey.
type ExtraProperty interface {
	ExtraKey() ExtraKey
}

// Extra is the open side-table of extra properties on a documentable. A nil Extra
// behaves as empty.
type Extra map[ExtraKey]ExtraProperty

// WithExtra returns a copy of the bag with p stored under its key. Input bags are
// never mutated; documentables are read-only once built.
func (e Extra) WithExtra(p ExtraProperty) Extra {
	out := make(Extra, len(e)+1)
	for k, v := range e {
		out[k] = v
	}
	out[p.ExtraKey()] = p
	return out
}

// Lookup retrieves a typed extra property from the bag. The second result is false
// when the property is absent or stored under a mismatched type.
func Lookup[T ExtraProperty](e Extra) (T, bool) {
	var zero T
	v, ok := e[zero.ExtraKey()]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// ActualTypealias records that a class-like is an actual declaration aliasing a type,
// with the aliased type possibly differing per source set (expect/actual model).
type ActualTypealias struct {
	Underlying map[SourceSet]Projection
}

func (ActualTypealias) ExtraKey() ExtraKey { return KeyActualTypealias }

// PrimaryConstructor marks a constructor as the primary one of its class.
type PrimaryConstructor struct{}

func (PrimaryConstructor) ExtraKey() ExtraKey { return KeyPrimaryConstructor }

// EnumConstructorValues records the literal constructor argument expressions of an
// enum entry, per source set. Values are pre-rendered literals and emitted verbatim.
type EnumConstructorValues struct {
	Values map[SourceSet][]string
}

func (EnumConstructorValues) ExtraKey() ExtraKey { return KeyEnumConstructorValues }

// Deprecated records which source sets a documentable is deprecated for.
type Deprecated struct {
	SourceSets map[SourceSet]bool
}

func (Deprecated) ExtraKey() ExtraKey { return KeyDeprecated }

// Description is the raw markdown doc comment of a documentable. Conversion to
// content is the comment-converter collaborator's job.
type Description struct {
	Markdown string
}

func (Description) ExtraKey() ExtraKey { return KeyDescription }

// IsDeprecated reports whether the documentable is marked deprecated for ss.
func IsDeprecated(e Extra, ss SourceSet) bool {
	dep, ok := Lookup[Deprecated](e)
	return ok && dep.SourceSets[ss]
}
