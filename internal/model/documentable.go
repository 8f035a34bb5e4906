// Package model defines the documentable data model the signature renderer consumes:
// declarations with per-source-set variance, type-expression projections, modifier and
// visibility values, and the open extra-properties side table.
//
// All values are owned by the upstream model-construction stage and treated as
// read-only here. The variant sets (documentable kinds, projection kinds) are closed;
// consumers dispatch with exhaustive type switches.
package model

import "git.home.luguber.info/inful/sigrender/internal/foundation"

// Documentable is a modeled declaration with per-platform variance. The concrete
// variants are *Class, *Function, *Property, *TypeAlias, *EnumEntry and
// *TypeParameter; no other implementations exist.
type Documentable interface {
	// DeclarationName is the simple declared name.
	DeclarationName() string
	// Identity is the unique identity reference of the declaration.
	Identity() DRI
	// DefinedIn lists the source sets the declaration exists in, in declaration
	// order. Rendering emits output in this order.
	DefinedIn() []SourceSet

	isDocumentable()
}

// ClassKind discriminates the class-like flavors.
type ClassKind string

const (
	ClassKindClass           ClassKind = "class"
	ClassKindInterface       ClassKind = "interface"
	ClassKindEnum            ClassKind = "enum"
	ClassKindObject          ClassKind = "object"
	ClassKindAnnotationClass ClassKind = "annotation class"
)

// Annotation is an annotation applied to a declaration or parameter. Only
// must-be-documented annotations appear in rendered signatures.
type Annotation struct {
	DRI              DRI
	Arguments        []string
	MustBeDocumented bool
}

// Parameter is a value parameter (or receiver) of a function, constructor or
// property accessor.
type Parameter struct {
	Name           string
	Type           Projection
	Annotations    map[SourceSet][]Annotation
	ExtraModifiers map[SourceSet][]ExtraModifier
}

// Class is a class-like declaration: class, interface, enum, object or annotation
// class. Supertypes, visibility and modifiers vary per source set.
type Class struct {
	Name           string
	DRI            DRI
	Kind           ClassKind
	SourceSets     []SourceSet
	Constructors   []*Function
	Generics       []*TypeParameter
	Supertypes     map[SourceSet][]TypeConstructor
	Visibility     map[SourceSet]Visibility
	Modifier       map[SourceSet]Modifier
	ExtraModifiers map[SourceSet][]ExtraModifier
	Annotations    map[SourceSet][]Annotation
	Extra          Extra
}

// Function is a function or constructor.
type Function struct {
	Name           string
	DRI            DRI
	IsConstructor  bool
	SourceSets     []SourceSet
	Receiver       *Parameter
	Parameters     []*Parameter
	ReturnType     Projection
	Generics       []*TypeParameter
	Visibility     map[SourceSet]Visibility
	Modifier       map[SourceSet]Modifier
	ExtraModifiers map[SourceSet][]ExtraModifier
	Annotations    map[SourceSet][]Annotation
	Extra          Extra
}

// Property is a val/var declaration; HasSetter selects the var form.
type Property struct {
	Name           string
	DRI            DRI
	SourceSets     []SourceSet
	HasSetter      bool
	Receiver       *Parameter
	Type           Projection
	Generics       []*TypeParameter
	Visibility     map[SourceSet]Visibility
	Modifier       map[SourceSet]Modifier
	ExtraModifiers map[SourceSet][]ExtraModifier
	Annotations    map[SourceSet][]Annotation
	Extra          Extra
}

// TypeAlias is a typealias declaration; the underlying type may differ per source
// set and identical values are merged at render time.
type TypeAlias struct {
	Name           string
	DRI            DRI
	SourceSets     []SourceSet
	UnderlyingType map[SourceSet]Projection
	Generics       []*TypeParameter
	Visibility     map[SourceSet]Visibility
	Extra          Extra
}

// EnumEntry is one entry of an enum class. Literal constructor argument values, when
// recorded, live in the extra bag under EnumConstructorValues.
type EnumEntry struct {
	Name       string
	DRI        DRI
	SourceSets []SourceSet
	Extra      Extra
}

// TypeParameter is a generic parameter declaration. It appears both standalone (as a
// documentable) and inside the Generics list of its owner.
type TypeParameter struct {
	Name       string
	DRI        DRI
	SourceSets []SourceSet
	Bounds     []Projection
	Extra      Extra
}

func (c *Class) DeclarationName() string         { return c.Name }
func (c *Class) Identity() DRI                   { return c.DRI }
func (c *Class) DefinedIn() []SourceSet          { return c.SourceSets }
func (c *Class) isDocumentable()                 {}
func (f *Function) DeclarationName() string      { return f.Name }
func (f *Function) Identity() DRI                { return f.DRI }
func (f *Function) DefinedIn() []SourceSet       { return f.SourceSets }
func (f *Function) isDocumentable()              {}
func (p *Property) DeclarationName() string      { return p.Name }
func (p *Property) Identity() DRI                { return p.DRI }
func (p *Property) DefinedIn() []SourceSet       { return p.SourceSets }
func (p *Property) isDocumentable()              {}
func (t *TypeAlias) DeclarationName() string     { return t.Name }
func (t *TypeAlias) Identity() DRI               { return t.DRI }
func (t *TypeAlias) DefinedIn() []SourceSet      { return t.SourceSets }
func (t *TypeAlias) isDocumentable()             {}
func (e *EnumEntry) DeclarationName() string     { return e.Name }
func (e *EnumEntry) Identity() DRI               { return e.DRI }
func (e *EnumEntry) DefinedIn() []SourceSet      { return e.SourceSets }
func (e *EnumEntry) isDocumentable()             {}
func (t *TypeParameter) DeclarationName() string { return t.Name }
func (t *TypeParameter) Identity() DRI           { return t.DRI }
func (t *TypeParameter) DefinedIn() []SourceSet  { return t.SourceSets }
func (t *TypeParameter) isDocumentable()         {}

// PrimaryConstructorOf returns the constructor flagged as primary, when the class
// has one.
func PrimaryConstructorOf(c *Class) foundation.Option[*Function] {
	for _, ctor := range c.Constructors {
		if _, ok := Lookup[PrimaryConstructor](ctor.Extra); ok {
			return foundation.Some(ctor)
		}
	}
	return foundation.None[*Function]()
}

// ExtraOf returns the extra-properties bag of any documentable variant.
func ExtraOf(d Documentable) Extra {
	switch t := d.(type) {
	case *Class:
		return t.Extra
	case *Function:
		return t.Extra
	case *Property:
		return t.Extra
	case *TypeAlias:
		return t.Extra
	case *EnumEntry:
		return t.Extra
	case *TypeParameter:
		return t.Extra
	default:
		return nil
	}
}

// KindOf names the declaration kind for logs and metrics labels.
func KindOf(d Documentable) string {
	switch d.(type) {
	case *Class:
		return "class"
	case *Function:
		return "function"
	case *Property:
		return "property"
	case *TypeAlias:
		return "typealias"
	case *EnumEntry:
		return "enum_entry"
	case *TypeParameter:
		return "type_parameter"
	default:
		return "unknown"
	}
}
