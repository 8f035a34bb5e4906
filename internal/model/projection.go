package model

import (
	"fmt"
	"sort"
	"strings"
)

// Projection is a type-expression tree node. The set of variants is closed: the
// renderer dispatches over it with a type switch and treats an unknown variant as a
// programming defect. Trees are finite; rendering recurses structurally and always
// terminates.
type Projection interface {
	isProjection()
}

// TypeConstructor is a named type reference, possibly with generic arguments.
// When FunctionType is set the reference is rendered in arrow syntax instead of the
// generic Function<N> form; ExtensionFunction additionally marks the first argument
// as the receiver.
type TypeConstructor struct {
	DRI               DRI
	Projections       []Projection
	FunctionType      bool
	ExtensionFunction bool
}

// TypeParameterRef points back at a generic parameter declared on an enclosing
// documentable.
type TypeParameterRef struct {
	DRI  DRI
	Name string
}

// VarianceKind is a declaration-site variance keyword.
type VarianceKind string

const (
	VarianceIn  VarianceKind = "in"
	VarianceOut VarianceKind = "out"
)

// Variance wraps an inner type with a variance keyword.
type Variance struct {
	Kind  VarianceKind
	Inner Projection
}

// Nullable wraps an inner type with the nullability marker.
type Nullable struct {
	Inner Projection
}

// Star is the wildcard projection.
type Star struct{}

// JavaObject is the host-language universal top type; it renders as the target
// language's top type (Any).
type JavaObject struct{}

// Void is the host-language unit/void type; it renders as the target language's
// unit type (Unit).
type Void struct{}

// PrimitiveJavaType is a host-language primitive (int, boolean, ...). It is
// translated to the target language's boxed equivalent before rendering.
type PrimitiveJavaType struct {
	Name string
}

// Dynamic is the untyped placeholder of dynamic platforms.
type Dynamic struct{}

// UnresolvedType is a reference the upstream resolver could not bind; it renders as
// plain unlinked text.
type UnresolvedType struct {
	Name string
}

func (TypeConstructor) isProjection()   {}
func (TypeParameterRef) isProjection()  {}
func (Variance) isProjection()          {}
func (Nullable) isProjection()          {}
func (Star) isProjection()              {}
func (JavaObject) isProjection()        {}
func (Void) isProjection()              {}
func (PrimitiveJavaType) isProjection() {}
func (Dynamic) isProjection()           {}
func (UnresolvedType) isProjection()    {}

// ProjectionKey returns a canonical structural key for a projection. Two projections
// produce the same key iff they describe the same type expression; type-alias
// rendering uses this to merge source sets that share an identical underlying type.
func ProjectionKey(p Projection) string {
	switch t := p.(type) {
	case TypeConstructor:
		var sb strings.Builder
		sb.WriteString("ctor:")
		sb.WriteString(t.DRI.String())
		if t.FunctionType {
			sb.WriteString("!fn")
		}
		if t.ExtensionFunction {
			sb.WriteString("!ext")
		}
		for _, arg := range t.Projections {
			sb.WriteByte('[')
			sb.WriteString(ProjectionKey(arg))
			sb.WriteByte(']')
		}
		return sb.String()
	case TypeParameterRef:
		return "param:" + t.DRI.String() + ":" + t.Name
	case Variance:
		return "variance:" + string(t.Kind) + "[" + ProjectionKey(t.Inner) + "]"
	case Nullable:
		return "nullable[" + ProjectionKey(t.Inner) + "]"
	case Star:
		return "star"
	case JavaObject:
		return "javaobject"
	case Void:
		return "void"
	case PrimitiveJavaType:
		return "primitive:" + t.Name
	case Dynamic:
		return "dynamic"
	case UnresolvedType:
		return "unresolved:" + t.Name
	default:
		// The variant set is closed; reaching this is a defect in this package.
		panic(fmt.Sprintf("model: unhandled projection variant %T", p))
	}
}

// GroupSourceSetsByProjection partitions source sets by the structural key of their
// projection value, preserving first-appearance order of both groups and members.
func GroupSourceSetsByProjection(order []SourceSet, values map[SourceSet]Projection) [][]SourceSet {
	keyOrder := make([]string, 0, len(order))
	groups := make(map[string][]SourceSet, len(order))
	for _, ss := range order {
		p, ok := values[ss]
		if !ok {
			continue
		}
		key := ProjectionKey(p)
		if _, seen := groups[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		groups[key] = append(groups[key], ss)
	}
	out := make([][]SourceSet, 0, len(keyOrder))
	for _, key := range keyOrder {
		out = append(out, groups[key])
	}
	return out
}

// SortSourceSets orders source sets by name then platform. Used where a stable order
// is needed but no declaration order exists.
func SortSourceSets(sets []SourceSet) {
	sort.Slice(sets, func(i, j int) bool {
		if sets[i].Name != sets[j].Name {
			return sets[i].Name < sets[j].Name
		}
		return sets[i].Platform < sets[j].Platform
	})
}
