package signature

import (
	"fmt"

	"git.home.luguber.info/inful/sigrender/internal/content"
	"git.home.luguber.info/inful/sigrender/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// projection recursively renders a type expression into inline content. The
// recursion is structural over a finite tree and always terminates. One ambient
// source set applies to the whole rendering.
func (p *Provider) projection(b *content.GroupBuilder, proj model.Projection, ss model.SourceSet) {
	switch t := proj.(type) {
	case model.TypeConstructor:
		if t.FunctionType {
			p.functionalType(b, t, ss)
			return
		}
		b.Link(t.DRI.ClassName(), t.DRI)
		content.List(b, t.Projections, "<", ">", ", ", func(b *content.GroupBuilder, arg model.Projection) {
			p.projection(b, arg, ss)
		})
	case model.TypeParameterRef:
		b.Link(t.Name, t.DRI)
	case model.Variance:
		b.Text(string(t.Kind) + " ")
		p.projection(b, t.Inner, ss)
	case model.Nullable:
		p.projection(b, t.Inner, ss)
		b.Text("?")
	case model.Star:
		b.Text("*")
	case model.JavaObject:
		b.Link(model.KotlinAny.ClassName(), model.KotlinAny)
	case model.Void:
		b.Link(model.KotlinUnit.ClassName(), model.KotlinUnit)
	case model.PrimitiveJavaType:
		p.projection(b, boxedPrimitive(t), ss)
	case model.Dynamic:
		b.Text("dynamic")
	case model.UnresolvedType:
		b.Text(t.Name)
	default:
		// The projection variant set is closed; a new variant must get a case here.
		panic(fmt.Sprintf("signature: unhandled projection variant %T", proj))
	}
}

// boxedPrimitive translates a host-language primitive to the target language's
// boxed equivalent: a capitalized type in the base namespace ("int" -> kotlin.Int).
func boxedPrimitive(t model.PrimitiveJavaType) model.TypeConstructor {
	return model.TypeConstructor{
		DRI: model.TypeDRI("kotlin", titleCaser.String(t.Name)),
	}
}

// functionalType renders a function type in arrow syntax. For extension function
// types the first argument is the receiver; the last argument is always the return
// type.
func (p *Provider) functionalType(b *content.GroupBuilder, t model.TypeConstructor, ss model.SourceSet) {
	args := t.Projections
	if t.ExtensionFunction && len(args) > 0 {
		p.projection(b, args[0], ss)
		b.Text(".")
		args = args[1:]
	}
	if len(args) == 0 {
		// A function type always carries at least a return type; an empty argument
		// list means the upstream model is malformed, validated there.
		return
	}
	params, ret := args[:len(args)-1], args[len(args)-1]
	b.Text("(")
	for i, param := range params {
		if i > 0 {
			b.Text(", ")
		}
		p.projection(b, param, ss)
	}
	b.Text(") -> ")
	p.projection(b, ret, ss)
}

// genericsList renders a generic parameter list, each parameter with its bounds.
func (p *Provider) genericsList(b *content.GroupBuilder, generics []*model.TypeParameter, ss model.SourceSet) {
	content.List(b, generics, "<", ">", ", ", func(b *content.GroupBuilder, tp *model.TypeParameter) {
		b.Link(tp.Name, tp.DRI)
		content.List(b, tp.Bounds, " : ", "", ", ", func(b *content.GroupBuilder, bound model.Projection) {
			p.projection(b, bound, ss)
		})
	})
}
