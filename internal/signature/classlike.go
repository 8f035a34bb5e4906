package signature

import (
	"git.home.luguber.info/inful/sigrender/internal/content"
	"git.home.luguber.info/inful/sigrender/internal/model"
)

// classSignatures renders one block per source set the class-like is defined for.
// A class carrying the actual-typealias fact renders as an alias instead of a class
// body, merged across source sets sharing the aliased type.
func (p *Provider) classSignatures(c *model.Class) []content.Node {
	if alias, ok := model.Lookup[model.ActualTypealias](c.Extra); ok {
		return p.actualTypealiasSignatures(c, alias)
	}
	nodes := make([]content.Node, 0, len(c.SourceSets))
	for _, ss := range c.SourceSets {
		nodes = append(nodes, p.classSignature(c, ss))
	}
	return nodes
}

func (p *Provider) classSignature(c *model.Class, ss model.SourceSet) content.Node {
	return p.builder.Block(c.DRI, []model.SourceSet{ss}, blockStyles(c.Extra, ss), func(b *content.GroupBuilder) {
		p.annotationsBlock(b, c.Annotations, ss)
		p.visibilityToken(b, c.Visibility, ss)
		// Interfaces and the other non-class kinds carry no finality token; in
		// particular Java interfaces never show the host-language method modifiers.
		if c.Kind == model.ClassKindClass {
			p.modifierToken(b, c.Modifier, ss)
		}
		p.extraModifierTokens(b, c.ExtraModifiers, ss)
		b.Text(string(c.Kind) + " ")
		b.Link(c.Name, c.DRI)
		p.genericsList(b, c.Generics, ss)
		p.primaryConstructorTail(b, c, ss)
		p.supertypesTail(b, c, ss)
	})
}

// primaryConstructorTail renders the primary constructor's parameter list. When the
// constructor itself carries documented annotations, they render inline followed by
// the word "constructor".
func (p *Provider) primaryConstructorTail(b *content.GroupBuilder, c *model.Class, ss model.SourceSet) {
	ctor, ok := model.PrimaryConstructorOf(c).Get()
	if !ok {
		return
	}
	if hasDocumentedAnnotations(ctor.Annotations[ss]) {
		b.Text(" ")
		p.annotationsInline(b, ctor.Annotations, ss)
		b.Text("constructor")
	}
	content.List(b, ctor.Parameters, "(", ")", ", ", func(b *content.GroupBuilder, param *model.Parameter) {
		p.parameter(b, param, ss)
	})
}

// supertypesTail renders " : " and the supertype links declared for this source set
// only; supertypes of other source sets never leak in.
func (p *Provider) supertypesTail(b *content.GroupBuilder, c *model.Class, ss model.SourceSet) {
	content.List(b, c.Supertypes[ss], " : ", "", ", ", func(b *content.GroupBuilder, st model.TypeConstructor) {
		b.Link(st.DRI.ClassName(), st.DRI)
	})
}

// actualTypealiasSignatures renders "actual typealias <name> = <aliased type>" per
// group of source sets sharing an identical aliased type.
func (p *Provider) actualTypealiasSignatures(c *model.Class, alias model.ActualTypealias) []content.Node {
	groups := model.GroupSourceSetsByProjection(c.SourceSets, alias.Underlying)
	nodes := make([]content.Node, 0, len(groups))
	for _, group := range groups {
		ss := group[0]
		nodes = append(nodes, p.builder.Block(c.DRI, group, blockStyles(c.Extra, ss), func(b *content.GroupBuilder) {
			b.Text("actual typealias ")
			b.Link(c.Name, c.DRI)
			b.Text(" = ")
			p.projection(b, alias.Underlying[ss], ss)
		}))
	}
	return nodes
}

// parameter renders one value parameter: inline annotations, extra modifiers,
// "name: Type".
func (p *Provider) parameter(b *content.GroupBuilder, param *model.Parameter, ss model.SourceSet) {
	p.annotationsInline(b, param.Annotations, ss)
	p.extraModifierTokens(b, param.ExtraModifiers, ss)
	if param.Name != "" {
		b.Text(param.Name + ": ")
	}
	p.projection(b, param.Type, ss)
}

func hasDocumentedAnnotations(anns []model.Annotation) bool {
	for _, ann := range anns {
		if ann.MustBeDocumented {
			return true
		}
	}
	return false
}
