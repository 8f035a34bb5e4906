package signature

import (
	"git.home.luguber.info/inful/sigrender/internal/content"
	"git.home.luguber.info/inful/sigrender/internal/model"
)

// propertySignatures renders one block per source set the property is defined for.
func (p *Provider) propertySignatures(prop *model.Property) []content.Node {
	nodes := make([]content.Node, 0, len(prop.SourceSets))
	for _, ss := range prop.SourceSets {
		nodes = append(nodes, p.propertySignature(prop, ss))
	}
	return nodes
}

func (p *Provider) propertySignature(prop *model.Property, ss model.SourceSet) content.Node {
	return p.builder.Block(prop.DRI, []model.SourceSet{ss}, blockStyles(prop.Extra, ss), func(b *content.GroupBuilder) {
		p.annotationsBlock(b, prop.Annotations, ss)
		p.visibilityToken(b, prop.Visibility, ss)
		p.modifierToken(b, prop.Modifier, ss)
		p.extraModifierTokens(b, prop.ExtraModifiers, ss)
		if prop.HasSetter {
			b.Text("var ")
		} else {
			b.Text("val ")
		}
		p.genericsList(b, prop.Generics, ss)
		if len(prop.Generics) > 0 {
			b.Text(" ")
		}
		if prop.Receiver != nil {
			p.projection(b, prop.Receiver.Type, ss)
			b.Text(".")
		}
		b.Link(prop.Name, prop.DRI)
		b.Text(": ")
		p.projection(b, prop.Type, ss)
	})
}
