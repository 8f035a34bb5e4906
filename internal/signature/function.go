package signature

import (
	"git.home.luguber.info/inful/sigrender/internal/content"
	"git.home.luguber.info/inful/sigrender/internal/model"
)

// functionSignatures renders one block per source set the function is defined for.
func (p *Provider) functionSignatures(f *model.Function) []content.Node {
	nodes := make([]content.Node, 0, len(f.SourceSets))
	for _, ss := range f.SourceSets {
		nodes = append(nodes, p.functionSignature(f, ss))
	}
	return nodes
}

func (p *Provider) functionSignature(f *model.Function, ss model.SourceSet) content.Node {
	return p.builder.Block(f.DRI, []model.SourceSet{ss}, blockStyles(f.Extra, ss), func(b *content.GroupBuilder) {
		p.annotationsBlock(b, f.Annotations, ss)
		p.visibilityToken(b, f.Visibility, ss)
		p.modifierToken(b, f.Modifier, ss)
		p.extraModifierTokens(b, f.ExtraModifiers, ss)
		b.Text("fun ")
		p.genericsList(b, f.Generics, ss)
		if len(f.Generics) > 0 {
			b.Text(" ")
		}
		if f.Receiver != nil {
			p.projection(b, f.Receiver.Type, ss)
			b.Text(".")
		}
		b.Link(f.Name, f.DRI)
		b.Text("(")
		for i, param := range f.Parameters {
			if i > 0 {
				b.Text(", ")
			}
			p.parameter(b, param, ss)
		}
		b.Text(")")
		if f.IsConstructor || isUnitType(f.ReturnType) {
			return
		}
		b.Text(": ")
		p.projection(b, f.ReturnType, ss)
	})
}

// isUnitType reports whether a return type renders as the unit type and is
// therefore omitted from function signatures.
func isUnitType(proj model.Projection) bool {
	switch t := proj.(type) {
	case nil:
		return true
	case model.Void:
		return true
	case model.TypeConstructor:
		return t.DRI == model.KotlinUnit
	default:
		return false
	}
}
