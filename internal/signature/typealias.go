package signature

import (
	"git.home.luguber.info/inful/sigrender/internal/content"
	"git.home.luguber.info/inful/sigrender/internal/model"
)

// typeAliasSignatures renders type aliases grouped by underlying type: source sets
// sharing an identical underlying type produce a single block scoped to all of them
// jointly, so near-identical signature blocks are not repeated. Source sets with
// distinct underlying types never share a block.
func (p *Provider) typeAliasSignatures(ta *model.TypeAlias) []content.Node {
	groups := model.GroupSourceSetsByProjection(ta.SourceSets, ta.UnderlyingType)
	nodes := make([]content.Node, 0, len(groups))
	for _, group := range groups {
		ss := group[0]
		nodes = append(nodes, p.builder.Block(ta.DRI, group, blockStyles(ta.Extra, ss), func(b *content.GroupBuilder) {
			p.visibilityToken(b, ta.Visibility, ss)
			b.Text("typealias ")
			b.Link(ta.Name, ta.DRI)
			p.genericsList(b, ta.Generics, ss)
			b.Text(" = ")
			p.projection(b, ta.UnderlyingType[ss], ss)
		}))
	}
	return nodes
}

// enumEntrySignatures renders one block per source set: the entry name linked, with
// recorded literal constructor arguments appended parenthesized when present.
func (p *Provider) enumEntrySignatures(e *model.EnumEntry) []content.Node {
	values, _ := model.Lookup[model.EnumConstructorValues](e.Extra)
	nodes := make([]content.Node, 0, len(e.SourceSets))
	for _, ss := range e.SourceSets {
		nodes = append(nodes, p.builder.Block(e.DRI, []model.SourceSet{ss}, blockStyles(e.Extra, ss), func(b *content.GroupBuilder) {
			b.Link(e.Name, e.DRI)
			content.List(b, values.Values[ss], "(", ")", ", ", func(b *content.GroupBuilder, v string) {
				b.Text(v)
			})
		}))
	}
	return nodes
}

// typeParameterSignature renders a standalone type parameter: its name linked to
// the declaration site, with bounds appended when present. Unlike the other kinds
// it yields a single node covering all its source sets.
func (p *Provider) typeParameterSignature(tp *model.TypeParameter) content.Node {
	ss := ambientSourceSet(tp.SourceSets)
	styles := content.NewStyleSet(content.StyleMonospace, content.StyleBlock)
	if model.IsDeprecated(tp.Extra, ss) {
		styles = styles.With(content.StyleStrikethrough)
	}
	return p.builder.Block(tp.DRI, tp.SourceSets, styles, func(b *content.GroupBuilder) {
		b.Link(tp.Name, tp.DRI)
		content.List(b, tp.Bounds, " : ", "", ", ", func(b *content.GroupBuilder, bound model.Projection) {
			p.projection(b, bound, ss)
		})
	})
}

// ambientSourceSet picks the source set used for bound rendering of a standalone
// type parameter. Bounds do not vary per source set, any declared one serves.
func ambientSourceSet(sets []model.SourceSet) model.SourceSet {
	if len(sets) == 0 {
		return model.SourceSet{}
	}
	return sets[0]
}
