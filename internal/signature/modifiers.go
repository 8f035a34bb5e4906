package signature

import (
	"git.home.luguber.info/inful/sigrender/internal/content"
	"git.home.luguber.info/inful/sigrender/internal/model"
)

// visibilityToken renders the visibility keyword for one source set, or nothing
// when the value equals the language's implicit default.
func (p *Provider) visibilityToken(b *content.GroupBuilder, vis map[model.SourceSet]model.Visibility, ss model.SourceSet) {
	v, ok := vis[ss]
	if !ok || !p.rules.ShowVisibility(v) {
		return
	}
	b.Text(string(v) + " ")
}

// modifierToken renders the finality modifier for one source set. Values equal to
// the implicit default are suppressed; Java's absent modifier renders as "open"
// (Modifier.Token applies the substitution).
func (p *Provider) modifierToken(b *content.GroupBuilder, mods map[model.SourceSet]model.Modifier, ss model.SourceSet) {
	m, ok := mods[ss]
	if !ok || !p.rules.ShowModifier(m) {
		return
	}
	b.Text(m.Token() + " ")
}

// filteredExtraModifiers applies the two-level rule: a modifier in the global
// ignore set still renders when the source set's platform is in its allow-list.
func (p *Provider) filteredExtraModifiers(mods map[model.SourceSet][]model.ExtraModifier, ss model.SourceSet) []model.ExtraModifier {
	all := mods[ss]
	if len(all) == 0 {
		return nil
	}
	out := make([]model.ExtraModifier, 0, len(all))
	for _, m := range all {
		if p.rules.ShowExtraModifier(m, ss.Platform) {
			out = append(out, m)
		}
	}
	return out
}

// extraModifierTokens renders filtered extra modifiers, each followed by a space.
func (p *Provider) extraModifierTokens(b *content.GroupBuilder, mods map[model.SourceSet][]model.ExtraModifier, ss model.SourceSet) {
	for _, m := range p.filteredExtraModifiers(mods, ss) {
		b.Text(string(m) + " ")
	}
}

// annotationsBlock renders must-be-documented annotations, one per line, before a
// declaration.
func (p *Provider) annotationsBlock(b *content.GroupBuilder, anns map[model.SourceSet][]model.Annotation, ss model.SourceSet) {
	for _, ann := range anns[ss] {
		if !ann.MustBeDocumented {
			continue
		}
		p.annotation(b, ann)
		b.Text("\n")
	}
}

// annotationsInline renders must-be-documented annotations separated by spaces, as
// used on parameters and constructors.
func (p *Provider) annotationsInline(b *content.GroupBuilder, anns map[model.SourceSet][]model.Annotation, ss model.SourceSet) {
	for _, ann := range anns[ss] {
		if !ann.MustBeDocumented {
			continue
		}
		p.annotation(b, ann)
		b.Text(" ")
	}
}

func (p *Provider) annotation(b *content.GroupBuilder, ann model.Annotation) {
	b.Text("@")
	b.Link(ann.DRI.ClassName(), ann.DRI)
	content.List(b, ann.Arguments, "(", ")", ", ", func(b *content.GroupBuilder, arg string) {
		b.Text(arg)
	})
}
