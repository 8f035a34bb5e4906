package content

import "git.home.luguber.info/inful/sigrender/internal/model"

// Builder is the content-construction capability injected into the signature
// renderer. Implementations must be reentrant: independent Block calls may run
// concurrently.
type Builder interface {
	// Block builds a block-level group for one declaration, scoped to the given
	// source sets. fn receives a fresh GroupBuilder; the returned node is immutable.
	Block(owner model.DRI, scope []model.SourceSet, styles StyleSet, fn func(*GroupBuilder)) Node
	// Inline builds an inline group with no block flag.
	Inline(owner model.DRI, scope []model.SourceSet, fn func(*GroupBuilder)) Node
}

// TreeBuilder is the default Builder. It allocates a fresh node tree per call and
// keeps no state between calls.
type TreeBuilder struct{}

// NewTreeBuilder returns the default content builder.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

func (tb *TreeBuilder) Block(owner model.DRI, scope []model.SourceSet, styles StyleSet, fn func(*GroupBuilder)) Node {
	gb := &GroupBuilder{owner: owner, scope: scope}
	fn(gb)
	return Group{
		meta:     meta{owner: owner, scope: scope, styles: styles.With(StyleBlock)},
		Children: gb.children,
	}
}

func (tb *TreeBuilder) Inline(owner model.DRI, scope []model.SourceSet, fn func(*GroupBuilder)) Node {
	gb := &GroupBuilder{owner: owner, scope: scope}
	fn(gb)
	return Group{
		meta:     meta{owner: owner, scope: scope},
		Children: gb.children,
	}
}

// GroupBuilder accumulates child nodes for one group. It is handed to builder
// callbacks and must not be retained after the callback returns.
type GroupBuilder struct {
	owner    model.DRI
	scope    []model.SourceSet
	children []Node
}

// Text appends a literal text node. Empty strings are dropped.
func (b *GroupBuilder) Text(s string) {
	if s == "" {
		return
	}
	b.children = append(b.children, Text{
		meta:  meta{owner: b.owner, scope: b.scope},
		Value: s,
	})
}

// Link appends a navigable link node.
func (b *GroupBuilder) Link(text string, address model.DRI) {
	b.children = append(b.children, Link{
		meta:    meta{owner: b.owner, scope: b.scope},
		Text:    text,
		Address: address,
	})
}

// Group appends a styled child group built by fn.
func (b *GroupBuilder) Group(styles StyleSet, fn func(*GroupBuilder)) {
	gb := &GroupBuilder{owner: b.owner, scope: b.scope}
	fn(gb)
	b.children = append(b.children, Group{
		meta:     meta{owner: b.owner, scope: b.scope, styles: styles},
		Children: gb.children,
	})
}

// ScopedGroup appends a child group restricted to a narrower source-set scope.
func (b *GroupBuilder) ScopedGroup(scope []model.SourceSet, fn func(*GroupBuilder)) {
	gb := &GroupBuilder{owner: b.owner, scope: scope}
	fn(gb)
	b.children = append(b.children, Group{
		meta:     meta{owner: b.owner, scope: scope},
		Children: gb.children,
	})
}

// SourceSetText emits, for every source set in the builder's scope that has an
// entry in values, a text node scoped to that source set alone. Source sets without
// an entry contribute nothing.
func (b *GroupBuilder) SourceSetText(values map[model.SourceSet]string) {
	for _, ss := range b.scope {
		v, ok := values[ss]
		if !ok || v == "" {
			continue
		}
		b.children = append(b.children, Text{
			meta:  meta{owner: b.owner, scope: []model.SourceSet{ss}},
			Value: v,
		})
	}
}

// List renders items surrounded by prefix/suffix and joined by separator. An empty
// item slice emits nothing at all, prefix and suffix included.
func List[T any](b *GroupBuilder, items []T, prefix, suffix, separator string, fn func(*GroupBuilder, T)) {
	if len(items) == 0 {
		return
	}
	b.Text(prefix)
	for i, item := range items {
		if i > 0 {
			b.Text(separator)
		}
		fn(b, item)
	}
	b.Text(suffix)
}
