// Package content defines the styled, platform-scoped content tree the signature
// renderer produces, and the builder API used to construct it. Nodes are immutable
// once built and freshly allocated per build; the builder holds no shared mutable
// state and is safe for concurrent use on independent inputs.
package content

import "git.home.luguber.info/inful/sigrender/internal/model"

// Node is one node of the output content tree: plain text, a navigable link, or a
// group of child nodes. Every node carries the identity it was rendered for, the
// source sets it applies to, and its style flags.
type Node interface {
	// Owner is the identity reference of the declaration the node belongs to.
	Owner() model.DRI
	// Scope lists the source sets the node applies to.
	Scope() []model.SourceSet
	// Styles returns the node's presentation flags.
	Styles() StyleSet

	isNode()
}

// meta carries the fields shared by every node variant.
type meta struct {
	owner  model.DRI
	scope  []model.SourceSet
	styles StyleSet
}

func (m meta) Owner() model.DRI         { return m.owner }
func (m meta) Scope() []model.SourceSet { return m.scope }
func (m meta) Styles() StyleSet         { return m.styles }

// Text is a literal text node.
type Text struct {
	meta
	Value string
}

// Link is a navigable reference to another declaration.
type Link struct {
	meta
	Text    string
	Address model.DRI
}

// Group composes child nodes under shared metadata.
type Group struct {
	meta
	Children []Node
}

func (Text) isNode()  {}
func (Link) isNode()  {}
func (Group) isNode() {}
