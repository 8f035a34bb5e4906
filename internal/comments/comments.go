// Package comments converts documentation comments (markdown) into content nodes.
// The signature core treats this as an opaque collaborator; only the CLI output
// path drives it today.
package comments

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/sigrender/internal/content"
	"git.home.luguber.info/inful/sigrender/internal/model"
)

// Converter turns a markdown doc comment into an inline content node scoped to the
// given source sets.
type Converter interface {
	Convert(comment []byte, owner model.DRI, scope []model.SourceSet) (content.Node, error)
}

// GoldmarkConverter is the default Converter, built on the goldmark parser.
type GoldmarkConverter struct {
	builder content.Builder
}

// NewGoldmarkConverter creates a converter emitting through the given builder; a
// nil builder gets the default tree builder.
func NewGoldmarkConverter(builder content.Builder) *GoldmarkConverter {
	if builder == nil {
		builder = content.NewTreeBuilder()
	}
	return &GoldmarkConverter{builder: builder}
}

// Convert parses the comment and flattens its inline structure into text, bold and
// italic groups plus link nodes. Block structure beyond paragraph breaks is not
// preserved; signatures only ever show short summaries.
func (c *GoldmarkConverter) Convert(comment []byte, owner model.DRI, scope []model.SourceSet) (content.Node, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(comment))

	node := c.builder.Inline(owner, scope, func(b *content.GroupBuilder) {
		renderChildren(b, root, comment)
	})
	return node, nil
}

func renderChildren(b *content.GroupBuilder, parent gmast.Node, source []byte) {
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		renderNode(b, child, source)
	}
}

func renderNode(b *content.GroupBuilder, n gmast.Node, source []byte) {
	switch node := n.(type) {
	case *gmast.Text:
		b.Text(string(node.Segment.Value(source)))
		if node.SoftLineBreak() || node.HardLineBreak() {
			b.Text(" ")
		}
	case *gmast.Paragraph:
		renderChildren(b, node, source)
		if node.NextSibling() != nil {
			b.Text("\n")
		}
	case *gmast.Emphasis:
		style := content.StyleItalic
		if node.Level >= 2 {
			style = content.StyleBold
		}
		b.Group(content.NewStyleSet(style), func(b *content.GroupBuilder) {
			renderChildren(b, node, source)
		})
	case *gmast.Link:
		// Doc-comment links point outside the documentable model; keep the label
		// as plain text and let downstream writers resolve destinations.
		renderChildren(b, node, source)
	case *gmast.CodeSpan:
		b.Group(content.NewStyleSet(content.StyleMonospace), func(b *content.GroupBuilder) {
			renderChildren(b, node, source)
		})
	case *gmast.AutoLink:
		b.Text(string(node.URL(source)))
	default:
		renderChildren(b, n, source)
	}
}
