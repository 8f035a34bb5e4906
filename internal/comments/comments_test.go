package comments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sigrender/internal/content"
	"git.home.luguber.info/inful/sigrender/internal/model"
)

var (
	owner = model.TypeDRI("demo", "Foo")
	scope = []model.SourceSet{{Name: "jvmMain", Platform: model.PlatformJVM}}
)

func convert(t *testing.T, comment string) content.Node {
	t.Helper()
	node, err := NewGoldmarkConverter(nil).Convert([]byte(comment), owner, scope)
	require.NoError(t, err)
	return node
}

func TestConvertPlainText(t *testing.T) {
	node := convert(t, "Stores things.")
	require.Equal(t, "Stores things.", content.Flatten(node))
	require.Equal(t, owner, node.Owner())
	require.Equal(t, scope, node.Scope())
}

func TestConvertEmphasis(t *testing.T) {
	node := convert(t, "a *b* **c**")
	require.Equal(t, "a b c", content.Flatten(node))

	require.NotNil(t, findStyled(node, content.StyleItalic), "single emphasis maps to italic")
	require.NotNil(t, findStyled(node, content.StyleBold), "double emphasis maps to bold")
}

func TestConvertCodeSpan(t *testing.T) {
	node := convert(t, "call `render()` first")
	require.Equal(t, "call render() first", content.Flatten(node))

	mono := findStyled(node, content.StyleMonospace)
	require.NotNil(t, mono)
	require.Equal(t, "render()", content.Flatten(mono))
}

func TestConvertLinkKeepsLabel(t *testing.T) {
	node := convert(t, "see [the docs](https://example.com)")
	require.Equal(t, "see the docs", content.Flatten(node))
}

func TestConvertParagraphBreak(t *testing.T) {
	node := convert(t, "first\n\nsecond")
	require.Equal(t, "first\nsecond", content.Flatten(node))
}

func TestConvertSoftLineBreak(t *testing.T) {
	node := convert(t, "one\ntwo")
	require.Equal(t, "one two", content.Flatten(node))
}

func TestConvertEmptyComment(t *testing.T) {
	node := convert(t, "")
	require.Equal(t, "", content.Flatten(node))
}

// findStyled returns the first descendant group carrying the style, or nil.
func findStyled(n content.Node, style content.Style) content.Node {
	group, ok := n.(content.Group)
	if !ok {
		return nil
	}
	for _, child := range group.Children {
		if child.Styles().Has(style) {
			return child
		}
		if found := findStyled(child, style); found != nil {
			return found
		}
	}
	return nil
}
