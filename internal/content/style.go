package content

// Style is a presentation flag attached to a content node. Styles are advisory;
// downstream writers decide how each one is realized.
type Style string

const (
	StyleMonospace     Style = "monospace"
	StyleBlock         Style = "block"
	StyleStrikethrough Style = "strikethrough"
	StyleBold          Style = "bold"
	StyleItalic        Style = "italic"
	StyleIndented      Style = "indented"
)

// StyleSet is an immutable-by-convention set of styles. With returns extended
// copies; callers never mutate a set they received.
type StyleSet map[Style]struct{}

// NewStyleSet builds a set from the given styles.
func NewStyleSet(styles ...Style) StyleSet {
	set := make(StyleSet, len(styles))
	for _, s := range styles {
		set[s] = struct{}{}
	}
	return set
}

// Has reports whether the set contains s.
func (ss StyleSet) Has(s Style) bool {
	_, ok := ss[s]
	return ok
}

// With returns a copy of the set extended with the given styles.
func (ss StyleSet) With(styles ...Style) StyleSet {
	out := make(StyleSet, len(ss)+len(styles))
	for s := range ss {
		out[s] = struct{}{}
	}
	for _, s := range styles {
		out[s] = struct{}{}
	}
	return out
}
