package model

import "git.home.luguber.info/inful/sigrender/internal/foundation"

// Visibility is a per-source-set visibility level. A value is meaningful only
// together with the source set it was recorded for.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityPrivate   Visibility = "private"
	VisibilityProtected Visibility = "protected"
	VisibilityInternal  Visibility = "internal"
	// VisibilityPackagePrivate is the Java default visibility; it has no keyword in
	// the target rendering convention and is never emitted.
	VisibilityPackagePrivate Visibility = "package-private"
	VisibilityEmpty          Visibility = ""
)

// Modifier is a per-source-set finality/openness modifier.
type Modifier string

const (
	ModifierFinal    Modifier = "final"
	ModifierOpen     Modifier = "open"
	ModifierAbstract Modifier = "abstract"
	ModifierSealed   Modifier = "sealed"
	// ModifierEmpty models Java's absence of a finality modifier. Java members
	// without "final" are overridable, so the target rendering convention shows them
	// as "open". This mapping encodes observed compatibility behavior and is kept
	// as-is.
	ModifierEmpty Modifier = "empty"
)

// ExtraModifier is a language-specific modifier beyond visibility and finality.
type ExtraModifier string

const (
	ExtraModifierInline      ExtraModifier = "inline"
	ExtraModifierInfix       ExtraModifier = "infix"
	ExtraModifierSuspend     ExtraModifier = "suspend"
	ExtraModifierOperator    ExtraModifier = "operator"
	ExtraModifierTailrec     ExtraModifier = "tailrec"
	ExtraModifierExternal    ExtraModifier = "external"
	ExtraModifierOverride    ExtraModifier = "override"
	ExtraModifierData        ExtraModifier = "data"
	ExtraModifierInner       ExtraModifier = "inner"
	ExtraModifierFun         ExtraModifier = "fun"
	ExtraModifierActual      ExtraModifier = "actual"
	ExtraModifierExpect      ExtraModifier = "expect"
	ExtraModifierConst       ExtraModifier = "const"
	ExtraModifierLateinit    ExtraModifier = "lateinit"
	ExtraModifierReified     ExtraModifier = "reified"
	ExtraModifierVararg      ExtraModifier = "vararg"
	ExtraModifierCrossinline ExtraModifier = "crossinline"
	ExtraModifierNoinline    ExtraModifier = "noinline"
)

// KnownExtraModifiers lists every extra modifier the renderer understands.
func KnownExtraModifiers() []ExtraModifier {
	return []ExtraModifier{
		ExtraModifierInline, ExtraModifierInfix, ExtraModifierSuspend,
		ExtraModifierOperator, ExtraModifierTailrec, ExtraModifierExternal,
		ExtraModifierOverride, ExtraModifierData, ExtraModifierInner,
		ExtraModifierFun, ExtraModifierActual, ExtraModifierExpect,
		ExtraModifierConst, ExtraModifierLateinit, ExtraModifierReified,
		ExtraModifierVararg, ExtraModifierCrossinline, ExtraModifierNoinline,
	}
}

// Token returns the rendered keyword for a modifier, applying the Java
// empty-modifier-to-open substitution.
func (m Modifier) Token() string {
	if m == ModifierEmpty {
		return string(ModifierOpen)
	}
	return string(m)
}

// Normalizers used when parsing rule tables and model files. Unknown names map to
// the zero value; callers that need strict parsing use NormalizeWithError.

func ExtraModifierNormalizer() *foundation.Normalizer[ExtraModifier] {
	values := make(map[string]ExtraModifier)
	for _, m := range KnownExtraModifiers() {
		values[string(m)] = m
	}
	return foundation.NewNormalizer(values, ExtraModifier(""))
}

func PlatformNormalizer() *foundation.Normalizer[Platform] {
	values := make(map[string]Platform)
	for _, p := range KnownPlatforms() {
		values[string(p)] = p
	}
	return foundation.NewNormalizer(values, Platform(""))
}

func VisibilityNormalizer() *foundation.Normalizer[Visibility] {
	return foundation.NewNormalizer(map[string]Visibility{
		"public":          VisibilityPublic,
		"private":         VisibilityPrivate,
		"protected":       VisibilityProtected,
		"internal":        VisibilityInternal,
		"package-private": VisibilityPackagePrivate,
	}, VisibilityEmpty)
}

func ModifierNormalizer() *foundation.Normalizer[Modifier] {
	return foundation.NewNormalizer(map[string]Modifier{
		"final":    ModifierFinal,
		"open":     ModifierOpen,
		"abstract": ModifierAbstract,
		"sealed":   ModifierSealed,
		"empty":    ModifierEmpty,
	}, ModifierFinal)
}
