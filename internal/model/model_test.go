package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDRIString(t *testing.T) {
	cases := []struct {
		name string
		dri  DRI
		want string
	}{
		{"package only", DRI{PackageName: "kotlin"}, "kotlin"},
		{"type", TypeDRI("kotlin", "Int"), "kotlin/Int"},
		{"nested type", DRI{PackageName: "demo", ClassNames: "Outer.Inner"}, "demo/Outer.Inner"},
		{"callable", DRI{PackageName: "demo", ClassNames: "Foo", Callable: "bar"}, "demo/Foo#bar"},
		{"top-level callable", DRI{PackageName: "demo", Callable: "baz"}, "demo#baz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.dri.String())
		})
	}
}

func TestDRIClassName(t *testing.T) {
	require.Equal(t, "Inner", DRI{ClassNames: "Outer.Inner"}.ClassName())
	require.Equal(t, "Foo", DRI{ClassNames: "Foo"}.ClassName())
	require.Equal(t, "", DRI{}.ClassName())
}

func TestExtraBag(t *testing.T) {
	jvm := SourceSet{Name: "jvmMain", Platform: PlatformJVM}

	var extra Extra
	_, ok := Lookup[Deprecated](extra)
	require.False(t, ok, "empty bag has no entries")

	extra = extra.WithExtra(Deprecated{SourceSets: map[SourceSet]bool{jvm: true}})
	extra = extra.WithExtra(Description{Markdown: "does things"})

	dep, ok := Lookup[Deprecated](extra)
	require.True(t, ok)
	require.True(t, dep.SourceSets[jvm])

	desc, ok := Lookup[Description](extra)
	require.True(t, ok)
	require.Equal(t, "does things", desc.Markdown)

	_, ok = Lookup[PrimaryConstructor](extra)
	require.False(t, ok)

	require.True(t, IsDeprecated(extra, jvm))
	require.False(t, IsDeprecated(extra, SourceSet{Name: "jsMain", Platform: PlatformJS}))
}

func TestExtraBagIsCopyOnWrite(t *testing.T) {
	original := Extra{}.WithExtra(Description{Markdown: "a"})
	updated := original.WithExtra(Description{Markdown: "b"})

	descOriginal, _ := Lookup[Description](original)
	descUpdated, _ := Lookup[Description](updated)
	require.Equal(t, "a", descOriginal.Markdown)
	require.Equal(t, "b", descUpdated.Markdown)
}

func TestProjectionKeyDistinguishesStructure(t *testing.T) {
	intType := TypeConstructor{DRI: TypeDRI("kotlin", "Int")}
	stringType := TypeConstructor{DRI: TypeDRI("kotlin", "String")}
	listOfInt := TypeConstructor{DRI: TypeDRI("kotlin.collections", "List"), Projections: []Projection{intType}}
	listOfString := TypeConstructor{DRI: TypeDRI("kotlin.collections", "List"), Projections: []Projection{stringType}}

	require.Equal(t, ProjectionKey(listOfInt), ProjectionKey(TypeConstructor{
		DRI:         TypeDRI("kotlin.collections", "List"),
		Projections: []Projection{TypeConstructor{DRI: TypeDRI("kotlin", "Int")}},
	}))
	require.NotEqual(t, ProjectionKey(listOfInt), ProjectionKey(listOfString))
	require.NotEqual(t, ProjectionKey(intType), ProjectionKey(Nullable{Inner: intType}))
	require.NotEqual(t,
		ProjectionKey(Variance{Kind: VarianceIn, Inner: intType}),
		ProjectionKey(Variance{Kind: VarianceOut, Inner: intType}),
	)
	require.Equal(t, ProjectionKey(Star{}), ProjectionKey(Star{}))
}

func TestGroupSourceSetsByProjection(t *testing.T) {
	jvm := SourceSet{Name: "jvmMain", Platform: PlatformJVM}
	js := SourceSet{Name: "jsMain", Platform: PlatformJS}
	native := SourceSet{Name: "nativeMain", Platform: PlatformNative}

	stringType := TypeConstructor{DRI: TypeDRI("kotlin", "String")}
	intType := TypeConstructor{DRI: TypeDRI("kotlin", "Int")}

	groups := GroupSourceSetsByProjection(
		[]SourceSet{jvm, js, native},
		map[SourceSet]Projection{jvm: stringType, js: intType, native: stringType},
	)

	require.Len(t, groups, 2)
	require.Equal(t, []SourceSet{jvm, native}, groups[0], "identical underlying types merge, in first-appearance order")
	require.Equal(t, []SourceSet{js}, groups[1])
}

func TestGroupSourceSetsSkipsMissingValues(t *testing.T) {
	jvm := SourceSet{Name: "jvmMain", Platform: PlatformJVM}
	js := SourceSet{Name: "jsMain", Platform: PlatformJS}

	groups := GroupSourceSetsByProjection(
		[]SourceSet{jvm, js},
		map[SourceSet]Projection{jvm: Star{}},
	)
	require.Len(t, groups, 1)
	require.Equal(t, []SourceSet{jvm}, groups[0])
}

func TestModifierToken(t *testing.T) {
	require.Equal(t, "open", ModifierEmpty.Token(), "Java absent modifier renders as open")
	require.Equal(t, "abstract", ModifierAbstract.Token())
	require.Equal(t, "final", ModifierFinal.Token())
}

func TestNormalizers(t *testing.T) {
	em, err := ExtraModifierNormalizer().NormalizeWithError("External")
	require.NoError(t, err)
	require.Equal(t, ExtraModifierExternal, em)

	_, err = ExtraModifierNormalizer().NormalizeWithError("bogus")
	require.Error(t, err)

	p, err := PlatformNormalizer().NormalizeWithError("JVM")
	require.NoError(t, err)
	require.Equal(t, PlatformJVM, p)

	v, err := VisibilityNormalizer().NormalizeWithError("internal")
	require.NoError(t, err)
	require.Equal(t, VisibilityInternal, v)

	m, err := ModifierNormalizer().NormalizeWithError("sealed")
	require.NoError(t, err)
	require.Equal(t, ModifierSealed, m)
}

func TestPrimaryConstructorOf(t *testing.T) {
	plain := &Function{Name: "Foo", IsConstructor: true}
	primary := &Function{Name: "Foo", IsConstructor: true}
	primary.Extra = primary.Extra.WithExtra(PrimaryConstructor{})

	c := &Class{Name: "Foo", Constructors: []*Function{plain, primary}}
	ctor, ok := PrimaryConstructorOf(c).Get()
	require.True(t, ok)
	require.Same(t, primary, ctor)

	require.True(t, PrimaryConstructorOf(&Class{Name: "Bar", Constructors: []*Function{plain}}).IsNone())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, "class", KindOf(&Class{}))
	require.Equal(t, "function", KindOf(&Function{}))
	require.Equal(t, "property", KindOf(&Property{}))
	require.Equal(t, "typealias", KindOf(&TypeAlias{}))
	require.Equal(t, "enum_entry", KindOf(&EnumEntry{}))
	require.Equal(t, "type_parameter", KindOf(&TypeParameter{}))
	require.Equal(t, "unknown", KindOf(nil))
}
