package signature

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sigrender/internal/model"
)

// renderType runs a projection through a property signature and strips the fixed
// "val x: " head, leaving just the rendered type expression.
func renderType(t *testing.T, proj model.Projection) string {
	t.Helper()
	p := &model.Property{
		Name:       "x",
		SourceSets: []model.SourceSet{jvm},
		Type:       proj,
	}
	got := renderOne(t, p)
	require.Greater(t, len(got), len("val x: "))
	return got[len("val x: "):]
}

func TestProjectionRendering(t *testing.T) {
	fooDRI := model.TypeDRI("demo", "Foo")
	barDRI := model.TypeDRI("demo", "Bar")
	tDRI := model.DRI{PackageName: "demo", ClassNames: "Box", Callable: "T"}

	cases := []struct {
		name string
		proj model.Projection
		want string
	}{
		{
			"plain constructor",
			model.TypeConstructor{DRI: fooDRI},
			"Foo",
		},
		{
			"generic arguments",
			model.TypeConstructor{DRI: fooDRI, Projections: []model.Projection{
				model.TypeConstructor{DRI: barDRI},
				intType,
			}},
			"Foo<Bar, Int>",
		},
		{
			"type parameter reference",
			model.TypeParameterRef{DRI: tDRI, Name: "T"},
			"T",
		},
		{
			"variance wrapping a nullable generic",
			model.Variance{Kind: model.VarianceOut, Inner: model.Nullable{
				Inner: model.TypeConstructor{DRI: fooDRI, Projections: []model.Projection{
					model.TypeConstructor{DRI: barDRI},
				}},
			}},
			"out Foo<Bar>?",
		},
		{
			"in variance",
			model.Variance{Kind: model.VarianceIn, Inner: intType},
			"in Int",
		},
		{
			"star as a generic argument",
			model.TypeConstructor{DRI: fooDRI, Projections: []model.Projection{model.Star{}}},
			"Foo<*>",
		},
		{
			"java object maps to Any",
			model.JavaObject{},
			"Any",
		},
		{
			"nullable java object",
			model.Nullable{Inner: model.JavaObject{}},
			"Any?",
		},
		{
			"void maps to Unit",
			model.Void{},
			"Unit",
		},
		{
			"java primitive is boxed",
			model.PrimitiveJavaType{Name: "int"},
			"Int",
		},
		{
			"boolean primitive",
			model.PrimitiveJavaType{Name: "boolean"},
			"Boolean",
		},
		{
			"dynamic",
			model.Dynamic{},
			"dynamic",
		},
		{
			"unresolved renders as plain text",
			model.UnresolvedType{Name: "MissingType"},
			"MissingType",
		},
		{
			"function type",
			model.TypeConstructor{FunctionType: true, Projections: []model.Projection{
				stringType,
				intType,
			}},
			"(String) -> Int",
		},
		{
			"zero-argument function type",
			model.TypeConstructor{FunctionType: true, Projections: []model.Projection{
				intType,
			}},
			"() -> Int",
		},
		{
			"extension function type",
			model.TypeConstructor{FunctionType: true, ExtensionFunction: true, Projections: []model.Projection{
				stringType,
				intType,
				boolType,
			}},
			"String.(Int) -> Boolean",
		},
		{
			"nullable function type argument",
			model.TypeConstructor{FunctionType: true, Projections: []model.Projection{
				model.Nullable{Inner: stringType},
				model.Void{},
			}},
			"(String?) -> Unit",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, renderType(t, tc.proj))
		})
	}
}

func TestBoxedPrimitiveLinksIntoKotlinNamespace(t *testing.T) {
	p := &model.Property{
		Name:       "x",
		SourceSets: []model.SourceSet{jvm},
		Type:       model.PrimitiveJavaType{Name: "long"},
	}
	nodes, err := New().Render(p)
	require.NoError(t, err)

	link := findLink(nodes[0], "Long")
	require.NotNil(t, link)
	require.Equal(t, model.TypeDRI("kotlin", "Long"), link.Address)
}
