package config

import (
	"os"

	"git.home.luguber.info/inful/sigrender/internal/foundation/errors"
	"git.home.luguber.info/inful/sigrender/internal/model"
	"gopkg.in/yaml.v3"
)

// The YAML shapes below describe the documentable-model file format the CLI
// accepts. The format mirrors the in-memory model: per-source-set maps are keyed by
// source-set name, resolved against the documentable's declared source sets.

type modelFile struct {
	Documentables []documentableDTO `yaml:"documentables"`
}

type documentableDTO struct {
	Kind           string                  `yaml:"kind"`
	Name           string                  `yaml:"name"`
	DRI            model.DRI               `yaml:"dri"`
	ClassKind      string                  `yaml:"classKind"`
	SourceSets     []model.SourceSet       `yaml:"sourceSets"`
	Visibility     map[string]string       `yaml:"visibility"`
	Modifier       map[string]string       `yaml:"modifier"`
	ExtraModifiers map[string][]string     `yaml:"extraModifiers"`
	Annotations    map[string][]annotation `yaml:"annotations"`
	Supertypes     map[string][]model.DRI  `yaml:"supertypes"`
	Generics       []typeParameterDTO      `yaml:"generics"`
	Constructors   []functionDTO           `yaml:"constructors"`
	Receiver       *projectionDTO          `yaml:"receiver"`
	Parameters     []parameterDTO          `yaml:"parameters"`
	ReturnType     *projectionDTO          `yaml:"returnType"`
	HasSetter      bool                    `yaml:"hasSetter"`
	Type           *projectionDTO          `yaml:"type"`
	Underlying     map[string]projectionDTO `yaml:"underlying"`
	ActualAlias    map[string]projectionDTO `yaml:"actualTypealias"`
	CtorValues     map[string][]string     `yaml:"constructorValues"`
	Bounds         []projectionDTO         `yaml:"bounds"`
	DeprecatedIn   []string                `yaml:"deprecatedIn"`
	Comment        string                  `yaml:"comment"`
}

type functionDTO struct {
	Name        string                  `yaml:"name"`
	DRI         model.DRI               `yaml:"dri"`
	Primary     bool                    `yaml:"primary"`
	Parameters  []parameterDTO          `yaml:"parameters"`
	Annotations map[string][]annotation `yaml:"annotations"`
}

type parameterDTO struct {
	Name           string                  `yaml:"name"`
	Type           projectionDTO           `yaml:"type"`
	Annotations    map[string][]annotation `yaml:"annotations"`
	ExtraModifiers map[string][]string     `yaml:"extraModifiers"`
}

type typeParameterDTO struct {
	Name   string          `yaml:"name"`
	DRI    model.DRI       `yaml:"dri"`
	Bounds []projectionDTO `yaml:"bounds"`
}

type annotation struct {
	DRI              model.DRI `yaml:"dri"`
	Arguments        []string  `yaml:"arguments"`
	MustBeDocumented bool      `yaml:"mustBeDocumented"`
}

// projectionDTO is the YAML shape of a type expression; exactly one variant field
// may be set.
type projectionDTO struct {
	Named      *namedDTO      `yaml:"named"`
	Parameter  *namedRefDTO   `yaml:"parameter"`
	Variance   *varianceDTO   `yaml:"variance"`
	Nullable   *projectionDTO `yaml:"nullable"`
	Star       bool           `yaml:"star"`
	JavaObject bool           `yaml:"javaObject"`
	Void       bool           `yaml:"void"`
	Primitive  string         `yaml:"primitive"`
	Dynamic    bool           `yaml:"dynamic"`
	Unresolved string         `yaml:"unresolved"`
}

type namedDTO struct {
	DRI          model.DRI       `yaml:"dri"`
	Args         []projectionDTO `yaml:"args"`
	FunctionType bool            `yaml:"functionType"`
	Extension    bool            `yaml:"extension"`
}

type namedRefDTO struct {
	Name string    `yaml:"name"`
	DRI  model.DRI `yaml:"dri"`
}

type varianceDTO struct {
	Kind  string        `yaml:"kind"`
	Inner projectionDTO `yaml:"inner"`
}

// LoadModel reads and converts a YAML documentable-model file.
func LoadModel(path string) ([]model.Documentable, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI argument
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read model file").
			WithContext("path", path).
			Build()
	}
	return ParseModel(raw)
}

// ParseModel converts YAML documentable definitions into model values.
func ParseModel(raw []byte) ([]model.Documentable, error) {
	var file modelFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.WrapError(err, errors.CategoryModel, "failed to parse model file").Build()
	}

	out := make([]model.Documentable, 0, len(file.Documentables))
	for i, dto := range file.Documentables {
		d, err := convertDocumentable(dto)
		if err != nil {
			if classified, ok := errors.AsClassified(err); ok {
				return nil, classified.WithContext("index", i)
			}
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func convertDocumentable(dto documentableDTO) (model.Documentable, error) {
	if dto.Name == "" {
		return nil, errors.ModelError("documentable has no name").
			WithContext("dri", dto.DRI.String()).
			Build()
	}
	if len(dto.SourceSets) == 0 {
		return nil, errors.ModelError("documentable declares no source sets").
			WithContext("name", dto.Name).
			Build()
	}

	switch dto.Kind {
	case "class":
		return convertClass(dto)
	case "function":
		return convertFunction(dto)
	case "property":
		return convertProperty(dto)
	case "typealias":
		return convertTypeAlias(dto)
	case "enumEntry":
		return convertEnumEntry(dto)
	case "typeParameter":
		return convertTypeParameter(dto)
	default:
		return nil, errors.ModelError("unknown documentable kind").
			WithContext("kind", dto.Kind).
			WithContext("name", dto.Name).
			Build()
	}
}

func convertClass(dto documentableDTO) (*model.Class, error) {
	kind, err := classKind(dto.ClassKind)
	if err != nil {
		return nil, err
	}
	c := &model.Class{
		Name:       dto.Name,
		DRI:        dto.DRI,
		Kind:       kind,
		SourceSets: dto.SourceSets,
		Extra:      convertExtra(dto),
	}
	if c.Visibility, err = visibilityMap(dto); err != nil {
		return nil, err
	}
	if c.Modifier, err = modifierMap(dto); err != nil {
		return nil, err
	}
	if c.ExtraModifiers, err = extraModifierMap(dto.ExtraModifiers, dto.SourceSets); err != nil {
		return nil, err
	}
	c.Annotations = annotationMap(dto.Annotations, dto.SourceSets)
	if dto.Supertypes != nil {
		c.Supertypes = make(map[model.SourceSet][]model.TypeConstructor, len(dto.Supertypes))
		for name, dris := range dto.Supertypes {
			ss, ok := resolveSourceSet(dto.SourceSets, name)
			if !ok {
				return nil, unknownSourceSet(dto.Name, name)
			}
			sts := make([]model.TypeConstructor, 0, len(dris))
			for _, dri := range dris {
				sts = append(sts, model.TypeConstructor{DRI: dri})
			}
			c.Supertypes[ss] = sts
		}
	}
	if c.Generics, err = typeParameters(dto.Generics, dto.SourceSets); err != nil {
		return nil, err
	}
	for _, ctorDTO := range dto.Constructors {
		ctor, err := convertConstructor(ctorDTO, dto)
		if err != nil {
			return nil, err
		}
		c.Constructors = append(c.Constructors, ctor)
	}
	if dto.ActualAlias != nil {
		underlying, err := projectionMap(dto.ActualAlias, dto.SourceSets, dto.Name)
		if err != nil {
			return nil, err
		}
		c.Extra = c.Extra.WithExtra(model.ActualTypealias{Underlying: underlying})
	}
	return c, nil
}

func convertConstructor(dto functionDTO, owner documentableDTO) (*model.Function, error) {
	params, err := parameters(dto.Parameters, owner.SourceSets)
	if err != nil {
		return nil, err
	}
	f := &model.Function{
		Name:          dto.Name,
		DRI:           dto.DRI,
		IsConstructor: true,
		SourceSets:    owner.SourceSets,
		Parameters:    params,
		Annotations:   annotationMap(dto.Annotations, owner.SourceSets),
	}
	if dto.Primary {
		f.Extra = f.Extra.WithExtra(model.PrimaryConstructor{})
	}
	return f, nil
}

func convertFunction(dto documentableDTO) (*model.Function, error) {
	f := &model.Function{
		Name:       dto.Name,
		DRI:        dto.DRI,
		SourceSets: dto.SourceSets,
		Extra:      convertExtra(dto),
	}
	var err error
	if f.Visibility, err = visibilityMap(dto); err != nil {
		return nil, err
	}
	if f.Modifier, err = modifierMap(dto); err != nil {
		return nil, err
	}
	if f.ExtraModifiers, err = extraModifierMap(dto.ExtraModifiers, dto.SourceSets); err != nil {
		return nil, err
	}
	f.Annotations = annotationMap(dto.Annotations, dto.SourceSets)
	if f.Generics, err = typeParameters(dto.Generics, dto.SourceSets); err != nil {
		return nil, err
	}
	if f.Parameters, err = parameters(dto.Parameters, dto.SourceSets); err != nil {
		return nil, err
	}
	if dto.Receiver != nil {
		recv, err := projection(*dto.Receiver)
		if err != nil {
			return nil, err
		}
		f.Receiver = &model.Parameter{Type: recv}
	}
	if dto.ReturnType != nil {
		if f.ReturnType, err = projection(*dto.ReturnType); err != nil {
			return nil, err
		}
	} else {
		f.ReturnType = model.Void{}
	}
	return f, nil
}

func convertProperty(dto documentableDTO) (*model.Property, error) {
	if dto.Type == nil {
		return nil, errors.ModelError("property has no type").
			WithContext("name", dto.Name).
			Build()
	}
	typ, err := projection(*dto.Type)
	if err != nil {
		return nil, err
	}
	prop := &model.Property{
		Name:       dto.Name,
		DRI:        dto.DRI,
		SourceSets: dto.SourceSets,
		HasSetter:  dto.HasSetter,
		Type:       typ,
		Extra:      convertExtra(dto),
	}
	if prop.Visibility, err = visibilityMap(dto); err != nil {
		return nil, err
	}
	if prop.Modifier, err = modifierMap(dto); err != nil {
		return nil, err
	}
	if prop.ExtraModifiers, err = extraModifierMap(dto.ExtraModifiers, dto.SourceSets); err != nil {
		return nil, err
	}
	prop.Annotations = annotationMap(dto.Annotations, dto.SourceSets)
	if prop.Generics, err = typeParameters(dto.Generics, dto.SourceSets); err != nil {
		return nil, err
	}
	if dto.Receiver != nil {
		recv, err := projection(*dto.Receiver)
		if err != nil {
			return nil, err
		}
		prop.Receiver = &model.Parameter{Type: recv}
	}
	return prop, nil
}

func convertTypeAlias(dto documentableDTO) (*model.TypeAlias, error) {
	underlying, err := projectionMap(dto.Underlying, dto.SourceSets, dto.Name)
	if err != nil {
		return nil, err
	}
	if len(underlying) == 0 {
		return nil, errors.ModelError("typealias has no underlying type").
			WithContext("name", dto.Name).
			Build()
	}
	ta := &model.TypeAlias{
		Name:           dto.Name,
		DRI:            dto.DRI,
		SourceSets:     dto.SourceSets,
		UnderlyingType: underlying,
		Extra:          convertExtra(dto),
	}
	if ta.Visibility, err = visibilityMap(dto); err != nil {
		return nil, err
	}
	if ta.Generics, err = typeParameters(dto.Generics, dto.SourceSets); err != nil {
		return nil, err
	}
	return ta, nil
}

func convertEnumEntry(dto documentableDTO) (*model.EnumEntry, error) {
	e := &model.EnumEntry{
		Name:       dto.Name,
		DRI:        dto.DRI,
		SourceSets: dto.SourceSets,
		Extra:      convertExtra(dto),
	}
	if dto.CtorValues != nil {
		values := make(map[model.SourceSet][]string, len(dto.CtorValues))
		for name, vals := range dto.CtorValues {
			ss, ok := resolveSourceSet(dto.SourceSets, name)
			if !ok {
				return nil, unknownSourceSet(dto.Name, name)
			}
			values[ss] = vals
		}
		e.Extra = e.Extra.WithExtra(model.EnumConstructorValues{Values: values})
	}
	return e, nil
}

func convertTypeParameter(dto documentableDTO) (*model.TypeParameter, error) {
	bounds := make([]model.Projection, 0, len(dto.Bounds))
	for _, bdto := range dto.Bounds {
		bound, err := projection(bdto)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, bound)
	}
	return &model.TypeParameter{
		Name:       dto.Name,
		DRI:        dto.DRI,
		SourceSets: dto.SourceSets,
		Bounds:     bounds,
		Extra:      convertExtra(dto),
	}, nil
}

// Conversion helpers.

func classKind(raw string) (model.ClassKind, error) {
	switch raw {
	case "", "class":
		return model.ClassKindClass, nil
	case "interface":
		return model.ClassKindInterface, nil
	case "enum":
		return model.ClassKindEnum, nil
	case "object":
		return model.ClassKindObject, nil
	case "annotation class", "annotationClass":
		return model.ClassKindAnnotationClass, nil
	default:
		return "", errors.ModelError("unknown class kind").WithContext("classKind", raw).Build()
	}
}

func resolveSourceSet(sets []model.SourceSet, name string) (model.SourceSet, bool) {
	for _, ss := range sets {
		if ss.Name == name {
			return ss, true
		}
	}
	return model.SourceSet{}, false
}

func unknownSourceSet(documentable, sourceSet string) error {
	return errors.ModelError("value references an undeclared source set").
		WithContext("name", documentable).
		WithContext("source_set", sourceSet).
		Build()
}

func convertExtra(dto documentableDTO) model.Extra {
	var extra model.Extra
	if len(dto.DeprecatedIn) > 0 {
		deprecated := make(map[model.SourceSet]bool, len(dto.DeprecatedIn))
		for _, name := range dto.DeprecatedIn {
			if ss, ok := resolveSourceSet(dto.SourceSets, name); ok {
				deprecated[ss] = true
			}
		}
		extra = extra.WithExtra(model.Deprecated{SourceSets: deprecated})
	}
	if dto.Comment != "" {
		extra = extra.WithExtra(model.Description{Markdown: dto.Comment})
	}
	return extra
}

func visibilityMap(dto documentableDTO) (map[model.SourceSet]model.Visibility, error) {
	if dto.Visibility == nil {
		return nil, nil
	}
	norm := model.VisibilityNormalizer()
	out := make(map[model.SourceSet]model.Visibility, len(dto.Visibility))
	for name, raw := range dto.Visibility {
		ss, ok := resolveSourceSet(dto.SourceSets, name)
		if !ok {
			return nil, unknownSourceSet(dto.Name, name)
		}
		v, err := norm.NormalizeWithError(raw)
		if err != nil {
			return nil, errors.ModelError("unknown visibility").
				WithContext("name", dto.Name).
				WithContext("visibility", raw).
				Build()
		}
		out[ss] = v
	}
	return out, nil
}

func modifierMap(dto documentableDTO) (map[model.SourceSet]model.Modifier, error) {
	if dto.Modifier == nil {
		return nil, nil
	}
	norm := model.ModifierNormalizer()
	out := make(map[model.SourceSet]model.Modifier, len(dto.Modifier))
	for name, raw := range dto.Modifier {
		ss, ok := resolveSourceSet(dto.SourceSets, name)
		if !ok {
			return nil, unknownSourceSet(dto.Name, name)
		}
		m, err := norm.NormalizeWithError(raw)
		if err != nil {
			return nil, errors.ModelError("unknown modifier").
				WithContext("name", dto.Name).
				WithContext("modifier", raw).
				Build()
		}
		out[ss] = m
	}
	return out, nil
}

func extraModifierMap(raw map[string][]string, sets []model.SourceSet) (map[model.SourceSet][]model.ExtraModifier, error) {
	if raw == nil {
		return nil, nil
	}
	norm := model.ExtraModifierNormalizer()
	out := make(map[model.SourceSet][]model.ExtraModifier, len(raw))
	for name, mods := range raw {
		ss, ok := resolveSourceSet(sets, name)
		if !ok {
			return nil, unknownSourceSet("", name)
		}
		converted := make([]model.ExtraModifier, 0, len(mods))
		for _, m := range mods {
			em, err := norm.NormalizeWithError(m)
			if err != nil {
				return nil, errors.ModelError("unknown extra modifier").
					WithContext("modifier", m).
					Build()
			}
			converted = append(converted, em)
		}
		out[ss] = converted
	}
	return out, nil
}

func annotationMap(raw map[string][]annotation, sets []model.SourceSet) map[model.SourceSet][]model.Annotation {
	if raw == nil {
		return nil
	}
	out := make(map[model.SourceSet][]model.Annotation, len(raw))
	for name, anns := range raw {
		ss, ok := resolveSourceSet(sets, name)
		if !ok {
			continue
		}
		converted := make([]model.Annotation, 0, len(anns))
		for _, ann := range anns {
			converted = append(converted, model.Annotation{
				DRI:              ann.DRI,
				Arguments:        ann.Arguments,
				MustBeDocumented: ann.MustBeDocumented,
			})
		}
		out[ss] = converted
	}
	return out
}

func typeParameters(dtos []typeParameterDTO, sets []model.SourceSet) ([]*model.TypeParameter, error) {
	if len(dtos) == 0 {
		return nil, nil
	}
	out := make([]*model.TypeParameter, 0, len(dtos))
	for _, dto := range dtos {
		bounds := make([]model.Projection, 0, len(dto.Bounds))
		for _, bdto := range dto.Bounds {
			bound, err := projection(bdto)
			if err != nil {
				return nil, err
			}
			bounds = append(bounds, bound)
		}
		out = append(out, &model.TypeParameter{
			Name:       dto.Name,
			DRI:        dto.DRI,
			SourceSets: sets,
			Bounds:     bounds,
		})
	}
	return out, nil
}

func parameters(dtos []parameterDTO, sets []model.SourceSet) ([]*model.Parameter, error) {
	if len(dtos) == 0 {
		return nil, nil
	}
	out := make([]*model.Parameter, 0, len(dtos))
	for _, dto := range dtos {
		typ, err := projection(dto.Type)
		if err != nil {
			return nil, err
		}
		extraMods, err := extraModifierMap(dto.ExtraModifiers, sets)
		if err != nil {
			return nil, err
		}
		out = append(out, &model.Parameter{
			Name:           dto.Name,
			Type:           typ,
			Annotations:    annotationMap(dto.Annotations, sets),
			ExtraModifiers: extraMods,
		})
	}
	return out, nil
}

func projectionMap(raw map[string]projectionDTO, sets []model.SourceSet, owner string) (map[model.SourceSet]model.Projection, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(map[model.SourceSet]model.Projection, len(raw))
	for name, dto := range raw {
		ss, ok := resolveSourceSet(sets, name)
		if !ok {
			return nil, unknownSourceSet(owner, name)
		}
		p, err := projection(dto)
		if err != nil {
			return nil, err
		}
		out[ss] = p
	}
	return out, nil
}

func projection(dto projectionDTO) (model.Projection, error) {
	switch {
	case dto.Named != nil:
		args := make([]model.Projection, 0, len(dto.Named.Args))
		for _, adto := range dto.Named.Args {
			arg, err := projection(adto)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return model.TypeConstructor{
			DRI:               dto.Named.DRI,
			Projections:       args,
			FunctionType:      dto.Named.FunctionType,
			ExtensionFunction: dto.Named.Extension,
		}, nil
	case dto.Parameter != nil:
		return model.TypeParameterRef{DRI: dto.Parameter.DRI, Name: dto.Parameter.Name}, nil
	case dto.Variance != nil:
		inner, err := projection(dto.Variance.Inner)
		if err != nil {
			return nil, err
		}
		switch dto.Variance.Kind {
		case "in":
			return model.Variance{Kind: model.VarianceIn, Inner: inner}, nil
		case "out":
			return model.Variance{Kind: model.VarianceOut, Inner: inner}, nil
		default:
			return nil, errors.ModelError("unknown variance kind").
				WithContext("kind", dto.Variance.Kind).
				Build()
		}
	case dto.Nullable != nil:
		inner, err := projection(*dto.Nullable)
		if err != nil {
			return nil, err
		}
		return model.Nullable{Inner: inner}, nil
	case dto.Star:
		return model.Star{}, nil
	case dto.JavaObject:
		return model.JavaObject{}, nil
	case dto.Void:
		return model.Void{}, nil
	case dto.Primitive != "":
		return model.PrimitiveJavaType{Name: dto.Primitive}, nil
	case dto.Dynamic:
		return model.Dynamic{}, nil
	case dto.Unresolved != "":
		return model.UnresolvedType{Name: dto.Unresolved}, nil
	default:
		return nil, errors.ModelError("projection has no variant set").Build()
	}
}
