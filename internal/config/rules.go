// Package config loads the externally configurable rendering rules and, for the
// CLI, documentable-model files. The core renderer consumes in-memory values only;
// all file I/O lives here.
package config

import (
	"os"

	"git.home.luguber.info/inful/sigrender/internal/foundation/errors"
	"git.home.luguber.info/inful/sigrender/internal/model"
	"gopkg.in/yaml.v3"
)

// Rules is the modifier/visibility suppression table. It is data rather than inline
// conditionals so new modifiers can be added without touching the renderer.
//
// The two-level extra-modifier rule: a modifier is rendered iff it is not in the
// global ignore set, OR the current source set's platform is in that modifier's
// platform override list.
type Rules struct {
	IgnoredExtraModifiers map[model.ExtraModifier]struct{}
	PlatformOverrides     map[model.ExtraModifier]map[model.Platform]struct{}
	IgnoredVisibilities   map[model.Visibility]struct{}
	IgnoredModifiers      map[model.Modifier]struct{}
}

// DefaultRules returns the built-in rule table: tail-recursion and external-binding
// markers are suppressed globally, but external is re-included on JS where it is
// meaningful; implicit-default visibility and finality never render.
func DefaultRules() Rules {
	return Rules{
		IgnoredExtraModifiers: map[model.ExtraModifier]struct{}{
			model.ExtraModifierTailrec:  {},
			model.ExtraModifierExternal: {},
		},
		PlatformOverrides: map[model.ExtraModifier]map[model.Platform]struct{}{
			model.ExtraModifierExternal: {model.PlatformJS: {}},
		},
		IgnoredVisibilities: map[model.Visibility]struct{}{
			model.VisibilityPublic:         {},
			model.VisibilityPackagePrivate: {},
			model.VisibilityEmpty:          {},
		},
		IgnoredModifiers: map[model.Modifier]struct{}{
			model.ModifierFinal: {},
		},
	}
}

// ShowExtraModifier applies the two-level rule for one modifier on one platform.
func (r Rules) ShowExtraModifier(m model.ExtraModifier, p model.Platform) bool {
	if _, ignored := r.IgnoredExtraModifiers[m]; !ignored {
		return true
	}
	allowed, ok := r.PlatformOverrides[m]
	if !ok {
		return false
	}
	_, ok = allowed[p]
	return ok
}

// ShowVisibility reports whether a visibility value renders a token.
func (r Rules) ShowVisibility(v model.Visibility) bool {
	_, ignored := r.IgnoredVisibilities[v]
	return !ignored
}

// ShowModifier reports whether a finality modifier renders a token.
func (r Rules) ShowModifier(m model.Modifier) bool {
	_, ignored := r.IgnoredModifiers[m]
	return !ignored
}

// rulesFile is the YAML shape of a rule-table override.
type rulesFile struct {
	IgnoredExtraModifiers []string            `yaml:"ignored_extra_modifiers"`
	PlatformOverrides     map[string][]string `yaml:"platform_overrides"`
	IgnoredVisibilities   []string            `yaml:"ignored_visibilities"`
	IgnoredModifiers      []string            `yaml:"ignored_modifiers"`
}

// LoadRules reads a YAML rule table. Sections left out of the file keep their
// built-in defaults; sections present replace the default wholesale. Unknown
// modifier or platform names are a validation error.
func LoadRules(path string) (Rules, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI flag
	if err != nil {
		return Rules{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to read rules file").
			WithContext("path", path).
			Build()
	}
	return ParseRules(raw)
}

// ParseRules parses a YAML rule table against the built-in defaults.
func ParseRules(raw []byte) (Rules, error) {
	var file rulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Rules{}, errors.WrapError(err, errors.CategoryConfig, "failed to parse rules file").Build()
	}

	rules := DefaultRules()
	extraNorm := model.ExtraModifierNormalizer()
	platformNorm := model.PlatformNormalizer()

	if file.IgnoredExtraModifiers != nil {
		set := make(map[model.ExtraModifier]struct{}, len(file.IgnoredExtraModifiers))
		for _, name := range file.IgnoredExtraModifiers {
			m, err := extraNorm.NormalizeWithError(name)
			if err != nil {
				return Rules{}, errors.ValidationError("unknown extra modifier in rules file").
					WithContext("modifier", name).
					Build()
			}
			set[m] = struct{}{}
		}
		rules.IgnoredExtraModifiers = set
	}

	if file.PlatformOverrides != nil {
		overrides := make(map[model.ExtraModifier]map[model.Platform]struct{}, len(file.PlatformOverrides))
		for name, platforms := range file.PlatformOverrides {
			m, err := extraNorm.NormalizeWithError(name)
			if err != nil {
				return Rules{}, errors.ValidationError("unknown extra modifier in platform overrides").
					WithContext("modifier", name).
					Build()
			}
			set := make(map[model.Platform]struct{}, len(platforms))
			for _, pname := range platforms {
				p, err := platformNorm.NormalizeWithError(pname)
				if err != nil {
					return Rules{}, errors.ValidationError("unknown platform in platform overrides").
						WithContext("modifier", name).
						WithContext("platform", pname).
						Build()
				}
				set[p] = struct{}{}
			}
			overrides[m] = set
		}
		rules.PlatformOverrides = overrides
	}

	if file.IgnoredVisibilities != nil {
		visNorm := model.VisibilityNormalizer()
		set := make(map[model.Visibility]struct{}, len(file.IgnoredVisibilities)+1)
		// The empty visibility never renders regardless of configuration.
		set[model.VisibilityEmpty] = struct{}{}
		for _, name := range file.IgnoredVisibilities {
			v, err := visNorm.NormalizeWithError(name)
			if err != nil {
				return Rules{}, errors.ValidationError("unknown visibility in rules file").
					WithContext("visibility", name).
					Build()
			}
			set[v] = struct{}{}
		}
		rules.IgnoredVisibilities = set
	}

	if file.IgnoredModifiers != nil {
		modNorm := model.ModifierNormalizer()
		set := make(map[model.Modifier]struct{}, len(file.IgnoredModifiers))
		for _, name := range file.IgnoredModifiers {
			m, err := modNorm.NormalizeWithError(name)
			if err != nil {
				return Rules{}, errors.ValidationError("unknown modifier in rules file").
					WithContext("modifier", name).
					Build()
			}
			set[m] = struct{}{}
		}
		rules.IgnoredModifiers = set
	}

	return rules, nil
}
