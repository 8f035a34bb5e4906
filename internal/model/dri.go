package model

import "strings"

// DRI (documentable resource identifier) uniquely identifies a declaration in the
// documented codebase. It is resolvable to a navigable link by the link-resolution
// stage; this package only carries it around.
type DRI struct {
	// PackageName is the declaring package, dotted form (e.g. "kotlin.collections").
	PackageName string `yaml:"package,omitempty" json:"package,omitempty"`
	// ClassNames is the dotted chain of enclosing class names, outermost first
	// (e.g. "Outer.Inner"). Empty for top-level callables.
	ClassNames string `yaml:"classNames,omitempty" json:"classNames,omitempty"`
	// Callable names the function or property when the DRI points at a member.
	Callable string `yaml:"callable,omitempty" json:"callable,omitempty"`
}

// IsZero reports whether the DRI carries no identity at all.
func (d DRI) IsZero() bool {
	return d.PackageName == "" && d.ClassNames == "" && d.Callable == ""
}

// ClassName returns the simple (innermost) class name segment.
func (d DRI) ClassName() string {
	if d.ClassNames == "" {
		return ""
	}
	if idx := strings.LastIndexByte(d.ClassNames, '.'); idx >= 0 {
		return d.ClassNames[idx+1:]
	}
	return d.ClassNames
}

// String produces a stable textual form used in logs and link targets:
// "pkg/Outer.Inner#callable". Empty segments are omitted.
func (d DRI) String() string {
	var sb strings.Builder
	sb.WriteString(d.PackageName)
	if d.ClassNames != "" {
		sb.WriteByte('/')
		sb.WriteString(d.ClassNames)
	}
	if d.Callable != "" {
		sb.WriteByte('#')
		sb.WriteString(d.Callable)
	}
	return sb.String()
}

// TypeDRI builds a DRI for a top-level type in a package.
func TypeDRI(pkg, name string) DRI {
	return DRI{PackageName: pkg, ClassNames: name}
}

// Well-known identities used when translating host-language builtins.
var (
	// KotlinAny is the universal top type the Java object type maps onto.
	KotlinAny = TypeDRI("kotlin", "Any")
	// KotlinUnit is the unit type the Java void type maps onto.
	KotlinUnit = TypeDRI("kotlin", "Unit")
)
