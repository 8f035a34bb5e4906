package model

// Platform identifies the compilation backend a source set targets.
type Platform string

const (
	PlatformCommon Platform = "common"
	PlatformJVM    Platform = "jvm"
	PlatformJS     Platform = "js"
	PlatformNative Platform = "native"
	PlatformWasm   Platform = "wasm"
)

// KnownPlatforms lists every platform the renderer understands, in stable order.
func KnownPlatforms() []Platform {
	return []Platform{PlatformCommon, PlatformJVM, PlatformJS, PlatformNative, PlatformWasm}
}

// SourceSet is one compilation target a documentable may be defined for. A single
// documentable can present different signatures per source set (different modifiers,
// different underlying types for expect/actual aliases), so per-target values are
// always keyed by SourceSet, never flattened to a scalar.
//
// SourceSet is comparable and used directly as a map key.
type SourceSet struct {
	Name     string   `yaml:"name" json:"name"`
	Platform Platform `yaml:"platform" json:"platform"`
}

func (s SourceSet) String() string {
	if s.Name == "" {
		return string(s.Platform)
	}
	return s.Name
}

// ContainsSourceSet reports whether ss is in the slice. Source-set slices are small
// (a handful of targets), linear scan is fine.
func ContainsSourceSet(sets []SourceSet, ss SourceSet) bool {
	for _, s := range sets {
		if s == ss {
			return true
		}
	}
	return false
}
