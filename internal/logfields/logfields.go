// Package logfields centralizes canonical slog field names so log keys do not
// drift across packages.
package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyDeclaration = "declaration"
	KeyKind        = "kind"
	KeySourceSet   = "source_set"
	KeyPlatform    = "platform"
	KeyDurationMS  = "duration_ms"
	KeyPath        = "path"
	KeyRunID       = "run_id"
	KeyCount       = "count"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Declaration(dri string) slog.Attr { return slog.String(KeyDeclaration, dri) }
func Kind(k string) slog.Attr          { return slog.String(KeyKind, k) }
func SourceSet(name string) slog.Attr  { return slog.String(KeySourceSet, name) }
func Platform(p string) slog.Attr      { return slog.String(KeyPlatform, p) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
