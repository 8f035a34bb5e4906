// Package signature renders documentable declarations into styled, platform-scoped
// content trees: one signature block per source set a declaration is defined for,
// matching the syntax conventions of the declaration's source language.
//
// The package is a pure transformation: no I/O, no shared mutable state. A Provider
// may render multiple documentables concurrently.
package signature

import (
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sigrender/internal/config"
	"git.home.luguber.info/inful/sigrender/internal/content"
	"git.home.luguber.info/inful/sigrender/internal/foundation/errors"
	"git.home.luguber.info/inful/sigrender/internal/logfields"
	"git.home.luguber.info/inful/sigrender/internal/metrics"
	"git.home.luguber.info/inful/sigrender/internal/model"
)

// Provider renders signatures. Construct with New; the zero value is not usable.
type Provider struct {
	builder  content.Builder
	rules    config.Rules
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithBuilder injects the content-construction collaborator.
func WithBuilder(b content.Builder) Option {
	return func(p *Provider) { p.builder = b }
}

// WithRules replaces the built-in modifier suppression table.
func WithRules(r config.Rules) Option {
	return func(p *Provider) { p.rules = r }
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(p *Provider) { p.recorder = r }
}

// WithLogger injects a logger; defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// New creates a Provider with sensible defaults: the in-memory tree builder, the
// built-in rule table, no metrics.
func New(opts ...Option) *Provider {
	p := &Provider{
		builder:  content.NewTreeBuilder(),
		rules:    config.DefaultRules(),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render dispatches a documentable to its signature builder and returns the ordered
// content blocks: one per source set for classes, functions, properties and enum
// entries; one per shared-underlying-type group for type aliases; one overall for
// type parameters.
//
// A documentable kind without a builder is a programming defect, reported as a
// fatal internal error rather than silently skipped.
func (p *Provider) Render(d model.Documentable) ([]content.Node, error) {
	kind := model.KindOf(d)
	start := time.Now()

	var nodes []content.Node
	switch t := d.(type) {
	case *model.Class:
		nodes = p.classSignatures(t)
	case *model.Function:
		nodes = p.functionSignatures(t)
	case *model.Property:
		nodes = p.propertySignatures(t)
	case *model.TypeAlias:
		nodes = p.typeAliasSignatures(t)
	case *model.EnumEntry:
		nodes = p.enumEntrySignatures(t)
	case *model.TypeParameter:
		nodes = []content.Node{p.typeParameterSignature(t)}
	default:
		p.recorder.IncRenderErrors(kind)
		dri := "<nil>"
		if d != nil {
			dri = d.Identity().String()
		}
		return nil, errors.InternalError("no signature builder for documentable kind").
			WithContext("type", fmt.Sprintf("%T", d)).
			WithContext("dri", dri).
			Build()
	}

	p.recorder.ObserveRenderDuration(kind, time.Since(start))
	p.recorder.IncSignaturesRendered(kind, len(nodes))
	p.logger.Debug("rendered signature",
		logfields.Declaration(d.Identity().String()),
		logfields.Kind(kind),
		logfields.Count(len(nodes)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000.0),
	)
	return nodes, nil
}

// blockStyles returns the standard style set of a signature block, adding the
// strikethrough flag when d is deprecated for ss.
func blockStyles(extra model.Extra, ss model.SourceSet) content.StyleSet {
	styles := content.NewStyleSet(content.StyleMonospace, content.StyleBlock)
	if model.IsDeprecated(extra, ss) {
		styles = styles.With(content.StyleStrikethrough)
	}
	return styles
}
