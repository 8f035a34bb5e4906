package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"git.home.luguber.info/inful/sigrender/internal/comments"
	"git.home.luguber.info/inful/sigrender/internal/config"
	"git.home.luguber.info/inful/sigrender/internal/content"
	"git.home.luguber.info/inful/sigrender/internal/logfields"
	"git.home.luguber.info/inful/sigrender/internal/metrics"
	"git.home.luguber.info/inful/sigrender/internal/model"
	"git.home.luguber.info/inful/sigrender/internal/signature"
)

type renderRequest struct {
	ModelPath string
	RulesPath string
	SourceSet string
	Watch     bool
	Metrics   bool
}

func runRender(logger *slog.Logger, req renderRequest) error {
	if err := renderOnce(logger, req, os.Stdout); err != nil {
		return err
	}
	if req.Watch {
		return watchAndRender(logger, req)
	}
	return nil
}

// renderOnce loads the rules and model files and prints every signature to w.
func renderOnce(logger *slog.Logger, req renderRequest, w *os.File) error {
	rules := config.DefaultRules()
	if req.RulesPath != "" {
		loaded, err := config.LoadRules(req.RulesPath)
		if err != nil {
			return err
		}
		rules = loaded
	}

	documentables, err := config.LoadModel(req.ModelPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded model",
		logfields.Path(req.ModelPath),
		logfields.Count(len(documentables)),
	)
	if req.SourceSet != "" {
		logger.Debug("filtering output", logfields.SourceSet(req.SourceSet))
	}

	registry := prom.NewRegistry()
	recorder := metrics.Recorder(metrics.NoopRecorder{})
	if req.Metrics {
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	provider := signature.New(
		signature.WithRules(rules),
		signature.WithRecorder(recorder),
		signature.WithLogger(logger),
	)
	converter := comments.NewGoldmarkConverter(nil)

	for _, d := range documentables {
		nodes, err := provider.Render(d)
		if err != nil {
			return err
		}
		for _, node := range nodes {
			scope := node.Scope()
			if req.SourceSet != "" && !scopeHasName(scope, req.SourceSet) {
				continue
			}
			fmt.Fprintf(w, "[%s] %s\n", scopeNames(scope), content.Flatten(node))
		}
		printComment(w, d, converter)
	}

	if req.Metrics {
		if err := dumpMetrics(w, registry); err != nil {
			return err
		}
	}
	return nil
}

// printComment renders a one-line doc-comment summary under the signatures, when
// the model file carries one.
func printComment(w *os.File, d model.Documentable, converter comments.Converter) {
	desc, ok := model.Lookup[model.Description](model.ExtraOf(d))
	if !ok || desc.Markdown == "" {
		return
	}
	node, err := converter.Convert([]byte(desc.Markdown), d.Identity(), d.DefinedIn())
	if err != nil {
		return
	}
	text := strings.TrimSpace(content.Flatten(node))
	if text != "" {
		fmt.Fprintf(w, "    %s\n", text)
	}
}

func scopeHasName(scope []model.SourceSet, name string) bool {
	for _, ss := range scope {
		if ss.Name == name {
			return true
		}
	}
	return false
}

func scopeNames(scope []model.SourceSet) string {
	names := make([]string, 0, len(scope))
	for _, ss := range scope {
		names = append(names, ss.String())
	}
	return strings.Join(names, ", ")
}

// dumpMetrics prints gathered counter and histogram totals in a stable order.
func dumpMetrics(w *os.File, registry *prom.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fmt.Fprintf(w, "# %s%s %s\n", family.GetName(), labelString(metric), valueString(family, metric))
		}
	}
	return nil
}

func labelString(metric *dto.Metric) string {
	if len(metric.GetLabel()) == 0 {
		return ""
	}
	parts := make([]string, 0, len(metric.GetLabel()))
	for _, label := range metric.GetLabel() {
		parts = append(parts, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func valueString(family *dto.MetricFamily, metric *dto.Metric) string {
	switch family.GetType() {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", metric.GetCounter().GetValue())
	case dto.MetricType_HISTOGRAM:
		return fmt.Sprintf("count=%d sum=%g", metric.GetHistogram().GetSampleCount(), metric.GetHistogram().GetSampleSum())
	default:
		return fmt.Sprintf("%g", metric.GetGauge().GetValue())
	}
}

// runRules prints the effective rule table.
func runRules(rulesPath string) error {
	rules := config.DefaultRules()
	if rulesPath != "" {
		loaded, err := config.LoadRules(rulesPath)
		if err != nil {
			return err
		}
		rules = loaded
	}

	fmt.Println("ignored extra modifiers:")
	for _, m := range sortedKeys(rules.IgnoredExtraModifiers) {
		fmt.Printf("  - %s\n", m)
	}
	fmt.Println("platform overrides:")
	for _, m := range sortedOverrideKeys(rules.PlatformOverrides) {
		platforms := make([]string, 0, len(rules.PlatformOverrides[m]))
		for p := range rules.PlatformOverrides[m] {
			platforms = append(platforms, string(p))
		}
		sort.Strings(platforms)
		fmt.Printf("  %s: %s\n", m, strings.Join(platforms, ", "))
	}
	fmt.Println("ignored visibilities:")
	for _, v := range sortedKeys(rules.IgnoredVisibilities) {
		if v == "" {
			v = "(empty)"
		}
		fmt.Printf("  - %s\n", v)
	}
	fmt.Println("ignored modifiers:")
	for _, m := range sortedKeys(rules.IgnoredModifiers) {
		fmt.Printf("  - %s\n", m)
	}
	return nil
}

func sortedKeys[K ~string](set map[K]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, string(k))
	}
	sort.Strings(out)
	return out
}

func sortedOverrideKeys(overrides map[model.ExtraModifier]map[model.Platform]struct{}) []model.ExtraModifier {
	out := make([]model.ExtraModifier, 0, len(overrides))
	for m := range overrides {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
