// Package app implements the application layer for lancet.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.lancet.dev/lancet/internal/adapters/store" //nolint:depguard // Wired in app layer
	"go.lancet.dev/lancet/internal/core/domain"
	"go.lancet.dev/lancet/internal/core/ports"
	"go.lancet.dev/lancet/internal/engine/graph"
	"go.lancet.dev/lancet/internal/engine/policy"
	"go.trai.ch/zerr"
)

// App orchestrates one verification-scope run:
// scan -> build graph -> invert -> blast radius -> decide.
type App struct {
	loader    ports.ConfigLoader
	scanner   ports.Scanner
	builder   *graph.Builder
	policy    *policy.Policy
	telemetry ports.Telemetry
	log       ports.Logger

	configPath string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.Scanner,
	builder *graph.Builder,
	pol *policy.Policy,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		scanner:   scanner,
		builder:   builder,
		policy:    pol,
		telemetry: telemetry,
		log:       log,
	}
}

// SetConfigPath sets the configuration file used by subsequent runs.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// Decide computes the verification scope for one changed file.
//
// Engine failures never propagate as errors: a failed graph build for the
// target degrades to a FULL decision. The only genuine errors are a missing
// target argument and an unreadable or invalid configuration.
func (a *App) Decide(ctx context.Context, target string) (*domain.Decision, error) {
	cfg, absTarget, err := a.prepare(target)
	if err != nil {
		return nil, err
	}

	forward, reverse, failed := a.buildGraphs(ctx, cfg)

	var radius []string
	var radiusErr error
	if cause, bad := failed[absTarget]; bad {
		radiusErr = zerr.With(domain.ErrTargetUnreadable, "cause", cause.Error())
	} else {
		if !forward.Contains(absTarget) {
			a.log.Debug(fmt.Sprintf("target %s is outside the scanned graph, treating as isolated", absTarget))
		}
		radius = reverse.BlastRadius(absTarget)
	}

	_, v := a.telemetry.Record(ctx, "decide scope")
	decision := a.policy.Decide(cfg, absTarget, radius, radiusErr)
	_, _ = fmt.Fprintf(v.Stdout(), "%s: %d file(s)\n", decision.Mode, decision.Count)
	v.Complete(nil)

	a.snapshot(cfg, decision, forward.Fingerprint())

	return decision, nil
}

// DependentsReport lists who imports a file, for the graph command.
type DependentsReport struct {
	Target      string   `json:"target"`
	Direct      []string `json:"direct"`
	Transitive  []string `json:"transitive"`
	Fingerprint string   `json:"fingerprint"`
}

// Dependents reports the direct and transitive dependents of one file.
func (a *App) Dependents(ctx context.Context, target string) (*DependentsReport, error) {
	cfg, absTarget, err := a.prepare(target)
	if err != nil {
		return nil, err
	}

	forward, reverse, _ := a.buildGraphs(ctx, cfg)

	return &DependentsReport{
		Target:      absTarget,
		Direct:      reverse.Dependents(absTarget),
		Transitive:  reverse.BlastRadius(absTarget),
		Fingerprint: forward.Fingerprint(),
	}, nil
}

// prepare validates the target and loads the configuration.
func (a *App) prepare(target string) (*domain.Config, string, error) {
	if target == "" {
		return nil, "", domain.ErrTargetRequired
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, "", zerr.With(zerr.Wrap(err, "failed to resolve target path"), "target", target)
	}

	cfg, err := a.loader.Load(a.configPath)
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to load configuration")
	}

	return cfg, absTarget, nil
}

// buildGraphs scans the roots and builds both graph directions, recording
// telemetry per phase. failed maps unreadable files to their read error.
func (a *App) buildGraphs(ctx context.Context, cfg *domain.Config) (*domain.ForwardGraph, *domain.ReverseGraph, map[string]error) {
	ctx, v := a.telemetry.Record(ctx, "scan sources")
	files := a.scanner.Scan(ctx, cfg)
	_, _ = fmt.Fprintf(v.Stdout(), "%d file(s)\n", len(files))
	v.Complete(nil)

	ctx, v = a.telemetry.Record(ctx, "build import graph")
	forward, failed := a.builder.Build(ctx, cfg, files)
	v.Complete(nil)

	return forward, forward.Invert(), failed
}

// snapshot writes the decision record when a state path is configured.
// Best effort: snapshot failures are logged, never surfaced.
func (a *App) snapshot(cfg *domain.Config, decision *domain.Decision, fingerprint string) {
	if cfg.StatePath == "" {
		return
	}

	st, err := store.NewStore(cfg.StatePath)
	if err != nil {
		a.log.Warn(fmt.Sprintf("decision snapshot unavailable: %v", err))
		return
	}
	if err := st.Put(domain.DecisionRecord{
		Target:      decision.Target,
		Mode:        decision.Mode,
		Count:       decision.Count,
		Fingerprint: fingerprint,
		Timestamp:   time.Now(),
	}); err != nil {
		a.log.Warn(fmt.Sprintf("failed to snapshot decision: %v", err))
	}
}
