package engine

import (
	"github.com/bianoble/skill-link/internal/logging"
	"github.com/bianoble/skill-link/internal/source"
	"github.com/bianoble/skill-link/internal/target"
	"github.com/bianoble/skill-link/pkg/skilllink"
)

// Options configures a full reconciliation run.
type Options struct {
	SourceDir string
	Targets   []target.Dir
	Preview   bool
}

// Run reconciles every target sequentially and aggregates counters.
// Source enumeration happens first; if it fails, no target is touched.
func Run(opts Options) (*skilllink.Report, error) {
	log := logging.GetLogger("engine")

	skills, err := source.List(opts.SourceDir)
	if err != nil {
		return nil, err
	}
	if len(opts.Targets) == 0 {
		return nil, target.ErrNoTargets
	}
	log.Info().
		Int("skills", len(skills)).
		Int("targets", len(opts.Targets)).
		Bool("preview", opts.Preview).
		Msg("starting run")

	rec := &Reconciler{Preview: opts.Preview}
	rep := &skilllink.Report{}
	for _, tgt := range opts.Targets {
		tr := rec.Reconcile(tgt, skills)
		rep.Counters.Add(tr.Counters)
		rep.Targets = append(rep.Targets, tr)
	}
	return rep, nil
}

// Prune sweeps broken links from every target without creating anything.
func Prune(targets []target.Dir, preview bool) (*skilllink.Report, error) {
	if len(targets) == 0 {
		return nil, target.ErrNoTargets
	}

	rec := &Reconciler{Preview: preview}
	rep := &skilllink.Report{}
	for _, tgt := range targets {
		tr := skilllink.TargetReport{Target: tgt.Path}
		tr.Swept = rec.sweep(tgt, &tr.Counters)
		rep.Counters.Add(tr.Counters)
		rep.Targets = append(rep.Targets, tr)
	}
	return rep, nil
}
