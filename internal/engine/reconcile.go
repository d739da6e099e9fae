// Package engine implements the reconciliation core: it brings each
// target directory in line with the skills source by creating, keeping,
// or refusing symlinks, and reports every decision it makes.
package engine

import (
	"os"
	"path/filepath"

	"github.com/bianoble/skill-link/internal/linkstate"
	"github.com/bianoble/skill-link/internal/logging"
	"github.com/bianoble/skill-link/internal/pathutil"
	"github.com/bianoble/skill-link/internal/sandbox"
	"github.com/bianoble/skill-link/internal/source"
	"github.com/bianoble/skill-link/internal/target"
	"github.com/bianoble/skill-link/pkg/skilllink"
)

// Reconciler mirrors skills into one target directory at a time.
//
// Preview gates every mutation point but no decision logic, so a preview
// run reports exactly the decisions a mutating run would make on the
// same filesystem state.
type Reconciler struct {
	Preview bool
}

// Reconcile computes and, unless previewing, applies the minimal set of
// actions bringing tgt in line with skills. Skills are processed in the
// order given; failures on one entry never stop the rest.
func (r *Reconciler) Reconcile(tgt target.Dir, skills []source.Skill) skilllink.TargetReport {
	log := logging.GetLogger("engine")
	rep := skilllink.TargetReport{Target: tgt.Path}

	// Sweep broken links first, over everything in the target — not just
	// current skill names. This reclaims links left behind by skills that
	// were removed from the source, and clears the way for re-creation of
	// names processed below.
	rep.Swept = r.sweep(tgt, &rep.Counters)

	for _, sk := range skills {
		d := r.reconcileSkill(tgt, sk)
		switch d.Kind {
		case skilllink.Created:
			rep.Counters.Created++
		case skilllink.SkippedForeignLink, skilllink.SkippedOccupied:
			rep.Counters.Skipped++
		case skilllink.Failed:
			rep.Counters.Failed++
		}
		log.Debug().
			Str("skill", sk.Name).
			Str("target", tgt.Path).
			Str("decision", string(d.Kind)).
			Msg("reconciled entry")
		rep.Decisions = append(rep.Decisions, d)
	}
	return rep
}

// sweep removes every broken symlink directly inside the target.
// Deletion failures are logged and skipped: cleanup is best effort.
func (r *Reconciler) sweep(tgt target.Dir, counters *skilllink.Counters) []skilllink.Decision {
	log := logging.GetLogger("engine")

	entries, err := os.ReadDir(tgt.Path)
	if err != nil {
		log.Warn().Err(err).Str("target", tgt.Path).Msg("cannot list target for sweep")
		return nil
	}

	var swept []skilllink.Decision
	for _, e := range entries {
		if e.Type()&os.ModeSymlink == 0 {
			continue
		}
		st := linkstate.Inspect(filepath.Join(tgt.Path, e.Name()))
		if st.Kind != linkstate.BrokenLink {
			continue
		}
		if !r.Preview {
			if err := sandbox.Remove(tgt.Path, e.Name()); err != nil {
				log.Warn().Err(err).Str("entry", e.Name()).Msg("cannot delete broken link")
				continue
			}
			log.Info().Str("entry", e.Name()).Str("was", st.RawTarget).Msg("deleted broken link")
		}
		counters.Deleted++
		swept = append(swept, skilllink.Decision{
			Skill:  e.Name(),
			Target: tgt.Path,
			Kind:   skilllink.DeletedBroken,
			Detail: st.RawTarget,
		})
	}
	return swept
}

// reconcileSkill yields the single terminal decision for one skill.
func (r *Reconciler) reconcileSkill(tgt target.Dir, sk source.Skill) skilllink.Decision {
	d := skilllink.Decision{Skill: sk.Name, Target: tgt.Path}

	linkPath, err := sandbox.EntryPath(tgt.Path, sk.Name)
	if err != nil {
		d.Kind = skilllink.Failed
		d.Detail = err.Error()
		return d
	}

	st := linkstate.Inspect(linkPath)
	switch st.Kind {
	case linkstate.Occupied:
		d.Kind = skilllink.SkippedOccupied
		return d
	case linkstate.ValidLink:
		if st.Resolved == pathutil.Resolve(sk.Path) {
			d.Kind = skilllink.AlreadyLinked
			d.Detail = st.Resolved
			return d
		}
		// A link pointing elsewhere belongs to the user or another
		// tool. Never overwrite it.
		d.Kind = skilllink.SkippedForeignLink
		d.Detail = st.Resolved
		return d
	}

	// Absent — or a broken link the sweep claimed, which a mutating run
	// has already removed. Previews must decide identically, so broken
	// falls through to creation here too.
	encoded := linkstate.EncodeTarget(pathutil.Resolve(sk.Path))
	d.Kind = skilllink.Created
	d.Detail = encoded
	if r.Preview {
		return d
	}
	if err := sandbox.Symlink(tgt.Path, sk.Name, encoded); err != nil {
		d.Kind = skilllink.Failed
		d.Detail = err.Error()
	}
	return d
}
