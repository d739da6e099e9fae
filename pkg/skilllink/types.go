// Package skilllink exposes the result types produced by a reconciliation
// run: the per-entry decisions, per-target reports, and aggregate counters.
// Embedders consume these; the engine itself lives in internal packages.
package skilllink

// DecisionKind classifies the terminal outcome for one (target, skill) pair.
type DecisionKind string

const (
	// Created means a link was made (or would be, in preview mode).
	Created DecisionKind = "created"
	// AlreadyLinked means the target entry is a link resolving to the skill.
	AlreadyLinked DecisionKind = "already-linked"
	// SkippedForeignLink means a link exists but points somewhere else.
	// Links owned by the user or another tool are never overwritten.
	SkippedForeignLink DecisionKind = "skipped-foreign-link"
	// SkippedOccupied means a real file or directory holds the entry name.
	SkippedOccupied DecisionKind = "skipped-occupied"
	// DeletedBroken means a dangling link was removed during the sweep.
	DeletedBroken DecisionKind = "deleted-broken"
	// Failed means the filesystem rejected a mutation for this entry.
	Failed DecisionKind = "failed"
)

// Decision records the outcome for one skill in one target directory.
type Decision struct {
	Skill  string
	Target string
	Kind   DecisionKind
	// Detail carries the link destination for Created/AlreadyLinked,
	// the foreign referent for SkippedForeignLink, the stale raw target
	// for DeletedBroken, and the error text for Failed.
	Detail string
}

// Counters accumulates outcomes across entries and targets within one run.
// A value, not shared state: each reconciliation returns its own delta and
// the orchestrator folds them together.
type Counters struct {
	Created int
	Skipped int
	Deleted int
	Failed  int
}

// Add folds another counter delta into c.
func (c *Counters) Add(other Counters) {
	c.Created += other.Created
	c.Skipped += other.Skipped
	c.Deleted += other.Deleted
	c.Failed += other.Failed
}

// TargetReport holds the outcome of reconciling one target directory.
type TargetReport struct {
	Target string
	// Swept lists broken links removed before per-skill processing.
	Swept []Decision
	// Decisions lists one terminal outcome per skill, in skill order.
	Decisions []Decision
	Counters  Counters
}

// Report is the aggregate outcome of one invocation across all targets.
type Report struct {
	Targets  []TargetReport
	Counters Counters
}
