package apfind

// Tracker holds the best progression seen so far.
//
// A candidate replaces the current best only if it is strictly longer, so on
// ties the first progression found is kept.
type Tracker struct {
	best         Progression
	report       func(Progression)
	improvements int
}

// NewTracker creates a Tracker. report, if non-nil, is called with every
// improvement.
func NewTracker(report func(Progression)) *Tracker {
	return &Tracker{report: report}
}

// Consider offers a candidate and reports whether it became the new best.
func (t *Tracker) Consider(p Progression) bool {
	if p.Length <= t.best.Length {
		return false
	}
	t.best = p
	t.improvements++
	if t.report != nil {
		t.report(p)
	}
	return true
}

// Best returns the current best progression.
func (t *Tracker) Best() Progression {
	return t.best
}

// Improvements returns how many times the best progression was replaced.
func (t *Tracker) Improvements() int {
	return t.improvements
}
