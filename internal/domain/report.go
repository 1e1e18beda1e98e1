package domain

import (
	"errors"
	"time"
)

// ErrNoReport is returned when no report has been saved yet
var ErrNoReport = errors.New("no saved report")

// Suite names
const (
	SuiteFull    = "full"
	SuiteFocused = "focused"
)

// Verdict is the overall result of a run
type Verdict string

const (
	VerdictSuccess Verdict = "success"
	VerdictPartial Verdict = "partial"
	VerdictFailure Verdict = "failure"
)

// ExitCode maps a verdict to the process exit status
func (v Verdict) ExitCode() int {
	switch v {
	case VerdictSuccess:
		return 0
	case VerdictPartial:
		return 1
	}
	return 2
}

// Report is the complete output of one checklist run
type Report struct {
	RunID      string        `json:"run_id"`
	Suite      string        `json:"suite"`
	AppRoot    string        `json:"app_root"`
	Categories []*Category   `json:"categories"`
	Passed     int           `json:"passed"`
	Total      int           `json:"total"`
	Verdict    Verdict       `json:"verdict"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"-"`
	Seconds    float64       `json:"duration_seconds"`
}

// Category looks up a category by key
func (r *Report) Category(key string) *Category {
	for _, c := range r.Categories {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// Tally counts selected categories and the ones that passed
func (r *Report) Tally() (passed, total int) {
	for _, c := range r.Categories {
		if c.Skipped {
			continue
		}
		total++
		if c.Passed() {
			passed++
		}
	}
	return passed, total
}

// DecideByRatio sets the verdict of a full run: success when every selected
// category passed, partial when at least ratio of them did.
func (r *Report) DecideByRatio(ratio float64) Verdict {
	r.Passed, r.Total = r.Tally()
	switch {
	case r.Passed == r.Total:
		r.Verdict = VerdictSuccess
	case float64(r.Passed) >= float64(r.Total)*ratio:
		r.Verdict = VerdictPartial
	default:
		r.Verdict = VerdictFailure
	}
	return r.Verdict
}

// DecideByThreshold sets the verdict of a focused run: success when at least
// threshold checks passed, failure otherwise.
func (r *Report) DecideByThreshold(threshold int) Verdict {
	r.Passed, r.Total = r.Tally()
	if r.Passed >= threshold {
		r.Verdict = VerdictSuccess
	} else {
		r.Verdict = VerdictFailure
	}
	return r.Verdict
}

// ExitCode returns the process exit status for the report. A focused run
// only ever exits 0 or 1.
func (r *Report) ExitCode() int {
	if r.Suite == SuiteFocused {
		if r.Verdict == VerdictSuccess {
			return 0
		}
		return 1
	}
	return r.Verdict.ExitCode()
}

// Finish stamps the run duration
func (r *Report) Finish(d time.Duration) {
	r.Duration = d
	r.Seconds = d.Seconds()
}

// Counts tallies detail outcomes across all categories
func (r *Report) Counts() (pass, fail, warn int) {
	for _, c := range r.Categories {
		f, w := len(c.Failures()), len(c.Warnings())
		fail += f
		warn += w
		pass += len(c.Details) - f - w
	}
	return pass, fail, warn
}
