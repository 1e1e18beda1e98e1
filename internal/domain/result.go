package domain

// Outcome is the verdict of a single check
type Outcome string

const (
	Pass Outcome = "PASS"
	Fail Outcome = "FAIL"
	Warn Outcome = "WARN"
)

// Glyph returns the console marker for the outcome
func (o Outcome) Glyph() string {
	switch o {
	case Pass:
		return "✅"
	case Fail:
		return "❌"
	case Warn:
		return "⚠️"
	}
	return "•"
}

// String renders the outcome the way it is logged, e.g. "✅ PASS"
func (o Outcome) String() string {
	return o.Glyph() + " " + string(o)
}

// Status is the aggregate state of a category
type Status string

const (
	StatusUnknown Status = "unknown"
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusError   Status = "error"
)

// Detail is one recorded check inside a category
type Detail struct {
	Test    string  `json:"test"`
	Outcome Outcome `json:"status"`
	Message string  `json:"details"`
}

// Category groups the checks of one checklist section
type Category struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Status  Status   `json:"status"`
	Skipped bool     `json:"skipped,omitempty"`
	Crash   string   `json:"crash,omitempty"` // panic text when Status is error
	Details []Detail `json:"details"`
}

// NewCategory creates a category in the unknown state
func NewCategory(key, title string) *Category {
	return &Category{Key: key, Title: title, Status: StatusUnknown}
}

// Add appends a detail record
func (c *Category) Add(test string, outcome Outcome, message string) {
	c.Details = append(c.Details, Detail{Test: test, Outcome: outcome, Message: message})
}

// Failures returns the FAIL records in the order they were recorded
func (c *Category) Failures() []Detail {
	var out []Detail
	for _, d := range c.Details {
		if d.Outcome == Fail {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns the WARN records in the order they were recorded
func (c *Category) Warnings() []Detail {
	var out []Detail
	for _, d := range c.Details {
		if d.Outcome == Warn {
			out = append(out, d)
		}
	}
	return out
}

// Aggregate settles the category status once its checks have run.
// Any FAIL record, or a run that reported !ok, makes the category fail.
func (c *Category) Aggregate(ok bool) Status {
	if !ok || len(c.Failures()) > 0 {
		c.Status = StatusFail
	} else {
		c.Status = StatusPass
	}
	return c.Status
}

// MarkError records that the category crashed
func (c *Category) MarkError(reason string) {
	c.Status = StatusError
	c.Crash = reason
}

// Passed reports whether the category ended in pass
func (c *Category) Passed() bool {
	return c.Status == StatusPass
}
