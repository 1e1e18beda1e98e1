package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reportWith(statuses ...Status) *Report {
	r := &Report{Suite: SuiteFull}
	for _, s := range statuses {
		r.Categories = append(r.Categories, &Category{Key: string(s), Status: s})
	}
	return r
}

func TestReport_DecideByRatio(t *testing.T) {
	p, f, e, u := StatusPass, StatusFail, StatusError, StatusUnknown

	tests := []struct {
		name     string
		report   *Report
		verdict  Verdict
		exitCode int
	}{
		{"all six pass", reportWith(p, p, p, p, p, p), VerdictSuccess, 0},
		{"five of six pass", reportWith(p, p, p, p, p, f), VerdictPartial, 1},
		{"five of six with crash", reportWith(p, p, e, p, p, p), VerdictPartial, 1},
		{"four of six pass", reportWith(p, p, p, p, f, f), VerdictFailure, 2},
		{"unknown counts as not passed", reportWith(p, p, p, p, p, u), VerdictPartial, 1},
		{"none pass", reportWith(f, f, f, f, f, f), VerdictFailure, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.verdict, tt.report.DecideByRatio(0.7))
			assert.Equal(t, tt.exitCode, tt.report.ExitCode())
		})
	}
}

func TestReport_ExitZeroOnlyWhenAllPass(t *testing.T) {
	statuses := []Status{StatusPass, StatusFail, StatusError, StatusUnknown}
	// every combination of two slots, rest pass
	for _, a := range statuses {
		for _, b := range statuses {
			r := reportWith(a, b, StatusPass, StatusPass, StatusPass, StatusPass)
			r.DecideByRatio(0.7)
			allPass := a == StatusPass && b == StatusPass
			assert.Equal(t, allPass, r.ExitCode() == 0, "statuses %s/%s", a, b)
		}
	}
}

func TestReport_SkippedCategoriesAreNotCounted(t *testing.T) {
	r := reportWith(StatusPass, StatusUnknown)
	r.Categories[1].Skipped = true

	assert.Equal(t, VerdictSuccess, r.DecideByRatio(0.7))
	assert.Equal(t, 1, r.Total)
	assert.Equal(t, 1, r.Passed)
}

func TestReport_DecideByThreshold(t *testing.T) {
	p, f := StatusPass, StatusFail

	r := reportWith(p, p, p, p, f)
	r.Suite = SuiteFocused
	assert.Equal(t, VerdictSuccess, r.DecideByThreshold(4))
	assert.Equal(t, 0, r.ExitCode())

	r = reportWith(p, p, p, f, f)
	r.Suite = SuiteFocused
	assert.Equal(t, VerdictFailure, r.DecideByThreshold(4))
	assert.Equal(t, 1, r.ExitCode())
}

func TestReport_Counts(t *testing.T) {
	c := NewCategory("metro_server", "Metro Server")
	c.Add("Status Endpoint", Pass, "")
	c.Add("Bundle Generation", Fail, "")
	c.Add("Source Map Generation", Warn, "")
	r := &Report{Categories: []*Category{c}}

	pass, fail, warn := r.Counts()
	assert.Equal(t, 1, pass)
	assert.Equal(t, 1, fail)
	assert.Equal(t, 1, warn)
	assert.Same(t, c, r.Category("metro_server"))
	assert.Nil(t, r.Category("missing"))
}
