package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"rncheck/internal/domain"
	"rncheck/internal/storage"
)

const (
	ruleWidth       = 70
	failuresPerCat  = 3
	suiteFullTitle  = "React Native Idea Generator Backend Testing"
	suiteFocusTitle = "React Native Idea Generator - Focused Backend Testing"
)

// Formatter formats and displays output
type Formatter struct {
	out   io.Writer
	quiet bool

	cyan   *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	white  *color.Color
	bold   *color.Color
}

// NewFormatter creates a new Formatter writing to out. Quiet suppresses
// the per-check lines, leaving banners and the summary.
func NewFormatter(out io.Writer, quiet bool) *Formatter {
	return &Formatter{
		out:    out,
		quiet:  quiet,
		cyan:   color.New(color.FgCyan),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		white:  color.New(color.FgWhite),
		bold:   color.New(color.Bold),
	}
}

func rule() string {
	return strings.Repeat("=", ruleWidth)
}

// Banner prints the run header
func (f *Formatter) Banner(suite string) {
	title := suiteFullTitle
	if suite == domain.SuiteFocused {
		title = suiteFocusTitle
	}
	f.cyan.Fprintf(f.out, "🚀 Starting %s\n", title)
	fmt.Fprintln(f.out, rule())
}

// CategoryStart prints the category heading
func (f *Formatter) CategoryStart(cat *domain.Category, banner string) {
	if f.quiet {
		return
	}
	f.cyan.Fprintf(f.out, "\n🔄 %s\n", banner)
}

// Record prints one check line, e.g. "[METRO_SERVER] Status Endpoint: ✅ PASS"
func (f *Formatter) Record(cat *domain.Category, d domain.Detail) {
	if f.quiet {
		return
	}
	f.outcomeColor(d.Outcome).Fprintf(f.out, "[%s] %s: %s\n", strings.ToUpper(cat.Key), d.Test, d.Outcome)
	if d.Message != "" {
		fmt.Fprintf(f.out, "  └─ %s\n", d.Message)
	}
}

// CategoryEnd prints how the category finished
func (f *Formatter) CategoryEnd(cat *domain.Category) {
	if f.quiet {
		return
	}
	switch cat.Status {
	case domain.StatusPass:
		f.green.Fprintf(f.out, "✅ %s tests completed successfully\n", cat.Title)
	case domain.StatusError:
		f.red.Fprintf(f.out, "💥 %s tests crashed: %s\n", cat.Title, cat.Crash)
	default:
		f.red.Fprintf(f.out, "❌ %s tests failed\n", cat.Title)
	}
}

func (f *Formatter) outcomeColor(o domain.Outcome) *color.Color {
	switch o {
	case domain.Pass:
		return f.green
	case domain.Fail:
		return f.red
	}
	return f.yellow
}

func (f *Formatter) statusLine(cat *domain.Category) {
	if cat.Skipped {
		f.white.Fprintf(f.out, "⏭️ %s: SKIPPED\n", cat.Title)
		return
	}
	switch cat.Status {
	case domain.StatusPass:
		f.green.Fprintf(f.out, "✅ %s: PASS\n", cat.Title)
	case domain.StatusFail:
		f.red.Fprintf(f.out, "❌ %s: FAIL\n", cat.Title)
	default:
		f.yellow.Fprintf(f.out, "⚠️ %s: %s\n", cat.Title, strings.ToUpper(string(cat.Status)))
	}
}

// PrintSummary prints the end-of-run summary for report
func (f *Formatter) PrintSummary(report *domain.Report) {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, rule())
	if report.Suite == domain.SuiteFocused {
		f.bold.Fprintln(f.out, "📊 FOCUSED TEST RESULTS")
	} else {
		f.bold.Fprintln(f.out, "📊 TEST SUMMARY")
	}
	fmt.Fprintln(f.out, rule())

	for _, cat := range report.Categories {
		f.statusLine(cat)
		if cat.Status != domain.StatusFail {
			continue
		}
		failures := cat.Failures()
		if len(failures) > failuresPerCat {
			failures = failures[:failuresPerCat]
		}
		for _, d := range failures {
			fmt.Fprintf(f.out, "  └─ %s: %s\n", d.Test, d.Message)
		}
	}

	fmt.Fprintln(f.out)
	f.printStatsTable(report)

	if report.Suite == domain.SuiteFocused {
		f.printFocusedVerdict(report)
		return
	}

	fmt.Fprintf(f.out, "\n🎯 Overall Result: %d/%d test categories passed\n", report.Passed, report.Total)
	switch report.Verdict {
	case domain.VerdictSuccess:
		f.green.Fprintln(f.out, "🎉 All backend services are working correctly!")
	case domain.VerdictPartial:
		f.yellow.Fprintln(f.out, "⚠️ Most backend services working, some issues found")
	default:
		f.red.Fprintln(f.out, "❌ Multiple backend service failures detected")
	}
}

func (f *Formatter) printFocusedVerdict(report *domain.Report) {
	f.green.Fprintf(f.out, "\n✅ Passed: %d/%d tests\n", report.Passed, report.Total)
	if report.Verdict == domain.VerdictSuccess {
		f.green.Fprintln(f.out, "🎉 Backend services are working well!")
		return
	}
	f.red.Fprintln(f.out, "❌ Some backend services need attention")
}

func (f *Formatter) printStatsTable(report *domain.Report) {
	pass, fail, warn := report.Counts()

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Run ID", report.RunID, f.white},
		{"Checks Passed", fmt.Sprint(pass), f.green},
		{"Checks Failed", fmt.Sprint(fail), f.red},
		{"Checks Warned", fmt.Sprint(warn), f.yellow},
		{"Duration", fmt.Sprintf("%.2fs", report.Seconds), f.white},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬──────────────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.c.Fprintf(f.out, "%-36s", row.value)
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼──────────────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴──────────────────────────────────────┘")
}

// PrintCategoryList prints the categories of a suite with their keys
func (f *Formatter) PrintCategoryList(keys, titles []string) {
	f.green.Fprintf(f.out, "Found %d categor(ies):\n\n", len(keys))
	for i := range keys {
		connector := "├──"
		if i == len(keys)-1 {
			connector = "└──"
		}
		f.cyan.Fprintf(f.out, "%s %s", connector, keys[i])
		fmt.Fprintf(f.out, " (%s)\n", titles[i])
	}
}

// PrintHistory prints recent runs, newest first
func (f *Formatter) PrintHistory(runs []storage.RunSummary) {
	if len(runs) == 0 {
		f.yellow.Fprintln(f.out, "No runs recorded yet")
		return
	}

	f.bold.Fprintf(f.out, "%-10s %-8s %-20s %-8s %-9s %s\n", "RUN", "SUITE", "STARTED", "PASSED", "DURATION", "VERDICT")
	for _, run := range runs {
		fmt.Fprintf(f.out, "%-10s %-8s %-20s %-8s %-9s ",
			shortID(run.RunID),
			run.Suite,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d/%d", run.Passed, run.Total),
			fmt.Sprintf("%.2fs", run.Seconds),
		)
		f.verdictColor(run.Verdict).Fprintln(f.out, run.Verdict)
	}
}

func (f *Formatter) verdictColor(v domain.Verdict) *color.Color {
	switch v {
	case domain.VerdictSuccess:
		return f.green
	case domain.VerdictPartial:
		return f.yellow
	}
	return f.red
}
