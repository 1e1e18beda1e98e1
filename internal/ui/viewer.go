package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"rncheck/internal/domain"
)

// Viewer displays a saved report
type Viewer interface {
	View(report *domain.Report) error
}

// viewItem is one detail record with its category
type viewItem struct {
	category *domain.Category
	detail   domain.Detail
}

// ReportViewer browses a report in an interactive TUI
type ReportViewer struct{}

// NewReportViewer creates a new ReportViewer
func NewReportViewer() *ReportViewer {
	return &ReportViewer{}
}

// collectItems flattens the report. onlyProblems keeps FAIL and WARN records,
// plus a synthetic record for each crashed category.
func collectItems(report *domain.Report, onlyProblems bool) []viewItem {
	var items []viewItem
	for _, cat := range report.Categories {
		if cat.Status == domain.StatusError {
			items = append(items, viewItem{
				category: cat,
				detail:   domain.Detail{Test: "Category crashed", Outcome: domain.Fail, Message: cat.Crash},
			})
		}
		for _, d := range cat.Details {
			if onlyProblems && d.Outcome == domain.Pass {
				continue
			}
			items = append(items, viewItem{category: cat, detail: d})
		}
	}
	return items
}

func outcomeTag(o domain.Outcome) string {
	switch o {
	case domain.Pass:
		return "[green]✓"
	case domain.Fail:
		return "[red]✗"
	}
	return "[yellow]!"
}

func formatItemText(item viewItem, number int) string {
	return fmt.Sprintf("%s [yellow]%d.[white] %s", outcomeTag(item.detail.Outcome), number, item.detail.Test)
}

// formatItemDetails formats a record for display using tview color tags
func formatItemDetails(item viewItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s[white]\n\n", outcomeTag(item.detail.Outcome), item.detail.Test)
	fmt.Fprintf(&b, "[cyan]Category:[white] %s (%s)\n", item.category.Title, item.category.Key)
	fmt.Fprintf(&b, "[cyan]Category status:[white] %s\n", strings.ToUpper(string(item.category.Status)))
	fmt.Fprintf(&b, "[cyan]Outcome:[white] %s\n\n", item.detail.Outcome)
	if item.detail.Message != "" {
		fmt.Fprintf(&b, "[yellow]Details:[white]\n%s\n", tview.Escape(item.detail.Message))
	}
	return b.String()
}

func formatHeader(report *domain.Report, shown int, onlyProblems bool) string {
	filter := "all records"
	if onlyProblems {
		filter = "failures and warnings"
	}
	return fmt.Sprintf(" %s run %s | %d/%d categories passed | %d %s | [yellow]W[white] toggle filter, → details, ← back, q quit ",
		report.Suite, shortID(report.RunID), report.Passed, report.Total, shown, filter)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// View displays the report until the user quits
func (rv *ReportViewer) View(report *domain.Report) error {
	app := tview.NewApplication()
	onlyProblems := false
	items := collectItems(report, onlyProblems)

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(items) {
			detailsView.SetText(formatItemDetails(items[index]))
		} else {
			detailsView.SetText("[gray]Nothing to show[white]")
		}
	}

	fill := func() {
		list.Clear()
		for i, item := range items {
			list.AddItem(formatItemText(item, i+1), "", 0, nil)
		}
		headerView.SetText(formatHeader(report, len(items), onlyProblems))
		updateDetails()
	}

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'w', 'W':
				onlyProblems = !onlyProblems
				items = collectItems(report, onlyProblems)
				fill()
				return nil
			case 'q', 'Q':
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	// Details on the right with a little padding
	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	fill()

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
