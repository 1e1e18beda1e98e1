package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"rncheck/internal/domain"
)

// ProgressBar shows category progress while a suite runs
type ProgressBar struct {
	bar    *progressbar.ProgressBar
	passed int
	failed int
}

// NewProgressBar creates a new progress bar over count categories
func NewProgressBar(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe("", 0, 0)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(title string, passed, failed int) string {
	label := "Running checks"
	if title != "" {
		label = title
	}
	return color.CyanString("%-20s ", label) +
		color.GreenString("[pass: %d", passed) +
		" | " +
		color.RedString("fail: %d]", failed)
}

// Advance moves the bar one category forward
func (p *ProgressBar) Advance(title string, cat *domain.Category) {
	if cat.Passed() {
		p.passed++
	} else {
		p.failed++
	}
	p.bar.Describe(describe(title, p.passed, p.failed))
	_ = p.bar.Add(1)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// counts returns the categories seen so far
func (p *ProgressBar) counts() (passed, failed int) {
	return p.passed, p.failed
}
