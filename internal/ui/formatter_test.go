package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rncheck/internal/domain"
	"rncheck/internal/storage"
)

func init() {
	color.NoColor = true
}

func sampleReport() *domain.Report {
	metro := domain.NewCategory("metro_server", "Metro Server")
	metro.Add("Status Endpoint", domain.Pass, "Metro server responding on port 8081")
	metro.Add("Source Map Generation", domain.Warn, "Source map generation failed (non-critical)")
	metro.Aggregate(true)

	db := domain.NewCategory("component_database", "Component Database")
	for _, m := range []string{"a", "b", "c", "d"} {
		db.Add(m+" Method", domain.Fail, m+" method missing")
	}
	db.Aggregate(false)

	fb := domain.NewCategory("firebase_services", "Firebase Services")
	fb.MarkError("node exploded")

	skipped := domain.NewCategory("app_infrastructure", "App Infrastructure")
	skipped.Skipped = true

	r := &domain.Report{
		RunID:      "0f8fad5b-d9cb-469f-a165-70867728950e",
		Suite:      domain.SuiteFull,
		Categories: []*domain.Category{metro, db, fb, skipped},
	}
	r.DecideByRatio(0.7)
	return r
}

func TestFormatter_Record(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, false)
	cat := domain.NewCategory("metro_server", "Metro Server")

	f.CategoryStart(cat, "Testing Metro Server (React Native Bundler)...")
	f.Record(cat, domain.Detail{Test: "Status Endpoint", Outcome: domain.Pass, Message: "Metro server responding on port 8081"})
	f.Record(cat, domain.Detail{Test: "Bare", Outcome: domain.Warn})
	cat.Aggregate(true)
	f.CategoryEnd(cat)

	out := buf.String()
	assert.Contains(t, out, "🔄 Testing Metro Server (React Native Bundler)...")
	assert.Contains(t, out, "[METRO_SERVER] Status Endpoint: ✅ PASS\n  └─ Metro server responding on port 8081\n")
	assert.Contains(t, out, "[METRO_SERVER] Bare: ⚠️ WARN\n")
	assert.NotContains(t, out, "Bare: ⚠️ WARN\n  └─")
	assert.Contains(t, out, "✅ Metro Server tests completed successfully")
}

func TestFormatter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)
	cat := domain.NewCategory("metro_server", "Metro Server")

	f.CategoryStart(cat, "Testing...")
	f.Record(cat, domain.Detail{Test: "Status Endpoint", Outcome: domain.Pass})
	f.CategoryEnd(cat)
	assert.Empty(t, buf.String())
}

func TestFormatter_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf, false).PrintSummary(sampleReport())
	out := buf.String()

	assert.Contains(t, out, "📊 TEST SUMMARY")
	assert.Contains(t, out, "✅ Metro Server: PASS")
	assert.Contains(t, out, "❌ Component Database: FAIL")
	assert.Contains(t, out, "⚠️ Firebase Services: ERROR")
	assert.Contains(t, out, "⏭️ App Infrastructure: SKIPPED")

	// Only the first three failures are listed
	assert.Contains(t, out, "  └─ c Method: c method missing")
	assert.NotContains(t, out, "d Method")

	assert.Contains(t, out, "🎯 Overall Result: 1/3 test categories passed")
	assert.Contains(t, out, "❌ Multiple backend service failures detected")
	assert.Contains(t, out, "0f8fad5b-d9cb-469f-a165-70867728950e")
}

func TestFormatter_PrintSummaryFocused(t *testing.T) {
	r := sampleReport()
	r.Suite = domain.SuiteFocused
	r.DecideByThreshold(1)

	var buf bytes.Buffer
	NewFormatter(&buf, false).PrintSummary(r)
	out := buf.String()
	assert.Contains(t, out, "📊 FOCUSED TEST RESULTS")
	assert.Contains(t, out, "✅ Passed: 1/3 tests")
	assert.Contains(t, out, "🎉 Backend services are working well!")
	assert.NotContains(t, out, "Overall Result")
}

func TestFormatter_PrintCategoryList(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf, false).PrintCategoryList(
		[]string{"metro_server", "firebase_services"},
		[]string{"Metro Server", "Firebase Services"},
	)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "├── metro_server (Metro Server)", lines[len(lines)-2])
	assert.Equal(t, "└── firebase_services (Firebase Services)", lines[len(lines)-1])
}

func TestProgressBar_Counts(t *testing.T) {
	p := NewProgressBar(2, io.Discard)
	pass := domain.NewCategory("a", "A")
	pass.Aggregate(true)
	fail := domain.NewCategory("b", "B")
	fail.Aggregate(false)

	p.Advance("A", pass)
	p.Advance("B", fail)
	p.Finish()

	passed, failed := p.counts()
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
}

func TestFormatter_PrintHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf, false).PrintHistory(nil)
		assert.Equal(t, "No runs recorded yet\n", buf.String())
	})

	t.Run("rows", func(t *testing.T) {
		r := sampleReport()
		r.Finish(1500 * time.Millisecond)

		var buf bytes.Buffer
		NewFormatter(&buf, false).PrintHistory([]storage.RunSummary{storage.Summarize(r)})
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "VERDICT")
		assert.Contains(t, lines[1], "0f8fad5b ")
		assert.Contains(t, lines[1], "1/3")
		assert.Contains(t, lines[1], "1.50s")
		assert.True(t, strings.HasSuffix(lines[1], "failure"))
	})
}
