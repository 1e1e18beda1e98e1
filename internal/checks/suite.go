// Package checks implements the full and focused checklists run against a
// React Native app checkout and its Metro bundler.
package checks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rncheck/internal/config"
	"rncheck/internal/domain"
	"rncheck/internal/execution"
	"rncheck/internal/inspect"
	"rncheck/internal/logging"
	"rncheck/internal/probe"
)

// Full suite category keys, in run order
const (
	KeyMetroServer       = "metro_server"
	KeyFirebaseServices  = "firebase_services"
	KeyDataServices      = "data_services"
	KeyComponentDatabase = "component_database"
	KeyProjectGenerator  = "project_generator"
	KeyAppInfrastructure = "app_infrastructure"
)

// ErrNoCategories is returned when a category filter selects nothing
var ErrNoCategories = errors.New("no categories match the filter")

type checkFunc func(ctx context.Context, rec *recorder) bool

// Definition describes one category of a suite
type Definition struct {
	Key    string
	Title  string
	Banner string
	run    checkFunc
}

// Suite runs the checklists sequentially and builds a report
type Suite struct {
	config   *config.Config
	prober   *probe.Prober
	executor execution.Executor
	printer  Printer
	progress Progress
	logger   *zap.Logger
}

// NewSuite creates a new Suite. A nil printer or logger disables that output.
func NewSuite(cfg *config.Config, prober *probe.Prober, executor execution.Executor, printer Printer, logger *zap.Logger) *Suite {
	if printer == nil {
		printer = nopPrinter{}
	}
	return &Suite{
		config:   cfg,
		prober:   prober,
		executor: executor,
		printer:  printer,
		logger:   logging.OrNop(logger),
	}
}

// SetProgress sets the progress reporter advanced after each category
func (s *Suite) SetProgress(p Progress) {
	s.progress = p
}

// FullDefinitions lists the six categories of the full suite
func (s *Suite) FullDefinitions() []Definition {
	return []Definition{
		{KeyMetroServer, "Metro Server", "Testing Metro Server (React Native Bundler)...", s.checkMetroServer},
		{KeyFirebaseServices, "Firebase Services", "Testing Firebase Service Layer...", s.checkFirebaseServices},
		{KeyDataServices, "Data Services", "Testing Data Services...", s.checkDataServices},
		{KeyComponentDatabase, "Component Database", "Testing Component Database Services...", s.checkComponentDatabase},
		{KeyProjectGenerator, "Project Generator", "Testing AI Project Generator...", s.checkProjectGenerator},
		{KeyAppInfrastructure, "App Infrastructure", "Testing App Infrastructure...", s.checkAppInfrastructure},
	}
}

// FocusedDefinitions lists the five checks of the focused suite
func (s *Suite) FocusedDefinitions() []Definition {
	return []Definition{
		{"metro_server", "Metro Server", "Testing Metro Server...", s.focusedMetro},
		{"firebase_connectivity", "Firebase Connectivity", "Testing Firebase connectivity...", s.focusedFirebase},
		{"data_initialization", "Data Initialization", "Testing data initialization...", s.focusedDataInitialization},
		{"firebase_services", "Firebase Services", "Testing Firebase service methods...", s.focusedServiceMethods},
		{"auth_context", "Auth Context", "Testing authentication context...", s.focusedAuthContext},
	}
}

// Keys returns the category keys of defs, in order
func Keys(defs []Definition) []string {
	keys := make([]string, len(defs))
	for i, def := range defs {
		keys[i] = def.Key
	}
	return keys
}

// RunFull runs the categories of the full suite matching only
func (s *Suite) RunFull(ctx context.Context, only string) (*domain.Report, error) {
	report, err := s.run(ctx, domain.SuiteFull, s.FullDefinitions(), only)
	if err != nil {
		return nil, err
	}
	report.DecideByRatio(s.config.Expect.PartialRatio)
	return report, nil
}

// RunFocused runs every check of the focused suite
func (s *Suite) RunFocused(ctx context.Context) (*domain.Report, error) {
	report, err := s.run(ctx, domain.SuiteFocused, s.FocusedDefinitions(), "")
	if err != nil {
		return nil, err
	}
	report.DecideByThreshold(s.config.Expect.FocusedThreshold)
	return report, nil
}

func (s *Suite) run(ctx context.Context, suite string, defs []Definition, only string) (*domain.Report, error) {
	selected := 0
	for _, def := range defs {
		if MatchKey(def.Key, only) {
			selected++
		}
	}
	if selected == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoCategories, only)
	}

	report := &domain.Report{
		RunID:     uuid.NewString(),
		Suite:     suite,
		AppRoot:   s.config.AppRoot,
		StartedAt: time.Now(),
	}
	s.logger.Info("run started",
		zap.String("run_id", report.RunID),
		zap.String("suite", suite),
		zap.String("root", s.config.AppRoot),
		zap.String("metro", s.config.MetroURL),
	)
	s.printer.Banner(suite)

	for _, def := range defs {
		cat := domain.NewCategory(def.Key, def.Title)
		report.Categories = append(report.Categories, cat)

		if !MatchKey(def.Key, only) {
			cat.Skipped = true
			continue
		}
		if err := ctx.Err(); err != nil {
			// Interrupted: the remaining categories never ran
			cat.MarkError(err.Error())
			continue
		}

		s.printer.CategoryStart(cat, def.Banner)
		s.runCategory(ctx, def, cat)
		s.printer.CategoryEnd(cat)

		if s.progress != nil {
			s.progress.Advance(def.Title, cat)
		}
	}
	if s.progress != nil {
		s.progress.Finish()
	}

	report.Finish(time.Since(report.StartedAt))
	return report, nil
}

// runCategory runs one category and settles its status. A panic inside the
// category marks it as error and the run carries on.
func (s *Suite) runCategory(ctx context.Context, def Definition, cat *domain.Category) {
	rec := &recorder{cat: cat, printer: s.printer, logger: s.logger}

	defer func() {
		if r := recover(); r != nil {
			cat.MarkError(fmt.Sprint(r))
			s.logger.Error("category crashed",
				zap.String("category", def.Key),
				zap.Any("panic", r),
			)
		}
	}()

	ok := def.run(ctx, rec)
	cat.Aggregate(ok)
}

// source loads an app-relative file
func (s *Suite) source(rel string) (*inspect.Source, error) {
	return inspect.Load(s.config.Path(rel))
}

// firebaseCommand builds the connectivity script invocation
func (s *Suite) firebaseCommand(timeout time.Duration) execution.Command {
	return execution.Command{
		Name:    s.config.NodeBinary,
		Args:    []string{s.config.GetFirebaseScriptPath()},
		Dir:     s.config.AppRoot,
		Env:     s.config.EnvList(),
		Timeout: timeout,
	}
}

// seconds renders a timeout the way the checklist reports it
func seconds(d time.Duration) string {
	return fmt.Sprintf("%d seconds", int(d.Seconds()))
}
