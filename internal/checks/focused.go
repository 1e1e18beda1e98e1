package checks

import (
	"context"
	"fmt"
	"strings"

	"rncheck/internal/parser"
)

func (s *Suite) focusedMetro(ctx context.Context, rec *recorder) bool {
	res, err := s.prober.Get(ctx, statusPath, s.config.Timeouts.FocusedStatus)
	if err != nil {
		return rec.Fail("Metro server status", fmt.Sprintf("Metro server connection failed: %v", err))
	}
	if !res.OK() || !res.Contains(s.config.Expect.MetroRunning) {
		return rec.Fail("Metro server status", fmt.Sprintf("FAILED (status %d)", res.StatusCode))
	}
	rec.Pass("Metro server status", "WORKING")
	return true
}

func (s *Suite) focusedFirebase(ctx context.Context, rec *recorder) bool {
	timeout := s.config.Timeouts.FocusedFirebase
	res := s.executor.Run(ctx, s.firebaseCommand(timeout))

	switch {
	case res.TimedOut:
		return rec.Fail("Firebase connectivity", "Firebase test failed: timed out after "+seconds(timeout))
	case res.Err != nil:
		return rec.Fail("Firebase connectivity", fmt.Sprintf("Firebase test failed: %v", res.Err))
	case res.ExitCode != 0:
		return rec.Fail("Firebase connectivity", "Error: "+strings.TrimSpace(res.Output()))
	}

	rec.Pass("Firebase connectivity", "WORKING")
	out := parser.NewFirebaseOutput(res.Stdout, res.Stderr, s.config.Expect.EmptyCollection)
	if out.Empty() {
		rec.Warn("Components collection", "Components collection is empty - needs initialization")
	}
	return true
}

func (s *Suite) focusedDataInitialization(ctx context.Context, rec *recorder) bool {
	src, err := s.source(s.config.Paths.DataInitializer)
	if err != nil {
		return rec.Fail("Data initializer", fmt.Sprintf("Data initializer check failed: %v", err))
	}
	if !src.Contains("DEFAULT_COMPONENTS") || src.Len() <= s.config.Expect.MinInitializerSize {
		return rec.Fail("Data initializer", "INCOMPLETE")
	}
	rec.Pass("Data initializer", "WORKING (default components defined)")
	return true
}

func (s *Suite) focusedServiceMethods(ctx context.Context, rec *recorder) bool {
	src, err := s.source(s.config.Paths.FirebaseService)
	if err != nil {
		return rec.Fail("Firebase service methods", fmt.Sprintf("Firebase service check failed: %v", err))
	}
	if missing := src.Missing(s.config.Expect.FocusedMethods); len(missing) > 0 {
		return rec.Fail("Firebase service methods", "MISSING "+strings.Join(missing, ", "))
	}
	rec.Pass("Firebase service methods", "ALL IMPLEMENTED")
	return true
}

func (s *Suite) focusedAuthContext(ctx context.Context, rec *recorder) bool {
	src, err := s.source(s.config.Paths.AuthContext)
	if err != nil {
		return rec.Fail("Auth context", fmt.Sprintf("Auth context check failed: %v", err))
	}
	if !src.ContainsAll("mockLogin", "AsyncStorage") {
		return rec.Fail("Auth context", "INCOMPLETE")
	}
	rec.Pass("Auth context", "WORKING (includes mock login)")
	return true
}
