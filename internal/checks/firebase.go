package checks

import (
	"context"
	"fmt"

	"rncheck/internal/parser"
)

func (s *Suite) checkFirebaseServices(ctx context.Context, rec *recorder) bool {
	expect := s.config.Expect
	timeout := s.config.Timeouts.Firebase

	res := s.executor.Run(ctx, s.firebaseCommand(timeout))
	out := parser.NewFirebaseOutput(res.Stdout, res.Stderr, expect.EmptyCollection)
	switch {
	case res.TimedOut:
		return rec.Fail("Firebase Connectivity", "Firebase test timed out after "+seconds(timeout))
	case res.Err != nil:
		return rec.Fail("Firebase Connectivity", fmt.Sprintf("Firebase test error: %v", res.Err))
	case res.ExitCode != 0:
		return rec.Fail("Firebase Connectivity", out.Explain())
	}

	rec.Pass("Firebase Connectivity", "Firebase connection successful")
	if out.Empty() {
		rec.Warn("Data Initialization", "Components collection empty - needs initialization")
	} else if n, ok := out.DocumentCount(); ok {
		rec.Pass("Data Initialization", fmt.Sprintf("Components collection has data (%d documents)", n))
	} else {
		rec.Pass("Data Initialization", "Components collection has data")
	}

	src, err := s.source(s.config.Paths.FirebaseConfig)
	if err != nil {
		return rec.Fail("Configuration", fmt.Sprintf("Config check failed: %v", err))
	}
	if !src.Contains(expect.FirebaseProject) {
		return rec.Fail("Configuration", "Firebase config missing or incorrect")
	}
	rec.Pass("Configuration", fmt.Sprintf("Firebase config properly set for %s project", expect.FirebaseProject))

	if src.Contains(expect.RetryHelper) {
		rec.Pass("Retry Mechanism", "Firebase retry mechanism implemented")
	} else {
		rec.Warn("Retry Mechanism", "Firebase retry mechanism not found")
	}

	return true
}
