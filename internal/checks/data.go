package checks

import (
	"context"
	"fmt"
)

func (s *Suite) checkDataServices(ctx context.Context, rec *recorder) bool {
	paths, expect := s.config.Paths, s.config.Expect

	initializer, err := s.source(paths.DataInitializer)
	if err != nil {
		return rec.Fail("Data Initializer", fmt.Sprintf("Data initializer check failed: %v", err))
	}
	if !initializer.Contains("DEFAULT_COMPONENTS") || initializer.Len() <= expect.MinInitializerSize {
		return rec.Fail("Default Components Data", "Default components data missing or incomplete")
	}
	rec.Pass("Default Components Data",
		fmt.Sprintf("Default components defined with specifications (%d bytes)", initializer.Len()))

	if !initializer.Contains("initializeDefaultData") {
		return rec.Fail("Initialization Logic", "Data initialization function missing")
	}
	rec.Pass("Initialization Logic", "Data initialization function implemented")

	auth, err := s.source(paths.AuthContext)
	if err != nil {
		return rec.Fail("AsyncStorage Check", fmt.Sprintf("AsyncStorage check failed: %v", err))
	}
	if !auth.ContainsAll("AsyncStorage", "auth_token") {
		return rec.Fail("AsyncStorage Integration", "AsyncStorage integration missing or incomplete")
	}
	rec.Pass("AsyncStorage Integration", "AsyncStorage properly integrated for auth tokens")

	if auth.Contains("mockLogin") {
		rec.Pass("Mock Login Support", "Mock login functionality implemented for testing")
	} else {
		rec.Warn("Mock Login Support", "Mock login functionality not found")
	}

	return true
}
