package checks

import (
	"context"
	"fmt"
	"strings"
)

func (s *Suite) checkComponentDatabase(ctx context.Context, rec *recorder) bool {
	paths, expect := s.config.Paths, s.config.Expect

	svc, err := s.source(paths.FirebaseService)
	if err != nil {
		return rec.Fail("Service Check", fmt.Sprintf("Component database check failed: %v", err))
	}

	for _, method := range expect.ComponentMethods {
		if !svc.Contains(method) {
			return rec.Fail(method+" Method", method+" method missing")
		}
		rec.Pass(method+" Method", method+" method implemented")
	}

	if !svc.ContainsAll("search", "category") {
		return rec.Fail("Search & Filter", "Search and filtering functionality missing")
	}
	rec.Pass("Search & Filter", "Search and category filtering implemented")

	if !svc.ContainsAll("ComponentSpec", "specifications") {
		return rec.Fail("Component Specifications", "Component specifications support missing")
	}
	rec.Pass("Component Specifications", "Component specifications interface defined")

	// Category coverage only ever warns
	initializer, err := s.source(paths.DataInitializer)
	if err != nil {
		rec.Warn("Categories Check", fmt.Sprintf("Categories check failed: %v", err))
		return true
	}
	found := initializer.Found(expect.ComponentCategories)
	if len(found) >= expect.MinCategories {
		rec.Pass("Component Categories", "Multiple categories supported: "+strings.Join(found, ", "))
	} else {
		rec.Warn("Component Categories", "Limited categories found: "+strings.Join(found, ", "))
	}

	return true
}
