package checks

import (
	"context"
	"fmt"
	"strings"
)

func (s *Suite) checkProjectGenerator(ctx context.Context, rec *recorder) bool {
	expect := s.config.Expect

	svc, err := s.source(s.config.Paths.FirebaseService)
	if err != nil {
		return rec.Fail("Generator Check", fmt.Sprintf("Project generator check failed: %v", err))
	}

	if !svc.Contains("generateProjectIdeas") {
		return rec.Fail("Generation Method", "Project generation method missing")
	}
	rec.Pass("Generation Method", "Project generation method implemented")

	templates := svc.Found(expect.ProjectTemplates)
	if len(templates) < expect.MinTemplates {
		return rec.Fail("Project Templates", fmt.Sprintf("Insufficient project templates: %d found", len(templates)))
	}
	rec.Pass("Project Templates", fmt.Sprintf("Project templates available: %d found", len(templates)))

	for _, feature := range expect.FilterFeatures {
		name := capitalize(feature) + " Filtering"
		if svc.Contains(feature) {
			rec.Pass(name, feature+" filtering implemented")
		} else {
			rec.Warn(name, feature+" filtering not found")
		}
	}

	levels := svc.Found(expect.DifficultyLevels)
	if len(levels) == len(expect.DifficultyLevels) {
		rec.Pass("Difficulty Levels", "All difficulty levels supported: "+strings.Join(levels, ", "))
	} else {
		rec.Warn("Difficulty Levels", "Limited difficulty levels: "+strings.Join(levels, ", "))
	}

	for _, method := range expect.ProjectMethods {
		if !svc.Contains(method) {
			return rec.Fail(method+" Method", method+" method missing")
		}
		rec.Pass(method+" Method", method+" method implemented")
	}

	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
