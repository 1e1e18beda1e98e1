package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"rncheck/internal/inspect"
)

func (s *Suite) checkAppInfrastructure(ctx context.Context, rec *recorder) bool {
	paths, expect := s.config.Paths, s.config.Expect

	var tsconfig map[string]json.RawMessage
	if err := inspect.LoadJSON(s.config.Path(paths.TSConfig), &tsconfig); err != nil {
		return rec.Fail("TypeScript Config", fmt.Sprintf("TypeScript config check failed: %v", err))
	}
	if _, ok := tsconfig["compilerOptions"]; !ok {
		return rec.Fail("TypeScript Config", "TypeScript configuration invalid")
	}
	rec.Pass("TypeScript Config", "TypeScript properly configured")

	metro, err := s.source(paths.MetroConfig)
	if err != nil {
		return rec.Fail("Metro Config", fmt.Sprintf("Metro config check failed: %v", err))
	}
	if metro.Contains("getDefaultConfig") {
		rec.Pass("Metro Config", "Metro bundler properly configured")
	} else {
		rec.Warn("Metro Config", "Metro configuration may be incomplete")
	}

	var manifest inspect.PackageManifest
	if err := inspect.LoadJSON(s.config.Path(paths.PackageJSON), &manifest); err != nil {
		return rec.Fail("Dependencies", fmt.Sprintf("Dependencies check failed: %v", err))
	}
	if missing := manifest.MissingDependencies(expect.RequiredDependencies); len(missing) > 0 {
		return rec.Fail("Dependencies", "Missing dependencies: "+strings.Join(missing, ", "))
	}
	rec.Pass("Dependencies", "All required dependencies installed")

	// Context providers only ever warn
	for _, rel := range paths.Contexts {
		s.checkContextProvider(rec, rel)
	}

	return true
}

func (s *Suite) checkContextProvider(rec *recorder, rel string) {
	name := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	path := s.config.Path(rel)

	if !inspect.Exists(path) {
		rec.Warn(name, name+" file not found")
		return
	}
	src, err := inspect.Load(path)
	if err != nil {
		rec.Warn(name, fmt.Sprintf("%s check failed: %v", name, err))
		return
	}
	if src.ContainsAll("createContext", "Provider") {
		rec.Pass(name, name+" properly implemented")
	} else {
		rec.Warn(name, name+" may be incomplete")
	}
}
