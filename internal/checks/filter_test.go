package checks

import (
	"testing"
)

var fullKeys = []string{
	KeyMetroServer,
	KeyFirebaseServices,
	KeyDataServices,
	KeyComponentDatabase,
	KeyProjectGenerator,
	KeyAppInfrastructure,
}

func TestFilterKeys(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected int // Expected number of matches
	}{
		{name: "empty pattern returns all", pattern: "", expected: 6},
		{name: "exact key", pattern: "metro_server", expected: 1},
		{name: "wildcard prefix", pattern: "metro*", expected: 1},
		{name: "wildcard substring", pattern: "*service*", expected: 2},
		{name: "simple contains match", pattern: "database", expected: 1},
		{name: "comma alternatives", pattern: "metro*, app_*", expected: 2},
		{name: "multiple wildcards", pattern: "*a*_*e*", expected: 3},
		{name: "wildcard prefix is anchored", pattern: "data*", expected: 1},
		{name: "wildcard suffix is anchored", pattern: "*_services", expected: 2},
		{name: "fragments must keep their order", pattern: "*database*component*", expected: 0},
		{name: "malformed pattern matches nothing", pattern: "metro[", expected: 0},
		{name: "no matches", pattern: "*nonexistent*", expected: 0},
		{name: "question mark needs full match", pattern: "metro_serve?", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterKeys(fullKeys, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d (%v)", tt.expected, len(result), result)
			}
		})
	}
}

func TestMatchKey_EdgeCases(t *testing.T) {
	t.Run("only wildcards matches via filepath.Match", func(t *testing.T) {
		if !MatchKey("metro_server", "*") {
			t.Error("expected * to match")
		}
	})

	t.Run("blank alternatives are ignored", func(t *testing.T) {
		if MatchKey("metro_server", ", ,") {
			t.Error("expected no match for blank alternatives")
		}
	})

	t.Run("prefix wildcard does not match inside a key", func(t *testing.T) {
		if MatchKey(KeyComponentDatabase, "data*") {
			t.Error("data* should not select component_database")
		}
		if !MatchKey(KeyDataServices, "data*") {
			t.Error("data* should select data_services")
		}
	})

	t.Run("empty key list", func(t *testing.T) {
		if got := FilterKeys(nil, "metro*"); len(got) != 0 {
			t.Errorf("expected empty result, got %d items", len(got))
		}
	})
}
