package config

import "time"

const (
	// DefaultAppRoot is the directory holding the React Native app under test
	DefaultAppRoot = "/app"
	// DefaultMetroURL is the Metro bundler base URL
	DefaultMetroURL = "http://localhost:8081"
	// DefaultNodeBinary is the node executable used for the Firebase script
	DefaultNodeBinary = "node"
	// DefaultFirebaseScript is the connectivity script, relative to the app root
	DefaultFirebaseScript = "test-firebase.js"
	// DefaultConfigFile is looked up in the app root when --config is not given
	DefaultConfigFile = "rncheck.yaml"
	// DefaultEnvFile is looked up in the app root
	DefaultEnvFile = ".env"
	// DefaultOutputJSONFile is the default report file name
	DefaultOutputJSONFile = "rncheck-report.json"
	// DefaultOutputJSONDir is the default report directory, relative to the app root
	DefaultOutputJSONDir = "storage"
	// DefaultHistoryDriver keeps reports in the JSON file only
	DefaultHistoryDriver = "json"
	// DefaultHistoryTable is the MySQL table for run history
	DefaultHistoryTable = "check_runs"
	// DefaultHistoryLimit is how many runs `history` lists
	DefaultHistoryLimit = 10
)

// Environment overrides, read from the process environment and the app's .env file.
const (
	EnvRoot     = "RNCHECK_ROOT"
	EnvMetroURL = "RNCHECK_METRO_URL"
	EnvNode     = "RNCHECK_NODE"
	EnvHistory  = "RNCHECK_HISTORY"
)

// DefaultTimeouts mirror the fixed per-call limits of the checklists.
var DefaultTimeouts = Timeouts{
	MetroStatus:     10 * time.Second,
	Bundle:          30 * time.Second,
	SourceMap:       20 * time.Second,
	Firebase:        30 * time.Second,
	FocusedStatus:   5 * time.Second,
	FocusedFirebase: 20 * time.Second,
}

// DefaultPaths are the app files inspected by the checks, relative to the app root.
var DefaultPaths = Paths{
	FirebaseConfig:  "src/services/firebase.ts",
	FirebaseService: "src/services/firebaseService.ts",
	DataInitializer: "src/services/dataInitializer.ts",
	AuthContext:     "src/contexts/AuthContext.tsx",
	TSConfig:        "tsconfig.json",
	MetroConfig:     "metro.config.js",
	PackageJSON:     "package.json",
	Contexts: []string{
		"src/contexts/AuthContext.tsx",
		"src/contexts/ComponentContext.tsx",
		"src/contexts/ProjectContext.tsx",
	},
}

// DefaultExpectations returns a fresh copy of the identifiers the checks look for.
func DefaultExpectations() Expectations {
	return Expectations{
		FirebaseProject:    "atl-idea-gen",
		RetryHelper:        "retryFirebaseOperation",
		EmptyCollection:    "Found 0 documents",
		MetroRunning:       "running",
		MinBundleBytes:     1000,
		MinInitializerSize: 5000,
		ComponentMethods:   []string{"getComponents", "createComponent", "updateComponent", "deleteComponent"},
		ComponentCategories: []string{
			"Microcontrollers",
			"Sensors",
			"Actuators",
			"Display",
		},
		MinCategories: 3,
		ProjectTemplates: []string{
			"smart-home-monitor",
			"led-controller",
			"plant-monitor",
			"obstacle-robot",
			"security-system",
			"weather-station",
		},
		MinTemplates:     5,
		FilterFeatures:   []string{"skill", "categories", "components", "time"},
		DifficultyLevels: []string{"beginner", "intermediate", "advanced"},
		ProjectMethods:   []string{"getProjects", "saveProject", "updateProject", "deleteProject"},
		RequiredDependencies: []string{
			"react-native",
			"firebase",
			"@react-navigation/native",
			"@tanstack/react-query",
			"react-native-paper",
		},
		FocusedMethods:   []string{"getComponents", "createComponent", "generateProjectIdeas", "saveProject"},
		FocusedThreshold: 4,
		PartialRatio:     0.7,
	}
}
