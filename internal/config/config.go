package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// App under test
	AppRoot        string `yaml:"root"`
	MetroURL       string `yaml:"metro_url"`
	NodeBinary     string `yaml:"node"`
	FirebaseScript string `yaml:"firebase_script"`

	// Output settings
	OutputJSONFile string        `yaml:"output_file"`
	OutputJSONDir  string        `yaml:"output_dir"`
	History        HistoryConfig `yaml:"history"`

	Timeouts Timeouts     `yaml:"timeouts"`
	Paths    Paths        `yaml:"paths"`
	Expect   Expectations `yaml:"expect"`

	// Extra variables from the app's .env, passed to spawned processes
	Env map[string]string `yaml:"-"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// HistoryConfig selects where run reports are archived
type HistoryConfig struct {
	Driver string `yaml:"driver"`
	Table  string `yaml:"table"`
	Limit  int    `yaml:"limit"`
}

// Timeouts are the fixed per-call limits
type Timeouts struct {
	MetroStatus     time.Duration `yaml:"metro_status"`
	Bundle          time.Duration `yaml:"bundle"`
	SourceMap       time.Duration `yaml:"source_map"`
	Firebase        time.Duration `yaml:"firebase"`
	FocusedStatus   time.Duration `yaml:"focused_status"`
	FocusedFirebase time.Duration `yaml:"focused_firebase"`
}

// Paths are app files relative to AppRoot
type Paths struct {
	FirebaseConfig  string   `yaml:"firebase_config"`
	FirebaseService string   `yaml:"firebase_service"`
	DataInitializer string   `yaml:"data_initializer"`
	AuthContext     string   `yaml:"auth_context"`
	TSConfig        string   `yaml:"tsconfig"`
	MetroConfig     string   `yaml:"metro_config"`
	PackageJSON     string   `yaml:"package_json"`
	Contexts        []string `yaml:"contexts"`
}

// Expectations are the literal identifiers and thresholds the checks compare against
type Expectations struct {
	FirebaseProject      string   `yaml:"firebase_project"`
	RetryHelper          string   `yaml:"retry_helper"`
	EmptyCollection      string   `yaml:"empty_collection"`
	MetroRunning         string   `yaml:"metro_running"`
	MinBundleBytes       int      `yaml:"min_bundle_bytes"`
	MinInitializerSize   int      `yaml:"min_initializer_size"`
	ComponentMethods     []string `yaml:"component_methods"`
	ComponentCategories  []string `yaml:"component_categories"`
	MinCategories        int      `yaml:"min_categories"`
	ProjectTemplates     []string `yaml:"project_templates"`
	MinTemplates         int      `yaml:"min_templates"`
	FilterFeatures       []string `yaml:"filter_features"`
	DifficultyLevels     []string `yaml:"difficulty_levels"`
	ProjectMethods       []string `yaml:"project_methods"`
	RequiredDependencies []string `yaml:"required_dependencies"`
	FocusedMethods       []string `yaml:"focused_methods"`
	FocusedThreshold     int      `yaml:"focused_threshold"`
	PartialRatio         float64  `yaml:"partial_ratio"`
}

// Flags holds command-line flags
type Flags struct {
	Root       string
	MetroURL   string
	ConfigFile string
	Only       string
	Progress   bool
	NoColor    bool
	Verbose    bool
	History    string
	Limit      int
}

// New creates a new Config with defaults
func New() *Config {
	paths := DefaultPaths
	paths.Contexts = make([]string, len(DefaultPaths.Contexts))
	copy(paths.Contexts, DefaultPaths.Contexts)

	return &Config{
		AppRoot:        DefaultAppRoot,
		MetroURL:       DefaultMetroURL,
		NodeBinary:     DefaultNodeBinary,
		FirebaseScript: DefaultFirebaseScript,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		History: HistoryConfig{
			Driver: DefaultHistoryDriver,
			Table:  DefaultHistoryTable,
			Limit:  DefaultHistoryLimit,
		},
		Timeouts: DefaultTimeouts,
		Paths:    paths,
		Expect:   DefaultExpectations(),
		Env:      map[string]string{},
	}
}

// Load builds the config: defaults, then the YAML file, then .env and the
// process environment, then flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if root := firstNonEmpty(flags.Root, os.Getenv(EnvRoot)); root != "" {
		cfg.AppRoot = root
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.loadDotEnv(); err != nil {
		return nil, err
	}
	cfg.applyEnv(os.LookupEnv)
	cfg.applyFlags()

	return cfg, nil
}

func (c *Config) loadFile() error {
	path := c.Flags.ConfigFile
	explicit := path != ""
	if !explicit {
		path = c.Path(DefaultConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	return nil
}

// validate rejects values that would disable a per-call deadline or make
// every run pass.
func (c *Config) validate() error {
	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"timeouts.metro_status", c.Timeouts.MetroStatus},
		{"timeouts.bundle", c.Timeouts.Bundle},
		{"timeouts.source_map", c.Timeouts.SourceMap},
		{"timeouts.firebase", c.Timeouts.Firebase},
		{"timeouts.focused_status", c.Timeouts.FocusedStatus},
		{"timeouts.focused_firebase", c.Timeouts.FocusedFirebase},
	}
	for _, t := range timeouts {
		if t.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", t.name, t.value)
		}
	}

	if c.Expect.FocusedThreshold <= 0 {
		return fmt.Errorf("expect.focused_threshold must be positive, got %d", c.Expect.FocusedThreshold)
	}
	if c.Expect.PartialRatio <= 0 || c.Expect.PartialRatio > 1 {
		return fmt.Errorf("expect.partial_ratio must be in (0, 1], got %g", c.Expect.PartialRatio)
	}
	return nil
}

// loadDotEnv reads the app's .env without touching the process environment.
func (c *Config) loadDotEnv() error {
	path := c.Path(DefaultEnvFile)
	vars, err := godotenv.Read(path)
	if err != nil {
		// .env is optional
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	for k, v := range vars {
		c.Env[k] = v
	}
	c.applyEnv(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvMetroURL); ok && v != "" {
		c.MetroURL = v
	}
	if v, ok := lookup(EnvNode); ok && v != "" {
		c.NodeBinary = v
	}
	if v, ok := lookup(EnvHistory); ok && v != "" {
		c.History.Driver = v
	}
}

func (c *Config) applyFlags() {
	if c.Flags.Root != "" {
		c.AppRoot = c.Flags.Root
	}
	if c.Flags.MetroURL != "" {
		c.MetroURL = c.Flags.MetroURL
	}
	if c.Flags.History != "" {
		c.History.Driver = c.Flags.History
	}
	if c.Flags.Limit > 0 {
		c.History.Limit = c.Flags.Limit
	}
}

// Path resolves an app-relative path against AppRoot
func (c *Config) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.AppRoot, rel)
}

// GetFirebaseScriptPath returns the absolute path of the connectivity script
func (c *Config) GetFirebaseScriptPath() string {
	return c.Path(c.FirebaseScript)
}

// GetOutputPath returns the full path to the report JSON file.
// Resolves to an absolute path so run and view always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := c.Path(filepath.Join(c.OutputJSONDir, c.OutputJSONFile))
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// MetroPort returns the port of MetroURL, falling back to the scheme default
func (c *Config) MetroPort() string {
	u, err := url.Parse(c.MetroURL)
	if err != nil {
		return ""
	}
	if p := u.Port(); p != "" {
		return p
	}
	if u.Scheme == "https" {
		return "443"
	}
	return "80"
}

// EnvList returns the .env extras as KEY=VALUE pairs
func (c *Config) EnvList() []string {
	out := make([]string, 0, len(c.Env))
	for k, v := range c.Env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
