package checks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"rncheck/internal/config"
	"rncheck/internal/domain"
	"rncheck/internal/execution"
	"rncheck/internal/probe"
)

// healthyApp is a React Native checkout that satisfies every check
func healthyApp() map[string]string {
	return map[string]string{
		"src/services/firebase.ts": `
const firebaseConfig = { projectId: "atl-idea-gen" };
export const retryFirebaseOperation = async (op) => op();
`,
		"src/services/dataInitializer.ts": "export const DEFAULT_COMPONENTS = [\n" +
			strings.Repeat("  { name: 'Arduino Uno', category: 'Microcontrollers', specifications: {} },\n", 80) +
			"  { category: 'Sensors' }, { category: 'Actuators' }, { category: 'Display' },\n];\n" +
			"export async function initializeDefaultData() {}\n",
		"src/services/firebaseService.ts": `
export interface ComponentSpec { specifications: Record<string, string> }
export const getComponents = (search?: string, category?: string) => {};
export const createComponent = () => {};
export const updateComponent = () => {};
export const deleteComponent = () => {};
export const generateProjectIdeas = (skill, categories, components, time) => {};
const templates = ["smart-home-monitor", "led-controller", "plant-monitor",
  "obstacle-robot", "security-system", "weather-station"];
const levels = ["beginner", "intermediate", "advanced"];
export const getProjects = () => {};
export const saveProject = () => {};
export const updateProject = () => {};
export const deleteProject = () => {};
`,
		"src/contexts/AuthContext.tsx": `
import AsyncStorage from '@react-native-async-storage/async-storage';
const AuthContext = createContext(null);
const mockLogin = () => AsyncStorage.setItem('auth_token', 'mock');
export const AuthProvider = AuthContext.Provider;
`,
		"src/contexts/ComponentContext.tsx": "const C = createContext(null); export const ComponentProvider = C.Provider;",
		"src/contexts/ProjectContext.tsx":   "const P = createContext(null); export const ProjectProvider = P.Provider;",
		"tsconfig.json":                     `{"compilerOptions": {"strict": true}}`,
		"metro.config.js":                   "const { getDefaultConfig } = require('expo/metro-config');",
		"package.json": `{"dependencies": {
  "react-native": "0.74.0", "firebase": "10.0.0", "@react-navigation/native": "6.0.0",
  "@tanstack/react-query": "5.0.0", "react-native-paper": "5.0.0"}}`,
	}
}

func writeApp(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// metroServer fakes the Metro bundler. bundleDelay slows the bundle endpoint.
type metroServer struct {
	status      int
	statusBody  string
	bundleSize  int
	bundleDelay time.Duration
	mapStatus   int
}

func healthyMetro() *metroServer {
	return &metroServer{
		status:     http.StatusOK,
		statusBody: "packager-status:running",
		bundleSize: 4096,
		mapStatus:  http.StatusOK,
	}
}

func (m *metroServer) start(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/status", func(c *gin.Context) {
		c.String(m.status, m.statusBody)
	})
	router.GET("/index.bundle", func(c *gin.Context) {
		if m.bundleDelay > 0 {
			select {
			case <-time.After(m.bundleDelay):
			case <-c.Request.Context().Done():
				return
			}
		}
		c.String(http.StatusOK, strings.Repeat("b", m.bundleSize))
	})
	router.GET("/index.map", func(c *gin.Context) {
		c.String(m.mapStatus, "{}")
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL
}

// fakeExecutor returns a canned result and records the commands it saw
type fakeExecutor struct {
	mu       sync.Mutex
	result   execution.Result
	panicMsg string
	commands []execution.Command
}

func (f *fakeExecutor) Run(_ context.Context, cmd execution.Command) execution.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.result
}

func firebaseOK() *fakeExecutor {
	return &fakeExecutor{result: execution.Result{
		Stdout: "✅ Firestore connection successful! Found 17 documents in components collection",
	}}
}

// capturePrinter keeps every record it was asked to print
type capturePrinter struct {
	banners []string
	started []string
	records []domain.Detail
	ended   []domain.Status
}

func (p *capturePrinter) Banner(suite string) { p.banners = append(p.banners, suite) }
func (p *capturePrinter) CategoryStart(c *domain.Category, banner string) {
	p.started = append(p.started, c.Key)
}
func (p *capturePrinter) Record(_ *domain.Category, d domain.Detail) {
	p.records = append(p.records, d)
}
func (p *capturePrinter) CategoryEnd(c *domain.Category) { p.ended = append(p.ended, c.Status) }

type fixture struct {
	cfg      *config.Config
	executor *fakeExecutor
	printer  *capturePrinter
	suite    *Suite
}

func newFixture(t *testing.T, files map[string]string, metro *metroServer, executor *fakeExecutor) *fixture {
	t.Helper()
	cfg := config.New()
	cfg.AppRoot = writeApp(t, files)
	cfg.MetroURL = metro.start(t)

	printer := &capturePrinter{}
	return &fixture{
		cfg:      cfg,
		executor: executor,
		printer:  printer,
		suite:    NewSuite(cfg, probe.NewProber(cfg.MetroURL, nil), executor, printer, nil),
	}
}

func findDetail(c *domain.Category, test string) (domain.Detail, bool) {
	for _, d := range c.Details {
		if d.Test == test {
			return d, true
		}
	}
	return domain.Detail{}, false
}
