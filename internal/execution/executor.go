package execution

import (
	"context"
	"time"
)

// Command describes one external process invocation
type Command struct {
	Name    string
	Args    []string
	Dir     string
	Env     []string // appended to the inherited environment
	Timeout time.Duration
}

// Result is the outcome of running a Command
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Err      error // set when the process could not be started or waited on
	Duration time.Duration
}

// Success reports a zero exit with no execution error
func (r Result) Success() bool {
	return r.Err == nil && !r.TimedOut && r.ExitCode == 0
}

// Output returns stderr, or stdout when stderr is empty
func (r Result) Output() string {
	if r.Stderr != "" {
		return r.Stderr
	}
	return r.Stdout
}

// Executor runs external commands
type Executor interface {
	Run(ctx context.Context, cmd Command) Result
}
