package execution

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"rncheck/internal/logging"
)

// Runner executes commands as local processes
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a new Runner
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{logger: logging.OrNop(logger)}
}

// Run executes cmd and waits for it, killing it once the timeout passes
func (r *Runner) Run(ctx context.Context, cmd Command) Result {
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	proc := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	proc.Dir = cmd.Dir
	proc.Env = append(os.Environ(), cmd.Env...)
	// Don't wait on grandchildren holding the pipes after a kill
	proc.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	start := time.Now()
	err := proc.Run()
	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.TimedOut = true
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		result.Err = err
		result.ExitCode = -1
	}

	r.logger.Debug("process finished",
		zap.String("name", cmd.Name),
		zap.Strings("args", cmd.Args),
		zap.String("dir", cmd.Dir),
		zap.Bool("success", result.Success()),
		zap.Int("exit_code", result.ExitCode),
		zap.Bool("timed_out", result.TimedOut),
		zap.Duration("duration", result.Duration),
	)

	return result
}
