package drawsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// CommandRunner drives the external load-test tool and captures its combined
// output for scraping. The tool typically runs until interrupted, so hitting
// the deadline is the normal way a capture ends, not a failure.
type CommandRunner struct {
	Command string
	Args    []string
	Stdin   string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Run executes the command under the runner's deadline, writes Stdin to the
// process (the tool waits for a confirmation before starting) and returns
// everything it printed to stdout and stderr. Output captured before a
// deadline kill is returned without error.
func (c *CommandRunner) Run(ctx context.Context) ([]byte, error) {
	if c.Command == "" {
		return nil, errors.New("command must not be empty")
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Command, c.Args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if c.Stdin != "" {
		cmd.Stdin = strings.NewReader(c.Stdin)
	}

	c.Logger.Info("Running command",
		slog.String("command", c.Command),
		slog.Duration("timeout", c.Timeout))

	err := cmd.Run()
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		c.Logger.Info("Capture window elapsed, command stopped",
			slog.Int("captured_bytes", output.Len()))
		return output.Bytes(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("run %s: %w", c.Command, err)
	}

	return output.Bytes(), nil
}
