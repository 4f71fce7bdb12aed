// Package runner executes host commands on behalf of the services.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/MKhiriev/galaxy-admin/internal/logger"
)

// ExecRunner runs commands with os/exec. Standard output is logged at
// debug level; standard error ends up in the returned error.
type ExecRunner struct {
	logger *logger.Logger
}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner(log *logger.Logger) *ExecRunner {
	return &ExecRunner{logger: log}
}

// Run starts name with args and waits for it to finish. The process is
// killed when ctx is done.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug().Strs("args", args).Msgf("Running %s", name)
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	if out := strings.TrimSpace(stdout.String()); out != "" {
		r.logger.Debug().Msgf("%s: %s", name, out)
	}
	return nil
}
