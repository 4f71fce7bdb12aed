package runner

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/galaxy-admin/internal/logger"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Run(t *testing.T) {
	requireSh(t)

	var buf bytes.Buffer
	r := NewExecRunner(logger.NewLogger("test", zerolog.DebugLevel, &buf))

	require.NoError(t, r.Run(context.Background(), "sh", []string{"-c", "echo hello"}))
	assert.Contains(t, buf.String(), "sh: hello")
}

func TestExecRunner_Failure(t *testing.T) {
	requireSh(t)

	r := NewExecRunner(logger.Nop())
	err := r.Run(context.Background(), "sh", []string{"-c", "echo denied >&2; exit 3"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, err.Error(), "denied")
}

func TestExecRunner_CancelledContext(t *testing.T) {
	requireSh(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewExecRunner(logger.Nop()).Run(ctx, "sh", []string{"-c", "sleep 5"})
	assert.Error(t, err)
}
