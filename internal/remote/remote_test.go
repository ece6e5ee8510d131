package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runnerFunc func(ctx context.Context, command string) (string, error)

func (f runnerFunc) Run(ctx context.Context, command string) (string, error) {
	return f(ctx, command)
}

func TestFetch(t *testing.T) {
	outputs := map[string]string{
		"cat /proc/uptime":  " 4242.87 8000.11 \n",
		"cat /proc/cpuinfo": "model name : QEMU Virtual CPU\n",
		"cat /proc/meminfo": "MemTotal: 512000 kB\n",
	}
	runner := runnerFunc(func(_ context.Context, command string) (string, error) {
		out, ok := outputs[command]
		require.True(t, ok, "unexpected command %q", command)
		return out, nil
	})

	rep := Fetch(context.Background(), runner)

	assert.Equal(t, "4242.87 8000.11", rep.Uptime.Output, "output is whitespace-trimmed")
	assert.Equal(t, "model name : QEMU Virtual CPU", rep.CPUInfo.Output)
	assert.Equal(t, "MemTotal: 512000 kB", rep.MemoryInfo.Output)
	assert.False(t, rep.Uptime.Unreachable())
	assert.False(t, rep.CPUInfo.Unreachable())
	assert.False(t, rep.MemoryInfo.Unreachable())
}

func TestFetchDistinguishesFailureFromEmptyOutput(t *testing.T) {
	runner := runnerFunc(func(_ context.Context, command string) (string, error) {
		if command == "cat /proc/uptime" {
			return "", errors.New("exit status 1")
		}
		return "", nil
	})

	rep := Fetch(context.Background(), runner)

	assert.True(t, rep.Uptime.Unreachable())
	assert.Equal(t, "exit status 1", rep.Uptime.Err)

	// Empty output from a successful command is an empty value, not a failure.
	assert.False(t, rep.CPUInfo.Unreachable())
	assert.Empty(t, rep.CPUInfo.Output)
}

func TestFetchWithoutRunner(t *testing.T) {
	rep := Fetch(context.Background(), nil)

	for _, res := range []Result{rep.Uptime, rep.CPUInfo, rep.MemoryInfo} {
		assert.True(t, res.Unreachable())
		assert.Contains(t, res.Err, "not configured")
	}
}

func TestNewSSHRunnerValidation(t *testing.T) {
	_, err := NewSSHRunner(SSHConfig{})
	assert.ErrorContains(t, err, "host")

	_, err = NewSSHRunner(SSHConfig{Host: "10.0.0.2"})
	assert.ErrorContains(t, err, "authentication")

	runner, err := NewSSHRunner(SSHConfig{Host: "10.0.0.2", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2:22", runner.addr)
	assert.Equal(t, "root", runner.config.User)
}
