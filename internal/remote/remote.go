// Package remote fetches status text from the paired device over SSH.
package remote

import (
	"context"
	"strings"
)

// Runner executes a single command on the paired device and returns its
// captured standard output. Implementations must honor ctx cancellation.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
}

// Result is the outcome of one remote command. A failure is distinguishable
// from an empty success: Err is non-empty when the command could not be run
// or did not complete, and Output may still carry partial text.
type Result struct {
	Output string `json:"output"`
	Err    string `json:"error,omitempty"`
}

// Unreachable reports whether the command failed rather than returning
// (possibly empty) output.
func (r Result) Unreachable() bool { return r.Err != "" }

// Report holds the three remote metrics shown on the status page.
type Report struct {
	Uptime     Result `json:"uptime"`
	CPUInfo    Result `json:"cpu_info"`
	MemoryInfo Result `json:"memory_info"`
}

// The three fixed commands run against the paired device, one session each.
const (
	uptimeCommand  = "cat /proc/uptime"
	cpuInfoCommand = "cat /proc/cpuinfo"
	memInfoCommand = "cat /proc/meminfo"
)

// Fetch runs the three status commands against the paired device. Each
// command is its own session; a nil runner (no remote host configured)
// marks every metric unreachable.
func Fetch(ctx context.Context, runner Runner) Report {
	return Report{
		Uptime:     run(ctx, runner, uptimeCommand),
		CPUInfo:    run(ctx, runner, cpuInfoCommand),
		MemoryInfo: run(ctx, runner, memInfoCommand),
	}
}

func run(ctx context.Context, runner Runner, command string) Result {
	if runner == nil {
		return Result{Err: "remote host not configured"}
	}
	out, err := runner.Run(ctx, command)
	out = strings.TrimSpace(out)
	if err != nil {
		return Result{Output: out, Err: err.Error()}
	}
	return Result{Output: out}
}
