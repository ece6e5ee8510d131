package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procboard/procboard/internal/collector"
	"github.com/procboard/procboard/internal/remote"
)

func fullReport() *collector.Report {
	uptime := int64(4242)
	pct := 15.0
	return &collector.Report{
		Hostname:      "testhost",
		LocalTime:     "2026-08-26 10:00:00",
		UptimeSeconds: &uptime,
		CPU:           &collector.CPUInfo{Model: "Intel(R) Core(TM) i7", MHz: 1992.002},
		CPUPercent:    &pct,
		Memory:        &collector.MemoryInfo{TotalMB: 7812, UsedMB: 5859},
		OSVersion:     "Linux version 6.8.0-45-generic",
		Processes:     []collector.ProcessEntry{{PID: "123", Name: "bash"}},
		Disks:         []collector.DiskEntry{{Name: "sda", SizeMB: 953869}},
		InputDevices:  []collector.InputDevice{{Product: "USB Receiver", Manufacturer: "Logitech", Port: "2-1"}, {}},
		Network:       []collector.NetAdapter{{Interface: "eth0", Address: "fe80000000000000021122fffe334455"}},
	}
}

func okRemote() remote.Report {
	return remote.Report{
		Uptime:     remote.Result{Output: "100.10 200.20"},
		CPUInfo:    remote.Result{Output: "model name : ARMv7"},
		MemoryInfo: remote.Result{Output: "MemTotal: 512000 kB"},
	}
}

func TestPage(t *testing.T) {
	body, err := Page(fullReport(), okRemote(), "report-1")
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "<h1>System Information</h1>")
	assert.Contains(t, html, "Memory Total (MB):</strong> 7812 MB")
	assert.Contains(t, html, "Memory Used (MB):</strong> 5859 MB")
	assert.Contains(t, html, "Uptime (seconds):</strong> 4242")
	assert.Contains(t, html, "15.00%")
	assert.Contains(t, html, "1992.00")
	assert.Contains(t, html, "<li>123: bash</li>")
	assert.Contains(t, html, "<li>sda: 953869 MB</li>")
	assert.Contains(t, html, "<li>eth0: fe80000000000000021122fffe334455</li>")
	assert.Contains(t, html, "Product: USB Receiver, Manufacturer: Logitech, Port: 2-1")
	assert.Contains(t, html, "model name : ARMv7")
	assert.Contains(t, html, "report-1")
}

func TestPageEscapesCollectedText(t *testing.T) {
	rep := fullReport()
	rep.Processes = []collector.ProcessEntry{{PID: "666", Name: `<script>alert("x")</script>`}}
	rem := okRemote()
	rem.CPUInfo = remote.Result{Output: "<img src=x onerror=alert(1)>"}

	body, err := Page(rep, rem, "report-2")
	require.NoError(t, err)
	html := string(body)

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<img src=x")
}

func TestPageSentinels(t *testing.T) {
	rep := &collector.Report{Hostname: "bare"}
	body, err := Page(rep, remote.Report{
		Uptime:     remote.Result{Err: "dial 10.0.0.2:22: connection refused"},
		CPUInfo:    remote.Result{Output: ""},
		MemoryInfo: remote.Result{Err: "remote host not configured"},
	}, "report-3")
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "CPU Model:</strong> unavailable")
	assert.Contains(t, html, "Memory Total (MB):</strong> unavailable")
	assert.Contains(t, html, "Uptime (seconds):</strong> unavailable")
	assert.Contains(t, html, "unreachable (dial 10.0.0.2:22: connection refused)")
	assert.NotContains(t, html, "<h2>Hardware</h2>")
}

func TestPageAbsentDeviceAttributes(t *testing.T) {
	rep := fullReport()
	body, err := Page(rep, okRemote(), "report-4")
	require.NoError(t, err)

	// The second fixture device has no attributes at all.
	assert.Contains(t, string(body), "Product: N/A, Manufacturer: N/A, Port: N/A")
}

func TestPageEmptyRemoteSuccessIsNotUnreachable(t *testing.T) {
	rem := okRemote()
	rem.Uptime = remote.Result{Output: ""}
	body, err := Page(fullReport(), rem, "report-5")
	require.NoError(t, err)

	assert.NotContains(t, string(body), "Remote Uptime:</strong> unreachable")
}
