package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Collector reads host status from a procfs tree. The root is configurable
// so tests can point it at a fixture directory.
type Collector struct {
	procRoot string
}

// New returns a Collector rooted at procRoot, or /proc when empty.
func New(procRoot string) *Collector {
	if procRoot == "" {
		procRoot = "/proc"
	}
	return &Collector{procRoot: procRoot}
}

// Collect gathers a full status report from the local host. Every section
// is attempted; a section whose source cannot be read or parsed is left
// empty and noted in Report.Errors, so one bad source never takes down the
// rest of the report.
func (c *Collector) Collect() *Report {
	now := time.Now()
	r := &Report{
		CollectedAt: now.UTC(),
		LocalTime:   now.Format("2006-01-02 15:04:05"),
	}
	r.Hostname, _ = os.Hostname()

	if up, err := c.collectUptime(); err != nil {
		r.fail("uptime", err)
	} else {
		r.UptimeSeconds = &up
	}

	if cpu, err := c.collectCPUInfo(); err != nil {
		r.fail("cpu", err)
	} else {
		r.CPU = &cpu
	}

	if pct, err := c.collectCPUUsage(); err != nil {
		r.fail("cpu usage", err)
	} else {
		r.CPUPercent = &pct
	}

	if mem, err := c.collectMemoryInfo(); err != nil {
		r.fail("memory", err)
	} else {
		r.Memory = &mem
	}

	if ver, err := c.collectOSVersion(); err != nil {
		r.fail("os version", err)
	} else {
		r.OSVersion = ver
	}

	if procs, err := c.collectProcesses(); err != nil {
		r.fail("processes", err)
	} else {
		r.Processes = procs
	}

	if disks, err := c.collectDisks(); err != nil {
		r.fail("disks", err)
	} else {
		r.Disks = disks
	}

	if devs, err := c.collectInputDevices(); err != nil {
		r.fail("input devices", err)
	} else {
		r.InputDevices = devs
	}

	if adapters, err := c.collectNetAdapters(); err != nil {
		r.fail("network", err)
	} else {
		r.Network = adapters
	}

	if hw, err := collectHardware(); err != nil {
		r.fail("hardware", err)
	} else {
		r.Hardware = hw
	}

	return r
}

func (r *Report) fail(section string, err error) {
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", section, err))
}

// readSource reads one file under the proc root.
func (c *Collector) readSource(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(c.procRoot, name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
