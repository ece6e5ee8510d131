package collector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseCPUInfo scans the CPU descriptor for the first "model name" and
// "cpu MHz" lines and stops once both are found. Only the first logical
// CPU is reported. A missing line leaves the field at its zero value.
func ParseCPUInfo(text string) CPUInfo {
	var info CPUInfo
	var haveModel, haveMHz bool

	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch {
		case !haveModel && strings.Contains(key, "model name"):
			info.Model = value
			haveModel = true
		case !haveMHz && strings.Contains(key, "cpu MHz"):
			if mhz, err := strconv.ParseFloat(value, 64); err == nil {
				info.MHz = mhz
			}
			haveMHz = true
		}
		if haveModel && haveMHz {
			break
		}
	}
	return info
}

// ParseCPUUsage computes the load percentage from the first aggregate line
// of the kernel statistics source: 100 * (1 - idle/total), where idle is
// the fourth time bucket and total is the sum of all buckets. The counters
// are cumulative since boot, so this is load since boot, not a recent
// sample.
func ParseCPUUsage(text string) (float64, error) {
	line, _, _ := strings.Cut(text, "\n")
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return 0, fmt.Errorf("aggregate stat line has %d fields, want at least 5", len(fields))
	}

	var total float64
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed stat field %q", f)
		}
		total += v
	}
	if total == 0 {
		return 0, errors.New("zero total cpu time")
	}

	idle, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed idle field %q", fields[4])
	}

	return 100 * (1 - idle/total), nil
}

func (c *Collector) collectCPUInfo() (CPUInfo, error) {
	text, err := c.readSource("cpuinfo")
	if err != nil {
		return CPUInfo{}, err
	}
	return ParseCPUInfo(text), nil
}

func (c *Collector) collectCPUUsage() (float64, error) {
	text, err := c.readSource("stat")
	if err != nil {
		return 0, err
	}
	return ParseCPUUsage(text)
}
