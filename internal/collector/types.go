package collector

import "time"

// Report holds one full host-status snapshot. Scalar sections are pointers:
// nil means the source could not be read or parsed and the corresponding
// entry in Errors says why.
type Report struct {
	CollectedAt   time.Time      `json:"collected_at"`
	Hostname      string         `json:"hostname"`
	LocalTime     string         `json:"local_time"`
	UptimeSeconds *int64         `json:"uptime_seconds,omitempty"`
	CPU           *CPUInfo       `json:"cpu,omitempty"`
	CPUPercent    *float64       `json:"cpu_percent,omitempty"`
	Memory        *MemoryInfo    `json:"memory,omitempty"`
	OSVersion     string         `json:"os_version,omitempty"`
	Processes     []ProcessEntry `json:"processes"`
	Disks         []DiskEntry    `json:"disks"`
	InputDevices  []InputDevice  `json:"input_devices"`
	Network       []NetAdapter   `json:"network"`
	Hardware      *Hardware      `json:"hardware,omitempty"`
	Errors        []string       `json:"errors,omitempty"`
}

// CPUInfo holds the identity of the first logical CPU. An empty Model or a
// zero MHz means the corresponding line was absent from the source.
type CPUInfo struct {
	Model string  `json:"model"`
	MHz   float64 `json:"mhz"`
}

// MemoryInfo holds totals in whole megabytes (kB values divided by 1024).
type MemoryInfo struct {
	TotalMB int64 `json:"total_mb"`
	UsedMB  int64 `json:"used_mb"`
}

// ProcessEntry is one running process.
type ProcessEntry struct {
	PID  string `json:"pid"`
	Name string `json:"name"`
}

// DiskEntry is one block device or partition.
type DiskEntry struct {
	Name   string `json:"name"`
	SizeMB int64  `json:"size_mb"`
}

// InputDevice is one record from the input-device table. Empty fields mean
// the attribute was absent from the record.
type InputDevice struct {
	Product      string `json:"product,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Port         string `json:"port,omitempty"`
}

// NetAdapter pairs an interface name with one of its IPv6 addresses.
type NetAdapter struct {
	Interface string `json:"interface"`
	Address   string `json:"address"`
}

// Hardware holds the SMBIOS system identity.
type Hardware struct {
	Manufacturer string `json:"manufacturer"`
	Product      string `json:"product"`
	Serial       string `json:"serial"`
	UUID         string `json:"uuid"`
}
