package collector

import (
	"os"
	"path/filepath"
	"strings"
)

// collectProcesses lists the numeric process directories and reads each
// command name. Entries whose comm file cannot be read are skipped, with
// no placeholder emitted: a process may have exited between the directory
// listing and the read.
func (c *Collector) collectProcesses() ([]ProcessEntry, error) {
	entries, err := os.ReadDir(c.procRoot)
	if err != nil {
		return nil, err
	}

	var procs []ProcessEntry
	for _, e := range entries {
		pid := e.Name()
		if !isNumeric(pid) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(c.procRoot, pid, "comm"))
		if err != nil {
			continue
		}
		name, _, _ := strings.Cut(string(data), "\n")
		procs = append(procs, ProcessEntry{PID: pid, Name: strings.TrimSpace(name)})
	}
	return procs, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
