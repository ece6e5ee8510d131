package collector

import (
	"strconv"
	"strings"
)

// ParsePartitions reads the partition table, skipping its two-line header.
// Only rows with exactly four fields (major, minor, blocks, name) produce
// an entry; block counts are 1024-byte units, reported in megabytes.
func ParsePartitions(text string) []DiskEntry {
	lines := strings.Split(text, "\n")
	if len(lines) <= 2 {
		return nil
	}

	var disks []DiskEntry
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		if len(fields) != 4 {
			continue
		}
		blocks, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			continue
		}
		disks = append(disks, DiskEntry{
			Name:   fields[3],
			SizeMB: blocks / 1024,
		})
	}
	return disks
}

func (c *Collector) collectDisks() ([]DiskEntry, error) {
	text, err := c.readSource("partitions")
	if err != nil {
		return nil, err
	}
	return ParsePartitions(text), nil
}
