package collector

import (
	"errors"
	"strconv"
	"strings"
)

// ParseMemInfo extracts MemTotal and MemAvailable (both in kB) and reports
// them in whole megabytes, with used = total - available. Both labels must
// be present for the section to be usable.
func ParseMemInfo(text string) (MemoryInfo, error) {
	var totalKB, availKB int64
	var haveTotal, haveAvail bool

	for _, line := range strings.Split(text, "\n") {
		switch {
		case !haveTotal && strings.HasPrefix(line, "MemTotal"):
			v, err := memValueKB(line)
			if err != nil {
				return MemoryInfo{}, err
			}
			totalKB = v
			haveTotal = true
		case !haveAvail && strings.HasPrefix(line, "MemAvailable"):
			v, err := memValueKB(line)
			if err != nil {
				return MemoryInfo{}, err
			}
			availKB = v
			haveAvail = true
		}
		if haveTotal && haveAvail {
			break
		}
	}

	if !haveTotal {
		return MemoryInfo{}, errors.New("MemTotal not found")
	}
	if !haveAvail {
		return MemoryInfo{}, errors.New("MemAvailable not found")
	}

	total := totalKB / 1024
	return MemoryInfo{
		TotalMB: total,
		UsedMB:  total - availKB/1024,
	}, nil
}

func memValueKB(line string) (int64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, errors.New("malformed memory line " + strconv.Quote(line))
	}
	v, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, errors.New("malformed memory value " + strconv.Quote(fields[1]))
	}
	return v, nil
}

func (c *Collector) collectMemoryInfo() (MemoryInfo, error) {
	text, err := c.readSource("meminfo")
	if err != nil {
		return MemoryInfo{}, err
	}
	return ParseMemInfo(text)
}
