package collector

import (
	"errors"
	"strconv"
	"strings"
)

// ParseUptime extracts the first whitespace-delimited field of the uptime
// source and truncates it to whole seconds.
func ParseUptime(text string) (int64, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, errors.New("empty uptime source")
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, errors.New("malformed uptime value " + strconv.Quote(fields[0]))
	}
	return int64(seconds), nil
}

// ParseOSVersion returns the first line of the version source, verbatim.
func ParseOSVersion(text string) (string, error) {
	line, _, _ := strings.Cut(text, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("empty version source")
	}
	return line, nil
}

func (c *Collector) collectUptime() (int64, error) {
	text, err := c.readSource("uptime")
	if err != nil {
		return 0, err
	}
	return ParseUptime(text)
}

func (c *Collector) collectOSVersion() (string, error) {
	text, err := c.readSource("version")
	if err != nil {
		return "", err
	}
	return ParseOSVersion(text)
}
