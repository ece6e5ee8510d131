package collector

import (
	"os"
	"path/filepath"
	"strings"
)

// ParseNetInterfaces extracts interface names from the device statistics
// source, skipping its two-line header. Trailing colons are stripped.
func ParseNetInterfaces(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) <= 2 {
		return nil
	}

	var ifaces []string
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		ifaces = append(ifaces, strings.TrimSuffix(fields[0], ":"))
	}
	return ifaces
}

// MatchIPv6Addresses cross-references interface names against the IPv6
// address listing: every listing line naming an interface yields one
// adapter entry with the line's first field as the address. An interface
// may yield zero or more entries.
func MatchIPv6Addresses(ifaces []string, inet6 string) []NetAdapter {
	lines := strings.Split(inet6, "\n")

	var adapters []NetAdapter
	for _, iface := range ifaces {
		for _, line := range lines {
			if !strings.Contains(line, iface) {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			adapters = append(adapters, NetAdapter{Interface: iface, Address: fields[0]})
		}
	}
	return adapters
}

// collectNetAdapters reads the interface list and the IPv6 address table.
// A missing address table means no IPv6 is configured; that yields an
// empty list, not an error.
func (c *Collector) collectNetAdapters() ([]NetAdapter, error) {
	devText, err := c.readSource(filepath.Join("net", "dev"))
	if err != nil {
		return nil, err
	}
	ifaces := ParseNetInterfaces(devText)

	inet6, err := c.readSource(filepath.Join("net", "if_inet6"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return MatchIPv6Addresses(ifaces, inet6), nil
}
