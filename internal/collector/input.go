package collector

import (
	"path/filepath"
	"strings"
)

// ParseInputDevices walks the line-oriented device table: a "T:" line opens
// a record, a "P:" line emits it, and Product= / Manufacturer= / Port=
// attribute lines in between fill it in. A record that reaches its "P:"
// line with no attributes still emits one entry with every field absent.
func ParseInputDevices(text string) []InputDevice {
	var devices []InputDevice
	var current InputDevice

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "T:"):
			current = InputDevice{}
		case strings.HasPrefix(line, "P:"):
			devices = append(devices, current)
			current = InputDevice{}
		case strings.Contains(line, "Product="):
			current.Product = attrValue(line)
		case strings.Contains(line, "Manufacturer="):
			current.Manufacturer = attrValue(line)
		case strings.Contains(line, "Port="):
			current.Port = attrValue(line)
		}
	}
	return devices
}

func attrValue(line string) string {
	_, value, _ := strings.Cut(line, "=")
	return strings.TrimSpace(value)
}

func (c *Collector) collectInputDevices() ([]InputDevice, error) {
	text, err := c.readSource(filepath.Join("bus", "input", "devices"))
	if err != nil {
		return nil, err
	}
	return ParseInputDevices(text), nil
}
