package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUptime(t *testing.T) {
	seconds, err := ParseUptime("12345.67 54321.00\n")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), seconds, "uptime truncates to whole seconds")

	seconds, err = ParseUptime("0.04 0.11\n")
	require.NoError(t, err)
	assert.Equal(t, int64(0), seconds)
}

func TestParseUptimeMalformed(t *testing.T) {
	_, err := ParseUptime("")
	assert.Error(t, err)

	_, err = ParseUptime("soon 123\n")
	assert.Error(t, err)
}

func TestParseOSVersion(t *testing.T) {
	text := "Linux version 6.8.0-45-generic (buildd@lcy02) #45-Ubuntu SMP\nsecond line\n"
	version, err := ParseOSVersion(text)
	require.NoError(t, err)
	assert.Equal(t, "Linux version 6.8.0-45-generic (buildd@lcy02) #45-Ubuntu SMP", version)
}

func TestParseOSVersionEmpty(t *testing.T) {
	_, err := ParseOSVersion("")
	assert.Error(t, err)

	_, err = ParseOSVersion("\n")
	assert.Error(t, err)
}
