package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const partitionsFixture = `major minor  #blocks  name

   8        0  976762584 sda
   8        1     524288 sda1
   8        2  976236984 sda2 extra
 259        0  500107608 nvme0n1
`

func TestParsePartitions(t *testing.T) {
	disks := ParsePartitions(partitionsFixture)
	require.Len(t, disks, 3, "the five-field row must be excluded")

	assert.Equal(t, DiskEntry{Name: "sda", SizeMB: 976762584 / 1024}, disks[0])
	assert.Equal(t, DiskEntry{Name: "sda1", SizeMB: 512}, disks[1])
	assert.Equal(t, DiskEntry{Name: "nvme0n1", SizeMB: 500107608 / 1024}, disks[2])
}

func TestParsePartitionsHeaderAlwaysSkipped(t *testing.T) {
	// Header rows are skipped positionally, even when they look like data.
	text := "8 0 1024 fake\n8 1 2048 fake2\n8 2 4096 real\n"
	disks := ParsePartitions(text)
	require.Len(t, disks, 1)
	assert.Equal(t, "real", disks[0].Name)
}

func TestParsePartitionsMalformedRows(t *testing.T) {
	text := "header\n\n8 0 notanumber sda\nnot enough\n"
	assert.Empty(t, ParsePartitions(text))

	assert.Empty(t, ParsePartitions(""))
	assert.Empty(t, ParsePartitions("major minor #blocks name\n"))
}
