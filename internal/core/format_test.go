package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "1.0 KiB", FormatSize(1024))
	assert.Equal(t, "1.5 MiB", FormatSize(3*512*1024))
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+1.0 KiB", FormatDelta(1024))
	assert.Equal(t, "-1.0 KiB", FormatDelta(-1024))
	assert.Equal(t, "+0 B", FormatDelta(0))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "40 days", FormatDays(40.4))
}
