package check_test

import (
	"testing"

	"github.com/kpawlak/catcheck/check"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", check.FormatBytes(512))
	assert.Equal(t, "1.5 KB", check.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", check.FormatBytes(2*1024*1024))
}

func TestFormatReduction(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "25.0% reduction", check.FormatReduction(400, 300))
	assert.Equal(t, "0.0% reduction", check.FormatReduction(0, 0))
	assert.Equal(t, "0.0% reduction", check.FormatReduction(100, 100))
}
