package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafe(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	negInf := math.Inf(-1)
	ok := 1250.5

	assert.Equal(t, 0.0, Safe(nil))
	assert.Equal(t, 0.0, Safe(&nan))
	assert.Equal(t, 0.0, Safe(&inf))
	assert.Equal(t, 0.0, Safe(&negInf))
	assert.Equal(t, 1250.5, Safe(&ok))
}

func TestFormat(t *testing.T) {
	small := 950.0
	grouped := 1500.0
	fractional := 1234.56
	nan := math.NaN()

	assert.Equal(t, "0", Format(nil))
	assert.Equal(t, "0", Format(&nan))
	assert.Equal(t, "950", Format(&small))
	assert.Equal(t, "1,500", Format(&grouped))
	assert.Equal(t, "1,234.56", Format(&fractional))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0", FormatValue(0))
	assert.Equal(t, "0", FormatValue(math.Inf(1)))
	assert.Equal(t, "12,000", FormatValue(12000))
}
