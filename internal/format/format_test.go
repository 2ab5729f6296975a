package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$ 0", Currency(0))
	assert.Equal(t, "$ 1.250", Currency(1250))
	assert.Equal(t, "$ 5.000", Currency(5000))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "0", Number(0))
	assert.Equal(t, "3.500", Number(3500))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "+0.0%", Percentage(0))
	assert.Equal(t, "+8.5%", Percentage(8.5))
	assert.Equal(t, "-12.3%", Percentage(-12.3))
	assert.Equal(t, "+100.0%", Percentage(100))
}
