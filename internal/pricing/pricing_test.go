package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "", Format(0))
	assert.Equal(t, "", Format(-100))
	assert.Equal(t, "950", Format(950))
	assert.Equal(t, "3,000", Format(3000))
	assert.Equal(t, "1,250,000", Format(1250000))
	assert.Equal(t, "12,500.5", Format(12500.5))
	assert.Equal(t, "999", Format(999))
	assert.Equal(t, "1,000", Format(1000))
}

func TestParse(t *testing.T) {
	assert.Equal(t, 3000.0, Parse("3,000"))
	assert.Equal(t, 1250000.0, Parse("$1,250,000"))
	assert.Equal(t, 12500.5, Parse("12,500.5"))
	assert.Equal(t, 0.0, Parse(""))
	assert.Equal(t, 0.0, Parse("abc"))
	assert.Equal(t, 0.0, Parse("."))
}

// A second period ends the number: only the leading numeric run counts.
func TestParse_MultiplePeriods(t *testing.T) {
	assert.Equal(t, 1.2, Parse("1.2.3"))
	assert.Equal(t, 12.5, Parse("12.5.00"))
	assert.Equal(t, 1000.25, Parse("1,000.25.9"))
	assert.Equal(t, 0.5, Parse(".5.5"))
}

func TestParseFormatRoundTrip(t *testing.T) {
	values := []float64{1, 42, 950, 1000, 3000, 99999.99, 1250000, 12500.5, 0.25}
	for _, v := range values {
		assert.Equal(t, v, Parse(Format(v)), "round trip for %v", v)
	}
}

func TestDerive(t *testing.T) {
	price, ok := Derive(1500, "2")
	assert.True(t, ok)
	assert.Equal(t, 3000.0, price)

	price, ok = Derive(1500, "2.5")
	assert.True(t, ok)
	assert.Equal(t, 3750.0, price)

	// Unparseable duration must not touch the existing price.
	_, ok = Derive(1500, "abc")
	assert.False(t, ok)

	_, ok = Derive(1500, "")
	assert.False(t, ok)

	_, ok = Derive(1500, "0")
	assert.False(t, ok)

	_, ok = Derive(1500, "-2")
	assert.False(t, ok)

	_, ok = Derive(0, "2")
	assert.False(t, ok)

	_, ok = Derive(-100, "2")
	assert.False(t, ok)
}
