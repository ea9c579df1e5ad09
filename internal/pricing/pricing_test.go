package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	f := NewFormatter("en-IN", "₹")

	assert.Equal(t, "₹25,000", f.Format(25000))
	assert.Equal(t, "₹950", f.Format(950))
	assert.Equal(t, "₹0", f.Format(0))
}

func TestFormatDropsFraction(t *testing.T) {
	f := NewFormatter("en-IN", "₹")
	assert.Equal(t, "₹1,200", f.Format(1200.00))
}

func TestFormatBadLocaleFallsBack(t *testing.T) {
	f := NewFormatter("not-a-locale", "$")
	assert.Equal(t, "$1,000", f.Format(1000))
}
