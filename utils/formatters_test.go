package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "₹0"},
		{100, "₹100"},
		{1999, "₹1,999"},
		{6097, "₹6,097"},
		{599700, "₹5,99,700"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(tt.amount))
	}
}
