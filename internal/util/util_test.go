package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+237600000000", "+237600000000"},
		{"237 600 000 000", "+237600000000"},
		{" +1 (555) 010-9999 ", "+15550109999"},
		{"abc", ""},
		{"+237 ٦٠٠ 000 000", "+237000000"},
		{"+1５５５0109999", "+10109999"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+237600000000"))
	assert.False(t, IsValidPhone("+2376"))
	assert.False(t, IsValidPhone("237600000000"))
	assert.False(t, IsValidPhone(""))
	assert.True(t, IsValidPhone("+123456789012345"))
	assert.False(t, IsValidPhone("+1234567890123456"), "more than 15 digits")
	assert.False(t, IsValidPhone("+237٦٠٠٠٠٠٠٠٠"), "non-ASCII digits")
	assert.False(t, IsValidPhone("+237 600 000"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "+237*******00", MaskPhone("+237600000000"))
	assert.Equal(t, "****", MaskPhone("1234"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45s", FormatDuration(45*time.Second))
	assert.Equal(t, "5m10s", FormatDuration(5*time.Minute+10*time.Second))
	assert.Equal(t, "1h30m", FormatDuration(90*time.Minute))
}
