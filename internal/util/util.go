package util

import (
	"fmt"
	"strings"
	"time"
)

// E.164 numbers carry at most 15 digits after the "+".
const (
	minPhoneDigits = 9
	maxPhoneDigits = 15
)

// NormalizePhone strips formatting characters and ensures a leading "+".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return ""
	}

	return "+" + b.String()
}

// IsValidPhone reports whether phone is "+" followed by 9 to 15 ASCII digits.
func IsValidPhone(phone string) bool {
	digits, ok := strings.CutPrefix(phone, "+")
	if !ok || len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return false
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}

	return true
}

// MaskPhone keeps the country prefix and the last two digits, e.g. "+237*******00".
func MaskPhone(phone string) string {
	if len(phone) <= 6 {
		return strings.Repeat("*", len(phone))
	}

	return phone[:4] + strings.Repeat("*", len(phone)-6) + phone[len(phone)-2:]
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
