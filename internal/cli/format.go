// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatRupiah formats an amount as Indonesian rupiah with dot grouping
// and no decimals, e.g. 5000000 -> "Rp 5.000.000". Fractions round.
func FormatRupiah(amount float64) string {
	if amount < 0 {
		return "-" + FormatRupiah(-amount)
	}
	return "Rp " + groupDots(int64(math.Round(amount)))
}

// FormatCount formats a guest head count, e.g. 1 -> "1 person".
func FormatCount(n int) string {
	if n == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d people", n)
}

// FormatAge renders how long ago t was, for the "last synced" indicator.
// A zero time renders as "never".
func FormatAge(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	d := time.Since(t)
	switch {
	case d < time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}

// Checkbox renders a selection flag as a ballot box.
func Checkbox(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}

func groupDots(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
