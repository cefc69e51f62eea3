// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"strings"
)

// FormatUSD formats a dollar amount with thousands separators.
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")

	result := "$" + groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	s = s[:n-3]
	for len(s) > 3 {
		result = s[len(s)-3:] + "," + result
		s = s[:len(s)-3]
	}
	return s + "," + result
}

// FormatChange formats a daily price change with a direction arrow.
func FormatChange(change float64) string {
	switch {
	case change > 0:
		return "↗ " + FormatUSD(change)
	case change < 0:
		return "↘ " + FormatUSD(change)
	default:
		return FormatUSD(change)
	}
}

// FormatMarketCap formats a market capitalization with a magnitude suffix.
func FormatMarketCap(cap float64) string {
	switch {
	case cap >= 1e12:
		return fmt.Sprintf("$%.2fT", cap/1e12)
	case cap >= 1e9:
		return fmt.Sprintf("$%.2fB", cap/1e9)
	case cap >= 1e6:
		return fmt.Sprintf("$%.2fM", cap/1e6)
	default:
		return FormatUSD(cap)
	}
}

// FormatVolume formats a share volume with thousands separators.
func FormatVolume(volume int64) string {
	return groupThousands(fmt.Sprintf("%d", volume))
}
