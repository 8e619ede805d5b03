// Package utils provides formatting helpers shared by the report writers
// and the command output.
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// sizeNames are the base-1024 units, index k covering 1024^k bytes.
var sizeNames = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// ConvertSize renders a byte count with base-1024 units, rounded to two
// decimals and always carrying at least one decimal digit.
//
// Example:
//
//	ConvertSize(0)       -> "0B"
//	ConvertSize(1023)    -> "1023.0 B"
//	ConvertSize(1536)    -> "1.5 KB"
//	ConvertSize(1234567) -> "1.18 MB"
func ConvertSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return "0B"
	}

	// 1024^6 is the largest power that fits in an int64 divisor.
	exp, div := 0, int64(1)
	for exp < len(sizeNames)-1 && sizeBytes/div >= 1024 {
		div *= 1024
		exp++
	}

	// FormatFloat rounds the exact binary value, so ties such as 1.125
	// go to the even digit.
	rounded := strconv.FormatFloat(float64(sizeBytes)/float64(div), 'f', 2, 64)
	value, err := strconv.ParseFloat(rounded, 64)
	if err != nil {
		return rounded + " " + sizeNames[exp]
	}
	return formatDecimal(value) + " " + sizeNames[exp]
}

// formatDecimal prints v in its shortest form, keeping a trailing ".0" on
// whole numbers.
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatDuration formats a duration into a human-readable string.
//
// Example:
//
//	FormatDuration(90*time.Second) -> "1m30s"
//	FormatDuration(2*time.Hour + 30*time.Minute) -> "2h30m"
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatCount adds the singular or plural noun to a count.
//
// Example:
//
//	FormatCount(1, "filesystem", "filesystems") -> "1 filesystem"
//	FormatCount(5, "filesystem", "filesystems") -> "5 filesystems"
func FormatCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
