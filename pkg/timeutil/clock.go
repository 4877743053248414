// Package timeutil provides clock-string helpers for schedule times.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeClock parses a "HH:MM" or "H:MM" clock string and returns
// it zero-padded so lexicographic comparison matches time ordering.
func NormalizeClock(v string) (string, error) {
	v = strings.TrimSpace(v)
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("timeutil: invalid clock %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return "", fmt.Errorf("timeutil: invalid hour in %q", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return "", fmt.Errorf("timeutil: invalid minute in %q", v)
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}
