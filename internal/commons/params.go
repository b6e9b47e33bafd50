package commons

import (
	"strconv"
	"strings"
	"time"
)

const dateParamLayout = "2006-01-02"

// ParseDateParam parses an optional YYYY-MM-DD query parameter.
func ParseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateParamLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseFloatParam parses an optional numeric query parameter.
func ParseFloatParam(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ParseIntParam parses an optional integer query parameter, returning the
// fallback when absent.
func ParseIntParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

// SplitListParam splits a comma-separated query parameter, dropping empty
// entries.
func SplitListParam(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
