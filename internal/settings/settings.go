// Package settings reads administrator overrides from loosely typed sources
// and resolves them against built-in fallback constants.
package settings

import (
	"math"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// Dictionary maps override keys to values of unspecified type (string,
// number or nil).
type Dictionary map[string]any

// Resolve returns the value stored under key as a float64 when it is numeric
// and strictly positive. Missing, blank, zero, negative and non-numeric
// values all yield fallback.
func Resolve(d Dictionary, key string, fallback float64) float64 {
	raw, ok := lookup(d, key)
	if !ok {
		return fallback
	}
	value, ok := toFloat(raw)
	if !ok || value <= 0 {
		return fallback
	}
	return value
}

// lookup reports the raw value stored under key. Matching is exact first,
// then case-insensitive since viper lower-cases map keys. When several case
// variants are present the lowest in byte order wins.
func lookup(d Dictionary, key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	if v, ok := d[key]; ok {
		return v, true
	}
	var matches []string
	for k := range d {
		if strings.EqualFold(k, key) {
			matches = append(matches, k)
		}
	}
	if len(matches) == 0 {
		return nil, false
	}
	slices.Sort(matches)
	return d[matches[0]], true
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil, bool:
		return 0, false
	case string:
		raw = strings.TrimSpace(v)
		if raw == "" {
			return 0, false
		}
	}
	value, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// Merge layers dictionaries; keys from later dictionaries win. Keys are
// upper-cased so that differently cased sources collapse onto one entry.
func Merge(dicts ...Dictionary) Dictionary {
	merged := make(Dictionary)
	for _, d := range dicts {
		for k, v := range d {
			merged[strings.ToUpper(k)] = v
		}
	}
	return merged
}

// FromEnv collects the given keys from the process environment.
func FromEnv(keys []string) Dictionary {
	d := make(Dictionary)
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			d[key] = v
		}
	}
	return d
}
