package timezone

import (
	"sort"
	"strings"
)

// aliasMap maps common abbreviations and city shorthands to supported zone
// ids. Keys are matched after normalization, so "C.E.T." finds CET.
var aliasMap = map[string][]string{
	"CET":    {"Europe/Paris"},
	"CEST":   {"Europe/Paris"},
	"GMT":    {"Europe/London"},
	"BST":    {"Europe/London"},
	"EST":    {"America/New_York"},
	"EDT":    {"America/New_York"},
	"CST":    {"America/Chicago"},
	"CDT":    {"America/Chicago"},
	"MST":    {"America/Denver"},
	"MDT":    {"America/Denver"},
	"PST":    {"America/Los_Angeles"},
	"PDT":    {"America/Los_Angeles"},
	"IST":    {"Asia/Kolkata"},
	"JST":    {"Asia/Tokyo"},
	"AEST":   {"Australia/Sydney"},
	"INDIA":  {"Asia/Kolkata"},
	"UK":     {"Europe/London"},
	"LONDON": {"Europe/London"},
	"PARIS":  {"Europe/Paris"},
	"NYC":    {"America/New_York"},
}

// normalize lowercases and strips everything but letters and digits.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Search returns the supported zones matching the query, checking alias
// abbreviations first and then normalized substring matches on the zone id
// itself (so "new york" finds America/New_York). An empty query returns the
// whole supported set.
func Search(query string) []string {
	zones := Zones()
	if query == "" {
		return zones
	}

	nq := normalize(query)
	seen := make(map[string]bool)
	var results []string

	add := func(zoneID string) {
		if !seen[zoneID] && IsSupported(zoneID) {
			seen[zoneID] = true
			results = append(results, zoneID)
		}
	}

	aliases := make([]string, 0, len(aliasMap))
	for alias := range aliasMap {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	for _, alias := range aliases {
		if strings.Contains(normalize(alias), nq) {
			for _, tz := range aliasMap[alias] {
				add(tz)
			}
		}
	}

	for _, tz := range zones {
		if strings.Contains(normalize(tz), nq) {
			add(tz)
		}
	}

	return results
}
