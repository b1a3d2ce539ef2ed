package api

import "strings"

// ParseDrugList splits a comma-separated list, trims each segment and
// drops empty ones. It never returns nil so the request body is always
// a JSON array.
func ParseDrugList(s string) []string {
	drugs := []string{}
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			drugs = append(drugs, name)
		}
	}
	return drugs
}
