package services

import (
	"strconv"
	"strings"

	"github.com/fieldserve/technician-admin-api/models"
)

// MatchesSearch reports whether a technician matches the free-text search.
// The match is a case-insensitive substring test against the name, the
// technician code, or the phone number. When the search text parses as an
// integer the phone is matched against the parsed digits, otherwise
// against the raw text. An empty search matches every record.
func MatchesSearch(t models.Technician, searchText string) bool {
	needle := strings.ToLower(searchText)

	if strings.Contains(strings.ToLower(t.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.TechnicianID), needle) {
		return true
	}

	phoneNeedle := needle
	if n, err := strconv.Atoi(strings.TrimSpace(searchText)); err == nil {
		phoneNeedle = strconv.Itoa(n)
	}
	return strings.Contains(strings.ToLower(t.Phone), phoneNeedle)
}

// MatchesStatus reports whether a technician matches the status facet.
// This is a substring test, mirroring the listing filter: an empty facet
// matches everything, and "active" also matches "inactive" because the
// facet value is searched within the stored status.
func MatchesStatus(t models.Technician, statusText string) bool {
	return strings.Contains(strings.ToLower(t.Status), strings.ToLower(statusText))
}

// FilterTechnicians applies the search text and status facet to an
// already-ordered slice and returns the matching records in the same
// order. With both filters empty the input is returned in full.
func FilterTechnicians(techs []models.Technician, searchText, statusText string) []models.Technician {
	filtered := make([]models.Technician, 0, len(techs))
	for _, t := range techs {
		if MatchesSearch(t, searchText) && MatchesStatus(t, statusText) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
