package services

import (
	"github.com/fieldserve/technician-admin-api/models"
)

// StatusCounts summarizes a filtered technician sequence for the
// listing dashboard. Counts use exact status matches, unlike the
// substring-based facet filter.
type StatusCounts struct {
	Total    int
	Active   int
	Inactive int
	Busy     int
}

// CountByStatus computes status bucket counts over the given records
func CountByStatus(techs []models.Technician) StatusCounts {
	counts := StatusCounts{Total: len(techs)}
	for _, t := range techs {
		switch t.Status {
		case models.StatusActive:
			counts.Active++
		case models.StatusInactive:
			counts.Inactive++
		case models.StatusBusy:
			counts.Busy++
		}
	}
	return counts
}
