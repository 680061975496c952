package services

import (
	"github.com/fieldserve/technician-admin-api/models"
)

// PageSize is the fixed number of records per listing page
const PageSize = 10

// Page is one slice of a filtered technician sequence plus the
// navigation metadata the listing needs
type Page struct {
	Items       []models.Technician
	CurrentPage int
	TotalPages  int
	TotalCount  int
	HasPrev     bool
	HasNext     bool
}

// Paginate slices the filtered sequence into the requested 1-based page.
// Pages outside the sequence (too high, zero, or negative) come back
// empty rather than failing; there is no clamping of the page number.
func Paginate(techs []models.Technician, page int) Page {
	total := len(techs)
	totalPages := (total + PageSize - 1) / PageSize

	startIndex := (page - 1) * PageSize
	endIndex := page * PageSize

	var items []models.Technician
	if startIndex >= 0 && startIndex < total {
		if endIndex > total {
			endIndex = total
		}
		items = techs[startIndex:endIndex]
	} else {
		items = []models.Technician{}
	}

	return Page{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
	}
}
