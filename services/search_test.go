package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fieldserve/technician-admin-api/models"
)

func sampleTechnicians() []models.Technician {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return []models.Technician{
		{ID: 1, Name: "Rajesh Kumar", Phone: "9876543210", Status: models.StatusActive, TechnicianID: "TECH-001", CreatedAt: base.Add(3 * time.Hour)},
		{ID: 2, Name: "Anita Sharma", Phone: "9123456780", Status: models.StatusBusy, TechnicianID: "TECH-002", CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, Name: "Vikram Singh", Phone: "9000011122", Status: models.StatusInactive, TechnicianID: "TECH-003", CreatedAt: base.Add(time.Hour)},
		{ID: 4, Name: "Sunil Rao", Phone: "8877665544", Status: models.StatusActive, TechnicianID: "FIELD-9", CreatedAt: base},
	}
}

func TestMatchesSearchByName(t *testing.T) {
	techs := sampleTechnicians()

	assert.True(t, MatchesSearch(techs[0], "rajesh"), "name match should be case-insensitive")
	assert.True(t, MatchesSearch(techs[0], "KUMAR"))
	assert.False(t, MatchesSearch(techs[0], "anita"))
}

func TestMatchesSearchByTechnicianID(t *testing.T) {
	techs := sampleTechnicians()

	assert.True(t, MatchesSearch(techs[3], "field"))
	assert.True(t, MatchesSearch(techs[1], "tech-002"))
}

func TestMatchesSearchByPhone(t *testing.T) {
	techs := sampleTechnicians()

	// Numeric search text matches phone digits
	assert.True(t, MatchesSearch(techs[0], "98765"))
	// Partial digit sequences match as substrings
	assert.True(t, MatchesSearch(techs[2], "000"))
	assert.False(t, MatchesSearch(techs[0], "555"))
}

func TestMatchesSearchEmptyMatchesAll(t *testing.T) {
	for _, tech := range sampleTechnicians() {
		assert.True(t, MatchesSearch(tech, ""), "empty search should match %s", tech.Name)
	}
}

func TestMatchesStatusSubstring(t *testing.T) {
	techs := sampleTechnicians()

	assert.True(t, MatchesStatus(techs[0], ""), "empty facet matches everything")
	assert.True(t, MatchesStatus(techs[1], "busy"))
	assert.True(t, MatchesStatus(techs[1], "BUSY"), "facet is case-insensitive")
	assert.False(t, MatchesStatus(techs[1], "active"))

	// The facet is a substring test, so "active" also matches records
	// whose status is "inactive"
	assert.True(t, MatchesStatus(techs[2], "active"))
}

func TestFilterTechniciansByExactStatus(t *testing.T) {
	techs := sampleTechnicians()

	filtered := FilterTechnicians(techs, "", "busy")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Anita Sharma", filtered[0].Name)

	filtered = FilterTechnicians(techs, "", "inactive")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Vikram Singh", filtered[0].Name)
}

func TestFilterTechniciansPreservesOrder(t *testing.T) {
	techs := sampleTechnicians()

	filtered := FilterTechnicians(techs, "", "")
	assert.Len(t, filtered, len(techs))
	for i := range filtered {
		assert.Equal(t, techs[i].ID, filtered[i].ID, "order must be preserved")
	}
}

func TestFilterTechniciansSearchAndFacetCombined(t *testing.T) {
	techs := sampleTechnicians()

	// "tech" matches the three TECH-* codes; facet narrows to busy
	filtered := FilterTechnicians(techs, "tech", "busy")
	assert.Len(t, filtered, 1)
	assert.Equal(t, uint(2), filtered[0].ID)
}

func TestFilterTechniciansNoMatches(t *testing.T) {
	techs := sampleTechnicians()

	filtered := FilterTechnicians(techs, "555", "")
	assert.Empty(t, filtered)
}
