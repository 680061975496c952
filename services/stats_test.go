package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldserve/technician-admin-api/models"
)

func TestCountByStatus(t *testing.T) {
	techs := []models.Technician{
		{Status: models.StatusActive},
		{Status: models.StatusActive},
		{Status: models.StatusInactive},
		{Status: models.StatusBusy},
	}

	counts := CountByStatus(techs)
	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, 2, counts.Active)
	assert.Equal(t, 1, counts.Inactive)
	assert.Equal(t, 1, counts.Busy)
}

func TestCountByStatusEmpty(t *testing.T) {
	counts := CountByStatus(nil)
	assert.Equal(t, StatusCounts{}, counts)
}

func TestCountByStatusBucketsSumToTotal(t *testing.T) {
	techs := sampleTechnicians()

	counts := CountByStatus(techs)
	assert.Equal(t, counts.Total, counts.Active+counts.Inactive+counts.Busy,
		"with only enum statuses the buckets must sum to the total")
}

func TestCountByStatusReflectsFilteredView(t *testing.T) {
	techs := sampleTechnicians()

	filtered := FilterTechnicians(techs, "", "busy")
	counts := CountByStatus(filtered)
	assert.Equal(t, 1, counts.Total)
	assert.Equal(t, 0, counts.Active)
	assert.Equal(t, 1, counts.Busy)
}
