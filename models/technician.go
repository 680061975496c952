package models

import (
	"time"
)

// Technician status values. These are the only values the API accepts;
// anything else is rejected at the request boundary.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusBusy     = "busy"
)

// Technician represents a field technician record
type Technician struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Phone           string    `gorm:"uniqueIndex;not null" json:"phone"`
	Lat             float64   `gorm:"default:0" json:"lat"`
	Long            float64   `gorm:"default:0" json:"long"`
	CurrentLocation string    `gorm:"default:''" json:"currentlocation"`
	Status          string    `gorm:"not null;default:'active'" json:"status"` // active, inactive, busy
	Rating          float64   `gorm:"default:0" json:"rating"`
	TechnicianID    string    `json:"technicianId"` // external reference code, not unique
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Technician model
func (Technician) TableName() string {
	return "technicians"
}

// IsValidStatus reports whether s is one of the accepted status values
func IsValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusBusy:
		return true
	}
	return false
}
