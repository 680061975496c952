package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fieldserve/technician-admin-api/config"
	"github.com/fieldserve/technician-admin-api/models"
	"github.com/fieldserve/technician-admin-api/services"
)

// TechnicianForm represents the flat field set submitted by the create
// and edit forms. Field names match the HTML form inputs.
type TechnicianForm struct {
	Name            string  `form:"name" json:"name"`
	Phone           string  `form:"phone" json:"phone"`
	Lat             float64 `form:"lat" json:"lat"`
	Long            float64 `form:"long" json:"long"`
	CurrentLocation string  `form:"currentlocation" json:"currentlocation"`
	Status          string  `form:"status" json:"status"`
	Rating          float64 `form:"rating" json:"rating"`
	TechnicianID    string  `form:"technicianId" json:"technicianId"`
}

// validate checks the submitted fields and returns one message per
// violation. An empty status is allowed and defaults to active.
func (f *TechnicianForm) validate() []string {
	var errs []string
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	if f.Status != "" && !models.IsValidStatus(f.Status) {
		errs = append(errs, "status must be one of: active, inactive, busy")
	}
	return errs
}

// apply copies every form field onto the record. Fields absent from the
// submission overwrite with their zero value; the edit flow is a full
// overwrite, not a partial patch.
func (f *TechnicianForm) apply(t *models.Technician) {
	t.Name = f.Name
	t.Phone = f.Phone
	t.Lat = f.Lat
	t.Long = f.Long
	t.CurrentLocation = f.CurrentLocation
	t.Status = f.Status
	if t.Status == "" {
		t.Status = models.StatusActive
	}
	t.Rating = f.Rating
	t.TechnicianID = f.TechnicianID
}

// isDuplicateError reports whether a store error is a unique constraint
// violation (works with both PostgreSQL and SQLite)
func isDuplicateError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}

// ListTechnicians handles GET / - the filtered, paginated listing with
// status counts
func ListTechnicians(c *gin.Context) {
	search := c.Query("search")
	status := c.Query("status")

	// Zero falls back to the first page like a missing or unparsable
	// value; negative pages stay as given and yield an empty page
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page == 0 {
		page = 1
	}

	db := config.GetDB()
	var technicians []models.Technician
	if err := db.Order("created_at DESC").Find(&technicians).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load technicians",
			},
		})
		return
	}

	filtered := services.FilterTechnicians(technicians, search, status)
	counts := services.CountByStatus(filtered)
	pg := services.Paginate(filtered, page)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"technicians":    pg.Items,
			"total_count":    counts.Total,
			"active_count":   counts.Active,
			"inactive_count": counts.Inactive,
			"busy_count":     counts.Busy,
			"current_page":   pg.CurrentPage,
			"total_pages":    pg.TotalPages,
			"has_prev":       pg.HasPrev,
			"has_next":       pg.HasNext,
			"search":         search,
			"status":         status,
		},
	})
}

// NewTechnicianForm handles GET /technicians/new - the defaults for an
// empty creation form
func NewTechnicianForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"technician": TechnicianForm{Status: models.StatusActive},
		},
	})
}

// CreateTechnician handles POST /technicians/new - creates a technician
// and redirects to the listing
func CreateTechnician(c *gin.Context) {
	var form TechnicianForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if errs := form.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid technician data",
				"details": errs,
			},
			"input": form,
		})
		return
	}

	var technician models.Technician
	form.apply(&technician)

	db := config.GetDB()
	if err := db.Create(&technician).Error; err != nil {
		if isDuplicateError(err) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "PHONE_EXISTS",
					"message": "A technician with this phone number already exists",
				},
				"input": form,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Server error. Try again.",
			},
			"input": form,
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// findTechnicianByParam looks up the technician addressed by the :id
// route param. A non-numeric id is treated as not found.
func findTechnicianByParam(c *gin.Context) (*models.Technician, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, false
	}

	db := config.GetDB()
	var technician models.Technician
	if err := db.First(&technician, uint(id)).Error; err != nil {
		return nil, false
	}

	return &technician, true
}

// EditTechnicianForm handles GET /technicians/:id/edit - the current
// record for pre-filling the edit form, or 404
func EditTechnicianForm(c *gin.Context) {
	technician, found := findTechnicianByParam(c)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TECHNICIAN_NOT_FOUND",
				"message": "Technician not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    technician,
	})
}

// UpdateTechnician handles POST /technicians/:id/edit - full-field
// overwrite of an existing technician, then redirect to the listing
func UpdateTechnician(c *gin.Context) {
	technician, found := findTechnicianByParam(c)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TECHNICIAN_NOT_FOUND",
				"message": "Technician not found",
			},
		})
		return
	}

	var form TechnicianForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if errs := form.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid technician data",
				"details": errs,
			},
			"input": gin.H{"id": technician.ID, "technician": form},
		})
		return
	}

	form.apply(technician)

	db := config.GetDB()
	if err := db.Save(technician).Error; err != nil {
		if isDuplicateError(err) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "PHONE_EXISTS",
					"message": "A technician with this phone number already exists",
				},
				"input": gin.H{"id": technician.ID, "technician": form},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Server error. Try again.",
			},
			"input": gin.H{"id": technician.ID, "technician": form},
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// GetTechnicianProfile handles GET /technicians/:id - the profile view
// payload combining the record with session history and metrics
func GetTechnicianProfile(c *gin.Context) {
	technician, found := findTechnicianByParam(c)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TECHNICIAN_NOT_FOUND",
				"message": "Technician not found",
			},
		})
		return
	}

	sessions := services.GetSessionHistoryProvider().RecentSessions(technician.ID)
	metrics := services.GetMetricsProvider().Metrics(technician.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"technician":      technician,
			"recent_sessions": sessions,
			"metrics":         metrics,
		},
	})
}
