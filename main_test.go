package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestHealthCheck is a unit test for the healthCheck handler function
func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	healthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code, "Expected status code 200")

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")

	assert.Equal(t, true, response["success"], "Expected success to be true")
	assert.Equal(t, "Technician Admin API is running", response["message"], "Expected correct message")
}

// TestHealthCheckResponseFormat tests the exact JSON format
func TestHealthCheckResponseFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	healthCheck(c)

	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2, "Response should have exactly 2 fields")
	assert.Contains(t, response, "success")
	assert.Contains(t, response, "message")
}

// TestSetupRouterRegistersRoutes verifies the route table wires every
// endpoint of the API
func TestSetupRouterRegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter()

	expected := map[string]string{
		"/":                     http.MethodGet,
		"/technicians/new":      http.MethodPost,
		"/technicians/:id":      http.MethodGet,
		"/technicians/:id/edit": http.MethodPost,
		"/mservice/":            http.MethodPost,
		"/api/v1/health":        http.MethodGet,
	}

	routes := make(map[string][]string)
	for _, r := range router.Routes() {
		routes[r.Path] = append(routes[r.Path], r.Method)
	}

	for path, method := range expected {
		assert.Contains(t, routes, path, "route %s must be registered", path)
		assert.Contains(t, routes[path], method, "route %s must accept %s", path, method)
	}
}
