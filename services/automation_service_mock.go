package services

import (
	"context"
	"sync"
	"time"
)

// MockAutomationService is a mock implementation of AutomationService for testing
type MockAutomationService struct {
	// LaunchErr, when set, is returned by every LaunchSession call
	LaunchErr error

	// Result, when set, is returned on success instead of the default
	Result *LaunchResult

	mu       sync.Mutex
	launched []string
}

// NewMockAutomationService creates a new mock automation service
func NewMockAutomationService() *MockAutomationService {
	return &MockAutomationService{}
}

// SetAsMockForTesting sets this mock as the global automation service instance
func (m *MockAutomationService) SetAsMockForTesting() {
	SetAutomationService(m)
}

// LaunchSession records the call and returns the configured result or error
func (m *MockAutomationService) LaunchSession(ctx context.Context, technicianID string) (*LaunchResult, error) {
	m.mu.Lock()
	m.launched = append(m.launched, technicianID)
	m.mu.Unlock()

	if m.LaunchErr != nil {
		return nil, m.LaunchErr
	}

	if m.Result != nil {
		return m.Result, nil
	}

	return &LaunchResult{
		SessionID:    "mock-session",
		TechnicianID: technicianID,
		URL:          "https://example.com/",
		Title:        "Example",
		StartedAt:    time.Now(),
	}, nil
}

// Launched returns the technician ids passed to LaunchSession (test helper)
func (m *MockAutomationService) Launched() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.launched))
	copy(out, m.launched)
	return out
}
