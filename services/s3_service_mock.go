package services

import (
	"fmt"
	"sync"
)

// MockS3Service is a mock implementation of S3Interface for testing
type MockS3Service struct {
	objects map[string][]byte // map of key to object content
	mu      sync.RWMutex

	// FailUploads makes every UploadObject call return an error
	FailUploads bool
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		objects: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global S3 service instance for testing
func (m *MockS3Service) SetAsMockForTesting() {
	SetS3Service(m)
}

// UploadObject stores the object in memory
func (m *MockS3Service) UploadObject(key string, body []byte, contentType string) error {
	if m.FailUploads {
		return fmt.Errorf("mock upload failure")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	content := make([]byte, len(body))
	copy(content, body)
	m.objects[key] = content
	return nil
}

// GetPresignedURL returns a fake URL for a stored object
func (m *MockS3Service) GetPresignedURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, exists := m.objects[key]; !exists {
		return "", fmt.Errorf("object not found: %s", key)
	}
	return fmt.Sprintf("https://mock-bucket.s3.amazonaws.com/%s", key), nil
}

// DeleteObject removes the object from memory
func (m *MockS3Service) DeleteObject(key string) error {
	if key == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// HasObject reports whether a key was uploaded (test helper)
func (m *MockS3Service) HasObject(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.objects[key]
	return exists
}

// ObjectCount returns the number of stored objects (test helper)
func (m *MockS3Service) ObjectCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
