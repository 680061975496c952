package services

import (
	"fmt"

	"github.com/fieldserve/technician-admin-api/utils"
)

// ArtifactService stores artifacts produced by automation sessions,
// currently page screenshots
type ArtifactService interface {
	// SaveScreenshot persists a PNG screenshot for a technician's
	// session and returns the storage key
	SaveScreenshot(technicianID string, png []byte) (string, error)

	// GetArtifactURL generates a URL for accessing a stored artifact
	GetArtifactURL(key string) (string, error)
}

// S3ArtifactService implements ArtifactService using S3 for storage
type S3ArtifactService struct {
	s3Service S3Interface
}

var artifactServiceInstance ArtifactService

// InitArtifactService initializes the artifact service with an S3 backend
func InitArtifactService(s3Service S3Interface) ArtifactService {
	artifactServiceInstance = &S3ArtifactService{
		s3Service: s3Service,
	}
	return artifactServiceInstance
}

// GetArtifactService returns the initialized artifact service instance.
// It is nil when artifact storage is not configured.
func GetArtifactService() ArtifactService {
	return artifactServiceInstance
}

// SetArtifactService sets the artifact service instance (primarily for testing)
func SetArtifactService(service ArtifactService) {
	artifactServiceInstance = service
}

// SaveScreenshot uploads a session screenshot to S3
func (s *S3ArtifactService) SaveScreenshot(technicianID string, png []byte) (string, error) {
	if len(png) == 0 {
		return "", fmt.Errorf("empty screenshot")
	}

	key := utils.ScreenshotKey(technicianID)
	if err := s.s3Service.UploadObject(key, png, "image/png"); err != nil {
		return "", fmt.Errorf("failed to store screenshot: %w", err)
	}

	return key, nil
}

// GetArtifactURL generates a presigned URL for a stored artifact
func (s *S3ArtifactService) GetArtifactURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	url, err := s.s3Service.GetPresignedURL(key)
	if err != nil {
		return "", fmt.Errorf("failed to generate artifact URL: %w", err)
	}

	return url, nil
}
