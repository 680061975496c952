package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"

	"github.com/fieldserve/technician-admin-api/utils"
)

var (
	// ErrSessionActive is returned when an automation session is already
	// running for the same technician id
	ErrSessionActive = errors.New("automation session already active for this technician")

	// ErrSessionLimit is returned when the global concurrent session
	// limit has been reached
	ErrSessionLimit = errors.New("automation session limit reached")
)

// LaunchResult describes a completed automation launch
type LaunchResult struct {
	SessionID     string        `json:"session_id"`
	TechnicianID  string        `json:"technician_id"`
	URL           string        `json:"url"`
	Title         string        `json:"title"`
	ScreenshotKey string        `json:"screenshot_key,omitempty"`
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration"`
}

// AutomationService launches a browser-automation session scoped to a
// technician id. Implementations must release every browser resource on
// all exit paths and allow at most one active session per id.
type AutomationService interface {
	LaunchSession(ctx context.Context, technicianID string) (*LaunchResult, error)
}

var automationServiceInstance AutomationService

// GetAutomationService returns the automation service instance
func GetAutomationService() AutomationService {
	return automationServiceInstance
}

// SetAutomationService sets the automation service instance (primarily for testing)
func SetAutomationService(service AutomationService) {
	automationServiceInstance = service
}

// RodAutomationService implements AutomationService using a rod-driven
// Chrome. Each launch gets its own browser process with a persistent
// per-id user data directory, so cookies and local storage survive
// between sessions for the same technician.
type RodAutomationService struct {
	targetURL string
	dataDir   string
	headless  bool
	timeout   time.Duration

	mu     sync.Mutex
	active map[string]bool
	slots  chan struct{}
}

// NewRodAutomationService creates an automation service navigating to
// targetURL, storing per-id profiles under dataDir, with at most
// maxSessions concurrent launches and the given per-launch timeout.
func NewRodAutomationService(targetURL, dataDir string, headless bool, maxSessions int, timeout time.Duration) *RodAutomationService {
	if maxSessions < 1 {
		maxSessions = 1
	}
	return &RodAutomationService{
		targetURL: targetURL,
		dataDir:   dataDir,
		headless:  headless,
		timeout:   timeout,
		active:    make(map[string]bool),
		slots:     make(chan struct{}, maxSessions),
	}
}

// tryAcquire marks the id as active; it fails when a session for the id
// is already running or no global slot is free
func (s *RodAutomationService) tryAcquire(technicianID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active[technicianID] {
		return ErrSessionActive
	}

	select {
	case s.slots <- struct{}{}:
	default:
		return ErrSessionLimit
	}

	s.active[technicianID] = true
	return nil
}

// release frees the id and its global slot
func (s *RodAutomationService) release(technicianID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active[technicianID] {
		delete(s.active, technicianID)
		<-s.slots
	}
}

// ActiveSessions returns the number of currently running launches
func (s *RodAutomationService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// LaunchSession starts a browser with the technician's profile directory,
// navigates to the target URL, captures a screenshot, and shuts the
// browser down before returning
func (s *RodAutomationService) LaunchSession(ctx context.Context, technicianID string) (*LaunchResult, error) {
	if err := s.tryAcquire(technicianID); err != nil {
		return nil, err
	}
	defer s.release(technicianID)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	startedAt := time.Now()

	userDataDir := filepath.Join(s.dataDir, utils.SanitizeSessionID(technicianID))
	l := launcher.New().
		Headless(s.headless).
		UserDataDir(userDataDir).
		Context(ctx)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", wrapDeadline(ctx, err))
	}
	// Kill is not context-bound, so the Chrome process dies even when the
	// deadline has expired and the CDP close below failed
	defer l.Kill()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to browser: %w", wrapDeadline(ctx, err))
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			log.Printf("warning: failed to close browser for technician %s: %v", technicianID, closeErr)
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{URL: s.targetURL})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", wrapDeadline(ctx, err))
	}

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("load %s: %w", s.targetURL, wrapDeadline(ctx, err))
	}

	title := ""
	if info, infoErr := page.Info(); infoErr == nil {
		title = info.Title
	}

	result := &LaunchResult{
		SessionID:    uuid.NewString(),
		TechnicianID: technicianID,
		URL:          s.targetURL,
		Title:        title,
		StartedAt:    startedAt,
	}

	// Screenshot persistence is best effort; the launch itself already
	// succeeded at this point
	if artifacts := GetArtifactService(); artifacts != nil {
		if png, shotErr := page.Screenshot(false, nil); shotErr != nil {
			log.Printf("warning: screenshot failed for technician %s: %v", technicianID, shotErr)
		} else if key, saveErr := artifacts.SaveScreenshot(technicianID, png); saveErr != nil {
			log.Printf("warning: failed to store screenshot for technician %s: %v", technicianID, saveErr)
		} else {
			result.ScreenshotKey = key
		}
	}

	result.Duration = time.Since(startedAt)
	return result, nil
}

// wrapDeadline surfaces a context deadline as the context error so the
// HTTP layer can map timeouts distinctly
func wrapDeadline(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
