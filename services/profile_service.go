package services

// SessionSummary is one entry of a technician's recent session history
type SessionSummary struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	Customer string `json:"customer"`
	Issue    string `json:"issue"`
	Status   string `json:"status"`
	Duration string `json:"duration"`
}

// PerformanceMetrics are the headline numbers shown on a profile
type PerformanceMetrics struct {
	AvgResponseTime string  `json:"avg_response_time"`
	TotalCustomers  int     `json:"total_customers"`
	SuccessRate     float64 `json:"success_rate"`
}

// SessionHistoryProvider supplies the recent sessions for a technician.
// The default implementation returns fixed placeholder data; a real
// session-tracking backend can be substituted via SetSessionHistoryProvider.
type SessionHistoryProvider interface {
	RecentSessions(technicianID uint) []SessionSummary
}

// MetricsProvider supplies the performance metrics for a technician
type MetricsProvider interface {
	Metrics(technicianID uint) PerformanceMetrics
}

var (
	sessionHistoryInstance SessionHistoryProvider = &StaticSessionHistory{}
	metricsInstance        MetricsProvider        = &StaticMetrics{}
)

// GetSessionHistoryProvider returns the session history provider instance
func GetSessionHistoryProvider() SessionHistoryProvider {
	return sessionHistoryInstance
}

// SetSessionHistoryProvider sets the session history provider (primarily for testing)
func SetSessionHistoryProvider(p SessionHistoryProvider) {
	sessionHistoryInstance = p
}

// GetMetricsProvider returns the metrics provider instance
func GetMetricsProvider() MetricsProvider {
	return metricsInstance
}

// SetMetricsProvider sets the metrics provider (primarily for testing)
func SetMetricsProvider(p MetricsProvider) {
	metricsInstance = p
}

// StaticSessionHistory returns illustrative placeholder sessions. No
// session tracking exists yet, so every technician shares the same
// three entries.
type StaticSessionHistory struct{}

// RecentSessions returns the fixed placeholder history
func (s *StaticSessionHistory) RecentSessions(technicianID uint) []SessionSummary {
	return []SessionSummary{
		{ID: 1, Date: "2026-02-10 14:30", Customer: "Amit R", Issue: "WhatsApp QR stuck", Status: "completed", Duration: "45min"},
		{ID: 2, Date: "2026-02-10 11:15", Customer: "Priya S", Issue: "Multi-session setup", Status: "active", Duration: "1h 20m"},
		{ID: 3, Date: "2026-02-09 18:45", Customer: "Ravi K", Issue: "Location spoofing", Status: "completed", Duration: "30min"},
	}
}

// StaticMetrics returns fixed placeholder performance numbers
type StaticMetrics struct{}

// Metrics returns the fixed placeholder metrics
func (s *StaticMetrics) Metrics(technicianID uint) PerformanceMetrics {
	return PerformanceMetrics{
		AvgResponseTime: "18min",
		TotalCustomers:  247,
		SuccessRate:     98.7,
	}
}
