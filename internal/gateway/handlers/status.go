package handlers

import (
	"net/http"
	"time"

	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/analytics"
	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/providers"
)

// AnalyticsResponse is the body of GET /api/analytics
type AnalyticsResponse struct {
	Success bool               `json:"success"`
	Data    analytics.Snapshot `json:"data"`
}

// ProviderStatus reports which providers are configured
type ProviderStatus struct {
	OpenAI   bool   `json:"openai"`
	DeepSeek bool   `json:"deepseek"`
	Current  string `json:"current"`
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Success   bool              `json:"success"`
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Providers ProviderStatus    `json:"providers"`
	Analytics analytics.Summary `json:"analytics"`
	Timestamp string            `json:"timestamp"`
}

// StatusHandler serves the read-only endpoints
type StatusHandler struct {
	providers *providers.Manager
	analytics *analytics.Recorder
}

func NewStatusHandler(providerMgr *providers.Manager, rec *analytics.Recorder) *StatusHandler {
	return &StatusHandler{providers: providerMgr, analytics: rec}
}

// HandleAnalytics handles GET /api/analytics
func (h *StatusHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, AnalyticsResponse{
		Success: true,
		Data:    h.analytics.Snapshot(),
	})
}

// HandleHealth handles GET /api/health
func (h *StatusHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Success: true,
		Status:  "OK",
		Message: "Cloud IDE Server is running",
		Providers: ProviderStatus{
			OpenAI:   h.providers.Has(providers.OpenAI),
			DeepSeek: h.providers.Has(providers.DeepSeek),
			Current:  h.providers.Current(),
		},
		Analytics: h.analytics.Summary(),
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}
