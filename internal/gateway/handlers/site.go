package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/analytics"
	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/generator"
	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/providers"
	"github.com/mrmushfiq/cloud-ide-server/internal/shared/models"
)

// GenerationLogger receives one entry per completed generation
type GenerationLogger interface {
	LogGeneration(ctx context.Context, log *models.GenerationLog) error
}

// GenerateRequest is the body of POST /api/generate
type GenerateRequest struct {
	Description string `json:"description" validate:"required"`
	Provider    string `json:"provider"`
}

// GenerateResponse is the 200 body of POST /api/generate
type GenerateResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	HTML     string `json:"html"`
	Message  string `json:"message"`
	Method   string `json:"method"`
	Provider string `json:"provider"`
}

// SetProviderRequest is the body of POST /api/set-provider
type SetProviderRequest struct {
	Provider string `json:"provider" validate:"required,oneof=openai deepseek"`
}

// SetProviderResponse is the 200 body of POST /api/set-provider
type SetProviderResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Provider string `json:"provider"`
}

type SiteHandler struct {
	generator *generator.Generator
	providers *providers.Manager
	analytics *analytics.Recorder
	logs      GenerationLogger
}

// NewSiteHandler wires the generation endpoints. logs may be nil.
func NewSiteHandler(gen *generator.Generator, providerMgr *providers.Manager, rec *analytics.Recorder, logs GenerationLogger) *SiteHandler {
	return &SiteHandler{
		generator: gen,
		providers: providerMgr,
		analytics: rec,
		logs:      logs,
	}
}

// HandleGenerate handles POST /api/generate
func (h *SiteHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	var req GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Description is required", nil)
		return
	}

	provider := req.Provider
	if provider == "" {
		provider = generator.ChoiceAuto
	}
	log.Printf("Generating website for: %q with provider: %s", req.Description, provider)

	// The upstream call is allowed to finish even if the caller goes away.
	ctx := context.WithoutCancel(r.Context())

	result, err := h.generator.Generate(ctx, generator.Request{
		Description: req.Description,
		Provider:    provider,
	})
	if err != nil {
		if errors.Is(err, generator.ErrEmptyDescription) {
			respondError(w, http.StatusBadRequest, "Description is required", nil)
			return
		}
		log.Printf("Generation error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to generate website", err)
		return
	}

	h.analytics.RecordGeneration(req.Description, result.Method)

	id := uuid.New().String()
	latency := time.Since(startTime)

	w.Header().Set("X-Provider", result.Source)
	w.Header().Set("X-Cache-Hit", strconv.FormatBool(result.CacheHit))
	w.Header().Set("X-Latency-Ms", strconv.FormatInt(latency.Milliseconds(), 10))

	h.logGeneration(id, req.Description, result, latency)

	respondJSON(w, http.StatusOK, GenerateResponse{
		Success:  true,
		ID:       id,
		HTML:     result.HTML,
		Message:  "Website generated successfully",
		Method:   result.Method,
		Provider: result.Provider,
	})
}

// HandleSetProvider handles POST /api/set-provider
func (h *SiteHandler) HandleSetProvider(w http.ResponseWriter, r *http.Request) {
	var req SetProviderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Unknown provider. Use openai or deepseek", nil)
		return
	}

	if err := h.providers.SetCurrent(req.Provider); err != nil {
		msg := fmt.Sprintf("%s not configured. Add %s to .env", providers.Label(req.Provider), providers.APIKeyEnv(req.Provider))
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	respondJSON(w, http.StatusOK, SetProviderResponse{
		Success:  true,
		Message:  fmt.Sprintf("Provider switched to %s", req.Provider),
		Provider: h.providers.Current(),
	})
}

// logGeneration writes the audit entry asynchronously to avoid blocking
func (h *SiteHandler) logGeneration(id, description string, result *generator.Result, latency time.Duration) {
	if h.logs == nil {
		return
	}

	entry := &models.GenerationLog{
		ID:                id,
		Description:       description,
		RequestedProvider: result.Provider,
		Method:            result.Method,
		Source:            result.Source,
		CacheHit:          result.CacheHit,
		LatencyMs:         int(latency.Milliseconds()),
		CreatedAt:         time.Now().UTC(),
	}
	if result.FallbackReason != nil {
		msg := result.FallbackReason.Error()
		entry.ErrorMessage = &msg
	}

	go func() {
		if err := h.logs.LogGeneration(context.Background(), entry); err != nil {
			log.Printf("failed to log generation %s: %v", id, err)
		}
	}()
}
