package analytics

import (
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	// popularKeyLen is how many characters of a description form its popularity key
	popularKeyLen = 50

	// TopRequests is the size of the popular requests list in a snapshot
	TopRequests = 10
)

// Provider usage categories
const (
	CategoryOpenAI   = "openai"
	CategoryDeepSeek = "deepseek"
	CategoryTemplate = "template"
)

// Recorder holds process-lifetime usage counters. It is owned by the server
// and shared by all handlers; every access goes through mu.
type Recorder struct {
	mu sync.Mutex

	totalRequests     int
	uniqueCallers     map[string]struct{}
	websitesGenerated int
	providerUsage     map[string]int
	popularRequests   map[string]int
	startTime         time.Time
	lastActivity      time.Time

	now func() time.Time
}

// New creates a recorder whose uptime starts now
func New() *Recorder {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Recorder {
	start := now()
	return &Recorder{
		uniqueCallers: make(map[string]struct{}),
		providerUsage: map[string]int{
			CategoryOpenAI:   0,
			CategoryDeepSeek: 0,
			CategoryTemplate: 0,
		},
		popularRequests: make(map[string]int),
		startTime:       start,
		lastActivity:    start,
		now:             now,
	}
}

// CallerKey builds the composite identity used for unique caller counting
func CallerKey(ip, userAgent string) string {
	if ip == "" {
		ip = "unknown"
	}
	if userAgent == "" {
		userAgent = "unknown"
	}
	return ip + "-" + userAgent
}

// DescriptionKey is the first 50 characters of the lowercased description
func DescriptionKey(description string) string {
	runes := []rune(strings.ToLower(description))
	if len(runes) > popularKeyLen {
		runes = runes[:popularKeyLen]
	}
	return string(runes)
}

// Category maps a method label to its provider usage bucket
func Category(method string) string {
	switch {
	case strings.Contains(method, "DeepSeek"):
		return CategoryDeepSeek
	case strings.Contains(method, "OpenAI"):
		return CategoryOpenAI
	default:
		return CategoryTemplate
	}
}

// RecordRequest counts one inbound HTTP request
func (r *Recorder) RecordRequest(callerKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totalRequests++
	r.uniqueCallers[callerKey] = struct{}{}
	r.lastActivity = r.now()
}

// RecordGeneration counts one completed generation
func (r *Recorder) RecordGeneration(description, method string) {
	key := DescriptionKey(description)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.websitesGenerated++
	r.providerUsage[Category(method)]++
	r.popularRequests[key]++
}

// PopularRequest is one entry of the popular requests list
type PopularRequest struct {
	Request string `json:"request"`
	Count   int    `json:"count"`
}

// ProviderUsage is the per-category generation count
type ProviderUsage struct {
	OpenAI   int `json:"openai"`
	DeepSeek int `json:"deepseek"`
	Template int `json:"template"`
}

// Total is the sum over all categories
func (u ProviderUsage) Total() int {
	return u.OpenAI + u.DeepSeek + u.Template
}

// Uptime describes how long the recorder has been running
type Uptime struct {
	StartTime    time.Time `json:"startTime"`
	LastActivity time.Time `json:"lastActivity"`
	// Duration is in milliseconds
	Duration int64 `json:"duration"`
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	TotalUsers        int              `json:"totalUsers"`
	UniqueUsers       int              `json:"uniqueUsers"`
	WebsitesGenerated int              `json:"websitesGenerated"`
	ProviderUsage     ProviderUsage    `json:"providerUsage"`
	PopularRequests   []PopularRequest `json:"popularRequests"`
	Uptime            Uptime           `json:"uptime"`
}

// Summary is the brief counter set reported by the health check
type Summary struct {
	TotalUsers        int `json:"totalUsers"`
	UniqueUsers       int `json:"uniqueUsers"`
	WebsitesGenerated int `json:"websitesGenerated"`
}

// Snapshot copies the counters, with the top 10 popular requests by count
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	popular := make([]PopularRequest, 0, len(r.popularRequests))
	for req, count := range r.popularRequests {
		popular = append(popular, PopularRequest{Request: req, Count: count})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].Request < popular[j].Request
	})
	if len(popular) > TopRequests {
		popular = popular[:TopRequests]
	}

	return Snapshot{
		TotalUsers:        r.totalRequests,
		UniqueUsers:       len(r.uniqueCallers),
		WebsitesGenerated: r.websitesGenerated,
		ProviderUsage: ProviderUsage{
			OpenAI:   r.providerUsage[CategoryOpenAI],
			DeepSeek: r.providerUsage[CategoryDeepSeek],
			Template: r.providerUsage[CategoryTemplate],
		},
		PopularRequests: popular,
		Uptime: Uptime{
			StartTime:    r.startTime,
			LastActivity: r.lastActivity,
			Duration:     r.now().Sub(r.startTime).Milliseconds(),
		},
	}
}

// Summary returns the brief counters without building the popular list
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Summary{
		TotalUsers:        r.totalRequests,
		UniqueUsers:       len(r.uniqueCallers),
		WebsitesGenerated: r.websitesGenerated,
	}
}
