package monitoring

import (
	"sync"
	"time"
)

// ServiceStats collects in-memory counters for the prediction service.
// All methods are safe on a nil receiver so handlers never need to guard.
type ServiceStats struct {
	mu sync.RWMutex

	startTime          time.Time
	supportPredictions int64
	noSupportResults   int64
	rejectedInputs     int64
	unavailable        int64
	cacheHits          int64
	lastPrediction     time.Time
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	SupportPredictions int64     `json:"support_predictions"`
	NoSupportResults   int64     `json:"no_support_results"`
	RejectedInputs     int64     `json:"rejected_inputs"`
	Unavailable        int64     `json:"unavailable_responses"`
	CacheHits          int64     `json:"cache_hits"`
	StartTime          time.Time `json:"start_time"`
	LastPrediction     time.Time `json:"last_prediction,omitempty"`
	UptimeSeconds      float64   `json:"uptime_seconds"`
}

func NewServiceStats() *ServiceStats {
	return &ServiceStats{startTime: time.Now()}
}

func (s *ServiceStats) RecordPrediction(label int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if label == 1 {
		s.supportPredictions++
	} else {
		s.noSupportResults++
	}
	s.lastPrediction = time.Now()
}

func (s *ServiceStats) RecordRejected() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectedInputs++
}

func (s *ServiceStats) RecordUnavailable() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable++
}

func (s *ServiceStats) RecordCacheHit() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cacheHits++
}

func (s *ServiceStats) Snapshot() StatsSnapshot {
	if s == nil {
		return StatsSnapshot{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StatsSnapshot{
		SupportPredictions: s.supportPredictions,
		NoSupportResults:   s.noSupportResults,
		RejectedInputs:     s.rejectedInputs,
		Unavailable:        s.unavailable,
		CacheHits:          s.cacheHits,
		StartTime:          s.startTime,
		LastPrediction:     s.lastPrediction,
		UptimeSeconds:      time.Since(s.startTime).Seconds(),
	}
}
