package monitoring

import "testing"

func TestServiceStatsCounters(t *testing.T) {
	stats := NewServiceStats()

	stats.RecordPrediction(1)
	stats.RecordPrediction(1)
	stats.RecordPrediction(0)
	stats.RecordRejected()
	stats.RecordUnavailable()
	stats.RecordCacheHit()

	snapshot := stats.Snapshot()
	if snapshot.SupportPredictions != 2 {
		t.Fatalf("expected 2 support predictions, got %d", snapshot.SupportPredictions)
	}
	if snapshot.NoSupportResults != 1 {
		t.Fatalf("expected 1 no-support result, got %d", snapshot.NoSupportResults)
	}
	if snapshot.RejectedInputs != 1 {
		t.Fatalf("expected 1 rejected input, got %d", snapshot.RejectedInputs)
	}
	if snapshot.Unavailable != 1 {
		t.Fatalf("expected 1 unavailable response, got %d", snapshot.Unavailable)
	}
	if snapshot.CacheHits != 1 {
		t.Fatalf("expected 1 cache hit, got %d", snapshot.CacheHits)
	}
	if snapshot.LastPrediction.IsZero() {
		t.Fatal("expected last prediction time to be set")
	}
}

func TestServiceStatsNilReceiver(t *testing.T) {
	var stats *ServiceStats

	// Handlers call these without guarding; nil must be a no-op.
	stats.RecordPrediction(1)
	stats.RecordRejected()
	stats.RecordUnavailable()
	stats.RecordCacheHit()

	snapshot := stats.Snapshot()
	if snapshot.SupportPredictions != 0 {
		t.Fatalf("expected zero snapshot from nil stats, got %+v", snapshot)
	}
}
