package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()

	handler := http.HandlerFunc(handleHealth)
	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if payload["status"] != "ok" {
		t.Errorf("unexpected status: %v", payload["status"])
	}
}

func TestHandleRules(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/rules", nil)
	rr := httptest.NewRecorder()

	handler := http.HandlerFunc(handleRules)
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var payload struct {
		Rules []struct {
			Name        string   `json:"name"`
			Condition   string   `json:"condition"`
			Observation string   `json:"observation"`
			Suggestions []string `json:"suggestions"`
		} `json:"rules"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(payload.Rules) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(payload.Rules))
	}
	if payload.Rules[0].Condition != "test_score < 45" {
		t.Fatalf("unexpected first condition: %s", payload.Rules[0].Condition)
	}
}

func TestHandleModel(t *testing.T) {
	SetArtifacts(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/model", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(handleModel).ServeHTTP(rr, req)

	var payload map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if payload["loaded"] != false {
		t.Fatalf("expected loaded false, got %v", payload["loaded"])
	}

	SetArtifacts(newTestArtifacts())
	defer SetArtifacts(nil)

	rr = httptest.NewRecorder()
	http.HandlerFunc(handleModel).ServeHTTP(rr, req)
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if payload["loaded"] != true {
		t.Fatalf("expected loaded true, got %v", payload["loaded"])
	}
	if payload["trees"].(float64) != 5 {
		t.Fatalf("unexpected tree count: %v", payload["trees"])
	}
}
