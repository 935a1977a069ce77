package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"edupredict/advisor"
	"edupredict/ml"
	"edupredict/monitoring"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

var (
	artifacts *ml.Artifacts
	stats     *monitoring.ServiceStats
	logger    = zap.NewNop()
)

// predictCache memoizes responses keyed by the five inputs. Prediction is
// pure given the loaded artifacts, so a hit is byte-identical to a miss.
var predictCache, _ = lru.New[ml.StudentFeatures, predictResponse](1024)

// SetArtifacts injects the artifact bundle built once at startup.
func SetArtifacts(a *ml.Artifacts) {
	artifacts = a
	predictCache.Purge()
}

func SetStats(s *monitoring.ServiceStats) {
	stats = s
}

func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

func RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("POST /api/predict", handlePredict)
	mux.HandleFunc("GET /api/rules", handleRules)
	mux.HandleFunc("GET /api/model", handleModel)
}

type predictRequest struct {
	TestScore     float64 `json:"test_score"`
	AverageGrade  float64 `json:"average_grade"`
	Attendance    float64 `json:"attendance"`
	TimesLate     int     `json:"times_late"`
	Participation int     `json:"participation"`
}

type predictResponse struct {
	Label              int      `json:"label"`
	Probability        float64  `json:"probability"`
	ProbabilityPercent string   `json:"probability_percent"`
	SupportNeeded      bool     `json:"support_needed"`
	Suggestions        []string `json:"suggestions"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]interface{}{
		"status":       "ok",
		"model_loaded": artifacts != nil,
	})
}

func handlePredict(w http.ResponseWriter, r *http.Request) {
	if artifacts == nil {
		stats.RecordUnavailable()
		respondError(w, "prediction service unavailable", http.StatusServiceUnavailable)
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	features := ml.StudentFeatures{
		TestScore:     req.TestScore,
		AverageGrade:  req.AverageGrade,
		Attendance:    req.Attendance,
		TimesLate:     req.TimesLate,
		Participation: req.Participation,
	}
	if err := features.Validate(); err != nil {
		stats.RecordRejected()
		var verr *ml.ValidationError
		if errors.As(err, &verr) {
			respondError(w, verr.Error(), http.StatusUnprocessableEntity)
			return
		}
		respondError(w, "invalid input", http.StatusUnprocessableEntity)
		return
	}

	if cached, ok := predictCache.Get(features); ok {
		stats.RecordCacheHit()
		stats.RecordPrediction(cached.Label)
		respondJSON(w, cached)
		return
	}

	result := ml.Predict(features, artifacts)
	if result == nil {
		stats.RecordUnavailable()
		respondError(w, "prediction service unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := predictResponse{
		Label:              result.Label,
		Probability:        result.Probability,
		ProbabilityPercent: advisor.FormatProbability(result.Probability),
		SupportNeeded:      result.Label == 1,
		Suggestions:        advisor.Advise(result.Label, result.Probability, features),
	}
	predictCache.Add(features, resp)
	stats.RecordPrediction(resp.Label)
	respondJSON(w, resp)
}

func handleRules(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]interface{}{
		"rules": advisor.Rules(),
	})
}

func handleModel(w http.ResponseWriter, r *http.Request) {
	if artifacts == nil {
		respondJSON(w, map[string]interface{}{"loaded": false})
		return
	}
	respondJSON(w, map[string]interface{}{
		"loaded":        true,
		"scaler_path":   artifacts.ScalerPath,
		"model_path":    artifacts.ModelPath,
		"trees":         artifacts.Model.TreeCount(),
		"feature_names": ml.FeatureNames(),
	})
}

func respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
