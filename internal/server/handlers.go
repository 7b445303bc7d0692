package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadscore-cli/internal/dedupe"
	"github.com/sells-group/leadscore-cli/internal/ingest"
	"github.com/sells-group/leadscore-cli/internal/model"
)

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.L().Error("server: encode error response", zap.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSample scores the built-in demo dataset.
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	out := s.orchestrator.RunLeads(r.Context(), ingest.SampleLeads())
	respondJSON(w, http.StatusOK, out)
}

type scoreResponse struct {
	Lead            model.Lead      `json:"lead"`
	Breakdown       model.Breakdown `json:"breakdown"`
	Recommendations []string        `json:"recommendations"`
	QualityScore    float64         `json:"data_quality_score"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var raw model.RawRecord
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "request body must be a JSON object")
		return
	}

	lead, err := model.LeadFromRaw(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_input", eris.Cause(err).Error())
		return
	}

	breakdown, report := s.scorer.ScoreWithReport(lead)
	respondJSON(w, http.StatusOK, scoreResponse{
		Lead:            report.Cleaned,
		Breakdown:       breakdown,
		Recommendations: s.scorer.Recommend(breakdown, lead),
		QualityScore:    report.QualityScore,
	})
}

type leadsRequest struct {
	Leads []model.RawRecord `json:"leads"`
}

func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req leadsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "request body must be {\"leads\": [...]}")
		return
	}
	if len(req.Leads) == 0 {
		respondError(w, http.StatusBadRequest, "bad_request", "leads must not be empty")
		return
	}

	out := s.orchestrator.Run(r.Context(), req.Leads)
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var raw model.RawRecord
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "request body must be a JSON object")
		return
	}

	lead, err := model.LeadFromRaw(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_input", eris.Cause(err).Error())
		return
	}

	respondJSON(w, http.StatusOK, s.validator.Record(lead))
}

type dedupeResponse struct {
	Groups []dedupe.DuplicateGroup `json:"groups"`
	Total  int                     `json:"total"`
}

func (s *Server) handleDedupe(w http.ResponseWriter, r *http.Request) {
	var req leadsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "request body must be {\"leads\": [...]}")
		return
	}

	leads := make([]model.Lead, 0, len(req.Leads))
	for i, raw := range req.Leads {
		lead, err := model.LeadFromRaw(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_input",
				eris.Cause(err).Error()+" at index "+strconv.Itoa(i))
			return
		}
		leads = append(leads, lead)
	}

	groups := s.matcher.FindDuplicates(leads, s.threshold)
	if groups == nil {
		groups = []dedupe.DuplicateGroup{}
	}
	respondJSON(w, http.StatusOK, dedupeResponse{Groups: groups, Total: len(groups)})
}
