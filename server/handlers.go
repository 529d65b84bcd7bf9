package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/quantmill/frnlib/frn"
	"github.com/quantmill/frnlib/utils"
)

// durationRequest is the JSON body shared by the duration endpoints. Rates
// are decimal fractions (0.05 for 5%), dates are YYYY-MM-DD.
type durationRequest struct {
	Notional            float64 `json:"notional"`
	CouponRate          float64 `json:"coupon_rate"`
	ReferenceRateSpread float64 `json:"reference_rate_spread"`
	ResetPeriod         string  `json:"reset_period"`
	StartDate           string  `json:"start_date"`
	MaturityDate        string  `json:"maturity_date"`
}

type durationResponse struct {
	MacaulayDurationYears float64 `json:"macaulay_duration_years"`
	TimeToMaturityYears   float64 `json:"time_to_maturity_years"`
	NumberOfPeriods       int     `json:"number_of_periods"`
	TotalPresentValue     float64 `json:"total_present_value"`
}

type profilePoint struct {
	ResetPeriod           string  `json:"reset_period"`
	MacaulayDurationYears float64 `json:"macaulay_duration_years"`
}

type profileResponse struct {
	Points []profilePoint `json:"points"`
}

// toInput validates the request and converts it to note terms. The reset
// period is parsed only when required or supplied; the profile endpoint
// overrides it anyway.
func (req durationRequest) toInput(requireReset bool) (frn.DurationInput, error) {
	if req.Notional <= 0 {
		return frn.DurationInput{}, fmt.Errorf("notional must be positive")
	}
	if req.CouponRate < 0 {
		return frn.DurationInput{}, fmt.Errorf("coupon_rate must not be negative")
	}
	if req.ReferenceRateSpread < 0 {
		return frn.DurationInput{}, fmt.Errorf("reference_rate_spread must not be negative")
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return frn.DurationInput{}, fmt.Errorf("invalid start_date: %v", err)
	}
	maturity, err := utils.ParseDate(req.MaturityDate)
	if err != nil {
		return frn.DurationInput{}, fmt.Errorf("invalid maturity_date: %v", err)
	}

	in := frn.DurationInput{
		Notional:     req.Notional,
		CouponRate:   req.CouponRate,
		Spread:       req.ReferenceRateSpread,
		StartDate:    start,
		MaturityDate: maturity,
	}

	if requireReset || req.ResetPeriod != "" {
		period, err := frn.ParseResetPeriod(req.ResetPeriod)
		if err != nil {
			return frn.DurationInput{}, err
		}
		in.ResetPeriod = period
	}

	return in, nil
}

// handleDuration computes the Macaulay duration for one note.
func (s *Server) handleDuration(w http.ResponseWriter, r *http.Request) {
	var req durationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return
	}

	in, err := req.toInput(true)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := frn.ComputeMacaulayDuration(in)
	if err != nil {
		s.log.Error().Err(err).Msg("Duration computation rejected")
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, durationResponse{
		MacaulayDurationYears: res.Years,
		TimeToMaturityYears:   res.TimeToMaturity,
		NumberOfPeriods:       res.NumberOfPeriods,
		TotalPresentValue:     res.PresentValue,
	})
}

// handleResetProfile computes the duration at all four standard reset
// frequencies for charting.
func (s *Server) handleResetProfile(w http.ResponseWriter, r *http.Request) {
	var req durationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return
	}

	in, err := req.toInput(false)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := frn.CompareResetPeriods(in)
	if err != nil {
		s.log.Error().Err(err).Msg("Reset profile rejected")
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := profileResponse{Points: make([]profilePoint, 0, len(points))}
	for _, p := range points {
		resp.Points = append(resp.Points, profilePoint{
			ResetPeriod:           string(p.ResetPeriod),
			MacaulayDurationYears: p.Years,
		})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "frnlib",
		"version": "1.0.0",
	})
}

// handleSystemStatus reports uptime and runtime memory usage.
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "running",
		"uptime_seconds": int64(time.Since(s.started).Seconds()),
		"memory": map[string]interface{}{
			"alloc_mb":       m.Alloc / 1024 / 1024,
			"total_alloc_mb": m.TotalAlloc / 1024 / 1024,
			"sys_mb":         m.Sys / 1024 / 1024,
			"num_gc":         m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	})
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
