package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/etnz/assetflow"
	"github.com/etnz/assetflow/renderer"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// reportIDHeader carries the identifier of a generated report.
const reportIDHeader = "X-Report-Id"

// compareResponse is the body of a successful compare request.
type compareResponse struct {
	Model       string                    `json:"model"`
	Total       assetflow.Amount          `json:"total"`
	Composition *assetflow.Composition    `json:"composition"`
	Rows        []assetflow.ComparisonRow `json:"rows"`
	Drift       assetflow.Drift           `json:"drift"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"models": s.catalog.Models(),
	})
}

func (s *Server) handleGetModel(w http.ResponseWriter, r *http.Request) {
	m, err := s.catalog.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, statusOf(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleComposition(w http.ResponseWriter, r *http.Request) {
	a, err := assetflow.DecodeAllocation(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := assetflow.Normalize(a.Entries)
	if err != nil {
		s.writeError(w, statusOf(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	sim, ok := s.simulate(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, compareResponse{
		Model:       sim.Model.Name(),
		Total:       sim.Composition.Total(),
		Composition: sim.Composition,
		Rows:        sim.Rows,
		Drift:       sim.Drift,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	sim, ok := s.simulate(w, r)
	if !ok {
		return
	}
	l := renderer.DefaultLayout()
	l.RepeatHeader = s.cfg.Report.RepeatHeader
	if v := r.URL.Query().Get("repeat_header"); v != "" {
		repeat, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid repeat_header %q", v))
			return
		}
		l.RepeatHeader = repeat
	}

	id := uuid.NewString()
	pages := renderer.ReportPages(sim, l)
	// render first, so that a failure can still be reported as json.
	var buf bytes.Buffer
	if err := renderer.WritePDF(&buf, id, pages, l); err != nil {
		s.log.Error().Err(err).Str("report_id", id).Msg("Failed to write PDF report")
		s.writeError(w, http.StatusInternalServerError, "failed to write the report")
		return
	}
	s.log.Debug().Str("report_id", id).Int("pages", len(pages)).Msg("PDF report written")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.cfg.Report.File))
	w.Header().Set(reportIDHeader, id)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Error().Err(err).Str("report_id", id).Msg("Failed to send PDF report")
	}
}

// simulate runs the simulation for the allocation in the request body and
// the model in the query. It writes the error response and returns false on
// failure.
func (s *Server) simulate(w http.ResponseWriter, r *http.Request) (*assetflow.Simulation, bool) {
	q := r.URL.Query()
	name := q.Get("model")
	if name == "" {
		name = s.cfg.DefaultModel
	}
	m, err := s.catalog.Lookup(name)
	if err != nil {
		s.writeError(w, statusOf(err), err.Error())
		return nil, false
	}

	opts := assetflow.CompareOptions{IncludeModelOnly: s.cfg.Compare.IncludeModelOnly}
	if v := q.Get("include_model_only"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid include_model_only %q", v))
			return nil, false
		}
		opts.IncludeModelOnly = include
	}

	a, err := assetflow.DecodeAllocation(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	sim, err := assetflow.Simulate(a.Entries, m, opts)
	if err != nil {
		s.writeError(w, statusOf(err), err.Error())
		return nil, false
	}
	return sim, true
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, assetflow.ErrNoAllocation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, assetflow.ErrUnknownModel):
		return http.StatusNotFound
	case errors.Is(err, assetflow.ErrInvalidAssetClass):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
