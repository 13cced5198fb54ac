package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/edixon-javier/qargo-coffee-manager/internal/analytics"
	"github.com/edixon-javier/qargo-coffee-manager/internal/dto"
)

func (s *Server) getDashboardMetrics(w http.ResponseWriter, r *http.Request) {
	period := analytics.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = analytics.PeriodMonth
	}

	m, err := s.metrics.ComputeMetrics(r.Context(), period, time.Time{})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, analytics.ErrUnknownPeriod) {
			status = http.StatusBadRequest
		}
		respondError(w, status, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ConvertEntityDashboardMetrics(m))
}
