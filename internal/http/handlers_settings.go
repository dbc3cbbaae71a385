package http

import (
	"net/http"

	"finboard/internal/core"
	"finboard/internal/log"
	"finboard/internal/metrics"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings := s.settings.Get()
	// The persisted flag is never trusted; derive it from the data.
	settings.BudgetExceeded = metrics.BudgetExceeded(s.transactions.All(), settings)
	respondJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var settings core.UserSettings
	if err := decodeJSON(w, r, &settings); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := settings.ValidateLimits(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.settings.Set(settings)
	s.logger.InfoContext(r.Context(), "settings saved",
		log.FieldOperation, log.OpUpdate,
		log.FieldAmountCents, settings.TotalBudgetLimit.Cents)

	// Limits changed, so the violation set may have too.
	s.checkBudget(s.transactions.All())

	saved := s.settings.Get()
	saved.BudgetExceeded = metrics.BudgetExceeded(s.transactions.All(), saved)
	respondJSON(w, http.StatusOK, saved)
}
