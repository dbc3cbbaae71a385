package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"finboard/internal/core"
	"finboard/internal/log"
	"finboard/internal/metrics"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.transactions.All())
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var tx core.Transaction
	if err := decodeJSON(w, r, &tx); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx.Description = sanitizeInput(tx.Description)
	if tx.Category == "" {
		tx.Category = core.Classify(tx.Description)
	}
	if tx.ID == "" {
		tx.ID = uuid.Must(uuid.NewV4()).String()
	}
	if err := tx.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	list := append(s.transactions.All(), tx)
	s.transactions.ReplaceAll(list)
	s.logger.InfoContext(r.Context(), "transaction added",
		log.FieldOperation, log.OpCreate,
		log.FieldTransactionID, tx.ID,
		log.FieldAmountCents, tx.Amount.Cents,
		log.FieldCategory, tx.Category,
		log.FieldTxType, string(tx.Type))

	s.checkBudget(list)
	respondJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleReplaceTransactions(w http.ResponseWriter, r *http.Request) {
	var list []core.Transaction
	if err := decodeJSON(w, r, &list); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	for i := range list {
		if err := list[i].Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	s.transactions.ReplaceAll(list)
	s.logger.InfoContext(r.Context(), "transactions replaced",
		log.FieldOperation, log.OpUpdate,
		"count", len(list))

	s.checkBudget(list)
	respondJSON(w, http.StatusOK, s.transactions.All())
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var tx core.Transaction
	if err := decodeJSON(w, r, &tx); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	tx.ID = id
	tx.Description = sanitizeInput(tx.Description)
	if err := tx.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	list := s.transactions.All()
	found := false
	for i := range list {
		if list[i].ID == id {
			list[i] = tx
			found = true
			break
		}
	}
	if !found {
		respondError(w, http.StatusNotFound, "transaction not found")
		return
	}

	s.transactions.ReplaceAll(list)
	s.logger.InfoContext(r.Context(), "transaction updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldTransactionID, id)

	s.checkBudget(list)
	respondJSON(w, http.StatusOK, tx)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	list := s.transactions.All()
	kept := list[:0]
	found := false
	for _, tx := range list {
		if tx.ID == id {
			found = true
			continue
		}
		kept = append(kept, tx)
	}
	if !found {
		respondError(w, http.StatusNotFound, "transaction not found")
		return
	}

	s.transactions.ReplaceAll(kept)
	s.logger.InfoContext(r.Context(), "transaction deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldTransactionID, id)

	s.checkBudget(kept)
	w.WriteHeader(http.StatusNoContent)
}

// checkBudget recomputes budget violations after every transaction
// write and pushes the outcome to the alert store. Notifications fire
// only when the user has alerts enabled.
func (s *Server) checkBudget(txs []core.Transaction) {
	settings := s.settings.Get()

	violations := metrics.BudgetViolations(txs, settings)
	if len(violations) == 0 {
		s.alerts.Reset()
		return
	}

	s.alerts.Update(violations)
	if settings.AlertsEnabled {
		for _, v := range violations {
			s.center.Show(v.Message, core.SeverityWarning, s.cfg.NotificationDuration)
		}
	}
}
