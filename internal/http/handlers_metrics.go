package http

import (
	"net/http"
	"time"

	"finboard/internal/core"
	"finboard/internal/metrics"
)

type summaryResponse struct {
	Income  core.Money `json:"income"`
	Expense core.Money `json:"expense"`
	Balance core.Money `json:"balance"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	totals := metrics.ComputeTotals(s.transactions.All())
	respondJSON(w, http.StatusOK, summaryResponse{
		Income:  totals.Income,
		Expense: totals.Expense,
		Balance: totals.Balance(),
	})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, metrics.RunningBalance(s.transactions.All()))
}

func (s *Server) handleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, metrics.CategoryBreakdown(s.transactions.All()))
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	frame, err := metrics.ParseTimeFrame(r.URL.Query().Get("frame"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, metrics.TrendBuckets(s.transactions.All(), frame))
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, metrics.ComputeStats(s.transactions.All()))
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, metrics.MonthComparison(s.transactions.All(), time.Now()))
}

type budgetResponse struct {
	Exceeded    bool            `json:"exceeded"`
	Utilization float64         `json:"utilization"`
	Alerts      []metrics.Alert `json:"alerts"`
}

func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	txs := s.transactions.All()
	settings := s.settings.Get()

	alerts := metrics.BudgetViolations(txs, settings)
	if alerts == nil {
		alerts = []metrics.Alert{}
	}

	respondJSON(w, http.StatusOK, budgetResponse{
		Exceeded:    metrics.BudgetExceeded(txs, settings),
		Utilization: metrics.BudgetUtilization(txs, settings),
		Alerts:      alerts,
	})
}
