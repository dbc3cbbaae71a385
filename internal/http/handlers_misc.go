package http

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"finboard/internal/core"
	"finboard/internal/demo"
	"finboard/internal/log"
)

type categoriesResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch core.TxType(r.URL.Query().Get("type")) {
	case core.Income:
		respondJSON(w, http.StatusOK, categoriesResponse{Income: core.CategoriesFor(core.Income)})
	case core.Expense:
		respondJSON(w, http.StatusOK, categoriesResponse{Expense: core.CategoriesFor(core.Expense)})
	case "":
		respondJSON(w, http.StatusOK, categoriesResponse{
			Income:  core.CategoriesFor(core.Income),
			Expense: core.CategoriesFor(core.Expense),
		})
	default:
		respondError(w, http.StatusBadRequest, core.ErrInvalidType.Error())
	}
}

type classifyRequest struct {
	Description string `json:"description"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"category": core.Classify(sanitizeInput(req.Description)),
	})
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"theme": s.theme.Get()})
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.theme.Set(req.Theme); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"theme": s.theme.Get()})
}

func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.ContactsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		limit = n
	}

	list, err := s.contacts.Fetch(r.Context(), limit)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "contacts fetch failed",
			log.FieldComponent, log.ComponentContacts,
			log.FieldError, err.Error())
		respondError(w, http.StatusBadGateway, "contacts upstream unavailable")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleSeedDemo(w http.ResponseWriter, r *http.Request) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	txs := demo.Transactions(rng, s.cfg.DemoTransactions)
	s.transactions.ReplaceAll(txs)
	s.settings.Set(demo.BudgetSettings(rng))

	s.logger.InfoContext(r.Context(), "demo data seeded",
		log.FieldOperation, log.OpCreate,
		"count", len(txs))

	s.checkBudget(txs)
	respondJSON(w, http.StatusCreated, map[string]int{"transactions": len(txs)})
}
