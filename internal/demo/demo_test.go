package demo

import (
	"math/rand"
	"testing"
	"time"

	"finboard/internal/core"
)

func TestTransactions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	txs := Transactions(rng, 50)

	if len(txs) != 50 {
		t.Fatalf("got %d transactions, want 50", len(txs))
	}

	yearStart := time.Date(time.Now().Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			t.Errorf("transaction %d invalid: %v", i, err)
		}
		if seen[tx.ID] {
			t.Errorf("duplicate id %s", tx.ID)
		}
		seen[tx.ID] = true
		if tx.Date.Before(yearStart) {
			t.Errorf("transaction %d dated %s, before start of year", i, tx.Date.Key())
		}
		switch tx.Type {
		case core.Income:
			if tx.Amount.Cents < 10000 || tx.Amount.Cents > 300000 {
				t.Errorf("income amount %d out of range", tx.Amount.Cents)
			}
		case core.Expense:
			if tx.Amount.Cents < 500 || tx.Amount.Cents > 100000 {
				t.Errorf("expense amount %d out of range", tx.Amount.Cents)
			}
		}
		if i > 0 && tx.Date.After(txs[i-1].Date.Time) {
			t.Errorf("transactions not sorted newest first at index %d", i)
		}
	}
}

func TestBudgetSettings(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		s := BudgetSettings(rng)

		if s.TotalBudgetLimit.Cents < 200000 || s.TotalBudgetLimit.Cents > 500000 {
			t.Fatalf("total limit %d out of range", s.TotalBudgetLimit.Cents)
		}
		if !s.AlertsEnabled {
			t.Fatal("alerts should default on")
		}
		if err := s.ValidateLimits(); err != nil {
			t.Fatalf("generated limits invalid: %v", err)
		}
		for _, category := range core.ExpenseCategories {
			if _, ok := s.CategoryLimits[category]; !ok {
				t.Fatalf("missing limit for %s", category)
			}
		}
	}
}
