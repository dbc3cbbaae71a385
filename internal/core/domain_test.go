package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:          "t1",
		Description: "Grocery Shopping",
		Amount:      Money{Cents: 1250},
		Type:        Expense,
		Category:    "Food",
		Date:        NewDate(2024, 3, 15),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{ID: "a", Description: "x", Amount: Money{Cents: 1}, Type: Expense, Category: "Food", Date: Date{Time: time.Time{}}}, // zero date
		{ID: "b", Description: "", Amount: Money{Cents: 1}, Type: Expense, Category: "Food", Date: NewDate(2024, 1, 1)},
		{ID: "c", Description: "x", Amount: Money{Cents: 0}, Type: Expense, Category: "Food", Date: NewDate(2024, 1, 1)},
		{ID: "d", Description: "x", Amount: Money{Cents: 1}, Type: "transfer", Category: "Food", Date: NewDate(2024, 1, 1)},
		{ID: "e", Description: "x", Amount: Money{Cents: 1}, Type: Expense, Category: "", Date: NewDate(2024, 1, 1)},
		{ID: "f", Description: "x", Amount: Money{Cents: 1}, Type: Expense, Category: "Salary", Date: NewDate(2024, 1, 1)}, // income-only category
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestUserSettingsValidateLimits(t *testing.T) {
	s := UserSettings{
		TotalBudgetLimit: Money{Cents: 100000},
		CategoryLimits: map[string]Money{
			"Food":      {Cents: 40000},
			"Transport": {Cents: 50000},
		},
	}
	if err := s.ValidateLimits(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	s.CategoryLimits["Housing"] = Money{Cents: 20000}
	if err := s.ValidateLimits(); err != ErrLimitsExceedTotal {
		t.Fatalf("expected ErrLimitsExceedTotal, got %v", err)
	}
}

func TestCredentialsValidate(t *testing.T) {
	cases := []struct {
		name  string
		creds Credentials
		want  error
	}{
		{"ok", Credentials{Email: "a@b.com", Password: "secret12"}, nil},
		{"bad email", Credentials{Email: "not-an-email", Password: "secret12"}, ErrInvalidEmail},
		{"short password", Credentials{Email: "a@b.com", Password: "ab1"}, ErrWeakPassword},
		{"no digits", Credentials{Email: "a@b.com", Password: "abcdefgh"}, ErrWeakPassword},
		{"no letters", Credentials{Email: "a@b.com", Password: "12345678"}, ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.creds.Validate(); err != tc.want {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestTransactionJSONRoundTrip(t *testing.T) {
	tx := Transaction{
		ID:          "abc",
		Description: "Rent",
		Amount:      Money{Cents: 50000},
		Type:        Expense,
		Category:    "Housing",
		Date:        Date{Time: time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)},
	}
	raw, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Transaction
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Amount.Cents != 50000 {
		t.Fatalf("amount cents = %d", back.Amount.Cents)
	}
	if !back.Date.Equal(tx.Date.Time) {
		t.Fatalf("date = %v, want %v", back.Date, tx.Date)
	}
}
