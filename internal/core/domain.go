package core

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type (
	TxType string

	Severity string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is one financial event. Amount is always a positive
	// magnitude; the direction is carried by Type.
	Transaction struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		Amount      Money  `json:"amount"`
		Type        TxType `json:"type"`
		Category    string `json:"category"`
		Date        Date   `json:"date"`
	}

	// User is the identity attached to an authenticated session.
	User struct {
		Email string `json:"email"`
	}

	// Credentials is a registered login record as persisted under the
	// "users" key.
	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// UserSettings is the per-user budget configuration.
	UserSettings struct {
		TotalBudgetLimit Money            `json:"totalBudgetLimit"`
		CategoryLimits   map[string]Money `json:"categoryLimits"`
		AlertsEnabled    bool             `json:"alertsEnabled"`
		BudgetExceeded   bool             `json:"budgetExceeded"`
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrEmptyDescription  = errors.New("empty description")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrEmptyCategory     = errors.New("empty category")
	ErrUnknownCategory   = errors.New("unknown category for transaction type")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrWeakPassword      = errors.New("password must be at least 8 characters long and contain both letters and numbers")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrInvalidLogin      = errors.New("invalid email or password")
	ErrLimitsExceedTotal = errors.New("total category limits cannot exceed total budget limit")
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	letterRe = regexp.MustCompile(`[A-Za-z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
)

func (t TxType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

func (s Severity) Validate() error {
	switch s {
	case SeveritySuccess, SeverityInfo, SeverityWarning, SeverityError:
		return nil
	default:
		return errors.New("invalid severity")
	}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Key returns the calendar-day form used for daily bucketing.
func (d Date) Key() string {
	return d.Format("2006-01-02")
}

// NewDate creates a Date at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if !KnownCategory(t.Type, t.Category) {
		return ErrUnknownCategory
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateLimits enforces the save-time rule: the sum of the category
// limits must not exceed the total budget limit. It is not applied on
// every field edit, only when a save action is confirmed.
func (s UserSettings) ValidateLimits() error {
	var sum int64
	for _, limit := range s.CategoryLimits {
		sum += limit.Cents
	}
	if sum > s.TotalBudgetLimit.Cents {
		return ErrLimitsExceedTotal
	}
	return nil
}

func (c Credentials) Validate() error {
	if !emailRe.MatchString(c.Email) {
		return ErrInvalidEmail
	}
	if len(c.Password) < 8 || !letterRe.MatchString(c.Password) || !digitRe.MatchString(c.Password) {
		return ErrWeakPassword
	}
	return nil
}
