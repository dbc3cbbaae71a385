package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"finboard/internal/core"
)

// Alert is one budget-violation message. IDs are stable per violation
// source ("total-budget" or "category-<name>").
type Alert struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// BudgetViolations checks total expenses against the total budget limit
// and per-category expenses against each category limit. The total
// alert, when present, comes first; category alerts follow in name
// order so repeated calls on the same snapshot yield identical output.
// All qualifying alerts are emitted, not just the worst one.
func BudgetViolations(txs []core.Transaction, settings core.UserSettings) []Alert {
	totals := ComputeTotals(txs)
	byCategory := make(map[string]int64)
	for _, tx := range txs {
		if tx.Type == core.Expense && tx.Category != "" {
			byCategory[tx.Category] += tx.Amount.Cents
		}
	}

	var alerts []Alert
	if limit := settings.TotalBudgetLimit.Cents; totals.Expense.Cents > limit {
		alerts = append(alerts, Alert{
			ID: "total-budget",
			Message: fmt.Sprintf("Total Budget exceeded by %.1f%%\nLimit: %s | Current: %s",
				percentOver(totals.Expense.Cents, limit),
				settings.TotalBudgetLimit, totals.Expense),
		})
	}

	categories := make([]string, 0, len(settings.CategoryLimits))
	for c := range settings.CategoryLimits {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, category := range categories {
		limit := settings.CategoryLimits[category]
		spent := byCategory[category]
		if spent <= limit.Cents {
			continue
		}
		alerts = append(alerts, Alert{
			ID: "category-" + category,
			Message: fmt.Sprintf("%s budget exceeded by %.1f%%\nLimit: %s | Current: %s",
				category, percentOver(spent, limit.Cents),
				limit, core.Money{Cents: spent}),
		})
	}
	return alerts
}

// BudgetExceeded reports whether total expenses exceed the total budget
// limit. This is the derived form of the UserSettings.BudgetExceeded
// field; read paths recompute it here instead of trusting the cache.
func BudgetExceeded(txs []core.Transaction, settings core.UserSettings) bool {
	return ComputeTotals(txs).Expense.Cents > settings.TotalBudgetLimit.Cents
}

// BudgetUtilization returns total expenses as a percentage of the total
// budget limit, 0 when no limit is configured.
func BudgetUtilization(txs []core.Transaction, settings core.UserSettings) float64 {
	limit := settings.TotalBudgetLimit.Cents
	if limit <= 0 {
		return 0
	}
	return float64(ComputeTotals(txs).Expense.Cents) / float64(limit) * 100
}

func percentOver(spent, limit int64) float64 {
	if limit <= 0 {
		return 0
	}
	return float64(spent-limit) / float64(limit) * 100
}

// Comparison is the month-over-month expense summary behind the
// recommendations widget.
type Comparison struct {
	CurrentTotal  core.Money    `json:"currentTotal"`
	PreviousTotal core.Money    `json:"previousTotal"`
	ChangePct     float64       `json:"changePct"`
	Message       string        `json:"message"`
	Severity      core.Severity `json:"severity"`
}

// MonthComparison compares expense totals for the calendar month of now
// against the month before it and produces a recommendation message.
func MonthComparison(txs []core.Transaction, now time.Time) Comparison {
	current := monthExpenseTotal(txs, now.Year(), now.Month())
	previousAnchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	previous := monthExpenseTotal(txs, previousAnchor.Year(), previousAnchor.Month())

	out := Comparison{
		CurrentTotal:  core.Money{Cents: current},
		PreviousTotal: core.Money{Cents: previous},
	}

	if previous == 0 {
		out.Message = "Start recording your expenses to receive personalized recommendations."
		out.Severity = core.SeverityInfo
		return out
	}

	diff := current - previous
	out.ChangePct = float64(diff) / float64(previous) * 100
	pct := math.Abs(out.ChangePct)

	switch {
	case diff > 0:
		out.Message = fmt.Sprintf("Your expenses have increased by %.1f%% compared to last month. Consider reviewing your main spending categories to identify areas for improvement.", pct)
		out.Severity = core.SeverityWarning
	case diff < 0:
		out.Message = fmt.Sprintf("Congratulations! You've reduced your expenses by %.1f%% compared to last month. Keep up the great work!", pct)
		out.Severity = core.SeveritySuccess
	default:
		out.Message = "Your expenses have remained stable compared to last month."
		out.Severity = core.SeverityInfo
	}
	return out
}

func monthExpenseTotal(txs []core.Transaction, year int, month time.Month) int64 {
	var total int64
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		if tx.Date.Year() == year && tx.Date.Month() == month {
			total += tx.Amount.Cents
		}
	}
	return total
}
