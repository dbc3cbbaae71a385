package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/core"
)

func tx(id string, t core.TxType, cents int64, category, date string) core.Transaction {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return core.Transaction{
		ID:          id,
		Description: id,
		Amount:      core.Money{Cents: cents},
		Type:        t,
		Category:    category,
		Date:        d,
	}
}

func TestRunningBalanceMatchesTotals(t *testing.T) {
	txs := []core.Transaction{
		tx("salary", core.Income, 100000, "Salary", "2024-01-01T10:00:00"),
		tx("rent", core.Expense, 50000, "Housing", "2024-01-02T15:00:00"),
		tx("food", core.Expense, 10000, "Food", "2024-01-02T16:00:00"),
	}

	points := RunningBalance(txs)
	require.NotEmpty(t, points)

	totals := ComputeTotals(txs)
	assert.Equal(t, totals.Balance(), points[len(points)-1].Balance,
		"final balance point must equal income minus expense")
	assert.Equal(t, int64(40000), points[len(points)-1].Balance.Cents)
}

func TestRunningBalanceCollapsesDuplicateDates(t *testing.T) {
	// Three transactions across two distinct date values.
	txs := []core.Transaction{
		tx("a", core.Income, 1000, "Salary", "2024-01-01"),
		tx("b", core.Expense, 300, "Food", "2024-01-02"),
		tx("c", core.Expense, 200, "Food", "2024-01-02"),
	}

	points := RunningBalance(txs)
	require.Len(t, points, 2, "one point per distinct date value")
	// The repeated date keeps the final balance for that date.
	assert.Equal(t, int64(500), points[1].Balance.Cents)
}

func TestRunningBalanceUnsortedInput(t *testing.T) {
	txs := []core.Transaction{
		tx("late", core.Expense, 400, "Food", "2024-03-10"),
		tx("early", core.Income, 1000, "Salary", "2024-01-05"),
	}
	points := RunningBalance(txs)
	require.Len(t, points, 2)
	assert.Equal(t, int64(1000), points[0].Balance.Cents)
	assert.Equal(t, int64(600), points[1].Balance.Cents)
}

func TestBudgetViolationsSpecExample(t *testing.T) {
	// transactions [{expense,100,Food},{expense,200,Transport},{expense,150,Food}]
	// settings {totalBudgetLimit:1000, categoryLimits:{Food:200}}
	txs := []core.Transaction{
		tx("a", core.Expense, 10000, "Food", "2024-01-01"),
		tx("b", core.Expense, 20000, "Transportation", "2024-01-02"),
		tx("c", core.Expense, 15000, "Food", "2024-01-03"),
	}
	settings := core.UserSettings{
		TotalBudgetLimit: core.Money{Cents: 100000},
		CategoryLimits:   map[string]core.Money{"Food": {Cents: 20000}},
	}

	alerts := BudgetViolations(txs, settings)
	require.Len(t, alerts, 1, "450 <= 1000: no total alert; Food 250 > 200: one category alert")
	assert.Equal(t, "category-Food", alerts[0].ID)
	assert.Contains(t, alerts[0].Message, "Food budget exceeded by 25.0%")
	assert.Contains(t, alerts[0].Message, "Limit: €200.00 | Current: €250.00")
}

func TestBudgetViolationsTotalFirst(t *testing.T) {
	txs := []core.Transaction{
		tx("a", core.Expense, 90000, "Food", "2024-01-01"),
		tx("b", core.Expense, 60000, "Travel", "2024-01-02"),
	}
	settings := core.UserSettings{
		TotalBudgetLimit: core.Money{Cents: 100000},
		CategoryLimits: map[string]core.Money{
			"Travel": {Cents: 50000},
			"Food":   {Cents: 40000},
		},
	}

	alerts := BudgetViolations(txs, settings)
	require.Len(t, alerts, 3)
	assert.Equal(t, "total-budget", alerts[0].ID)
	assert.Contains(t, alerts[0].Message, "Total Budget exceeded by 50.0%")
	// Category alerts in name order.
	assert.Equal(t, "category-Food", alerts[1].ID)
	assert.Equal(t, "category-Travel", alerts[2].ID)
}

func TestBudgetViolationsIdempotent(t *testing.T) {
	txs := []core.Transaction{
		tx("a", core.Expense, 90000, "Food", "2024-01-01"),
		tx("b", core.Expense, 60000, "Travel", "2024-01-02"),
	}
	settings := core.UserSettings{
		TotalBudgetLimit: core.Money{Cents: 100000},
		CategoryLimits: map[string]core.Money{
			"Travel": {Cents: 50000},
			"Food":   {Cents: 40000},
			"Health": {Cents: 10000},
		},
	}

	first := BudgetViolations(txs, settings)
	second := BudgetViolations(txs, settings)
	assert.Equal(t, first, second, "same snapshot must yield identical alert lists")
}

func TestBudgetViolationsNoAlertAtExactLimit(t *testing.T) {
	txs := []core.Transaction{tx("a", core.Expense, 20000, "Food", "2024-01-01")}
	settings := core.UserSettings{
		TotalBudgetLimit: core.Money{Cents: 20000},
		CategoryLimits:   map[string]core.Money{"Food": {Cents: 20000}},
	}
	assert.Empty(t, BudgetViolations(txs, settings), "alerts fire strictly above the limit")
	assert.False(t, BudgetExceeded(txs, settings))
}

func TestBudgetUtilization(t *testing.T) {
	txs := []core.Transaction{tx("a", core.Expense, 45000, "Food", "2024-01-01")}
	settings := core.UserSettings{TotalBudgetLimit: core.Money{Cents: 100000}}
	assert.InDelta(t, 45.0, BudgetUtilization(txs, settings), 0.001)

	assert.Zero(t, BudgetUtilization(txs, core.UserSettings{}), "no limit configured")
}

func TestCategoryBreakdown(t *testing.T) {
	txs := []core.Transaction{
		tx("a", core.Expense, 10000, "Food", "2024-01-01"),
		tx("b", core.Income, 5000, "Sales", "2024-01-01"),
		tx("c", core.Expense, 2500, "Food", "2024-01-02"),
	}

	flows := CategoryBreakdown(txs)
	require.Len(t, flows, 2)
	assert.Equal(t, "Food", flows[0].Category)
	assert.Equal(t, int64(12500), flows[0].Expense.Cents)
	assert.Equal(t, "Sales", flows[1].Category)
	assert.Equal(t, int64(5000), flows[1].Income.Cents)
}

func TestComputeStats(t *testing.T) {
	txs := []core.Transaction{
		tx("a", core.Expense, 10000, "Food", "2024-01-01T09:00:00"),
		tx("b", core.Expense, 20000, "Travel", "2024-01-01T20:00:00"),
		tx("c", core.Expense, 6000, "Food", "2024-01-03"),
		tx("d", core.Income, 99999, "Salary", "2024-01-04"),
	}

	stats := ComputeStats(txs)
	assert.Equal(t, int64(36000), stats.TotalExpense.Cents)
	assert.Equal(t, 2, stats.DistinctDays, "same calendar day counts once")
	assert.Equal(t, int64(18000), stats.AverageDailyExpense.Cents)
	assert.Equal(t, "Travel", stats.TopCategory)
}

func TestMonthComparison(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx("prev", core.Expense, 10000, "Food", "2024-02-10"),
		tx("cur", core.Expense, 15000, "Food", "2024-03-05"),
	}

	cmp := MonthComparison(txs, now)
	assert.Equal(t, int64(15000), cmp.CurrentTotal.Cents)
	assert.Equal(t, int64(10000), cmp.PreviousTotal.Cents)
	assert.Equal(t, core.SeverityWarning, cmp.Severity)
	assert.Contains(t, cmp.Message, "increased by 50.0%")

	// No previous-month data.
	cmp = MonthComparison(txs[1:], now)
	assert.Equal(t, core.SeverityInfo, cmp.Severity)
	assert.Contains(t, cmp.Message, "Start recording your expenses")

	// Reduction.
	reduced := []core.Transaction{
		tx("prev", core.Expense, 20000, "Food", "2024-02-10"),
		tx("cur", core.Expense, 10000, "Food", "2024-03-05"),
	}
	cmp = MonthComparison(reduced, now)
	assert.Equal(t, core.SeveritySuccess, cmp.Severity)
	assert.Contains(t, cmp.Message, "reduced your expenses by 50.0%")
}
