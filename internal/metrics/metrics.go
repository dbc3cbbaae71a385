// Package metrics contains the pure derived-data functions the
// dashboard views consume. Every function takes a transaction snapshot
// (and, where relevant, a settings snapshot) and computes its result
// without touching any store.
package metrics

import (
	"sort"
	"time"

	"finboard/internal/core"
)

// Totals holds the income and expense sums for a transaction list.
type Totals struct {
	Income  core.Money `json:"income"`
	Expense core.Money `json:"expense"`
}

// Balance is income minus expense.
func (t Totals) Balance() core.Money {
	return core.Money{Cents: t.Income.Cents - t.Expense.Cents}
}

// ComputeTotals sums all income and expense amounts.
func ComputeTotals(txs []core.Transaction) Totals {
	var out Totals
	for _, tx := range txs {
		switch tx.Type {
		case core.Income:
			out.Income.Cents += tx.Amount.Cents
		case core.Expense:
			out.Expense.Cents += tx.Amount.Cents
		}
	}
	return out
}

// BalancePoint is one point of the running-balance series.
type BalancePoint struct {
	Date    core.Date  `json:"date"`
	Balance core.Money `json:"balance"`
}

// RunningBalance sorts transactions ascending by date and folds signed
// amounts into a cumulative balance. Transactions sharing the identical
// date value collapse into a single point holding the final balance for
// that date, so the series has one point per distinct date value, not
// one per transaction.
func RunningBalance(txs []core.Transaction) []BalancePoint {
	sorted := make([]core.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date.Time)
	})

	var (
		points  []BalancePoint
		byDate  = make(map[time.Time]int)
		balance int64
	)
	for _, tx := range sorted {
		if tx.Type == core.Income {
			balance += tx.Amount.Cents
		} else {
			balance -= tx.Amount.Cents
		}
		key := tx.Date.Time
		if idx, ok := byDate[key]; ok {
			points[idx].Balance = core.Money{Cents: balance}
			continue
		}
		byDate[key] = len(points)
		points = append(points, BalancePoint{Date: tx.Date, Balance: core.Money{Cents: balance}})
	}
	return points
}

// CategoryFlow is the per-category income/expense aggregation behind
// the analysis bar chart.
type CategoryFlow struct {
	Category string     `json:"category"`
	Income   core.Money `json:"income"`
	Expense  core.Money `json:"expense"`
}

// CategoryBreakdown aggregates amounts per category, sorted by category
// name. Categories with no money movement are dropped.
func CategoryBreakdown(txs []core.Transaction) []CategoryFlow {
	sums := make(map[string]*CategoryFlow)
	for _, tx := range txs {
		flow, ok := sums[tx.Category]
		if !ok {
			flow = &CategoryFlow{Category: tx.Category}
			sums[tx.Category] = flow
		}
		if tx.Type == core.Income {
			flow.Income.Cents += tx.Amount.Cents
		} else {
			flow.Expense.Cents += tx.Amount.Cents
		}
	}

	out := make([]CategoryFlow, 0, len(sums))
	for _, flow := range sums {
		if flow.Income.Cents == 0 && flow.Expense.Cents == 0 {
			continue
		}
		out = append(out, *flow)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Stats is the expense summary shown on the statistics widget.
type Stats struct {
	TotalExpense        core.Money `json:"totalExpense"`
	DistinctDays        int        `json:"distinctDays"`
	AverageDailyExpense core.Money `json:"averageDailyExpense"`
	TopCategory         string     `json:"topCategory"`
	TopCategoryExpense  core.Money `json:"topCategoryExpense"`
}

// ComputeStats derives expense statistics: total, average per distinct
// expense day, and the heaviest spending category.
func ComputeStats(txs []core.Transaction) Stats {
	var out Stats
	days := make(map[string]struct{})
	byCategory := make(map[string]int64)
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		out.TotalExpense.Cents += tx.Amount.Cents
		days[tx.Date.Key()] = struct{}{}
		byCategory[tx.Category] += tx.Amount.Cents
	}
	out.DistinctDays = len(days)
	if out.DistinctDays > 0 {
		n := int64(out.DistinctDays)
		out.AverageDailyExpense.Cents = (out.TotalExpense.Cents + n/2) / n
	}

	// Sorted scan keeps the result stable when two categories tie.
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		if byCategory[c] > out.TopCategoryExpense.Cents {
			out.TopCategory = c
			out.TopCategoryExpense.Cents = byCategory[c]
		}
	}
	return out
}
