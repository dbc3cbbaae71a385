// Package demo generates plausible sample data so an empty dashboard
// has something to show.
package demo

import (
	"math/rand"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"finboard/internal/core"
)

var incomeDescriptions = map[string][]string{
	"Salary":                 {"Monthly Salary", "Bonus Payment", "Overtime Payment"},
	"Freelance":              {"Web Development Project", "Design Work", "Consulting Hours", "Content Writing"},
	"Interest and Dividends": {"Stock Dividends", "Savings Interest", "Investment Returns"},
	"Gifts":                  {"Birthday Money", "Holiday Gift", "Family Gift"},
	"Sales":                  {"Online Sale", "Used Items Sale", "Product Sales"},
	"Other Income":           {"Refund", "Cashback", "Survey Reward", "Lottery Win"},
}

var expenseDescriptions = map[string][]string{
	"Food":                {"Grocery Shopping", "Restaurant Dinner", "Coffee Shop", "Food Delivery"},
	"Transportation":      {"Gas", "Train Pass", "Bus Ticket", "Taxi Ride", "Car Maintenance"},
	"Housing":             {"Rent", "Electricity Bill", "Water Bill", "Internet Bill", "Home Repairs"},
	"Entertainment":       {"Movie Tickets", "Netflix Subscription", "Concert Tickets", "Gaming"},
	"Health":              {"Doctor Visit", "Medication", "Gym Membership", "Health Insurance"},
	"Education":           {"Online Course", "Books", "School Supplies", "Training Program"},
	"Clothing":            {"New Clothes", "Shoes", "Accessories", "Winter Coat"},
	"Gifts and Donations": {"Birthday Gift", "Charity Donation", "Wedding Gift"},
	"Travel":              {"Hotel Booking", "Flight Tickets", "Travel Insurance", "Vacation Activities"},
	"Other Expenses":      {"Office Supplies", "Pet Supplies", "Miscellaneous", "Emergency Expense"},
}

// Transactions generates count random transactions dated within the
// current year, newest first. Roughly 70% are expenses; incomes run
// 100-3000, expenses 5-1000.
func Transactions(rng *rand.Rand, count int) []core.Transaction {
	now := time.Now()
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	span := now.Unix() - yearStart.Unix()
	if span <= 0 {
		span = 1
	}

	txs := make([]core.Transaction, count)
	for i := range txs {
		txType := core.Expense
		if rng.Float64() > 0.7 {
			txType = core.Income
		}

		categories := core.CategoriesFor(txType)
		category := categories[rng.Intn(len(categories))]

		var cents int64
		if txType == core.Income {
			cents = randomCents(rng, 10000, 300000)
		} else {
			cents = randomCents(rng, 500, 100000)
		}

		txs[i] = core.Transaction{
			ID:          uuid.Must(uuid.NewV4()).String(),
			Description: randomDescription(rng, txType, category),
			Amount:      core.Money{Cents: cents},
			Type:        txType,
			Category:    category,
			Date:        core.Date{Time: yearStart.Add(time.Duration(rng.Int63n(span)) * time.Second).Truncate(24 * time.Hour)},
		}
	}

	sort.Slice(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date.Time) })
	return txs
}

// BudgetSettings generates a random total limit between 2000 and 5000
// split across the expense categories so the parts never exceed the
// whole.
func BudgetSettings(rng *rand.Rand) core.UserSettings {
	totalCents := (rng.Int63n(3000) + 2000) * 100

	limits := make(map[string]core.Money, len(core.ExpenseCategories))
	remaining := totalCents
	for i, category := range core.ExpenseCategories {
		if i == len(core.ExpenseCategories)-1 {
			limits[category] = core.Money{Cents: remaining}
			break
		}
		share := remaining / int64(len(core.ExpenseCategories)-i)
		var cents int64
		if share > 0 {
			cents = rng.Int63n(share)
		}
		limits[category] = core.Money{Cents: cents}
		remaining -= cents
	}

	return core.UserSettings{
		TotalBudgetLimit: core.Money{Cents: totalCents},
		CategoryLimits:   limits,
		AlertsEnabled:    true,
	}
}

func randomCents(rng *rand.Rand, min, max int64) int64 {
	return min + rng.Int63n(max-min+1)
}

func randomDescription(rng *rand.Rand, txType core.TxType, category string) string {
	table := expenseDescriptions
	if txType == core.Income {
		table = incomeDescriptions
	}
	options := table[category]
	if len(options) == 0 {
		return "Payment"
	}
	return options[rng.Intn(len(options))]
}
