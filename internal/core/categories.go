package core

import "strings"

// Fixed category lists, one per transaction type. Budget limits match
// expense categories by name.
var (
	IncomeCategories = []string{
		"Salary",
		"Freelance",
		"Interest and Dividends",
		"Gifts",
		"Sales",
		"Other Income",
	}

	ExpenseCategories = []string{
		"Food",
		"Transportation",
		"Housing",
		"Entertainment",
		"Health",
		"Education",
		"Clothing",
		"Gifts and Donations",
		"Travel",
		"Other Expenses",
	}
)

// DefaultExpenseCategory is the classification fallback for
// descriptions that match no keyword.
const DefaultExpenseCategory = "Other Expenses"

// CategoriesFor returns the category list for a transaction type.
func CategoriesFor(t TxType) []string {
	if t == Income {
		return append([]string(nil), IncomeCategories...)
	}
	return append([]string(nil), ExpenseCategories...)
}

// KnownCategory reports whether name belongs to the list for the type.
func KnownCategory(t TxType, name string) bool {
	for _, c := range CategoriesFor(t) {
		if c == name {
			return true
		}
	}
	return false
}

// categoryKeywords is the static keyword table behind Classify. The
// table is ordered so that classification is deterministic.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Food", []string{"grocery", "groceries", "supermarket", "restaurant", "coffee", "dinner", "lunch", "food", "pizza"}},
	{"Transportation", []string{"gas", "fuel", "bus", "train", "taxi", "uber", "parking", "car maintenance", "ticket"}},
	{"Housing", []string{"rent", "mortgage", "electricity", "water bill", "internet", "repair", "furniture"}},
	{"Entertainment", []string{"movie", "cinema", "netflix", "concert", "gaming", "game", "spotify", "subscription"}},
	{"Health", []string{"doctor", "pharmacy", "medication", "gym", "dentist", "hospital", "insurance"}},
	{"Education", []string{"course", "book", "tuition", "school", "training", "workshop"}},
	{"Clothing", []string{"clothes", "shoes", "jacket", "shirt", "coat", "accessories"}},
	{"Gifts and Donations", []string{"gift", "donation", "charity", "present"}},
	{"Travel", []string{"hotel", "flight", "vacation", "trip", "airbnb", "luggage"}},
}

// Classify suggests an expense category from a free-text description
// using keyword containment, falling back to DefaultExpenseCategory.
func Classify(description string) string {
	lower := strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return DefaultExpenseCategory
}
