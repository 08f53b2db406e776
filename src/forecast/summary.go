package forecast

import (
	"sort"

	"cashflow-server/src/models"
)

// MonthSummary aggregates one calendar month of activity. Totals are float64
// on purpose: the reporting contract has always emitted plain JSON numbers
// here, unlike the projection which keeps exact decimals end to end.
type MonthSummary struct {
	Month        string  `json:"month"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetBalance   float64 `json:"net_balance"`
}

// Summarize groups incomes and expenses by "YYYY-MM" month key and returns
// per-month totals, most recent month first. If year is non-nil, records from
// other years are ignored. Months with no activity are omitted entirely.
func Summarize(incomes []models.Income, expenses []models.Expense, year *int) []MonthSummary {
	type monthTotals struct {
		income  float64
		expense float64
	}

	totals := make(map[string]*monthTotals)
	bucket := func(key string) *monthTotals {
		if t, ok := totals[key]; ok {
			return t
		}
		t := &monthTotals{}
		totals[key] = t
		return t
	}

	for _, inc := range incomes {
		if year != nil && inc.Date.Year() != *year {
			continue
		}
		bucket(inc.Date.Format("2006-01")).income += inc.Amount.InexactFloat64()
	}
	for _, exp := range expenses {
		if year != nil && exp.Date.Year() != *year {
			continue
		}
		bucket(exp.Date.Format("2006-01")).expense += exp.Amount.InexactFloat64()
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	summary := make([]MonthSummary, 0, len(keys))
	for _, key := range keys {
		t := totals[key]
		summary = append(summary, MonthSummary{
			Month:        key,
			TotalIncome:  t.income,
			TotalExpense: t.expense,
			NetBalance:   t.income - t.expense,
		})
	}
	return summary
}
