package forecast

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"cashflow-server/src/models"
)

// DefaultHorizonDays is the projection window used when the caller does not
// ask for a specific one.
const DefaultHorizonDays = 30

var ErrInvalidHorizon = errors.New("horizon days must be non-negative")

// DayBalance is the projected balance at the end of a single calendar day.
type DayBalance struct {
	Date             time.Time
	ProjectedBalance decimal.Decimal
}

// Project computes a day-by-day balance projection for the horizonDays days
// following referenceDate. Both record slices must already be filtered to a
// single user; Project does not look at ownership.
//
// The baseline is the sum of every income minus every expense dated on or
// before referenceDate, recurring or not. Walking forward one day at a time,
// non-recurring records apply on their exact date, and recurring records apply
// on every later day whose day-of-month matches the record's original date.
// A recurring record dated the 31st simply never fires in shorter months; the
// charge is not moved to the last day of the month.
func Project(incomes []models.Income, expenses []models.Expense, referenceDate time.Time, horizonDays int) ([]DayBalance, error) {
	if horizonDays < 0 {
		return nil, ErrInvalidHorizon
	}

	ref := dateOnly(referenceDate)

	balance := decimal.Zero
	for _, inc := range incomes {
		if !dateOnly(inc.Date).After(ref) {
			balance = balance.Add(inc.Amount)
		}
	}
	for _, exp := range expenses {
		if !dateOnly(exp.Date).After(ref) {
			balance = balance.Sub(exp.Amount)
		}
	}

	var recurringIncomes []models.Income
	for _, inc := range incomes {
		if inc.IsRecurring {
			recurringIncomes = append(recurringIncomes, inc)
		}
	}
	var recurringExpenses []models.Expense
	for _, exp := range expenses {
		if exp.IsRecurring {
			recurringExpenses = append(recurringExpenses, exp)
		}
	}

	projection := make([]DayBalance, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		day := ref.AddDate(0, 0, i)

		for _, inc := range incomes {
			if !inc.IsRecurring && sameDate(inc.Date, day) {
				balance = balance.Add(inc.Amount)
			}
		}
		for _, exp := range expenses {
			if !exp.IsRecurring && sameDate(exp.Date, day) {
				balance = balance.Sub(exp.Amount)
			}
		}
		for _, inc := range recurringIncomes {
			if inc.Date.Day() == day.Day() && day.After(dateOnly(inc.Date)) {
				balance = balance.Add(inc.Amount)
			}
		}
		for _, exp := range recurringExpenses {
			if exp.Date.Day() == day.Day() && day.After(dateOnly(exp.Date)) {
				balance = balance.Sub(exp.Amount)
			}
		}

		projection = append(projection, DayBalance{Date: day, ProjectedBalance: balance})
	}

	return projection, nil
}

// dateOnly strips any time-of-day component; records carry calendar dates.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
