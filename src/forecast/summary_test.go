package forecast

import (
	"testing"

	"cashflow-server/src/models"
)

func TestSummarizeGroupsByMonth(t *testing.T) {
	incomes := []models.Income{
		income(t, "100.00", date(2024, 5, 1), false),
		income(t, "50.00", date(2024, 5, 20), false),
	}
	expenses := []models.Expense{
		expense(t, "30.00", date(2024, 5, 10), false),
	}

	summary := Summarize(incomes, expenses, nil)
	if len(summary) != 1 {
		t.Fatalf("expected 1 month, got %d", len(summary))
	}
	got := summary[0]
	if got.Month != "2024-05" {
		t.Fatalf("expected month 2024-05, got %s", got.Month)
	}
	if got.TotalIncome != 150 || got.TotalExpense != 30 || got.NetBalance != 120 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestSummarizeYearFilter(t *testing.T) {
	incomes := []models.Income{
		income(t, "100.00", date(2023, 5, 1), false),
		income(t, "50.00", date(2024, 5, 1), false),
	}

	year := 2024
	summary := Summarize(incomes, nil, &year)
	if len(summary) != 1 {
		t.Fatalf("expected 1 month, got %d", len(summary))
	}
	got := summary[0]
	if got.Month != "2024-05" || got.TotalIncome != 50 || got.TotalExpense != 0 || got.NetBalance != 50 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestSummarizeDescendingMonthOrder(t *testing.T) {
	incomes := []models.Income{
		income(t, "10.00", date(2023, 12, 5), false),
		income(t, "10.00", date(2024, 6, 5), false),
	}
	expenses := []models.Expense{
		expense(t, "5.00", date(2024, 1, 5), false),
	}

	summary := Summarize(incomes, expenses, nil)
	want := []string{"2024-06", "2024-01", "2023-12"}
	if len(summary) != len(want) {
		t.Fatalf("expected %d months, got %d", len(want), len(summary))
	}
	for i, month := range want {
		if summary[i].Month != month {
			t.Fatalf("position %d: expected %s, got %s", i, month, summary[i].Month)
		}
	}
}

func TestSummarizeExpenseOnlyMonth(t *testing.T) {
	expenses := []models.Expense{
		expense(t, "42.50", date(2024, 3, 3), false),
	}

	summary := Summarize(nil, expenses, nil)
	if len(summary) != 1 {
		t.Fatalf("expected 1 month, got %d", len(summary))
	}
	got := summary[0]
	if got.TotalIncome != 0 || got.TotalExpense != 42.5 || got.NetBalance != -42.5 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestSummarizeEmptyInputs(t *testing.T) {
	summary := Summarize(nil, nil, nil)
	if summary == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(summary) != 0 {
		t.Fatalf("expected no entries, got %d", len(summary))
	}
}
