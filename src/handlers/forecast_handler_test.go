package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	cache "cashflow-server/src/db"
	"cashflow-server/src/models"
)

var errNotImplemented = errors.New("not implemented")

// fakeStore serves canned incomes and expenses; everything else is unused by
// the report handlers.
type fakeStore struct {
	incomes  []models.Income
	expenses []models.Expense
}

func (f *fakeStore) CreateUser(ctx context.Context, req models.RegisterRequest, passwordHash string) (*models.RegisterResponse, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) UpdateUserPassword(ctx context.Context, userID int, passwordHash string) error {
	return errNotImplemented
}
func (f *fakeStore) UpdateUserLastLogin(ctx context.Context, userID int) error {
	return errNotImplemented
}
func (f *fakeStore) DeleteUser(ctx context.Context, userID int) error { return errNotImplemented }

func (f *fakeStore) CreateIncome(ctx context.Context, income *models.Income) (*models.Income, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) GetIncomeByID(ctx context.Context, userID, incomeID int) (*models.Income, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) GetAllIncomesForUser(ctx context.Context, userID int) ([]models.Income, error) {
	return f.incomes, nil
}
func (f *fakeStore) UpdateIncome(ctx context.Context, income *models.Income) (*models.Income, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) DeleteIncome(ctx context.Context, userID, incomeID int) error {
	return errNotImplemented
}

func (f *fakeStore) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) GetExpenseByID(ctx context.Context, userID, expenseID int) (*models.Expense, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) GetAllExpensesForUser(ctx context.Context, userID int) ([]models.Expense, error) {
	return f.expenses, nil
}
func (f *fakeStore) UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) DeleteExpense(ctx context.Context, userID, expenseID int) error {
	return errNotImplemented
}

func (f *fakeStore) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) GetCategoryByID(ctx context.Context, userID, categoryID int) (*models.Category, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) GetAllCategoriesForUser(ctx context.Context, userID int) ([]models.Category, error) {
	return nil, errNotImplemented
}
func (f *fakeStore) DeleteCategory(ctx context.Context, userID, categoryID int) error {
	return errNotImplemented
}

func (f *fakeStore) CreateResetToken(ctx context.Context, userID int, token string, expiresAt time.Time) error {
	return errNotImplemented
}
func (f *fakeStore) ConsumeResetToken(ctx context.Context, token string) (int, error) {
	return 0, errNotImplemented
}

func TestMain(m *testing.M) {
	cache.InitCache()
	os.Exit(m.Run())
}

func authedRequest(method, target string, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), "user_id", userID)
	return req.WithContext(ctx)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad amount %q: %v", s, err)
	}
	return d
}

func TestPredictCashflowResponseShape(t *testing.T) {
	today := time.Now().UTC()
	store := &fakeStore{
		expenses: []models.Expense{
			{UserID: 1, Amount: mustDecimal(t, "50.00"), Date: today.AddDate(0, 0, 5)},
		},
	}

	rec := httptest.NewRecorder()
	PredictCashflow(store)(rec, authedRequest(http.MethodGet, "/api/predict-cashflow", 1))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var days []ProjectedDay
	if err := json.Unmarshal(rec.Body.Bytes(), &days); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(days))
	}
	for i, day := range days {
		wantDate := today.AddDate(0, 0, i+1).Format("2006-01-02")
		if day.Date != wantDate {
			t.Fatalf("day %d: expected date %s, got %s", i+1, wantDate, day.Date)
		}
		wantBalance := "-50.00"
		if i < 4 {
			wantBalance = "0.00"
		}
		if day.ProjectedBalance != wantBalance {
			t.Fatalf("day %d: expected balance %s, got %s", i+1, wantBalance, day.ProjectedBalance)
		}
	}
}

func TestPredictCashflowCustomHorizon(t *testing.T) {
	rec := httptest.NewRecorder()
	PredictCashflow(&fakeStore{})(rec, authedRequest(http.MethodGet, "/api/predict-cashflow?days=10", 2))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var days []ProjectedDay
	if err := json.Unmarshal(rec.Body.Bytes(), &days); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(days) != 10 {
		t.Fatalf("expected 10 days, got %d", len(days))
	}
}

func TestPredictCashflowRejectsBadHorizon(t *testing.T) {
	for _, q := range []string{"-1", "abc", "3.5"} {
		rec := httptest.NewRecorder()
		PredictCashflow(&fakeStore{})(rec, authedRequest(http.MethodGet, "/api/predict-cashflow?days="+q, 3))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("days=%s: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestMonthlySummaryGroupingAndOrder(t *testing.T) {
	store := &fakeStore{
		incomes: []models.Income{
			{UserID: 4, Amount: mustDecimal(t, "10.00"), Date: time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC)},
			{UserID: 4, Amount: mustDecimal(t, "20.00"), Date: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)},
		},
		expenses: []models.Expense{
			{UserID: 4, Amount: mustDecimal(t, "5.00"), Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		},
	}

	rec := httptest.NewRecorder()
	MonthlySummary(store)(rec, authedRequest(http.MethodGet, "/api/summary", 4))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	wantMonths := []string{"2024-06", "2024-01", "2023-12"}
	if len(resp.Summary) != len(wantMonths) {
		t.Fatalf("expected %d months, got %d", len(wantMonths), len(resp.Summary))
	}
	for i, month := range wantMonths {
		if resp.Summary[i].Month != month {
			t.Fatalf("position %d: expected %s, got %s", i, month, resp.Summary[i].Month)
		}
	}
	if resp.Summary[1].NetBalance != -5 {
		t.Fatalf("expected net -5 for 2024-01, got %v", resp.Summary[1].NetBalance)
	}
}

func TestMonthlySummaryYearFilter(t *testing.T) {
	store := &fakeStore{
		incomes: []models.Income{
			{UserID: 5, Amount: mustDecimal(t, "100.00"), Date: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
			{UserID: 5, Amount: mustDecimal(t, "50.00"), Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	rec := httptest.NewRecorder()
	MonthlySummary(store)(rec, authedRequest(http.MethodGet, "/api/summary?year=2024", 5))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Summary) != 1 {
		t.Fatalf("expected 1 month, got %d", len(resp.Summary))
	}
	got := resp.Summary[0]
	if got.Month != "2024-05" || got.TotalIncome != 50 || got.TotalExpense != 0 || got.NetBalance != 50 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestMonthlySummaryRejectsBadYear(t *testing.T) {
	rec := httptest.NewRecorder()
	MonthlySummary(&fakeStore{})(rec, authedRequest(http.MethodGet, "/api/summary?year=twenty24", 6))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
