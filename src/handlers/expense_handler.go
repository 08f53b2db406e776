package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	cache "cashflow-server/src/db"
	db "cashflow-server/src/db/sql"
	"cashflow-server/src/models"
	"cashflow-server/src/util"
)

type expenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description *string         `json:"description"`
	CategoryID  *int            `json:"category_id"`
	IsRecurring bool            `json:"is_recurring"`
}

// validateExpenseRequest checks amount, date, and that any referenced category
// belongs to the caller.
func validateExpenseRequest(r *http.Request, store db.Store, userID int64, req expenseRequest) (*models.Expense, string) {
	if err := util.ValidateAmount(req.Amount); err != nil {
		return nil, err.Error()
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		return nil, err.Error()
	}
	if req.CategoryID != nil {
		if _, err := store.GetCategoryByID(r.Context(), int(userID), *req.CategoryID); err != nil {
			return nil, "invalid category"
		}
	}
	return &models.Expense{
		UserID:      int(userID),
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		IsRecurring: req.IsRecurring,
	}, ""
}

func CreateExpense(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req expenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		expense, problem := validateExpenseRequest(r, store, userID, req)
		if problem != "" {
			log.Printf("ERROR: Invalid create expense request for user %d: %s", userID, problem)
			http.Error(w, problem, http.StatusBadRequest)
			return
		}

		created, err := store.CreateExpense(r.Context(), expense)
		if err != nil {
			log.Printf("ERROR: Failed to create expense for user %d: %v", userID, err)
			http.Error(w, "failed to create expense", http.StatusInternalServerError)
			return
		}

		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Created expense id %d for user %d", created.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetExpenseByID(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.Atoi(expenseIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			http.Error(w, "invalid expense id", http.StatusBadRequest)
			return
		}
		expense, err := store.GetExpenseByID(r.Context(), int(userID), expenseID)
		if err != nil {
			log.Printf("ERROR: Expense id %d not found for user %d: %v", expenseID, userID, err)
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expense)
	}
}

func GetAllExpenses(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		expenses, err := store.GetAllExpensesForUser(r.Context(), int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for user %d: %v", userID, err)
			http.Error(w, "failed to get expenses", http.StatusInternalServerError)
			return
		}
		if expenses == nil {
			expenses = []models.Expense{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expenses)
	}
}

func UpdateExpense(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.Atoi(expenseIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			http.Error(w, "invalid expense id", http.StatusBadRequest)
			return
		}

		var req expenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update expense request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		expense, problem := validateExpenseRequest(r, store, userID, req)
		if problem != "" {
			log.Printf("ERROR: Invalid update expense request for user %d: %s", userID, problem)
			http.Error(w, problem, http.StatusBadRequest)
			return
		}
		expense.ID = expenseID

		updated, err := store.UpdateExpense(r.Context(), expense)
		if err != nil {
			log.Printf("ERROR: Failed to update expense id %d for user %d: %v", expenseID, userID, err)
			http.Error(w, "failed to update expense", http.StatusInternalServerError)
			return
		}

		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Updated expense id %d for user %d", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteExpense(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.Atoi(expenseIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			http.Error(w, "invalid expense id", http.StatusBadRequest)
			return
		}
		err = store.DeleteExpense(r.Context(), int(userID), expenseID)
		if err != nil {
			log.Printf("ERROR: Failed to delete expense id %d for user %d: %v", expenseID, userID, err)
			http.Error(w, "failed to delete expense", http.StatusInternalServerError)
			return
		}

		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Deleted expense id %d for user %d", expenseID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "expense deleted"})
	}
}
