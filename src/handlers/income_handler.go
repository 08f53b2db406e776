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

type incomeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description *string         `json:"description"`
	IsRecurring bool            `json:"is_recurring"`
}

func CreateIncome(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req incomeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create income request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if err := util.ValidateAmount(req.Amount); err != nil {
			log.Printf("ERROR: Invalid income amount for user %d: %s", userID, req.Amount)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		date, err := util.ParseDate(req.Date)
		if err != nil {
			log.Printf("ERROR: Invalid income date for user %d: %s", userID, req.Date)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		income := &models.Income{
			UserID:      int(userID),
			Amount:      req.Amount,
			Date:        date,
			Description: req.Description,
			IsRecurring: req.IsRecurring,
		}
		created, err := store.CreateIncome(r.Context(), income)
		if err != nil {
			log.Printf("ERROR: Failed to create income for user %d: %v", userID, err)
			http.Error(w, "failed to create income", http.StatusInternalServerError)
			return
		}

		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Created income id %d for user %d", created.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetIncomeByID(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		incomeIDStr := chi.URLParam(r, "income_id")
		incomeID, err := strconv.Atoi(incomeIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid income id param: %s", incomeIDStr)
			http.Error(w, "invalid income id", http.StatusBadRequest)
			return
		}
		income, err := store.GetIncomeByID(r.Context(), int(userID), incomeID)
		if err != nil {
			log.Printf("ERROR: Income id %d not found for user %d: %v", incomeID, userID, err)
			http.Error(w, "income not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(income)
	}
}

func GetAllIncomes(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		incomes, err := store.GetAllIncomesForUser(r.Context(), int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get incomes for user %d: %v", userID, err)
			http.Error(w, "failed to get incomes", http.StatusInternalServerError)
			return
		}
		if incomes == nil {
			incomes = []models.Income{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(incomes)
	}
}

func UpdateIncome(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		incomeIDStr := chi.URLParam(r, "income_id")
		incomeID, err := strconv.Atoi(incomeIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid income id param: %s", incomeIDStr)
			http.Error(w, "invalid income id", http.StatusBadRequest)
			return
		}

		var req incomeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update income request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if err := util.ValidateAmount(req.Amount); err != nil {
			log.Printf("ERROR: Invalid income amount for user %d: %s", userID, req.Amount)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		date, err := util.ParseDate(req.Date)
		if err != nil {
			log.Printf("ERROR: Invalid income date for user %d: %s", userID, req.Date)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		income := &models.Income{
			ID:          incomeID,
			UserID:      int(userID),
			Amount:      req.Amount,
			Date:        date,
			Description: req.Description,
			IsRecurring: req.IsRecurring,
		}
		updated, err := store.UpdateIncome(r.Context(), income)
		if err != nil {
			log.Printf("ERROR: Failed to update income id %d for user %d: %v", incomeID, userID, err)
			http.Error(w, "failed to update income", http.StatusInternalServerError)
			return
		}

		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Updated income id %d for user %d", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteIncome(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		incomeIDStr := chi.URLParam(r, "income_id")
		incomeID, err := strconv.Atoi(incomeIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid income id param: %s", incomeIDStr)
			http.Error(w, "invalid income id", http.StatusBadRequest)
			return
		}
		err = store.DeleteIncome(r.Context(), int(userID), incomeID)
		if err != nil {
			log.Printf("ERROR: Failed to delete income id %d for user %d: %v", incomeID, userID, err)
			http.Error(w, "failed to delete income", http.StatusInternalServerError)
			return
		}

		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Deleted income id %d for user %d", incomeID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "income deleted"})
	}
}
