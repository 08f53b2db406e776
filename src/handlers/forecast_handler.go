package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	cache "cashflow-server/src/db"
	db "cashflow-server/src/db/sql"
	"cashflow-server/src/forecast"
)

// ProjectedDay is the wire form of one projection row. The balance stays a
// decimal string; it is never converted through float.
type ProjectedDay struct {
	Date             string `json:"date"`
	ProjectedBalance string `json:"projected_balance"`
}

type SummaryResponse struct {
	Summary []forecast.MonthSummary `json:"summary"`
}

func PredictCashflow(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		days := forecast.DefaultHorizonDays
		if q := r.URL.Query().Get("days"); q != "" {
			parsed, err := strconv.Atoi(q)
			if err != nil || parsed < 0 {
				log.Printf("ERROR: Invalid days parameter for user %d: %s", userID, q)
				http.Error(w, "days must be a non-negative integer", http.StatusBadRequest)
				return
			}
			days = parsed
		}

		today := time.Now().UTC()
		cacheKey := cache.ForecastCacheKey(int(userID), today.Format("2006-01-02"), days)
		if cached, found := cache.Cache.Get(cacheKey); found {
			if resp, ok := cached.([]ProjectedDay); ok {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(resp)
				return
			}
		}

		incomes, err := store.GetAllIncomesForUser(r.Context(), int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get incomes for cashflow projection - user %d: %v", userID, err)
			http.Error(w, "failed to load records", http.StatusInternalServerError)
			return
		}
		expenses, err := store.GetAllExpensesForUser(r.Context(), int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for cashflow projection - user %d: %v", userID, err)
			http.Error(w, "failed to load records", http.StatusInternalServerError)
			return
		}

		projection, err := forecast.Project(incomes, expenses, today, days)
		if err != nil {
			log.Printf("ERROR: Cashflow projection failed for user %d: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := make([]ProjectedDay, 0, len(projection))
		for _, day := range projection {
			resp = append(resp, ProjectedDay{
				Date:             day.Date.Format("2006-01-02"),
				ProjectedBalance: day.ProjectedBalance.StringFixed(2),
			})
		}

		cache.SetForecastCache(cacheKey, resp)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func MonthlySummary(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var year *int
		yearStr := r.URL.Query().Get("year")
		if yearStr != "" {
			parsed, err := strconv.Atoi(yearStr)
			if err != nil {
				log.Printf("ERROR: Invalid year parameter for user %d: %s", userID, yearStr)
				http.Error(w, "year must be an integer", http.StatusBadRequest)
				return
			}
			year = &parsed
		}

		cacheKey := cache.SummaryCacheKey(int(userID), yearStr)
		if cached, found := cache.Cache.Get(cacheKey); found {
			if resp, ok := cached.(SummaryResponse); ok {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(resp)
				return
			}
		}

		incomes, err := store.GetAllIncomesForUser(r.Context(), int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get incomes for summary - user %d: %v", userID, err)
			http.Error(w, "failed to load records", http.StatusInternalServerError)
			return
		}
		expenses, err := store.GetAllExpensesForUser(r.Context(), int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for summary - user %d: %v", userID, err)
			http.Error(w, "failed to load records", http.StatusInternalServerError)
			return
		}

		resp := SummaryResponse{Summary: forecast.Summarize(incomes, expenses, year)}

		cache.SetSummaryCache(cacheKey, resp)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
