package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	cache "cashflow-server/src/db"
	db "cashflow-server/src/db/sql"
	"cashflow-server/src/models"
)

func CreateCategory(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create category request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" || len(req.Name) > 100 {
			log.Printf("ERROR: Invalid category name for user %d", userID)
			http.Error(w, "category name must be between 1 and 100 characters", http.StatusBadRequest)
			return
		}

		category := &models.Category{
			UserID: int(userID),
			Name:   req.Name,
		}
		created, err := store.CreateCategory(r.Context(), category)
		if err != nil {
			// (user_id, name) is unique per the schema
			if strings.Contains(err.Error(), "duplicate key") {
				log.Printf("ERROR: Duplicate category name %q for user %d", req.Name, userID)
				http.Error(w, "category name already exists", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to create category for user %d: %v", userID, err)
			http.Error(w, "failed to create category", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created category id %d for user %d", created.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAllCategories(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		categories, err := store.GetAllCategoriesForUser(r.Context(), int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get categories for user %d: %v", userID, err)
			http.Error(w, "failed to get categories", http.StatusInternalServerError)
			return
		}
		if categories == nil {
			categories = []models.Category{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}

func DeleteCategory(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		categoryIDStr := chi.URLParam(r, "category_id")
		categoryID, err := strconv.Atoi(categoryIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid category id param: %s", categoryIDStr)
			http.Error(w, "invalid category id", http.StatusBadRequest)
			return
		}
		err = store.DeleteCategory(r.Context(), int(userID), categoryID)
		if err != nil {
			log.Printf("ERROR: Failed to delete category id %d for user %d: %v", categoryID, userID, err)
			http.Error(w, "failed to delete category", http.StatusInternalServerError)
			return
		}

		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Deleted category id %d for user %d", categoryID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "category deleted"})
	}
}
