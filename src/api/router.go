package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"cashflow-server/src/config"
	db "cashflow-server/src/db/sql"
	"cashflow-server/src/handlers"
	"cashflow-server/src/middleware"
)

func NewRouter(store db.Store, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	}))
	r.Use(middleware.DemoModeMiddleware(cfg.DemoMode))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	resetTokenTTL := time.Duration(cfg.ResetTokenTTLHours) * time.Hour

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(store))
		r.Post("/register", handlers.Register(store))
		r.Post("/password-reset", handlers.RequestPasswordReset(store, resetTokenTTL))
		r.Post("/password-update", handlers.UpdatePassword(store))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// User
			r.Get("/user", handlers.GetUser(store))
			r.Post("/user/change-password", handlers.ChangePassword(store))
			r.Delete("/user", handlers.DeleteUser(store))

			// Incomes
			r.Post("/incomes", handlers.CreateIncome(store))
			r.Get("/incomes", handlers.GetAllIncomes(store))
			r.Get("/incomes/{income_id}", handlers.GetIncomeByID(store))
			r.Put("/incomes/{income_id}", handlers.UpdateIncome(store))
			r.Delete("/incomes/{income_id}", handlers.DeleteIncome(store))

			// Expenses
			r.Post("/expenses", handlers.CreateExpense(store))
			r.Get("/expenses", handlers.GetAllExpenses(store))
			r.Get("/expenses/{expense_id}", handlers.GetExpenseByID(store))
			r.Put("/expenses/{expense_id}", handlers.UpdateExpense(store))
			r.Delete("/expenses/{expense_id}", handlers.DeleteExpense(store))

			// Categories
			r.Post("/categories", handlers.CreateCategory(store))
			r.Get("/categories", handlers.GetAllCategories(store))
			r.Delete("/categories/{category_id}", handlers.DeleteCategory(store))

			// Reports
			r.Get("/predict-cashflow", handlers.PredictCashflow(store))
			r.Get("/summary", handlers.MonthlySummary(store))
		})
	})

	return r
}
