package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"cashflow-server/src/models"
)

// Store is the persistence boundary handlers are built against. Handlers never
// touch the pool directly; tests swap in an in-memory implementation.
type Store interface {
	// Users
	CreateUser(ctx context.Context, req models.RegisterRequest, passwordHash string) (*models.RegisterResponse, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID int, passwordHash string) error
	UpdateUserLastLogin(ctx context.Context, userID int) error
	DeleteUser(ctx context.Context, userID int) error

	// Incomes
	CreateIncome(ctx context.Context, income *models.Income) (*models.Income, error)
	GetIncomeByID(ctx context.Context, userID, incomeID int) (*models.Income, error)
	GetAllIncomesForUser(ctx context.Context, userID int) ([]models.Income, error)
	UpdateIncome(ctx context.Context, income *models.Income) (*models.Income, error)
	DeleteIncome(ctx context.Context, userID, incomeID int) error

	// Expenses
	CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	GetExpenseByID(ctx context.Context, userID, expenseID int) (*models.Expense, error)
	GetAllExpensesForUser(ctx context.Context, userID int) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID int) error

	// Categories
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID int) (*models.Category, error)
	GetAllCategoriesForUser(ctx context.Context, userID int) ([]models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID int) error

	// Password reset tokens
	CreateResetToken(ctx context.Context, userID int, token string, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, token string) (int, error)
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}
