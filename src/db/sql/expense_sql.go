package db

import (
	"context"
	"fmt"

	"cashflow-server/src/models"
)

func scanExpenseCategory(e *models.Expense, categoryName *string) {
	if e.CategoryID != nil && categoryName != nil {
		e.Category = &models.Category{ID: *e.CategoryID, UserID: e.UserID, Name: *categoryName}
	}
}

func (s *PostgresStore) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, amount, date, description, category_id, is_recurring)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, amount, date, description, category_id, is_recurring, created_at
	`
	var e models.Expense
	err := s.pool.QueryRow(ctx, query, expense.UserID, expense.Amount, expense.Date, expense.Description, expense.CategoryID, expense.IsRecurring).
		Scan(&e.ID, &e.UserID, &e.Amount, &e.Date, &e.Description, &e.CategoryID, &e.IsRecurring, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *PostgresStore) GetExpenseByID(ctx context.Context, userID, expenseID int) (*models.Expense, error) {
	query := `
		SELECT e.id, e.user_id, e.amount, e.date, e.description, e.category_id, c.name, e.is_recurring, e.created_at
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		WHERE e.id = $1 AND e.user_id = $2
	`
	var e models.Expense
	var categoryName *string
	err := s.pool.QueryRow(ctx, query, expenseID, userID).
		Scan(&e.ID, &e.UserID, &e.Amount, &e.Date, &e.Description, &e.CategoryID, &categoryName, &e.IsRecurring, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	scanExpenseCategory(&e, categoryName)
	return &e, nil
}

func (s *PostgresStore) GetAllExpensesForUser(ctx context.Context, userID int) ([]models.Expense, error) {
	query := `
		SELECT e.id, e.user_id, e.amount, e.date, e.description, e.category_id, c.name, e.is_recurring, e.created_at
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		WHERE e.user_id = $1
		ORDER BY e.date DESC, e.id DESC
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var categoryName *string
		err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Date, &e.Description, &e.CategoryID, &categoryName, &e.IsRecurring, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		scanExpenseCategory(&e, categoryName)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *PostgresStore) UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	query := `
		UPDATE expenses
		SET amount = $1, date = $2, description = $3, category_id = $4, is_recurring = $5
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, amount, date, description, category_id, is_recurring, created_at
	`
	var e models.Expense
	err := s.pool.QueryRow(ctx, query, expense.Amount, expense.Date, expense.Description, expense.CategoryID, expense.IsRecurring, expense.ID, expense.UserID).
		Scan(&e.ID, &e.UserID, &e.Amount, &e.Date, &e.Description, &e.CategoryID, &e.IsRecurring, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *PostgresStore) DeleteExpense(ctx context.Context, userID, expenseID int) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, expenseID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("expense not found")
	}
	return nil
}
