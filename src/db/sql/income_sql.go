package db

import (
	"context"
	"fmt"

	"cashflow-server/src/models"
)

func (s *PostgresStore) CreateIncome(ctx context.Context, income *models.Income) (*models.Income, error) {
	query := `
		INSERT INTO incomes (user_id, amount, date, description, is_recurring)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, amount, date, description, is_recurring, created_at
	`
	var i models.Income
	err := s.pool.QueryRow(ctx, query, income.UserID, income.Amount, income.Date, income.Description, income.IsRecurring).
		Scan(&i.ID, &i.UserID, &i.Amount, &i.Date, &i.Description, &i.IsRecurring, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *PostgresStore) GetIncomeByID(ctx context.Context, userID, incomeID int) (*models.Income, error) {
	query := `
		SELECT id, user_id, amount, date, description, is_recurring, created_at
		FROM incomes WHERE id = $1 AND user_id = $2
	`
	var i models.Income
	err := s.pool.QueryRow(ctx, query, incomeID, userID).
		Scan(&i.ID, &i.UserID, &i.Amount, &i.Date, &i.Description, &i.IsRecurring, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *PostgresStore) GetAllIncomesForUser(ctx context.Context, userID int) ([]models.Income, error) {
	query := `
		SELECT id, user_id, amount, date, description, is_recurring, created_at
		FROM incomes WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var i models.Income
		err := rows.Scan(&i.ID, &i.UserID, &i.Amount, &i.Date, &i.Description, &i.IsRecurring, &i.CreatedAt)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, i)
	}
	return incomes, rows.Err()
}

func (s *PostgresStore) UpdateIncome(ctx context.Context, income *models.Income) (*models.Income, error) {
	query := `
		UPDATE incomes
		SET amount = $1, date = $2, description = $3, is_recurring = $4
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, amount, date, description, is_recurring, created_at
	`
	var i models.Income
	err := s.pool.QueryRow(ctx, query, income.Amount, income.Date, income.Description, income.IsRecurring, income.ID, income.UserID).
		Scan(&i.ID, &i.UserID, &i.Amount, &i.Date, &i.Description, &i.IsRecurring, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *PostgresStore) DeleteIncome(ctx context.Context, userID, incomeID int) error {
	query := `DELETE FROM incomes WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, incomeID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("income not found")
	}
	return nil
}
