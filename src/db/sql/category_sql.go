package db

import (
	"context"
	"fmt"

	"cashflow-server/src/models"
)

func (s *PostgresStore) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (user_id, name)
		VALUES ($1, $2)
		RETURNING id, user_id, name, created_at
	`
	var c models.Category
	err := s.pool.QueryRow(ctx, query, category.UserID, category.Name).
		Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) GetCategoryByID(ctx context.Context, userID, categoryID int) (*models.Category, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM categories WHERE id = $1 AND user_id = $2
	`
	var c models.Category
	err := s.pool.QueryRow(ctx, query, categoryID, userID).
		Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) GetAllCategoriesForUser(ctx context.Context, userID int) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM categories WHERE user_id = $1
		ORDER BY name
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DeleteCategory removes the category; referencing expenses keep their row and
// lose the link (ON DELETE SET NULL in the schema).
func (s *PostgresStore) DeleteCategory(ctx context.Context, userID, categoryID int) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, categoryID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("category not found")
	}
	return nil
}
