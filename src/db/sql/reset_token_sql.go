package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

func (s *PostgresStore) CreateResetToken(ctx context.Context, userID int, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO password_reset_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.pool.Exec(ctx, query, userID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken marks a live token as used and returns its user id.
// A token can be consumed exactly once.
func (s *PostgresStore) ConsumeResetToken(ctx context.Context, token string) (int, error) {
	query := `
		UPDATE password_reset_tokens
		SET used = TRUE
		WHERE token = $1 AND used = FALSE AND expires_at > NOW()
		RETURNING user_id
	`
	var userID int
	err := s.pool.QueryRow(ctx, query, token).Scan(&userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, errors.New("invalid or expired token")
		}
		return 0, fmt.Errorf("query error: %w", err)
	}
	return userID, nil
}
