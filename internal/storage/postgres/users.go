package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

func (s *Store) CreateUser(ctx context.Context, user models.User) (int64, error) {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password, email, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING
		RETURNING user_id`,
		user.Username, user.PasswordHash, nullString(user.Email), createdAt.UTC(),
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) || pqCode(err) == codeUniqueViolation {
		return 0, storage.ErrDuplicate
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, username, password, email, created_at
		FROM users WHERE user_id = $1`, userID)
	return scanUser(row)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, username, password, email, created_at
		FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	var email sql.NullString

	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, storage.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	u.Email = email.String
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

func (s *Store) DeleteUser(ctx context.Context, userID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM users WHERE user_id = $1 FOR UPDATE", userID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return err
	}

	for _, stmt := range []string{
		"DELETE FROM completion_events WHERE user_id = $1",
		"DELETE FROM completions WHERE user_id = $1",
		"DELETE FROM habits WHERE user_id = $1",
		"DELETE FROM users WHERE user_id = $1",
	} {
		if _, err := tx.ExecContext(ctx, stmt, userID); err != nil {
			return fmt.Errorf("failed to delete user %d: %w", userID, err)
		}
	}

	return tx.Commit()
}
