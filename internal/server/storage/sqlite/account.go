package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/globalstreet/postrack/internal/models"
	"github.com/globalstreet/postrack/internal/server/storage"
)

// CreateAccount creates a new account in the storage
func (s *Storage) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, username, password_hash, role, created_at, last_login)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Username,
		account.PasswordHash,
		account.Role,
		account.CreatedAt,
		account.LastLogin,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: accounts.username") {
			return storage.ErrAccountAlreadyExists
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// GetAccountByUsername retrieves an account by username
func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `
		SELECT id, username, password_hash, role, created_at, last_login
		FROM accounts
		WHERE username = ?
	`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, username))
}

// GetAccountByID retrieves an account by ID
func (s *Storage) GetAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	query := `
		SELECT id, username, password_hash, role, created_at, last_login
		FROM accounts
		WHERE id = ?
	`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, accountID))
}

// UpdateLastLogin updates the last login timestamp
func (s *Storage) UpdateLastLogin(ctx context.Context, accountID string, lastLogin time.Time) error {
	query := `UPDATE accounts SET last_login = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, lastLogin, accountID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrAccountNotFound
	}

	return nil
}

func (s *Storage) scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	var lastLogin sql.NullTime

	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&lastLogin,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if lastLogin.Valid {
		account.LastLogin = &lastLogin.Time
	}

	return account, nil
}
