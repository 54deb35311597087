package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sentimentservice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AdminRepository реализует domain.AdminRepository для PostgreSQL
type AdminRepository struct {
	db *sql.DB
}

// NewAdminRepository создаёт новый экземпляр AdminRepository
func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create создаёт учётную запись администратора.
// Проверка уникальности и вставка выполняются одним запросом:
// ON CONFLICT DO NOTHING без затронутых строк означает, что имя занято.
func (r *AdminRepository) Create(ctx context.Context, username string, passwordHash []byte) error {
	query := `
		INSERT INTO admin_accounts (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, username, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrUsernameTaken
	}

	return nil
}

// GetByUsername получает учётную запись по имени
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminAccount, error) {
	query := `
		SELECT username, password_hash, created_at
		FROM admin_accounts
		WHERE username = $1
	`

	var account domain.AdminAccount
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&account.Username,
		&account.PasswordHash,
		&account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get admin account: %w", err)
	}

	return &account, nil
}
