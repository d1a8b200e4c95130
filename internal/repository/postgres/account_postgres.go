package postgres

import (
	"context"
	"database/sql"

	"questshare/internal/model"
	"questshare/internal/repository"
)

const accountColumns = `id, full_name, email, contact_number, roll_no, department, semester, batch, role`

// AccountPostgres is a PostgreSQL implementation of repository.AccountRepository.
type AccountPostgres struct {
	db *sql.DB
}

// NewAccountPostgres creates a new AccountPostgres repository.
func NewAccountPostgres(db *sql.DB) *AccountPostgres {
	return &AccountPostgres{db: db}
}

var _ repository.AccountRepository = (*AccountPostgres)(nil)

// Create inserts a new account row.
func (r *AccountPostgres) Create(ctx context.Context, a *model.Account) error {
	const q = `
		INSERT INTO accounts (id, full_name, email, contact_number, roll_no, department, semester, batch, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, q,
		a.ID,
		a.FullName,
		a.Email,
		a.ContactNumber,
		a.RollNo,
		a.Department,
		a.Semester,
		a.Batch,
		a.Role,
	)
	return err
}

// FindByID fetches an account by its identity.
func (r *AccountPostgres) FindByID(ctx context.Context, id string) (*model.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches an account by its email.
func (r *AccountPostgres) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return scanAccount(r.db.QueryRowContext(ctx, q, email))
}

func scanAccount(row *sql.Row) (*model.Account, error) {
	var a model.Account
	if err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Email,
		&a.ContactNumber,
		&a.RollNo,
		&a.Department,
		&a.Semester,
		&a.Batch,
		&a.Role,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
