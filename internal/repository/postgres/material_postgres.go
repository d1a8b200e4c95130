package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"questshare/internal/model"
	"questshare/internal/repository"
)

const materialColumns = `id, title, description, type, department, semester, subject,
		file_url, file_name, file_size, file_type, uploader_id, uploader_name, created_at, status`

// MaterialPostgres is a PostgreSQL implementation of repository.MaterialRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type MaterialPostgres struct {
	db *sql.DB
}

// NewMaterialPostgres creates a new MaterialPostgres repository.
func NewMaterialPostgres(db *sql.DB) *MaterialPostgres {
	return &MaterialPostgres{db: db}
}

var _ repository.MaterialRepository = (*MaterialPostgres)(nil)

// Create inserts a new material row and returns the stored record.
func (r *MaterialPostgres) Create(ctx context.Context, m *model.Material) (*model.Material, error) {
	q := `
		INSERT INTO materials (id, title, description, type, department, semester, subject,
			file_url, file_name, file_size, file_type, uploader_id, uploader_name, created_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + materialColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.Title,
		m.Description,
		m.Type,
		m.Department,
		m.Semester,
		m.Subject,
		m.FileURL,
		m.FileName,
		m.FileSize,
		m.FileType,
		m.UploaderID,
		m.UploaderName,
		m.CreatedAt,
		m.Status,
	)
	return scanMaterial(row)
}

// FindByID fetches a single material by its ID.
func (r *MaterialPostgres) FindByID(ctx context.Context, id string) (*model.Material, error) {
	q := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	return scanMaterial(r.db.QueryRowContext(ctx, q, id))
}

// List returns materials matching the query, newest first.
// The WHERE clause is assembled from the non-zero query fields.
func (r *MaterialPostgres) List(ctx context.Context, lq repository.ListQuery) ([]model.Material, error) {
	var (
		conds []string
		args  []any
	)
	if lq.Type != "" {
		args = append(args, lq.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if lq.Status != "" {
		args = append(args, lq.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if lq.UploaderID != "" {
		args = append(args, lq.UploaderID)
		conds = append(conds, fmt.Sprintf("uploader_id = $%d", len(args)))
	}

	q := `SELECT ` + materialColumns + ` FROM materials`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"
	if lq.Limit > 0 {
		args = append(args, lq.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Material, 0)
	for rows.Next() {
		var m model.Material
		if err := rows.Scan(
			&m.ID,
			&m.Title,
			&m.Description,
			&m.Type,
			&m.Department,
			&m.Semester,
			&m.Subject,
			&m.FileURL,
			&m.FileName,
			&m.FileSize,
			&m.FileType,
			&m.UploaderID,
			&m.UploaderName,
			&m.CreatedAt,
			&m.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateStatus performs the one-way pending transition. The status guard in
// the WHERE clause makes concurrent admin decisions race-safe: the second
// writer matches zero rows and gets ErrStatusConflict instead of silently
// overwriting the first decision.
func (r *MaterialPostgres) UpdateStatus(ctx context.Context, id string, status model.MaterialStatus) error {
	const q = `UPDATE materials SET status = $2 WHERE id = $1 AND status = 'pending'`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Disambiguate unknown id from already-terminal status.
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM materials WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return sql.ErrNoRows
		}
		return repository.ErrStatusConflict
	}
	return nil
}

// CountByStatus tallies materials per moderation status.
func (r *MaterialPostgres) CountByStatus(ctx context.Context) (*repository.CountsByStatus, error) {
	const q = `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected')
		FROM materials
	`
	var c repository.CountsByStatus
	if err := r.db.QueryRowContext(ctx, q).Scan(&c.Pending, &c.Approved, &c.Rejected); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanMaterial(row *sql.Row) (*model.Material, error) {
	var m model.Material
	if err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Description,
		&m.Type,
		&m.Department,
		&m.Semester,
		&m.Subject,
		&m.FileURL,
		&m.FileName,
		&m.FileSize,
		&m.FileType,
		&m.UploaderID,
		&m.UploaderName,
		&m.CreatedAt,
		&m.Status,
	); err != nil {
		return nil, err
	}
	return &m, nil
}
