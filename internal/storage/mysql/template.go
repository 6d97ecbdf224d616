package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"drapery-golang/internal/storage"
)

func (s *Storage) GetTemplateByCode(ctx context.Context, code string) (*storage.TemplateConfig, error) {
	const op = "storage.mysql.GetTemplateByCode"

	query := `
		SELECT id, code, name, category, config
		FROM treatment_templates
		WHERE code = ? AND is_active = TRUE
	`

	tmpl := &storage.TemplateConfig{}

	// the geometry and method parameters live in one JSON column
	var configJSON string
	err := s.db.QueryRowContext(ctx, query, code).Scan(
		&tmpl.ID,
		&tmpl.Code,
		&tmpl.Name,
		&tmpl.Category,
		&configJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: template code=%q not found: %w", op, code, err)
		}
		return nil, fmt.Errorf("%s: query failed: %w", op, err)
	}

	if err := json.Unmarshal([]byte(configJSON), tmpl); err != nil {
		return nil, fmt.Errorf("%s: parsing template config JSON: %w", op, err)
	}
	tmpl.Code = code
	tmpl.IsActive = true

	return tmpl, nil
}

func (s *Storage) GetAllTemplates(ctx context.Context) ([]*storage.TemplateConfig, error) {
	const op = "storage.mysql.GetAllTemplates"

	stmt := "SELECT id, code, name, category FROM treatment_templates WHERE is_active = TRUE"

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var templates []*storage.TemplateConfig

	for rows.Next() {
		tmpl := &storage.TemplateConfig{}

		err := rows.Scan(&tmpl.ID, &tmpl.Code, &tmpl.Name, &tmpl.Category)
		if err != nil {
			return nil, fmt.Errorf("%s: scanning row: %w", op, err)
		}

		templates = append(templates, tmpl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterating rows: %w", op, err)
	}

	return templates, nil
}

func (s *Storage) GetAllTemplatesAdmin(ctx context.Context) ([]*storage.TemplateConfig, error) {
	const op = "storage.mysql.GetAllTemplatesAdmin"

	stmt := "SELECT id, code, name, category, is_active FROM treatment_templates"

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var templates []*storage.TemplateConfig

	for rows.Next() {
		tmpl := &storage.TemplateConfig{}

		err := rows.Scan(&tmpl.ID, &tmpl.Code, &tmpl.Name, &tmpl.Category, &tmpl.IsActive)
		if err != nil {
			return nil, fmt.Errorf("%s: scanning row: %w", op, err)
		}

		templates = append(templates, tmpl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterating rows: %w", op, err)
	}

	return templates, nil
}

func (s *Storage) UpdateTemplateAdmin(ctx context.Context, code string, update storage.TemplateAdmin) error {
	const op = "storage.mysql.UpdateTemplateAdmin"

	stmt := `UPDATE treatment_templates SET name=?, category=?, is_active=?, config=? WHERE code=?`

	_, err := s.db.ExecContext(ctx, stmt, update.Name, update.Category, update.IsActive, update.Config, code)
	if err != nil {
		return fmt.Errorf("%s: updating template: %w", op, err)
	}

	return nil
}

func (s *Storage) CreateTemplateAdmin(ctx context.Context, res storage.TemplateAdmin) error {
	const op = "storage.mysql.CreateTemplateAdmin"

	stmt := `INSERT INTO treatment_templates (code, name, category, is_active, config) VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, stmt, res.Code, res.Name, res.Category, res.IsActive, res.Config)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return fmt.Errorf("%s: template code=%q already exists: %w", op, res.Code, err)
		}
		return fmt.Errorf("%s: saving template: %w", op, err)
	}

	return nil
}
