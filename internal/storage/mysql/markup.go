package mysql

import (
	"context"
	"fmt"

	"drapery-golang/internal/storage"
)

func (s *Storage) GetMarkupSettings(ctx context.Context) ([]storage.MarkupSetting, error) {
	const op = "storage.mysql.GetMarkupSettings"

	stmt := `SELECT id, category, percent, is_active FROM markup_settings`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: fetching markup settings: %w", op, err)
	}
	defer rows.Close()

	var settings []storage.MarkupSetting

	for rows.Next() {
		var m storage.MarkupSetting

		err := rows.Scan(&m.ID, &m.Category, &m.Percent, &m.IsActive)
		if err != nil {
			return nil, fmt.Errorf("%s: scanning row: %w", op, err)
		}

		settings = append(settings, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterating rows: %w", op, err)
	}

	return settings, nil
}

func (s *Storage) UpdateMarkupSettings(ctx context.Context, settings []storage.MarkupSetting) error {
	const op = "storage.mysql.UpdateMarkupSettings"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		UPDATE markup_settings
		SET percent = ?, is_active = ?
		WHERE id = ? AND category = ?
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare statement: %w", op, err)
	}

	for _, m := range settings {
		_, err := stmt.ExecContext(ctx, m.Percent, m.IsActive, m.ID, m.Category)
		if err != nil {
			return fmt.Errorf("%s: updating markup id=%d: %w", op, m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
