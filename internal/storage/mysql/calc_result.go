package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"drapery-golang/internal/storage"
)

// SaveCalculationResult upserts the snapshot for one item key. Cost and sell
// always land in the same statement; a later save for the same key replaces
// the whole row, never single fields.
func (s *Storage) SaveCalculationResult(ctx context.Context, rec storage.SavedCalculation) (int64, error) {
	const op = "storage.mysql.SaveCalculationResult"

	stmt := `
		INSERT INTO item_calculations
			(item_key, order_num, template_code, linear_meters, widths_required,
			 fabric_cost, manufacturing_cost, options_cost, total_cost, total_selling,
			 markup_percent, markup_source, margin_band, labor_hours, algorithm_version, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			order_num = VALUES(order_num),
			template_code = VALUES(template_code),
			linear_meters = VALUES(linear_meters),
			widths_required = VALUES(widths_required),
			fabric_cost = VALUES(fabric_cost),
			manufacturing_cost = VALUES(manufacturing_cost),
			options_cost = VALUES(options_cost),
			total_cost = VALUES(total_cost),
			total_selling = VALUES(total_selling),
			markup_percent = VALUES(markup_percent),
			markup_source = VALUES(markup_source),
			margin_band = VALUES(margin_band),
			labor_hours = VALUES(labor_hours),
			algorithm_version = VALUES(algorithm_version),
			updated_at = VALUES(updated_at)
	`

	exec, err := s.db.ExecContext(ctx, stmt,
		rec.ItemKey, rec.OrderNum, rec.Template, rec.LinearMeters, rec.WidthsRequired,
		rec.FabricCost, rec.ManufacturingCost, rec.OptionsCost, rec.TotalCost, rec.TotalSelling,
		rec.MarkupPercent, rec.MarkupSource, rec.MarginBand, rec.LaborHours, rec.AlgorithmVersion, rec.UpdatedAT,
	)
	if err != nil {
		return 0, &storage.PersistenceError{Op: op, Err: err}
	}

	id, err := exec.LastInsertId()
	if err != nil {
		return 0, &storage.PersistenceError{Op: op, Err: err}
	}

	return id, nil
}

func (s *Storage) GetCalculationResult(ctx context.Context, itemKey string) (*storage.SavedCalculation, error) {
	const op = "storage.mysql.GetCalculationResult"

	query := `
		SELECT id, item_key, order_num, template_code, linear_meters, widths_required,
		       fabric_cost, manufacturing_cost, options_cost, total_cost, total_selling,
		       markup_percent, markup_source, margin_band, labor_hours, algorithm_version, updated_at
		FROM item_calculations
		WHERE item_key = ?
	`

	rec := &storage.SavedCalculation{}

	err := s.db.QueryRowContext(ctx, query, itemKey).Scan(
		&rec.ID, &rec.ItemKey, &rec.OrderNum, &rec.Template, &rec.LinearMeters, &rec.WidthsRequired,
		&rec.FabricCost, &rec.ManufacturingCost, &rec.OptionsCost, &rec.TotalCost, &rec.TotalSelling,
		&rec.MarkupPercent, &rec.MarkupSource, &rec.MarginBand, &rec.LaborHours, &rec.AlgorithmVersion, &rec.UpdatedAT,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: no calculation for item_key=%q: %w", op, itemKey, err)
		}
		return nil, fmt.Errorf("%s: query failed: %w", op, err)
	}

	return rec, nil
}

func (s *Storage) GetCalculationsByOrder(ctx context.Context, orderNum string) ([]*storage.SavedCalculation, error) {
	const op = "storage.mysql.GetCalculationsByOrder"

	query := `
		SELECT id, item_key, order_num, template_code, linear_meters, widths_required,
		       fabric_cost, manufacturing_cost, options_cost, total_cost, total_selling,
		       markup_percent, markup_source, margin_band, labor_hours, algorithm_version, updated_at
		FROM item_calculations
		WHERE order_num = ?
		ORDER BY item_key
	`

	rows, err := s.db.QueryContext(ctx, query, orderNum)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var recs []*storage.SavedCalculation

	for rows.Next() {
		rec := &storage.SavedCalculation{}

		err := rows.Scan(
			&rec.ID, &rec.ItemKey, &rec.OrderNum, &rec.Template, &rec.LinearMeters, &rec.WidthsRequired,
			&rec.FabricCost, &rec.ManufacturingCost, &rec.OptionsCost, &rec.TotalCost, &rec.TotalSelling,
			&rec.MarkupPercent, &rec.MarkupSource, &rec.MarginBand, &rec.LaborHours, &rec.AlgorithmVersion, &rec.UpdatedAT,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scanning row: %w", op, err)
		}

		recs = append(recs, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterating rows: %w", op, err)
	}

	return recs, nil
}
