package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"drapery-golang/internal/storage"
)

func (s *Storage) GetPriceGrid(ctx context.Context, ref string) (storage.RawPriceGrid, error) {
	const op = "storage.mysql.GetPriceGrid"

	query := `SELECT grid FROM price_grids WHERE ref = ?`

	// the grid is stored as-is in whichever of the three shapes the supplier
	// import produced; the shape is discriminated after unmarshalling
	var gridJSON string
	err := s.db.QueryRowContext(ctx, query, ref).Scan(&gridJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.RawPriceGrid{}, fmt.Errorf("%s: price grid ref=%q not found: %w", op, ref, err)
		}
		return storage.RawPriceGrid{}, fmt.Errorf("%s: query failed: %w", op, err)
	}

	var raw storage.RawPriceGrid
	if err := json.Unmarshal([]byte(gridJSON), &raw); err != nil {
		return storage.RawPriceGrid{}, fmt.Errorf("%s: parsing grid JSON: %w", op, err)
	}
	raw.Ref = ref

	return raw, nil
}
