package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"drapery-golang/internal/service/calculate"
	"drapery-golang/internal/service/pricing"
	"drapery-golang/internal/storage"
)

type CalculationSaver interface {
	Save(ctx context.Context, req calculate.Request) (calculate.SaveOutcome, error)
}

type Response struct {
	Status     string                    `json:"status"`
	Error      string                    `json:"error,omitempty"`
	Errors     []string                  `json:"errors,omitempty"`
	Record     *storage.SavedCalculation `json:"record,omitempty"`
	Invalidate []string                  `json:"invalidate,omitempty"`
}

// SaveItemCalculation calculates and persists the snapshot for an item key,
// returning the record together with the cache keys the caller must
// invalidate. On a write failure the computed (unpersisted) record is still
// returned so nothing has to be recalculated for a retry.
func SaveItemCalculation(log *slog.Logger, saver CalculationSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.save.SaveItemCalculation"

		var req calculate.Request
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		outcome, err := saver.Save(ctx, req)
		if err != nil {
			var pErr *storage.PersistenceError
			if errors.As(err, &pErr) {
				log.Error("Failed to persist calculation", slog.String("op", op), slog.String("error", err.Error()))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, Response{
					Error:  "calculation succeeded but could not be saved",
					Record: &outcome.Record,
				})
				return
			}

			var vErr *pricing.ValidationError
			if errors.As(err, &vErr) {
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, Response{Errors: vErr.Problems})
				return
			}

			var cErr *pricing.ConfigError
			var lErr *pricing.LookupError
			if errors.As(err, &cErr) || errors.As(err, &lErr) {
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, Response{Error: err.Error()})
				return
			}

			log.Error("Failed to save calculation", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			Status:     strconv.Itoa(http.StatusOK),
			Record:     &outcome.Record,
			Invalidate: outcome.Invalidate,
		})
	}
}
