package calculate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"drapery-golang/internal/service/calculate"
	"drapery-golang/internal/service/pricing"
	"drapery-golang/internal/storage"
)

type ItemCalculator interface {
	Calculate(ctx context.Context, req calculate.Request) (storage.CalculationResult, error)
}

type Resp struct {
	Result storage.CalculationResult `json:"result"`
}

type ErrResp struct {
	Errors []string `json:"errors"`
}

// CalculateItem is the pure preview path: it runs the engine and returns the
// result without persisting anything.
func CalculateItem(log *slog.Logger, calc ItemCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calculate.CalculateItem"

		var req calculate.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := calc.Calculate(ctx, req)
		if err != nil {
			status, body := classifyError(err)
			if body == nil {
				log.Error("Failed to calculate item", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Internal error", status)
				return
			}

			log.Warn("Calculation rejected", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, status)
			render.JSON(w, r, body)
			return
		}

		render.JSON(w, r, Resp{Result: result})
	}
}

// classifyError maps the engine's error taxonomy onto HTTP: validation and
// configuration problems are the caller's to fix (422 with the message list),
// anything else is ours (500).
func classifyError(err error) (int, *ErrResp) {
	var vErr *pricing.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusUnprocessableEntity, &ErrResp{Errors: vErr.Problems}
	}

	var cErr *pricing.ConfigError
	if errors.As(err, &cErr) {
		return http.StatusUnprocessableEntity, &ErrResp{Errors: []string{cErr.Error()}}
	}

	var lErr *pricing.LookupError
	if errors.As(err, &lErr) {
		return http.StatusUnprocessableEntity, &ErrResp{Errors: []string{lErr.Error()}}
	}

	return http.StatusInternalServerError, nil
}
