package get

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"drapery-golang/internal/storage"
)

type CalculationProvider interface {
	GetCalculationResult(ctx context.Context, itemKey string) (*storage.SavedCalculation, error)
	GetCalculationsByOrder(ctx context.Context, orderNum string) ([]*storage.SavedCalculation, error)
}

func GetItemCalculation(log *slog.Logger, provider CalculationProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.get.GetItemCalculation"

		itemKey := chi.URLParam(r, "itemKey")
		if itemKey == "" {
			http.Error(w, "Missing item key", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rec, err := provider.GetCalculationResult(ctx, itemKey)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.With(slog.String("op", op), slog.String("item_key", itemKey)).Warn("Calculation not found")
				http.Error(w, "Calculation not found", http.StatusNotFound)
				return
			}

			log.Error("Failed to fetch calculation", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, rec)
	}
}

func GetOrderCalculations(log *slog.Logger, provider CalculationProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.get.GetOrderCalculations"

		orderNum := r.URL.Query().Get("order")
		if orderNum == "" {
			http.Error(w, "Missing required query parameter 'order'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		recs, err := provider.GetCalculationsByOrder(ctx, orderNum)
		if err != nil {
			log.Error("Failed to fetch order calculations", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, recs)
	}
}
