package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"drapery-golang/internal/storage"
)

type MarkupProvider interface {
	GetMarkupSettings(ctx context.Context) ([]storage.MarkupSetting, error)
}

func GetMarkupSettingsAdmin(log *slog.Logger, provider MarkupProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.markup.GetMarkupSettingsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		settings, err := provider.GetMarkupSettings(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch markup settings")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, settings)
	}
}
