package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"drapery-golang/internal/storage"
)

type MarkupUpdater interface {
	UpdateMarkupSettings(ctx context.Context, settings []storage.MarkupSetting) error
}

func UpdateMarkupSettingsAdmin(log *slog.Logger, updater MarkupUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.markup.UpdateMarkupSettingsAdmin"

		var settings []storage.MarkupSetting
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateMarkupSettings(ctx, settings); err != nil {
			log.Error("Failed to update markup settings", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
