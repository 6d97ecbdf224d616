package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"drapery-golang/internal/storage"
)

type TemplateUpdater interface {
	UpdateTemplateAdmin(ctx context.Context, code string, update storage.TemplateAdmin) error
}

func UpdateTemplateAdmin(log *slog.Logger, updater TemplateUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.UpdateTemplateAdmin"

		code := chi.URLParam(r, "code")
		if code == "" {
			http.Error(w, "Missing template code", http.StatusBadRequest)
			return
		}

		var req storage.TemplateAdmin
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateTemplateAdmin(ctx, code, req); err != nil {
			log.Error("Failed to update template", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
