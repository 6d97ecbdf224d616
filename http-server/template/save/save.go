package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"drapery-golang/internal/constants"
	"drapery-golang/internal/storage"
)

type TemplateCreator interface {
	CreateTemplateAdmin(ctx context.Context, res storage.TemplateAdmin) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func SaveTemplateAdmin(log *slog.Logger, creator TemplateCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.SaveTemplateAdmin"

		var req storage.TemplateAdmin
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Code == "" {
			http.Error(w, "Template code is required", http.StatusBadRequest)
			return
		}
		if !constants.TreatmentCategories[req.Category] {
			http.Error(w, "Unknown treatment category", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := creator.CreateTemplateAdmin(ctx, req); err != nil {
			log.Error("Failed to create template", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "could not save template"})
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
