package get

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"drapery-golang/internal/storage"
)

type TemplateProvider interface {
	GetTemplateByCode(ctx context.Context, code string) (*storage.TemplateConfig, error)
	GetAllTemplates(ctx context.Context) ([]*storage.TemplateConfig, error)
	GetAllTemplatesAdmin(ctx context.Context) ([]*storage.TemplateConfig, error)
}

func GetTemplateByCode(log *slog.Logger, provider TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.GetTemplateByCode"

		code := r.URL.Query().Get("code")
		if code == "" {
			log.With(slog.String("op", op)).Error("Missing 'code' in query parameters")
			http.Error(w, "Missing required query parameter 'code'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tmpl, err := provider.GetTemplateByCode(ctx, code)
		if err != nil {
			if strings.Contains(err.Error(), "not found") || errors.Is(err, sql.ErrNoRows) {
				log.With(slog.String("op", op), slog.String("code", code)).Warn("Template not found")
				http.Error(w, "Template not found", http.StatusNotFound)
				return
			}

			log.With(
				slog.String("op", op),
				slog.String("code", code),
				slog.String("error", err.Error()),
			).Error("Failed to fetch template")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, tmpl)
	}
}

func GetAllTemplates(log *slog.Logger, provider TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.GetAllTemplates"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		templates, err := provider.GetAllTemplates(ctx)
		if err != nil {
			log.Error("Failed to fetch templates", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, templates)
	}
}

func GetAllTemplatesAdmin(log *slog.Logger, provider TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.GetAllTemplatesAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		templates, err := provider.GetAllTemplatesAdmin(ctx)
		if err != nil {
			log.Error("Failed to fetch templates", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, templates)
	}
}
