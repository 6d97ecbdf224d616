package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	calcpreview "drapery-golang/http-server/calculate"
	generate_excel "drapery-golang/http-server/generate-report/generate-excel"
	getcalc "drapery-golang/http-server/item-calc/get"
	savecalc "drapery-golang/http-server/item-calc/save"
	getmarkup "drapery-golang/http-server/markup/get"
	upmarkup "drapery-golang/http-server/markup/update"
	gettemplate "drapery-golang/http-server/template/get"
	savetemplate "drapery-golang/http-server/template/save"
	uptemplate "drapery-golang/http-server/template/update"
	"drapery-golang/internal/config"
	"drapery-golang/internal/middleware/auth"
	"drapery-golang/internal/service/calculate"
	generate_excel2 "drapery-golang/internal/service/generate-excel"
	"drapery-golang/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, calcService *calculate.CalcService, reportService *generate_excel2.ReportService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// templates
	router.Get("/api/template", gettemplate.GetTemplateByCode(log, storage))
	router.Get("/api/all_templates", gettemplate.GetAllTemplates(log, storage))

	// calculation preview (no side effects)
	router.Post("/api/items/calculate", calcpreview.CalculateItem(log, calcService))

	// calculate + persist, returns the invalidation fan-out
	router.Post("/api/items/calculation/save", savecalc.SaveItemCalculation(log, calcService))

	// persisted snapshots
	router.Get("/api/items/calculation/{itemKey}", getcalc.GetItemCalculation(log, storage))
	router.Get("/api/items/calculations", getcalc.GetOrderCalculations(log, storage))

	// quote summary export
	router.Get("/api/report/excel", generate_excel.GenerateQuoteExcel(log, reportService))

	// admin panel
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/all_templates", gettemplate.GetAllTemplatesAdmin(log, storage))
	adminRouter.Put("/template/update/{code}", uptemplate.UpdateTemplateAdmin(log, storage))
	adminRouter.Post("/template/new", savetemplate.SaveTemplateAdmin(log, storage))
	adminRouter.Get("/markup", getmarkup.GetMarkupSettingsAdmin(log, storage))
	adminRouter.Put("/markup/update", upmarkup.UpdateMarkupSettingsAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
