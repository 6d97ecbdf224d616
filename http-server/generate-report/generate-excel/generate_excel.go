package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type QuoteReportGenerator interface {
	GenerateOrderReport(ctx context.Context, orderNum string) ([]byte, error)
}

func GenerateQuoteExcel(log *slog.Logger, gen QuoteReportGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateQuoteExcel"

		orderNum := r.URL.Query().Get("order")
		if orderNum == "" {
			http.Error(w, "order is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateOrderReport(ctx, orderNum)
		if err != nil {
			log.Error("failed to generate quote excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Quote_%s_%s.xlsx", orderNum, time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
