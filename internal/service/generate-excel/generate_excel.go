package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"drapery-golang/internal/storage"
)

type ReportStorage interface {
	GetCalculationsByOrder(ctx context.Context, orderNum string) ([]*storage.SavedCalculation, error)
}

type ReportService struct {
	storage ReportStorage
}

func NewReportService(storage ReportStorage) *ReportService {
	return &ReportService{storage: storage}
}

// GenerateOrderReport renders the saved calculations of one order as a flat
// quote worksheet: one row per item, totals row at the bottom.
func (g *ReportService) GenerateOrderReport(ctx context.Context, orderNum string) ([]byte, error) {
	recs, err := g.storage.GetCalculationsByOrder(ctx, orderNum)
	if err != nil {
		return nil, fmt.Errorf("fetch calculations: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Quote summary"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{
		"Item", "Template", "Widths", "Linear m", "Fabric", "Manufacturing",
		"Options", "Total cost", "Sell", "Markup %", "Markup source", "Margin", "Updated",
	}
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

	var totalCost, totalSell float64
	for rowIdx, rec := range recs {
		rowNum := rowIdx + 2

		f.SetCellValue(sheet, cellName(1, rowNum), rec.ItemKey)
		f.SetCellValue(sheet, cellName(2, rowNum), rec.Template)
		f.SetCellValue(sheet, cellName(3, rowNum), rec.WidthsRequired)
		f.SetCellValue(sheet, cellName(4, rowNum), rec.LinearMeters)
		f.SetCellValue(sheet, cellName(5, rowNum), rec.FabricCost)
		f.SetCellValue(sheet, cellName(6, rowNum), rec.ManufacturingCost)
		f.SetCellValue(sheet, cellName(7, rowNum), rec.OptionsCost)
		f.SetCellValue(sheet, cellName(8, rowNum), rec.TotalCost)
		f.SetCellValue(sheet, cellName(9, rowNum), rec.TotalSelling)
		f.SetCellValue(sheet, cellName(10, rowNum), rec.MarkupPercent)
		f.SetCellValue(sheet, cellName(11, rowNum), rec.MarkupSource)
		f.SetCellValue(sheet, cellName(12, rowNum), rec.MarginBand)
		f.SetCellValue(sheet, cellName(13, rowNum), rec.UpdatedAT.Format("2006-01-02 15:04"))

		totalCost += rec.TotalCost
		totalSell += rec.TotalSelling
	}

	totalsRow := len(recs) + 2
	f.SetCellValue(sheet, cellName(1, totalsRow), "Total")
	f.SetCellValue(sheet, cellName(8, totalsRow), totalCost)
	f.SetCellValue(sheet, cellName(9, totalsRow), totalSell)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "",
		Selection:   nil,
	})

	f.SetColWidth(sheet, "A", "M", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
