package services

import (
	"fmt"

	"marine-trading-backend/config"
	"marine-trading-backend/db/models"
	"marine-trading-backend/pricing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var itemSheetHeaders = []string{
	"No", "Type", "Part Code", "Description", "Unit", "Qty",
	"Purchase (KRW)", "Purchase (FC)", "Sales (KRW)", "Sales (FC)",
	"Margin %", "Sales Amount (KRW)", "Sales Amount (FC)",
}

// BuildDocumentWorkbook renders a document's item table and totals block into
// an in-memory workbook for download. Structural rows keep their text but
// show no figures, matching the editing screens.
func BuildDocumentWorkbook(doc *models.Document, totals pricing.FinalTotals) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Document"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		config.Logger.Warn("Could not drop default sheet", zap.Error(err))
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s %s", doc.DocumentType, doc.RefNumber))
	f.SetCellValue(sheet, "A2", doc.RefSubject)
	f.SetCellValue(sheet, "A3", fmt.Sprintf("Currency: %s @ %s", doc.CurrencyType, doc.Currency))

	headerRow := 5
	for col, header := range itemSheetHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("error resolving header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("error setting header %s: %w", header, err)
		}
	}

	row := headerRow + 1
	for _, item := range doc.Items {
		values := itemRowValues(item)
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("error resolving item cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("error writing item row %d: %w", row, err)
			}
		}
		row++
	}

	for _, charge := range doc.Charges {
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), charge.CustomCharge)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), toFloat(charge.ChargePriceKRW))
		f.SetCellValue(sheet, fmt.Sprintf("M%d", row), toFloat(charge.ChargePriceGlobal))
		row++
	}

	row++
	totalsBlock := []struct {
		label string
		value decimal.Decimal
	}{
		{"Total Sales (KRW)", totals.TotalSalesAmountKRW},
		{fmt.Sprintf("Total Sales (%s)", doc.CurrencyType), totals.TotalSalesAmountGlobal},
		{"Total Purchase (KRW)", totals.PurchaseAmountKRW},
		{"Margin (KRW)", totals.MarginAmountKRW},
		{"Sales Margin Rate %", totals.SalesMarginRate},
		{"Profit", totals.Profit},
		{"Profit Rate %", totals.ProfitRate},
	}
	for _, line := range totalsBlock {
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.label)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), toFloat(line.value))
		row++
	}

	return f, nil
}

func itemRowValues(item models.LineItem) []interface{} {
	if !item.ItemType.IsPriced() {
		return []interface{}{
			"", string(item.ItemType), item.PartCode, item.ItemName, "", "",
			"", "", "", "", "", "", "",
		}
	}
	return []interface{}{
		item.ItemNo, string(item.ItemType), item.PartCode, item.ItemName, item.Unit, toFloat(item.Qty),
		toFloat(item.PurchasePriceKRW), toFloat(item.PurchasePriceGlobal),
		toFloat(item.SalesPriceKRW), toFloat(item.SalesPriceGlobal),
		toFloat(item.Margin), toFloat(item.SalesAmountKRW), toFloat(item.SalesAmountGlobal),
	}
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
