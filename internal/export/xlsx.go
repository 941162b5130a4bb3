// Package export renders reports as spreadsheet workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gelacuca/gelo/internal/report"
)

// Sheet names in the exported workbook.
const (
	summarySheet = "Resumo"
	flowSheet    = "Fluxo de Caixa"
	flavorsSheet = "Top Sabores"
)

// BuildReportWorkbook renders one report as an XLSX workbook: a summary
// sheet with the window totals, a cash-flow sheet with one row per bucket,
// and a top-flavors sheet.
func BuildReportWorkbook(rep report.Report) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(flowSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(flavorsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", "Visão Geral")
	_ = f.SetCellValue(summarySheet, "A3", "Período")
	_ = f.SetCellValue(summarySheet, "B3", string(rep.Range))
	_ = f.SetCellValue(summarySheet, "A4", "Desde")
	_ = f.SetCellValue(summarySheet, "B4", rep.Cutoff)
	_ = f.SetCellValue(summarySheet, "A5", "Receita Total")
	_ = f.SetCellValue(summarySheet, "B5", rep.Totals.Revenue)
	_ = f.SetCellValue(summarySheet, "A6", "Despesas Totais")
	_ = f.SetCellValue(summarySheet, "B6", rep.Totals.Expense)
	_ = f.SetCellValue(summarySheet, "A7", "Saldo em Caixa")
	_ = f.SetCellValue(summarySheet, "B7", rep.Totals.Balance)

	_ = f.SetCellValue(flowSheet, "A1", "Período")
	_ = f.SetCellValue(flowSheet, "B1", "Receita")
	_ = f.SetCellValue(flowSheet, "C1", "Despesa")
	_ = f.SetCellValue(flowSheet, "D1", "Lucro")
	for i, b := range rep.Buckets {
		row := i + 2
		_ = f.SetCellValue(flowSheet, fmt.Sprintf("A%d", row), b.Label)
		_ = f.SetCellValue(flowSheet, fmt.Sprintf("B%d", row), b.Revenue)
		_ = f.SetCellValue(flowSheet, fmt.Sprintf("C%d", row), b.Expense)
		_ = f.SetCellValue(flowSheet, fmt.Sprintf("D%d", row), b.Profit)
	}

	_ = f.SetCellValue(flavorsSheet, "A1", "Sabor")
	_ = f.SetCellValue(flavorsSheet, "B1", "Quantidade")
	for i, fc := range rep.TopFlavors {
		row := i + 2
		_ = f.SetCellValue(flavorsSheet, fmt.Sprintf("A%d", row), fc.Name)
		_ = f.SetCellValue(flavorsSheet, fmt.Sprintf("B%d", row), fc.Count)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
