package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gelacuca/gelo/internal/model"
	"github.com/gelacuca/gelo/internal/report"
)

func TestBuildReportWorkbook(t *testing.T) {
	now := time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)
	rep := report.Build(
		[]model.Order{
			{Date: "2024-08-15", Total: 25, Flavors: map[string]int{"coco": 5}},
			{Date: "2024-08-12", Total: 10, Flavors: map[string]int{"uva": 2}},
		},
		[]model.Expense{{Date: "2024-08-13", Amount: 8}},
		report.RangeWeek,
		now,
	)

	data, err := BuildReportWorkbook(rep)
	if err != nil {
		t.Fatalf("BuildReportWorkbook() failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer func() { _ = f.Close() }()

	for _, sheet := range []string{"Resumo", "Fluxo de Caixa", "Top Sabores"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Errorf("sheet %q missing (idx=%d err=%v)", sheet, idx, err)
		}
	}

	revenue, err := f.GetCellValue("Resumo", "B5")
	if err != nil {
		t.Fatal(err)
	}
	if revenue != "35" {
		t.Errorf("summary revenue = %q, want 35", revenue)
	}

	// Seven bucket rows below the header.
	rows, err := f.GetRows("Fluxo de Caixa")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 8 {
		t.Errorf("cash-flow rows = %d, want 8 (header + 7 buckets)", len(rows))
	}

	flavor, err := f.GetCellValue("Top Sabores", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if flavor != "coco" {
		t.Errorf("top flavor = %q, want coco", flavor)
	}
}
