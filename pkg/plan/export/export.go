// pkg/plan/export/export.go

// Package export renders a crop plan as an xlsx workbook for download.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"agriai/pkg/plan/types"
)

// Workbook builds an xlsx with an Overview sheet plus one sheet per month.
func Workbook(plan *types.CropPlan) ([]byte, error) {
	x := excelize.NewFile()
	defer x.Close()

	const overview = "Overview"
	x.SetSheetName("Sheet1", overview)

	rows := [][]any{
		{"Crop", plan.CropName},
		{"Duration (days)", plan.DurationDays},
		{"Estimated cost (₹)", plan.EstimatedCost},
		{"Estimated profit (₹)", plan.EstimatedProfit},
		{"Expected yield", plan.ExpectedYield},
		{"Irrigation", plan.IrrigationGuidance},
		{"Fertilizers", strings.Join(plan.FertilizerRecommendations, ", ")},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := x.SetSheetRow(overview, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = x.SetColWidth(overview, "A", "A", 22)
	_ = x.SetColWidth(overview, "B", "B", 80)

	for _, m := range plan.MonthlyPlans {
		name := sheetName(m)
		if _, err := x.NewSheet(name); err != nil {
			return nil, err
		}
		header := []any{"Day", "Date", "Title", "Description", "Icon"}
		if err := x.SetSheetRow(name, "A1", &header); err != nil {
			return nil, err
		}
		for i, d := range m.DayPlan {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			row := []any{d.Day, d.Date, d.Title, d.Description, d.Icon}
			if err := x.SetSheetRow(name, cell, &row); err != nil {
				return nil, err
			}
		}
		_ = x.SetColWidth(name, "C", "C", 36)
		_ = x.SetColWidth(name, "D", "D", 90)
	}

	var buf bytes.Buffer
	if err := x.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetName keeps within excelize's 31-char sheet name limit.
func sheetName(m types.MonthPlan) string {
	label := strings.TrimSpace(m.MonthLabel)
	if label == "" {
		label = fmt.Sprintf("Month %d", m.MonthNumber)
	}
	name := fmt.Sprintf("M%d %s", m.MonthNumber, label)
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
