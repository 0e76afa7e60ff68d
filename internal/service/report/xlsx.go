package report

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

// statusMarks are the single-letter day cells of the muster roll sheet.
var statusMarks = map[attendance.DayStatus]string{
	attendance.StatusPresent:   "P",
	attendance.StatusAbsent:    "A",
	attendance.StatusHalfDay:   "H",
	attendance.StatusPaidLeave: "L",
	attendance.StatusWeekOff:   "W",
	attendance.StatusNotMarked: "-",
}

type MusterRollExporter struct {
	attendance attendance.AttendanceService
}

func NewMusterRollExporter(svc attendance.AttendanceService) *MusterRollExporter {
	return &MusterRollExporter{attendance: svc}
}

// Export builds the muster roll workbook for the given employees and month
// and returns it together with a download filename.
func (e *MusterRollExporter) Export(ctx context.Context, employeeIDs []string, year int, month time.Month) (*excelize.File, string, error) {
	roll, err := e.attendance.MusterRoll(ctx, employeeIDs, year, month)
	if err != nil {
		return nil, "", err
	}

	f, err := BuildMusterRollWorkbook(roll)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("muster_roll_%04d-%02d.xlsx", year, int(month))
	return f, filename, nil
}

// BuildMusterRollWorkbook renders a roll into a single-sheet workbook:
// one row per employee, one column per day, totals on the right and a
// per-day presence count block at the bottom.
func BuildMusterRollWorkbook(roll attendance.MusterRoll) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Muster Roll"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	centerStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	// Title row.
	title := fmt.Sprintf("MUSTER ROLL %s %d", roll.Month, roll.Year)
	lastCol, _ := excelize.CoordinatesToCellName(1+roll.DaysInMonth+3, 1)
	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", lastCol)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)
	f.SetRowHeight(sheet, 1, 25)

	// Header row: employee, day numbers, totals.
	const headerRow = 3
	cell, _ := excelize.CoordinatesToCellName(1, headerRow)
	f.SetCellValue(sheet, cell, "Employee")
	for day := 1; day <= roll.DaysInMonth; day++ {
		cell, _ = excelize.CoordinatesToCellName(1+day, headerRow)
		f.SetCellValue(sheet, cell, day)
	}
	for i, label := range []string{"Present", "Absent", "Leave"} {
		cell, _ = excelize.CoordinatesToCellName(1+roll.DaysInMonth+1+i, headerRow)
		f.SetCellValue(sheet, cell, label)
	}
	headerEnd, _ := excelize.CoordinatesToCellName(1+roll.DaysInMonth+3, headerRow)
	headerStart, _ := excelize.CoordinatesToCellName(1, headerRow)
	f.SetCellStyle(sheet, headerStart, headerEnd, headerStyle)

	// One row per employee.
	row := headerRow + 1
	for _, empRow := range roll.Rows {
		cell, _ = excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheet, cell, empRow.EmployeeName)
		for day := 1; day <= roll.DaysInMonth; day++ {
			mark := statusMarks[empRow.Days[day-1]]
			if mark == "" {
				mark = "-"
			}
			cell, _ = excelize.CoordinatesToCellName(1+day, row)
			f.SetCellValue(sheet, cell, mark)
		}
		for i, total := range []int{empRow.Present, empRow.Absent, empRow.Leave} {
			cell, _ = excelize.CoordinatesToCellName(1+roll.DaysInMonth+1+i, row)
			f.SetCellValue(sheet, cell, total)
		}
		rowStart, _ := excelize.CoordinatesToCellName(2, row)
		rowEnd, _ := excelize.CoordinatesToCellName(1+roll.DaysInMonth+3, row)
		f.SetCellStyle(sheet, rowStart, rowEnd, centerStyle)
		row++
	}

	// Per-day totals block.
	row++
	for i, label := range []string{"Present", "Absent", "Leave"} {
		cell, _ = excelize.CoordinatesToCellName(1, row+i)
		f.SetCellValue(sheet, cell, label)
		for day := 1; day <= roll.DaysInMonth; day++ {
			totals := roll.DayTotals[day-1]
			value := [3]int{totals.Present, totals.Absent, totals.Leave}[i]
			cell, _ = excelize.CoordinatesToCellName(1+day, row+i)
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetColWidth(sheet, "A", "A", 24)
	dayStart, _ := excelize.ColumnNumberToName(2)
	dayEnd, _ := excelize.ColumnNumberToName(1 + roll.DaysInMonth)
	f.SetColWidth(sheet, dayStart, dayEnd, 4)

	return f, nil
}
