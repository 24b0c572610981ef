// Package export renders academy data into downloadable spreadsheets.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dojoworks/dojo-admin/internal/service"
)

// ContentTypeXLSX is the media type of the generated workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const attendanceSheetName = "Attendance"

var attendanceHeader = []any{"Student", "Belt", "Attendance", "Note"} //nolint:gochecknoglobals // fixed header

// AttendanceFilename is the download name for a class's attendance workbook.
func AttendanceFilename(sheet *service.AttendanceSheet) string {
	if sheet == nil || sheet.Class == nil {
		return "attendance.xlsx"
	}
	if sheet.Class.Date.IsZero() {
		return fmt.Sprintf("attendance-class-%d.xlsx", sheet.Class.ID)
	}
	return fmt.Sprintf("attendance-class-%d-%s.xlsx", sheet.Class.ID, sheet.Class.Date.String())
}

// WriteAttendance writes the attendance sheet as an xlsx workbook to w.
// Rows follow the sheet order; students without a record are reported as not marked.
func WriteAttendance(w io.Writer, sheet *service.AttendanceSheet) error {
	if sheet == nil || sheet.Class == nil {
		return errors.New("export: attendance sheet has no class")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), attendanceSheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(attendanceSheetName, "A1", &attendanceHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(attendanceSheetName, "A1", "D1", bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	row := 2
	for _, r := range sheet.Rows {
		values := []any{r.Student.Name, r.Student.Belt.Label(), attendanceLabel(r), ""}
		if r.Record != nil {
			values[3] = r.Record.Note
		}
		if err := writeRow(f, row, values); err != nil {
			return err
		}
		row++
	}

	row++
	summary := [][]any{
		{"Class", classLabel(sheet)},
		{"Present", sheet.Summary.Present},
		{"Absent", sheet.Summary.Absent()},
		{"Rate (%)", sheet.Summary.Rate()},
	}
	for _, values := range summary {
		if err := writeRow(f, row, values); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(attendanceSheetName, "A", "A", 32); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(attendanceSheetName, "B", "C", 14); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(attendanceSheetName, "D", "D", 40); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(attendanceSheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func attendanceLabel(r service.SheetRow) string {
	switch {
	case r.Record == nil:
		return "Not marked"
	case r.Record.Present:
		return "Present"
	default:
		return "Absent"
	}
}

func classLabel(sheet *service.AttendanceSheet) string {
	c := sheet.Class
	name := c.GroupName
	if name == "" && sheet.Group != nil {
		name = sheet.Group.Name
	}
	label := name + " " + c.Date.Display()
	if c.StartTime != "" {
		label += " " + c.StartTime
		if c.EndTime != "" {
			label += "-" + c.EndTime
		}
	}
	return label
}
