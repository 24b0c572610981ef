package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	"github.com/dojoworks/dojo-admin/internal/service"
)

func testSheet() *service.AttendanceSheet {
	present := academy.Attendance{ID: 1, StudentID: 1, Present: true, Note: "arrived late"}
	absent := academy.Attendance{ID: 2, StudentID: 2}
	return &service.AttendanceSheet{
		Class: &academy.Class{
			ID:        4,
			GroupName: "Kids Judo",
			Date:      academy.NewDate(2026, time.March, 2),
			StartTime: "18:00",
			EndTime:   "19:00",
		},
		Rows: []service.SheetRow{
			{Student: academy.StudentRef{ID: 1, Name: "Ana", Belt: academy.BeltYellow}, Record: &present},
			{Student: academy.StudentRef{ID: 2, Name: "Bruno", Belt: academy.BeltWhite}, Record: &absent},
			{Student: academy.StudentRef{ID: 3, Name: "Carla"}},
		},
		Summary: academy.AttendanceSummary{Total: 2, Present: 1},
	}
}

func TestWriteAttendance(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAttendance(&buf, testSheet()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Attendance"}, f.GetSheetList())
	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 9)

	assert.Equal(t, []string{"Student", "Belt", "Attendance", "Note"}, rows[0])
	assert.Equal(t, []string{"Ana", "Yellow", "Present", "arrived late"}, rows[1])
	assert.Equal(t, "Absent", rows[2][2])
	assert.Equal(t, "Not marked", rows[3][2])

	assert.Equal(t, []string{"Class", "Kids Judo 02/03/2026 18:00-19:00"}, rows[5])
	assert.Equal(t, []string{"Present", "1"}, rows[6])
	assert.Equal(t, []string{"Absent", "1"}, rows[7])
	assert.Equal(t, []string{"Rate (%)", "50"}, rows[8])
}

func TestWriteAttendance_NoClass(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteAttendance(&buf, &service.AttendanceSheet{}))
	assert.Error(t, WriteAttendance(&buf, nil))
	assert.Zero(t, buf.Len())
}

func TestAttendanceFilename(t *testing.T) {
	assert.Equal(t, "attendance-class-4-2026-03-02.xlsx", AttendanceFilename(testSheet()))
	assert.Equal(t, "attendance-class-7.xlsx", AttendanceFilename(&service.AttendanceSheet{Class: &academy.Class{ID: 7}}))
	assert.Equal(t, "attendance.xlsx", AttendanceFilename(nil))
}
