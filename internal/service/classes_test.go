package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
	"github.com/dojoworks/dojo-admin/internal/mocks"
)

type classFixture struct {
	svc     *ClassService
	classes *mocks.MockClassRepository
	groups  *mocks.MockGroupRepository
}

func newClassFixture(t *testing.T) classFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := classFixture{
		classes: mocks.NewMockClassRepository(ctrl),
		groups:  mocks.NewMockGroupRepository(ctrl),
	}
	f.svc = NewClassService(ClassServiceOptions{Classes: f.classes, Groups: f.groups})
	return f
}

func TestClassService_SetStatus(t *testing.T) {
	f := newClassFixture(t)
	f.classes.EXPECT().
		SetStatus(gomock.Any(), int64(4), academy.ClassInProgress).
		Return(&academy.Class{ID: 4, Status: academy.ClassInProgress}, nil)

	c, err := f.svc.SetStatus(context.Background(), 4, " em_andamento ")
	require.NoError(t, err)
	assert.Equal(t, academy.ClassInProgress, c.Status)

	_, err = f.svc.SetStatus(context.Background(), 4, "POSTPONED")
	require.Error(t, err)
	assert.Equal(t, "status", apperrors.GetField(err))
}

func TestClassService_Sheet(t *testing.T) {
	f := newClassFixture(t)
	f.classes.EXPECT().GetByID(gomock.Any(), int64(4)).
		Return(&academy.Class{ID: 4, GroupID: 9, Status: academy.ClassInProgress}, nil)
	f.classes.EXPECT().Attendance(gomock.Any(), int64(4)).Return([]academy.Attendance{
		{ID: 100, StudentID: 2, StudentName: "bruno", Present: true},
		{ID: 101, StudentID: 7, StudentName: "Carla", Present: false},
	}, nil)
	f.groups.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&academy.Group{
		ID: 9,
		Students: []academy.StudentRef{
			{ID: 3, Name: "Davi"},
			{ID: 2, Name: "Bruno"},
			{ID: 1, Name: "ana"},
		},
	}, nil)

	sheet, err := f.svc.Sheet(context.Background(), 4)
	require.NoError(t, err)

	names := make([]string, 0, len(sheet.Rows))
	for _, r := range sheet.Rows {
		names = append(names, r.Student.Name)
	}
	assert.Equal(t, []string{"ana", "Bruno", "Carla", "Davi"}, names)

	assert.False(t, sheet.Rows[0].Marked())
	require.True(t, sheet.Rows[1].Marked())
	assert.Equal(t, int64(100), sheet.Rows[1].Record.ID)
	require.True(t, sheet.Rows[2].Marked(), "recorded student off the roster is still listed")
	assert.False(t, sheet.Rows[2].Record.Present)
	assert.Equal(t, academy.AttendanceSummary{Total: 2, Present: 1}, sheet.Summary)
}

func TestClassService_Sheet_AttendanceFailure(t *testing.T) {
	f := newClassFixture(t)
	f.classes.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&academy.Class{ID: 4, GroupID: 9}, nil).AnyTimes()
	f.classes.EXPECT().Attendance(gomock.Any(), int64(4)).Return(nil, errors.New("upstream"))

	sheet, err := f.svc.Sheet(context.Background(), 4)
	require.Error(t, err)
	assert.Nil(t, sheet)
}

func TestClassService_CreateValidation(t *testing.T) {
	f := newClassFixture(t)
	_, err := f.svc.Create(context.Background(), academy.ClassRequest{
		GroupID:   9,
		Date:      academy.NewDate(2026, 3, 2),
		StartTime: "19:00",
		EndTime:   "18:00",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
