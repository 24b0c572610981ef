package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
	"github.com/dojoworks/dojo-admin/internal/mocks"
)

var studentTestNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // fixed clock

func newTestStudentService(t *testing.T) (*StudentService, *mocks.MockStudentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStudentRepository(ctrl)
	svc := NewStudentService(StudentServiceOptions{Students: repo})
	svc.now = func() time.Time { return studentTestNow }
	return svc, repo
}

func TestNewStudentService_PanicsWithoutRepo(t *testing.T) {
	assert.Panics(t, func() { NewStudentService(StudentServiceOptions{}) })
}

func TestStudentService_Create_Defaults(t *testing.T) {
	svc, repo := newTestStudentService(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req academy.StudentRequest) (*academy.Student, error) {
			assert.Equal(t, "Ana Souza", req.Name)
			assert.Equal(t, "ana@dojo.test", req.Email)
			assert.Equal(t, academy.StudentActive, req.Status)
			assert.Equal(t, academy.BeltWhite, req.Belt)
			assert.Nil(t, req.GuardianID)
			return &academy.Student{ID: 10, Name: req.Name}, nil
		})

	st, err := svc.Create(context.Background(), academy.StudentRequest{
		Name:      "  Ana Souza ",
		Email:     " Ana@Dojo.TEST ",
		BirthDate: academy.NewDate(1990, time.May, 4),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), st.ID)
}

func TestStudentService_Create_MinorNeedsGuardian(t *testing.T) {
	svc, repo := newTestStudentService(t)
	minorBirth := academy.NewDate(2015, time.June, 1)

	_, err := svc.Create(context.Background(), academy.StudentRequest{Name: "Kid", BirthDate: minorBirth})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "responsavelId", apperrors.GetField(err))

	guardian := int64(3)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&academy.Student{ID: 11}, nil)
	_, err = svc.Create(context.Background(), academy.StudentRequest{
		Name: "Kid", BirthDate: minorBirth, GuardianID: &guardian,
	})
	require.NoError(t, err)
}

func TestStudentService_Update_MinorWithoutGuardianAllowed(t *testing.T) {
	svc, repo := newTestStudentService(t)
	repo.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).Return(&academy.Student{ID: 4}, nil)

	_, err := svc.Update(context.Background(), 4, academy.StudentRequest{
		Name: "Kid", BirthDate: academy.NewDate(2015, time.June, 1),
	})
	require.NoError(t, err)
}

func TestStudentService_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   academy.StudentRequest
		field string
	}{
		{name: "blank name", req: academy.StudentRequest{Name: "   "}, field: "nome"},
		{name: "unknown status", req: academy.StudentRequest{Name: "A", Status: "PAUSADO"}, field: "status"},
		{name: "unknown belt", req: academy.StudentRequest{Name: "A", Belt: "RAINBOW"}, field: "faixa"},
		{
			name:  "future birth date",
			req:   academy.StudentRequest{Name: "A", BirthDate: academy.NewDate(2030, time.January, 1)},
			field: "dataNascimento",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestStudentService(t)
			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.field, apperrors.GetField(err))
		})
	}
}

func TestStudentService_RequiresGuardian(t *testing.T) {
	svc, _ := newTestStudentService(t)

	assert.False(t, svc.RequiresGuardian(academy.Date{}))
	assert.True(t, svc.RequiresGuardian(academy.NewDate(2008, time.March, 3)))
	assert.False(t, svc.RequiresGuardian(academy.NewDate(2008, time.March, 2)))
}

func TestStudentService_RejectsInvalidIDs(t *testing.T) {
	svc, _ := newTestStudentService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 0)
	assert.True(t, apperrors.IsValidation(err))
	_, err = svc.Promote(ctx, -1)
	assert.True(t, apperrors.IsValidation(err))
	assert.True(t, apperrors.IsValidation(svc.LinkGuardian(ctx, 1, 0)))
	assert.True(t, apperrors.IsValidation(svc.Delete(ctx, 0)))
}

func TestStudentService_PromoteDemote(t *testing.T) {
	svc, repo := newTestStudentService(t)
	repo.EXPECT().Promote(gomock.Any(), int64(7)).Return(&academy.Student{ID: 7, Belt: academy.BeltBlue}, nil)
	repo.EXPECT().Demote(gomock.Any(), int64(7)).Return(&academy.Student{ID: 7, Belt: academy.BeltGreen}, nil)

	st, err := svc.Promote(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, academy.BeltBlue, st.Belt)

	st, err = svc.Demote(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, academy.BeltGreen, st.Belt)
}

func TestStudentService_Detail(t *testing.T) {
	t.Run("history failures are kept", func(t *testing.T) {
		svc, repo := newTestStudentService(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&academy.Student{ID: 5, Name: "Bia"}, nil)
		repo.EXPECT().Enrollments(gomock.Any(), int64(5)).Return(nil, errors.New("boom"))
		repo.EXPECT().Attendance(gomock.Any(), int64(5)).Return([]academy.Attendance{
			{ID: 1, Present: true}, {ID: 2, Present: false}, {ID: 3, Present: true},
		}, nil)

		d, err := svc.Detail(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "Bia", d.Student.Name)
		require.Error(t, d.EnrollmentErr)
		assert.NoError(t, d.AttendanceErr)
		assert.Equal(t, academy.AttendanceSummary{Total: 3, Present: 2}, d.Summary)
	})

	t.Run("student failure is fatal", func(t *testing.T) {
		svc, repo := newTestStudentService(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, apperrors.NotFound("missing"))
		repo.EXPECT().Enrollments(gomock.Any(), int64(5)).Return(nil, nil).AnyTimes()
		repo.EXPECT().Attendance(gomock.Any(), int64(5)).Return(nil, nil).AnyTimes()

		d, err := svc.Detail(context.Background(), 5)
		require.Error(t, err)
		assert.Nil(t, d)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestStudentService_GuardianLinks(t *testing.T) {
	svc, repo := newTestStudentService(t)
	gomock.InOrder(
		repo.EXPECT().LinkGuardian(gomock.Any(), int64(1), int64(2)).Return(nil),
		repo.EXPECT().UnlinkGuardian(gomock.Any(), int64(1), int64(2)).Return(apperrors.NotFound("no link")),
	)

	require.NoError(t, svc.LinkGuardian(context.Background(), 1, 2))
	err := svc.UnlinkGuardian(context.Background(), 1, 2)
	assert.True(t, apperrors.IsNotFound(err))
}
