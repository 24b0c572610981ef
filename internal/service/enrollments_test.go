package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
	"github.com/dojoworks/dojo-admin/internal/mocks"
)

func TestEnrollmentService_Toggle(t *testing.T) {
	tests := []struct {
		from, to academy.EnrollmentStatus
	}{
		{from: academy.EnrollmentActive, to: academy.EnrollmentInactive},
		{from: academy.EnrollmentInactive, to: academy.EnrollmentActive},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockEnrollmentRepository(ctrl)
			svc := NewEnrollmentService(EnrollmentServiceOptions{Enrollments: repo})

			gomock.InOrder(
				repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&academy.Enrollment{ID: 3, Status: tt.from}, nil),
				repo.EXPECT().SetStatus(gomock.Any(), int64(3), tt.to).Return(&academy.Enrollment{ID: 3, Status: tt.to}, nil),
			)

			e, err := svc.Toggle(context.Background(), 3)
			require.NoError(t, err)
			assert.Equal(t, tt.to, e.Status)
		})
	}
}

func TestEnrollmentService_Toggle_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEnrollmentRepository(ctrl)
	svc := NewEnrollmentService(EnrollmentServiceOptions{Enrollments: repo})

	repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, apperrors.NotFound("Enrollment not found."))

	_, err := svc.Toggle(context.Background(), 3)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestEnrollmentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEnrollmentRepository(ctrl)
	svc := NewEnrollmentService(EnrollmentServiceOptions{Enrollments: repo})
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 21, 30, 0, 0, time.UTC) }

	repo.EXPECT().
		Create(gomock.Any(), academy.EnrollmentRequest{
			StudentID:  1,
			GroupID:    9,
			EnrolledOn: academy.NewDate(2026, time.March, 2),
		}).
		Return(&academy.Enrollment{ID: 44}, nil)

	e, err := svc.Create(context.Background(), academy.EnrollmentRequest{StudentID: 1, GroupID: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(44), e.ID)

	_, err = svc.Create(context.Background(), academy.EnrollmentRequest{GroupID: 9})
	assert.Equal(t, "alunoId", apperrors.GetField(err))
	_, err = svc.Create(context.Background(), academy.EnrollmentRequest{StudentID: 1})
	assert.Equal(t, "turmaId", apperrors.GetField(err))
}
