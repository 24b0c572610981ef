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
)

func TestIsIncompleteProfile(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "address message", err: apperrors.FromStatus(500, "Aluno sem endereco cadastrado", nil), want: true},
		{name: "null pointer", err: apperrors.FromStatus(500, "java.lang.NullPointerException", nil), want: true},
		{name: "null field", err: errors.New("Cannot invoke getCidade() because value is null"), want: true},
		{name: "not found", err: apperrors.NotFound("Aluno não encontrado"), want: false},
		{name: "generic unavailable", err: apperrors.FromStatus(503, "", nil), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIncompleteProfile(tt.err))
		})
	}
}

func newTestProfileService(f repoFixture) *ProfileService {
	return NewProfileService(ProfileServiceOptions{Students: f.students, Guardians: f.guardians})
}

func TestProfileService_Student(t *testing.T) {
	f := newRepoFixture(t)
	svc := newTestProfileService(f)

	f.students.EXPECT().FindByEmail(gomock.Any(), "ana@dojo.test").Return(&academy.Student{ID: 4, Name: "Ana"}, nil)
	f.students.EXPECT().Enrollments(gomock.Any(), int64(4)).Return([]academy.Enrollment{{ID: 1}}, nil)
	f.students.EXPECT().Attendance(gomock.Any(), int64(4)).Return([]academy.Attendance{{Present: true}, {}}, nil)

	p, err := svc.Student(context.Background(), "  Ana@Dojo.test ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Student.Name)
	assert.Len(t, p.Enrollments, 1)
	assert.Equal(t, 50, p.Summary.Rate())
}

func TestProfileService_Student_Incomplete(t *testing.T) {
	f := newRepoFixture(t)
	svc := newTestProfileService(f)
	f.students.EXPECT().FindByEmail(gomock.Any(), "ana@dojo.test").
		Return(nil, apperrors.FromStatus(500, "NullPointerException: endereco", nil))

	_, err := svc.Student(context.Background(), "ana@dojo.test")
	require.Error(t, err)
	assert.True(t, IsIncompleteProfile(err))
}

func TestProfileService_Student_NoEmail(t *testing.T) {
	svc := newTestProfileService(newRepoFixture(t))
	_, err := svc.Student(context.Background(), " ")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProfileService_LinkedStudent(t *testing.T) {
	t.Run("linked", func(t *testing.T) {
		f := newRepoFixture(t)
		svc := newTestProfileService(f)
		f.guardians.EXPECT().FindByEmail(gomock.Any(), "mom@dojo.test").Return(&academy.Guardian{ID: 2}, nil)
		f.guardians.EXPECT().Students(gomock.Any(), int64(2)).Return([]academy.StudentRef{{ID: 4}, {ID: 5}}, nil)
		f.students.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&academy.Student{ID: 5, Name: "Leo"}, nil)
		f.students.EXPECT().Enrollments(gomock.Any(), int64(5)).Return(nil, nil)
		f.students.EXPECT().Attendance(gomock.Any(), int64(5)).Return(nil, nil)

		p, err := svc.LinkedStudent(context.Background(), "mom@dojo.test", 5)
		require.NoError(t, err)
		assert.Equal(t, "Leo", p.Student.Name)
	})

	t.Run("not linked", func(t *testing.T) {
		f := newRepoFixture(t)
		svc := newTestProfileService(f)
		f.guardians.EXPECT().FindByEmail(gomock.Any(), "mom@dojo.test").Return(&academy.Guardian{ID: 2}, nil)
		f.guardians.EXPECT().Students(gomock.Any(), int64(2)).Return([]academy.StudentRef{{ID: 4}}, nil)

		_, err := svc.LinkedStudent(context.Background(), "mom@dojo.test", 9)
		require.Error(t, err)
		assert.True(t, apperrors.IsForbidden(err))
	})
}
