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

func TestGuardianService_Detail_FallsBackToEmbedded(t *testing.T) {
	f := newRepoFixture(t)
	svc := NewGuardianService(GuardianServiceOptions{Guardians: f.guardians})

	f.guardians.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&academy.Guardian{
		ID: 2, Students: []academy.StudentRef{{ID: 4, Name: "Leo"}},
	}, nil)
	f.guardians.EXPECT().Students(gomock.Any(), int64(2)).Return(nil, errors.New("down"))

	d, err := svc.Detail(context.Background(), 2)
	require.NoError(t, err)
	require.NoError(t, d.StudentsErr)
	assert.Equal(t, []academy.StudentRef{{ID: 4, Name: "Leo"}}, d.Students)
}

func TestGuardianService_Detail_KeepsErrorWithoutEmbedded(t *testing.T) {
	f := newRepoFixture(t)
	svc := NewGuardianService(GuardianServiceOptions{Guardians: f.guardians})

	f.guardians.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&academy.Guardian{ID: 2}, nil)
	f.guardians.EXPECT().Students(gomock.Any(), int64(2)).Return(nil, errors.New("down"))

	d, err := svc.Detail(context.Background(), 2)
	require.NoError(t, err)
	assert.Error(t, d.StudentsErr)
}

func TestGuardianService_Create(t *testing.T) {
	f := newRepoFixture(t)
	svc := NewGuardianService(GuardianServiceOptions{Guardians: f.guardians})

	_, err := svc.Create(context.Background(), academy.GuardianRequest{Name: "Rosa", Relationship: "vizinha"})
	assert.Equal(t, "parentesco", apperrors.GetField(err))

	f.guardians.EXPECT().
		Create(gomock.Any(), academy.GuardianRequest{Name: "Rosa", Email: "rosa@dojo.test", Relationship: "MAE"}).
		Return(&academy.Guardian{ID: 6}, nil)
	gd, err := svc.Create(context.Background(), academy.GuardianRequest{
		Name: " Rosa ", Email: "ROSA@dojo.test", Relationship: "mae",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), gd.ID)
}
