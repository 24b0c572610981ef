package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
	"github.com/dojoworks/dojo-admin/internal/mocks"
)

func TestGroupService_AddStudent(t *testing.T) {
	roster := []academy.StudentRef{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bia"}}

	tests := []struct {
		name      string
		group     academy.Group
		studentID int64
		wantCall  bool
		wantErr   string
	}{
		{
			name:      "adds to open group",
			group:     academy.Group{ID: 9, Capacity: 3, Students: roster},
			studentID: 3,
			wantCall:  true,
		},
		{
			name:      "unlimited capacity",
			group:     academy.Group{ID: 9, Capacity: 0, Students: roster},
			studentID: 3,
			wantCall:  true,
		},
		{
			name:      "already enrolled",
			group:     academy.Group{ID: 9, Capacity: 5, Students: roster},
			studentID: 2,
			wantErr:   "The student is already in this group.",
		},
		{
			name:      "full",
			group:     academy.Group{ID: 9, Capacity: 2, Students: roster},
			studentID: 3,
			wantErr:   "This group is full.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockGroupRepository(ctrl)
			svc := NewGroupService(GroupServiceOptions{Groups: repo})

			group := tt.group
			repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&group, nil)
			if tt.wantCall {
				repo.EXPECT().AddStudent(gomock.Any(), int64(9), tt.studentID).Return(nil)
			}

			err := svc.AddStudent(context.Background(), 9, tt.studentID)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsConflict(err))
			assert.Equal(t, tt.wantErr, apperrors.Message(err, ""))
		})
	}
}

func TestGroupService_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewGroupService(GroupServiceOptions{Groups: mocks.NewMockGroupRepository(ctrl)})

	tests := []struct {
		name  string
		req   academy.GroupRequest
		field string
	}{
		{name: "name", req: academy.GroupRequest{Modality: academy.ModalityJudo}, field: "nome"},
		{name: "modality", req: academy.GroupRequest{Name: "Kids"}, field: "modalidade"},
		{name: "capacity", req: academy.GroupRequest{Name: "Kids", Modality: academy.ModalityJudo, Capacity: -1}, field: "capacidade"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.field, apperrors.GetField(err))
		})
	}
}

func TestGroupService_RemoveStudent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGroupRepository(ctrl)
	svc := NewGroupService(GroupServiceOptions{Groups: repo})

	repo.EXPECT().RemoveStudent(gomock.Any(), int64(9), int64(1)).Return(nil)
	require.NoError(t, svc.RemoveStudent(context.Background(), 9, 1))
	assert.True(t, apperrors.IsValidation(svc.RemoveStudent(context.Background(), 9, 0)))
}
