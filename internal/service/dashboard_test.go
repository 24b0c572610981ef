package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

func expectDashboard(f repoFixture, times int) {
	probe := academy.PageRequest{Page: 0, Size: 1}
	wide := academy.FirstPage(academy.MaxPageSize)
	today := academy.NewDate(2026, time.March, 2)
	yesterday := academy.NewDate(2026, time.March, 1)

	f.students.EXPECT().List(gomock.Any(), probe).
		Return(&academy.Page[academy.Student]{TotalElements: 120}, nil).Times(times)
	f.guardians.EXPECT().List(gomock.Any(), probe).
		Return(&academy.Page[academy.Guardian]{TotalElements: 40}, nil).Times(times)
	f.groups.EXPECT().List(gomock.Any(), wide).
		Return(&academy.Page[academy.Group]{
			TotalElements: 3,
			Content:       []academy.Group{{ID: 1, Active: true}, {ID: 2}, {ID: 3, Active: true}},
		}, nil).Times(times)
	f.classes.EXPECT().List(gomock.Any(), wide).
		Return(&academy.Page[academy.Class]{
			TotalElements: 4,
			Content: []academy.Class{
				{ID: 1, Date: today, Status: academy.ClassScheduled},
				{ID: 2, Date: today, Status: academy.ClassCanceled},
				{ID: 3, Date: yesterday, Status: academy.ClassFinished},
				{ID: 4, Date: today, Status: academy.ClassInProgress},
			},
		}, nil).Times(times)
}

func newTestDashboard(f repoFixture) *DashboardService {
	svc := NewDashboardService(DashboardServiceOptions{Repos: f.repos()})
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestDashboardService_Counts(t *testing.T) {
	f := newRepoFixture(t)
	expectDashboard(f, 1)
	svc := newTestDashboard(f)

	c, err := svc.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DashboardCounts{
		Students:     120,
		Guardians:    40,
		Groups:       3,
		ActiveGroups: 2,
		Classes:      4,
		ClassesToday: 2,
	}, *c)
}

func TestDashboardService_Counts_ReturnsCopies(t *testing.T) {
	f := newRepoFixture(t)
	expectDashboard(f, 2)
	svc := newTestDashboard(f)

	a, err := svc.Counts(context.Background())
	require.NoError(t, err)
	a.Students = 0

	b, err := svc.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, b.Students)
}

func TestDashboardService_Counts_ConcurrentCallersSucceed(t *testing.T) {
	f := newRepoFixture(t)
	f.students.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(&academy.Page[academy.Student]{TotalElements: 1}, nil).MinTimes(1).MaxTimes(8)
	f.guardians.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(&academy.Page[academy.Guardian]{}, nil).MinTimes(1).MaxTimes(8)
	f.groups.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(&academy.Page[academy.Group]{}, nil).MinTimes(1).MaxTimes(8)
	f.classes.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(&academy.Page[academy.Class]{}, nil).MinTimes(1).MaxTimes(8)
	svc := newTestDashboard(f)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Counts(context.Background())
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestDashboardService_Counts_Error(t *testing.T) {
	f := newRepoFixture(t)
	f.students.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, apperrors.FromStatus(503, "", nil))
	f.guardians.EXPECT().List(gomock.Any(), gomock.Any()).Return(&academy.Page[academy.Guardian]{}, nil).AnyTimes()
	f.groups.EXPECT().List(gomock.Any(), gomock.Any()).Return(&academy.Page[academy.Group]{}, nil).AnyTimes()
	f.classes.EXPECT().List(gomock.Any(), gomock.Any()).Return(&academy.Page[academy.Class]{}, nil).AnyTimes()
	svc := newTestDashboard(f)

	_, err := svc.Counts(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestDashboardService_Counts_CallerCanceled(t *testing.T) {
	f := newRepoFixture(t)
	release := make(chan struct{})
	f.students.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, academy.PageRequest) (*academy.Page[academy.Student], error) {
			<-release
			return &academy.Page[academy.Student]{}, nil
		})
	f.guardians.EXPECT().List(gomock.Any(), gomock.Any()).Return(&academy.Page[academy.Guardian]{}, nil)
	f.groups.EXPECT().List(gomock.Any(), gomock.Any()).Return(&academy.Page[academy.Group]{}, nil)
	f.classes.EXPECT().List(gomock.Any(), gomock.Any()).Return(&academy.Page[academy.Class]{}, nil)
	svc := newTestDashboard(f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Counts(ctx)
	require.ErrorIs(t, err, context.Canceled)

	close(release)
	// The detached computation still completes; a fresh caller joins or restarts it.
	f.students.EXPECT().List(gomock.Any(), gomock.Any()).Return(&academy.Page[academy.Student]{}, nil).AnyTimes()
	f.guardians.EXPECT().List(gomock.Any(), gomock.Any()).Return(&academy.Page[academy.Guardian]{}, nil).AnyTimes()
	f.groups.EXPECT().List(gomock.Any(), gomock.Any()).Return(&academy.Page[academy.Group]{}, nil).AnyTimes()
	f.classes.EXPECT().List(gomock.Any(), gomock.Any()).Return(&academy.Page[academy.Class]{}, nil).AnyTimes()
	_, err = svc.Counts(context.Background())
	require.NoError(t, err)
}
