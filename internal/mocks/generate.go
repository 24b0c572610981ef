// Package mocks provides gomock implementations of the academy repository ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	students := mocks.NewMockStudentRepository(ctrl)
//	students.EXPECT().Promote(gomock.Any(), int64(7)).Return(student, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=student_repository_mock.go github.com/dojoworks/dojo-admin/internal/core StudentRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=guardian_repository_mock.go github.com/dojoworks/dojo-admin/internal/core GuardianRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=group_repository_mock.go github.com/dojoworks/dojo-admin/internal/core GroupRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=class_repository_mock.go github.com/dojoworks/dojo-admin/internal/core ClassRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=enrollment_repository_mock.go github.com/dojoworks/dojo-admin/internal/core EnrollmentRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=attendance_repository_mock.go github.com/dojoworks/dojo-admin/internal/core AttendanceRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_repository_mock.go github.com/dojoworks/dojo-admin/internal/core UserRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=api_health_checker_mock.go github.com/dojoworks/dojo-admin/internal/core APIHealthChecker
