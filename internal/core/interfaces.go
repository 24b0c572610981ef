package core

import (
	"context"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// The academy REST API is the only backing store; adapters/academyapi implements these.
// Services depend on these interfaces, not on the HTTP client.

// StudentRepository defines the operations on students.
type StudentRepository interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Student], error)
	GetByID(ctx context.Context, id int64) (*academy.Student, error)
	FindByEmail(ctx context.Context, email string) (*academy.Student, error)
	Create(ctx context.Context, req academy.StudentRequest) (*academy.Student, error)
	Update(ctx context.Context, id int64, req academy.StudentRequest) (*academy.Student, error)
	Delete(ctx context.Context, id int64) error
	Promote(ctx context.Context, id int64) (*academy.Student, error)
	Demote(ctx context.Context, id int64) (*academy.Student, error)
	LinkGuardian(ctx context.Context, studentID, guardianID int64) error
	UnlinkGuardian(ctx context.Context, studentID, guardianID int64) error
	Enrollments(ctx context.Context, id int64) ([]academy.Enrollment, error)
	Attendance(ctx context.Context, id int64) ([]academy.Attendance, error)
}

// GuardianRepository defines the operations on guardians.
type GuardianRepository interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Guardian], error)
	GetByID(ctx context.Context, id int64) (*academy.Guardian, error)
	FindByEmail(ctx context.Context, email string) (*academy.Guardian, error)
	Create(ctx context.Context, req academy.GuardianRequest) (*academy.Guardian, error)
	Update(ctx context.Context, id int64, req academy.GuardianRequest) (*academy.Guardian, error)
	Delete(ctx context.Context, id int64) error
	Students(ctx context.Context, id int64) ([]academy.StudentRef, error)
}

// GroupRepository defines the operations on groups (turmas).
type GroupRepository interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Group], error)
	GetByID(ctx context.Context, id int64) (*academy.Group, error)
	Create(ctx context.Context, req academy.GroupRequest) (*academy.Group, error)
	Update(ctx context.Context, id int64, req academy.GroupRequest) (*academy.Group, error)
	Delete(ctx context.Context, id int64) error
	AddStudent(ctx context.Context, groupID, studentID int64) error
	RemoveStudent(ctx context.Context, groupID, studentID int64) error
}

// ClassRepository defines the operations on class sessions (aulas).
type ClassRepository interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Class], error)
	GetByID(ctx context.Context, id int64) (*academy.Class, error)
	Create(ctx context.Context, req academy.ClassRequest) (*academy.Class, error)
	Update(ctx context.Context, id int64, req academy.ClassRequest) (*academy.Class, error)
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status academy.ClassStatus) (*academy.Class, error)
	Attendance(ctx context.Context, id int64) ([]academy.Attendance, error)
}

// EnrollmentRepository defines the operations on enrollments.
type EnrollmentRepository interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Enrollment], error)
	GetByID(ctx context.Context, id int64) (*academy.Enrollment, error)
	Create(ctx context.Context, req academy.EnrollmentRequest) (*academy.Enrollment, error)
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status academy.EnrollmentStatus) (*academy.Enrollment, error)
}

// AttendanceRepository defines the operations on attendance records.
type AttendanceRepository interface {
	Record(ctx context.Context, req academy.AttendanceRequest) (*academy.Attendance, error)
	Update(ctx context.Context, id int64, req academy.AttendanceRequest) (*academy.Attendance, error)
}

// UserRepository defines the operations on login accounts.
type UserRepository interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.User], error)
	GetByID(ctx context.Context, id int64) (*academy.User, error)
	Create(ctx context.Context, req academy.UserRequest) (*academy.User, error)
	Update(ctx context.Context, id int64, req academy.UserRequest) (*academy.User, error)
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) (*academy.User, error)
}

// APIHealthChecker reports whether the academy API is reachable.
type APIHealthChecker interface {
	Ping(ctx context.Context) error
}
