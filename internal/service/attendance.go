package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

// AttendanceServiceOptions groups dependencies for AttendanceService.
type AttendanceServiceOptions struct {
	Attendance core.AttendanceRepository // Required
	Classes    core.ClassRepository      // Required
	Logger     *slog.Logger
}

// AttendanceService records presence and absence per class.
type AttendanceService struct {
	attendance core.AttendanceRepository
	classes    core.ClassRepository
	logger     *slog.Logger
}

// NewAttendanceService constructs a new AttendanceService.
func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	if opts.Attendance == nil {
		panic("AttendanceRepository is required")
	}
	if opts.Classes == nil {
		panic("ClassRepository is required")
	}
	return &AttendanceService{
		attendance: opts.Attendance,
		classes:    opts.Classes,
		logger:     componentLogger(opts.Logger, "attendance_service"),
	}
}

// MarkInput describes one attendance mark. RecordID > 0 updates an existing record.
type MarkInput struct {
	ClassID   int64
	StudentID int64
	RecordID  int64
	Present   bool
	Note      string
}

// MsgClassClosedForAttendance is the message shown when a class cannot take attendance.
const MsgClassClosedForAttendance = "Attendance can only be recorded for classes in progress or finished."

// Mark records or corrects a student's attendance for a class.
func (s *AttendanceService) Mark(ctx context.Context, in MarkInput) (*academy.Attendance, error) {
	if err := requireID(in.ClassID, "class"); err != nil {
		return nil, err
	}
	if err := requireID(in.StudentID, "student"); err != nil {
		return nil, err
	}

	class, err := s.classes.GetByID(ctx, in.ClassID)
	if err != nil {
		return nil, err
	}
	if !class.Status.AcceptsAttendance() {
		return nil, apperrors.Validation(MsgClassClosedForAttendance)
	}

	req := academy.AttendanceRequest{
		ClassID:   in.ClassID,
		StudentID: in.StudentID,
		Present:   in.Present,
		Note:      strings.TrimSpace(in.Note),
	}

	var rec *academy.Attendance
	if in.RecordID > 0 {
		rec, err = s.attendance.Update(ctx, in.RecordID, req)
	} else {
		rec, err = s.attendance.Record(ctx, req)
	}
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "attendance marked",
		"class_id", in.ClassID, "student_id", in.StudentID, "present", in.Present, "record_id", rec.ID)
	return rec, nil
}
