package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

// ClassServiceOptions groups dependencies for ClassService.
type ClassServiceOptions struct {
	Classes core.ClassRepository // Required
	Groups  core.GroupRepository // Required for attendance sheets
	Logger  *slog.Logger
}

// ClassService handles class sessions (aulas).
type ClassService struct {
	classes core.ClassRepository
	groups  core.GroupRepository
	logger  *slog.Logger
}

// NewClassService constructs a new ClassService.
func NewClassService(opts ClassServiceOptions) *ClassService {
	if opts.Classes == nil {
		panic("ClassRepository is required")
	}
	if opts.Groups == nil {
		panic("GroupRepository is required")
	}
	return &ClassService{
		classes: opts.Classes,
		groups:  opts.Groups,
		logger:  componentLogger(opts.Logger, "class_service"),
	}
}

// List returns one server page of classes.
func (s *ClassService) List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Class], error) {
	return s.classes.List(ctx, req)
}

// Get returns one class.
func (s *ClassService) Get(ctx context.Context, id int64) (*academy.Class, error) {
	if err := requireID(id, "class"); err != nil {
		return nil, err
	}
	return s.classes.GetByID(ctx, id)
}

// Create schedules a class.
func (s *ClassService) Create(ctx context.Context, req academy.ClassRequest) (*academy.Class, error) {
	req = normalizeClass(req)
	if err := validateClass(req); err != nil {
		return nil, err
	}
	c, err := s.classes.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "class created", "class_id", c.ID, "group_id", c.GroupID)
	return c, nil
}

// Update replaces a class record.
func (s *ClassService) Update(ctx context.Context, id int64, req academy.ClassRequest) (*academy.Class, error) {
	if err := requireID(id, "class"); err != nil {
		return nil, err
	}
	req = normalizeClass(req)
	if err := validateClass(req); err != nil {
		return nil, err
	}
	return s.classes.Update(ctx, id, req)
}

// Delete removes a class.
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "class"); err != nil {
		return err
	}
	if err := s.classes.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "class deleted", "class_id", id)
	return nil
}

// SetStatus moves a class to one of the fixed statuses.
func (s *ClassService) SetStatus(ctx context.Context, id int64, raw string) (*academy.Class, error) {
	if err := requireID(id, "class"); err != nil {
		return nil, err
	}
	status, ok := academy.ParseClassStatus(raw)
	if !ok {
		return nil, apperrors.ValidationField("status", "Unknown class status.")
	}
	c, err := s.classes.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "class status changed", "class_id", id, "status", status)
	return c, nil
}

// SheetRow is one roster student with their attendance record, if any.
type SheetRow struct {
	Student academy.StudentRef
	Record  *academy.Attendance
}

// Marked reports whether attendance was recorded for the row.
func (r SheetRow) Marked() bool { return r.Record != nil }

// AttendanceSheet is the class attendance view: the group roster merged with recorded attendance.
type AttendanceSheet struct {
	Class   *academy.Class
	Group   *academy.Group
	Rows    []SheetRow
	Records []academy.Attendance
	Summary academy.AttendanceSummary
}

// Sheet fetches the class and its attendance concurrently, then the group roster.
func (s *ClassService) Sheet(ctx context.Context, id int64) (*AttendanceSheet, error) {
	if err := requireID(id, "class"); err != nil {
		return nil, err
	}

	sheet := &AttendanceSheet{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.classes.GetByID(gctx, id)
		sheet.Class = c
		return err
	})
	g.Go(func() error {
		recs, err := s.classes.Attendance(gctx, id)
		sheet.Records = recs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	group, err := s.groups.GetByID(ctx, sheet.Class.GroupID)
	if err != nil {
		return nil, err
	}
	sheet.Group = group
	sheet.Rows = mergeRoster(group.Students, sheet.Records)
	sheet.Summary = academy.Summarize(sheet.Records)
	return sheet, nil
}

// mergeRoster lists every roster student plus any recorded student no longer on the roster, by name.
func mergeRoster(roster []academy.StudentRef, records []academy.Attendance) []SheetRow {
	byStudent := make(map[int64]*academy.Attendance, len(records))
	for i := range records {
		byStudent[records[i].StudentID] = &records[i]
	}

	rows := make([]SheetRow, 0, len(roster))
	seen := make(map[int64]struct{}, len(roster))
	for _, st := range roster {
		seen[st.ID] = struct{}{}
		rows = append(rows, SheetRow{Student: st, Record: byStudent[st.ID]})
	}
	for i := range records {
		rec := &records[i]
		if _, ok := seen[rec.StudentID]; ok {
			continue
		}
		seen[rec.StudentID] = struct{}{}
		rows = append(rows, SheetRow{
			Student: academy.StudentRef{ID: rec.StudentID, Name: rec.StudentName},
			Record:  rec,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].Student.Name) < strings.ToLower(rows[j].Student.Name)
	})
	return rows
}

func normalizeClass(req academy.ClassRequest) academy.ClassRequest {
	req.StartTime = strings.TrimSpace(req.StartTime)
	req.EndTime = strings.TrimSpace(req.EndTime)
	req.Description = strings.TrimSpace(req.Description)
	if req.Status == "" {
		req.Status = academy.ClassScheduled
	}
	return req
}

func validateClass(req academy.ClassRequest) error {
	if req.GroupID <= 0 {
		return apperrors.ValidationField("turmaId", "Choose a group.")
	}
	if req.Date.IsZero() {
		return apperrors.ValidationField("data", "Date is required.")
	}
	if !req.Status.Valid() {
		return apperrors.ValidationField("status", "Unknown class status.")
	}
	// HH:MM strings compare correctly as text.
	if req.StartTime != "" && req.EndTime != "" && req.EndTime <= req.StartTime {
		return apperrors.ValidationField("horaFim", "End time must be after the start time.")
	}
	return nil
}
