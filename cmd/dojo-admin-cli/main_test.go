package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
	"github.com/dojoworks/dojo-admin/internal/service"
)

type fakeSessionStore struct {
	sessions []domainauth.Session
	listErr  error
	deleted  int
}

func (f *fakeSessionStore) List(context.Context) ([]domainauth.Session, error) {
	return f.sessions, f.listErr
}

func (f *fakeSessionStore) DeleteAll(context.Context) (int, error) {
	f.deleted = len(f.sessions)
	f.sessions = nil
	return f.deleted, nil
}

func newTestContext(in string) (*commandContext, *bytes.Buffer) {
	var out bytes.Buffer
	return &commandContext{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Out:    &out,
		In:     strings.NewReader(in),
	}, &out
}

func sampleSessions() []domainauth.Session {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return []domainauth.Session{
		{ID: "a", FirstName: "Ana", LastName: "Souza", Email: "ana@dojo.test", Role: domainauth.RoleAdmin, LastSeen: now, ExpiresAt: now.Add(8 * time.Hour)},
		{ID: "b", FirstName: "Caio", Email: "caio@dojo.test", Role: domainauth.RoleInstructor, LastSeen: now.Add(-time.Hour)},
		{ID: "c", Email: "mae.silva@mail.test", Role: domainauth.RoleGuardian},
	}
}

func TestPrintUsageListsCommandsSorted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printUsage(&buf))

	out := buf.String()
	assert.Contains(t, out, "Usage: dojo-admin-cli")
	check := strings.Index(out, "check-api")
	list := strings.Index(out, "list-sessions")
	require.Positive(t, check)
	require.Positive(t, list)
	assert.Less(t, check, list)
}

func TestParseListSessionsFlags(t *testing.T) {
	opts, err := parseListSessionsFlags([]string{"--role", " Admin ", "--email", "DOJO", "--limit", "5"})
	require.NoError(t, err)
	assert.Equal(t, "admin", opts.Role)
	assert.Equal(t, "dojo", opts.Email)
	assert.Equal(t, 5, opts.Limit)

	_, err = parseListSessionsFlags([]string{"--role", "sensei"})
	require.Error(t, err)

	_, err = parseListSessionsFlags([]string{"--limit", "-1"})
	require.Error(t, err)
}

func TestListSessionsFiltersAndLimits(t *testing.T) {
	cmdCtx, out := newTestContext("")
	store := &fakeSessionStore{sessions: sampleSessions()}

	require.NoError(t, listSessions(cmdCtx, store, listSessionsOptions{Email: "dojo.test", Limit: 1}))

	s := out.String()
	assert.Contains(t, s, "Ana Souza")
	assert.Contains(t, s, "Administrator")
	assert.NotContains(t, s, "caio@dojo.test")
	assert.NotContains(t, s, "mae.silva")
	assert.Contains(t, s, "Showing 1 of 2 sessions.")
}

func TestListSessionsByRole(t *testing.T) {
	cmdCtx, out := newTestContext("")
	store := &fakeSessionStore{sessions: sampleSessions()}

	require.NoError(t, listSessions(cmdCtx, store, listSessionsOptions{Role: "guardian"}))
	assert.Contains(t, out.String(), "mae.silva@mail.test")
	assert.Contains(t, out.String(), "1 session(s).")
}

func TestListSessionsEmpty(t *testing.T) {
	cmdCtx, out := newTestContext("")
	require.NoError(t, listSessions(cmdCtx, &fakeSessionStore{}, listSessionsOptions{}))
	assert.Contains(t, out.String(), "No sessions found.")
}

func TestListSessionsStoreError(t *testing.T) {
	cmdCtx, _ := newTestContext("")
	err := listSessions(cmdCtx, &fakeSessionStore{listErr: errors.New("boom")}, listSessionsOptions{})
	require.ErrorContains(t, err, "boom")
}

func TestClearSessionsDryRunKeepsSessions(t *testing.T) {
	cmdCtx, out := newTestContext("")
	store := &fakeSessionStore{sessions: sampleSessions()}

	require.NoError(t, clearSessions(cmdCtx, store, clearSessionsOptions{DryRun: true}))
	assert.Contains(t, out.String(), "3 session(s) would be removed")
	assert.Len(t, store.sessions, 3)
}

func TestClearSessionsWithYes(t *testing.T) {
	cmdCtx, out := newTestContext("")
	store := &fakeSessionStore{sessions: sampleSessions()}

	require.NoError(t, clearSessions(cmdCtx, store, clearSessionsOptions{Yes: true}))
	assert.Equal(t, 3, store.deleted)
	assert.Contains(t, out.String(), "Removed 3 session(s).")
}

func TestClearSessionsPromptDeclined(t *testing.T) {
	cmdCtx, out := newTestContext("n\n")
	store := &fakeSessionStore{sessions: sampleSessions()}

	err := clearSessions(cmdCtx, store, clearSessionsOptions{})
	require.ErrorContains(t, err, "aborted")
	assert.Zero(t, store.deleted)
	assert.Contains(t, out.String(), "every signed-in user will be signed out")
	assert.Contains(t, out.String(), "About to clear sessions for 3 session(s).")
}

func TestClearSessionsPromptAccepted(t *testing.T) {
	cmdCtx, _ := newTestContext("yes\n")
	store := &fakeSessionStore{sessions: sampleSessions()}

	require.NoError(t, clearSessions(cmdCtx, store, clearSessionsOptions{}))
	assert.Equal(t, 3, store.deleted)
}

type fakeSheets struct {
	sheet *service.AttendanceSheet
	err   error
}

func (f fakeSheets) Sheet(context.Context, int64) (*service.AttendanceSheet, error) {
	return f.sheet, f.err
}

func TestParseExportAttendanceFlagsRequiresClass(t *testing.T) {
	_, err := parseExportAttendanceFlags(nil)
	require.ErrorContains(t, err, "--class-id")

	opts, err := parseExportAttendanceFlags([]string{"--class-id", "7", "--out", "x.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), opts.ClassID)
	assert.Equal(t, "x.xlsx", opts.Output)
}

func TestExportAttendanceWritesWorkbook(t *testing.T) {
	date, err := academy.ParseDate("2026-03-02")
	require.NoError(t, err)
	records := []academy.Attendance{{ID: 1, ClassID: 7, StudentID: 1, Present: true}}
	sheet := &service.AttendanceSheet{
		Class: &academy.Class{ID: 7, GroupName: "Kids", Date: date, Status: academy.ClassFinished},
		Rows: []service.SheetRow{
			{Student: academy.StudentRef{ID: 1, Name: "Bia"}, Record: &records[0]},
			{Student: academy.StudentRef{ID: 2, Name: "Léo"}},
		},
		Records: records,
		Summary: academy.Summarize(records),
	}

	cmdCtx, out := newTestContext("")
	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	require.NoError(t, exportAttendance(cmdCtx, fakeSheets{sheet: sheet}, exportAttendanceOptions{ClassID: 7, Output: path}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, out.String(), "Wrote 2 row(s)")
	assert.Contains(t, out.String(), "1 present, 0 absent")
}

func TestExportAttendanceLoadError(t *testing.T) {
	cmdCtx, _ := newTestContext("")
	err := exportAttendance(cmdCtx, fakeSheets{err: errors.New("not found")}, exportAttendanceOptions{ClassID: 9})
	require.ErrorContains(t, err, "load class 9")
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestCheckAPI(t *testing.T) {
	cmdCtx, out := newTestContext("")
	require.NoError(t, checkAPI(cmdCtx, fakePinger{}, "http://api.test", checkAPIOptions{Timeout: time.Second}))
	assert.Contains(t, out.String(), "is reachable")

	cmdCtx, out = newTestContext("")
	err := checkAPI(cmdCtx, fakePinger{err: errors.New("connection refused")}, "http://api.test", checkAPIOptions{Timeout: time.Second})
	require.ErrorContains(t, err, "connection refused")
	assert.Contains(t, out.String(), "is unreachable")
}

func TestParseCheckAPIFlags(t *testing.T) {
	opts, err := parseCheckAPIFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultAPICheckTimeout, opts.Timeout)

	_, err = parseCheckAPIFlags([]string{"--timeout", "0s"})
	require.Error(t, err)
}
