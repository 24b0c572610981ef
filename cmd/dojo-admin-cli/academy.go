package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dojoworks/dojo-admin/internal/bootstrap"
	"github.com/dojoworks/dojo-admin/internal/export"
	"github.com/dojoworks/dojo-admin/internal/service"
)

const defaultAPICheckTimeout = 10 * time.Second

type exportAttendanceOptions struct {
	ClassID int64
	Output  string
}

type checkAPIOptions struct {
	Timeout time.Duration
}

// attendanceSheets loads the attendance sheet for a class.
type attendanceSheets interface {
	Sheet(ctx context.Context, id int64) (*service.AttendanceSheet, error)
}

// apiPinger reports whether the academy API answers.
type apiPinger interface {
	Ping(ctx context.Context) error
}

func parseExportAttendanceFlags(args []string) (exportAttendanceOptions, error) {
	var opts exportAttendanceOptions
	fs := flag.NewFlagSet("export-attendance", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int64Var(&opts.ClassID, "class-id", 0, "Class (aula) ID to export")
	fs.StringVar(&opts.Output, "out", "", "Output file (default: attendance-class-<id>-<date>.xlsx in the current directory)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.ClassID <= 0 {
		return opts, errors.New("--class-id is required")
	}
	return opts, nil
}

func parseCheckAPIFlags(args []string) (checkAPIOptions, error) {
	var opts checkAPIOptions
	fs := flag.NewFlagSet("check-api", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.DurationVar(&opts.Timeout, "timeout", defaultAPICheckTimeout, "Maximum time to wait for the academy API")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.Timeout <= 0 {
		return opts, errors.New("--timeout must be > 0")
	}
	return opts, nil
}

func runExportAttendance(cmdCtx *commandContext, args []string) error {
	opts, err := parseExportAttendanceFlags(args)
	if err != nil {
		return err
	}
	repos, err := bootstrap.ConnectAcademy(cmdCtx.Ctx, cmdCtx.Config.Academy, cmdCtx.Logger)
	if err != nil {
		return err
	}
	classes := service.NewClassService(service.ClassServiceOptions{
		Classes: repos.Classes,
		Groups:  repos.Groups,
		Logger:  cmdCtx.Logger,
	})
	return exportAttendance(cmdCtx, classes, opts)
}

func exportAttendance(cmdCtx *commandContext, classes attendanceSheets, opts exportAttendanceOptions) (err error) {
	sheet, err := classes.Sheet(cmdCtx.Ctx, opts.ClassID)
	if err != nil {
		return fmt.Errorf("load class %d: %w", opts.ClassID, err)
	}

	path := opts.Output
	if path == "" {
		path = export.AttendanceFilename(sheet)
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	if err := export.WriteAttendance(f, sheet); err != nil {
		return fmt.Errorf("write attendance: %w", err)
	}
	return writef(cmdCtx.Out, "Wrote %d row(s) to %s (%d present, %d absent).\n",
		len(sheet.Rows), path, sheet.Summary.Present, sheet.Summary.Absent())
}

func runCheckAPI(cmdCtx *commandContext, args []string) error {
	opts, err := parseCheckAPIFlags(args)
	if err != nil {
		return err
	}
	repos, err := bootstrap.ConnectAcademy(cmdCtx.Ctx, cmdCtx.Config.Academy, cmdCtx.Logger)
	if err != nil {
		return err
	}
	return checkAPI(cmdCtx, repos.Client, cmdCtx.Config.Academy.BaseURL, opts)
}

func checkAPI(cmdCtx *commandContext, api apiPinger, baseURL string, opts checkAPIOptions) error {
	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, opts.Timeout)
	defer cancel()

	start := time.Now()
	if err := api.Ping(ctx); err != nil {
		if writeErr := writef(cmdCtx.Out, "Academy API at %s is unreachable: %v\n", baseURL, err); writeErr != nil {
			return errors.Join(err, writeErr)
		}
		return fmt.Errorf("academy API check failed: %w", err)
	}
	return writef(cmdCtx.Out, "Academy API at %s is reachable (%s).\n", baseURL, time.Since(start).Round(time.Millisecond))
}
