package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dojoworks/dojo-admin/internal/bootstrap"
	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
)

// sessionStore is the part of the redis session store the CLI needs.
type sessionStore interface {
	List(ctx context.Context) ([]domainauth.Session, error)
	DeleteAll(ctx context.Context) (int, error)
}

type listSessionsOptions struct {
	Role  string
	Email string
	Limit int
}

type clearSessionsOptions struct {
	DryRun bool
	Yes    bool
}

func parseListSessionsFlags(args []string) (listSessionsOptions, error) {
	var opts listSessionsOptions
	fs := flag.NewFlagSet("list-sessions", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Role, "role", "", "Only show sessions with this role (admin, coordinator, instructor, student, guardian)")
	fs.StringVar(&opts.Email, "email", "", "Only show sessions whose e-mail contains this text")
	fs.IntVar(&opts.Limit, "limit", 0, "Maximum sessions to print (0 = all)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Role = strings.ToLower(strings.TrimSpace(opts.Role))
	opts.Email = strings.ToLower(strings.TrimSpace(opts.Email))
	if opts.Role != "" && !domainauth.Role(opts.Role).Valid() {
		return opts, fmt.Errorf("unknown role %q", opts.Role)
	}
	if opts.Limit < 0 {
		return opts, errors.New("--limit must be >= 0")
	}
	return opts, nil
}

func parseClearSessionsFlags(args []string) (clearSessionsOptions, error) {
	var opts clearSessionsOptions
	fs := flag.NewFlagSet("clear-sessions", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Print how many sessions would be removed without deleting them")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func runListSessions(cmdCtx *commandContext, args []string) error {
	opts, err := parseListSessionsFlags(args)
	if err != nil {
		return err
	}
	return withSessionStore(cmdCtx, func(store sessionStore) error {
		return listSessions(cmdCtx, store, opts)
	})
}

func runClearSessions(cmdCtx *commandContext, args []string) error {
	opts, err := parseClearSessionsFlags(args)
	if err != nil {
		return err
	}
	return withSessionStore(cmdCtx, func(store sessionStore) error {
		return clearSessions(cmdCtx, store, opts)
	})
}

func withSessionStore(cmdCtx *commandContext, fn func(sessionStore) error) (err error) {
	client, err := bootstrap.ConnectRedis(cmdCtx.Ctx, cmdCtx.Config.Redis, cmdCtx.Logger)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close redis: %w", cerr))
		}
	}()
	return fn(bootstrap.NewSessionStore(client, cmdCtx.Config.Redis, cmdCtx.Config.Session))
}

func listSessions(cmdCtx *commandContext, store sessionStore, opts listSessionsOptions) error {
	sessions, err := store.List(cmdCtx.Ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	matched := filterSessions(sessions, opts)
	if len(matched) == 0 {
		return writeln(cmdCtx.Out, "No sessions found.")
	}

	shown := matched
	if opts.Limit > 0 && len(shown) > opts.Limit {
		shown = shown[:opts.Limit]
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 0, 2, ' ', 0)
	if err := writeln(tw, "USER\tE-MAIL\tROLE\tLAST SEEN\tEXPIRES"); err != nil {
		return err
	}
	for _, s := range shown {
		if err := writef(tw, "%s\t%s\t%s\t%s\t%s\n",
			s.DisplayName(), s.Email, s.Role.Label(), formatTime(s.LastSeen), formatTime(s.ExpiresAt)); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(shown) < len(matched) {
		return writef(cmdCtx.Out, "\nShowing %d of %d sessions.\n", len(shown), len(matched))
	}
	return writef(cmdCtx.Out, "\n%d session(s).\n", len(matched))
}

func filterSessions(sessions []domainauth.Session, opts listSessionsOptions) []domainauth.Session {
	out := make([]domainauth.Session, 0, len(sessions))
	for _, s := range sessions {
		if opts.Role != "" && string(s.Role) != opts.Role {
			continue
		}
		if opts.Email != "" && !strings.Contains(strings.ToLower(s.Email), opts.Email) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

type clearSessionsConfirm struct {
	opts  clearSessionsOptions
	count int
}

func (c clearSessionsConfirm) IsDryRun() bool { return c.opts.DryRun }
func (c clearSessionsConfirm) IsYes() bool    { return c.opts.Yes }
func (c clearSessionsConfirm) GetWarning() string {
	return "WARNING: every signed-in user will be signed out of the dashboard."
}

func (c clearSessionsConfirm) GetTarget() string {
	return fmt.Sprintf("%d session(s)", c.count)
}

func clearSessions(cmdCtx *commandContext, store sessionStore, opts clearSessionsOptions) error {
	sessions, err := store.List(cmdCtx.Ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		return writeln(cmdCtx.Out, "No sessions to clear.")
	}
	if opts.DryRun {
		return writef(cmdCtx.Out, "Dry run: %d session(s) would be removed.\n", len(sessions))
	}
	if err := confirmAction(cmdCtx, clearSessionsConfirm{opts: opts, count: len(sessions)}, "clear sessions"); err != nil {
		return err
	}

	removed, err := store.DeleteAll(cmdCtx.Ctx)
	if err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	cmdCtx.Logger.InfoContext(cmdCtx.Ctx, "sessions cleared", "removed", removed)
	return writef(cmdCtx.Out, "Removed %d session(s).\n", removed)
}
