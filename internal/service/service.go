// Package service holds the dashboard's use cases. Services depend on the
// repository ports in internal/core and never on adapters or transport.
package service

import (
	"io"
	"log/slog"

	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

func componentLogger(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.With("component", component)
}

func requireID(id int64, what string) error {
	if id <= 0 {
		return apperrors.Validationf("A valid %s is required.", what)
	}
	return nil
}
