package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dojoworks/dojo-admin/config"
	"github.com/dojoworks/dojo-admin/internal/adapters/academyapi"
)

// AcademyRepos groups the API-backed repositories.
type AcademyRepos struct {
	Client      *academyapi.Client
	Students    *academyapi.StudentRepo
	Guardians   *academyapi.GuardianRepo
	Groups      *academyapi.GroupRepo
	Classes     *academyapi.ClassRepo
	Enrollments *academyapi.EnrollmentRepo
	Attendance  *academyapi.AttendanceRepo
	Users       *academyapi.UserRepo
}

// ConnectAcademy builds the academy API client and its repositories.
// No request is made; use Client.Ping to check reachability.
func ConnectAcademy(ctx context.Context, cfg config.AcademyConfig, logger *slog.Logger) (*AcademyRepos, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var extractor *academyapi.MessageExtractor
	if len(cfg.MessagePaths) > 0 {
		ex, err := academyapi.NewMessageExtractor(cfg.MessagePaths)
		if err != nil {
			return nil, fmt.Errorf("academy error message paths: %w", err)
		}
		extractor = ex
	}

	tokens := academyapi.TokenConfig{
		Token:        cfg.Token,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}

	client, err := academyapi.NewClient(academyapi.ClientOptions{
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		TokenSource: tokens.TokenSource(ctx),
		Logger:      logger,
		Extractor:   extractor,
	})
	if err != nil {
		return nil, fmt.Errorf("academy API client: %w", err)
	}

	auth := "none"
	switch {
	case cfg.UsesClientCredentials():
		auth = "client_credentials"
	case cfg.Token != "":
		auth = "static_token"
	}
	logger.InfoContext(ctx, "academy API configured",
		"base_url", cfg.BaseURL,
		"timeout", cfg.Timeout,
		"auth", auth,
		"page_size", cfg.PageSize)

	return &AcademyRepos{
		Client:      client,
		Students:    academyapi.NewStudentRepo(client),
		Guardians:   academyapi.NewGuardianRepo(client),
		Groups:      academyapi.NewGroupRepo(client),
		Classes:     academyapi.NewClassRepo(client),
		Enrollments: academyapi.NewEnrollmentRepo(client),
		Attendance:  academyapi.NewAttendanceRepo(client),
		Users:       academyapi.NewUserRepo(client),
	}, nil
}
