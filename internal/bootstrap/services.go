package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dojoworks/dojo-admin/config"
	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/service"
)

const defaultShutdownTimeout = 10 * time.Second

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Students    *service.StudentService
	Guardians   *service.GuardianService
	Groups      *service.GroupService
	Classes     *service.ClassService
	Enrollments *service.EnrollmentService
	Attendance  *service.AttendanceService
	Users       *service.UserService
	Options     *service.OptionService
	Dashboard   *service.DashboardService
	Profile     *service.ProfileService
	Auth        *service.AuthService
	Health      core.APIHealthChecker
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	Academy     *AcademyRepos
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires domain services over the academy repositories.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil || deps.Academy == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}
	repos := deps.Academy

	optionRepos := service.OptionRepos{
		Students:  repos.Students,
		Groups:    repos.Groups,
		Guardians: repos.Guardians,
		Classes:   repos.Classes,
	}

	return ServiceContainer{
		Students:    service.NewStudentService(service.StudentServiceOptions{Students: repos.Students, Logger: logger}),
		Guardians:   service.NewGuardianService(service.GuardianServiceOptions{Guardians: repos.Guardians, Logger: logger}),
		Groups:      service.NewGroupService(service.GroupServiceOptions{Groups: repos.Groups, Logger: logger}),
		Classes:     service.NewClassService(service.ClassServiceOptions{Classes: repos.Classes, Groups: repos.Groups, Logger: logger}),
		Enrollments: service.NewEnrollmentService(service.EnrollmentServiceOptions{Enrollments: repos.Enrollments, Logger: logger}),
		Attendance: service.NewAttendanceService(service.AttendanceServiceOptions{
			Attendance: repos.Attendance,
			Classes:    repos.Classes,
			Logger:     logger,
		}),
		Users:     service.NewUserService(service.UserServiceOptions{Users: repos.Users, Logger: logger}),
		Options:   service.NewOptionService(service.OptionServiceOptions{Repos: optionRepos, Size: cfg.Academy.OptionListSize}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{Repos: optionRepos, Logger: logger}),
		Profile: service.NewProfileService(service.ProfileServiceOptions{
			Students:  repos.Students,
			Guardians: repos.Guardians,
			Logger:    logger,
		}),
		Auth: BuildAuthService(AuthConfig{
			Auth:        cfg.Auth,
			Session:     cfg.Session,
			Redis:       cfg.Redis,
			RedisClient: deps.RedisClient,
			Logger:      logger,
		}),
		Health: repos.Client,
	}
}

// ServiceOrchestrationConfig contains dependencies for running the dashboard until shutdown.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown starts the HTTP server and blocks until a signal or a server error.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	errCh := make(chan error, 1)
	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
		ErrCh:    errCh,
	})

	timeout := cfg.Config.HTTP.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return waitForShutdown(shutdownConfig{
		errCh:      errCh,
		httpServer: server,
		timeout:    timeout,
		logger:     logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	errCh      <-chan error
	httpServer *http.Server
	timeout    time.Duration
	logger     *slog.Logger
}

// waitForShutdown waits for shutdown signal or server error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		cfg.logger.Info("shutting down dashboard...")
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("server error", "error", err)
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop drains in-flight requests within the configured timeout.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.httpServer == nil {
		return nil
	}
	return ShutdownHTTPServer(ShutdownConfig{
		Context: context.Background(),
		Server:  cfg.httpServer,
		Timeout: cfg.timeout,
		Logger:  cfg.logger,
	})
}
