// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/taskboard/internal/board"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/config"
	"github.com/runoshun/taskboard/internal/infra/filekv"
	"github.com/runoshun/taskboard/internal/infra/idgen"
	"github.com/runoshun/taskboard/internal/infra/logging"
	"github.com/runoshun/taskboard/internal/infra/memkv"
	"github.com/runoshun/taskboard/internal/infra/sqlitekv"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	DataDir  string // Board data directory (store, config, logs)
	RepoRoot string // Enclosing git repository root, empty outside a repository
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Issues       domain.IssueStore
	ConfigLoader domain.ConfigLoader
	BoardLog     domain.Logger

	// Pointer fields
	ConfigManager *config.Manager
	AppConfig     *domain.Config
	Logger        *slog.Logger // CLI diagnostics on stderr

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the working directory dir.
func New(dir string) (*Container, error) {
	dataDir, repoRoot, err := ResolveDataDir(dir, os.Getenv)
	if err != nil {
		return nil, err
	}
	return NewForDataDir(Config{DataDir: dataDir, RepoRoot: repoRoot})
}

// NewForDataDir creates a Container using an explicit data directory.
func NewForDataDir(cfg Config) (*Container, error) {
	loader := config.NewLoader(cfg.DataDir)
	appConfig, err := loader.Load()
	if err != nil {
		return nil, err
	}

	clock := domain.RealClock{}
	fileLog := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	storage, closer, err := OpenStorage(appConfig.Storage, cfg.DataDir, clock)
	if err != nil {
		_ = fileLog.Close()
		return nil, err
	}

	ids, err := idgen.New(appConfig.Issues.IDStrategy, clock)
	if err != nil {
		_ = fileLog.Close()
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	store := board.New(
		board.WithStorage(storage),
		board.WithKey(appConfig.Storage.Key),
		board.WithIDGenerator(ids),
		board.WithLogger(fileLog),
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	c := &Container{
		Issues:        store,
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(cfg.DataDir),
		AppConfig:     appConfig,
		BoardLog:      fileLog,
		Logger:        logger,
		Config:        cfg,
		closers:       []io.Closer{fileLog},
	}
	if closer != nil {
		c.closers = append(c.closers, closer)
	}
	return c, nil
}

// NewWithDeps creates a Container with explicit dependencies.
// This is useful for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, issues domain.IssueStore, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Container{
		Issues:        issues,
		ConfigLoader:  config.NewLoader(cfg.DataDir),
		ConfigManager: config.NewManager(cfg.DataDir),
		AppConfig:     appConfig,
		BoardLog:      domain.NopLogger{},
		Logger:        logger,
		Config:        cfg,
	}
}

// OpenStorage opens the storage backend selected by cfg.
// The returned closer is nil for backends that hold no resources.
// The "none" backend yields a nil Storage.
func OpenStorage(cfg domain.StorageConfig, dataDir string, clock domain.Clock) (domain.Storage, io.Closer, error) {
	switch cfg.Backend {
	case "", domain.BackendFile:
		dir := cfg.Path
		if dir == "" {
			dir = domain.FileStoreDir(dataDir)
		}
		return filekv.New(dir), nil, nil
	case domain.BackendSQLite:
		path := cfg.Path
		if path == "" {
			path = domain.SQLiteStorePath(dataDir)
		}
		db, err := sqlitekv.Open(path, clock)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return db, db, nil
	case domain.BackendMemory:
		return memkv.New(), nil, nil
	case domain.BackendNone:
		return nil, nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases the storage and log file.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// Columns returns the configured board columns.
func (c *Container) Columns() []domain.Status {
	return c.AppConfig.Columns()
}

// UseCase factory methods

// AddIssueUseCase returns a new AddIssue use case.
func (c *Container) AddIssueUseCase() *usecase.AddIssue {
	return usecase.NewAddIssue(c.Issues, c.BoardLog)
}

// MoveIssueUseCase returns a new MoveIssue use case.
func (c *Container) MoveIssueUseCase() *usecase.MoveIssue {
	return usecase.NewMoveIssue(c.Issues, c.BoardLog)
}

// DeleteIssueUseCase returns a new DeleteIssue use case.
func (c *Container) DeleteIssueUseCase() *usecase.DeleteIssue {
	return usecase.NewDeleteIssue(c.Issues, c.BoardLog)
}

// ListBoardUseCase returns a new ListBoard use case.
func (c *Container) ListBoardUseCase() *usecase.ListBoard {
	return usecase.NewListBoard(c.Issues, c.Columns())
}

// ExportIssuesUseCase returns a new ExportIssues use case.
func (c *Container) ExportIssuesUseCase() *usecase.ExportIssues {
	return usecase.NewExportIssues(c.Issues)
}

// ImportIssuesUseCase returns a new ImportIssues use case.
func (c *Container) ImportIssuesUseCase() *usecase.ImportIssues {
	return usecase.NewImportIssues(c.Issues, c.BoardLog)
}
