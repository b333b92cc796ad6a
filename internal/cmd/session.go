package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/runger/taixiu/internal/config"
	"github.com/runger/taixiu/internal/history"
	applog "github.com/runger/taixiu/internal/log"
	"github.com/runger/taixiu/internal/storage"
)

// session bundles what one command invocation needs: resolved config, paths,
// logger and the opened history store.
type session struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *slog.Logger
	store  *history.Store

	// reported counts degradations already printed as warnings.
	reported int
}

// resolvePaths applies the --data-dir flag on top of the defaults.
func resolvePaths() *config.Paths {
	paths := config.DefaultPaths()
	if dataDirFlag != "" {
		paths.DataDir = dataDirFlag
	}
	return paths
}

// loadConfig reads --config, or the default config file.
func loadConfig(paths *config.Paths) (*config.Config, error) {
	path := configFlag
	if path == "" {
		path = paths.ConfigFile()
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openSession loads config and opens the history store. Logs go to logOut.
func openSession(logOut io.Writer) (*session, error) {
	paths := resolvePaths()
	cfg, err := loadConfig(paths)
	if err != nil {
		return nil, err
	}

	logger := applog.New(&applog.Config{
		Output: logOut,
		Level:  applog.ParseLevel(cfg.Log.Level),
		Format: applog.ParseFormat(cfg.Log.Format),
	})

	backend := openBackend(cfg, paths, logger)
	store := history.Open(backend,
		history.WithMaxLen(cfg.History.MaxLen),
		history.WithLogger(logger),
		history.WithExportDir(paths.DataDir),
	)

	return &session{
		cfg:    cfg,
		paths:  paths,
		logger: logger,
		store:  store,
	}, nil
}

// openBackend opens the configured backend. If SQLite cannot be opened the
// JSON file is used so the session still works.
func openBackend(cfg *config.Config, paths *config.Paths, logger *slog.Logger) storage.Backend {
	jsonPath := paths.HistoryFile(cfg.History.FileName)

	kind, err := storage.ParseKind(cfg.History.Backend)
	if err != nil || kind == storage.KindJSON {
		return storage.NewJSONFile(jsonPath)
	}

	backend, err := storage.Open(kind, paths.DatabaseFile())
	if err != nil {
		logger.Warn("sqlite backend unavailable, using json file",
			"database_path", paths.DatabaseFile(),
			"error", err,
		)
		return storage.NewJSONFile(jsonPath)
	}
	return backend
}

// warnDegraded prints storage problems recorded since the last call.
func (s *session) warnDegraded(w io.Writer) {
	deg := s.store.Degraded()
	for _, d := range deg[s.reported:] {
		switch d.Kind {
		case history.StorageWriteDegraded:
			fmt.Fprintf(w, "%sWarning:%s history not saved: %v\n", colorYellow, colorReset, d.Err)
		case history.StorageReadDegraded:
			fmt.Fprintf(w, "%sWarning:%s could not read history, starting empty: %v\n", colorYellow, colorReset, d.Err)
		default:
			fmt.Fprintf(w, "%sWarning:%s %v\n", colorYellow, colorReset, d)
		}
	}
	s.reported = len(deg)
}

func (s *session) Close() error {
	return s.store.Close()
}
