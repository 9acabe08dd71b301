package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/valodiag/internal/app"
	"github.com/abhisek/valodiag/internal/config"
	"github.com/abhisek/valodiag/internal/logger"
	"github.com/abhisek/valodiag/internal/profile"
	"github.com/abhisek/valodiag/internal/store"
)

// deps are the long-lived objects a command needs.
type deps struct {
	kv       store.KV
	log      *logger.Logger
	profiles *profile.Store
}

func (d *deps) Close() {
	if err := d.kv.Close(); err != nil {
		d.log.Warn("close store", "error", err)
	}
	d.log.Sync()
}

// openDeps builds the logger, opens the configured KV medium and wraps it
// in a profile store. tui routes logs to a file so they do not corrupt the
// screen.
func openDeps(ctx context.Context, tui bool) (*deps, error) {
	log, err := newLogger(tui)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	kv, err := openKV(ctx, cfg.Store, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	profiles := profile.New(kv,
		profile.WithLogger(log),
		profile.WithLocale(cfg.Locale),
	)
	return &deps{kv: kv, log: log, profiles: profiles}, nil
}

func newLogger(tui bool) (*logger.Logger, error) {
	opts := logger.Options{
		Mode:       cfg.Logging.Mode,
		Level:      cfg.Logging.Level,
		OutputPath: cfg.Logging.File,
	}
	if tui && opts.OutputPath == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		opts.OutputPath = filepath.Join(dir, "valodiag.log")
		if err := store.EnsureDir(opts.OutputPath); err != nil {
			return nil, err
		}
	}
	return logger.New(opts)
}

func openKV(ctx context.Context, sc config.StoreConfig, log *logger.Logger) (store.KV, error) {
	switch sc.Backend {
	case config.BackendMemory:
		log.Debug("using in-memory store")
		return store.NewMemory(), nil
	case config.BackendRedis:
		log.Debug("using redis store", "addr", sc.RedisAddr, "db", sc.RedisDB)
		return store.NewRedis(ctx, store.RedisOptions{
			Addr:     sc.RedisAddr,
			Password: sc.RedisPass,
			DB:       sc.RedisDB,
			Prefix:   sc.KeyPrefix,
		})
	default:
		dbPath, err := resolveDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		log.Debug("using sqlite store", "path", dbPath)
		return store.OpenSQLite(dbPath)
	}
}

// runApp opens the store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(app.Options{
		Profiles:  d.profiles,
		ExportDir: cfg.ExportDir,
		Logger:    d.log,
		Splash:    cfg.Splash,
	})
}

// currentUser returns the logged-in user or an error telling the caller
// to log in first.
func currentUser(ctx context.Context, profiles *profile.Store) (string, error) {
	username, ok := profiles.CurrentUser(ctx)
	if !ok {
		return "", errNotLoggedIn
	}
	return username, nil
}
