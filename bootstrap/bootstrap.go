// Package bootstrap wires all dependencies and starts the application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/artpar/artistdesk/adapters/clock"
	"github.com/artpar/artistdesk/adapters/hasher"
	"github.com/artpar/artistdesk/adapters/idgen"
	"github.com/artpar/artistdesk/adapters/metrics"
	"github.com/artpar/artistdesk/adapters/sqlite"
	"github.com/artpar/artistdesk/app"
	"github.com/artpar/artistdesk/config"
	"github.com/artpar/artistdesk/web"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// sessionSweepInterval controls how often expired sessions are purged.
const sessionSweepInterval = time.Hour

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	Config     *config.Config
	Holder     *config.Holder
	DB         *sqlite.DB
	HTTPServer *http.Server
	Metrics    *metrics.Collector

	sessions *sqlite.SessionStore
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates and initializes the application from a loaded configuration.
func New(cfg *config.Config) (*App, error) {
	return build(cfg, nil)
}

// NewWithHotReload creates the application with a config file watcher.
// The file is reloaded on change and on SIGHUP; reloadable fields take
// effect without a restart.
func NewWithHotReload(path string) (*App, error) {
	bootLogger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	holder, err := config.NewHolder(path, bootLogger)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	a, err := build(holder.Get(), holder)
	if err != nil {
		holder.Stop()
		return nil, err
	}

	holder.OnChange(func(cfg *config.Config) {
		a.Metrics.ConfigReloads.Inc()
		a.applyConfig(cfg)
	})

	if err := holder.WatchFile(); err != nil {
		a.Logger.Warn().Err(err).Msg("config file watch unavailable")
	}
	go a.watchReloadSignal()

	return a, nil
}

func build(cfg *config.Config, holder *config.Holder) (*App, error) {
	logger := newLogger(cfg.Logging)
	logger.Info().Msg("initializing artistdesk")

	a := &App{
		Logger:  logger,
		Config:  cfg,
		Holder:  holder,
		Metrics: metrics.New(),
		stopCh:  make(chan struct{}),
	}

	if err := a.initDatabase(); err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := a.initHTTPServer(); err != nil {
		a.DB.Close()
		return nil, fmt.Errorf("init http server: %w", err)
	}

	return a, nil
}

func (a *App) initDatabase() error {
	db, err := sqlite.Open(a.Config.Database.DSN)
	if err != nil {
		return err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	a.DB = db
	a.sessions = sqlite.NewSessionStore(db)
	a.Logger.Info().Str("dsn", a.Config.Database.DSN).Msg("database initialized")
	return nil
}

func (a *App) initHTTPServer() error {
	cfg := a.Config

	users := sqlite.NewUserStore(a.DB)
	artists := sqlite.NewArtistStore(a.DB)
	musicStore := sqlite.NewMusicStore(a.DB)

	artistIDs := idgen.NewPrefixed("art_")
	transfer := app.NewTransferService(artists, artistIDs, clock.Real{}, a.Metrics, a.Logger)

	handler := web.NewHandler(web.Deps{
		Users:     users,
		Artists:   artists,
		Music:     musicStore,
		Sessions:  a.sessions,
		Transfer:  transfer,
		Hasher:    hasher.NewBcrypt(cfg.Auth.BcryptCost),
		UserIDs:   idgen.NewPrefixed("usr_"),
		ArtistIDs: artistIDs,
		MusicIDs:  idgen.NewPrefixed("mus_"),
		Metrics:   a.Metrics,
		Logger:    a.Logger,

		SessionLifetime: cfg.Auth.SessionLifetime,
		CookieSecure:    cfg.Auth.CookieSecure,
	})

	root := chi.NewRouter()
	root.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.Metrics.Enabled {
		root.Method(http.MethodGet, cfg.Metrics.Path, promhttp.Handler())
		a.Logger.Info().Str("path", cfg.Metrics.Path).Msg("prometheus metrics enabled")
	}
	root.Mount("/", handler.Router())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	a.HTTPServer = &http.Server{
		Addr:         addr,
		Handler:      root,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	a.Logger.Info().Str("addr", addr).Msg("http server configured")
	return nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	go a.sweepSessions()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().Str("addr", a.HTTPServer.Addr).Msg("starting http server")
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a.stopOnce.Do(func() { close(a.stopCh) })

	if a.Holder != nil {
		a.Holder.Stop()
	}

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error().Err(err).Msg("http server shutdown error")
		}
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("database close error")
		}
	}

	a.Logger.Info().Msg("shutdown complete")
	return nil
}

// applyConfig picks up the reloadable fields of a fresh configuration.
// Server address, database and metrics wiring need a restart.
func (a *App) applyConfig(cfg *config.Config) {
	a.Config = cfg

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}
}

// watchReloadSignal reloads the configuration on SIGHUP.
func (a *App) watchReloadSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP)

	for {
		select {
		case <-a.stopCh:
			signal.Stop(ch)
			return
		case <-ch:
			a.Logger.Info().Msg("received SIGHUP, reloading config")
			if err := a.Holder.Reload(); err != nil {
				a.Metrics.ConfigReloadErrors.Inc()
				a.Logger.Error().Err(err).Msg("config reload failed")
			}
		}
	}
}

// sweepSessions periodically deletes expired sessions.
func (a *App) sweepSessions() {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			n, err := a.sessions.DeleteExpired(context.Background())
			if err != nil {
				a.Logger.Error().Err(err).Msg("session sweep failed")
				continue
			}
			if n > 0 {
				a.Logger.Debug().Int64("deleted", n).Msg("expired sessions purged")
			}
		}
	}
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
