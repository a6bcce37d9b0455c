package server

import (
	"fmt"
	"net"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/termdeck/termdeck/internal/api/http"
	"github.com/termdeck/termdeck/internal/api/middleware"
	"github.com/termdeck/termdeck/internal/api/ws"
	"github.com/termdeck/termdeck/internal/domain/catalog"
	"github.com/termdeck/termdeck/internal/domain/classify"
	"github.com/termdeck/termdeck/internal/domain/dock"
	"github.com/termdeck/termdeck/internal/domain/drawer"
	"github.com/termdeck/termdeck/internal/domain/reminders"
	"github.com/termdeck/termdeck/internal/domain/usage"
	"github.com/termdeck/termdeck/internal/infrastructure/config"
	"github.com/termdeck/termdeck/internal/infrastructure/logging"
	"github.com/termdeck/termdeck/internal/infrastructure/monitoring"
	"github.com/termdeck/termdeck/internal/infrastructure/resilience"
	"github.com/termdeck/termdeck/internal/providers/bridge"
	"github.com/termdeck/termdeck/internal/providers/desktopfiles"
	"github.com/termdeck/termdeck/internal/providers/icons"
	"github.com/termdeck/termdeck/internal/providers/launch"
	"github.com/termdeck/termdeck/internal/shared/paths"
	"github.com/termdeck/termdeck/internal/shared/types"
)

// Server wraps the HTTP server and its components.
type Server struct {
	cfg    *config.Config
	logger *logging.Logger
	router *gin.Engine

	hub       *ws.Hub
	reloader  *catalog.Reloader
	scheduler *reminders.Scheduler
	pomodoro  *reminders.Pomodoro
}

// New builds a fully wired server from the configuration. On return the
// drawer is warm-started from the snapshot cache (when one exists) and the
// first live catalog load is in flight.
func New(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	// Each server carries its own registry so restarts inside one process
	// never collide on collector registration.
	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetricsWithRegistry(registry)

	hub := ws.NewHub().WithMetrics(metrics)
	go hub.Run()

	classifier, err := buildClassifier(cfg.Classifier)
	if err != nil {
		return nil, err
	}

	composer := drawer.NewComposer().WithMetrics(metrics)
	composer.WithNotify(func(change types.Change) {
		state := composer.State()
		hub.Publish(types.Event{
			Type: types.EventDrawerUpdate,
			Data: gin.H{
				"generation": state.Generation,
				"loading":    state.Loading,
				"cached":     state.Cached,
				"changed":    change.Names(),
			},
		})
		if change.Has(types.ChangeUsage) {
			hub.Publish(types.Event{Type: types.EventUsageUpdate, Data: state.Usage})
		}
	})

	var loader *catalog.Loader
	var dispatcher launch.Dispatcher
	var bridgeClient *bridge.Client

	switch cfg.Registry.Mode {
	case config.ModeBridge:
		bridgeClient = bridge.NewClient(bridge.Config{
			URL:          cfg.Bridge.URL,
			Timeout:      cfg.Bridge.Timeout,
			Retries:      cfg.Bridge.Retries,
			RetryWaitMin: cfg.Bridge.RetryWaitMin,
			RetryWaitMax: cfg.Bridge.RetryWaitMax,
			Breaker: resilience.Config{
				FailureThreshold: uint32(cfg.Bridge.BreakerThreshold),
				Timeout:          cfg.Bridge.BreakerCooldown,
				OnStateChange: func(name string, from, to resilience.State) {
					logger.Warn("circuit breaker state change",
						zap.String("breaker", name),
						zap.String("from", from.String()),
						zap.String("to", to.String()),
					)
				},
			},
		})
		loader = catalog.NewLoader(bridgeClient, classifier, cfg.Registry.SelfIdentity).
			WithUsage(bridgeClient)
		dispatcher = bridgeClient

	default:
		scanner := desktopfiles.NewScanner(desktopDirs(cfg.Registry)...)
		loader = catalog.NewLoader(scanner, classifier, cfg.Registry.SelfIdentity).
			WithIcons(icons.NewResolver(cfg.Icons.Dirs...))
		dispatcher = launch.NewCommandDispatcher()
	}
	loader.WithMetrics(metrics)

	stateDir := cfg.State.Resolve()
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir %s: %w", stateDir, err)
	}

	store := catalog.NewStore(stateDir)
	if cached, err := store.Read(); err == nil && len(cached) > 0 {
		composer.WarmStart(cached)
		logger.Info("drawer warm-started from snapshot cache",
			zap.Int("records", len(cached)),
		)
	}

	reloader := catalog.NewReloader(loader, composer).WithStore(store)
	reloader.Reload()

	dockManager := dock.NewManager(stateDir).WithNotify(func(state types.DockState) {
		hub.Publish(types.Event{Type: types.EventDockUpdate, Data: state})
	})

	tracker := usage.NewTracker()

	scheduler := reminders.NewScheduler().WithFired(func(reminder types.Reminder) {
		hub.Publish(types.Event{Type: types.EventReminderFired, Data: reminder})
	})
	pomodoro := reminders.NewPomodoro().WithPhaseChange(func(status types.PomodoroStatus) {
		hub.Publish(types.Event{Type: types.EventPomodoroPhase, Data: status})
	})

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger.Named("http")),
		middleware.CORS(middleware.DefaultCORSConfig()),
		monitoring.Middleware(metrics),
	)
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := http.NewHandlers(http.Deps{
		Composer:      composer,
		Reloader:      reloader,
		Tracker:       tracker,
		Dock:          dockManager,
		Scheduler:     scheduler,
		Pomodoro:      pomodoro,
		Dispatcher:    dispatcher,
		Hub:           hub,
		Bridge:        bridgeClient,
		Metrics:       metrics,
		Logger:        logger.Named("http"),
		Mode:          cfg.Registry.Mode,
		PomodoroWork:  cfg.Pomodoro.Work,
		PomodoroBreak: cfg.Pomodoro.Break,
	})
	handlers.Register(router)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	wsHandler := ws.NewHandler(hub, logger.Named("ws"))
	router.GET("/stream", wsHandler.HandleConnection)

	logger.Info("daemon wired",
		zap.String("mode", cfg.Registry.Mode),
		zap.String("state_dir", stateDir),
	)

	return &Server{
		cfg:       cfg,
		logger:    logger,
		router:    router,
		hub:       hub,
		reloader:  reloader,
		scheduler: scheduler,
		pomodoro:  pomodoro,
	}, nil
}

// Router exposes the wired engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info("listening", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close releases background resources: the in-flight catalog load, reminder
// timers, and every stream client.
func (s *Server) Close() error {
	s.reloader.Close()
	s.scheduler.Close()
	s.pomodoro.Close()
	s.hub.Close()
	_ = s.logger.Sync()
	return nil
}

// buildClassifier loads the configured rule file, or falls back to the
// built-in rules when none is configured. A configured but unreadable file
// is an operator error and fails startup.
func buildClassifier(cfg config.ClassifierConfig) (*classify.Classifier, error) {
	if cfg.RulesPath == "" {
		return classify.New(), nil
	}
	rules, err := classify.LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("load classifier rules: %w", err)
	}
	classifier, err := classify.NewWithRules(rules)
	if err != nil {
		return nil, fmt.Errorf("compile classifier rules: %w", err)
	}
	return classifier, nil
}

// desktopDirs assembles scan directories in precedence order: per-user
// entries shadow system ones, matching desktop-entry conventions.
func desktopDirs(cfg config.RegistryConfig) []desktopfiles.Dir {
	userDirs := cfg.UserDesktopDirs
	if len(userDirs) == 0 {
		if dir := paths.UserApplicationDir(); dir != "" {
			userDirs = []string{dir}
		}
	}
	systemDirs := cfg.DesktopDirs
	if len(systemDirs) == 0 {
		systemDirs = paths.SystemApplicationDirs()
	}

	dirs := make([]desktopfiles.Dir, 0, len(userDirs)+len(systemDirs))
	for _, dir := range userDirs {
		dirs = append(dirs, desktopfiles.Dir{Path: dir})
	}
	for _, dir := range systemDirs {
		dirs = append(dirs, desktopfiles.Dir{Path: dir, System: true})
	}
	return dirs
}
