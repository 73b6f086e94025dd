package cmd

import (
	"context"
	"errors"
	"fmt"

	adapterclock "tempo/internal/adapters/clock"
	adapternotify "tempo/internal/adapters/notify"
	adapterpostgres "tempo/internal/adapters/postgres"
	adapterslot "tempo/internal/adapters/slot"
	adaptersound "tempo/internal/adapters/sound"
	adapterstorage "tempo/internal/adapters/storage"
	"tempo/internal/config"
	"tempo/internal/logging"
	"tempo/internal/ports"
	"tempo/internal/services"
)

const appName = "tempo"

// Container holds all dependencies for the application
type Container struct {
	// Services
	NotificationService *services.NotificationService
	SessionService      *services.SessionService
	SettingsService     *services.SettingsService

	// Internal
	clock       ports.Clock
	localRepo   *adapterstorage.SQLiteRepository
	sessionRepo ports.SessionRepository
	slots       ports.KeyValueSlot
}

// EngineOptions customizes a timer engine built by the container
type EngineOptions struct {
	// Alerter receives blocking user-facing messages; nil leaves them to event subscribers
	Alerter ports.Alerter

	// Namespace isolates the persisted timer, e.g. per SSH user
	Namespace string

	// Notifications overrides the container's notification service
	Notifications *services.NotificationService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(ctx context.Context, settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	localRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	var sessionRepo ports.SessionRepository = localRepo
	if settings.DatabaseURL != "" {
		pgStore, err := adapterpostgres.Open(ctx, settings.DatabaseURL)
		if err != nil {
			localRepo.Close()
			return nil, err
		}
		logging.Logger.Info("Recording sessions to Postgres")
		sessionRepo = pgStore
	}

	slots, err := newSlotBackend(settings.SlotBackend, localRepo)
	if err != nil {
		closeAll(sessionRepo, localRepo)
		return nil, err
	}

	notificationService := services.NewNotificationService(
		adapternotify.NewDesktop(appName),
		adaptersound.NewPlayer(),
		settings.NotificationsOn(),
	)

	return &Container{
		NotificationService: notificationService,
		SessionService:      services.NewSessionService(sessionRepo),
		SettingsService:     services.NewSettingsService(settings),
		clock:               adapterclock.NewSystem(),
		localRepo:           localRepo,
		sessionRepo:         sessionRepo,
		slots:               slots,
	}, nil
}

// newSlotBackend picks where the timer snapshot lives
func newSlotBackend(backend string, localRepo *adapterstorage.SQLiteRepository) (ports.KeyValueSlot, error) {
	switch backend {
	case config.SlotBackendSQLite:
		logging.Logger.Debug("Using SQLite slot backend")
		return localRepo.Slots(), nil
	case "", config.SlotBackendFile:
		logging.Logger.Debug("Using file slot backend", "dir", config.GetSlotDir())
		return adapterslot.NewFile(config.GetSlotDir())
	default:
		return nil, fmt.Errorf("unknown slot backend %q", backend)
	}
}

// NewTimerEngine builds an engine in its uninitialized phase
func (c *Container) NewTimerEngine(opts EngineOptions) *services.TimerEngine {
	persistence := services.NewTimerPersistence(adapterslot.WithNamespace(c.slots, opts.Namespace), c.clock)

	notifications := opts.Notifications
	if notifications == nil {
		notifications = c.NotificationService
	}

	return services.NewTimerEngine(
		persistence,
		c.sessionRepo,
		notifications,
		opts.Alerter,
		c.clock,
		c.SettingsService.TimerSettings(),
	)
}

// OpenTimerEngine builds an engine, restores it and applies identity
func (c *Container) OpenTimerEngine(ctx context.Context, opts EngineOptions, identity string) (*services.TimerEngine, error) {
	engine := c.NewTimerEngine(opts)
	if err := engine.Restore(ctx); err != nil {
		engine.Close()
		return nil, fmt.Errorf("failed to restore timer: %w", err)
	}
	if err := engine.SetIdentity(identity); err != nil {
		engine.Close()
		return nil, fmt.Errorf("failed to set identity: %w", err)
	}
	return engine, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	return closeAll(c.sessionRepo, c.localRepo)
}

// closeAll closes each distinct closer once
func closeAll(closers ...interface{ Close() error }) error {
	var errs []error
	seen := make(map[any]bool, len(closers))
	for _, closer := range closers {
		if closer == nil || seen[closer] {
			continue
		}
		seen[closer] = true
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
