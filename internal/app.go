package internal

import (
	"alarmclock/internal/clock/interfaces"
	"alarmclock/internal/controllers"
	"alarmclock/internal/device"
	"alarmclock/internal/providers"
	storage "alarmclock/internal/storage/interfaces"
	"alarmclock/internal/structures"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App is the headless daemon: scheduler, optional HTTP API and teardown.
type App struct {
	WebServer *http.Server

	conf      *structures.Config
	logger    providers.Logger
	scheduler interfaces.SchedulerInterface
	trigger   device.TriggerInterface
	store     storage.AlarmStoreInterface
}

func NewApp(apiController *controllers.ApiController, healthController *controllers.HealthController, scheduler interfaces.SchedulerInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface, trigger device.TriggerInterface, store storage.AlarmStoreInterface) *App {
	// Inner mux: API routes
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", providers.MetricsMiddleware(metrics, logger, apiMux))

	return &App{
		WebServer: &http.Server{
			Addr:         net.JoinHostPort(conf.WebServer.Host, strconv.Itoa(conf.WebServer.Port)),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		conf:      conf,
		logger:    logger,
		scheduler: scheduler,
		trigger:   trigger,
		store:     store,
	}
}

// Run restores alarms, starts the tick and blocks until ctx is done, a
// shutdown signal arrives or the HTTP server fails.
func (a *App) Run(ctx context.Context) error {
	a.logger.Infof(providers.TypeApp, "Starting %s", a.conf.AppName)
	if err := a.scheduler.Restore(); err != nil {
		a.logger.Errorf(providers.TypeApp, "Restore error: %s", err)
	}
	a.scheduler.Init()

	serverErr := make(chan error, 1)
	if a.conf.WebServer.Enabled {
		go func() {
			a.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", a.WebServer.Addr)
			if err := a.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-stop:
		a.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case <-ctx.Done():
		a.logger.Infof(providers.TypeApp, "Context done: %s", ctx.Err())
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if err := a.shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (a *App) shutdown() error {
	a.scheduler.Stop()

	var errs []error
	if a.conf.WebServer.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.WebServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if err := a.scheduler.Persist(); err != nil {
		errs = append(errs, err)
	}
	a.trigger.Close()
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	a.logger.Close()
	return errors.Join(errs...)
}
