/*
Webapi is the executable for the statuary web server.
It serves the content store's routes (statues, annotations, comments, tours, sponsors and payments) over JSON and
keeps a SQLite snapshot of the contents, restored at startup and refreshed periodically.

Usage:

	webapi [flags]

Flags and configurations are handled automatically by the code in `load-configuration.go`.

Return values (exit codes):

	0
		The program ended successfully (no errors, stopped by signal)

	> 0
		The program ended due to an error

Note that this program refuses to start with a database whose schema differs from the one embedded in the executable.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardanlabs/conf"
	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/silktrader/statuary/pkg/annotations"
	"github.com/silktrader/statuary/pkg/auth"
	"github.com/silktrader/statuary/pkg/clock"
	"github.com/silktrader/statuary/pkg/comments"
	"github.com/silktrader/statuary/pkg/content"
	"github.com/silktrader/statuary/pkg/payments"
	"github.com/silktrader/statuary/pkg/rest"
	"github.com/silktrader/statuary/pkg/sponsors"
	"github.com/silktrader/statuary/pkg/statues"
	"github.com/silktrader/statuary/pkg/storage/sqlite"
	"github.com/silktrader/statuary/pkg/tours"
	"github.com/silktrader/statuary/pkg/users"
)

// main is the program entry point. The only purpose of this function is to call run() and set the exit code if there is
// any error
func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error: ", err)
		os.Exit(1)
	}
}

// run executes the program. The body of this function performs the following steps:
// * reads the configuration
// * creates and configures the logger
// * restores the content store from its last snapshot, if any
// * registers the handlers and starts the web server
// * waits for any termination event: SIGTERM signal (UNIX), non-recoverable server error, etc.
// * closes the web server and saves a final snapshot
func run() error {
	// a .env file is optional; its values feed the CFG_ environment variables
	var envErr = godotenv.Load()

	// Load Configuration and defaults
	cfg, err := loadConfiguration()
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return nil
		}
		return err
	}

	// Init logging
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	logger.Infof("application initializing")
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.WithError(envErr).Warning("error while reading .env file")
	}

	var realClock = clock.Real{}
	var store = content.New(content.Config{Clock: realClock})

	// initialise storage before registering handlers for an immediate exit in case of issues
	var storage *sqlite.Storage
	if cfg.DB.Filename != "" {
		storage, err = sqlite.New(logger, cfg.DB.Filename)
		if err != nil {
			return fmt.Errorf("error while initialising storage: %w", err)
		}
		defer func() {
			if err := storage.Close(); err != nil {
				logger.WithError(err).Warning("error while closing storage")
			}
		}()

		snapshot, err := storage.Load()
		if err != nil {
			return fmt.Errorf("error while loading contents: %w", err)
		}
		store.Restore(snapshot)
		logger.WithField("statues", len(snapshot.Statues)).Info("contents restored")
	} else {
		logger.Warning("no database configured, contents won't survive restarts")
	}

	// Start (main) API server
	logger.Info("initializing API server")

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	e, err := rest.New(rest.Config{
		Logger: logger,
	})
	if err != nil {
		logger.WithError(err).Error("error creating the API server instance")
		return fmt.Errorf("creating the API server instance: %w", err)
	}

	// setup handlers
	auth.RegisterHandlers(e, store)
	users.RegisterHandlers(e, store)
	statues.RegisterHandlers(e, store)
	annotations.RegisterHandlers(e, store)
	comments.RegisterHandlers(e, store)
	tours.RegisterHandlers(e, store)
	sponsors.RegisterHandlers(e, store, realClock)
	payments.RegisterHandlers(e, store)

	// panics in handlers become 500s rather than dropped connections
	handler := handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger),
		handlers.PrintRecoveryStack(cfg.Debug),
	)(e.Handler())

	// Apply CORS policy
	handler = applyCORSHandler(handler)

	// create the API server
	server := http.Server{
		Addr:              cfg.Web.APIHost,
		Handler:           handler,
		ReadTimeout:       cfg.Web.ReadTimeout,
		ReadHeaderTimeout: cfg.Web.ReadTimeout,
		WriteTimeout:      cfg.Web.WriteTimeout,
	}

	// persist contents in the background
	flushCtx, stopFlushing := context.WithCancel(context.Background())
	defer stopFlushing()
	if storage != nil {
		go flushPeriodically(flushCtx, logger, store, storage, cfg.DB.FlushInterval)
	}

	// Start the service listening for requests in a separate goroutine
	go func() {
		logger.Infof("API listening on %s", server.Addr)
		serverErrors <- server.ListenAndServe()
		logger.Infof("stopping API server")
	}()

	// Waiting for shutdown signal or POSIX signals
	select {
	case err := <-serverErrors:
		// Non-recoverable server error
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Infof("signal %v received, start shutdown", sig)

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		// Asking listener to shut down and load shed.
		err = server.Shutdown(ctx)
		if err != nil {
			logger.WithError(err).Warning("error during graceful shutdown of HTTP server")
			err = server.Close()
		}

		// no more writes can reach the store, save its final state
		stopFlushing()
		if storage != nil {
			if saveErr := storage.Save(store.Snapshot()); saveErr != nil {
				logger.WithError(saveErr).Error("error while saving contents")
				return fmt.Errorf("saving contents: %w", saveErr)
			}
			logger.Info("contents saved")
		}

		if err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
