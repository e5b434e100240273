package commands

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devconf/devconf/internal/api"
	"github.com/devconf/devconf/internal/config"
	"github.com/devconf/devconf/internal/log"
	"github.com/devconf/devconf/internal/store"
)

// ServeCommand runs the HTTP API server.
type ServeCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	bindAddr string

	store *store.Store
}

// CreateServeCommand creates a new serve command.
func CreateServeCommand() Runner {
	return &ServeCommand{}
}

// Name returns the command name.
func (c *ServeCommand) Name() string {
	return "serve"
}

// Init initializes the serve command with arguments.
func (c *ServeCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("serve", flag.ExitOnError)

	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the HTTP server (overrides config)")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadServiceConfig(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.bindAddr == "" {
		c.bindAddr = cfg.BindAddress()
	}

	c.store = buildStore(cfg)

	return nil
}

// Run starts the HTTP API server and blocks until shutdown.
func (c *ServeCommand) Run() error {
	log.Infof("Starting devconf API server on %s", c.bindAddr)
	log.Infof("Settings file: %s", c.cfg.SettingsFilePath())
	log.Infof("Audit log: %s", c.cfg.AuditLogPath())

	router := api.NewRouter(c.store)

	server := &http.Server{
		Addr:         c.bindAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Infof("API server listening on http://%s", c.bindAddr)
		log.Infof("Endpoints available at http://%s/api/configuration", c.bindAddr)
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Errorf("Error during server shutdown: %v", err)
			if err := server.Close(); err != nil {
				return fmt.Errorf("failed to close server: %w", err)
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
