package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "capivaras-api/internal/adapters/storage/postgres"
	"capivaras-api/internal/config"
	"capivaras-api/internal/platform/httpclient"
	"capivaras-api/internal/platform/logger"
	"capivaras-api/internal/router"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const appName = "capivaras-api"

type serveFlags struct {
	configPath string
	port       int
	dataDir    string
	driver     string
	swagger    bool
}

// apply pisa la configuración con los flags seteados; corre antes de Validate.
func (f serveFlags) apply(cfg *config.Config) {
	if f.port > 0 {
		cfg.Server.Port = f.port
	}
	if f.dataDir != "" {
		cfg.Storage.DataDir = f.dataDir
	}
	if f.driver != "" {
		cfg.Storage.Driver = f.driver
	}
	if f.swagger {
		cfg.Server.Swagger = true
	}
}

func newRootCmd() *cobra.Command {
	var flags serveFlags

	root := &cobra.Command{
		Use:           appName,
		Short:         "API HTTP de capivaras",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
	addServeFlags(root, &flags)

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
	addServeFlags(serve, &flags)

	root.AddCommand(serve, newHealthcheckCmd())
	return root
}

func addServeFlags(cmd *cobra.Command, f *serveFlags) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "archivo YAML de configuración")
	cmd.Flags().IntVarP(&f.port, "port", "p", 0, "puerto HTTP (pisa config y PORT)")
	cmd.Flags().StringVar(&f.dataDir, "data-dir", "", "directorio de los archivos JSON")
	cmd.Flags().StringVar(&f.driver, "storage", "", "driver de almacenamiento: jsonfile|postgres|memory")
	cmd.Flags().BoolVar(&f.swagger, "swagger", false, "monta la UI de Swagger en /swagger/")
}

func runServe(ctx context.Context, flags serveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env opcional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env file: %v\n", err)
	}

	cfg, err := config.Load(flags.configPath, flags.apply)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := newLogger(cfg.Logging)

	opts := router.Options{Logger: log, EnableSwagger: cfg.Server.Swagger}
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(cfg.Storage.DSN)
		if err != nil {
			return fmt.Errorf("failed to open postgres: %w", err)
		}
		defer db.Close()
		opts.DB = db
	case config.DriverJSONFile:
		opts.DataDir = cfg.Storage.DataDir
	}

	log.Info("storage ready", map[string]any{
		"driver":   cfg.Storage.Driver,
		"data_dir": opts.DataDir,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	log.Info("starting server", map[string]any{
		"addr": srv.Addr,
		"url":  fmt.Sprintf("http://localhost%s/capivaras", srv.Addr),
	})
	if err := runServer(ctx, srv); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		return err
	}
	log.Info("server stopped", nil)
	return nil
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func newLogger(c config.LogConfig) logger.Logger {
	opts := logger.Options{
		Level:  logger.ParseLevel(c.Level),
		Format: logger.ParseFormat(c.Format),
		App:    appName,
	}
	if c.LogToFile {
		opts.File = logger.FileOptions{
			Filename:   c.LogFilePath,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		}
	}
	return logger.New(opts)
}

func newHealthcheckCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Consulta GET /health de una instancia en ejecución",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := httpclient.New(baseURL, timeout)
			if err != nil {
				return err
			}
			if err := c.Health(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:7000", "URL base del servicio")
	cmd.Flags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "timeout del request")
	return cmd
}
