package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pangolivas/gensemen-pro/internal/platform/config"
	"github.com/pangolivas/gensemen-pro/internal/platform/httpserver"
	"github.com/pangolivas/gensemen-pro/internal/platform/metrics"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	config.BindEnv(v)

	var configFile string

	rootCmd := &cobra.Command{
		Use:           "gensemen-pro",
		Short:         "Catalog and order API for the gensemen storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	serveCmd.Flags().Int("port", 8080, "HTTP listen port")
	serveCmd.Flags().String("store", config.DriverFirestore, "document store: firestore, spanner or memory")
	serveCmd.Flags().String("catalog-source", config.SourceAggregate, "product layout: collection or aggregate")
	_ = v.BindPFlag("http.port", serveCmd.Flags().Lookup("port"))
	_ = v.BindPFlag("store.driver", serveCmd.Flags().Lookup("store"))
	_ = v.BindPFlag("catalog.source", serveCmd.Flags().Lookup("catalog-source"))

	rootCmd.AddCommand(serveCmd)
	return rootCmd
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	logger.Info("starting gensemen-pro",
		slog.String("store", cfg.Store.Driver),
		slog.String("catalog_source", cfg.Catalog.Source),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := metrics.NewRegistry()

	store, closeStore, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Error("failed to open document store", slog.Any("error", err))
		return err
	}
	defer closeStore()

	handler, err := newHandler(cfg, store, registry, logger)
	if err != nil {
		return err
	}

	server := httpserver.New(httpserver.Config{
		Host:            cfg.HTTP.Host,
		Port:            cfg.HTTP.Port,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		IdleTimeout:     cfg.HTTP.IdleTimeout,
		ShutdownTimeout: cfg.Shutdown,
	}, handler, logger)

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.Any("error", err))
		return err
	}

	logger.Info("server stopped")
	return nil
}
