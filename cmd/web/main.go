package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/retail-atlas/pkg/server"
	"github.com/de-tools/retail-atlas/pkg/services/config"
	"github.com/de-tools/retail-atlas/pkg/services/dataset"
	"github.com/de-tools/retail-atlas/pkg/services/summary"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultAddr = "127.0.0.1:8080"

var (
	cfgPath  string
	dataPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Retail Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the application config file (default is ./retail-atlas.yaml)")
	rootCmd.Flags().StringVarP(&dataPath, "data", "d", "",
		"Path to the transactions CSV (default is probing the known locations)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := dataPath
	if path == "" {
		path = cfg.DataPath
	}
	loader := dataset.NewLoader()
	if path != "" {
		loader = dataset.NewLoaderWithPath(path)
	}

	// Load eagerly so missing-file and schema failures are terminal at
	// startup instead of surfacing per request.
	cache := dataset.NewCache(loader)
	ds, err := cache.Get(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("data loading failed")
		os.Exit(1)
	}

	logger.Info().
		Str("path", ds.Source.Path).
		Int("records", len(ds.Records)).
		Msg("dataset loaded")

	addr := cfg.ServerAddr
	if host, port := os.Getenv("SERVER_HOST"), os.Getenv("SERVER_PORT"); host != "" && port != "" {
		addr = net.JoinHostPort(host, port)
	}
	if addr == "" {
		addr = defaultAddr
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Reports: summary.NewService(cache, cfg.TopCustomers),
		},
	})

	return api.Start()
}
