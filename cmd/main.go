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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"familytree/internal/console"
	"familytree/internal/graph"
	"familytree/internal/loader"
	"familytree/internal/middleware"
	"familytree/internal/service"
)

var (
	envFile  string
	treeFile string
	port     string

	rootCmd = &cobra.Command{
		Use:          "familytree",
		Short:        "Query relationships in a family tree",
		SilenceUsage: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve relationship queries over HTTP",
		RunE:  runServe,
	}

	consoleCmd = &cobra.Command{
		Use:   "console",
		Short: "Browse the family tree from an interactive menu",
		RunE:  runConsole,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")
	rootCmd.PersistentFlags().StringVar(&treeFile, "tree", "", "YAML family tree file (default: built-in sample)")
	serveCmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides PORT)")

	rootCmd.AddCommand(serveCmd, consoleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup 加载配置、创建日志器并构建家谱
func setup() (*service.Config, *service.Logger, *service.FamilyTree, error) {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	config, err := service.LoadConfig(envFiles...)
	if err != nil {
		return nil, nil, nil, err
	}
	if treeFile != "" {
		config.TreeFile = treeFile
	}
	if port != "" {
		config.Port = port
	}

	logger := service.NewLogger(config.LoggerConfig())
	tree := service.NewFamilyTree(nil, logger)

	if config.TreeFile != "" {
		if err := loader.LoadFile(config.TreeFile, tree); err != nil {
			logger.Close()
			return nil, nil, nil, err
		}
		logger.Info("loaded %d people from %s", tree.Len(), config.TreeFile)
	} else {
		loader.PopulateSample(tree)
		logger.Info("loaded built-in sample tree with %d people", tree.Len())
	}

	return config, logger, tree, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	config, logger, tree, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	gin.SetMode(config.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	registry := prometheus.NewRegistry()
	metrics := service.NewMetrics(registry)
	metrics.SetPeople(tree.Len())
	if config.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	graph.RegisterRoutes(r, graph.NewResolver(tree, metrics, logger))

	srv := &http.Server{
		Addr:    ":" + config.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server is running on port %s", config.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runConsole(cmd *cobra.Command, args []string) error {
	_, logger, tree, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return console.NewMenu(tree, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
}
