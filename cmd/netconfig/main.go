package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dao_networks/internal/app/port"
	"dao_networks/internal/app/service"
	"dao_networks/internal/infrastructure/configloader"
	networkdefinition "dao_networks/internal/infrastructure/network/definition"
	"dao_networks/internal/infrastructure/network/endpoints"
	"dao_networks/internal/infrastructure/restapi"
	"dao_networks/internal/pkg/logger"
	"dao_networks/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	dump := flag.Bool("dump", false, "print the resolved network profiles as JSON and exit")
	flag.Parse()

	cfgPath := configloader.GetEnv("CONFIG_PATH", "config/config.yml")
	cfg, err := configloader.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration from %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	zapLogger, err := logger.Init(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if err := networkdefinition.Validate(); err != nil {
		logger.Fatal("Network table is inconsistent", "error", err)
	}

	appLogger := logger.NewSlogAdapter()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	netDefProvider := networkdefinition.NewNetworkDefinitionProvider(appLogger, cfg.Secrets.InfuraProjectID)
	secrets := endpoints.NewSecrets(cfg.Secrets.InfuraProjectID, cfg.Secrets.AlchemyKeys)
	networkService := service.NewNetworkService(netDefProvider, secrets, appLogger, m)

	if *dump {
		if err := dumpProfiles(os.Stdout, networkService); err != nil {
			logger.Fatal("Failed to dump network profiles", "error", err)
		}
		return
	}

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := restapi.NewNetworkHandler(
		networkService,
		networkdefinition.SupportedChainIDs(),
		networkdefinition.AvailableNetworks(),
		appLogger,
	)
	router, err := restapi.SetupRouter(handler, cfg, m, registry)
	if err != nil {
		logger.Fatal("Failed to set up HTTP router", "error", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zapLogger.Info("Starting HTTP server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zapLogger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSeconds)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	zapLogger.Info("Server exiting")
}

func dumpProfiles(w io.Writer, ns port.NetworkService) error {
	out := struct {
		Endpoints any `json:"endpoints"`
		Networks  any `json:"networks"`
	}{
		Endpoints: ns.Endpoints(),
		Networks:  ns.Profiles(),
	}
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
