// RelayForge integration gateway — polls tenant event sources, fans events
// out to configured integrations, and serves the ops API and inbound proxy.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/relayforge/relayforge/pkg/alerts"
	"github.com/relayforge/relayforge/pkg/api"
	"github.com/relayforge/relayforge/pkg/breaker"
	"github.com/relayforge/relayforge/pkg/condition"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/database"
	"github.com/relayforge/relayforge/pkg/delivery"
	"github.com/relayforge/relayforge/pkg/ingest"
	"github.com/relayforge/relayforge/pkg/masking"
	"github.com/relayforge/relayforge/pkg/match"
	"github.com/relayforge/relayforge/pkg/retry"
	"github.com/relayforge/relayforge/pkg/scheduler"
	"github.com/relayforge/relayforge/pkg/source"
	"github.com/relayforge/relayforge/pkg/trace"
	"github.com/relayforge/relayforge/pkg/transform"
	"github.com/relayforge/relayforge/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Operational subcommands run and exit before the server path.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate-org-ids":
			os.Exit(runMigrateOrgIDs(os.Args[2:]))
		case "rebuild-indexes":
			os.Exit(runRebuildIndexes(os.Args[2:]))
		case "seed-event-source-configs":
			os.Exit(runSeedSourceConfigs(os.Args[2:]))
		}
	}

	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting RelayForge",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"integrations", stats.Integrations,
		"sources", stats.Sources,
		"alert_channels", stats.AlertChannels)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Shared plumbing
	masker := masking.NewService()
	tracer := trace.NewLogger(dbClient.Client, masker)
	httpClient := &http.Client{}

	// 4. Alerting (nil when no channels are configured; all call sites are
	// nil-safe)
	alertService := alerts.NewService(dbClient.Client, cfg.Alerts, cfg.AlertChannels,
		alerts.NewSlackAdapter(), alerts.NewSMTPAdapter())

	// 5. Circuit breakers with the auto-disable policy
	breakers := breaker.NewRegistry(cfg.Breaker, dbClient.Client,
		func(ctx context.Context, integrationID string, consecutiveFailures int) {
			name := integrationID
			orgID := ""
			if in, err := cfg.Integrations.Get(integrationID); err == nil {
				name = in.Name
				orgID = in.OrgID
			}
			if cfg.Integrations.Deactivate(integrationID) {
				slog.Warn("Integration auto-disabled after repeated failures",
					"integration_id", integrationID,
					"consecutive_failures", consecutiveFailures)
			}
			alertService.NotifyAutoDisabled(ctx, orgID, integrationID, name, consecutiveFailures)
		})

	// 6. Delivery pipeline
	backoff := retry.NewBackoff(cfg.Retry)
	dlqStore := retry.NewStore(dbClient.Client, backoff, masker)
	engine := delivery.NewEngine(
		cfg.Delivery,
		cfg.Retry,
		transform.New(cfg.Sandbox.TransformTimeout),
		condition.New(cfg.Sandbox.ScheduleTimeout),
		delivery.NewAuthenticator(httpClient),
		delivery.NewSender(httpClient, cfg.Delivery.MaxResponseBytes),
		delivery.NewURLPolicy(cfg.Delivery.AllowInsecureLocal),
		breakers,
		tracer,
		dlqStore,
	)
	dlqWorker := retry.NewWorker(dbClient.Client, cfg.Retry, cfg.Integrations, engine, backoff)

	// 7. Scheduling
	schedService := scheduler.NewService(dbClient.Client, scheduler.NewEvaluator(cfg.Sandbox.ScheduleTimeout))
	schedWorker := scheduler.NewWorker(podID, dbClient.Client, cfg.Scheduler, cfg.Integrations, schedService, engine)

	// 8. Ingestion
	eventStore, err := ingest.NewStore(dbClient.Client, cfg.Retention)
	if err != nil {
		slog.Error("Failed to initialize event store", "error", err)
		os.Exit(1)
	}
	pipeline := ingest.NewPipeline(eventStore, match.New(cfg.Integrations), engine, schedService)
	janitor := ingest.NewJanitor(dbClient.Client, cfg.Retention)

	// 9. Source readers
	pools := source.NewPoolManager()
	defer pools.Close()
	readers, err := buildReaders(ctx, cfg, pools, httpClient)
	if err != nil {
		slog.Error("Failed to initialize source readers", "error", err)
		os.Exit(1)
	}

	// 10. Start background workers, then the pollers that feed them
	dlqWorker.Start(ctx)
	schedWorker.Start(ctx)
	janitor.Start(ctx)
	alertService.Start(ctx)

	poller := source.NewPoller(cfg.Poller, source.NewCheckpointStore(dbClient.Client), pipeline.Handle)
	poller.Run(ctx, cfg.Sources.All(), readers)

	// 11. HTTP server
	httpServer := api.NewServer(dbClient, cfg.Integrations, engine, eventStore, dlqStore, dlqWorker, schedService)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil {
			errCh <- err
		}
	}()

	slog.Info("RelayForge started", "pod_id", podID)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: pollers stop feeding first, then workers drain,
	// then the HTTP server.
	drainCtx, cancel := context.WithTimeout(ctx, cfg.Shutdown.DrainWindow)
	defer cancel()

	poller.Stop()
	slog.Info("Source pollers stopped")

	done := make(chan struct{})
	go func() {
		dlqWorker.Stop()
		schedWorker.Stop()
		janitor.Stop()
		alertService.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Workers stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Drain window exceeded, in-flight work will be lease-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// buildReaders constructs one reader per configured source.
func buildReaders(ctx context.Context, cfg *config.Config, pools *source.PoolManager, httpClient *http.Client) (map[string]source.Reader, error) {
	readers := make(map[string]source.Reader)
	for _, src := range cfg.Sources.All() {
		switch src.Type {
		case config.SourceMySQL:
			db, err := pools.Open(src)
			if err != nil {
				return nil, fmt.Errorf("source %s: %w", src.ID, err)
			}
			readers[src.ID] = source.NewMySQLReader(src, db)
		case config.SourceMongo:
			reader, err := source.NewMongoReader(ctx, src)
			if err != nil {
				return nil, fmt.Errorf("source %s: %w", src.ID, err)
			}
			readers[src.ID] = reader
		case config.SourceHTTP:
			readers[src.ID] = source.NewHTTPReader(src, httpClient, cfg.Delivery.MaxFetchedBytes)
		default:
			return nil, fmt.Errorf("source %s: unknown type %q", src.ID, src.Type)
		}
	}
	return readers, nil
}
