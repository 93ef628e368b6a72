package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/relayforge/relayforge/ent/sourcecheckpoint"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/database"
	"github.com/relayforge/relayforge/pkg/source"
)

const opsTimeout = 10 * time.Minute

// Exit codes for operational subcommands: 0 clean, 1 error, 2 drift found in
// a dry run.
const (
	exitOK    = 0
	exitError = 1
	exitDrift = 2
)

func opsClient(ctx context.Context) (*database.Client, error) {
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return database.NewClient(ctx, dbConfig)
}

// runMigrateOrgIDs backfills org_id from the legacy tenant_id column.
func runMigrateOrgIDs(args []string) int {
	fs := flag.NewFlagSet("migrate-org-ids", flag.ExitOnError)
	dryRun := fs.Bool("dry-run", false, "report pending rows without writing")
	_ = fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), opsTimeout)
	defer cancel()

	client, err := opsClient(ctx)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitError
	}
	defer client.Close()

	n, err := client.MigrateOrgIDs(ctx, *dryRun)
	if err != nil {
		slog.Error("org_id migration failed", "error", err)
		return exitError
	}

	if *dryRun {
		slog.Info("org_id migration dry run complete", "pending_rows", n)
		if n > 0 {
			return exitDrift
		}
		return exitOK
	}
	slog.Info("org_id migration complete", "rows_updated", n)
	return exitOK
}

// runRebuildIndexes drops legacy indexes and creates the canonical set.
func runRebuildIndexes(args []string) int {
	fs := flag.NewFlagSet("rebuild-indexes", flag.ExitOnError)
	dryRun := fs.Bool("dry-run", false, "report index drift without writing")
	_ = fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), opsTimeout)
	defer cancel()

	client, err := opsClient(ctx)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitError
	}
	defer client.Close()

	drift, err := client.RebuildIndexes(ctx, *dryRun)
	if err != nil {
		slog.Error("Index rebuild failed", "error", err)
		return exitError
	}

	if *dryRun {
		slog.Info("Index rebuild dry run complete", "legacy_indexes", drift)
		if drift > 0 {
			return exitDrift
		}
		return exitOK
	}
	slog.Info("Index rebuild complete", "legacy_indexes_dropped", drift)
	return exitOK
}

// runSeedSourceConfigs creates checkpoints for configured sources that have
// none, so new streams start polling from a known high-water mark instead of
// replaying the whole backing table.
func runSeedSourceConfigs(args []string) int {
	fs := flag.NewFlagSet("seed-event-source-configs", flag.ExitOnError)
	configDir := fs.String("config-dir", getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	dryRun := fs.Bool("dry-run", false, "report missing checkpoints without writing")
	startID := fs.Int64("start-id", 0, "initial last_processed_id for seeded streams")
	_ = fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), opsTimeout)
	defer cancel()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return exitError
	}

	client, err := opsClient(ctx)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitError
	}
	defer client.Close()

	checkpoints := source.NewCheckpointStore(client.Client)
	var missing int
	for _, src := range cfg.Sources.All() {
		identifier := streamIdentifier(src)
		exists, err := client.Client.SourceCheckpoint.Query().
			Where(
				sourcecheckpoint.SourceEQ(src.ID),
				sourcecheckpoint.SourceIdentifierEQ(identifier),
				sourcecheckpoint.OrgIDEQ(src.OrgID),
			).
			Exist(ctx)
		if err != nil {
			slog.Error("Failed to check checkpoint", "source_id", src.ID, "error", err)
			return exitError
		}
		if exists {
			continue
		}
		missing++

		if *dryRun {
			slog.Info("Checkpoint missing", "source_id", src.ID, "identifier", identifier)
			continue
		}
		if err := checkpoints.Advance(ctx, src.ID, identifier, src.OrgID, *startID); err != nil {
			slog.Error("Failed to seed checkpoint", "source_id", src.ID, "error", err)
			return exitError
		}
		slog.Info("Checkpoint seeded",
			"source_id", src.ID, "identifier", identifier, "start_id", *startID)
	}

	if *dryRun {
		slog.Info("Checkpoint seed dry run complete", "missing", missing)
		if missing > 0 {
			return exitDrift
		}
		return exitOK
	}
	slog.Info("Checkpoint seed complete", "seeded", missing)
	return exitOK
}

// streamIdentifier mirrors the reader Identifier() values without opening a
// connection to the source.
func streamIdentifier(src *config.Source) string {
	switch src.Type {
	case config.SourceMySQL:
		return src.Table
	case config.SourceMongo:
		return src.Database + "." + src.Collection
	default:
		return src.URL
	}
}
