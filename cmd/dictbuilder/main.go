// Command dictbuilder runs the offline dictionary build: it parses the
// supplement TSV and the WordNet corpus, merges them into normalized
// dictionary records, and commits them to Firestore in bounded batches.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--builder-config  path to builder YAML config file
//	--dry-run         parse and merge without writing to the store
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/aivocab-backend/internal/adapter/firestore"
	dictionaryrepo "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore/dictionary"
	"github.com/heartmarshall/aivocab-backend/internal/app"
	"github.com/heartmarshall/aivocab-backend/internal/builder"
	"github.com/heartmarshall/aivocab-backend/internal/config"
)

// Compile-time interface assertion.
var _ builder.DictionaryWriter = (*dictionaryrepo.Repo)(nil)

func main() {
	builderConfigFlag := flag.String("builder-config", "", "path to builder YAML config file")
	dryRunFlag := flag.Bool("dry-run", false, "parse and merge without writing to the store")
	flag.Parse()

	// Load app config (for the Firestore connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	builderCfg, err := builder.LoadConfig(*builderConfigFlag)
	if err != nil {
		logger.Error("load builder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		builderCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	client, err := firestore.NewClient(ctx, appCfg.Firestore)
	if err != nil {
		logger.Error("connect to firestore", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Close() //nolint:errcheck

	writer := dictionaryrepo.New(client, builderCfg.Collection)
	pipeline := builder.NewPipeline(logger, writer, *builderCfg)

	stats, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("dictionary build failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("dictionary build complete",
		slog.Int("parsed_lines", stats.ParsedLines),
		slog.Int("skipped_lines", stats.SkippedLines),
		slog.Int("headwords", stats.Headwords),
		slog.Int("records", stats.Records),
		slog.Int("batches", stats.Batches),
		slog.Duration("duration", stats.Duration),
	)
}
