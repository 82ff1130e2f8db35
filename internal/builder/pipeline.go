// Package builder orchestrates the offline dictionary build: parse the
// supplement file, cross-reference the lexical corpus, merge both sources
// into normalized records, and commit them to the document store in bounded
// batches.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/heartmarshall/aivocab-backend/internal/builder/supplement"
	"github.com/heartmarshall/aivocab-backend/internal/builder/wordnet"
	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// DictionaryWriter is the batch write contract consumed by the pipeline.
// One call commits one atomic batch; the pipeline never passes more than the
// store's 500-write limit. Implemented by the firestore dictionary repo.
type DictionaryWriter interface {
	CommitBatch(ctx context.Context, records []*domain.DictionaryRecord) error
}

// Stats holds the outcome of a pipeline run.
type Stats struct {
	ParsedLines   int
	SkippedLines  int
	Headwords     int
	Records       int
	Batches       int
	CorpusEntries int
	Duration      time.Duration
}

// Pipeline runs the dictionary build. Strictly sequential: one run, one
// target collection, no concurrent execution.
type Pipeline struct {
	log    *slog.Logger
	writer DictionaryWriter
	cfg    Config
}

// NewPipeline creates a Pipeline.
func NewPipeline(log *slog.Logger, writer DictionaryWriter, cfg Config) *Pipeline {
	return &Pipeline{
		log:    log.With("component", "builder"),
		writer: writer,
		cfg:    cfg,
	}
}

// Run executes the full build. A batch commit failure is fatal for the run:
// the error is returned immediately and no partial retry is attempted.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	var stats Stats

	rows, parseStats, err := supplement.Parse(p.cfg.SupplementPath, p.log)
	if err != nil {
		return stats, fmt.Errorf("parse supplement: %w", err)
	}
	stats.ParsedLines = parseStats.TotalLines
	stats.SkippedLines = parseStats.SkippedLines
	stats.Headwords = parseStats.Headwords
	if len(rows) == 0 {
		return stats, fmt.Errorf("supplement file %s produced no headwords", p.cfg.SupplementPath)
	}

	lexicon, err := wordnet.Parse(p.cfg.WordNetPath)
	if err != nil {
		return stats, fmt.Errorf("parse wordnet: %w", err)
	}
	stats.CorpusEntries = lexicon.Stats.Headwords
	p.log.Info("sources parsed",
		slog.Int("supplement_headwords", stats.Headwords),
		slog.Int("supplement_skipped_lines", stats.SkippedLines),
		slog.Int("corpus_headwords", stats.CorpusEntries),
	)

	// Deterministic order: sorted headwords.
	words := make([]string, 0, len(rows))
	for w := range rows {
		words = append(words, w)
	}
	sort.Strings(words)

	records := make([]*domain.DictionaryRecord, 0, len(words))
	for _, w := range words {
		records = append(records, mergeRecord(w, rows[w], lexicon.Lookup(w)))
	}
	stats.Records = len(records)

	if p.cfg.DryRun {
		p.log.Info("dry run, skipping commit", slog.Int("records", stats.Records))
		stats.Duration = time.Since(start)
		return stats, nil
	}

	if err := p.commit(ctx, records, &stats); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(start)
	p.log.Info("build completed",
		slog.Int("records", stats.Records),
		slog.Int("batches", stats.Batches),
		slog.Duration("duration", stats.Duration),
	)
	return stats, nil
}

// commit writes records in batches of at most cfg.BatchSize (capped at the
// store's 500-write limit), pausing between full batches to stay under write
// rate limits.
func (p *Pipeline) commit(ctx context.Context, records []*domain.DictionaryRecord, stats *Stats) error {
	batchSize := p.cfg.BatchSize
	if batchSize <= 0 || batchSize > maxBatchSize {
		batchSize = maxBatchSize
	}

	total := len(records)
	for i := 0; i < total; i += batchSize {
		if i > 0 && p.cfg.BatchPause > 0 {
			select {
			case <-time.After(p.cfg.BatchPause):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		end := min(i+batchSize, total)
		if err := p.writer.CommitBatch(ctx, records[i:end]); err != nil {
			return fmt.Errorf("commit batch %d (records %d-%d): %w", stats.Batches+1, i, end-1, err)
		}
		stats.Batches++
		p.log.Info("batch committed",
			slog.Int("batch", stats.Batches),
			slog.Int("progress", end),
			slog.Int("total", total),
		)
	}
	return nil
}
