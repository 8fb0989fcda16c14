// Package pipeline orchestrates transcript ingestion: read, normalize,
// segment, classify, resolve actors, extract features, assemble the corpus.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/chatlex/chatlex/internal/extract"
	"github.com/chatlex/chatlex/internal/model"
	"github.com/chatlex/chatlex/internal/registry"
	"github.com/chatlex/chatlex/internal/worker"
)

// Ingestor builds one Corpus per transcript file. Segmentation and actor
// resolution run sequentially (the registry mutates file-scoped state);
// feature extraction fans out over a bounded worker set.
type Ingestor struct {
	registry  *registry.Registry
	extractor *extract.Extractor
	workers   int
	log       zerolog.Logger
}

// NewIngestor creates an ingestor. A nil patterns argument selects the
// default pattern set.
func NewIngestor(reg *registry.Registry, patterns *extract.Patterns, workers int, log zerolog.Logger) *Ingestor {
	if workers <= 0 {
		workers = 1
	}
	return &Ingestor{
		registry:  reg,
		extractor: extract.NewExtractor(patterns),
		workers:   workers,
		log:       log,
	}
}

// candidate is a classified user message waiting for its feature battery.
type candidate struct {
	actor     *model.Actor
	content   string
	createdAt time.Time
}

// IngestFile ingests one transcript and returns its corpus. A transcript
// with no timestamp anchors yields an empty corpus, not an error. The
// pseudonym store is flushed before returning so new allocations are durable
// even when a later transcript in the batch fails.
func (in *Ingestor) IngestFile(ctx context.Context, path, encodingName string) (*model.Corpus, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	in.log.Debug().Str("file", abs).Msg("reading transcript")
	content, err := ReadTranscript(abs, encodingName)
	if err != nil {
		return nil, err
	}

	normalized := extract.Normalize(content)
	entries := extract.Segment(normalized)

	corpus := model.NewCorpus(abs, filepath.Base(abs))
	var candidates []candidate

	for _, raw := range entries {
		entry := extract.Classify(raw)

		createdAt, err := model.ParseTime(entry.Timestamp)
		if err != nil {
			// Anchor shape guarantees a parseable timestamp except for
			// implausible years; keep the entry rather than drop it.
			in.log.Warn().Str("timestamp", entry.Timestamp).Msg("unparseable timestamp, kept as system notice")
			corpus.AppendSystem(&model.SystemMessage{Content: raw.Body})
			continue
		}

		if entry.Kind == extract.KindSystemNotice {
			corpus.AppendSystem(&model.SystemMessage{Content: entry.Content, CreatedAt: createdAt})
			continue
		}

		actor, ok := corpus.Actor(entry.ContactKey)
		if !ok {
			displayName, err := in.registry.Resolve(abs, entry.ContactKey)
			if err != nil {
				return nil, err
			}
			actor = model.NewActor(entry.ContactKey, displayName)
			corpus.AddActor(actor)
		}

		candidates = append(candidates, candidate{
			actor:     actor,
			content:   entry.Content,
			createdAt: createdAt,
		})
	}

	// Extraction is pure per message; compute in parallel, assemble in
	// chronological order.
	features, err := worker.Map(ctx, in.workers, candidates, func(_ context.Context, c candidate) (model.Features, error) {
		return in.extractor.Extract(c.content, c.createdAt), nil
	})
	if err != nil {
		return nil, fmt.Errorf("extract features: %w", err)
	}

	for i, c := range candidates {
		corpus.Append(&model.Message{
			Actor:     c.actor,
			Content:   c.content,
			CreatedAt: c.createdAt,
			Features:  features[i],
		})
	}

	if err := in.registry.Save(); err != nil {
		return nil, fmt.Errorf("flush pseudonym store: %w", err)
	}

	in.log.Info().
		Str("file", corpus.Filename).
		Int("messages", len(corpus.Messages)).
		Int("system_messages", len(corpus.SystemMessages)).
		Int("actors", len(corpus.Actors())).
		Msg("transcript ingested")

	return corpus, nil
}
