package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chatlex/chatlex/internal/model"
	"github.com/chatlex/chatlex/internal/worker"
)

// BatchResult is the outcome of ingesting one transcript in a batch. Failures
// are isolated per file: a failed transcript carries its error here and the
// rest of the batch continues.
type BatchResult struct {
	Path   string
	Corpus *model.Corpus
	Err    error
}

// IngestBatch ingests every transcript concurrently, bounded by the
// ingestor's worker count. Transcripts are independent and pseudonym-store
// partitions are disjoint per path, so cross-file contention does not occur.
// Results come back in input order.
func (in *Ingestor) IngestBatch(ctx context.Context, paths []string, encodingName string) []BatchResult {
	// The per-file error lives inside BatchResult, so Map itself never
	// fails and no transcript can abort its siblings.
	results, _ := worker.Map(ctx, in.workers, paths, func(ctx context.Context, path string) (BatchResult, error) {
		corpus, err := in.IngestFile(ctx, path, encodingName)
		return BatchResult{Path: path, Corpus: corpus, Err: err}, nil
	})
	return results
}

// ReadPathList reads transcript paths from a list file, one per line. Blank
// lines and #-comments are skipped and duplicates dropped.
func ReadPathList(listPath string) ([]string, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open path list: %w", err)
	}
	defer f.Close()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan path list: %w", err)
	}

	return paths, nil
}
