package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chatlex/chatlex/internal/logging"
	"github.com/chatlex/chatlex/internal/pipeline"
)

var (
	listPath  string
	outputDir string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [transcripts...]",
	Short: "Ingest multiple transcripts in parallel",
	Long: `Batch ingests several transcripts concurrently. Each transcript is
independent: it gets its own corpus, its own pseudonym-store partition, and
its failure never aborts the rest of the batch.

Example:
  chatlex batch a.txt b.txt c.txt
  chatlex batch --list transcripts.txt --workers 4 --output-dir ./reports`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&listPath, "list", "", "file with transcript paths, one per line")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", ".", "output directory for corpus reports")

	batchCmd.Flags().StringVar(&encodingName, "encoding", "utf-8", "transcript text encoding (IANA name)")
	batchCmd.Flags().StringVar(&storePath, "store", "", "pseudonym store path (default: $HOME/.chatlex/pseudonyms.json)")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "concurrent transcripts (default: NumCPU)")
	batchCmd.Flags().StringVar(&outFormat, "format", "json", "report format (json, yaml)")
	batchCmd.Flags().BoolVar(&memoryStore, "ephemeral", false, "keep pseudonyms in memory only (no store file)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	paths := args
	if listPath != "" {
		fromList, err := pipeline.ReadPathList(listPath)
		if err != nil {
			return err
		}
		paths = append(paths, fromList...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no transcripts given (pass paths or --list)")
	}

	cfg := buildConfig(cmd)
	log := logging.New(cfg.Log.Level, cfg.Log.JSON)

	ing, err := newIngestor(cfg, log)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	results := ing.IngestBatch(context.Background(), paths, cfg.Ingest.Encoding)

	succeeded := 0
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Err)
			continue
		}

		base := strings.TrimSuffix(res.Corpus.Filename, filepath.Ext(res.Corpus.Filename))
		out := filepath.Join(outputDir, base+".corpus."+cfg.Output.Format)
		if err := renderCorpus(res.Corpus, out, cfg.Output.Format); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, err)
			continue
		}

		succeeded++
		fmt.Fprintf(os.Stderr, "✓ %s: %d messages, %d actors → %s\n",
			res.Corpus.Filename, len(res.Corpus.Messages), len(res.Corpus.Actors()), out)
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d succeeded, %d failed of %d\n",
		succeeded, failed, len(results))

	if failed > 0 && succeeded == 0 {
		return fmt.Errorf("all %d transcripts failed", failed)
	}
	return nil
}
