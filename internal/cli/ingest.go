package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chatlex/chatlex/internal/logging"
	"github.com/chatlex/chatlex/internal/model"
	"github.com/chatlex/chatlex/internal/pipeline"
	"github.com/chatlex/chatlex/internal/registry"
)

var (
	encodingName string
	storePath    string
	workers      int
	outPath      string
	outFormat    string
	memoryStore  bool
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <transcript>",
	Short: "Ingest a single transcript and write its corpus report",
	Long: `Ingest parses one exported chat transcript into a structured corpus:
- Normalize invisible Unicode artifacts
- Segment on timestamp anchors ([DD/MM/YY HH:MM:SS])
- Classify entries into user messages and system notices
- Resolve contacts to stable pseudonyms (persisted per transcript)
- Extract the lexical feature battery per message

Example:
  chatlex ingest export.txt
  chatlex ingest export.txt --encoding windows-1252 --out corpus.json
  chatlex ingest export.txt --format yaml --out corpus.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&encodingName, "encoding", "utf-8", "transcript text encoding (IANA name)")
	ingestCmd.Flags().StringVar(&storePath, "store", "", "pseudonym store path (default: $HOME/.chatlex/pseudonyms.json)")
	ingestCmd.Flags().IntVar(&workers, "workers", 0, "feature extraction workers (default: NumCPU)")
	ingestCmd.Flags().StringVar(&outPath, "out", "", "report output path (default: <transcript>.corpus.<format>)")
	ingestCmd.Flags().StringVar(&outFormat, "format", "json", "report format (json, yaml)")
	ingestCmd.Flags().BoolVar(&memoryStore, "ephemeral", false, "keep pseudonyms in memory only (no store file)")
}

func runIngest(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg := buildConfig(cmd)
	log := logging.New(cfg.Log.Level, cfg.Log.JSON)

	ing, err := newIngestor(cfg, log)
	if err != nil {
		return err
	}

	corpus, err := ing.IngestFile(context.Background(), path, cfg.Ingest.Encoding)
	if err != nil {
		return fmt.Errorf("ingest %s: %w", path, err)
	}

	out := outPath
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".corpus." + cfg.Output.Format
	}

	if err := renderCorpus(corpus, out, cfg.Output.Format); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ %s: %d messages, %d system messages, %d actors\n",
		corpus.Filename, len(corpus.Messages), len(corpus.SystemMessages), len(corpus.Actors()))
	fmt.Fprintf(os.Stderr, "✓ Wrote report: %s\n", out)

	return nil
}

// buildConfig merges defaults, config file, env and flags, in ascending
// priority. Only flags the user actually set override file and env values.
func buildConfig(cmd *cobra.Command) *model.Config {
	cfg := model.DefaultConfig()

	// Config file and environment (read into viper at init time).
	if v := viper.GetString("ingest.encoding"); v != "" {
		cfg.Ingest.Encoding = v
	}
	if v := viper.GetInt("ingest.workers"); v > 0 {
		cfg.Ingest.Workers = v
	}
	if v := viper.GetString("store.path"); v != "" {
		cfg.Store.Path = v
	}
	if v := viper.GetString("log.level"); v != "" {
		cfg.Log.Level = v
	}
	if v := viper.GetString("output.format"); v != "" {
		cfg.Output.Format = v
	}
	cfg.Output.Verbose = viper.GetBool("output.verbose")
	cfg.Log.JSON = viper.GetBool("log.json")

	// Explicitly set flags win.
	flags := cmd.Flags()
	if flags.Changed("encoding") {
		cfg.Ingest.Encoding = encodingName
	}
	if flags.Changed("workers") && workers > 0 {
		cfg.Ingest.Workers = workers
	}
	if flags.Changed("store") && storePath != "" {
		cfg.Store.Path = storePath
	}
	if flags.Changed("format") {
		cfg.Output.Format = outFormat
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Log.Level = "debug"
	}
	if logJSON {
		cfg.Log.JSON = true
	}

	return cfg
}

// newIngestor wires the pseudonym store, registry and ingestor from config.
func newIngestor(cfg *model.Config, log zerolog.Logger) (*pipeline.Ingestor, error) {
	var store registry.Store
	if memoryStore {
		store = registry.NewMemoryStore()
	} else {
		s, err := registry.OpenDiskStore(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open pseudonym store: %w", err)
		}
		store = s
	}

	reg := registry.New(store, registry.NewPool(nil, nil))
	return pipeline.NewIngestor(reg, nil, cfg.Ingest.Workers, log), nil
}

// renderCorpus writes the corpus report in the requested format.
func renderCorpus(corpus *model.Corpus, out, format string) error {
	switch format {
	case "yaml", "yml":
		return pipeline.RenderYAML(corpus, out)
	case "json":
		return pipeline.RenderJSON(corpus, out)
	default:
		return fmt.Errorf("unknown report format %q (expected json or yaml)", format)
	}
}
