package pipeline

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/chatlex/chatlex/internal/logging"
	"github.com/chatlex/chatlex/internal/model"
	"github.com/chatlex/chatlex/internal/registry"
)

func newTestIngestor() *Ingestor {
	reg := registry.New(registry.NewMemoryStore(), registry.NewPool(nil, rand.NewSource(1)))
	return NewIngestor(reg, nil, 2, logging.Nop())
}

func writeTranscript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chat.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	return path
}

func TestIngestFile_RoundTrip(t *testing.T) {
	path := writeTranscript(t,
		"[01/01/23 08:00:00] Alice: Hello!! check http://example.com now\n"+
			"[01/01/23 08:00:05] Bob left the group\n")

	corpus, err := newTestIngestor().IngestFile(context.Background(), path, "utf-8")
	if err != nil {
		t.Fatalf("IngestFile: %v", err)
	}

	if len(corpus.Messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(corpus.Messages))
	}
	if len(corpus.SystemMessages) != 1 {
		t.Fatalf("Expected 1 system message, got %d", len(corpus.SystemMessages))
	}

	msg := corpus.Messages[0]
	if msg.Content != "Hello!! check http://example.com now" {
		t.Errorf("Content must be unchanged, got %q", msg.Content)
	}
	if msg.Actor.DisplayName == "" || msg.Actor.DisplayName == "Alice" {
		t.Errorf("Expected a pseudonym, got %q", msg.Actor.DisplayName)
	}
	if !reflect.DeepEqual(msg.Features.Links, []string{"http://example.com"}) {
		t.Errorf("Expected one link, got %v", msg.Features.Links)
	}
	if !reflect.DeepEqual(msg.Features.Exclams, []string{"!!"}) {
		t.Errorf("Expected one run of two '!', got %v", msg.Features.Exclams)
	}
	if msg.Features.DayPeriod != model.PeriodMorning {
		t.Errorf("Expected Morning, got %v", msg.Features.DayPeriod)
	}
	if msg.Features.DaySubPeriod != model.SubPeriodTransportMorning {
		t.Errorf("Expected Transport (morning), got %v", msg.Features.DaySubPeriod)
	}

	if corpus.SystemMessages[0].Content != "Bob left the group" {
		t.Errorf("Unexpected system message: %q", corpus.SystemMessages[0].Content)
	}
}

func TestIngestFile_MultiLineMessage(t *testing.T) {
	path := writeTranscript(t,
		"[01/01/23 08:00:00] Alice: first line\nsecond line\n"+
			"[01/01/23 08:01:00] Alice: next\n")

	corpus, err := newTestIngestor().IngestFile(context.Background(), path, "utf-8")
	if err != nil {
		t.Fatalf("IngestFile: %v", err)
	}

	if len(corpus.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(corpus.Messages))
	}
	if corpus.Messages[0].Content != "first line\nsecond line" {
		t.Errorf("Expected embedded newline, got %q", corpus.Messages[0].Content)
	}
}

func TestIngestFile_SameActorSamePseudonym(t *testing.T) {
	path := writeTranscript(t,
		"[01/01/23 08:00:00] Alice: one\n"+
			"[01/01/23 08:01:00] Bob: two\n"+
			"[01/01/23 08:02:00] Alice: three\n")

	corpus, err := newTestIngestor().IngestFile(context.Background(), path, "utf-8")
	if err != nil {
		t.Fatalf("IngestFile: %v", err)
	}

	actors := corpus.Actors()
	if len(actors) != 2 {
		t.Fatalf("Expected 2 actors, got %d", len(actors))
	}
	if actors[0].DisplayName == actors[1].DisplayName {
		t.Error("Two distinct contacts must not share a display name")
	}
	if corpus.Messages[0].Actor != corpus.Messages[2].Actor {
		t.Error("Same contact must resolve to the same actor")
	}
	if len(actors[0].Messages) != 2 {
		t.Errorf("Expected 2 messages for first actor, got %d", len(actors[0].Messages))
	}
}

func TestIngestFile_NoAnchorsYieldsEmptyCorpus(t *testing.T) {
	path := writeTranscript(t, "this file has no timestamps at all\n")

	corpus, err := newTestIngestor().IngestFile(context.Background(), path, "utf-8")
	if err != nil {
		t.Fatalf("Expected empty corpus, not an error: %v", err)
	}
	if len(corpus.Messages) != 0 || len(corpus.SystemMessages) != 0 {
		t.Errorf("Expected empty corpus, got %d/%d", len(corpus.Messages), len(corpus.SystemMessages))
	}
}

func TestIngestFile_MissingFile(t *testing.T) {
	_, err := newTestIngestor().IngestFile(context.Background(), "/no/such/file.txt", "utf-8")
	if err == nil {
		t.Fatal("Expected error for missing transcript")
	}
}

func TestIngestFile_OutOfOrderTimestampsPreserved(t *testing.T) {
	path := writeTranscript(t,
		"[01/01/23 10:00:00] Alice: later\n"+
			"[01/01/23 08:00:00] Alice: earlier\n")

	corpus, err := newTestIngestor().IngestFile(context.Background(), path, "utf-8")
	if err != nil {
		t.Fatalf("IngestFile: %v", err)
	}

	if len(corpus.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(corpus.Messages))
	}
	// Insertion order is kept verbatim, never re-sorted.
	if corpus.Messages[0].Content != "later" || corpus.Messages[1].Content != "earlier" {
		t.Errorf("Expected insertion order preserved, got %q then %q",
			corpus.Messages[0].Content, corpus.Messages[1].Content)
	}
}

func TestIngestBatch_FailureIsolation(t *testing.T) {
	good := writeTranscript(t, "[01/01/23 08:00:00] Alice: hi\n")
	missing := "/no/such/file.txt"

	results := newTestIngestor().IngestBatch(context.Background(), []string{good, missing}, "utf-8")

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Err != nil {
		t.Errorf("Expected first transcript to succeed, got %v", results[0].Err)
	}
	if results[0].Corpus == nil || len(results[0].Corpus.Messages) != 1 {
		t.Error("Expected corpus from first transcript")
	}
	if results[1].Err == nil {
		t.Error("Expected error for missing transcript")
	}
}

func TestReadPathList(t *testing.T) {
	list := filepath.Join(t.TempDir(), "list.txt")
	content := "# transcripts\n/a.txt\n\n/b.txt\n/a.txt\n"
	if err := os.WriteFile(list, []byte(content), 0644); err != nil {
		t.Fatalf("write list: %v", err)
	}

	paths, err := ReadPathList(list)
	if err != nil {
		t.Fatalf("ReadPathList: %v", err)
	}
	if !reflect.DeepEqual(paths, []string{"/a.txt", "/b.txt"}) {
		t.Errorf("Expected deduplicated paths without comments, got %v", paths)
	}
}

func TestReadTranscript_Encoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	// "café" in ISO-8859-1: é is a single 0xE9 byte.
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ReadTranscript(path, "iso-8859-1")
	if err != nil {
		t.Fatalf("ReadTranscript: %v", err)
	}
	if got != "café" {
		t.Errorf("Expected decoded 'café', got %q", got)
	}

	if _, err := ReadTranscript(path, "no-such-encoding"); err == nil {
		t.Error("Expected error for unknown encoding")
	}
}
