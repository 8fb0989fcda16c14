package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chatlex/chatlex/internal/model"
)

// CorpusDoc is the serializable view of a corpus handed to downstream
// consumers (charting, reporting). Actors appear only by display name.
type CorpusDoc struct {
	Filename       string         `json:"filename" yaml:"filename"`
	Messages       []MessageDoc   `json:"messages" yaml:"messages"`
	SystemMessages []SystemDoc    `json:"system_messages" yaml:"system_messages"`
	Actors         []ActorSummary `json:"actors" yaml:"actors"`
}

// MessageDoc is one user message with its feature battery.
type MessageDoc struct {
	Actor     string         `json:"actor" yaml:"actor"`
	Content   string         `json:"content" yaml:"content"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
	Features  model.Features `json:"features" yaml:"features"`
}

// SystemDoc is one system notice.
type SystemDoc struct {
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// ActorSummary is the per-actor rollup.
type ActorSummary struct {
	DisplayName string `json:"display_name" yaml:"display_name"`
	Messages    int    `json:"messages" yaml:"messages"`
}

// BuildDoc converts a corpus into its serializable view.
func BuildDoc(c *model.Corpus) CorpusDoc {
	doc := CorpusDoc{
		Filename:       c.Filename,
		Messages:       make([]MessageDoc, 0, len(c.Messages)),
		SystemMessages: make([]SystemDoc, 0, len(c.SystemMessages)),
	}

	for _, m := range c.Messages {
		doc.Messages = append(doc.Messages, MessageDoc{
			Actor:     m.Actor.DisplayName,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
			Features:  m.Features,
		})
	}

	for _, m := range c.SystemMessages {
		doc.SystemMessages = append(doc.SystemMessages, SystemDoc{
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	for _, a := range c.Actors() {
		doc.Actors = append(doc.Actors, ActorSummary{
			DisplayName: a.DisplayName,
			Messages:    len(a.Messages),
		})
	}

	return doc
}

// RenderJSON writes the corpus document as indented JSON.
func RenderJSON(c *model.Corpus, path string) error {
	data, err := json.MarshalIndent(BuildDoc(c), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal corpus: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON report: %w", err)
	}
	return nil
}

// RenderYAML writes the corpus document as YAML.
func RenderYAML(c *model.Corpus, path string) error {
	data, err := yaml.Marshal(BuildDoc(c))
	if err != nil {
		return fmt.Errorf("marshal corpus: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write YAML report: %w", err)
	}
	return nil
}
