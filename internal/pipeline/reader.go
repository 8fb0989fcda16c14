package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// ReadTranscript reads a transcript file and decodes it with the named
// encoding. The encoding is an explicit parameter, never auto-detected;
// UTF-8 is the conventional default. The file handle is scoped to this call.
func ReadTranscript(path, encodingName string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	var r io.Reader = f

	name := strings.ToLower(strings.TrimSpace(encodingName))
	if name != "" && name != "utf-8" && name != "utf8" {
		enc, err := htmlindex.Get(name)
		if err != nil {
			return "", fmt.Errorf("unknown encoding %q: %w", encodingName, err)
		}
		r = enc.NewDecoder().Reader(f)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read transcript %s: %w", path, err)
	}

	return string(raw), nil
}
