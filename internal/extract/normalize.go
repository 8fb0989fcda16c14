package extract

import "strings"

// impurities maps the invisible/control code points that exported transcripts
// carry to their replacements. The segmenter's anchor pattern is sensitive to
// stray invisible characters right before a timestamp, so normalization must
// run exactly once, before segmentation.
var impurities = strings.NewReplacer(
	"\r\n", "\n", // Windows line endings
	"\r", "\n", // bare carriage returns
	"‎", "", // left-to-right mark
	" ", "", // en space artifact
	"‬", "", // pop directional formatting
	"‪", "", // left-to-right embedding
	" ", " ", // non-breaking space
	"‑", "-", // non-breaking hyphen
)

// Normalize strips impurity characters from raw transcript text. Total over
// any input: there is no error condition.
func Normalize(content string) string {
	return impurities.Replace(content)
}
