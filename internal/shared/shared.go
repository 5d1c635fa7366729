// package shared defines shared helpers
package shared

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps and caller reporting enabled.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// NewFileLogger creates a [log.Logger] that writes to the file at path,
// creating parent directories as needed. Used by the TUI to keep log output
// off the alternate screen.
func NewFileLogger(path string) (*log.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return NewLogger(f), nil
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}

// foldTransformer strips combining marks after NFD decomposition, turning
// "Café" into "Cafe". Built per call; transform.Chain values are not safe
// for concurrent reuse.
func foldTransformer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold lowercases s and removes diacritics for accent-insensitive matching.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer(), s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Slugify derives a URL-safe slug from a display name: accents folded,
// lowercased, runs of non-alphanumerics collapsed to single hyphens.
//
// "C++" becomes "c-plus-plus" and "C#" becomes "c-sharp" so that symbol-heavy
// language names keep distinct slugs instead of collapsing to "c".
func Slugify(name string) string {
	s := Fold(name)
	s = strings.ReplaceAll(s, "c++", "c-plus-plus")
	s = strings.ReplaceAll(s, "c#", "c-sharp")
	s = strings.ReplaceAll(s, "f#", "f-sharp")
	s = strings.ReplaceAll(s, ".net", "dot-net")

	var b strings.Builder
	lastHyphen := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == '+':
			b.WriteString("plus")
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// FormatTagName turns a raw hyphenated tag into a display name
// ("unit-testing" -> "Unit Testing").
func FormatTagName(tag string) string {
	words := strings.Split(tag, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
