package sources

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/octopus-synapse/techcatalog/internal/shared"
	"github.com/octopus-synapse/techcatalog/internal/taxonomy"
	tu "github.com/octopus-synapse/techcatalog/internal/testing"
)

const linguistFixture = `
Go:
  type: programming
  color: "#00ADD8"
  aliases:
    - golang
  extensions:
    - ".go"
Python:
  type: programming
  color: "#3572A5"
  extensions:
    - ".py"
JSON:
  type: data
  extensions:
    - ".json"
Markdown:
  type: prose
  extensions:
    - ".md"
Befunge:
  type: programming
`

func yamlResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"text/yaml"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func linguistClient(resp *http.Response, err error) *http.Client {
	return &http.Client{Transport: tu.NewMockRoundTripper(resp, err)}
}

func TestLinguistSource(t *testing.T) {
	tables := taxonomy.Load()

	t.Run("keeps only programming languages", func(t *testing.T) {
		source := NewLinguistSource("http://example.test/languages.yml", linguistClient(yamlResponse(linguistFixture), nil), tables, nil)

		languages, err := source.Languages(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(languages) != 3 {
			t.Fatalf("expected 3 programming languages, got %d", len(languages))
		}
		for _, lang := range languages {
			if lang.Slug == "json" || lang.Slug == "markdown" {
				t.Errorf("expected non-programming entry %s to be dropped", lang.Slug)
			}
		}
	})

	t.Run("sorts by popularity descending", func(t *testing.T) {
		source := NewLinguistSource("http://example.test/languages.yml", linguistClient(yamlResponse(linguistFixture), nil), tables, nil)

		languages, err := source.Languages(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		// Python outranks Go; unranked Befunge lands last.
		if languages[0].NameEn != "Python" {
			t.Errorf("expected Python first, got %s", languages[0].NameEn)
		}
		if languages[1].NameEn != "Go" {
			t.Errorf("expected Go second, got %s", languages[1].NameEn)
		}
		if languages[2].NameEn != "Befunge" || languages[2].Popularity != 0 {
			t.Errorf("expected unranked Befunge last with popularity 0, got %s (%d)", languages[2].NameEn, languages[2].Popularity)
		}
	})

	t.Run("normalizes entries with taxonomy metadata", func(t *testing.T) {
		source := NewLinguistSource("http://example.test/languages.yml", linguistClient(yamlResponse(linguistFixture), nil), tables, nil)

		languages, err := source.Languages(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		idx := -1
		for i, lang := range languages {
			if lang.NameEn == "Go" {
				idx = i
			}
		}
		if idx == -1 {
			t.Fatal("expected Go in the result")
		}

		goLang := languages[idx]
		if goLang.Slug != "go" {
			t.Errorf("expected slug go, got %q", goLang.Slug)
		}
		if goLang.Color != "#00ADD8" {
			t.Errorf("expected dataset color, got %q", goLang.Color)
		}
		if len(goLang.Aliases) != 1 || goLang.Aliases[0] != "golang" {
			t.Errorf("expected aliases from the dataset, got %v", goLang.Aliases)
		}
		if goLang.NameLocal != "Go" {
			t.Errorf("expected untranslated local name, got %q", goLang.NameLocal)
		}
	})

	t.Run("missing sets come back empty, not nil", func(t *testing.T) {
		source := NewLinguistSource("http://example.test/languages.yml", linguistClient(yamlResponse(linguistFixture), nil), tables, nil)

		languages, err := source.Languages(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for _, lang := range languages {
			if lang.Aliases == nil || lang.FileExtensions == nil || lang.Paradigms == nil {
				t.Errorf("expected empty sets for %s, got nil", lang.NameEn)
			}
		}
	})

	t.Run("transport error wraps ErrAPIRequest", func(t *testing.T) {
		source := NewLinguistSource("http://example.test/languages.yml", linguistClient(nil, errors.New("connection refused")), tables, nil)

		_, err := source.Languages(context.Background())
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("non-2xx status wraps ErrBadStatus", func(t *testing.T) {
		resp := &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream down")),
		}
		source := NewLinguistSource("http://example.test/languages.yml", linguistClient(resp, nil), tables, nil)

		_, err := source.Languages(context.Background())
		if !errors.Is(err, shared.ErrBadStatus) {
			t.Errorf("expected ErrBadStatus, got %v", err)
		}
	})

	t.Run("malformed YAML wraps ErrSourceParse", func(t *testing.T) {
		source := NewLinguistSource("http://example.test/languages.yml", linguistClient(yamlResponse("{{{nope"), nil), tables, nil)

		_, err := source.Languages(context.Background())
		if !errors.Is(err, shared.ErrSourceParse) {
			t.Errorf("expected ErrSourceParse, got %v", err)
		}
	})
}
