package formatter

import (
	"strings"
	"testing"

	"github.com/octopus-synapse/techcatalog/internal/catalog"
	"github.com/octopus-synapse/techcatalog/internal/models"
)

func TestLanguagesToCSV(t *testing.T) {
	languages := []catalog.LanguageView{
		{Slug: "go", NameEn: "Go", NameLocal: "Go", Typing: "static", Popularity: 992, Color: "#00ADD8", Website: "https://go.dev"},
		{Slug: "python", NameEn: "Python", NameLocal: "Python", Popularity: 999},
	}

	data, err := LanguagesToCSV(languages)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Slug,Name,Local Name") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "go,Go,Go,static,992") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestSkillsToCSV(t *testing.T) {
	skills := []catalog.SkillView{
		{Slug: "reactjs", NameEn: "React", Type: "FRAMEWORK", Popularity: 900, Aliases: []string{"react", "react.js"}},
	}

	data, err := SkillsToCSV(skills)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "react|react.js") {
		t.Errorf("expected aliases joined with a pipe, got %q", out)
	}
	if !strings.Contains(out, "FRAMEWORK") {
		t.Errorf("expected skill type column, got %q", out)
	}
}

func TestSyncResultToMarkdown(t *testing.T) {
	t.Run("clean run has no error section", func(t *testing.T) {
		result := &models.SyncResult{AreasCreated: 6, LanguagesInserted: 2}

		out := string(SyncResultToMarkdown(result))
		if !strings.Contains(out, "# Catalog Sync") {
			t.Errorf("expected title, got %q", out)
		}
		if !strings.Contains(out, "**Areas created**: 6") {
			t.Errorf("expected area counter, got %q", out)
		}
		if strings.Contains(out, "## Errors") {
			t.Error("expected no error section for a clean run")
		}
	})

	t.Run("partial run lists stage errors", func(t *testing.T) {
		result := &models.SyncResult{Errors: []string{"skills: api throttled"}}

		out := string(SyncResultToMarkdown(result))
		if !strings.Contains(out, "## Errors") {
			t.Error("expected an error section")
		}
		if !strings.Contains(out, "- skills: api throttled") {
			t.Errorf("expected the stage error listed, got %q", out)
		}
	})
}

func TestSyncResultToText(t *testing.T) {
	t.Run("reports ok status", func(t *testing.T) {
		out := string(SyncResultToText(&models.SyncResult{}))
		if !strings.Contains(out, "Sync finished (ok)") {
			t.Errorf("expected ok status, got %q", out)
		}
	})

	t.Run("reports partial status with errors", func(t *testing.T) {
		out := string(SyncResultToText(&models.SyncResult{Errors: []string{"languages: unreachable"}}))
		if !strings.Contains(out, "Sync finished (partial)") {
			t.Errorf("expected partial status, got %q", out)
		}
		if !strings.Contains(out, "error: languages: unreachable") {
			t.Errorf("expected the error line, got %q", out)
		}
	})
}

func TestRankedListings(t *testing.T) {
	skills := []catalog.SkillView{
		{NameEn: "React", Type: "FRAMEWORK", Popularity: 900},
		{NameEn: "Docker", Type: "TOOL", Popularity: 800},
	}
	out := string(SkillsToText(skills))
	if !strings.HasPrefix(out, "1. React [FRAMEWORK] (900)") {
		t.Errorf("unexpected first line %q", out)
	}

	languages := []catalog.LanguageView{
		{NameEn: "Go", Typing: "static", Popularity: 992},
		{NameEn: "Befunge", Popularity: 0},
	}
	out = string(LanguagesToText(languages))
	if !strings.Contains(out, "1. Go (static, popularity 992)") {
		t.Errorf("unexpected language line %q", out)
	}
	if !strings.Contains(out, "2. Befunge (unknown typing, popularity 0)") {
		t.Errorf("expected typing fallback, got %q", out)
	}
}
