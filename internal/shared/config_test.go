package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Database.Path != "techcatalog.db" {
		t.Errorf("unexpected default database path %q", config.Database.Path)
	}
	if config.Sources.LinguistURL == "" {
		t.Error("expected a default linguist URL")
	}
	if config.Sources.TagSite != "stackoverflow" {
		t.Errorf("unexpected default tag site %q", config.Sources.TagSite)
	}
	if config.Sources.PageSize != 100 {
		t.Errorf("unexpected default page size %d", config.Sources.PageSize)
	}
	if config.Sources.MaxPages != 10 {
		t.Errorf("unexpected default page ceiling %d", config.Sources.MaxPages)
	}
	if config.Cache.ListTTL() != time.Hour {
		t.Errorf("unexpected default list TTL %v", config.Cache.ListTTL())
	}
	if config.Cache.SearchTTL() != 10*time.Minute {
		t.Errorf("unexpected default search TTL %v", config.Cache.SearchTTL())
	}
	if config.Sources.HTTPTimeout() != 30*time.Second {
		t.Errorf("unexpected default timeout %v", config.Sources.HTTPTimeout())
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses a valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[database]
path = "custom.db"

[sources]
linguist_url = "http://localhost/languages.yml"
page_size = 25

[cache]
list_ttl_seconds = 60
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if config.Database.Path != "custom.db" {
			t.Errorf("expected custom database path, got %q", config.Database.Path)
		}
		if config.Sources.PageSize != 25 {
			t.Errorf("expected custom page size, got %d", config.Sources.PageSize)
		}
		if config.Cache.ListTTL() != time.Minute {
			t.Errorf("expected custom list TTL, got %v", config.Cache.ListTTL())
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid TOML returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("[[["), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("writes the example config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected created file to parse, got %v", err)
		}
		if config.Sources.TagAPIBaseURL == "" {
			t.Error("expected created config to carry source defaults")
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error when file exists")
		}
	})
}
