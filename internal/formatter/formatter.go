// package formatter provides functions to export catalog data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/octopus-synapse/techcatalog/internal/catalog"
	"github.com/octopus-synapse/techcatalog/internal/models"
)

// LanguagesToCSV converts language views to CSV with columns: Slug, Name, Local Name, Typing, Popularity, Color, Website
func LanguagesToCSV(languages []catalog.LanguageView) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Slug", "Name", "Local Name", "Typing", "Popularity", "Color", "Website"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, lang := range languages {
		record := []string{
			lang.Slug,
			lang.NameEn,
			lang.NameLocal,
			lang.Typing,
			strconv.Itoa(lang.Popularity),
			lang.Color,
			lang.Website,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// SkillsToCSV converts skill views to CSV with columns: Slug, Name, Type, Popularity, Aliases
func SkillsToCSV(skills []catalog.SkillView) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Slug", "Name", "Type", "Popularity", "Aliases"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, skill := range skills {
		record := []string{
			skill.Slug,
			skill.NameEn,
			skill.Type,
			strconv.Itoa(skill.Popularity),
			strings.Join(skill.Aliases, "|"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// SyncResultToMarkdown renders a sync run summary as Markdown.
func SyncResultToMarkdown(result *models.SyncResult) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Catalog Sync\n\n")
	buf.WriteString(fmt.Sprintf("**Areas created**: %d\n", result.AreasCreated))
	buf.WriteString(fmt.Sprintf("**Niches created**: %d\n", result.NichesCreated))
	buf.WriteString(fmt.Sprintf("**Languages**: %d inserted, %d updated\n", result.LanguagesInserted, result.LanguagesUpdated))
	buf.WriteString(fmt.Sprintf("**Skills**: %d inserted, %d updated\n", result.SkillsInserted, result.SkillsUpdated))

	if len(result.Errors) > 0 {
		buf.WriteString("\n## Errors\n\n")
		for _, msg := range result.Errors {
			buf.WriteString(fmt.Sprintf("- %s\n", msg))
		}
	}

	return buf.Bytes()
}

// SyncResultToText renders a sync run summary as plain text.
func SyncResultToText(result *models.SyncResult) []byte {
	var buf bytes.Buffer

	status := "ok"
	if !result.Ok() {
		status = "partial"
	}

	buf.WriteString(fmt.Sprintf("Sync finished (%s)\n", status))
	buf.WriteString(fmt.Sprintf("Areas created:   %d\n", result.AreasCreated))
	buf.WriteString(fmt.Sprintf("Niches created:  %d\n", result.NichesCreated))
	buf.WriteString(fmt.Sprintf("Languages:       %d inserted / %d updated\n", result.LanguagesInserted, result.LanguagesUpdated))
	buf.WriteString(fmt.Sprintf("Skills:          %d inserted / %d updated\n", result.SkillsInserted, result.SkillsUpdated))

	for _, msg := range result.Errors {
		buf.WriteString(fmt.Sprintf("error: %s\n", msg))
	}

	return buf.Bytes()
}

// SkillsToText renders skills as a compact ranked listing.
func SkillsToText(skills []catalog.SkillView) []byte {
	var buf bytes.Buffer
	for i, skill := range skills {
		buf.WriteString(fmt.Sprintf("%d. %s [%s] (%d)\n", i+1, skill.NameEn, skill.Type, skill.Popularity))
	}
	return buf.Bytes()
}

// LanguagesToText renders languages as a compact ranked listing.
func LanguagesToText(languages []catalog.LanguageView) []byte {
	var buf bytes.Buffer
	for i, lang := range languages {
		typing := lang.Typing
		if typing == "" {
			typing = "unknown typing"
		}
		buf.WriteString(fmt.Sprintf("%d. %s (%s, popularity %d)\n", i+1, lang.NameEn, typing, lang.Popularity))
	}
	return buf.Bytes()
}
