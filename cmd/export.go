package main

import (
	"context"
	"fmt"
	"os"

	"github.com/octopus-synapse/techcatalog/internal/formatter"
	"github.com/urfave/cli/v3"
)

// ExportLanguages writes active languages as CSV to --output or stdout.
func (r *Runner) ExportLanguages(ctx context.Context, cmd *cli.Command) error {
	stack, err := r.openCatalog(cmd.String("config"))
	if err != nil {
		return err
	}
	defer stack.Close()

	languages, err := stack.queries.ListLanguages()
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}

	data, err := formatter.LanguagesToCSV(languages)
	if err != nil {
		return fmt.Errorf("failed to render CSV: %w", err)
	}

	return r.writeExport(cmd.String("output"), data, len(languages), "languages")
}

// ExportSkills writes active skills as CSV to --output or stdout.
func (r *Runner) ExportSkills(ctx context.Context, cmd *cli.Command) error {
	stack, err := r.openCatalog(cmd.String("config"))
	if err != nil {
		return err
	}
	defer stack.Close()

	skills, err := stack.queries.ListSkills()
	if err != nil {
		return fmt.Errorf("failed to list skills: %w", err)
	}

	data, err := formatter.SkillsToCSV(skills)
	if err != nil {
		return fmt.Errorf("failed to render CSV: %w", err)
	}

	return r.writeExport(cmd.String("output"), data, len(skills), "skills")
}

func (r *Runner) writeExport(path string, data []byte, count int, noun string) error {
	if path == "" {
		return r.writePlain("%s", data)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	r.logger.Info("export written", "path", path, noun, count)
	return r.writePlain("✓ Exported %d %s to %s\n", count, noun, path)
}
