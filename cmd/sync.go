package main

import (
	"context"
	"fmt"

	"github.com/octopus-synapse/techcatalog/internal/formatter"
	"github.com/urfave/cli/v3"
)

// Sync runs one full catalog synchronization and prints the report.
func (r *Runner) Sync(ctx context.Context, cmd *cli.Command) error {
	stack, err := r.openCatalog(cmd.String("config"))
	if err != nil {
		return err
	}
	defer stack.Close()

	r.logger.Info("starting catalog sync",
		"linguist_url", stack.config.Sources.LinguistURL,
		"tag_api", stack.config.Sources.TagAPIBaseURL)

	result := stack.engine.Run(ctx)

	switch {
	case cmd.Bool("json"):
		if err := r.writeJSON(result, cmd.Bool("pretty")); err != nil {
			return err
		}
	case cmd.Bool("markdown"):
		if err := r.writePlain("%s", formatter.SyncResultToMarkdown(result)); err != nil {
			return err
		}
	default:
		r.writePlainHeader("Catalog Sync")
		if err := r.writePlain("%s", formatter.SyncResultToText(result)); err != nil {
			return err
		}
	}

	if !result.Ok() {
		return fmt.Errorf("sync finished with %d error(s)", len(result.Errors))
	}
	return nil
}
