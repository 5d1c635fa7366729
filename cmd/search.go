package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/octopus-synapse/techcatalog/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search runs a combined language and skill search for the query argument.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(cmd.StringArg("query"))
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	stack, err := r.openCatalog(cmd.String("config"))
	if err != nil {
		return err
	}
	defer stack.Close()

	result, err := stack.queries.Search(query, cmd.Int("limit"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Results for %q", query))
	if len(result.Languages) == 0 && len(result.Skills) == 0 {
		return r.writePlain("no matches\n")
	}
	for _, lang := range result.Languages {
		r.writePlain("lang   %s (%s)\n", lang.NameEn, lang.Slug)
	}
	for _, skill := range result.Skills {
		r.writePlain("skill  %s [%s] (%s)\n", skill.NameEn, skill.Type, skill.Slug)
	}
	return nil
}
