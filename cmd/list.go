package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/octopus-synapse/techcatalog/internal/catalog"
	"github.com/octopus-synapse/techcatalog/internal/formatter"
	"github.com/octopus-synapse/techcatalog/internal/models"
	"github.com/octopus-synapse/techcatalog/internal/shared"
	"github.com/urfave/cli/v3"
)

// Areas lists taxonomy areas in display order.
func (r *Runner) Areas(ctx context.Context, cmd *cli.Command) error {
	stack, err := r.openCatalog(cmd.String("config"))
	if err != nil {
		return err
	}
	defer stack.Close()

	areas, err := stack.queries.ListAreas()
	if err != nil {
		return fmt.Errorf("failed to list areas: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(areas, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Tech Areas")
	for _, area := range areas {
		r.writePlain("%s  %s (%s)\n", area.Icon, area.NameEn, area.Type)
	}
	return nil
}

// Niches lists taxonomy niches, scoped to one area when --area is set.
func (r *Runner) Niches(ctx context.Context, cmd *cli.Command) error {
	stack, err := r.openCatalog(cmd.String("config"))
	if err != nil {
		return err
	}
	defer stack.Close()

	areaType := strings.ToUpper(cmd.String("area"))

	title := "Tech Niches"
	var niches []catalog.NicheView
	if areaType != "" {
		title = fmt.Sprintf("Niches in %s", areaType)
		niches, err = stack.queries.ListNichesByArea(areaType)
	} else {
		niches, err = stack.queries.ListNiches()
	}
	if err != nil {
		return fmt.Errorf("failed to list niches: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(niches, cmd.Bool("pretty"))
	}

	r.writePlainHeader(title)
	for _, niche := range niches {
		r.writePlain("%s  %s (%s) [%s]\n", niche.Icon, niche.NameEn, niche.Slug, niche.AreaType)
	}
	return nil
}

// Languages lists active programming languages by descending popularity.
func (r *Runner) Languages(ctx context.Context, cmd *cli.Command) error {
	stack, err := r.openCatalog(cmd.String("config"))
	if err != nil {
		return err
	}
	defer stack.Close()

	languages, err := stack.queries.ListLanguages()
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(languages, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Programming Languages")
	return r.writePlain("%s", formatter.LanguagesToText(languages))
}

// Skills lists active skills, filtered by niche or type when requested.
func (r *Runner) Skills(ctx context.Context, cmd *cli.Command) error {
	stack, err := r.openCatalog(cmd.String("config"))
	if err != nil {
		return err
	}
	defer stack.Close()

	nicheSlug := cmd.String("niche")
	typeName := strings.ToUpper(cmd.String("type"))

	if nicheSlug != "" && typeName != "" {
		return fmt.Errorf("%w: --niche and --type are mutually exclusive", shared.ErrInvalidFlag)
	}

	title := "Tech Skills"
	var skills []catalog.SkillView
	switch {
	case nicheSlug != "":
		title = fmt.Sprintf("Skills in %s", nicheSlug)
		skills, err = stack.queries.ListSkillsByNiche(nicheSlug)
	case typeName != "":
		skillType := models.SkillType(typeName)
		if !skillType.Valid() {
			return fmt.Errorf("%w: unknown skill type %q", shared.ErrInvalidFlag, typeName)
		}
		title = fmt.Sprintf("%s Skills", typeName)
		skills, err = stack.queries.ListSkillsByType(skillType, cmd.Int("limit"))
	default:
		skills, err = stack.queries.ListSkills()
	}
	if err != nil {
		return fmt.Errorf("failed to list skills: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(skills, cmd.Bool("pretty"))
	}

	r.writePlainHeader(title)
	return r.writePlain("%s", formatter.SkillsToText(skills))
}
